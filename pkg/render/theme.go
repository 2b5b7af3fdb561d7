package render

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the rendered views.
type Theme struct {
	Card      lipgloss.Style
	FreshCard lipgloss.Style
	Name      lipgloss.Style
	Muted     lipgloss.Style
	Badge     lipgloss.Style
	Affordance
}

// Affordance styles the per-profile edit/remove hints.
type Affordance struct {
	Key   lipgloss.Style
	Label lipgloss.Style
}

// DefaultTheme returns the built-in theme used across the views.
func DefaultTheme() Theme {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return Theme{
		Card:      card,
		FreshCard: card.BorderForeground(lipgloss.Color("212")),
		Name:      lipgloss.NewStyle().Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Padding(0, 1),
		Affordance: Affordance{
			Key:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

var yearBase, _ = colorful.Hex("#5f5fd7")

// YearColor derives a per-year badge accent by walking the base hue toward
// warm. Years beyond the blend range clamp to the warm end.
func YearColor(year int) lipgloss.Color {
	warm, _ := colorful.Hex("#d75f5f")
	t := float64(year-1) / 3.0
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lipgloss.Color(yearBase.BlendLuv(warm, t).Hex())
}
