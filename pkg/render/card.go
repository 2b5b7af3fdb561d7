package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const cardBodyWidth = 36

// photoPlaceholder stands in for the image when no payload is attached,
// mirroring the placeholder the gallery always shows for photo-less
// profiles.
const photoPlaceholder = "[ no photo ]"

// Card renders the gallery projection of a profile. The footer carries the
// profile id with its edit and remove affordances so an orchestrator can
// dispatch on either.
func (r *Renderer) Card(el *Element) string {
	p := el.Profile
	th := r.theme

	photo := photoPlaceholder
	if p.HasPhoto() {
		photo = "[ photo ]"
	}

	year, _ := strconv.Atoi(p.Year)
	badges := lipgloss.JoinHorizontal(lipgloss.Top,
		th.Badge.Background(lipgloss.Color("240")).Render(Clean(p.Prog)),
		" ",
		th.Badge.Background(YearColor(year)).Render("Year "+Clean(p.Year)),
	)

	lines := []string{
		th.Name.Render(Clean(p.FullName())),
		th.Muted.Render("Student No: " + Clean(p.StudentNo)),
		th.Muted.Render(Clean(p.Email)),
		badges,
	}
	if len(p.Interests) > 0 {
		lines = append(lines, wordwrap.String(Clean(p.InterestList()), cardBodyWidth))
	}
	lines = append(lines,
		th.Muted.Render(photo),
		r.affordances(p.ID),
	)

	style := th.Card
	if el.Fresh {
		style = th.FreshCard
	}
	return style.Width(cardBodyWidth + 2).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) affordances(id string) string {
	th := r.theme
	return fmt.Sprintf("%s %s  %s %s",
		th.Affordance.Key.Render("edit"),
		th.Affordance.Label.Render(Clean(id)),
		th.Affordance.Key.Render("remove"),
		th.Affordance.Label.Render(Clean(id)),
	)
}

// Gallery renders all visible cards newest-first.
func (r *Renderer) Gallery() string {
	cards := make([]string, 0, len(r.gallery))
	for _, el := range r.gallery {
		if el.Hidden {
			continue
		}
		cards = append(cards, r.Card(el))
	}
	if len(cards) == 0 {
		return r.theme.Muted.Italic(true).Render("no profiles")
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
