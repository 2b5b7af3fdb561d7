package printers

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	isatty "github.com/mattn/go-isatty"

	"tableflip.dev/roster/pkg/profile"
	"tableflip.dev/roster/pkg/render"
)

// PrettyPrint writes roster projections to the terminal.
type PrettyPrint struct{}

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" profile")
	default:
		_, _ = c.Println(" profiles")
	}
}

// Gallery prints the card view of the renderer.
func (pp *PrettyPrint) Gallery(r *render.Renderer) {
	_, _ = fmt.Fprintln(color.Output, r.Gallery())
}

// Table prints the summary table view of the renderer.
func (pp *PrettyPrint) Table(r *render.Renderer) {
	_, _ = fmt.Fprintln(color.Output, r.Table())
}

// Stats prints the roster summary, one bucket per row.
func (pp *PrettyPrint) Stats(s profile.Summary) {
	table := uitable.New()
	table.AddRow("GROUP", "VALUE", "COUNT")
	for _, g := range s.Programmes {
		table.AddRow("programme", g.Label, fmt.Sprintf("%d", g.Count))
	}
	for _, g := range s.Years {
		table.AddRow("year", g.Label, fmt.Sprintf("%d", g.Count))
	}
	for _, g := range s.Interests {
		table.AddRow("interest", g.Label, fmt.Sprintf("%d", g.Count))
	}
	table.AddRow("photo", "on file", fmt.Sprintf("%d", s.WithPhoto))
	_, _ = fmt.Fprintln(color.Output, table)
}

// Success prints the save notice. One-shot commands have no surface to
// auto-dismiss, so it prints once and stands.
func (pp *PrettyPrint) Success(message string) {
	s := color.New(color.FgHiGreen)
	_, _ = s.Println(message)
}

// Errors prints field-scoped validation messages next to their fields.
func (pp *PrettyPrint) Errors(fields map[string]string) {
	e := color.New(color.FgHiRed)
	for _, f := range []string{"first", "last", "studentNo", "email", "prog", "year"} {
		if msg, ok := fields[f]; ok {
			_, _ = e.Printf("%s: %s\n", f, msg)
		}
	}
}
