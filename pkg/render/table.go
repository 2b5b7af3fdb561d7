package render

import (
	"fmt"

	"github.com/gosuri/uitable"
)

// Table renders all visible rows newest-first. The trailing column repeats
// the id as the edit/remove dispatch handle, same as the card footer.
func (r *Renderer) Table() string {
	tbl := uitable.New()
	tbl.MaxColWidth = 40
	tbl.AddRow("STUDENT NO", "NAME", "PROGRAMME", "YEAR", "INTERESTS", "ACTIONS")

	n := 0
	for _, el := range r.table {
		if el.Hidden {
			continue
		}
		no, name, prog, year, interests := el.Profile.Row()
		tbl.AddRow(Clean(no), Clean(name), Clean(prog), Clean(year), Clean(interests),
			fmt.Sprintf("edit/remove %s", Clean(el.Profile.ID)))
		n++
	}
	if n == 0 {
		return r.theme.Muted.Italic(true).Render("no profiles")
	}
	return tbl.String()
}
