package search

import (
	"context"
	"errors"

	"tableflip.dev/roster/pkg/form"
	"tableflip.dev/roster/pkg/photo"
	"tableflip.dev/roster/pkg/printers"
	"tableflip.dev/roster/pkg/render"
	"tableflip.dev/roster/pkg/store"
)

// Search prints the projections filtered by a case-insensitive substring
// match against each element's visible text. The stored collection is
// untouched.
type Search struct {
	Query       string
	Cards       bool
	Persistence store.Persistence
}

func (n *Search) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not search, no persistence")
	}

	pp := printers.PrettyPrint{}
	r := render.New()
	ctrl := form.NewController(n.Persistence, r, photo.FileDecoder{}, nil)
	ctrl.RenderStored(ctx)

	r.ApplyFilter(n.Query)

	visible := 0
	for _, el := range r.Rows() {
		if !el.Hidden {
			visible++
		}
	}

	pp.NewLine()
	pp.TitleWithCount("Matches for "+n.Query, visible)
	if n.Cards {
		pp.Gallery(r)
	} else {
		pp.Table(r)
	}
	return nil
}
