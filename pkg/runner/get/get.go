package get

import (
	"context"
	"errors"

	"tableflip.dev/roster/pkg/form"
	"tableflip.dev/roster/pkg/photo"
	"tableflip.dev/roster/pkg/printers"
	"tableflip.dev/roster/pkg/render"
	"tableflip.dev/roster/pkg/store"
)

// Get prints the stored roster. Both projections are available; the table
// is the default.
type Get struct {
	Cards       bool
	Table       bool
	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	pp := printers.PrettyPrint{}
	r := render.New()
	ctrl := form.NewController(n.Persistence, r, photo.FileDecoder{}, nil)
	ctrl.RenderStored(ctx)

	pp.NewLine()
	pp.TitleWithCount("Student Profiles", len(r.Rows()))

	if n.Cards {
		pp.Gallery(r)
	}
	if n.Table || !n.Cards {
		pp.Table(r)
	}
	return nil
}
