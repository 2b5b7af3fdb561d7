package remove

import (
	"context"
	"errors"

	"tableflip.dev/roster/pkg/form"
	"tableflip.dev/roster/pkg/photo"
	"tableflip.dev/roster/pkg/printers"
	"tableflip.dev/roster/pkg/render"
	"tableflip.dev/roster/pkg/store"
)

// Remove deletes the profile stored under ID. Unknown ids are a no-op, not
// an error.
type Remove struct {
	ID          string
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	pp := printers.PrettyPrint{}
	r := render.New()
	ctrl := form.NewController(n.Persistence, r, photo.FileDecoder{}, nil)
	ctrl.RenderStored(ctx)

	if err := ctrl.Remove(ctx, n.ID); err != nil {
		return err
	}

	pp.NewLine()
	pp.TitleWithCount("Student Profiles", len(r.Rows()))
	pp.Table(r)
	return nil
}
