package save

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/roster/pkg/form"
	"tableflip.dev/roster/pkg/photo"
	"tableflip.dev/roster/pkg/printers"
	"tableflip.dev/roster/pkg/profile"
	"tableflip.dev/roster/pkg/render"
	"tableflip.dev/roster/pkg/store"
)

// Save creates a profile or, when EditID is set, replaces the profile
// stored under that id. Interactive mode collects the fields through a
// form prefilled from the edit target.
type Save struct {
	Input       profile.RawInput
	EditID      string
	Interactive bool

	Persistence store.Persistence
	Config      store.Config
}

func (n *Save) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not save, no persistence")
	}

	pp := printers.PrettyPrint{}
	r := render.New()
	ctrl := form.NewController(n.Persistence, r, photo.FileDecoder{}, form.NotifierFunc(pp.Success))
	ctrl.RenderStored(ctx)

	in := n.Input
	if n.EditID != "" {
		prefill, ok := ctrl.BeginEdit(ctx, n.EditID)
		if !ok {
			return fmt.Errorf("no profile with student number %q", n.EditID)
		}
		in = overlay(prefill, n.Input)
	}

	if n.Interactive {
		if err := form.BuildForm(&in, n.Config, ctrl.SubmitLabel()).Run(); err != nil {
			return err
		}
	}

	if _, err := ctrl.Submit(ctx, in); err != nil {
		var ferrs profile.FieldErrors
		if errors.As(err, &ferrs) {
			pp.Errors(ferrs)
		}
		return err
	}

	pp.NewLine()
	pp.TitleWithCount("Student Profiles", len(r.Rows()))
	pp.Table(r)
	return nil
}

// overlay keeps the prefilled value wherever the flag value is unset.
func overlay(base, over profile.RawInput) profile.RawInput {
	if over.First != "" {
		base.First = over.First
	}
	if over.Last != "" {
		base.Last = over.Last
	}
	if over.StudentNo != "" {
		base.StudentNo = over.StudentNo
	}
	if over.Email != "" {
		base.Email = over.Email
	}
	if over.Prog != "" {
		base.Prog = over.Prog
	}
	if over.Year != "" {
		base.Year = over.Year
	}
	if over.Interests != nil {
		base.Interests = over.Interests
	}
	if over.PhotoPath != "" {
		base.PhotoPath = over.PhotoPath
	}
	return base
}
