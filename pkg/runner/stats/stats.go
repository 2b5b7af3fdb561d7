package stats

import (
	"context"
	"errors"

	"tableflip.dev/roster/pkg/printers"
	"tableflip.dev/roster/pkg/profile"
	"tableflip.dev/roster/pkg/store"
)

// Stats summarizes the stored roster by programme, year, and interest.
type Stats struct {
	Persistence store.Persistence
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not summarize, no persistence")
	}

	all := n.Persistence.LoadAll(ctx)
	summary := profile.Summarize(all)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.TitleWithCount("Roster Summary", summary.Total)
	pp.Stats(summary)
	return nil
}
