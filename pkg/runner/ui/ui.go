package ui

import (
	"context"
	"errors"

	"tableflip.dev/roster/pkg/store"
	"tableflip.dev/roster/pkg/tui"
)

// UI launches the interactive roster interface.
type UI struct {
	Persistence store.Persistence
	Config      store.Config
}

func (n *UI) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not run ui, no persistence")
	}
	return tui.Run(ctx, n.Persistence, n.Config)
}
