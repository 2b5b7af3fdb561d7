package commands

import (
	"context"

	"github.com/spf13/cobra"

	runnerui "tableflip.dev/roster/pkg/runner/ui"
	"tableflip.dev/roster/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Interactive roster interface",
		Example: `
roster ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			s := runnerui.UI{
				Persistence: p,
				Config:      cfg,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
