package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/runner/stats"
	"tableflip.dev/roster/pkg/store"
)

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"summary"},
		Short:   "Summarize the roster by programme, year, and interest",
		Example: `
roster stats
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := stats.Stats{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
