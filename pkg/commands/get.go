package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/commands/options"
	"tableflip.dev/roster/pkg/runner/get"
	"tableflip.dev/roster/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"list", "ls"},
		Short:   "Print the stored student profiles",
		Example: `
roster get
roster get --cards
roster get --cards --table
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				Cards:       vo.Cards,
				Table:       vo.Table,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddViewArgs(cmd, vo)

	topLevel.AddCommand(cmd)
}
