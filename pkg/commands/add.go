package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/commands/options"
	"tableflip.dev/roster/pkg/runner/save"
	"tableflip.dev/roster/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	po := &options.ProfileOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a student profile",
		Example: `
roster add -i
roster add --first ann --last lee --student-no S100 --email a@b.com --prog CS --year 1 --interests art
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}

			s := save.Save{
				Input:       po.RawInput(),
				Interactive: i.Interactive,
				Persistence: p,
				Config:      cfg,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddProfileArgs(cmd, po)
	options.InteractiveArgs(cmd, i)

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
