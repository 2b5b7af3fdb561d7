package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/commands/options"
	"tableflip.dev/roster/pkg/runner/save"
	"tableflip.dev/roster/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	po := &options.ProfileOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "edit <student-no>",
		Short: "Edit a stored student profile",
		Example: `
roster edit S100 -i
roster edit S100 --year 2
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a student number")
			}
			io.IDFromArgs(args)
			return nil
		},
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
				EditID:      io.ID,
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
