package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/commands/options"
	"tableflip.dev/roster/pkg/runner/search"
	"tableflip.dev/roster/pkg/store"
)

func addSearch(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	query := ""

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Filter the rendered views by a text query",
		Example: `
roster search lee
roster search "year 2" --cards
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a query")
			}
			query = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := search.Search{
				Query:       query,
				Cards:       vo.Cards,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddViewArgs(cmd, vo)

	topLevel.AddCommand(cmd)
}
