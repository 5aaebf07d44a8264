package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/quicktext/internal/model"
	"github.com/ytget/quicktext/internal/store"
)

func addList(topLevel *cobra.Command, env *environment) {
	cmd := &cobra.Command{
		Use:   "list [group]",
		Short: "List groups, or the presets of one group",
		Example: `
quicktext list
quicktext list Common
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := env.openStore(cmd).Document()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, name := range doc.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			name := model.NormalizeName(args[0])
			g, ok := doc.Group(name)
			if !ok {
				return notFound("group", name, doc.Names(), store.ErrGroupNotFound)
			}
			for _, p := range g.Names() {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
