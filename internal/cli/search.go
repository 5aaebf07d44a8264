package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/quicktext/internal/search"
)

func addSearch(topLevel *cobra.Command, env *environment) {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find presets whose name or content contains the query",
		Long:  "Prints one \"group<TAB>name\" line per matching preset, in store order.",
		Example: `
quicktext search ping
quicktext search best regards
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			results := env.openStore(cmd).Search(query)
			if len(results) == 0 {
				return fmt.Errorf("%w %q", search.ErrNoMatch, query)
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.Group, r.Name)
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
