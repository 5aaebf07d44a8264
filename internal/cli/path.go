package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addPath(topLevel *cobra.Command, env *environment) {
	var details bool

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the presets file location",
		Long: `Print the presets file location.

With --details the file is loaded (and created when missing) and the shape
it was read in is printed after the path: grouped, legacy or default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !details {
				fmt.Fprintln(cmd.OutOrStdout(), env.dataFile())
				return nil
			}
			s := env.openStore(cmd)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s.Path(), s.Format())
			return nil
		},
	}

	cmd.Flags().BoolVar(&details, "details", false, "also load the file and print its format")
	topLevel.AddCommand(cmd)
}
