package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/quicktext/internal/model"
	"github.com/ytget/quicktext/internal/store"
)

func addAdd(topLevel *cobra.Command, env *environment) {
	var createGroup bool

	cmd := &cobra.Command{
		Use:   "add <group> <name> [content]",
		Short: "Add a preset",
		Long:  "Adds a preset to a group. Without a content argument the content is read from stdin.",
		Example: `
quicktext add Common Signature "Best regards"
git log -1 --format=%B | quicktext add Work "Last commit"
quicktext add --create-group Shell Uptime uptime
`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			group := model.NormalizeName(args[0])
			name := model.NormalizeName(args[1])

			var content string
			if len(args) == 3 {
				content = args[2]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read content: %w", err)
				}
				content = string(data)
			}
			content = strings.TrimRight(content, " \t\r\n")

			s := env.openStore(cmd)
			if _, ok := s.Document().Group(group); !ok && createGroup {
				if err := checkSave(cmd, s.AddGroup(group)); err != nil {
					return err
				}
			}

			err := s.AddPreset(group, name, content)
			if errors.Is(err, store.ErrGroupNotFound) {
				return fmt.Errorf("%w; use --create-group to create it", notFound("group", group, s.Document().Names(), store.ErrGroupNotFound))
			}
			if err := checkSave(cmd, err); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s/%s\n", group, name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&createGroup, "create-group", false, "create the group when it does not exist")
	topLevel.AddCommand(cmd)
}
