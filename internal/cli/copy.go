package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/quicktext/internal/model"
	"github.com/ytget/quicktext/internal/search"
	"github.com/ytget/quicktext/internal/store"
)

func addCopy(topLevel *cobra.Command, env *environment) {
	var fuzzy bool

	cmd := &cobra.Command{
		Use:   "copy <group> <name>",
		Short: "Copy a preset to the clipboard",
		Example: `
quicktext copy Common Welcome
quicktext copy --fuzzy netdiag
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if fuzzy {
				if len(args) < 1 {
					return errors.New("requires a query")
				}
				return nil
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := env.openStore(cmd).Document()

			var (
				r   model.SearchResult
				err error
			)
			if fuzzy {
				r, err = search.Resolve(doc, strings.Join(args, " "))
			} else {
				r, err = lookup(doc, args[0], args[1])
			}
			if err != nil {
				return err
			}

			if err := env.clipboard().SetText(r.Content); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %s%s%s: %s\n", r.Group, search.LabelSeparator, r.Name, r.Preset().Snippet(model.SnippetLength))
			return nil
		},
	}

	cmd.Flags().BoolVar(&fuzzy, "fuzzy", false, "pick the closest match for a group/name query")
	topLevel.AddCommand(cmd)
}

// lookup finds a preset by exact names
func lookup(doc *model.Document, group, name string) (model.SearchResult, error) {
	group = model.NormalizeName(group)
	name = model.NormalizeName(name)

	g, ok := doc.Group(group)
	if !ok {
		return model.SearchResult{}, notFound("group", group, doc.Names(), store.ErrGroupNotFound)
	}
	p, ok := g.Preset(name)
	if !ok {
		return model.SearchResult{}, notFound("preset", name, g.Names(), store.ErrPresetNotFound)
	}
	return model.SearchResult{Group: g.Name, Name: p.Name, Content: p.Content}, nil
}
