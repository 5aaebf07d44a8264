package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ytget/quicktext/internal/model"
	"github.com/ytget/quicktext/internal/store"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func addExport(topLevel *cobra.Command, env *environment) {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print all presets, keeping group and preset order",
		Example: `
quicktext export > backup.json
quicktext export --format yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := env.openStore(cmd).Document()

			switch format {
			case FormatJSON:
				data, err := store.Encode(doc)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			case FormatYAML:
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(yamlDocument(doc)); err != nil {
					return fmt.Errorf("failed to encode yaml: %w", err)
				}
				return enc.Close()
			default:
				return fmt.Errorf("unsupported format %q, use %s or %s", format, FormatJSON, FormatYAML)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatJSON, "output format: json or yaml")
	topLevel.AddCommand(cmd)
}

// yamlDocument builds mapping nodes so the output keeps document order
func yamlDocument(doc *model.Document) *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, g := range doc.Groups {
		presets := &yaml.Node{Kind: yaml.MappingNode}
		for _, p := range g.Presets {
			presets.Content = append(presets.Content, stringNode(p.Name), stringNode(p.Content))
		}
		root.Content = append(root.Content, stringNode(g.Name), presets)
	}
	return root
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
