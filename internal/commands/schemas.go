package commands

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/sitescan/sitescan-cli/internal/appctx"
	"github.com/sitescan/sitescan-cli/internal/output"
	"github.com/sitescan/sitescan-cli/internal/toolview"
)

// NewSchemasCmd creates the schemas command, listing the built-in tool
// schemas the viewer falls back to for results without an inline schema.
func NewSchemasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List built-in tool schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appctx.FromContext(cmd.Context())

			tools := toolview.KnownTools()
			sort.Strings(tools)

			rows := make([]any, 0, len(tools))
			for _, name := range tools {
				s := toolview.LookupTool(name)
				rows = append(rows, map[string]any{
					"tool":     name,
					"display":  string(s.Display),
					"title":    s.Title,
					"sections": float64(len(s.Sections)),
				})
			}

			return app.Output().OK(&output.Response{
				Data: map[string]any{"schemas": rows},
				Schema: &toolview.Schema{
					Display: toolview.DisplayDataTable,
					Title:   "Built-in Schemas",
					Fields:  []toolview.Field{{Path: "schemas", Label: "Schemas"}},
				},
			})
		},
	}
}
