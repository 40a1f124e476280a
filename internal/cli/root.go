// Package cli wires up the sitescan root command.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sitescan/sitescan-cli/internal/appctx"
	"github.com/sitescan/sitescan-cli/internal/commands"
	"github.com/sitescan/sitescan-cli/internal/config"
	"github.com/sitescan/sitescan-cli/internal/output"
	"github.com/sitescan/sitescan-cli/internal/version"
)

// NewRootCmd creates the root cobra command.
func NewRootCmd() *cobra.Command {
	var flags appctx.GlobalFlags

	cmd := &cobra.Command{
		Use:           "sitescan",
		Short:         "Terminal viewer for site-audit tool results",
		Long:          "sitescan renders JSON results from site-audit backend tools, using each result's declarative UI schema when one is available.",
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}

			cfg, err := config.Load(config.FlagOverrides{
				Verbose: flags.Verbose,
			})
			if err != nil {
				return err
			}

			app := appctx.NewApp(cfg)
			app.Flags = flags
			app.ApplyFlags()

			cmd.SetContext(appctx.WithApp(cmd.Context(), app))
			return nil
		},
	}

	cmd.Flags().SetInterspersed(true)
	cmd.PersistentFlags().SetInterspersed(true)

	// Output format flags
	cmd.PersistentFlags().BoolVarP(&flags.JSON, "json", "j", false, "Output as JSON")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Output data only, no envelope")
	cmd.PersistentFlags().BoolVarP(&flags.MD, "md", "m", false, "Output as Markdown (portable)")
	cmd.PersistentFlags().BoolVar(&flags.MD, "markdown", false, "Output as Markdown (portable)")
	cmd.PersistentFlags().BoolVar(&flags.Styled, "styled", false, "Force styled output (ANSI colors)")

	// Behavior flags
	cmd.PersistentFlags().CountVarP(&flags.Verbose, "verbose", "v", "Verbose render tracing on stderr")
	cmd.PersistentFlags().StringVar(&flags.Tab, "tab", "", "Initial section tab (by id) for multi-section results")

	return cmd
}

// Execute runs the root command.
func Execute() {
	cmd := NewRootCmd()

	cmd.AddCommand(commands.NewViewCmd())
	cmd.AddCommand(commands.NewSchemasCmd())

	if err := cmd.Execute(); err != nil {
		w := output.New(output.Options{Writer: os.Stderr})
		os.Exit(w.Err(err))
	}
}
