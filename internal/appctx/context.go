// Package appctx provides application context helpers.
package appctx

import (
	"context"

	"github.com/sitescan/sitescan-cli/internal/config"
	"github.com/sitescan/sitescan-cli/internal/observability"
	"github.com/sitescan/sitescan-cli/internal/output"
	"github.com/sitescan/sitescan-cli/internal/toolview"
	"github.com/sitescan/sitescan-cli/internal/tui"
)

// contextKey is a private type for context keys.
type contextKey string

const appKey contextKey = "app"

// App holds the shared application context for all commands.
type App struct {
	Config *config.Config
	Theme  tui.Theme
	Trace  *observability.TraceWriter // nil unless -v

	// Flags holds the global flag values
	Flags GlobalFlags
}

// GlobalFlags holds values for global CLI flags.
type GlobalFlags struct {
	JSON    bool
	Quiet   bool
	MD      bool // Literal Markdown syntax output
	Styled  bool // Force ANSI styled output (even when piped)
	Verbose int
	Tab     string // Initial section tab by id
}

// NewApp creates an App from resolved configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		Theme:  tui.ResolveTheme(cfg.Theme),
	}
}

// ApplyFlags finalizes flag-dependent state. Called once after flag parsing.
func (a *App) ApplyFlags() {
	if a.Flags.Verbose > 0 || a.Config.Verbose > 0 {
		a.Trace = observability.NewTraceWriter()
	}
}

// OutputFormat resolves the output format from flags and config.
func (a *App) OutputFormat() output.Format {
	switch {
	case a.Flags.Quiet:
		return output.FormatQuiet
	case a.Flags.JSON:
		return output.FormatJSON
	case a.Flags.MD:
		return output.FormatMarkdown
	case a.Flags.Styled:
		return output.FormatStyled
	}
	switch a.Config.Format {
	case "json":
		return output.FormatJSON
	case "md", "markdown":
		return output.FormatMarkdown
	case "styled":
		return output.FormatStyled
	case "quiet":
		return output.FormatQuiet
	default:
		return output.FormatAuto
	}
}

// Output builds the output writer for the current invocation, with the
// schema-driven renderer wired in.
func (a *App) Output() *output.Writer {
	theme := a.Theme
	trace := a.Trace
	return output.New(output.Options{
		Format:        a.OutputFormat(),
		ActiveSection: a.Flags.Tab,
		Render: func(data any, rawSchema any, styled bool, activeSection string) string {
			mode := toolview.ModeMarkdown
			if styled {
				mode = toolview.ModeStyled
			}
			opts := toolview.Options{
				Mode:          mode,
				Styles:        toolview.NewStyles(theme, styled),
				ActiveSection: activeSection,
			}
			if trace != nil {
				opts.Trace = trace
			}
			return toolview.Render(data, rawSchema, opts)
		},
	})
}

// WithApp stores the app in a context.
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey, app)
}

// FromContext retrieves the app from a context, or nil.
func FromContext(ctx context.Context) *App {
	app, _ := ctx.Value(appKey).(*App)
	return app
}
