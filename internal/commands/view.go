// Package commands implements the sitescan subcommands.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/sitescan/sitescan-cli/internal/appctx"
	"github.com/sitescan/sitescan-cli/internal/output"
	"github.com/sitescan/sitescan-cli/internal/toolview"
	"github.com/sitescan/sitescan-cli/internal/tui"
	"github.com/sitescan/sitescan-cli/internal/tui/resultview"
)

// Document is one tool result as delivered by the backend: an opaque data
// payload, the producing tool's name, and an optional inline UI schema.
// A bare JSON value (no "data" key) is treated as a schemaless payload.
type Document struct {
	Tool   string
	Data   any
	Schema any
}

// NewViewCmd creates the view command.
func NewViewCmd() *cobra.Command {
	var (
		interactive bool
		watch       bool
	)

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Render a tool result document",
		Long: `Render a tool result document from a file or stdin.

The document is JSON of the form {"tool": ..., "data": ..., "ui": ...}.
The "ui" schema is optional: known tools fall back to built-in schemas,
and anything else renders as raw JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appctx.FromContext(cmd.Context())

			path := ""
			if len(args) == 1 && args[0] != "-" {
				path = args[0]
			}

			if watch {
				if path == "" {
					return output.ErrUsage("--watch requires a file argument")
				}
				return watchAndRender(cmd.Context(), app, path)
			}

			doc, err := loadDocument(path)
			if err != nil {
				return err
			}

			if interactive {
				return runInteractive(doc, app)
			}
			return renderDocument(app, doc)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the result in the interactive viewer")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render whenever the file changes")

	return cmd
}

// loadDocument reads and parses a result document from a file, or stdin when
// path is empty.
func loadDocument(path string) (*Document, error) {
	var raw []byte
	var err error
	if path == "" {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, output.ErrInput("reading stdin", err)
		}
	} else {
		raw, err = os.ReadFile(path) //nolint:gosec // G304: user-supplied input file
		if err != nil {
			if os.IsNotExist(err) {
				return nil, output.ErrNotFound(path)
			}
			return nil, output.ErrInput(fmt.Sprintf("reading %s", path), err)
		}
	}
	return parseDocument(raw)
}

func parseDocument(raw []byte) (*Document, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, output.ErrInput("result document is not valid JSON", err)
	}

	doc := &Document{}
	if m, ok := value.(map[string]any); ok {
		if data, hasData := m["data"]; hasData {
			doc.Tool, _ = m["tool"].(string)
			doc.Data = data
			doc.Schema = m["ui"]
			doc.fillSchema()
			return doc, nil
		}
	}

	// Bare payload: render it as-is, no schema envelope.
	doc.Data = value
	return doc, nil
}

// fillSchema falls back to the built-in schema registry when the document
// names a known tool but carries no inline schema.
func (d *Document) fillSchema() {
	if d.Schema != nil || d.Tool == "" {
		return
	}
	if s := toolview.LookupTool(d.Tool); s != nil {
		d.Schema = s
	}
}

func renderDocument(app *appctx.App, doc *Document) error {
	if app.Trace != nil {
		source := "inline"
		if doc.Schema == nil {
			source = "none"
		} else if _, ok := doc.Schema.(*toolview.Schema); ok {
			source = "registry"
		}
		app.Trace.Eventf("rendering %q result, schema source: %s", doc.Tool, source)
	}

	return app.Output().OK(&output.Response{
		Tool:   doc.Tool,
		Data:   doc.Data,
		Schema: doc.Schema,
	})
}

func runInteractive(doc *Document, app *appctx.App) error {
	styles := tui.NewStylesWithTheme(app.Theme)
	m := resultview.New(doc.Data, doc.Schema, styles)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// watchAndRender renders the file once, then re-renders on every write until
// interrupted.
func watchAndRender(ctx context.Context, app *appctx.App, path string) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	if err := renderDocument(app, doc); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: editors and tools often replace the file, which
	// drops a watch held on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	target, _ := filepath.Abs(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			evPath, _ := filepath.Abs(event.Name)
			if evPath != target || !event.Op.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			doc, err := loadDocument(path)
			if err != nil {
				// Partial writes are normal mid-save; report and keep watching.
				if app.Trace != nil {
					app.Trace.Eventf("reload skipped: %v", err)
				}
				continue
			}
			fmt.Println()
			if err := renderDocument(app, doc); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
