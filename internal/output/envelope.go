package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
)

// Response is the success envelope for JSON output and the carrier handed to
// the styled/Markdown renderers.
type Response struct {
	OK      bool           `json:"ok"`
	Tool    string         `json:"tool,omitempty"`
	Data    any            `json:"data,omitempty"`
	Schema  any            `json:"ui,omitempty"`
	Summary string         `json:"summary,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// ErrorResponse is the error envelope for JSON output.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
	Code  string `json:"code"`
	Hint  string `json:"hint,omitempty"`
}

// Format specifies the output format.
type Format int

const (
	FormatAuto     Format = iota // Auto-detect: TTY → Styled, non-TTY → JSON
	FormatJSON                   // JSON envelope
	FormatMarkdown               // Literal Markdown syntax (portable, pipeable)
	FormatStyled                 // ANSI styled output (forced, even when piped)
	FormatQuiet                  // Data only, no envelope
)

// Options controls output behavior.
type Options struct {
	Format Format
	Writer io.Writer
	// ActiveSection selects the visible tab for static multi-section output.
	ActiveSection string
	// Render turns (data, schema, styled, activeSection) into display text.
	// Injected by the caller so this package stays free of renderer wiring.
	Render RenderFunc
}

// RenderFunc is the schema-driven renderer boundary. Implementations must
// not fail; a nil RenderFunc degrades styled output to plain JSON.
type RenderFunc func(data any, rawSchema any, styled bool, activeSection string) string

// Writer handles all output formatting.
type Writer struct {
	opts Options
}

// New creates a new output writer.
func New(opts Options) *Writer {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	return &Writer{opts: opts}
}

// OK outputs a success response.
func (w *Writer) OK(resp *Response) error {
	resp.OK = true
	return w.write(resp)
}

// Err outputs an error response and returns the exit code to use.
func (w *Writer) Err(err error) int {
	e := AsError(err)
	resp := &ErrorResponse{
		OK:    false,
		Error: e.Message,
		Code:  e.Code,
		Hint:  e.Hint,
	}
	if w.resolveFormat() == FormatJSON {
		_ = w.writeJSON(resp)
	} else {
		fmt.Fprintf(w.opts.Writer, "Error: %s\n", e.Message)
		if e.Hint != "" {
			fmt.Fprintf(w.opts.Writer, "Hint: %s\n", e.Hint)
		}
	}
	return e.ExitCode()
}

func (w *Writer) resolveFormat() Format {
	if w.opts.Format != FormatAuto {
		return w.opts.Format
	}
	if isTTY(w.opts.Writer) {
		return FormatStyled
	}
	return FormatJSON
}

func (w *Writer) write(resp *Response) error {
	switch w.resolveFormat() {
	case FormatQuiet:
		return w.writeJSON(resp.Data)
	case FormatMarkdown:
		return w.writeRendered(resp, false)
	case FormatStyled:
		return w.writeRendered(resp, true)
	default:
		return w.writeJSON(resp)
	}
}

func (w *Writer) writeRendered(resp *Response, styled bool) error {
	if w.opts.Render == nil {
		return w.writeJSON(resp.Data)
	}
	text := w.opts.Render(resp.Data, resp.Schema, styled, w.opts.ActiveSection)
	_, err := io.WriteString(w.opts.Writer, text)
	return err
}

func (w *Writer) writeJSON(v any) error {
	enc := json.NewEncoder(w.opts.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// isTTY checks if the writer is a terminal.
func isTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(f.Fd())
	}
	return false
}
