package toolview

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderMode controls the output backend.
type RenderMode int

const (
	ModeStyled   RenderMode = iota // ANSI styled terminal output
	ModeMarkdown                   // Literal Markdown syntax
)

// Tracer receives render-path events when verbose tracing is on. A nil
// Tracer disables tracing.
type Tracer interface {
	Eventf(format string, args ...any)
}

// Options configures one render call.
type Options struct {
	Mode   RenderMode
	Styles Styles
	// ActiveSection selects the visible tab by section id for multi-section
	// schemas. Empty or unknown ids fall back to the first section.
	ActiveSection string
	// Icons maps schema icon names to renderable glyphs. Resolved once at
	// startup by the caller; nil means DefaultIcons.
	Icons map[string]string
	Trace Tracer
}

// DefaultIcons is the built-in icon name to glyph mapping.
func DefaultIcons() map[string]string {
	return map[string]string{
		"chart":  "▦",
		"gauge":  "◉",
		"list":   "☰",
		"link":   "⎘",
		"search": "⌕",
		"alert":  "⚠",
		"doc":    "▤",
	}
}

// Render turns a tool payload and a raw schema value into display text. It
// never fails: an absent or invalid schema routes to the raw view, and any
// unexpected rendering failure is caught at this single boundary and
// replaced with a warning plus the raw view of the original data.
func Render(data any, rawSchema any, opts Options) (out string) {
	defer func() {
		if r := recover(); r != nil {
			trace(opts, "render failure contained: %v", r)
			out = renderFailure(data, r, opts)
		}
	}()

	schema, err := ParseSchema(rawSchema)
	if err != nil {
		// Expected for legacy tools without a schema: routing, not an error.
		trace(opts, "no usable schema (%v), raw view", err)
		return renderRaw(data, opts)
	}
	schema = Normalize(schema)

	if len(schema.Sections) > 1 {
		return renderSections(data, schema, opts)
	}
	return renderKindFn(data, schema, schema.Title, opts)
}

// renderKindFn is indirected for fault injection in tests.
var renderKindFn = renderKind

// renderKind routes a normalized schema to its per-kind renderer. Unknown
// kinds default to the raw view.
func renderKind(data any, schema *Schema, title string, opts Options) string {
	switch schema.Display {
	case DisplayKeyValue:
		return renderKeyValue(data, schema, title, opts)
	case DisplayDataTable:
		return renderTable(data, schema, title, opts)
	case DisplayIssuesList:
		return renderIssues(data, schema, title, opts)
	case DisplayScoreCard:
		return renderScoreCard(data, schema, title, opts)
	default:
		return renderTitled(title, renderRaw(data, opts), opts)
	}
}

func renderKeyValue(data any, schema *Schema, title string, opts Options) string {
	if opts.Mode == ModeMarkdown {
		return markdownKeyValue(data, schema, title)
	}
	st := opts.Styles

	var b strings.Builder
	writeTitle(&b, title, st)
	writeEntries(&b, buildKeyValue(data, schema), st)
	if summary, ok := ExpandTemplate(schema.SummaryTemplate, data); ok {
		b.WriteString("\n")
		b.WriteString(st.Muted.Render(summary))
		b.WriteString("\n")
	}
	return b.String()
}

func writeEntries(b *strings.Builder, entries []kvEntry, st Styles) {
	maxLen := 0
	for _, e := range entries {
		if len(e.Label) > maxLen {
			maxLen = len(e.Label)
		}
	}
	for _, e := range entries {
		valueStyle := st.Value
		if e.IsURL {
			valueStyle = st.Link
		}
		b.WriteString(st.Label.Render(fmt.Sprintf("  %-*s  ", maxLen, e.Label)))
		b.WriteString(valueStyle.Render(e.Lines[0]))
		b.WriteString("\n")
		for _, line := range e.Lines[1:] {
			b.WriteString(strings.Repeat(" ", maxLen+4))
			b.WriteString(valueStyle.Render(line))
			b.WriteString("\n")
		}
	}
}

func renderTable(data any, schema *Schema, title string, opts Options) string {
	if opts.Mode == ModeMarkdown {
		return markdownTable(data, schema, title)
	}
	st := opts.Styles

	var b strings.Builder
	writeTitle(&b, title, st)

	tv, ok := buildTable(data, schema)
	if !ok {
		b.WriteString(st.Muted.Render("  (no tabular data)"))
		b.WriteString("\n")
		return b.String()
	}
	if tv.Omitted > 0 {
		trace(opts, "table truncated: %d of %d rows shown", len(tv.Rows), tv.Total)
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.Header
			}
			return st.Cell
		})
	t.Headers(tv.Headers...)
	for _, row := range tv.Rows {
		t.Row(row...)
	}
	b.WriteString(t.String())
	b.WriteString("\n")

	if tv.Omitted > 0 {
		b.WriteString(st.Muted.Render(fmt.Sprintf("  … %d more rows not shown", tv.Omitted)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderIssues(data any, schema *Schema, title string, opts Options) string {
	if opts.Mode == ModeMarkdown {
		return markdownIssues(data, schema, title)
	}
	st := opts.Styles

	var b strings.Builder
	writeTitle(&b, title, st)

	issues, found := buildIssues(data, schema)
	if !found {
		b.WriteString(st.Success.Render("  ✓ No issues found"))
		b.WriteString("\n")
		return b.String()
	}
	for _, issue := range issues {
		marker := st.PriorityStyle(issue.Priority).Render(fmt.Sprintf("[%s]", issue.Priority))
		b.WriteString("  " + marker + " " + st.Value.Render(issue.Text))
		b.WriteString("\n")
	}
	return b.String()
}

// gaugeWidth is the cell count of the terminal stand-in for the web client's
// circular score gauge.
const gaugeWidth = 20

func renderScoreCard(data any, schema *Schema, title string, opts Options) string {
	if opts.Mode == ModeMarkdown {
		return markdownScoreCard(data, schema, title)
	}
	st := opts.Styles

	sv := buildScoreCard(data, schema)

	var b strings.Builder
	writeTitle(&b, title, st)

	filled := int(sv.Score / 100 * gaugeWidth)
	if filled > gaugeWidth {
		filled = gaugeWidth
	}
	if filled < 0 {
		filled = 0
	}
	gauge := st.GaugeOn.Render(strings.Repeat("█", filled)) +
		st.GaugeOff.Render(strings.Repeat("░", gaugeWidth-filled))

	b.WriteString("  " + gauge + "  ")
	b.WriteString(st.BandStyle(sv.Band).Render(fmt.Sprintf("%.0f", sv.Score)))
	b.WriteString(st.Muted.Render("/100 · "))
	b.WriteString(st.BandStyle(sv.Band).Render(string(sv.Band.Level)))
	b.WriteString("\n")

	if sv.HasSummary {
		b.WriteString("  " + st.Muted.Render(sv.Summary))
		b.WriteString("\n")
	}
	if len(sv.Grid) > 0 {
		b.WriteString("\n")
		writeEntries(&b, sv.Grid, st)
	}
	return b.String()
}

// renderSections composes a tabbed view: tab strip, a header with the
// schema-level score and summary, then the active section's body rendered
// through the same per-kind routing with a transient titleless schema.
func renderSections(data any, schema *Schema, opts Options) string {
	if opts.Mode == ModeMarkdown {
		return markdownSections(data, schema)
	}
	st := opts.Styles

	var b strings.Builder
	writeTitle(&b, schema.Title, st)

	// Header score and summary are independent of any per-tab score.
	if schema.ScoreField != "" {
		band := Classify(scoreAt(data, schema.ScoreField))
		b.WriteString("  " + st.BandStyle(band).Render(fmt.Sprintf("%.0f", scoreAt(data, schema.ScoreField))))
		b.WriteString(st.Muted.Render("/100 " + string(band.Level)))
		b.WriteString("\n")
	}
	if summary, ok := ExpandTemplate(schema.SummaryTemplate, data); ok {
		b.WriteString("  " + st.Muted.Render(summary))
		b.WriteString("\n")
	}

	active := ActiveSection(schema, opts.ActiveSection)
	b.WriteString("\n  " + renderTabStrip(schema.Sections, active, opts))
	b.WriteString("\n\n")

	sec := schema.Sections[active]
	b.WriteString(renderKind(data, sectionSchema(sec), "", opts))
	return b.String()
}

// ActiveSection resolves a section id to its index, defaulting to the first
// section when the id is empty or unknown. Callers must only use the result
// when the section list is non-empty.
func ActiveSection(schema *Schema, id string) int {
	if id == "" {
		return 0
	}
	for i, sec := range schema.Sections {
		if sec.ID == id {
			return i
		}
	}
	return 0
}

func renderTabStrip(sections []Section, active int, opts Options) string {
	icons := opts.Icons
	if icons == nil {
		icons = DefaultIcons()
	}
	st := opts.Styles

	tabs := make([]string, len(sections))
	for i, sec := range sections {
		label := sec.Label
		if glyph, ok := icons[sec.Icon]; ok && sec.Icon != "" {
			label = glyph + " " + label
		}
		if i == active {
			tabs[i] = st.TabOn.Render(label)
		} else {
			tabs[i] = st.TabOff.Render(label)
		}
	}
	return strings.Join(tabs, st.Muted.Render(" │ "))
}

// renderRaw serializes the payload verbatim as indented JSON. It is both the
// explicit raw display kind and the universal fallback, so it must not fail:
// unmarshalable values degrade to fmt formatting.
func renderRaw(data any, opts Options) string {
	if opts.Mode == ModeMarkdown {
		return markdownRaw(data)
	}
	return opts.Styles.Value.Render(rawJSON(data)) + "\n"
}

func rawJSON(data any) string {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", data)
	}
	return string(b)
}

// renderFailure is the fault-isolation fallback: a visible warning plus the
// raw view of the original, untransformed payload.
func renderFailure(data any, cause any, opts Options) string {
	if opts.Mode == ModeMarkdown {
		return fmt.Sprintf("> ⚠ Rendering failed (%v); showing raw result.\n\n%s", cause, markdownRaw(data))
	}
	banner := opts.Styles.Banner.Render(fmt.Sprintf("⚠ Rendering failed (%v); showing raw result.", cause))
	return banner + "\n\n" + renderRaw(data, opts)
}

func renderTitled(title, body string, opts Options) string {
	if title == "" {
		return body
	}
	var b strings.Builder
	writeTitle(&b, title, opts.Styles)
	b.WriteString(body)
	return b.String()
}

func writeTitle(b *strings.Builder, title string, st Styles) {
	if title == "" {
		return
	}
	b.WriteString(st.Title.Render(title))
	b.WriteString("\n")
}

func trace(opts Options, format string, args ...any) {
	if opts.Trace != nil {
		opts.Trace.Eventf(format, args...)
	}
}
