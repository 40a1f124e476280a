package toolview

import (
	"fmt"
	"strings"
)

// Markdown backends for each display kind. Markdown output is portable and
// pipeable; it carries no ANSI styling and no tab interactivity, so a
// multi-section schema renders every section in order instead.

func markdownKeyValue(data any, schema *Schema, title string) string {
	var b strings.Builder
	writeMarkdownTitle(&b, title)
	for _, e := range buildKeyValue(data, schema) {
		if e.IsURL {
			b.WriteString("- **" + e.Label + ":** <" + e.Lines[0] + ">\n")
			continue
		}
		b.WriteString("- **" + e.Label + ":** " + strings.Join(e.Lines, ", ") + "\n")
	}
	if summary, ok := ExpandTemplate(schema.SummaryTemplate, data); ok {
		b.WriteString("\n" + summary + "\n")
	}
	return b.String()
}

func markdownTable(data any, schema *Schema, title string) string {
	var b strings.Builder
	writeMarkdownTitle(&b, title)

	tv, ok := buildTable(data, schema)
	if !ok {
		b.WriteString("_No tabular data._\n")
		return b.String()
	}

	dividers := make([]string, len(tv.Headers))
	for i := range dividers {
		dividers[i] = "---"
	}
	b.WriteString("| " + strings.Join(tv.Headers, " | ") + " |\n")
	b.WriteString("| " + strings.Join(dividers, " | ") + " |\n")
	for _, row := range tv.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = escapePipe(c)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	if tv.Omitted > 0 {
		b.WriteString(fmt.Sprintf("\n_… %d more rows not shown._\n", tv.Omitted))
	}
	return b.String()
}

func markdownIssues(data any, schema *Schema, title string) string {
	var b strings.Builder
	writeMarkdownTitle(&b, title)

	issues, found := buildIssues(data, schema)
	if !found {
		b.WriteString("✓ No issues found\n")
		return b.String()
	}
	for _, issue := range issues {
		b.WriteString(fmt.Sprintf("- **[%s]** %s\n", issue.Priority, issue.Text))
	}
	return b.String()
}

func markdownScoreCard(data any, schema *Schema, title string) string {
	sv := buildScoreCard(data, schema)

	var b strings.Builder
	writeMarkdownTitle(&b, title)
	b.WriteString(fmt.Sprintf("**%.0f/100** · %s\n", sv.Score, sv.Band.Level))
	if sv.HasSummary {
		b.WriteString("\n" + sv.Summary + "\n")
	}
	if len(sv.Grid) > 0 {
		b.WriteString("\n")
		for _, e := range sv.Grid {
			b.WriteString("- **" + e.Label + ":** " + strings.Join(e.Lines, ", ") + "\n")
		}
	}
	return b.String()
}

func markdownSections(data any, schema *Schema) string {
	var b strings.Builder
	writeMarkdownTitle(&b, schema.Title)

	if schema.ScoreField != "" {
		score := scoreAt(data, schema.ScoreField)
		b.WriteString(fmt.Sprintf("**%.0f/100** · %s\n\n", score, Classify(score).Level))
	}
	if summary, ok := ExpandTemplate(schema.SummaryTemplate, data); ok {
		b.WriteString(summary + "\n\n")
	}

	mdOpts := Options{Mode: ModeMarkdown}
	for _, sec := range schema.Sections {
		b.WriteString("### " + sec.Label + "\n\n")
		b.WriteString(renderKind(data, sectionSchema(sec), "", mdOpts))
		b.WriteString("\n")
	}
	return b.String()
}

func markdownRaw(data any) string {
	return "```json\n" + rawJSON(data) + "\n```\n"
}

func writeMarkdownTitle(b *strings.Builder, title string) {
	if title == "" {
		return
	}
	b.WriteString("## " + title + "\n\n")
}

// escapePipe escapes pipe characters in Markdown table cells.
func escapePipe(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
