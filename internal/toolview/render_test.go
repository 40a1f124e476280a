package toolview

import (
	"fmt"
	"strings"
	"testing"
)

// =============================================================================
// Key-Value
// =============================================================================

func TestBuildKeyValueKeepsAbsentFields(t *testing.T) {
	schema := Normalize(&Schema{
		Display: DisplayKeyValue,
		Title:   "Meta",
		Fields: []Field{
			{Path: "present", Label: "Present"},
			{Path: "absent", Label: "Absent"},
		},
	})
	data := map[string]any{"present": "value"}

	entries := buildKeyValue(data, schema)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (absent fields are never dropped)", len(entries))
	}
	if entries[0].Lines[0] != "value" {
		t.Errorf("entries[0] = %q, want value", entries[0].Lines[0])
	}
	if entries[1].Lines[0] != EmptyValue {
		t.Errorf("entries[1] = %q, want empty-value marker", entries[1].Lines[0])
	}
}

func TestBuildKeyValueCollection(t *testing.T) {
	schema := Normalize(&Schema{
		Display: DisplayKeyValue,
		Title:   "Headings",
		Fields:  []Field{{Path: "h2s", Label: "H2 Headings"}},
	})
	data := map[string]any{"h2s": []any{"Intro", "Details", "Summary"}}

	entries := buildKeyValue(data, schema)
	if len(entries[0].Lines) != 3 {
		t.Fatalf("collection lines = %d, want one per element", len(entries[0].Lines))
	}
	if entries[0].Lines[1] != "Details" {
		t.Errorf("lines[1] = %q, want Details", entries[0].Lines[1])
	}
}

func TestBuildKeyValueURLFlag(t *testing.T) {
	schema := Normalize(&Schema{
		Display: DisplayKeyValue,
		Title:   "Links",
		Fields:  []Field{{Path: "canonical", Label: "Canonical", Format: FormatURL}},
	})
	data := map[string]any{"canonical": "https://example.com"}

	entries := buildKeyValue(data, schema)
	if !entries[0].IsURL {
		t.Error("url field should be flagged as a link")
	}
	if entries[0].Lines[0] != "https://example.com" {
		t.Errorf("url value transformed: %q", entries[0].Lines[0])
	}
}

// =============================================================================
// Data Table
// =============================================================================

func keywordTableSchema() *Schema {
	return Normalize(&Schema{
		Display: DisplayDataTable,
		Title:   "Keywords",
		Fields:  []Field{{Path: "keywords", Label: "Keywords"}},
	})
}

func TestBuildTableFromFirstArrayField(t *testing.T) {
	data := map[string]any{
		"keywords": []any{
			map[string]any{"term": "a", "count": float64(5)},
			map[string]any{"term": "b", "count": float64(2)},
		},
	}

	tv, ok := buildTable(data, keywordTableSchema())
	if !ok {
		t.Fatal("Expected tabular data")
	}
	if len(tv.Headers) != 2 || tv.Headers[0] != "Term" || tv.Headers[1] != "Count" {
		t.Errorf("Headers = %v, want [Term Count]", tv.Headers)
	}
	if len(tv.Rows) != 2 {
		t.Fatalf("Rows = %d, want 2", len(tv.Rows))
	}
	if tv.Rows[0][1] != "5" || tv.Rows[1][1] != "2" {
		t.Errorf("count column = %v / %v, want plain numbers", tv.Rows[0][1], tv.Rows[1][1])
	}
	if tv.Omitted != 0 {
		t.Errorf("Omitted = %d, want 0", tv.Omitted)
	}
}

func TestBuildTableRowCap(t *testing.T) {
	items := make([]any, 57)
	for i := range items {
		items[i] = map[string]any{"term": fmt.Sprintf("kw%d", i), "count": float64(i)}
	}
	data := map[string]any{"keywords": items}

	tv, ok := buildTable(data, keywordTableSchema())
	if !ok {
		t.Fatal("Expected tabular data")
	}
	if len(tv.Rows) != maxTableRows {
		t.Errorf("Rows = %d, want cap of %d", len(tv.Rows), maxTableRows)
	}
	if tv.Omitted != 57-maxTableRows {
		t.Errorf("Omitted = %d, want %d", tv.Omitted, 57-maxTableRows)
	}
	if tv.Total != 57 {
		t.Errorf("Total = %d, want 57", tv.Total)
	}
}

func TestBuildTableFirstRowColumnPolicy(t *testing.T) {
	// Columns come from the first row only; later rows with extra keys
	// lose them. Kept behavior, documented as a known limitation.
	data := map[string]any{
		"keywords": []any{
			map[string]any{"term": "a"},
			map[string]any{"term": "b", "extra": "dropped"},
		},
	}

	tv, _ := buildTable(data, keywordTableSchema())
	if len(tv.Headers) != 1 || tv.Headers[0] != "Term" {
		t.Errorf("Headers = %v, want first-row keys only", tv.Headers)
	}
}

func TestBuildTableMissingCellsUseMarker(t *testing.T) {
	data := map[string]any{
		"keywords": []any{
			map[string]any{"term": "a", "count": float64(1)},
			map[string]any{"term": "b"},
		},
	}

	tv, _ := buildTable(data, keywordTableSchema())
	if tv.Rows[1][1] != EmptyValue {
		t.Errorf("missing cell = %q, want marker", tv.Rows[1][1])
	}
}

func TestBuildTableDensityPercent(t *testing.T) {
	data := map[string]any{
		"keywords": []any{
			map[string]any{"term": "a", "density": 2.5},
		},
	}

	tv, _ := buildTable(data, keywordTableSchema())
	if tv.Rows[0][1] != "2.5%" {
		t.Errorf("density cell = %q, want 2.5%%", tv.Rows[0][1])
	}
}

func TestBuildTableNoTabularData(t *testing.T) {
	schema := keywordTableSchema()

	for _, data := range []any{
		map[string]any{"keywords": "not an array"},
		map[string]any{"keywords": []any{"plain", "strings"}},
		map[string]any{},
	} {
		if _, ok := buildTable(data, schema); ok {
			t.Errorf("buildTable(%v) found a table, want none", data)
		}
	}
}

// =============================================================================
// Score Card
// =============================================================================

func TestBuildScoreCard(t *testing.T) {
	schema := Normalize(&Schema{
		Display:         DisplayScoreCard,
		Title:           "SEO Score",
		ScoreField:      "score",
		SummaryTemplate: "Scanned {url}",
		Fields:          []Field{{Path: "pages", Label: "Pages", Format: FormatNumber}},
	})
	data := map[string]any{"score": float64(42), "url": "https://example.com", "pages": float64(1200)}

	sv := buildScoreCard(data, schema)
	if sv.Score != 42 {
		t.Errorf("Score = %v, want 42", sv.Score)
	}
	if sv.Band.Level != LevelMedium {
		t.Errorf("Level = %q, want medium", sv.Band.Level)
	}
	if sv.Band != Classify(42) {
		t.Error("score card band must match the shared classifier")
	}
	if !sv.HasSummary || sv.Summary != "Scanned https://example.com" {
		t.Errorf("Summary = %q, %v", sv.Summary, sv.HasSummary)
	}
	if len(sv.Grid) != 1 || sv.Grid[0].Lines[0] != "1,200" {
		t.Errorf("Grid = %+v, want formatted pages entry", sv.Grid)
	}
}

func TestBuildScoreCardAbsentScore(t *testing.T) {
	schema := Normalize(&Schema{Display: DisplayScoreCard, Title: "Score", ScoreField: "nope"})

	sv := buildScoreCard(map[string]any{}, schema)
	if sv.Score != 0 || sv.Band.Level != LevelLow {
		t.Errorf("absent score = %v/%q, want 0/low", sv.Score, sv.Band.Level)
	}
	if sv.HasSummary {
		t.Error("no template should mean no summary state")
	}
}

// =============================================================================
// Dispatcher and fault boundary
// =============================================================================

func TestRenderInvalidSchemaFallsBackToRaw(t *testing.T) {
	data := map[string]any{"anything": "goes"}

	for _, raw := range []any{nil, "junk", map[string]any{"title": "no display"}} {
		out := Render(data, raw, Options{Mode: ModeMarkdown})
		if !strings.Contains(out, `"anything": "goes"`) {
			t.Errorf("Render(%v) = %q, want raw JSON of data", raw, out)
		}
	}
}

func TestRenderUnknownKindDefaultsToRaw(t *testing.T) {
	out := Render(map[string]any{"k": "v"},
		map[string]any{"display": "hologram", "title": "Future"},
		Options{Mode: ModeMarkdown})
	if !strings.Contains(out, `"k": "v"`) {
		t.Errorf("unknown kind = %q, want raw fallback", out)
	}
}

func TestRenderKeywordTableExample(t *testing.T) {
	schema := map[string]any{
		"display": "data_table",
		"title":   "Keywords",
		"fields":  []any{map[string]any{"path": "keywords", "label": "Keywords"}},
	}
	data := map[string]any{
		"keywords": []any{
			map[string]any{"term": "a", "count": float64(5)},
			map[string]any{"term": "b", "count": float64(2)},
		},
	}

	out := Render(data, schema, Options{Mode: ModeMarkdown})
	if !strings.Contains(out, "| Term | Count |") {
		t.Errorf("missing header row: %q", out)
	}
	if !strings.Contains(out, "| a | 5 |") || !strings.Contains(out, "| b | 2 |") {
		t.Errorf("missing data rows: %q", out)
	}
}

func TestRenderIssuesNoIssuesState(t *testing.T) {
	schema := map[string]any{
		"display": "issues_list",
		"title":   "Issues",
		"fields":  []any{map[string]any{"path": "issues", "label": "Issues"}},
	}

	for _, data := range []any{
		map[string]any{"issues": []any{}},
		map[string]any{},
	} {
		out := Render(data, schema, Options{Mode: ModeMarkdown})
		if !strings.Contains(out, "No issues found") {
			t.Errorf("Render(%v) = %q, want positive no-issues state", data, out)
		}
	}
}

func TestRenderFaultBoundary(t *testing.T) {
	original := renderKindFn
	renderKindFn = func(any, *Schema, string, Options) string {
		panic("injected renderer failure")
	}
	defer func() { renderKindFn = original }()

	data := map[string]any{"payload": "untouched"}
	schema := map[string]any{"display": "key_value", "title": "Boom"}

	var out string
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("boundary re-panicked: %v", r)
			}
		}()
		out = Render(data, schema, Options{Mode: ModeMarkdown})
	}()

	if !strings.Contains(out, "Rendering failed") {
		t.Errorf("missing warning indicator: %q", out)
	}
	// The fallback shows the original, untransformed payload.
	if !strings.Contains(out, `"payload": "untouched"`) {
		t.Errorf("missing raw payload: %q", out)
	}
}

// =============================================================================
// Sections
// =============================================================================

func sectionedSchema() map[string]any {
	return map[string]any{
		"display":     "score_card",
		"title":       "SEO Audit",
		"score_field": "score",
		"sections": []any{
			map[string]any{"id": "overview", "label": "Overview", "display": "score_card", "score_field": "score"},
			map[string]any{"id": "meta", "label": "Meta", "display": "key_value",
				"fields": []any{map[string]any{"path": "seo.title", "label": "Title"}}},
			map[string]any{"id": "issues", "label": "Issues", "display": "issues_list",
				"fields": []any{map[string]any{"path": "issues", "label": "Issues"}}},
		},
	}
}

func TestActiveSection(t *testing.T) {
	schema, err := ParseSchema(sectionedSchema())
	if err != nil {
		t.Fatal(err)
	}

	if got := ActiveSection(schema, ""); got != 0 {
		t.Errorf("default active = %d, want 0", got)
	}
	if got := ActiveSection(schema, "issues"); got != 2 {
		t.Errorf("active(issues) = %d, want 2", got)
	}
	if got := ActiveSection(schema, "nonexistent"); got != 0 {
		t.Errorf("active(unknown) = %d, want 0", got)
	}
}

func TestRenderStyledActiveSectionOnly(t *testing.T) {
	data := map[string]any{
		"score": float64(55),
		"seo":   map[string]any{"title": "Welcome Page"},
		"issues": []any{"Missing title tag"},
	}

	out := Render(data, sectionedSchema(), Options{ActiveSection: "meta"})
	if !strings.Contains(out, "Welcome Page") {
		t.Errorf("active section content missing: %q", out)
	}
	if strings.Contains(out, "Missing title tag") {
		t.Errorf("inactive section content leaked: %q", out)
	}
}

func TestRenderMarkdownAllSections(t *testing.T) {
	data := map[string]any{
		"score":  float64(55),
		"seo":    map[string]any{"title": "Welcome Page"},
		"issues": []any{"Missing title tag"},
	}

	out := Render(data, sectionedSchema(), Options{Mode: ModeMarkdown})
	for _, want := range []string{"### Overview", "### Meta", "### Issues", "Welcome Page", "Missing title tag", "55/100"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown sections missing %q in %q", want, out)
		}
	}
}
