package toolview

import (
	"sort"
	"strings"
)

// Intermediate view structures. Per-kind renderers build these bounded
// structures from (data, schema) first, then the styled and Markdown
// backends turn them into text. Keeping the two steps apart makes the
// resource policies (row cap, absence markers) testable without ANSI noise.

// maxTableRows caps table output. This is resource protection for the
// display surface, not a statement about the data: the omitted count is
// always reported alongside.
const maxTableRows = 20

// kvEntry is one rendered key-value row.
type kvEntry struct {
	Label string
	// Lines holds the formatted value, one element per display line.
	// Homogeneous collections render each element on its own line.
	Lines []string
	IsURL bool
}

// buildKeyValue resolves every schema field in order. Absent fields still
// produce an entry with the empty-value marker; no field is dropped.
func buildKeyValue(data any, schema *Schema) []kvEntry {
	entries := make([]kvEntry, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		v, ok := resolveField(data, f)
		if !ok {
			entries = append(entries, kvEntry{Label: f.Label, Lines: []string{EmptyValue}})
			continue
		}
		if items, isList := v.([]any); isList && len(items) > 0 {
			lines := make([]string, len(items))
			for i, it := range items {
				lines[i] = Format(it, f.Format)
			}
			entries = append(entries, kvEntry{Label: f.Label, Lines: lines})
			continue
		}
		entries = append(entries, kvEntry{
			Label: f.Label,
			Lines: []string{Format(v, f.Format)},
			IsURL: f.Format == FormatURL,
		})
	}
	return entries
}

// tableView is a bounded tabular projection of one array-of-records field.
type tableView struct {
	Headers []string
	Rows    [][]string
	Total   int
	Omitted int
}

// buildTable scans schema fields for the first one resolving to an array of
// uniform records. The column set comes from the first row's keys only; rows
// with extra keys lose them. That first-row policy is reproducible but
// occasionally lossy, and is kept deliberately (see DESIGN.md).
func buildTable(data any, schema *Schema) (tableView, bool) {
	for _, f := range schema.Fields {
		v, ok := resolveField(data, f)
		if !ok {
			continue
		}
		records, ok := asRecordSlice(v)
		if !ok {
			continue
		}
		return projectTable(records), true
	}
	return tableView{}, false
}

func projectTable(records []map[string]any) tableView {
	keys := recordKeys(records[0])

	tv := tableView{
		Headers: make([]string, len(keys)),
		Total:   len(records),
	}
	formats := make([]FormatKind, len(keys))
	for i, k := range keys {
		tv.Headers[i] = fieldLabel(k)
		formats[i] = inferColumnFormat(k)
	}

	limit := len(records)
	if limit > maxTableRows {
		limit = maxTableRows
		tv.Omitted = len(records) - maxTableRows
	}
	tv.Rows = make([][]string, 0, limit)
	for _, rec := range records[:limit] {
		row := make([]string, len(keys))
		for i, k := range keys {
			if v, ok := rec[k]; ok {
				row[i] = Format(v, formats[i])
			} else {
				row[i] = EmptyValue
			}
		}
		tv.Rows = append(tv.Rows, row)
	}
	return tv
}

// buildIssues locates the first field resolving to an array of strings and
// triages it. The second return reports whether any issues exist; false
// means the positive "no issues" state.
func buildIssues(data any, schema *Schema) ([]Issue, bool) {
	for _, f := range schema.Fields {
		v, ok := resolveField(data, f)
		if !ok {
			continue
		}
		texts, ok := asStringSlice(v)
		if !ok {
			continue
		}
		if len(texts) == 0 {
			return nil, false
		}
		return PrioritizeIssues(texts), true
	}
	return nil, false
}

// scoreView is the resolved score card content.
type scoreView struct {
	Score      float64
	Band       Band
	Summary    string
	HasSummary bool
	Grid       []kvEntry
}

func buildScoreCard(data any, schema *Schema) scoreView {
	sv := scoreView{Score: scoreAt(data, schema.ScoreField)}
	sv.Band = Classify(sv.Score)
	sv.Summary, sv.HasSummary = ExpandTemplate(schema.SummaryTemplate, data)
	if len(schema.Fields) > 0 {
		sv.Grid = buildKeyValue(data, schema)
	}
	return sv
}

// columnPriority orders table columns deterministically: identifying keys
// first, metrics after, everything else alphabetical in between. JSON object
// keys carry no order once decoded, so some fixed policy is required.
var columnPriority = map[string]int{
	"term":    1,
	"keyword": 1,
	"name":    2,
	"title":   2,
	"label":   2,
	"url":     3,
	"path":    3,
	"status":  4,
	"count":   6,
	"density": 6,
	"score":   6,
}

func recordKeys(rec map[string]any) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		pi, pj := keyPriority(keys[i]), keyPriority(keys[j])
		if pi != pj {
			return pi < pj
		}
		return keys[i] < keys[j]
	})
	return keys
}

func keyPriority(key string) int {
	if p, ok := columnPriority[strings.ToLower(key)]; ok {
		return p
	}
	return 5
}
