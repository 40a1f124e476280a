// Package toolview renders backend tool results from declarative UI schemas.
// It sits between commands and the output layer: a tool returns an opaque JSON
// payload plus an optional compact schema describing how to present it, and
// toolview turns the pair into terminal output without knowing each tool's
// shape in advance. Missing or malformed schemas degrade to a raw view of the
// payload rather than failing.
package toolview

import (
	"errors"
	"fmt"
)

// DisplayKind selects the rendering variant for a schema or section.
// The set is closed: unknown kinds route to the raw view.
type DisplayKind string

const (
	DisplayScoreCard  DisplayKind = "score_card"
	DisplayKeyValue   DisplayKind = "key_value"
	DisplayDataTable  DisplayKind = "data_table"
	DisplayIssuesList DisplayKind = "issues_list"
	DisplayRaw        DisplayKind = "raw"
)

// FormatKind governs how a resolved field value is formatted for display.
type FormatKind string

const (
	FormatPlain   FormatKind = ""
	FormatPercent FormatKind = "percent"
	FormatNumber  FormatKind = "number"
	FormatURL     FormatKind = "url"
	FormatDate    FormatKind = "date"
)

// Field addresses one value inside a tool payload. Path is always evaluated
// against the payload, never against the schema itself.
type Field struct {
	Path   string     `yaml:"path" json:"path"`
	Label  string     `yaml:"label" json:"label"`
	Format FormatKind `yaml:"format,omitempty" json:"format,omitempty"`
}

// Section is an independently rendered sub-schema shown as one tab.
// It has the same shape as Schema minus nested sections.
type Section struct {
	ID              string      `yaml:"id" json:"id"`
	Label           string      `yaml:"label" json:"label"`
	Icon            string      `yaml:"icon,omitempty" json:"icon,omitempty"`
	Display         DisplayKind `yaml:"display" json:"display"`
	Title           string      `yaml:"title,omitempty" json:"title,omitempty"`
	Fields          []Field     `yaml:"fields,omitempty" json:"fields,omitempty"`
	ScoreField      string      `yaml:"score_field,omitempty" json:"score_field,omitempty"`
	SummaryTemplate string      `yaml:"summary_template,omitempty" json:"summary_template,omitempty"`
}

// Schema describes how a tool result wants to be presented. Schemas are
// short-lived values for a single render cycle: normalized on receipt,
// discarded after the call.
type Schema struct {
	Tool            string      `yaml:"tool,omitempty" json:"tool,omitempty"`
	Display         DisplayKind `yaml:"display" json:"display"`
	Title           string      `yaml:"title" json:"title"`
	Fields          []Field     `yaml:"fields,omitempty" json:"fields,omitempty"`
	Sections        []Section   `yaml:"sections,omitempty" json:"sections,omitempty"`
	ScoreField      string      `yaml:"score_field,omitempty" json:"score_field,omitempty"`
	SummaryTemplate string      `yaml:"summary_template,omitempty" json:"summary_template,omitempty"`
	Expandable      *bool       `yaml:"expandable,omitempty" json:"expandable,omitempty"`
}

// ErrInvalidSchema reports a schema that must not reach a per-kind renderer.
// It is an expected outcome for legacy tools, not a failure: callers route to
// the raw view instead of propagating it.
var ErrInvalidSchema = errors.New("invalid ui schema")

// Validate checks the two hard requirements: display and title present.
func (s *Schema) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: schema is nil", ErrInvalidSchema)
	}
	if s.Display == "" {
		return fmt.Errorf("%w: missing display", ErrInvalidSchema)
	}
	if s.Title == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidSchema)
	}
	return nil
}

// ParseSchema converts an already-deserialized schema value (typically a
// map[string]any out of a JSON document) into a typed Schema. It returns
// ErrInvalidSchema when the value is absent, not an object, or missing the
// required display/title strings.
func ParseSchema(raw any) (*Schema, error) {
	switch v := raw.(type) {
	case nil:
		return nil, fmt.Errorf("%w: no schema supplied", ErrInvalidSchema)
	case *Schema:
		if err := v.Validate(); err != nil {
			return nil, err
		}
		return v, nil
	case Schema:
		if err := v.Validate(); err != nil {
			return nil, err
		}
		return &v, nil
	case map[string]any:
		s := schemaFromMap(v)
		if err := s.Validate(); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: expected object, got %T", ErrInvalidSchema, raw)
	}
}

func schemaFromMap(m map[string]any) *Schema {
	s := &Schema{
		Tool:            stringAt(m, "tool"),
		Display:         DisplayKind(stringAt(m, "display")),
		Title:           stringAt(m, "title"),
		ScoreField:      stringAt(m, "score_field"),
		SummaryTemplate: stringAt(m, "summary_template"),
		Fields:          fieldsFromAny(m["fields"]),
	}
	if b, ok := m["expandable"].(bool); ok {
		s.Expandable = &b
	}
	if rawSections, ok := m["sections"].([]any); ok {
		for _, rs := range rawSections {
			sm, ok := rs.(map[string]any)
			if !ok {
				continue
			}
			s.Sections = append(s.Sections, Section{
				ID:              stringAt(sm, "id"),
				Label:           stringAt(sm, "label"),
				Icon:            stringAt(sm, "icon"),
				Display:         DisplayKind(stringAt(sm, "display")),
				Title:           stringAt(sm, "title"),
				Fields:          fieldsFromAny(sm["fields"]),
				ScoreField:      stringAt(sm, "score_field"),
				SummaryTemplate: stringAt(sm, "summary_template"),
			})
		}
	}
	return s
}

func fieldsFromAny(raw any) []Field {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	var fields []Field
	for _, it := range items {
		fm, ok := it.(map[string]any)
		if !ok {
			continue
		}
		fields = append(fields, Field{
			Path:   stringAt(fm, "path"),
			Label:  stringAt(fm, "label"),
			Format: FormatKind(stringAt(fm, "format")),
		})
	}
	return fields
}

func stringAt(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// Normalize fills schema defaults without mutating the input: empty field and
// section slices, expandable true. Normalize is idempotent.
func Normalize(s *Schema) *Schema {
	if s == nil {
		return nil
	}
	out := *s
	if out.Fields == nil {
		out.Fields = []Field{}
	}
	if out.Sections == nil {
		out.Sections = []Section{}
	}
	if out.Expandable == nil {
		t := true
		out.Expandable = &t
	}
	return &out
}

// sectionSchema synthesizes the transient schema for one tab. The title is
// left empty so per-kind renderers do not repeat it inside the tab body.
func sectionSchema(sec Section) *Schema {
	return Normalize(&Schema{
		Display:         sec.Display,
		Title:           "",
		Fields:          sec.Fields,
		ScoreField:      sec.ScoreField,
		SummaryTemplate: sec.SummaryTemplate,
	})
}
