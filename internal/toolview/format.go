package toolview

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// EmptyValue is the marker shown for absent values. Fields whose path does
// not resolve still render their label with this marker; they are never
// silently dropped, and "undefined" never leaks into output.
const EmptyValue = "—"

// compactLimit caps the compact serialization of unhandled containers.
const compactLimit = 120

// printer produces deterministic thousands grouping regardless of the user's
// locale. Tool output must be stable across machines, so the tag is fixed.
var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders a raw payload value as a display string according to kind.
// It is a pure function: non-conforming input falls back to plain
// stringification rather than failing.
func Format(v any, kind FormatKind) string {
	switch kind {
	case FormatPercent:
		if f, ok := toFloat(v); ok {
			return printer.Sprintf("%.1f%%", f)
		}
		return formatPlain(v)
	case FormatNumber:
		if f, ok := toFloat(v); ok {
			return printer.Sprint(number.Decimal(f))
		}
		return formatPlain(v)
	case FormatDate:
		return formatDate(v)
	case FormatURL:
		// The url kind is a presentation hint, not a transformation;
		// renderers style the value, the string itself is untouched.
		return formatPlain(v)
	default:
		return formatPlain(v)
	}
}

// formatPlain renders any value in its natural string form. Containers not
// otherwise handled serialize as compact JSON capped at compactLimit.
func formatPlain(v any) string {
	switch val := v.(type) {
	case nil:
		return EmptyValue
	case string:
		return val
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%.2f", val)
	case int:
		return fmt.Sprintf("%d", val)
	case int64:
		return fmt.Sprintf("%d", val)
	case map[string]any, []any:
		return compactJSON(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func compactJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	s := string(b)
	if len(s) > compactLimit {
		return s[:compactLimit] + "…"
	}
	return s
}

// formatDate parses a timestamp value and renders it in a fixed human
// readable form. Accepted inputs: RFC3339 timestamps, date-only strings, and
// numeric epoch seconds. Unparsable input falls back to plain stringification
// of the original value.
func formatDate(v any) string {
	switch val := v.(type) {
	case string:
		if val == "" {
			return EmptyValue
		}
		if t, err := time.Parse(time.RFC3339, val); err == nil {
			return t.Format("Jan 2, 2006 15:04")
		}
		if t, err := time.Parse("2006-01-02", val); err == nil {
			return t.Format("Jan 2, 2006")
		}
		return val
	case float64:
		return time.Unix(int64(val), 0).UTC().Format("Jan 2, 2006 15:04")
	case int64:
		return time.Unix(val, 0).UTC().Format("Jan 2, 2006 15:04")
	default:
		return formatPlain(v)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// fieldLabel derives a human column header from a raw record key:
// separators become spaces and each word is capitalized.
func fieldLabel(key string) string {
	key = strings.ReplaceAll(key, "_", " ")
	key = strings.ReplaceAll(key, "-", " ")
	words := strings.Fields(key)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// inferColumnFormat picks per-cell formatting from a column key. Keys
// containing "density" read as percentages, keys containing "count" as
// grouped numbers; everything else stays plain.
func inferColumnFormat(key string) FormatKind {
	lower := strings.ToLower(key)
	switch {
	case strings.Contains(lower, "density"):
		return FormatPercent
	case strings.Contains(lower, "count"):
		return FormatNumber
	default:
		return FormatPlain
	}
}
