package toolview

import (
	"strconv"
	"strings"
)

// Resolve walks a dot-delimited path (e.g. "seo.h1.count") through a nested
// payload. Map keys and numeric array indices are both accepted as segments.
// Absence is a first-class outcome: if any intermediate node is missing, nil,
// or a scalar where a container was expected, Resolve returns (nil, false).
// It never panics on missing data.
func Resolve(data any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	current := data
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			// Scalar or nil mid-path: nothing to traverse into.
			return nil, false
		}
	}

	if current == nil {
		return nil, false
	}
	return current, true
}

// resolveField resolves a field's path and reports absence.
func resolveField(data any, f Field) (any, bool) {
	return Resolve(data, f.Path)
}

// asRecordSlice reports whether a value is an array of uniform records
// (objects), converting it when so. Used by the data table renderer to
// autodetect which field is tabular.
func asRecordSlice(v any) ([]map[string]any, bool) {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil, false
	}
	records := make([]map[string]any, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			return nil, false
		}
		records = append(records, m)
	}
	return records, true
}

// asStringSlice reports whether a value is an array of strings, converting it
// when so. Used by the issues list renderer.
func asStringSlice(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
