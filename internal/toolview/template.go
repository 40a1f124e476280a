package toolview

import (
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// ExpandTemplate performs single-pass substitution of {path} placeholders
// against the payload. Each placeholder is replaced by the resolved value
// under default formatting; absent values expand to the empty-value marker.
// No conditional or loop syntax exists, and substituted values are never
// re-scanned for placeholders.
//
// The second return value distinguishes "no summary" (absent template) from
// a summary that happens to expand to the empty string.
func ExpandTemplate(tmpl string, data any) (string, bool) {
	if tmpl == "" {
		return "", false
	}

	var b strings.Builder
	last := 0
	for _, loc := range placeholderPattern.FindAllStringSubmatchIndex(tmpl, -1) {
		b.WriteString(tmpl[last:loc[0]])
		path := tmpl[loc[2]:loc[3]]
		if v, ok := Resolve(data, path); ok {
			b.WriteString(Format(v, FormatPlain))
		} else {
			b.WriteString(EmptyValue)
		}
		last = loc[1]
	}
	b.WriteString(tmpl[last:])
	return b.String(), true
}
