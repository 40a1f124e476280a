package toolview

import (
	"sort"
	"strings"
)

// Priority orders issues for display. Lower rank renders first.
type Priority int

const (
	PriorityHigh Priority = iota
	PriorityMedium
	PriorityLow
)

// String returns the lowercase label used in output.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}

// Issue is one free-text finding with its computed priority.
type Issue struct {
	Text     string
	Priority Priority
}

// issueKeywords is the versioned triage table for free-text issues. Matching
// is case-insensitive substring matching, so this is best-effort triage over
// prose, not ground truth over structured fields.
//
// mediumOverrides are checked before the high set: "missing og:" and
// "missing canonical" would otherwise be caught by the bare "missing" rule.
var issueKeywords = struct {
	mediumOverrides []string
	high            []string
	medium          []string
}{
	mediumOverrides: []string{"missing og:", "missing canonical"},
	high:            []string{"missing", "no h1", "multiple h1"},
	medium:          []string{"too short", "too long", "empty"},
}

// ClassifyIssue assigns a priority to one issue string.
func ClassifyIssue(text string) Priority {
	lower := strings.ToLower(text)
	for _, kw := range issueKeywords.mediumOverrides {
		if strings.Contains(lower, kw) {
			return PriorityMedium
		}
	}
	for _, kw := range issueKeywords.high {
		if strings.Contains(lower, kw) {
			return PriorityHigh
		}
	}
	for _, kw := range issueKeywords.medium {
		if strings.Contains(lower, kw) {
			return PriorityMedium
		}
	}
	return PriorityLow
}

// PrioritizeIssues classifies each issue string and sorts the result by
// ascending priority rank (high first). The sort is stable: issues of equal
// priority keep their original relative order.
func PrioritizeIssues(texts []string) []Issue {
	issues := make([]Issue, len(texts))
	for i, t := range texts {
		issues[i] = Issue{Text: t, Priority: ClassifyIssue(t)}
	}
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Priority < issues[j].Priority
	})
	return issues
}
