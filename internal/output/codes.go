// Package output provides JSON/Markdown/styled output formatting and error
// handling for tool result documents.
package output

// Exit codes.
const (
	ExitOK       = 0 // Success
	ExitUsage    = 1 // Invalid arguments or flags
	ExitNotFound = 2 // Input file not found
	ExitInput    = 3 // Result document could not be parsed
	ExitInternal = 4 // Unexpected failure
)

// Error codes for the JSON envelope.
const (
	CodeUsage    = "usage"
	CodeNotFound = "not_found"
	CodeInput    = "bad_input"
	CodeInternal = "internal"
)

// ExitCodeFor returns the exit code for a given error code.
func ExitCodeFor(code string) int {
	switch code {
	case CodeUsage:
		return ExitUsage
	case CodeNotFound:
		return ExitNotFound
	case CodeInput:
		return ExitInput
	default:
		return ExitInternal
	}
}
