// Package assistant builds prompts for the text-completion service and
// parses its loosely structured responses into drafts, substituting
// deterministic fallback content whenever the service fails.
package assistant

import (
	"regexp"
	"strings"
)

// maxInputLen caps every user-supplied string embedded into a prompt.
const maxInputLen = 500

var (
	angleBrackets = regexp.MustCompile(`[<>]`)
	blankLineRuns = regexp.MustCompile(`\n\s*\n`)
)

// SanitizeInput strips prompt-injection vectors from user-supplied text
// before it is embedded into a template: angle brackets are removed, runs of
// blank lines collapse to one newline, and the result is trimmed and
// truncated to a fixed maximum length.
func SanitizeInput(input string) string {
	if input == "" {
		return ""
	}
	out := angleBrackets.ReplaceAllString(input, "")
	out = blankLineRuns.ReplaceAllString(out, "\n")
	out = strings.TrimSpace(out)

	runes := []rune(out)
	if len(runes) > maxInputLen {
		out = string(runes[:maxInputLen])
	}
	return out
}
