package assistant

import (
	"regexp"
	"strings"
)

var listMarker = regexp.MustCompile(`^\s*[\d.*-]+\s*`)

// ParseListSections splits draft text on the first "---" separator and turns
// each half into a list of items, one per non-blank line, with leading
// numbering or bullet markers stripped. A draft where either list comes out
// empty is a parse failure.
func ParseListSections(text string) (first, second []string, err error) {
	parts := strings.SplitN(text, "---", 2)
	if len(parts) < 2 {
		return nil, nil, ErrEmptyDraft
	}

	first = parseListItems(parts[0])
	second = parseListItems(parts[1])
	if len(first) == 0 || len(second) == 0 {
		return nil, nil, ErrEmptyDraft
	}
	return first, second, nil
}

// ParseListItems extracts list items from a block of text.
func ParseListItems(text string) []string {
	return parseListItems(text)
}

func parseListItems(text string) []string {
	var items []string
	for _, raw := range strings.Split(text, "\n") {
		line := listMarker.ReplaceAllString(raw, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}
