package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackEmail(t *testing.T) {
	draft := FallbackEmail("Zefanya Williams", "Analyst", "Acme")
	assert.Equal(t, "Follow-up: Analyst Application at Acme", draft.Subject)
	assert.Contains(t, draft.Body, "Dear Hiring Team,")
	assert.Contains(t, draft.Body, "Zefanya Williams")

	// Parseable by the same rules applied to generated drafts.
	parsed, err := ParseEmail("Subject: " + draft.Subject + "\n" + draft.Body)
	assert.NoError(t, err)
	assert.Equal(t, draft.Subject, parsed.Subject)
}

func TestFallbackEmailEmptyFields(t *testing.T) {
	draft := FallbackEmail("Zefanya Williams", "", "")
	assert.Contains(t, draft.Subject, "the position")
	assert.Contains(t, draft.Body, "your company")
}

func TestFallbackStrategy(t *testing.T) {
	draft := FallbackStrategy("Analyst", "Acme")
	assert.Len(t, draft.Questions, 4)
	assert.Len(t, draft.Highlights, 4)
	assert.Contains(t, draft.Questions[0], "Analyst")
	assert.Contains(t, draft.Questions[2], "Acme")
}

func TestFallbackCVCheck(t *testing.T) {
	draft := FallbackCVCheck("Analyst")
	assert.Len(t, draft.Matches, 2)
	assert.Len(t, draft.Improvements, 3)
}

func TestFallbackNotes(t *testing.T) {
	notes := FallbackNotes("Analyst", "Acme")
	items := ParseListItems(notes)
	assert.Len(t, items, 4)
	assert.Contains(t, notes, "Acme")
}
