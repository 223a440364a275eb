package assistant

import (
	"errors"
	"strings"
)

// DefaultEmailSubject is used when a generated draft carries no subject line.
const DefaultEmailSubject = "Follow-up Application Status"

// EmailDraft is a parsed follow-up email.
type EmailDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ErrEmptyDraft is returned when a response yields no usable body content.
var ErrEmptyDraft = errors.New("assistant: draft contains no body")

// ParseEmail extracts a subject and body from free-form draft text. The first
// line starting with "Subject:" becomes the subject; the body starts at the
// first line beginning with "Dear" and runs to the end, with paragraphs
// re-joined by blank lines. A draft without any body lines is a parse failure.
func ParseEmail(text string) (EmailDraft, error) {
	var (
		subject   string
		bodyLines []string
		inBody    bool
	)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if subject == "" && strings.HasPrefix(line, "Subject:") {
			subject = strings.TrimSpace(strings.TrimPrefix(line, "Subject:"))
			continue
		}
		if !inBody && strings.HasPrefix(line, "Dear") {
			inBody = true
		}
		if inBody {
			bodyLines = append(bodyLines, line)
		}
	}

	if len(bodyLines) == 0 {
		return EmailDraft{}, ErrEmptyDraft
	}
	if subject == "" {
		subject = DefaultEmailSubject
	}

	return EmailDraft{
		Subject: subject,
		Body:    strings.Join(bodyLines, "\n\n"),
	}, nil
}
