package types

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DateLayout is the canonical calendar-date form used throughout the tracker.
const DateLayout = "2006-01-02"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDate reports whether s matches the canonical YYYY-MM-DD form.
func ValidDate(s string) bool {
	return dateRe.MatchString(s)
}

// Application is one job-application record.
type Application struct {
	ID          uuid.UUID `json:"id"`
	Role        string    `json:"role" validate:"required,min=1"`
	Company     string    `json:"company" validate:"required,min=1"`
	Location    string    `json:"location,omitempty"`
	AppliedDate string    `json:"appliedDate" validate:"required"`
	Status      Status    `json:"status"`
	Link        string    `json:"link,omitempty" validate:"omitempty,url"`
	Notes       string    `json:"notes,omitempty"`
	Source      string    `json:"source,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Validate validates the record using the validator.
func (a *Application) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}

// Normalize coerces the record into canonical form before it reaches the
// store: unknown statuses fall back to TO_APPLY and a missing or malformed
// applied date becomes today.
func (a *Application) Normalize(now time.Time) {
	a.Status = CoerceStatus(string(a.Status))
	if !ValidDate(a.AppliedDate) {
		a.AppliedDate = now.Format(DateLayout)
	}
}

// NextStep returns the first non-empty line of the notes, which the tracker
// treats as the record's next-step summary.
func (a *Application) NextStep() string {
	for _, line := range strings.Split(a.Notes, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// SortApplications orders records by status sort priority ascending, then by
// timestamp descending within the same status.
func SortApplications(apps []Application) {
	sort.SliceStable(apps, func(i, j int) bool {
		pi, pj := SortPriority[apps[i].Status], SortPriority[apps[j].Status]
		if pi != pj {
			return pi < pj
		}
		return apps[i].Timestamp.After(apps[j].Timestamp)
	})
}

// FilterApplications returns the records whose role or company contains the
// search term, case-insensitive. An empty term matches everything.
func FilterApplications(apps []Application, term string) []Application {
	if term == "" {
		return apps
	}
	term = strings.ToLower(term)
	filtered := make([]Application, 0, len(apps))
	for _, app := range apps {
		if strings.Contains(strings.ToLower(app.Role), term) ||
			strings.Contains(strings.ToLower(app.Company), term) {
			filtered = append(filtered, app)
		}
	}
	return filtered
}
