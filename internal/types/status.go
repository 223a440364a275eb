// Package types provides type definitions for the application tracker domain.
package types

// Status represents the pipeline state of a job application.
type Status string

// Pipeline statuses. Declaration order is the display order used by badges
// and the status-distribution chart.
const (
	StatusToApply     Status = "TO_APPLY"
	StatusSubmitted   Status = "SUBMITTED"
	StatusInReview    Status = "IN_REVIEW"
	StatusInterview   Status = "INTERVIEW"
	StatusOffer       Status = "OFFER"
	StatusRejected    Status = "REJECTED"
	StatusDoneProject Status = "DONE_PROJECT"
	StatusAction      Status = "ACTION"
)

// StatusInfo holds the display metadata for a status.
type StatusInfo struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Statuses lists all statuses in display order.
var Statuses = []Status{
	StatusToApply,
	StatusSubmitted,
	StatusInReview,
	StatusInterview,
	StatusOffer,
	StatusRejected,
	StatusDoneProject,
	StatusAction,
}

// StatusMap maps each status to its display label and color token.
var StatusMap = map[Status]StatusInfo{
	StatusToApply:     {Label: "To Apply", Color: "#ef4444"},
	StatusSubmitted:   {Label: "Submitted", Color: "#3b82f6"},
	StatusInReview:    {Label: "In Review", Color: "#a855f7"},
	StatusInterview:   {Label: "Interview", Color: "#f97316"},
	StatusOffer:       {Label: "Offer", Color: "#10b981"},
	StatusRejected:    {Label: "Rejected", Color: "#6b7280"},
	StatusDoneProject: {Label: "Done/Project", Color: "#6366f1"},
	StatusAction:      {Label: "Next Action", Color: "#f59e0b"},
}

// SortPriority ranks statuses for default list ordering. It intentionally
// differs from the display order of StatusMap; both orderings come from the
// product and are kept as-is.
var SortPriority = map[Status]int{
	StatusToApply:     1,
	StatusInterview:   2,
	StatusInReview:    3,
	StatusSubmitted:   4,
	StatusOffer:       5,
	StatusRejected:    6,
	StatusDoneProject: 7,
	StatusAction:      8,
}

// Valid reports whether s is a recognized status.
func (s Status) Valid() bool {
	_, ok := StatusMap[s]
	return ok
}

// Label returns the display label for s, or the raw value if unknown.
func (s Status) Label() string {
	if info, ok := StatusMap[s]; ok {
		return info.Label
	}
	return string(s)
}

// CoerceStatus maps an arbitrary ingest value onto the enumeration.
// Unrecognized values default to TO_APPLY.
func CoerceStatus(raw string) Status {
	s := Status(raw)
	if s.Valid() {
		return s
	}
	return StatusToApply
}
