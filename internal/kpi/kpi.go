// Package kpi computes dashboard summary metrics from the application list.
package kpi

import (
	"fmt"
	"math"
	"time"

	"github.com/zefanya/apptrack/internal/types"
)

// Summary holds the headline metrics shown on the dashboard.
type Summary struct {
	TotalFinalized      int    `json:"totalFinalized"`
	TotalOffers         int    `json:"totalOffers"`
	TotalActive         int    `json:"totalActive"`
	SuccessRate         string `json:"successRate"`
	TimeSinceLastAction string `json:"timeSinceLastAction"`
}

// Calculate derives the KPI summary from the full application list. It is a
// pure function of its inputs; now is the reference instant for the
// time-since-last-action rendering.
func Calculate(apps []types.Application, now time.Time) Summary {
	var finalized, offers, active int
	var latest time.Time

	for _, app := range apps {
		switch app.Status {
		case types.StatusOffer:
			offers++
			finalized++
		case types.StatusRejected, types.StatusDoneProject:
			finalized++
		case types.StatusInReview, types.StatusSubmitted, types.StatusInterview, types.StatusAction:
			active++
		}
		if app.Timestamp.After(latest) {
			latest = app.Timestamp
		}
	}

	rate := "0%"
	if finalized > 0 {
		rate = fmt.Sprintf("%d%%", int(math.Round(float64(offers)/float64(finalized)*100)))
	}

	since := "N/A"
	if len(apps) > 0 {
		since = sinceLastAction(now.Sub(latest))
	}

	return Summary{
		TotalFinalized:      finalized,
		TotalOffers:         offers,
		TotalActive:         active,
		SuccessRate:         rate,
		TimeSinceLastAction: since,
	}
}

// sinceLastAction renders an elapsed duration with the largest nonzero unit,
// days then hours; anything under an hour reads as "just now".
func sinceLastAction(diff time.Duration) string {
	days := int(math.Floor(diff.Hours() / 24))
	if days > 0 {
		return fmt.Sprintf("%d hari lalu", days)
	}
	hours := int(math.Floor(diff.Hours()))
	if hours > 0 {
		return fmt.Sprintf("%d jam lalu", hours)
	}
	return "Baru saja"
}

// StatusCounts tallies applications per status.
func StatusCounts(apps []types.Application) map[types.Status]int {
	counts := make(map[types.Status]int)
	for _, app := range apps {
		counts[app.Status]++
	}
	return counts
}

// ConversionRate reports how many applications reached toStatus relative to
// fromStatus, as a percentage with one decimal. Returns 0 when there is
// nothing to convert from.
func ConversionRate(apps []types.Application, from, to types.Status) float64 {
	counts := StatusCounts(apps)
	if counts[from] == 0 {
		return 0
	}
	rate := float64(counts[to]) / float64(counts[from]) * 100
	return math.Round(rate*10) / 10
}
