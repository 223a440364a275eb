// Package seed holds the starter dataset installed for a user on first run.
package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/zefanya/apptrack/internal/types"
)

// BaseProfileContext is the default skills profile used until the user
// uploads documents for analysis.
const BaseProfileContext = `Zefanya's key skills include: Digital Business, Data Science (Python, Tableau, Green Academy certification), Certified Content Creator, Certified Digital Marketing Practitioner, strong project coordination, and experience in video editing/reels content creation.`

// Applications returns the starter records with fresh IDs. Timestamps are
// fixed so the initial board sorts the same way every time.
func Applications() []types.Application {
	mk := func(role, company, location, appliedDate string, status types.Status, notes, link string, ts time.Time) types.Application {
		return types.Application{
			ID:          uuid.New(),
			Role:        role,
			Company:     company,
			Location:    location,
			AppliedDate: appliedDate,
			Status:      status,
			Notes:       notes,
			Link:        link,
			Timestamp:   ts,
		}
	}

	return []types.Application{
		mk("Amgen Scholars Asia Program", "National University of Singapore (NUS)", "Singapore",
			"2025-12-14", types.StatusInReview,
			"Deadline: 1 Feb 2026. Important: Referees receive separate email.",
			"https://nus.edu.sg/amgenscholars",
			time.Date(2025, 12, 14, 10, 0, 0, 0, time.UTC)),
		mk("Marketing & Brand Communication Internship", "FIFGROUP (AIF - FIF)", "Jakarta",
			"2025-12-08", types.StatusInReview,
			"Status: Dalam Proses. Tahap: Seleksi Administratif.",
			"https://id.jobstreet.com/profiles/zefanya-williams-nVDCMgJGMl",
			time.Date(2025, 12, 8, 12, 0, 0, 0, time.UTC)),
		mk("Creative Digital Content & Corporate Branding Internship", "FIFGROUP (AIF - FIF)", "Jakarta",
			"2025-12-08", types.StatusInReview,
			"Status: Dalam Proses. Tahap: Seleksi Administratif.",
			"https://id.jobstreet.com/profiles/zefanya-williams-nVDCMgJGMl",
			time.Date(2025, 12, 8, 12, 0, 0, 0, time.UTC)),
		mk("Business Analyst Internship", "FIFGROUP (AIF - FIF)", "Jakarta",
			"2025-12-05", types.StatusInReview,
			"Status: Dalam Proses. Tahap: Seleksi Administratif.",
			"https://id.jobstreet.com/profiles/zefanya-williams-nVDCMgJGMl",
			time.Date(2025, 12, 5, 12, 0, 0, 0, time.UTC)),
		mk("User Experience Design Summer Intern, 2026", "Google", "Singapore",
			"2025-12-14", types.StatusInterview,
			"Submitted. Action: Check dashboard daily for status updates.",
			"https://careers.google.com/",
			time.Date(2025, 12, 14, 15, 30, 0, 0, time.UTC)),
		mk("Associate Product Marketing Manager Intern, Summer 2026", "Google", "Singapore",
			"2025-12-14", types.StatusInterview,
			"Submitted. Action: Check dashboard daily for status updates.",
			"https://careers.google.com/",
			time.Date(2025, 12, 14, 15, 30, 0, 0, time.UTC)),
		mk("Product Analyst, Strategy and Operations", "Google", "Singapore or Sydney",
			"2025-12-14", types.StatusInReview,
			"Submitted. Waiting for HR screening confirmation.",
			"https://careers.google.com/",
			time.Date(2025, 12, 14, 15, 30, 0, 0, time.UTC)),
	}
}
