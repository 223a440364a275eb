package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zefanya/apptrack/internal/kpi"
	"github.com/zefanya/apptrack/internal/types"
)

func TestPrintKPIs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKPIs(kpi.Summary{
		TotalActive:         3,
		TotalFinalized:      2,
		TotalOffers:         1,
		SuccessRate:         "50%",
		TimeSinceLastAction: "Baru saja",
	})

	out := buf.String()
	assert.Contains(t, out, "DASHBOARD KPIs")
	assert.Contains(t, out, "Active:       3")
	assert.Contains(t, out, "Success rate: 50%")
	assert.Contains(t, out, "Baru saja")
}

func TestPrintStatusBoard(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStatusBoard([]types.Application{
		{Status: types.StatusInterview},
		{Status: types.StatusInterview},
		{Status: types.StatusRejected},
	})

	out := buf.String()
	assert.Contains(t, out, "STATUS BOARD")
	assert.Contains(t, out, "Interview")
	assert.Contains(t, out, "2")
	assert.NotContains(t, out, "To Apply", "empty statuses are omitted")
}

func TestPrintStatusBoard_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStatusBoard(nil)
	assert.Contains(t, buf.String(), "No applications yet")
}

func TestPrintApplications(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	apps := make([]types.Application, 7)
	for i := range apps {
		apps[i] = types.Application{
			Role:        "Data Analyst",
			Company:     "Acme",
			Status:      types.StatusSubmitted,
			AppliedDate: "2026-08-01",
			Timestamp:   time.Now(),
		}
	}
	p.PrintApplications(apps)

	out := buf.String()
	assert.Contains(t, out, "Data Analyst @ Acme")
	assert.Contains(t, out, "... and 2 more applications")
	assert.Equal(t, maxItemsToShow, strings.Count(out, "•"))
}

func TestPrintApplications_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintApplications(nil)
	assert.Empty(t, buf.String())
}
