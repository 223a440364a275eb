// Package observability provides formatted output utilities for CLI dashboard views.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/zefanya/apptrack/internal/kpi"
	"github.com/zefanya/apptrack/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the terminal dashboard
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintKPIs outputs the headline dashboard metrics.
func (p *Printer) PrintKPIs(summary kpi.Summary) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Active:       %d\n", summary.TotalActive))
	sb.WriteString(fmt.Sprintf("Finalized:    %d\n", summary.TotalFinalized))
	sb.WriteString(fmt.Sprintf("Offers:       %d\n", summary.TotalOffers))
	sb.WriteString(fmt.Sprintf("Success rate: %s\n", summary.SuccessRate))
	sb.WriteString(fmt.Sprintf("Last action:  %s", summary.TimeSinceLastAction))

	p.printBox("DASHBOARD KPIs", sb.String())
}

// PrintStatusBoard outputs per-status counts in board column order.
func (p *Printer) PrintStatusBoard(apps []types.Application) {
	counts := kpi.StatusCounts(apps)

	var sb strings.Builder
	for _, status := range types.Statuses {
		if counts[status] == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-14s %d\n", status.Label(), counts[status]))
	}
	if sb.Len() == 0 {
		sb.WriteString("No applications yet")
	}

	p.printBox("STATUS BOARD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintApplications outputs the most recently touched applications. The list
// is assumed to be in board order already.
func (p *Printer) PrintApplications(apps []types.Application) {
	if len(apps) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(apps), maxItemsToShow)
	for i := 0; i < count; i++ {
		app := apps[i]
		role := app.Role
		if len(role) > 30 {
			role = role[:27] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s @ %s\n", role, app.Company))
		sb.WriteString(fmt.Sprintf("  %s  applied %s\n", app.Status.Label(), app.AppliedDate))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(apps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more applications", len(apps)-maxItemsToShow))
	}

	p.printBox("APPLICATIONS", sb.String())
}
