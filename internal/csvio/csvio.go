// Package csvio encodes and decodes the application list as CSV for
// import/export. The format is fixed-column with Excel-style quoting.
package csvio

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zefanya/apptrack/internal/types"
)

// Headers is the fixed column order of the export format.
var Headers = []string{"role", "company", "location", "appliedDate", "status", "notes", "link", "source"}

// ErrFormat indicates the input is not a recognizable application CSV.
var ErrFormat = errors.New("invalid CSV format: required headers (role, company, status, ...) missing")

// Encode renders the application list as CSV. Double quotes are escaped by
// doubling; fields containing a comma, newline or carriage return are
// wrapped in quotes.
func Encode(apps []types.Application) string {
	lines := make([]string, 0, len(apps)+1)
	lines = append(lines, strings.Join(Headers, ","))

	for _, app := range apps {
		fields := []string{
			app.Role,
			app.Company,
			app.Location,
			app.AppliedDate,
			string(app.Status),
			app.Notes,
			app.Link,
			app.Source,
		}
		encoded := make([]string, len(fields))
		for i, field := range fields {
			encoded[i] = escapeField(field)
		}
		lines = append(lines, strings.Join(encoded, ","))
	}

	return strings.Join(lines, "\n")
}

func escapeField(value string) string {
	value = strings.ReplaceAll(value, `"`, `""`)
	if strings.ContainsAny(value, ",\n\r") {
		value = `"` + value + `"`
	}
	return value
}

// Decode parses CSV text into application records. Unknown statuses coerce to
// TO_APPLY and malformed applied dates become today's date; the records carry
// no IDs or timestamps, those are assigned by the store on import.
func Decode(text string, now time.Time) ([]types.Application, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrFormat
	}

	headers := make([]string, 0, len(Headers))
	for _, h := range strings.Split(lines[0], ",") {
		headers = append(headers, strings.TrimSpace(strings.ReplaceAll(h, `"`, "")))
	}
	if len(headers) < 5 || !contains(headers, "role") {
		return nil, ErrFormat
	}

	apps := make([]types.Application, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := splitLine(line)

		row := make(map[string]string, len(headers))
		for i, header := range headers {
			var value string
			if i < len(values) {
				value = unescapeField(values[i])
			}
			row[header] = value
		}

		app := types.Application{
			Role:        row["role"],
			Company:     row["company"],
			Location:    row["location"],
			AppliedDate: row["appliedDate"],
			Status:      types.CoerceStatus(row["status"]),
			Notes:       row["notes"],
			Link:        row["link"],
			Source:      row["source"],
		}
		if app.AppliedDate != "" && !types.ValidDate(app.AppliedDate) {
			app.AppliedDate = now.Format(types.DateLayout)
		}
		apps = append(apps, app)
	}

	return apps, nil
}

// splitLine splits on commas that are not inside a quoted span. A comma is a
// separator when the number of quotes seen before it is even.
func splitLine(line string) []string {
	var fields []string
	var sb strings.Builder
	quotes := 0
	for _, r := range line {
		switch {
		case r == '"':
			quotes++
			sb.WriteRune(r)
		case r == ',' && quotes%2 == 0:
			fields = append(fields, sb.String())
			sb.Reset()
		default:
			sb.WriteRune(r)
		}
	}
	fields = append(fields, sb.String())
	return fields
}

func unescapeField(value string) string {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, `"`)
	value = strings.TrimSuffix(value, `"`)
	return strings.ReplaceAll(value, `""`, `"`)
}

func contains(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}

// ImportSource is the provenance tag written on rows that arrive through the
// CSV importer without a source of their own.
const ImportSource = "CSV Import"

// DefaultSource fills the provenance tag on imported rows whose source column
// was empty.
func DefaultSource(apps []types.Application) {
	for i := range apps {
		if apps[i].Source == "" {
			apps[i].Source = ImportSource
		}
	}
}

// ExportFilename names the download with the current date.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("applications_%s.csv", now.Format(types.DateLayout))
}
