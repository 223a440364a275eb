package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/zefanya/apptrack/internal/schemas"
	"github.com/zefanya/apptrack/internal/types"
)

// scanResult mirrors the structured payload the vision model is asked to emit.
type scanResult struct {
	CompanyName string `json:"companyName"`
	JobRole     string `json:"jobRole"`
	Date        string `json:"date"`
}

// ScanExtraction holds the fields recovered from a screenshot, ready to
// prefill a new application record.
type ScanExtraction struct {
	Role        string       `json:"role"`
	Company     string       `json:"company"`
	AppliedDate string       `json:"appliedDate"`
	Status      types.Status `json:"status"`
	Source      string       `json:"source"`
	Notes       string       `json:"notes"`
}

// ParseScanResult validates and decodes an OCR payload. "N/A" markers become
// empty fields; a date that is not YYYY-MM-DD falls back to today, with the
// raw value preserved in the notes so nothing the model saw is silently lost.
func ParseScanResult(jsonText string, now time.Time) (ScanExtraction, error) {
	if err := schemas.ValidateScanResult(jsonText); err != nil {
		return ScanExtraction{}, fmt.Errorf("scan payload rejected: %w", err)
	}

	var res scanResult
	if err := json.Unmarshal([]byte(jsonText), &res); err != nil {
		return ScanExtraction{}, fmt.Errorf("failed to decode scan payload: %w", err)
	}

	out := ScanExtraction{
		Role:    cleanScanField(res.JobRole),
		Company: cleanScanField(res.CompanyName),
		Status:  types.StatusInReview,
		Source:  "Image Scan",
	}

	if types.ValidDate(strings.TrimSpace(res.Date)) {
		out.AppliedDate = strings.TrimSpace(res.Date)
	} else {
		out.AppliedDate = now.Format(types.DateLayout)
		out.Notes = fmt.Sprintf("Extracted Date was invalid (%q). Set to today's date.", res.Date)
	}

	return out, nil
}

func cleanScanField(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "N/A") {
		return ""
	}
	return v
}
