package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zefanya/apptrack/internal/types"
)

var scanNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestParseScanResult(t *testing.T) {
	got, err := ParseScanResult(`{"companyName":"Acme Corp","jobRole":"Data Analyst","date":"2026-01-31"}`, scanNow)
	require.NoError(t, err)
	assert.Equal(t, ScanExtraction{
		Role:        "Data Analyst",
		Company:     "Acme Corp",
		AppliedDate: "2026-01-31",
		Status:      types.StatusInReview,
		Source:      "Image Scan",
	}, got)
}

func TestParseScanResultNAFields(t *testing.T) {
	got, err := ParseScanResult(`{"companyName":"N/A","jobRole":"N/A","date":"N/A"}`, scanNow)
	require.NoError(t, err)
	assert.Empty(t, got.Role)
	assert.Empty(t, got.Company)
	assert.Equal(t, "2026-08-30", got.AppliedDate)
	assert.Contains(t, got.Notes, "N/A")
}

func TestParseScanResultBadDate(t *testing.T) {
	got, err := ParseScanResult(`{"companyName":"Acme","jobRole":"Analyst","date":"31/01/2026"}`, scanNow)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30", got.AppliedDate)
	assert.Contains(t, got.Notes, "31/01/2026")
	assert.Contains(t, got.Notes, "Set to today's date.")
}

func TestParseScanResultInvalidPayload(t *testing.T) {
	_, err := ParseScanResult(`{"companyName":"Acme"}`, scanNow)
	assert.Error(t, err)

	_, err = ParseScanResult(`[{"companyName":"Acme","jobRole":"Analyst","date":"N/A"}]`, scanNow)
	assert.Error(t, err)

	_, err = ParseScanResult(`not json`, scanNow)
	assert.Error(t, err)
}
