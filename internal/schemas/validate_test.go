package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateScanResult(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr bool
	}{
		{
			name: "Valid payload",
			json: `{"companyName":"Acme","jobRole":"Analyst","date":"2026-01-31"}`,
		},
		{
			name: "NA values are still valid strings",
			json: `{"companyName":"N/A","jobRole":"N/A","date":"N/A"}`,
		},
		{
			name:    "Missing key",
			json:    `{"companyName":"Acme","jobRole":"Analyst"}`,
			wantErr: true,
		},
		{
			name:    "Extra key rejected",
			json:    `{"companyName":"Acme","jobRole":"Analyst","date":"N/A","salary":"100"}`,
			wantErr: true,
		},
		{
			name:    "Wrong type",
			json:    `{"companyName":1,"jobRole":"Analyst","date":"N/A"}`,
			wantErr: true,
		},
		{
			name:    "Array instead of object",
			json:    `[{"companyName":"Acme","jobRole":"Analyst","date":"N/A"}]`,
			wantErr: true,
		},
		{
			name:    "Not JSON at all",
			json:    `oops`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScanResult(tt.json)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidateScanResult(`{"companyName":"Acme"}`)
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	if ok {
		assert.Equal(t, "scan_result.json", ve.Schema)
		assert.NotEmpty(t, ve.Errors)
		assert.Contains(t, ve.Error(), "validation failed")
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	err := Validate("missing.json", `{}`)
	assert.Error(t, err)
}
