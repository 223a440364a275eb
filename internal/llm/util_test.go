package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain JSON untouched", `{"a":1}`, `{"a":1}`},
		{"json fence stripped", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"Generic fence stripped", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"Fence with language id", "```javascript\n{\"a\":1}\n```", `{"a":1}`},
		{"Surrounding whitespace trimmed", "  {\"a\":1}  ", `{"a":1}`},
		{"Array payload", "```json\n[{\"companyName\":\"Acme\"}]\n```", `[{"companyName":"Acme"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestConfigGetModel(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierAdvanced))

	partial := &Config{Models: map[ModelTier]string{TierStandard: "m"}}
	assert.Equal(t, "m", partial.GetModel(TierAdvanced), "falls back to standard")

	liteOnly := &Config{Models: map[ModelTier]string{TierLite: "l"}}
	assert.Equal(t, "l", liteOnly.GetModel(TierStandard), "falls back to lite")

	empty := &Config{Models: map[ModelTier]string{}}
	assert.Empty(t, empty.GetModel(TierStandard))
}
