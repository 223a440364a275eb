package llm

import (
	"context"
	"errors"
)

// ErrDisabled is returned by the client used when no API key is configured.
var ErrDisabled = errors.New("completion service not configured")

type disabledClient struct{}

// Disabled returns a Client whose every call fails with ErrDisabled. Callers
// with fallback content keep working without an API key.
func Disabled() Client {
	return disabledClient{}
}

func (disabledClient) GenerateContent(context.Context, string, ModelTier) (string, error) {
	return "", ErrDisabled
}

func (disabledClient) Generate(context.Context, Request) (string, error) {
	return "", ErrDisabled
}

func (disabledClient) Close() error { return nil }
