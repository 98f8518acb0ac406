// Package echo provides a chat provider that echoes its prompt back. It
// implements domain.ChatProvider without external API calls, giving
// deterministic responses for development and tests.
package echo

import (
	"context"
	"errors"
	"fmt"

	"github.com/davidbz/hearth/internal/observability"
)

// Provider implements the domain.ChatProvider interface by echoing.
type Provider struct{}

// NewProvider creates a new echo provider. No configuration is required
// as this provider operates entirely in-memory.
func NewProvider() *Provider {
	return &Provider{}
}

// Complete returns the prompt back as the completion.
func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", errors.New("prompt cannot be empty")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("echoing prompt", observability.Int("prompt_length", len(prompt)))

	return fmt.Sprintf("echo: %s", prompt), nil
}

// Identity returns the echo provider's cache-scoping signature.
func (p *Provider) Identity() string {
	return "echo/echo4"
}
