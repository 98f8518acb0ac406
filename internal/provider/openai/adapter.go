// Package openai provides the chat provider over the official OpenAI SDK.
// It implements domain.ChatProvider and exposes an identity signature of
// the model and generation parameters for cache scoping.
package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/davidbz/hearth/internal/observability"
)

// Provider implements the domain.ChatProvider interface for OpenAI.
type Provider struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int
}

// NewProvider creates a new OpenAI chat provider.
func NewProvider(config Config) (*Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}
	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}
	if config.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	return &Provider{
		client:      openai.NewClient(opts...),
		model:       config.Model,
		temperature: config.Temperature,
		maxTokens:   config.MaxTokens,
	}, nil
}

// Complete sends a single-prompt completion request and returns the text.
func (p *Provider) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", errors.New("prompt cannot be empty")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI chat API")

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if p.temperature > 0 {
		params.Temperature = openai.Float(p.temperature)
	}
	if p.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(p.maxTokens))
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logger.Error("OpenAI API call failed", observability.Error(err))
		return "", fmt.Errorf("OpenAI API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}

	logger.Debug("OpenAI API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return resp.Choices[0].Message.Content, nil
}

// Identity returns the cache-scoping signature: the model plus every
// generation parameter that affects output. Responses cached under one
// signature are never served to another.
func (p *Provider) Identity() string {
	return fmt.Sprintf("openai/%s?temperature=%g&max_tokens=%d", p.model, p.temperature, p.maxTokens)
}
