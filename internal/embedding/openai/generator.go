// Package openai provides the embedding provider over the official OpenAI
// SDK. It implements domain.EmbeddingProvider: batch in, vectors out, in
// input order.
package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Generator generates embeddings using OpenAI.
type Generator struct {
	client openai.Client
	model  string
}

// NewGenerator creates a new OpenAI embedding provider.
func NewGenerator(config Config) (*Generator, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}
	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}
	if config.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	return &Generator{
		client: openai.NewClient(opts...),
		model:  config.Model,
	}, nil
}

// EmbedBatch embeds all texts in one request. The output width is a
// runtime property of the configured model; callers derive index
// dimensionality from the vectors themselves.
func (g *Generator) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	//nolint:exhaustruct // OpenAI SDK struct has many optional fields
	resp, err := g.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
		Model: openai.EmbeddingModel(g.model),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	// The API reports each embedding's input position; order by it rather
	// than trusting response order.
	vectors := make([][]float64, len(texts))
	for _, item := range resp.Data {
		idx := int(item.Index)
		if idx < 0 || idx >= len(vectors) {
			return nil, fmt.Errorf("embedding index %d out of range", idx)
		}
		vectors[idx] = item.Embedding
	}
	for i, v := range vectors {
		if v == nil {
			return nil, fmt.Errorf("no embedding returned for input %d", i)
		}
	}

	return vectors, nil
}

// Model returns the embedding model identifier, used as the cache
// namespace.
func (g *Generator) Model() string {
	return g.model
}
