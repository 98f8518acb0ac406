package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/davidbz/hearth/internal/observability"
)

// DefaultCacheThreshold is deliberately high: the response cache answers
// exact-duplicate questions, it is not a paraphrase cache.
const DefaultCacheThreshold = 0.99

// ResponseCache caches chat-provider responses keyed by similarity over
// the prompt embedding. Entries are scoped to the chat model's identity
// signature, so a hit for one model never leaks into another's space. Its
// backing collection is index-managed with the same readiness protocol as
// the chunk collection.
type ResponseCache struct {
	embedder   *CachedEmbedder
	store      VectorStore
	collection string
	threshold  float64
}

// NewResponseCache creates the semantic response cache over its backing
// collection.
func NewResponseCache(embedder *CachedEmbedder, store VectorStore, collection string, threshold float64) *ResponseCache {
	return &ResponseCache{
		embedder:   embedder,
		store:      store,
		collection: collection,
		threshold:  threshold,
	}
}

// Lookup embeds the prompt and returns the best similarity match at or
// above the threshold, scoped to llmIdentity. A miss returns ErrCacheMiss.
func (c *ResponseCache) Lookup(ctx context.Context, prompt, llmIdentity string) (string, error) {
	logger := observability.FromContext(ctx)

	vector, err := c.embedder.EmbedQuery(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("embed prompt for cache lookup: %w", err)
	}

	hits, err := c.store.SimilaritySearch(ctx, c.collection, vector, 1,
		map[string]string{FieldLLM: llmIdentity})
	if err != nil {
		return "", fmt.Errorf("response cache search: %w", err)
	}

	if len(hits) == 0 || hits[0].Score < c.threshold {
		logger.Debug("response cache miss",
			observability.Float64("threshold", c.threshold))
		return "", ErrCacheMiss
	}

	logger.Info("response cache hit",
		observability.String("cache_key", hits[0].Key),
		observability.Float64("similarity", hits[0].Score))

	return hits[0].Fields[FieldResponse], nil
}

// Store indexes a prompt/response pair under the llmIdentity scope.
func (c *ResponseCache) Store(ctx context.Context, prompt, llmIdentity, response string) error {
	vector, err := c.embedder.EmbedQuery(ctx, prompt)
	if err != nil {
		return fmt.Errorf("embed prompt for cache store: %w", err)
	}

	doc := VectorDoc{
		Key:    DigestText(llmIdentity + "\x00" + prompt),
		Vector: vector,
		Fields: map[string]string{
			FieldLLM:      llmIdentity,
			FieldResponse: response,
		},
	}

	if err := c.store.UpsertMany(ctx, c.collection, []VectorDoc{doc}); err != nil {
		return fmt.Errorf("index cached response: %w", err)
	}
	return nil
}

// IsMiss reports whether an error from Lookup means "not cached" rather
// than a real failure.
func IsMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}
