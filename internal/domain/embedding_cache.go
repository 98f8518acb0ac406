package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/davidbz/hearth/internal/observability"
)

// CachedEmbedder wraps an embedding provider with two cache spaces so
// identical text is never re-embedded:
//
//   - the document space holds embeddings of ingested chunk text and never
//     expires; they stay valid for the lifetime of the embedding model
//   - the query space holds embeddings of question/prompt text and expires
//     after the retention window, since query text has low reuse value
//
// Both spaces are keyed by (model namespace, digest of exact input text).
// Concurrent calls for overlapping texts may each hit the provider; the
// cache is best-effort and tolerates the redundant call instead of adding
// a locking tier.
type CachedEmbedder struct {
	provider EmbeddingProvider
	store    EmbeddingStore
	queryTTL time.Duration
}

// NewCachedEmbedder creates a cache-backed embedder. queryTTL bounds the
// retention of query-space entries; the document space never expires.
func NewCachedEmbedder(provider EmbeddingProvider, store EmbeddingStore, queryTTL time.Duration) *CachedEmbedder {
	return &CachedEmbedder{
		provider: provider,
		store:    store,
		queryTTL: queryTTL,
	}
}

// Model returns the embedding model identifier of the wrapped provider.
func (c *CachedEmbedder) Model() string {
	return c.provider.Model()
}

// EmbedDocuments embeds chunk texts through the permanent document space.
func (c *CachedEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float64, error) {
	return c.embed(ctx, texts, "doc:"+c.provider.Model(), 0)
}

// EmbedQuery embeds a single query text through the TTL-bounded query space.
func (c *CachedEmbedder) EmbedQuery(ctx context.Context, text string) ([]float64, error) {
	vectors, err := c.embed(ctx, []string{text}, "query:"+c.provider.Model(), c.queryTTL)
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// embed resolves each text against the cache space and batches only the
// misses to the provider. Results come back in input order. If any item in
// the batch fails, the whole call fails and nothing is cached; partial
// result sets are never stored.
func (c *CachedEmbedder) embed(ctx context.Context, texts []string, space string, ttl time.Duration) ([][]float64, error) {
	logger := observability.FromContext(ctx)

	vectors := make([][]float64, len(texts))
	keys := make([]string, len(texts))

	// Positions of cache misses, deduplicated by key so one text repeated
	// within a batch is sent to the provider once.
	missByKey := make(map[string][]int)
	var missKeys []string
	var missTexts []string

	for i, text := range texts {
		key := DigestText(text)
		keys[i] = key

		vector, found, err := c.store.Get(ctx, space, key)
		if err != nil {
			// A broken cache read degrades to a miss.
			logger.Warn("embedding cache read failed, treating as miss",
				observability.String("space", space),
				observability.Error(err))
			found = false
		}
		if found {
			vectors[i] = vector
			continue
		}

		if _, seen := missByKey[key]; !seen {
			missKeys = append(missKeys, key)
			missTexts = append(missTexts, text)
		}
		missByKey[key] = append(missByKey[key], i)
	}

	logger.Debug("embedding cache resolved",
		observability.String("space", space),
		observability.Int("texts", len(texts)),
		observability.Int("misses", len(missTexts)))

	if len(missTexts) == 0 {
		return vectors, nil
	}

	fresh, err := c.provider.EmbedBatch(ctx, missTexts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmbeddingProvider, err)
	}
	if len(fresh) != len(missTexts) {
		return nil, fmt.Errorf("%w: expected %d embeddings, got %d",
			ErrEmbeddingProvider, len(missTexts), len(fresh))
	}

	for j, key := range missKeys {
		for _, i := range missByKey[key] {
			vectors[i] = fresh[j]
		}
		// Cache writes happen only after the full batch succeeded. A
		// failed write costs a future provider call, nothing more.
		if putErr := c.store.Put(ctx, space, key, fresh[j], ttl); putErr != nil {
			logger.Warn("embedding cache write failed",
				observability.String("space", space),
				observability.Error(putErr))
		}
	}

	return vectors, nil
}
