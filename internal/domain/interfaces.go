package domain

import (
	"context"
	"time"
)

// EmbeddingProvider converts text into fixed-length vectors. Batch is the
// native shape; a single text is a one-element slice.
type EmbeddingProvider interface {
	// EmbedBatch embeds all texts in one call, returning vectors in input
	// order. Partial success is not supported.
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)

	// Model returns the embedding model identifier, used as the cache
	// namespace so entries never outlive a model switch.
	Model() string
}

// ChatProvider produces a completion for a prompt.
type ChatProvider interface {
	// Complete sends a single-prompt completion request.
	Complete(ctx context.Context, prompt string) (string, error)

	// Identity returns a signature of the model and generation parameters
	// that affect output, usable as a cache-scoping key.
	Identity() string
}

// VectorStore is the document store with vector-similarity search.
type VectorStore interface {
	// UpsertMany inserts or replaces documents in a collection.
	UpsertMany(ctx context.Context, collection string, docs []VectorDoc) error

	// SimilaritySearch returns the top-k nearest documents. A non-empty
	// filter restricts matches to documents whose fields equal it.
	SimilaritySearch(ctx context.Context, collection string, vector []float64, k int, filter map[string]string) ([]SearchHit, error)

	// Distinct lists the distinct values of a field across a collection.
	Distinct(ctx context.Context, collection, field string) ([]string, error)

	// Count returns the number of documents matching the filter.
	Count(ctx context.Context, collection string, filter map[string]string) (int64, error)
}

// IndexAdmin manages the similarity-search index of a collection.
type IndexAdmin interface {
	// IndexState reports the current descriptor for a collection's index.
	IndexState(ctx context.Context, collection string) (IndexDescriptor, error)

	// CreateIndex creates the index with the given dimensionality.
	CreateIndex(ctx context.Context, collection string, dims int) error

	// DropIndex removes the index, keeping the stored documents.
	DropIndex(ctx context.Context, collection string) error
}

// EmbeddingStore is the key/value persistence layer behind the embedding
// caches. Expiry is passive: an expired entry reads as not found.
type EmbeddingStore interface {
	Get(ctx context.Context, space, key string) ([]float64, bool, error)

	// Put stores a vector. ttl == 0 means the entry never expires.
	Put(ctx context.Context, space, key string, vector []float64, ttl time.Duration) error
}

// SourceArea is the staging area ingestion reads from. Moving a file out
// guarantees it is never considered for re-ingestion.
type SourceArea interface {
	// Pending lists the source files awaiting ingestion.
	Pending() ([]SourceFile, error)

	// MoveToProcessed relocates a source file out of the pending area.
	MoveToProcessed(name string) error
}
