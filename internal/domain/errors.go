package domain

import "errors"

// Sentinel errors for the ingestion and retrieval pipeline. Callers match
// with errors.Is; lower layers wrap these with operation detail via %w.
var (
	// ErrEmbeddingProvider indicates an upstream embedding call failed.
	// The embedding cache never retries; the caller decides.
	ErrEmbeddingProvider = errors.New("embedding provider call failed")

	// ErrChatProvider indicates an upstream completion call failed.
	ErrChatProvider = errors.New("chat provider call failed")

	// ErrIndexNotReady indicates a vector index exists but is not yet
	// queryable. Always retryable after a delay.
	ErrIndexNotReady = errors.New("vector index is not ready")

	// ErrNoCorpusIndexed indicates a question was asked before any
	// ingestion succeeded. User-actionable, not a bug.
	ErrNoCorpusIndexed = errors.New("no documents have been ingested")

	// ErrStorage indicates an underlying document-store operation failed.
	ErrStorage = errors.New("document store operation failed")

	// ErrCacheMiss indicates no cached entry was found.
	ErrCacheMiss = errors.New("cache miss")
)
