package domain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/davidbz/hearth/internal/observability"
)

// Readiness polling bounds.
const (
	defaultPollInterval = 500 * time.Millisecond
	maxPollInterval     = 5 * time.Second
)

// IndexManager owns the lifecycle of the similarity-search indexes over a
// set of collections that share one embedding model. Dimensionality is
// never inferred ahead of time: it is derived from the first successfully
// embedded sample, because the provider's output width is a runtime
// property of the configured model.
//
// State machine per collection:
//
//	ABSENT   -> BUILDING  first observed embedding creates the index
//	BUILDING -> READY     driven by the backing store, discovered by polling
//	READY    -> BUILDING  a different observed dimension resizes the index
//
// Create and resize are check-before-write: observing a dimension the
// collection already has is a no-op.
type IndexManager struct {
	admin       IndexAdmin
	collections []string
	maxWait     time.Duration

	mu          sync.Mutex
	descriptors map[string]IndexDescriptor
}

// NewIndexManager manages the indexes of the given collections. All of
// them store vectors produced by the same embedding model, so a dimension
// change applies to every one of them: a query vector must be comparable
// against every collection it is searched in.
func NewIndexManager(admin IndexAdmin, collections []string, maxWait time.Duration) *IndexManager {
	return &IndexManager{
		admin:       admin,
		collections: collections,
		maxWait:     maxWait,
		descriptors: make(map[string]IndexDescriptor),
	}
}

// Observe reconciles every managed collection with an embedding length
// seen on a live vector. Missing indexes are created at dims; indexes with
// a different dimensionality are dropped and recreated.
func (m *IndexManager) Observe(ctx context.Context, dims int) error {
	if dims <= 0 {
		return fmt.Errorf("observed embedding dimension must be positive, got %d", dims)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	logger := observability.FromContext(ctx)

	for _, collection := range m.collections {
		desc, err := m.currentLocked(ctx, collection)
		if err != nil {
			return err
		}

		switch {
		case desc.Status == IndexAbsent:
			logger.Info("creating vector index",
				observability.String("collection", collection),
				observability.Int("dimensions", dims))
			if err := m.admin.CreateIndex(ctx, collection, dims); err != nil {
				return fmt.Errorf("create index for %s: %w", collection, err)
			}

		case desc.Dimensions != dims:
			// A new embedding model changed the vector width. Rebuild;
			// searches against this collection fail as retryable until
			// the index is READY again.
			logger.Info("resizing vector index",
				observability.String("collection", collection),
				observability.Int("old_dimensions", desc.Dimensions),
				observability.Int("new_dimensions", dims))
			if err := m.admin.DropIndex(ctx, collection); err != nil {
				return fmt.Errorf("drop index for %s: %w", collection, err)
			}
			if err := m.admin.CreateIndex(ctx, collection, dims); err != nil {
				return fmt.Errorf("recreate index for %s: %w", collection, err)
			}

		default:
			// Already at the observed dimension.
			continue
		}

		m.descriptors[collection] = IndexDescriptor{
			Collection: collection,
			Dimensions: dims,
			Status:     IndexBuilding,
		}
	}

	return nil
}

// Status reports the live descriptor for one collection.
func (m *IndexManager) Status(ctx context.Context, collection string) (IndexDescriptor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentLocked(ctx, collection)
}

// EnsureReady probes the collection once and fails with ErrIndexNotReady
// unless the index is READY. Callers treat the error as retryable.
func (m *IndexManager) EnsureReady(ctx context.Context, collection string) error {
	desc, err := m.Status(ctx, collection)
	if err != nil {
		return err
	}
	if desc.Status != IndexReady {
		return fmt.Errorf("%w: %s is %s", ErrIndexNotReady, collection, desc.Status)
	}
	return nil
}

// AwaitReady polls the collection with backoff until the index is READY,
// the context is cancelled, or the bounded wait elapses. On timeout it
// surfaces ErrIndexNotReady rather than blocking forever.
func (m *IndexManager) AwaitReady(ctx context.Context, collection string) error {
	deadline := time.Now().Add(m.maxWait)
	interval := defaultPollInterval

	for {
		desc, err := m.Status(ctx, collection)
		if err != nil {
			return err
		}
		if desc.Status == IndexReady {
			return nil
		}
		if desc.Status == IndexAbsent {
			// Nothing is building; waiting will not help.
			return fmt.Errorf("%w: %s has no index", ErrIndexNotReady, collection)
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("%w: %s still %s after %s",
				ErrIndexNotReady, collection, desc.Status, m.maxWait)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}

		interval *= 2
		if interval > maxPollInterval {
			interval = maxPollInterval
		}
	}
}

// currentLocked returns the cached descriptor, refreshing from the store
// when the cached state is not authoritative (unknown or still building).
func (m *IndexManager) currentLocked(ctx context.Context, collection string) (IndexDescriptor, error) {
	if desc, ok := m.descriptors[collection]; ok && desc.Status == IndexReady {
		return desc, nil
	}

	desc, err := m.admin.IndexState(ctx, collection)
	if err != nil {
		return IndexDescriptor{}, fmt.Errorf("index state for %s: %w", collection, err)
	}
	desc.Collection = collection
	m.descriptors[collection] = desc
	return desc, nil
}
