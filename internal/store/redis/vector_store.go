// Package redis backs the document store and the embedding caches with a
// single Redis instance: hashes plus RediSearch vector indexes for the
// collections, plain keys with optional TTL for cached embeddings.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/hearth/internal/domain"
	"github.com/davidbz/hearth/internal/observability"
)

const redisDialectVersion = 2

// Store implements domain.VectorStore and domain.IndexAdmin over Redis.
// Documents of a collection are hashes under "<collection>:"; the search
// index of a collection is named "idx:<collection>".
type Store struct {
	client *redis.Client
}

// NewStore creates the Redis-backed vector store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func indexName(collection string) string {
	return "idx:" + collection
}

// indexMetaKey holds the dimensionality an index was created with.
// FT.INFO does not report vector attributes in a stable shape, so the
// descriptor is persisted next to the index.
func indexMetaKey(collection string) string {
	return "idx:" + collection + ":meta"
}

func docKey(collection, key string) string {
	return collection + ":" + key
}

// UpsertMany inserts or replaces documents in a collection.
func (s *Store) UpsertMany(ctx context.Context, collection string, docs []domain.VectorDoc) error {
	logger := observability.FromContext(ctx)

	pipe := s.client.Pipeline()
	for _, doc := range docs {
		values := make([]any, 0, (len(doc.Fields)+1)*2)
		values = append(values, "embedding", floatsToBytes(doc.Vector))
		for field, value := range doc.Fields {
			values = append(values, field, value)
		}
		pipe.HSet(ctx, docKey(collection, doc.Key), values...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("upsert failed",
			observability.String("collection", collection),
			observability.Error(err))
		return fmt.Errorf("%w: upsert into %s: %w", domain.ErrStorage, collection, err)
	}

	logger.Debug("upsert completed",
		observability.String("collection", collection),
		observability.Int("docs", len(docs)))
	return nil
}

// SimilaritySearch returns the top-k nearest documents by cosine
// similarity, optionally restricted by exact-match field filters.
func (s *Store) SimilaritySearch(
	ctx context.Context,
	collection string,
	vector []float64,
	k int,
	filter map[string]string,
) ([]domain.SearchHit, error) {
	logger := observability.FromContext(ctx)

	query := fmt.Sprintf("%s=>[KNN %d @embedding $vec AS score]", filterExpression(filter), k)

	results, err := s.client.FTSearchWithArgs(ctx, indexName(collection), query,
		&redis.FTSearchOptions{
			Return: []redis.FTSearchReturn{
				{FieldName: "score"},
				{FieldName: domain.FieldText},
				{FieldName: domain.FieldFileName},
				{FieldName: domain.FieldFileHash},
				{FieldName: domain.FieldSeq},
				{FieldName: domain.FieldLLM},
				{FieldName: domain.FieldResponse},
			},
			DialectVersion: redisDialectVersion,
			Limit:          k,
			SortBy: []redis.FTSearchSortBy{
				{FieldName: "score", Asc: true},
			},
			Params: map[string]any{
				"vec": floatsToBytes(vector),
			},
		},
	).Result()
	if err != nil {
		logger.Error("vector search failed",
			observability.String("collection", collection),
			observability.Error(err))
		return nil, fmt.Errorf("%w: search %s: %w", domain.ErrStorage, collection, err)
	}

	hits := make([]domain.SearchHit, 0, len(results.Docs))
	for _, doc := range results.Docs {
		hit, ok := parseHit(doc)
		if ok {
			hits = append(hits, hit)
		}
	}

	logger.Debug("vector search completed",
		observability.String("collection", collection),
		observability.Int("hits", len(hits)))
	return hits, nil
}

// Distinct lists the distinct values of a TAG field across a collection.
// A collection without an index has nothing indexed yet.
func (s *Store) Distinct(ctx context.Context, collection, field string) ([]string, error) {
	result, err := s.client.FTAggregateWithArgs(ctx, indexName(collection), "*",
		&redis.FTAggregateOptions{
			GroupBy: []redis.FTAggregateGroupBy{
				{Fields: []interface{}{"@" + field}},
			},
		},
	).Result()
	if err != nil {
		if isMissingIndex(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: distinct %s.%s: %w", domain.ErrStorage, collection, field, err)
	}

	values := make([]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		if v, ok := row.Fields[field]; ok {
			values = append(values, fmt.Sprint(v))
		}
	}
	return values, nil
}

// Count returns the number of documents matching the filter. A collection
// without an index counts as empty.
func (s *Store) Count(ctx context.Context, collection string, filter map[string]string) (int64, error) {
	results, err := s.client.FTSearchWithArgs(ctx, indexName(collection), filterExpression(filter),
		&redis.FTSearchOptions{
			NoContent:      true,
			DialectVersion: redisDialectVersion,
		},
	).Result()
	if err != nil {
		if isMissingIndex(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: count in %s: %w", domain.ErrStorage, collection, err)
	}

	return int64(results.Total), nil
}

// IndexState reports the index descriptor for a collection.
func (s *Store) IndexState(ctx context.Context, collection string) (domain.IndexDescriptor, error) {
	desc := domain.IndexDescriptor{Collection: collection, Status: domain.IndexAbsent}

	info, err := s.client.FTInfo(ctx, indexName(collection)).Result()
	if err != nil {
		if isMissingIndex(err) {
			return desc, nil
		}
		return desc, fmt.Errorf("%w: index info for %s: %w", domain.ErrStorage, collection, err)
	}

	dims, err := s.client.HGet(ctx, indexMetaKey(collection), "dims").Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return desc, fmt.Errorf("%w: index meta for %s: %w", domain.ErrStorage, collection, err)
	}
	desc.Dimensions, _ = strconv.Atoi(dims)

	// Background indexing drives BUILDING -> READY.
	if info.Indexing == 0 && info.PercentIndexed >= 1 {
		desc.Status = domain.IndexReady
	} else {
		desc.Status = domain.IndexBuilding
	}
	return desc, nil
}

// CreateIndex creates the vector index for a collection at the given
// dimensionality. Existing hashes under the collection prefix are indexed
// in the background.
func (s *Store) CreateIndex(ctx context.Context, collection string, dims int) error {
	logger := observability.FromContext(ctx)
	logger.Info("creating search index",
		observability.String("collection", collection),
		observability.Int("dimensions", dims))

	_, err := s.client.FTCreate(ctx, indexName(collection),
		&redis.FTCreateOptions{
			OnHash: true,
			Prefix: []any{collection + ":"},
		},
		&redis.FieldSchema{
			FieldName: "embedding",
			FieldType: redis.SearchFieldTypeVector,
			VectorArgs: &redis.FTVectorArgs{
				FlatOptions: &redis.FTFlatOptions{
					Type:           "FLOAT32",
					Dim:            dims,
					DistanceMetric: "COSINE",
				},
			},
		},
		&redis.FieldSchema{
			FieldName: domain.FieldText,
			FieldType: redis.SearchFieldTypeText,
		},
		&redis.FieldSchema{
			FieldName: domain.FieldFileName,
			FieldType: redis.SearchFieldTypeTag,
		},
		&redis.FieldSchema{
			FieldName: domain.FieldFileHash,
			FieldType: redis.SearchFieldTypeTag,
		},
		&redis.FieldSchema{
			FieldName: domain.FieldLLM,
			FieldType: redis.SearchFieldTypeTag,
		},
		&redis.FieldSchema{
			FieldName: domain.FieldSeq,
			FieldType: redis.SearchFieldTypeNumeric,
			Sortable:  true,
		},
	).Result()
	if err != nil {
		return fmt.Errorf("%w: create index for %s: %w", domain.ErrStorage, collection, err)
	}

	if err := s.client.HSet(ctx, indexMetaKey(collection), "dims", dims).Err(); err != nil {
		return fmt.Errorf("%w: record index meta for %s: %w", domain.ErrStorage, collection, err)
	}
	return nil
}

// DropIndex removes the index but keeps the stored documents, so a resize
// re-indexes them instead of losing them.
func (s *Store) DropIndex(ctx context.Context, collection string) error {
	if err := s.client.FTDropIndex(ctx, indexName(collection)).Err(); err != nil && !isMissingIndex(err) {
		return fmt.Errorf("%w: drop index for %s: %w", domain.ErrStorage, collection, err)
	}
	if err := s.client.Del(ctx, indexMetaKey(collection)).Err(); err != nil {
		return fmt.Errorf("%w: drop index meta for %s: %w", domain.ErrStorage, collection, err)
	}
	return nil
}

// filterExpression renders exact-match filters as TAG clauses; an empty
// filter matches everything.
func filterExpression(filter map[string]string) string {
	if len(filter) == 0 {
		return "*"
	}

	clauses := make([]string, 0, len(filter))
	for field, value := range filter {
		clauses = append(clauses, fmt.Sprintf("@%s:{%s}", field, escapeTag(value)))
	}
	return "(" + strings.Join(clauses, " ") + ")"
}

// escapeTag escapes RediSearch TAG syntax characters in a filter value.
func escapeTag(value string) string {
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteString("\\ ")
		default:
			b.WriteRune('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

func parseHit(doc redis.Document) (domain.SearchHit, bool) {
	scoreStr, ok := doc.Fields["score"]
	if !ok {
		return domain.SearchHit{}, false
	}
	distance, err := strconv.ParseFloat(scoreStr, 64)
	if err != nil {
		return domain.SearchHit{}, false
	}

	fields := make(map[string]string, len(doc.Fields))
	for field, value := range doc.Fields {
		if field == "score" {
			continue
		}
		fields[field] = value
	}

	return domain.SearchHit{
		Key: doc.ID,
		// Cosine distance to similarity.
		Score:  1.0 - distance,
		Fields: fields,
	}, true
}

func isMissingIndex(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such index") ||
		strings.Contains(msg, "unknown index")
}

// Ping verifies connectivity at startup.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: ping: %w", domain.ErrStorage, err)
	}
	return nil
}

// EmbeddingStore implements domain.EmbeddingStore over plain Redis keys.
// TTL enforcement is passive: Redis expires query-space entries on its
// own, and an expired read is an ordinary miss.
type EmbeddingStore struct {
	client *redis.Client
}

// NewEmbeddingStore creates the Redis-backed embedding cache store.
func NewEmbeddingStore(client *redis.Client) *EmbeddingStore {
	return &EmbeddingStore{client: client}
}

func embeddingKey(space, key string) string {
	return "emb:" + space + ":" + key
}

// Get retrieves a cached vector by (space, key).
func (e *EmbeddingStore) Get(ctx context.Context, space, key string) ([]float64, bool, error) {
	buf, err := e.client.Get(ctx, embeddingKey(space, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: embedding cache get: %w", domain.ErrStorage, err)
	}
	return bytesToFloats(buf), true, nil
}

// Put stores a vector. ttl == 0 stores it without expiry.
func (e *EmbeddingStore) Put(ctx context.Context, space, key string, vector []float64, ttl time.Duration) error {
	if err := e.client.Set(ctx, embeddingKey(space, key), floatsToBytes(vector), ttl).Err(); err != nil {
		return fmt.Errorf("%w: embedding cache put: %w", domain.ErrStorage, err)
	}
	return nil
}
