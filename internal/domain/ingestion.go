package domain

import (
	"context"
	"fmt"
	"strconv"

	"github.com/davidbz/hearth/internal/observability"
)

// Pipeline ingests source documents into the chunk collection: digest,
// dedup check, split, embed through the cache, store, move to processed.
//
// Documents are processed strictly sequentially to bound peak memory and
// IO pressure and to keep per-document failure isolated and attributable.
// Concurrent ingestion into the same collection is undefined; callers
// serialize it.
type Pipeline struct {
	store      VectorStore
	embedder   *CachedEmbedder
	splitter   *Splitter
	indexes    *IndexManager
	area       SourceArea
	collection string
}

// NewPipeline creates the ingestion pipeline over the chunk collection.
func NewPipeline(
	store VectorStore,
	embedder *CachedEmbedder,
	splitter *Splitter,
	indexes *IndexManager,
	area SourceArea,
	collection string,
) *Pipeline {
	return &Pipeline{
		store:      store,
		embedder:   embedder,
		splitter:   splitter,
		indexes:    indexes,
		area:       area,
		collection: collection,
	}
}

// IngestPending ingests every file currently waiting in the source area.
func (p *Pipeline) IngestPending(ctx context.Context) (*IngestionReport, error) {
	files, err := p.area.Pending()
	if err != nil {
		return nil, fmt.Errorf("list pending sources: %w", err)
	}
	return p.Ingest(ctx, files), nil
}

// Ingest processes the documents one at a time. A failure on one document
// never aborts the batch: the failed document stays in the source area for
// retry, its cause is reported verbatim, and the loop continues.
func (p *Pipeline) Ingest(ctx context.Context, files []SourceFile) *IngestionReport {
	report := &IngestionReport{}

	for _, file := range files {
		fileCtx := observability.WithDocument(ctx, file.Name)
		logger := observability.FromContext(fileCtx)

		outcome, err := p.ingestOne(fileCtx, file)
		switch {
		case err != nil:
			logger.Error("document ingestion failed", observability.Error(err))
			report.Failed = append(report.Failed, IngestionFailure{Name: file.Name, Err: err})
		case outcome == outcomeSkipped:
			logger.Info("document already ingested, skipped")
			report.Skipped = append(report.Skipped, file.Name)
		default:
			logger.Info("document ingested")
			report.Processed = append(report.Processed, file.Name)
		}
	}

	return report
}

type ingestOutcome int

const (
	outcomeProcessed ingestOutcome = iota
	outcomeSkipped
)

func (p *Pipeline) ingestOne(ctx context.Context, file SourceFile) (ingestOutcome, error) {
	doc := Document{
		Name:   file.Name,
		Digest: DigestBytes(file.Content),
	}

	// Dedup on the content digest, not the filename: the same bytes under
	// a different name are the same document.
	existing, err := p.store.Count(ctx, p.collection, map[string]string{FieldFileHash: doc.Digest})
	if err != nil {
		return 0, fmt.Errorf("dedup check: %w", err)
	}
	if existing > 0 {
		// Move out of the pending area without re-embedding so the skip
		// is idempotent too.
		if moveErr := p.area.MoveToProcessed(file.Name); moveErr != nil {
			return 0, fmt.Errorf("move skipped document: %w", moveErr)
		}
		return outcomeSkipped, nil
	}

	chunks := p.splitter.Split(doc, string(file.Content))
	if len(chunks) == 0 {
		// Nothing to index; still move it so it is not rescanned forever.
		if moveErr := p.area.MoveToProcessed(file.Name); moveErr != nil {
			return 0, fmt.Errorf("move empty document: %w", moveErr)
		}
		return outcomeProcessed, nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	vectors, err := p.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return 0, err
	}

	docs := make([]VectorDoc, len(chunks))
	for i, chunk := range chunks {
		docs[i] = VectorDoc{
			Key:    fmt.Sprintf("%s:%d", doc.Digest, chunk.Seq),
			Vector: vectors[i],
			Fields: map[string]string{
				FieldText:     chunk.Text,
				FieldFileName: chunk.DocumentName,
				FieldFileHash: chunk.DocumentDigest,
				FieldSeq:      strconv.Itoa(chunk.Seq),
			},
		}
	}

	if err := p.store.UpsertMany(ctx, p.collection, docs); err != nil {
		return 0, fmt.Errorf("store chunks: %w", err)
	}

	// Reconcile every vector-bearing collection with the dimensionality
	// this model actually produced. No-op once established.
	if err := p.indexes.Observe(ctx, len(vectors[0])); err != nil {
		return 0, fmt.Errorf("configure vector index: %w", err)
	}

	// Only after embedding and storage succeeded. A failed document stays
	// in the pending area so the operator can retry it.
	if err := p.area.MoveToProcessed(file.Name); err != nil {
		return 0, fmt.Errorf("move processed document: %w", err)
	}

	return outcomeProcessed, nil
}
