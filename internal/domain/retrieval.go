package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/davidbz/hearth/internal/observability"
)

// DefaultTopK is the number of chunks retrieved as context per question.
const DefaultTopK = 8

// Separator between retrieved chunks in the grounded prompt.
const contextSeparator = "\n---\n"

const groundedPromptFormat = "You are an assistant. Use the following context to answer the user's question.\n\n" +
	"Context:\n%s\n\nQuestion: %s\nAnswer:"

const ungroundedPromptFormat = "Answer the following question as best as you can:\n%s\nAnswer:"

// Orchestrator answers a question twice: once grounded in retrieved chunk
// context and once from the bare model, so the effect of retrieval is
// measurable. Both responses go through the semantic response cache.
type Orchestrator struct {
	store           VectorStore
	embedder        *CachedEmbedder
	chat            ChatProvider
	cache           *ResponseCache
	indexes         *IndexManager
	chunkCollection string
	cacheCollection string
	topK            int
}

// NewOrchestrator creates the retrieval orchestrator.
func NewOrchestrator(
	store VectorStore,
	embedder *CachedEmbedder,
	chat ChatProvider,
	cache *ResponseCache,
	indexes *IndexManager,
	chunkCollection, cacheCollection string,
	topK int,
) *Orchestrator {
	return &Orchestrator{
		store:           store,
		embedder:        embedder,
		chat:            chat,
		cache:           cache,
		indexes:         indexes,
		chunkCollection: chunkCollection,
		cacheCollection: cacheCollection,
		topK:            topK,
	}
}

// Answer retrieves context for the question and issues the grounded and
// ungrounded prompts. It fails with ErrNoCorpusIndexed before any
// ingestion has succeeded and with ErrIndexNotReady while either the
// chunk index or the cache index is still building; both are retryable.
func (o *Orchestrator) Answer(ctx context.Context, question string) (*AnswerResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("question cannot be empty")
	}

	logger := observability.FromContext(ctx)

	ingested, err := o.store.Distinct(ctx, o.chunkCollection, FieldFileName)
	if err != nil {
		return nil, fmt.Errorf("list ingested documents: %w", err)
	}
	if len(ingested) == 0 {
		return nil, ErrNoCorpusIndexed
	}

	if err := o.indexes.AwaitReady(ctx, o.chunkCollection); err != nil {
		return nil, err
	}
	if err := o.indexes.AwaitReady(ctx, o.cacheCollection); err != nil {
		return nil, err
	}

	queryVector, err := o.embedder.EmbedQuery(ctx, question)
	if err != nil {
		return nil, err
	}

	hits, err := o.store.SimilaritySearch(ctx, o.chunkCollection, queryVector, o.topK, nil)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	contextText, sources := buildContext(hits)
	logger.Info("retrieved context",
		observability.Int("chunks", len(hits)),
		observability.Strings("sources", sources))

	groundedPrompt := fmt.Sprintf(groundedPromptFormat, contextText, question)
	ungroundedPrompt := fmt.Sprintf(ungroundedPromptFormat, question)

	// The two prompts are different strings, so they occupy independent
	// cache entries and never collide.
	grounded, err := o.completeCached(ctx, groundedPrompt)
	if err != nil {
		return nil, fmt.Errorf("grounded answer: %w", err)
	}
	ungrounded, err := o.completeCached(ctx, ungroundedPrompt)
	if err != nil {
		return nil, fmt.Errorf("ungrounded answer: %w", err)
	}

	return &AnswerResult{
		Grounded:   grounded,
		Ungrounded: ungrounded,
		Sources:    sources,
	}, nil
}

// completeCached resolves a prompt through the response cache, calling the
// chat provider only on a miss and storing the fresh response afterwards.
func (o *Orchestrator) completeCached(ctx context.Context, prompt string) (string, error) {
	logger := observability.FromContext(ctx)

	cached, err := o.cache.Lookup(ctx, prompt, o.chat.Identity())
	if err == nil {
		return cached, nil
	}
	if !IsMiss(err) {
		return "", err
	}

	response, err := o.chat.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrChatProvider, err)
	}

	if storeErr := o.cache.Store(ctx, prompt, o.chat.Identity(), response); storeErr != nil {
		// The answer is already in hand; a failed cache write only costs
		// a future provider call.
		logger.Warn("failed to store response in cache", observability.Error(storeErr))
	}

	return response, nil
}

func buildContext(hits []SearchHit) (string, []string) {
	parts := make([]string, 0, len(hits))
	var sources []string
	seen := make(map[string]bool)

	for _, hit := range hits {
		parts = append(parts, hit.Fields[FieldText])
		if name := hit.Fields[FieldFileName]; name != "" && !seen[name] {
			seen[name] = true
			sources = append(sources, name)
		}
	}

	return strings.Join(parts, contextSeparator), sources
}
