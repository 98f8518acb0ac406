package domain_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/hearth/internal/domain"
	"github.com/davidbz/hearth/internal/mocks"
)

// memoryEmbeddingStore keeps embeddings across calls so tests observe real
// cache behavior instead of scripted hits.
type memoryEmbeddingStore struct {
	entries map[string][]float64
}

func newMemoryEmbeddingStore() *memoryEmbeddingStore {
	return &memoryEmbeddingStore{entries: make(map[string][]float64)}
}

func (s *memoryEmbeddingStore) Get(_ context.Context, space, key string) ([]float64, bool, error) {
	vector, ok := s.entries[space+"/"+key]
	return vector, ok, nil
}

func (s *memoryEmbeddingStore) Put(_ context.Context, space, key string, vector []float64, _ time.Duration) error {
	s.entries[space+"/"+key] = vector
	return nil
}

type orchestratorFixture struct {
	vectors    *mocks.MockVectorStore
	chat       *mocks.MockChatProvider
	admin      *mocks.MockIndexAdmin
	embedCalls map[string]int
	orch       *domain.Orchestrator
}

func newOrchestratorFixture(t *testing.T, maxWait time.Duration) *orchestratorFixture {
	t.Helper()

	mockVectors := mocks.NewMockVectorStore(t)
	mockChat := mocks.NewMockChatProvider(t)
	mockAdmin := mocks.NewMockIndexAdmin(t)
	mockProvider := mocks.NewMockEmbeddingProvider(t)

	f := &orchestratorFixture{
		vectors:    mockVectors,
		chat:       mockChat,
		admin:      mockAdmin,
		embedCalls: make(map[string]int),
	}

	mockProvider.EXPECT().Model().Return("test-model").Maybe()
	mockProvider.EXPECT().
		EmbedBatch(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, texts []string) ([][]float64, error) {
			vectors := make([][]float64, len(texts))
			for i, text := range texts {
				f.embedCalls[text]++
				vectors[i] = []float64{float64(len(text)), 0.5}
			}
			return vectors, nil
		}).
		Maybe()

	embedder := domain.NewCachedEmbedder(mockProvider, newMemoryEmbeddingStore(), time.Hour)
	cache := domain.NewResponseCache(embedder, mockVectors, "responses", domain.DefaultCacheThreshold)
	indexes := domain.NewIndexManager(mockAdmin, []string{"chunks", "responses"}, maxWait)

	f.orch = domain.NewOrchestrator(
		mockVectors, embedder, mockChat, cache, indexes,
		"chunks", "responses", domain.DefaultTopK,
	)

	return f
}

func (f *orchestratorFixture) indexesReady() {
	f.admin.EXPECT().
		IndexState(mock.Anything, "chunks").
		Return(domain.IndexDescriptor{Dimensions: 2, Status: domain.IndexReady}, nil).
		Once()
	f.admin.EXPECT().
		IndexState(mock.Anything, "responses").
		Return(domain.IndexDescriptor{Dimensions: 2, Status: domain.IndexReady}, nil).
		Once()
}

func TestOrchestrator_Answer_GroundedAndUngrounded(t *testing.T) {
	ctx := context.Background()
	f := newOrchestratorFixture(t, time.Minute)

	question := "What was the company's revenue?"
	contextText := "The company's revenue was $12 million." +
		"\n---\n" +
		"Operating costs fell by 8 percent."
	groundedPrompt := "You are an assistant. Use the following context to answer the user's question.\n\n" +
		"Context:\n" + contextText + "\n\nQuestion: " + question + "\nAnswer:"
	ungroundedPrompt := "Answer the following question as best as you can:\n" + question + "\nAnswer:"

	f.vectors.EXPECT().
		Distinct(mock.Anything, "chunks", domain.FieldFileName).
		Return([]string{"report.txt"}, nil)

	f.indexesReady()

	f.vectors.EXPECT().
		SimilaritySearch(mock.Anything, "chunks", []float64{float64(len(question)), 0.5}, domain.DefaultTopK, map[string]string(nil)).
		Return([]domain.SearchHit{
			{
				Key:   "chunks:a:0",
				Score: 0.91,
				Fields: map[string]string{
					domain.FieldText:     "The company's revenue was $12 million.",
					domain.FieldFileName: "report.txt",
				},
			},
			{
				Key:   "chunks:a:1",
				Score: 0.84,
				Fields: map[string]string{
					domain.FieldText:     "Operating costs fell by 8 percent.",
					domain.FieldFileName: "report.txt",
				},
			},
		}, nil)

	f.chat.EXPECT().Identity().Return("echo/echo4")

	// Both prompts miss the response cache and get stored after completion.
	f.vectors.EXPECT().
		SimilaritySearch(mock.Anything, "responses", mock.Anything, 1,
			map[string]string{domain.FieldLLM: "echo/echo4"}).
		Return(nil, nil).
		Times(2)
	f.vectors.EXPECT().
		UpsertMany(mock.Anything, "responses", mock.Anything).
		Return(nil).
		Times(2)

	f.chat.EXPECT().
		Complete(mock.Anything, groundedPrompt).
		Return("The revenue was $12 million.", nil)
	f.chat.EXPECT().
		Complete(mock.Anything, ungroundedPrompt).
		Return("I do not have enough information to answer that.", nil)

	result, err := f.orch.Answer(ctx, question)
	require.NoError(t, err)
	require.Equal(t, "The revenue was $12 million.", result.Grounded)
	require.Equal(t, "I do not have enough information to answer that.", result.Ungrounded)
	require.Equal(t, []string{"report.txt"}, result.Sources)

	// Each distinct text hits the embedding provider exactly once; the
	// cache-store path reuses the lookup's embedding.
	require.Equal(t, 1, f.embedCalls[question])
	require.Equal(t, 1, f.embedCalls[groundedPrompt])
	require.Equal(t, 1, f.embedCalls[ungroundedPrompt])
}

func TestOrchestrator_Answer_ServedFromResponseCache(t *testing.T) {
	ctx := context.Background()
	f := newOrchestratorFixture(t, time.Minute)

	f.vectors.EXPECT().
		Distinct(mock.Anything, "chunks", domain.FieldFileName).
		Return([]string{"report.txt"}, nil)

	f.indexesReady()

	f.vectors.EXPECT().
		SimilaritySearch(mock.Anything, "chunks", mock.Anything, domain.DefaultTopK, map[string]string(nil)).
		Return([]domain.SearchHit{{
			Key:    "chunks:a:0",
			Score:  0.9,
			Fields: map[string]string{domain.FieldText: "body", domain.FieldFileName: "report.txt"},
		}}, nil)

	f.chat.EXPECT().Identity().Return("echo/echo4")

	f.vectors.EXPECT().
		SimilaritySearch(mock.Anything, "responses", mock.Anything, 1,
			map[string]string{domain.FieldLLM: "echo/echo4"}).
		Return([]domain.SearchHit{{
			Key:    "responses:x",
			Score:  0.999,
			Fields: map[string]string{domain.FieldResponse: "cached answer"},
		}}, nil).
		Times(2)

	result, err := f.orch.Answer(ctx, "What was the revenue?")
	require.NoError(t, err)
	require.Equal(t, "cached answer", result.Grounded)
	require.Equal(t, "cached answer", result.Ungrounded)
	f.chat.AssertNotCalled(t, "Complete")
}

func TestOrchestrator_Answer_EmptyQuestion(t *testing.T) {
	f := newOrchestratorFixture(t, time.Minute)

	_, err := f.orch.Answer(context.Background(), "   ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty")
}

func TestOrchestrator_Answer_NoCorpusIndexed(t *testing.T) {
	f := newOrchestratorFixture(t, time.Minute)

	f.vectors.EXPECT().
		Distinct(mock.Anything, "chunks", domain.FieldFileName).
		Return(nil, nil)

	_, err := f.orch.Answer(context.Background(), "anything?")
	require.ErrorIs(t, err, domain.ErrNoCorpusIndexed)
}

func TestOrchestrator_Answer_IndexStillBuilding(t *testing.T) {
	f := newOrchestratorFixture(t, 0)

	f.vectors.EXPECT().
		Distinct(mock.Anything, "chunks", domain.FieldFileName).
		Return([]string{"report.txt"}, nil)

	f.admin.EXPECT().
		IndexState(mock.Anything, "chunks").
		Return(domain.IndexDescriptor{Dimensions: 2, Status: domain.IndexBuilding}, nil)

	_, err := f.orch.Answer(context.Background(), "anything?")
	require.ErrorIs(t, err, domain.ErrIndexNotReady)
}

func TestOrchestrator_Answer_ChatFailureWrapped(t *testing.T) {
	ctx := context.Background()
	f := newOrchestratorFixture(t, time.Minute)

	f.vectors.EXPECT().
		Distinct(mock.Anything, "chunks", domain.FieldFileName).
		Return([]string{"report.txt"}, nil)

	f.indexesReady()

	f.vectors.EXPECT().
		SimilaritySearch(mock.Anything, "chunks", mock.Anything, domain.DefaultTopK, map[string]string(nil)).
		Return([]domain.SearchHit{{
			Key:    "chunks:a:0",
			Score:  0.9,
			Fields: map[string]string{domain.FieldText: "body", domain.FieldFileName: "report.txt"},
		}}, nil)

	f.chat.EXPECT().Identity().Return("echo/echo4")
	f.vectors.EXPECT().
		SimilaritySearch(mock.Anything, "responses", mock.Anything, 1, mock.Anything).
		Return(nil, nil)
	f.chat.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return("", context.DeadlineExceeded)

	_, err := f.orch.Answer(ctx, "anything?")
	require.ErrorIs(t, err, domain.ErrChatProvider)
}
