package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/hearth/internal/domain"
	"github.com/davidbz/hearth/internal/httpserver"
	"github.com/davidbz/hearth/internal/mocks"
)

type handlerFixture struct {
	vectors  *mocks.MockVectorStore
	chat     *mocks.MockChatProvider
	admin    *mocks.MockIndexAdmin
	area     *mocks.MockSourceArea
	embedded map[string]int
	handler  *httpserver.Handler
}

func newHandlerFixture(t *testing.T, maxWait time.Duration, maxQuestionLen int) *handlerFixture {
	t.Helper()

	mockVectors := mocks.NewMockVectorStore(t)
	mockChat := mocks.NewMockChatProvider(t)
	mockAdmin := mocks.NewMockIndexAdmin(t)
	mockArea := mocks.NewMockSourceArea(t)
	mockProvider := mocks.NewMockEmbeddingProvider(t)
	mockEmbStore := mocks.NewMockEmbeddingStore(t)

	f := &handlerFixture{
		vectors:  mockVectors,
		chat:     mockChat,
		admin:    mockAdmin,
		area:     mockArea,
		embedded: make(map[string]int),
	}

	mockProvider.EXPECT().Model().Return("test-model").Maybe()
	mockProvider.EXPECT().
		EmbedBatch(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, texts []string) ([][]float64, error) {
			vectors := make([][]float64, len(texts))
			for i, text := range texts {
				f.embedded[text]++
				vectors[i] = []float64{float64(len(text)), 0.5}
			}
			return vectors, nil
		}).
		Maybe()
	mockEmbStore.EXPECT().
		Get(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, false, nil).
		Maybe()
	mockEmbStore.EXPECT().
		Put(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Maybe()

	embedder := domain.NewCachedEmbedder(mockProvider, mockEmbStore, time.Hour)
	splitter, err := domain.NewSplitter(1000, 200)
	require.NoError(t, err)
	indexes := domain.NewIndexManager(mockAdmin, []string{"chunks", "responses"}, maxWait)
	pipeline := domain.NewPipeline(mockVectors, embedder, splitter, indexes, mockArea, "chunks")
	cache := domain.NewResponseCache(embedder, mockVectors, "responses", domain.DefaultCacheThreshold)
	orchestrator := domain.NewOrchestrator(
		mockVectors, embedder, mockChat, cache, indexes,
		"chunks", "responses", domain.DefaultTopK,
	)

	f.handler = httpserver.NewHandler(pipeline, orchestrator, mockVectors, "chunks", maxQuestionLen)
	return f
}

func askBody(t *testing.T, question string) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]string{"question": question})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestHandleAsk_MethodNotAllowed(t *testing.T) {
	f := newHandlerFixture(t, time.Minute, 500)

	httpReq := httptest.NewRequest(http.MethodGet, "/v1/rag/ask", nil)
	w := httptest.NewRecorder()

	f.handler.HandleAsk(w, httpReq)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleAsk_InvalidJSON(t *testing.T) {
	f := newHandlerFixture(t, time.Minute, 500)

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/rag/ask", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()

	f.handler.HandleAsk(w, httpReq)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAsk_EmptyQuestion(t *testing.T) {
	f := newHandlerFixture(t, time.Minute, 500)

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/rag/ask", askBody(t, "   "))
	w := httptest.NewRecorder()

	f.handler.HandleAsk(w, httpReq)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "please enter a question")
}

func TestHandleAsk_NoCorpusIndexed(t *testing.T) {
	f := newHandlerFixture(t, time.Minute, 500)

	f.vectors.EXPECT().
		Distinct(mock.Anything, "chunks", domain.FieldFileName).
		Return(nil, nil)

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/rag/ask", askBody(t, "anything?"))
	w := httptest.NewRecorder()

	f.handler.HandleAsk(w, httpReq)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "no documents have been ingested yet")
}

func TestHandleAsk_IndexStillBuilding(t *testing.T) {
	f := newHandlerFixture(t, 0, 500)

	f.vectors.EXPECT().
		Distinct(mock.Anything, "chunks", domain.FieldFileName).
		Return([]string{"report.txt"}, nil)
	f.admin.EXPECT().
		IndexState(mock.Anything, "chunks").
		Return(domain.IndexDescriptor{Dimensions: 2, Status: domain.IndexBuilding}, nil)

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/rag/ask", askBody(t, "anything?"))
	w := httptest.NewRecorder()

	f.handler.HandleAsk(w, httpReq)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), "still building")
}

func TestHandleAsk_Success(t *testing.T) {
	f := newHandlerFixture(t, time.Minute, 500)

	f.vectors.EXPECT().
		Distinct(mock.Anything, "chunks", domain.FieldFileName).
		Return([]string{"report.txt"}, nil)

	for _, collection := range []string{"chunks", "responses"} {
		f.admin.EXPECT().
			IndexState(mock.Anything, collection).
			Return(domain.IndexDescriptor{Dimensions: 2, Status: domain.IndexReady}, nil).
			Once()
	}

	f.vectors.EXPECT().
		SimilaritySearch(mock.Anything, "chunks", mock.Anything, domain.DefaultTopK, map[string]string(nil)).
		Return([]domain.SearchHit{{
			Key:   "chunks:a:0",
			Score: 0.9,
			Fields: map[string]string{
				domain.FieldText:     "The revenue was $12 million.",
				domain.FieldFileName: "report.txt",
			},
		}}, nil)

	f.chat.EXPECT().Identity().Return("echo/echo4")

	// Both prompts are served straight from the response cache.
	f.vectors.EXPECT().
		SimilaritySearch(mock.Anything, "responses", mock.Anything, 1,
			map[string]string{domain.FieldLLM: "echo/echo4"}).
		Return([]domain.SearchHit{{
			Key:    "responses:x",
			Score:  0.999,
			Fields: map[string]string{domain.FieldResponse: "cached answer"},
		}}, nil).
		Times(2)

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/rag/ask", askBody(t, "What was the revenue?"))
	w := httptest.NewRecorder()

	f.handler.HandleAsk(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var result domain.AnswerResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	require.Equal(t, "cached answer", result.Grounded)
	require.Equal(t, "cached answer", result.Ungrounded)
	require.Equal(t, []string{"report.txt"}, result.Sources)
}

func TestHandleAsk_TruncatesOverlongQuestion(t *testing.T) {
	f := newHandlerFixture(t, time.Minute, 10)

	// The truncated question is what reaches the pipeline.
	f.vectors.EXPECT().
		Distinct(mock.Anything, "chunks", domain.FieldFileName).
		Return(nil, nil)

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/rag/ask",
		askBody(t, "0123456789 this tail is cut off"))
	w := httptest.NewRecorder()

	f.handler.HandleAsk(w, httpReq)

	// Ends at the corpus check, which is enough to prove the request was
	// accepted rather than rejected for length.
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleIngest_MethodNotAllowed(t *testing.T) {
	f := newHandlerFixture(t, time.Minute, 500)

	httpReq := httptest.NewRequest(http.MethodGet, "/v1/rag/ingest", nil)
	w := httptest.NewRecorder()

	f.handler.HandleIngest(w, httpReq)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleIngest_ReportsOutcomes(t *testing.T) {
	f := newHandlerFixture(t, time.Minute, 500)

	newContent := []byte("fresh document body")
	dupContent := []byte("duplicate document body")

	f.area.EXPECT().
		Pending().
		Return([]domain.SourceFile{
			{Name: "fresh.txt", Content: newContent},
			{Name: "dup.txt", Content: dupContent},
		}, nil)

	f.vectors.EXPECT().
		Count(mock.Anything, "chunks", map[string]string{domain.FieldFileHash: domain.DigestBytes(newContent)}).
		Return(int64(0), nil)
	f.vectors.EXPECT().
		Count(mock.Anything, "chunks", map[string]string{domain.FieldFileHash: domain.DigestBytes(dupContent)}).
		Return(int64(1), nil)

	f.vectors.EXPECT().
		UpsertMany(mock.Anything, "chunks", mock.Anything).
		Return(nil)
	f.admin.EXPECT().
		IndexState(mock.Anything, mock.Anything).
		Return(domain.IndexDescriptor{Dimensions: 2, Status: domain.IndexBuilding}, nil)

	f.area.EXPECT().MoveToProcessed("fresh.txt").Return(nil)
	f.area.EXPECT().MoveToProcessed("dup.txt").Return(nil)

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/rag/ingest", nil)
	w := httptest.NewRecorder()

	f.handler.HandleIngest(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Processed []string `json:"processed"`
		Skipped   []string `json:"skipped"`
		Failed    []struct {
			Name  string `json:"name"`
			Error string `json:"error"`
		} `json:"failed"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Equal(t, []string{"fresh.txt"}, resp.Processed)
	require.Equal(t, []string{"dup.txt"}, resp.Skipped)
	require.Empty(t, resp.Failed)
}

func TestHandleIngest_SourceAreaFailure(t *testing.T) {
	f := newHandlerFixture(t, time.Minute, 500)

	f.area.EXPECT().
		Pending().
		Return(nil, errors.New("directory unreadable"))

	httpReq := httptest.NewRequest(http.MethodPost, "/v1/rag/ingest", nil)
	w := httptest.NewRecorder()

	f.handler.HandleIngest(w, httpReq)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandleDocuments(t *testing.T) {
	t.Run("lists ingested documents", func(t *testing.T) {
		f := newHandlerFixture(t, time.Minute, 500)

		f.vectors.EXPECT().
			Distinct(mock.Anything, "chunks", domain.FieldFileName).
			Return([]string{"a.txt", "b.txt"}, nil)

		httpReq := httptest.NewRequest(http.MethodGet, "/v1/rag/documents", nil)
		w := httptest.NewRecorder()

		f.handler.HandleDocuments(w, httpReq)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string][]string
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Equal(t, []string{"a.txt", "b.txt"}, resp["documents"])
	})

	t.Run("empty corpus yields empty list", func(t *testing.T) {
		f := newHandlerFixture(t, time.Minute, 500)

		f.vectors.EXPECT().
			Distinct(mock.Anything, "chunks", domain.FieldFileName).
			Return(nil, nil)

		httpReq := httptest.NewRequest(http.MethodGet, "/v1/rag/documents", nil)
		w := httptest.NewRecorder()

		f.handler.HandleDocuments(w, httpReq)

		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"documents":[]}`, w.Body.String())
	})

	t.Run("method not allowed", func(t *testing.T) {
		f := newHandlerFixture(t, time.Minute, 500)

		httpReq := httptest.NewRequest(http.MethodPost, "/v1/rag/documents", nil)
		w := httptest.NewRecorder()

		f.handler.HandleDocuments(w, httpReq)

		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	f := newHandlerFixture(t, time.Minute, 500)

	httpReq := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	f.handler.HandleHealth(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Equal(t, "healthy", response["status"])
}
