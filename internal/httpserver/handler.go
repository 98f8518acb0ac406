package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/davidbz/hearth/internal/domain"
	"github.com/davidbz/hearth/internal/observability"
)

// Handler exposes the ingestion and retrieval pipeline over HTTP.
type Handler struct {
	pipeline        *domain.Pipeline
	orchestrator    *domain.Orchestrator
	store           domain.VectorStore
	chunkCollection string
	maxQuestionLen  int

	// Concurrent ingestion into the same collection is undefined
	// behavior; serialize it here, at the entry point.
	ingestMu sync.Mutex
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	pipeline *domain.Pipeline,
	orchestrator *domain.Orchestrator,
	store domain.VectorStore,
	chunkCollection string,
	maxQuestionLen int,
) *Handler {
	return &Handler{
		pipeline:        pipeline,
		orchestrator:    orchestrator,
		store:           store,
		chunkCollection: chunkCollection,
		maxQuestionLen:  maxQuestionLen,
	}
}

type askRequest struct {
	Question string `json:"question"`
}

type ingestResponse struct {
	Processed []string       `json:"processed"`
	Skipped   []string       `json:"skipped"`
	Failed    []failedEntry  `json:"failed"`
}

type failedEntry struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// HandleIngest scans the source area and ingests every pending document.
func (h *Handler) HandleIngest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	logger := observability.FromContext(ctx)
	logger.Info("ingestion request received")

	h.ingestMu.Lock()
	report, err := h.pipeline.IngestPending(ctx)
	h.ingestMu.Unlock()
	if err != nil {
		logger.Error("ingestion failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := ingestResponse{
		Processed: report.Processed,
		Skipped:   report.Skipped,
		Failed:    make([]failedEntry, 0, len(report.Failed)),
	}
	for _, failure := range report.Failed {
		resp.Failed = append(resp.Failed, failedEntry{
			Name:  failure.Name,
			Error: failure.Err.Error(),
		})
	}

	logger.Info("ingestion completed",
		zap.Int("processed", len(resp.Processed)),
		zap.Int("skipped", len(resp.Skipped)),
		zap.Int("failed", len(resp.Failed)),
	)

	writeJSON(ctx, w, http.StatusOK, resp)
}

// HandleAsk answers a question with grounded and ungrounded responses.
func (h *Handler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		http.Error(w, "please enter a question", http.StatusBadRequest)
		return
	}
	if len(question) > h.maxQuestionLen {
		question = question[:h.maxQuestionLen]
	}

	logger := observability.FromContext(ctx)
	logger.Info("question received", zap.Int("question_length", len(question)))

	result, err := h.orchestrator.Answer(ctx, question)
	if err != nil {
		h.writeAnswerError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}

// HandleDocuments lists the names of ingested documents.
func (h *Handler) HandleDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	names, err := h.store.Distinct(ctx, h.chunkCollection, domain.FieldFileName)
	if err != nil {
		observability.FromContext(ctx).Error("listing documents failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []string{}
	}

	writeJSON(ctx, w, http.StatusOK, map[string][]string{"documents": names})
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Already written status, can't change it, just log.
		return
	}
}

// writeAnswerError translates pipeline errors into actionable responses.
func (h *Handler) writeAnswerError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := observability.FromContext(ctx)

	switch {
	case errors.Is(err, domain.ErrNoCorpusIndexed):
		logger.Info("question asked before any ingestion")
		http.Error(w, "no documents have been ingested yet; ingest files before asking questions", http.StatusConflict)
	case errors.Is(err, domain.ErrIndexNotReady):
		logger.Warn("search index not ready", zap.Error(err))
		http.Error(w, "the search index is still building; please try again in a few minutes", http.StatusServiceUnavailable)
	default:
		logger.Error("answer failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		observability.FromContext(ctx).Error("failed to encode response", zap.Error(err))
	}
}
