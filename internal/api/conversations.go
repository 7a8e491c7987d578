package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"qa-backend/internal/database"
	"qa-backend/internal/inference"
	"qa-backend/internal/metrics"
	"qa-backend/pkg/api"

	"github.com/go-chi/chi/v5"
)

type ConversationService struct {
	store   *database.ConversationStore
	model   inference.Model
	metrics *metrics.Metrics
}

func NewConversationService(store *database.ConversationStore, model inference.Model, metrics *metrics.Metrics) *ConversationService {
	return &ConversationService{
		store:   store,
		model:   model,
		metrics: metrics,
	}
}

func (s *ConversationService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(func(r *http.Request) (any, error) { return nil, nil }))
	r.Post("/ask", RestHandler(s.Ask))
	r.Get("/conversations", RestHandler(s.ListConversations))
}

func (s *ConversationService) Ask(r *http.Request) (any, error) {
	req, err := ParseRequest[api.AskRequest](r)
	if err != nil {
		s.metrics.AskRequests.WithLabelValues("invalid").Inc()
		return nil, err
	}

	if strings.TrimSpace(req.Question) == "" {
		s.metrics.AskRequests.WithLabelValues("invalid").Inc()
		return nil, CodedErrorf(http.StatusBadRequest, "question is required")
	}

	ctx := r.Context()

	slog.Info("user question", "question", req.Question)

	start := time.Now()
	answer, err := s.model.Complete(ctx, req.Question)
	s.metrics.ObserveInference(time.Since(start))
	if err != nil {
		slog.Error("error generating answer", "error", err)
		s.metrics.AskRequests.WithLabelValues("inference_error").Inc()
		return nil, internalError()
	}

	slog.Info("model response", "answer", answer)

	conversation, err := s.store.Insert(ctx, req.Question, answer)
	if err != nil {
		slog.Error("error saving conversation", "error", err)
		s.metrics.AskRequests.WithLabelValues("storage_error").Inc()
		return nil, internalError()
	}

	s.metrics.StoredRecords.Inc()
	s.metrics.AskRequests.WithLabelValues("success").Inc()

	return convertConversation(conversation), nil
}

func (s *ConversationService) ListConversations(r *http.Request) (any, error) {
	conversations, err := s.store.ListAll(r.Context())
	if err != nil {
		slog.Error("error listing conversations", "error", err)
		return nil, internalError()
	}

	return convertConversations(conversations), nil
}
