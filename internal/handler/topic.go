package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mvasquez/newsboard/internal/model"
)

type topicService interface {
	List(ctx context.Context) ([]model.Topic, error)
}

// TopicHandler serves GET /api/topics.
type TopicHandler struct {
	service topicService
	logger  *slog.Logger
}

func NewTopicHandler(service topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{service: service, logger: logger}
}

func (h *TopicHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	topics, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"topics": topics})
}
