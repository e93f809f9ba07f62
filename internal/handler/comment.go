package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mvasquez/newsboard/internal/apperror"
	"github.com/mvasquez/newsboard/internal/model"
)

type commentService interface {
	ListByArticle(ctx context.Context, rawArticleID string) ([]model.Comment, error)
	Add(ctx context.Context, rawArticleID, username, body string) (*model.Comment, error)
	UpdateVotes(ctx context.Context, rawID string, delta int64) (*model.Comment, error)
	Delete(ctx context.Context, rawID string) error
}

// CommentHandler serves the comment routes under /api/articles and
// /api/comments.
type CommentHandler struct {
	service commentService
	logger  *slog.Logger
}

func NewCommentHandler(service commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{service: service, logger: logger}
}

// HandleListByArticle serves GET /api/articles/{article_id}/comments.
func (h *CommentHandler) HandleListByArticle(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.ListByArticle(r.Context(), r.PathValue("article_id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"comments": comments})
}

// createCommentRequest is the POST body for new comments.
type createCommentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// HandleCreate serves POST /api/articles/{article_id}/comments.
func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.BadRequest("Bad Request"))
		return
	}

	comment, err := h.service.Add(r.Context(), r.PathValue("article_id"), req.Username, req.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, envelope{"comment": comment})
}

// HandleUpdateVotes serves PATCH /api/comments/{comment_id}.
func (h *CommentHandler) HandleUpdateVotes(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IncVotes == nil {
		writeError(w, apperror.BadRequest("Bad Request"))
		return
	}

	comment, err := h.service.UpdateVotes(r.Context(), r.PathValue("comment_id"), *req.IncVotes)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"comment": comment})
}

// HandleDelete serves DELETE /api/comments/{comment_id}. Success is a
// bare 204 with no body.
func (h *CommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("comment_id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
