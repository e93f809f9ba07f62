package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mvasquez/newsboard/internal/apperror"
	"github.com/mvasquez/newsboard/internal/model"
)

// articleService is the slice of the service layer this handler needs.
// Declaring it on the consumer side keeps the handler testable with a
// mock (see article_test.go).
type articleService interface {
	GetByID(ctx context.Context, rawID string, withCommentCount bool) (*model.Article, error)
	List(ctx context.Context, topic, sortBy, order string) ([]model.Article, error)
	Create(ctx context.Context, author, title, body, topic, imgURL string) (*model.Article, error)
	UpdateVotes(ctx context.Context, rawID string, delta int64) (*model.Article, error)
}

// ArticleHandler serves the /api/articles routes.
type ArticleHandler struct {
	service articleService
	logger  *slog.Logger
}

func NewArticleHandler(service articleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{service: service, logger: logger}
}

// HandleGetByID serves GET /api/articles/{article_id}. The presence of
// the comment_count query flag requests the aggregated count.
func (h *ArticleHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	withCommentCount := r.URL.Query().Has("comment_count")

	article, err := h.service.GetByID(r.Context(), r.PathValue("article_id"), withCommentCount)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"article": article})
}

// HandleList serves GET /api/articles with optional topic, sort_by,
// and order query parameters.
func (h *ArticleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	articles, err := h.service.List(r.Context(), q.Get("topic"), q.Get("sort_by"), q.Get("order"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"articles": articles})
}

// createArticleRequest is the POST /api/articles body.
type createArticleRequest struct {
	Author        string `json:"author"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	Topic         string `json:"topic"`
	ArticleImgURL string `json:"article_img_url"`
}

// HandleCreate serves POST /api/articles.
func (h *ArticleHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperror.BadRequest("Bad Request"))
		return
	}

	article, err := h.service.Create(r.Context(), req.Author, req.Title, req.Body, req.Topic, req.ArticleImgURL)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, envelope{"article": article})
}

// voteRequest is the PATCH body for vote updates on articles and
// comments. IncVotes is a pointer so a missing field is
// distinguishable from an explicit zero.
type voteRequest struct {
	IncVotes *int64 `json:"inc_votes"`
}

// HandleUpdateVotes serves PATCH /api/articles/{article_id}.
func (h *ArticleHandler) HandleUpdateVotes(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IncVotes == nil {
		writeError(w, apperror.BadRequest("Bad Request"))
		return
	}

	article, err := h.service.UpdateVotes(r.Context(), r.PathValue("article_id"), *req.IncVotes)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"article": article})
}
