package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvasquez/newsboard/internal/apperror"
	"github.com/mvasquez/newsboard/internal/handler"
	"github.com/mvasquez/newsboard/internal/model"
)

// mockArticleService returns canned results so the tests exercise only
// the HTTP mapping: envelopes, status codes, and {"msg": ...} errors.
type mockArticleService struct {
	article  *model.Article
	articles []model.Article
	err      error

	capturedID        string
	capturedWithCount bool
	capturedDelta     int64
}

func (m *mockArticleService) GetByID(_ context.Context, rawID string, withCommentCount bool) (*model.Article, error) {
	m.capturedID = rawID
	m.capturedWithCount = withCommentCount
	return m.article, m.err
}

func (m *mockArticleService) List(_ context.Context, topic, sortBy, order string) ([]model.Article, error) {
	return m.articles, m.err
}

func (m *mockArticleService) Create(_ context.Context, author, title, body, topic, imgURL string) (*model.Article, error) {
	return m.article, m.err
}

func (m *mockArticleService) UpdateVotes(_ context.Context, rawID string, delta int64) (*model.Article, error) {
	m.capturedID = rawID
	m.capturedDelta = delta
	return m.article, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestArticleHandler_HandleGetByID(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		mock := &mockArticleService{article: &model.Article{ArticleID: 1, Title: "hello"}}
		h := handler.NewArticleHandler(mock, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/articles/1", nil)
		req.SetPathValue("article_id", "1")
		rr := httptest.NewRecorder()

		h.HandleGetByID(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var body struct {
			Article model.Article `json:"article"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, int64(1), body.Article.ArticleID)
		assert.Equal(t, "1", mock.capturedID)
		assert.False(t, mock.capturedWithCount)
	})

	t.Run("comment_count flag", func(t *testing.T) {
		mock := &mockArticleService{article: &model.Article{ArticleID: 1}}
		h := handler.NewArticleHandler(mock, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/articles/1?comment_count", nil)
		req.SetPathValue("article_id", "1")
		rr := httptest.NewRecorder()

		h.HandleGetByID(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, mock.capturedWithCount)
	})

	t.Run("not found", func(t *testing.T) {
		mock := &mockArticleService{err: apperror.NotFound("Article Not Found")}
		h := handler.NewArticleHandler(mock, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/articles/999", nil)
		req.SetPathValue("article_id", "999")
		rr := httptest.NewRecorder()

		h.HandleGetByID(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"msg":"Article Not Found"}`, rr.Body.String())
	})

	t.Run("bad id", func(t *testing.T) {
		mock := &mockArticleService{err: apperror.BadRequest("Bad Request")}
		h := handler.NewArticleHandler(mock, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/articles/banana", nil)
		req.SetPathValue("article_id", "banana")
		rr := httptest.NewRecorder()

		h.HandleGetByID(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"msg":"Bad Request"}`, rr.Body.String())
	})
}

func TestArticleHandler_HandleList(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		count := int64(2)
		mock := &mockArticleService{articles: []model.Article{
			{ArticleID: 1, CommentCount: &count},
		}}
		h := handler.NewArticleHandler(mock, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		rr := httptest.NewRecorder()

		h.HandleList(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Articles []model.Article `json:"articles"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Len(t, body.Articles, 1)
	})

	t.Run("invalid sort_by", func(t *testing.T) {
		mock := &mockArticleService{err: apperror.BadRequest("Invalid sort_by value")}
		h := handler.NewArticleHandler(mock, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/articles?sort_by=password", nil)
		rr := httptest.NewRecorder()

		h.HandleList(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"msg":"Invalid sort_by value"}`, rr.Body.String())
	})
}

func TestArticleHandler_HandleCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		zero := int64(0)
		mock := &mockArticleService{article: &model.Article{ArticleID: 14, Votes: 0, CommentCount: &zero}}
		h := handler.NewArticleHandler(mock, testLogger())

		reqBody := `{"author":"butter_bridge","title":"t","body":"b","topic":"coding"}`
		req := httptest.NewRequest(http.MethodPost, "/api/articles", bytes.NewBufferString(reqBody))
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var body struct {
			Article model.Article `json:"article"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, int64(14), body.Article.ArticleID)
	})

	t.Run("malformed json", func(t *testing.T) {
		mock := &mockArticleService{}
		h := handler.NewArticleHandler(mock, testLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/articles", bytes.NewBufferString(`{"author":`))
		rr := httptest.NewRecorder()

		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"msg":"Bad Request"}`, rr.Body.String())
	})
}

func TestArticleHandler_HandleUpdateVotes(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		mock := &mockArticleService{article: &model.Article{ArticleID: 1, Votes: 104}}
		h := handler.NewArticleHandler(mock, testLogger())

		req := httptest.NewRequest(http.MethodPatch, "/api/articles/1", bytes.NewBufferString(`{"inc_votes":4}`))
		req.SetPathValue("article_id", "1")
		rr := httptest.NewRecorder()

		h.HandleUpdateVotes(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, int64(4), mock.capturedDelta)

		var body struct {
			Article model.Article `json:"article"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, int64(104), body.Article.Votes)
	})

	t.Run("missing inc_votes", func(t *testing.T) {
		mock := &mockArticleService{}
		h := handler.NewArticleHandler(mock, testLogger())

		req := httptest.NewRequest(http.MethodPatch, "/api/articles/1", bytes.NewBufferString(`{}`))
		req.SetPathValue("article_id", "1")
		rr := httptest.NewRecorder()

		h.HandleUpdateVotes(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"msg":"Bad Request"}`, rr.Body.String())
	})

	t.Run("non-integer inc_votes", func(t *testing.T) {
		mock := &mockArticleService{}
		h := handler.NewArticleHandler(mock, testLogger())

		req := httptest.NewRequest(http.MethodPatch, "/api/articles/1", bytes.NewBufferString(`{"inc_votes":"cat"}`))
		req.SetPathValue("article_id", "1")
		rr := httptest.NewRecorder()

		h.HandleUpdateVotes(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"msg":"Bad Request"}`, rr.Body.String())
	})
}
