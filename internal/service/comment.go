package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mvasquez/newsboard/internal/apperror"
	"github.com/mvasquez/newsboard/internal/model"
	"github.com/mvasquez/newsboard/internal/repository"
)

// CommentService handles validation and orchestration for comments.
type CommentService struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
	logger   *slog.Logger
}

func NewCommentService(comments repository.CommentRepository, articles repository.ArticleRepository, logger *slog.Logger) *CommentService {
	return &CommentService{
		comments: comments,
		articles: articles,
		logger:   logger,
	}
}

// ListByArticle returns the comments for an article, newest first.
//
// This is a composed operation: the article is resolved first so a
// non-existent article yields its 404 rather than an empty comment
// list. The two steps must not be collapsed.
func (s *CommentService) ListByArticle(ctx context.Context, rawArticleID string) ([]model.Comment, error) {
	articleID, err := parseID(rawArticleID)
	if err != nil {
		return nil, err
	}

	if _, err := s.articles.GetArticleByID(ctx, articleID, false); err != nil {
		return nil, err
	}

	comments, err := s.comments.ListArticleComments(ctx, articleID)
	if err != nil {
		s.logger.Error("failed to list comments",
			slog.Int64("article_id", articleID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	return comments, nil
}

// Add validates and inserts a new comment on an article. There is no
// article pre-check here: the insert relies on the store's foreign
// keys, so an unknown article or username surfaces as a validation
// failure (400), not as NotFound.
func (s *CommentService) Add(ctx context.Context, rawArticleID, username, body string) (*model.Comment, error) {
	articleID, err := parseID(rawArticleID)
	if err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	if username == "" || body == "" {
		return nil, apperror.BadRequest("Bad Request")
	}

	comment := &model.Comment{
		Body:      body,
		ArticleID: articleID,
		Author:    username,
	}

	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		slog.Int64("comment_id", comment.CommentID),
		slog.Int64("article_id", articleID),
		slog.String("author", username),
	)

	return comment, nil
}

// UpdateVotes applies a signed delta to a comment's vote counter.
func (s *CommentService) UpdateVotes(ctx context.Context, rawID string, delta int64) (*model.Comment, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	comment, err := s.comments.UpdateCommentVotes(ctx, id, delta)
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment votes updated",
		slog.Int64("comment_id", id),
		slog.Int64("delta", delta),
		slog.Int64("votes", comment.Votes),
	)

	return comment, nil
}

// Delete removes a comment by its raw path identifier.
func (s *CommentService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	if err := s.comments.DeleteComment(ctx, id); err != nil {
		return err
	}

	s.logger.Info("comment deleted", slog.Int64("comment_id", id))
	return nil
}
