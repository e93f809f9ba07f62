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

// Listing defaults when the client supplies no sort_by / order.
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "DESC"
)

// defaultArticleImgURL is used when a created article omits its image.
const defaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// ArticleService handles validation and orchestration for articles.
type ArticleService struct {
	articles repository.ArticleRepository
	topics   repository.TopicRepository
	logger   *slog.Logger
}

func NewArticleService(articles repository.ArticleRepository, topics repository.TopicRepository, logger *slog.Logger) *ArticleService {
	return &ArticleService{
		articles: articles,
		topics:   topics,
		logger:   logger,
	}
}

// GetByID retrieves one article by its raw path identifier, augmented
// with its comment count when requested.
func (s *ArticleService) GetByID(ctx context.Context, rawID string, withCommentCount bool) (*model.Article, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.articles.GetArticleByID(ctx, id, withCommentCount)
}

// List validates the listing parameters against the sort allow-lists,
// resolves the optional topic filter, and returns matching articles.
//
// A topic that does not exist is a 404; a topic that exists with no
// articles is an empty list. The existence check is what separates the
// two, so it must run before the listing query.
func (s *ArticleService) List(ctx context.Context, topic, sortBy, order string) ([]model.Article, error) {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	if _, ok := repository.ArticleSortColumns[sortBy]; !ok {
		return nil, apperror.BadRequest("Invalid sort_by value")
	}

	if order == "" {
		order = DefaultOrder
	}
	order = strings.ToUpper(order)
	if order != "ASC" && order != "DESC" {
		return nil, apperror.BadRequest("Invalid order value")
	}

	if topic != "" {
		exists, err := s.topics.TopicSlugExists(ctx, topic)
		if err != nil {
			return nil, fmt.Errorf("checking topic: %w", err)
		}
		if !exists {
			return nil, apperror.NotFound("Non Existing Topic")
		}
	}

	articles, err := s.articles.ListArticles(ctx, repository.ArticleListOptions{
		Topic:  topic,
		SortBy: sortBy,
		Order:  order,
	})
	if err != nil {
		s.logger.Error("failed to list articles", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing articles: %w", err)
	}

	return articles, nil
}

// Create validates and inserts a new article. Author and topic must
// reference existing rows; that is enforced by the store's foreign
// keys and surfaces as a validation failure, not as NotFound.
func (s *ArticleService) Create(ctx context.Context, author, title, body, topic, imgURL string) (*model.Article, error) {
	author = strings.TrimSpace(author)
	title = strings.TrimSpace(title)
	topic = strings.TrimSpace(topic)
	if author == "" || title == "" || body == "" || topic == "" {
		return nil, apperror.BadRequest("Bad Request")
	}
	if imgURL == "" {
		imgURL = defaultArticleImgURL
	}

	article := &model.Article{
		Author:        author,
		Title:         title,
		Body:          body,
		Topic:         topic,
		ArticleImgURL: imgURL,
	}

	if err := s.articles.CreateArticle(ctx, article); err != nil {
		return nil, err
	}

	s.logger.Info("article created",
		slog.Int64("article_id", article.ArticleID),
		slog.String("author", article.Author),
		slog.String("topic", article.Topic),
	)

	return article, nil
}

// UpdateVotes applies a signed delta to an article's vote counter.
func (s *ArticleService) UpdateVotes(ctx context.Context, rawID string, delta int64) (*model.Article, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	article, err := s.articles.UpdateArticleVotes(ctx, id, delta)
	if err != nil {
		return nil, err
	}

	s.logger.Info("article votes updated",
		slog.Int64("article_id", id),
		slog.Int64("delta", delta),
		slog.Int64("votes", article.Votes),
	)

	return article, nil
}
