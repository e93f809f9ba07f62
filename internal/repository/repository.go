// Package repository defines the storage interfaces consumed by the
// service layer. The sqlite subpackage implements them.
package repository

import (
	"context"

	"github.com/mvasquez/newsboard/internal/model"
)

// ArticleSortColumns is the closed allow-list of sortable article
// fields, mapping the client-facing name to the SQL expression used in
// the ORDER BY clause. Dynamic query construction must never
// interpolate a field name that is not a value of this map; the
// service checks membership and the sqlite layer looks up the column.
var ArticleSortColumns = map[string]string{
	"article_id":      "articles.article_id",
	"title":           "articles.title",
	"topic":           "articles.topic",
	"author":          "articles.author",
	"created_at":      "articles.created_at",
	"votes":           "articles.votes",
	"article_img_url": "articles.article_img_url",
	"comment_count":   "comment_count",
}

// ArticleListOptions carries fully validated listing parameters.
// SortBy must be a key of ArticleSortColumns and Order must be "ASC"
// or "DESC" by the time this struct reaches the repository; an empty
// Topic means no filter.
type ArticleListOptions struct {
	Topic  string
	SortBy string
	Order  string
}

// The interfaces are split per entity so each service depends only on
// what it uses, but a single store type implements them all; method
// names carry the entity to keep that possible.

type TopicRepository interface {
	ListTopics(ctx context.Context) ([]model.Topic, error)
	TopicSlugExists(ctx context.Context, slug string) (bool, error)
}

type ArticleRepository interface {
	// GetArticleByID returns the article, augmented with its comment
	// count when withCommentCount is set.
	GetArticleByID(ctx context.Context, id int64, withCommentCount bool) (*model.Article, error)
	ListArticles(ctx context.Context, opts ArticleListOptions) ([]model.Article, error)
	CreateArticle(ctx context.Context, article *model.Article) error
	// UpdateArticleVotes applies the signed delta in a single atomic
	// statement and returns the row as updated.
	UpdateArticleVotes(ctx context.Context, id int64, delta int64) (*model.Article, error)
}

type CommentRepository interface {
	ListArticleComments(ctx context.Context, articleID int64) ([]model.Comment, error)
	CreateComment(ctx context.Context, comment *model.Comment) error
	UpdateCommentVotes(ctx context.Context, id int64, delta int64) (*model.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

type UserRepository interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}
