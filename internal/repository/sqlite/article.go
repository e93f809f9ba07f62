package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mvasquez/newsboard/internal/apperror"
	"github.com/mvasquez/newsboard/internal/model"
	"github.com/mvasquez/newsboard/internal/repository"
)

var _ repository.ArticleRepository = (*DB)(nil)

// GetArticleByID retrieves a single article. When withCommentCount is set the
// article is augmented with the number of its comments, computed with
// a LEFT JOIN so an article with no comments reports zero.
func (db *DB) GetArticleByID(ctx context.Context, id int64, withCommentCount bool) (*model.Article, error) {
	var a model.Article

	if !withCommentCount {
		err := db.conn.QueryRowContext(ctx,
			`SELECT article_id, author, title, body, topic, created_at, votes, article_img_url
			 FROM articles
			 WHERE article_id = ?`,
			id,
		).Scan(
			&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL,
		)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, apperror.NotFound("Article Not Found")
			}
			return nil, fmt.Errorf("sqlite: getting article %d: %w", id, err)
		}
		return &a, nil
	}

	var commentCount int64
	err := db.conn.QueryRowContext(ctx,
		`SELECT articles.article_id, articles.author, articles.title, articles.body,
		        articles.topic, articles.created_at, articles.votes, articles.article_img_url,
		        COUNT(comments.comment_id) AS comment_count
		 FROM articles
		 LEFT JOIN comments ON comments.article_id = articles.article_id
		 WHERE articles.article_id = ?
		 GROUP BY articles.article_id`,
		id,
	).Scan(
		&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &commentCount,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("Article Not Found")
		}
		return nil, fmt.Errorf("sqlite: getting article %d: %w", id, err)
	}
	a.CommentCount = &commentCount

	return &a, nil
}

// ListArticles returns articles matching opts, each augmented with its comment
// count. The LEFT JOIN + GROUP BY shape is load-bearing: a plain join
// would drop articles that have no comments.
//
// opts.SortBy and opts.Order are interpolated into the ORDER BY clause
// and must already be validated against repository.ArticleSortColumns;
// unknown values are rejected here as a second line of defence.
func (db *DB) ListArticles(ctx context.Context, opts repository.ArticleListOptions) ([]model.Article, error) {
	column, ok := repository.ArticleSortColumns[opts.SortBy]
	if !ok {
		return nil, fmt.Errorf("sqlite: unknown sort column %q", opts.SortBy)
	}
	if opts.Order != "ASC" && opts.Order != "DESC" {
		return nil, fmt.Errorf("sqlite: unknown sort order %q", opts.Order)
	}

	query := `SELECT articles.article_id, articles.author, articles.title, articles.topic,
	                 articles.created_at, articles.votes, articles.article_img_url,
	                 COUNT(comments.comment_id) AS comment_count
	          FROM articles
	          LEFT JOIN comments ON comments.article_id = articles.article_id`
	args := []any{}
	if opts.Topic != "" {
		query += ` WHERE articles.topic = ?`
		args = append(args, opts.Topic)
	}
	// Secondary key keeps the order deterministic when the sort column ties.
	query += ` GROUP BY articles.article_id
	           ORDER BY ` + column + ` ` + opts.Order + `, articles.article_id DESC`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing articles: %w", err)
	}
	defer rows.Close()

	articles := []model.Article{}
	for rows.Next() {
		var a model.Article
		var commentCount int64
		if err := rows.Scan(
			&a.ArticleID, &a.Author, &a.Title, &a.Topic,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &commentCount,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning article row: %w", err)
		}
		a.CommentCount = &commentCount
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating articles: %w", err)
	}

	return articles, nil
}

// CreateArticle inserts a new article and fills in its assigned id, timestamp,
// and defaulted counters. An unknown author or topic violates a
// foreign key and surfaces as a validation failure.
func (db *DB) CreateArticle(ctx context.Context, article *model.Article) error {
	article.CreatedAt = time.Now().UTC()
	article.Votes = 0

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO articles (author, title, body, topic, created_at, votes, article_img_url)
		 VALUES (?, ?, ?, ?, ?, 0, ?)`,
		article.Author,
		article.Title,
		article.Body,
		article.Topic,
		article.CreatedAt,
		article.ArticleImgURL,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperror.BadRequest("Bad Request")
		}
		return fmt.Errorf("sqlite: creating article: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading article id: %w", err)
	}
	article.ArticleID = id

	// A brand new article necessarily has zero comments.
	zero := int64(0)
	article.CommentCount = &zero

	return nil
}

// UpdateArticleVotes applies the signed delta to an article's vote counter in
// a single statement, so concurrent increments compose without lost
// updates, and returns the row as updated.
func (db *DB) UpdateArticleVotes(ctx context.Context, id int64, delta int64) (*model.Article, error) {
	var a model.Article
	err := db.conn.QueryRowContext(ctx,
		`UPDATE articles SET votes = votes + ?
		 WHERE article_id = ?
		 RETURNING article_id, author, title, body, topic, created_at, votes, article_img_url`,
		delta, id,
	).Scan(
		&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic,
		&a.CreatedAt, &a.Votes, &a.ArticleImgURL,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("Article Not Found")
		}
		return nil, fmt.Errorf("sqlite: updating article %d votes: %w", id, err)
	}

	return &a, nil
}
