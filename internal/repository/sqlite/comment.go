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

var _ repository.CommentRepository = (*DB)(nil)

// ListArticleComments returns all comments for an article, newest first.
// It does not verify the article exists; callers that need 404 on a
// missing article resolve the article first.
func (db *DB) ListArticleComments(ctx context.Context, articleID int64) ([]model.Comment, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT comment_id, body, article_id, author, votes, created_at
		 FROM comments
		 WHERE article_id = ?
		 ORDER BY created_at DESC, comment_id DESC`,
		articleID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing comments for article %d: %w", articleID, err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(
			&c.CommentID, &c.Body, &c.ArticleID, &c.Author, &c.Votes, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating comments: %w", err)
	}

	return comments, nil
}

// CreateComment inserts a new comment and fills in its assigned id and
// timestamp. An unknown article id or author violates a foreign key
// and surfaces as a validation failure, not as NotFound.
func (db *DB) CreateComment(ctx context.Context, comment *model.Comment) error {
	comment.CreatedAt = time.Now().UTC()
	comment.Votes = 0

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO comments (body, article_id, author, votes, created_at)
		 VALUES (?, ?, ?, 0, ?)`,
		comment.Body,
		comment.ArticleID,
		comment.Author,
		comment.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperror.BadRequest("Bad Request")
		}
		return fmt.Errorf("sqlite: creating comment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading comment id: %w", err)
	}
	comment.CommentID = id

	return nil
}

// UpdateCommentVotes applies the signed delta to a comment's vote counter in
// a single statement and returns the row as updated.
func (db *DB) UpdateCommentVotes(ctx context.Context, id int64, delta int64) (*model.Comment, error) {
	var c model.Comment
	err := db.conn.QueryRowContext(ctx,
		`UPDATE comments SET votes = votes + ?
		 WHERE comment_id = ?
		 RETURNING comment_id, body, article_id, author, votes, created_at`,
		delta, id,
	).Scan(
		&c.CommentID, &c.Body, &c.ArticleID, &c.Author, &c.Votes, &c.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("Comment Not Found")
		}
		return nil, fmt.Errorf("sqlite: updating comment %d votes: %w", id, err)
	}

	return &c, nil
}

// DeleteComment removes a comment by id. RowsAffected distinguishes a
// successful delete from a miss.
func (db *DB) DeleteComment(ctx context.Context, id int64) error {
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM comments WHERE comment_id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting comment %d: %w", id, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("Comment Not Found")
	}

	return nil
}
