package sqlite

import (
	"context"
	"fmt"

	"github.com/mvasquez/newsboard/internal/model"
)

// SeedData holds rows to load into an empty database. Topics and users
// have no write endpoints, so development databases and test fixtures
// are populated through Seed instead of the API.
type SeedData struct {
	Topics   []model.Topic
	Users    []model.User
	Articles []model.Article
	Comments []model.Comment
}

// Seed inserts the given rows in dependency order (topics and users
// before articles, articles before comments) inside one transaction.
// Article and comment timestamps are taken from the fixture data so
// ordering-sensitive tests stay deterministic.
func (db *DB) Seed(ctx context.Context, data SeedData) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range data.Topics {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO topics (slug, description) VALUES (?, ?)`,
			t.Slug, t.Description,
		); err != nil {
			return fmt.Errorf("sqlite: seeding topic %s: %w", t.Slug, err)
		}
	}

	for _, u := range data.Users {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (username, name, avatar_url) VALUES (?, ?, ?)`,
			u.Username, u.Name, u.AvatarURL,
		); err != nil {
			return fmt.Errorf("sqlite: seeding user %s: %w", u.Username, err)
		}
	}

	for _, a := range data.Articles {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO articles (article_id, author, title, body, topic, created_at, votes, article_img_url)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ArticleID, a.Author, a.Title, a.Body, a.Topic,
			a.CreatedAt, a.Votes, a.ArticleImgURL,
		); err != nil {
			return fmt.Errorf("sqlite: seeding article %d: %w", a.ArticleID, err)
		}
	}

	for _, c := range data.Comments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO comments (comment_id, body, article_id, author, votes, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			c.CommentID, c.Body, c.ArticleID, c.Author, c.Votes, c.CreatedAt,
		); err != nil {
			return fmt.Errorf("sqlite: seeding comment %d: %w", c.CommentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: committing seed transaction: %w", err)
	}
	return nil
}
