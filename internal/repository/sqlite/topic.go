package sqlite

import (
	"context"
	"fmt"

	"github.com/mvasquez/newsboard/internal/model"
	"github.com/mvasquez/newsboard/internal/repository"
)

var _ repository.TopicRepository = (*DB)(nil)

// ListTopics returns all topics in storage order.
func (db *DB) ListTopics(ctx context.Context) ([]model.Topic, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT slug, description FROM topics`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing topics: %w", err)
	}
	defer rows.Close()

	topics := []model.Topic{}
	for rows.Next() {
		var t model.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, fmt.Errorf("sqlite: scanning topic row: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating topics: %w", err)
	}

	return topics, nil
}

// TopicSlugExists reports whether a topic with the given slug is known.
// Listing articles filtered by an unknown topic is a 404, while a
// known topic with no articles is an empty list; this check is what
// lets the service tell the two apart.
func (db *DB) TopicSlugExists(ctx context.Context, slug string) (bool, error) {
	var count int
	err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM topics WHERE slug = ?`,
		slug,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("sqlite: checking topic %s: %w", slug, err)
	}
	return count > 0, nil
}
