package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mvasquez/newsboard/internal/apperror"
	"github.com/mvasquez/newsboard/internal/model"
	"github.com/mvasquez/newsboard/internal/repository"
)

var _ repository.UserRepository = (*DB)(nil)

// ListUsers returns all users in storage order.
func (db *DB) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT username, name, avatar_url FROM users`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, fmt.Errorf("sqlite: scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating users: %w", err)
	}

	return users, nil
}

// GetUserByUsername retrieves a single user.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := db.conn.QueryRowContext(ctx,
		`SELECT username, name, avatar_url FROM users WHERE username = ?`,
		username,
	).Scan(&u.Username, &u.Name, &u.AvatarURL)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("Non Existing Username")
		}
		return nil, fmt.Errorf("sqlite: getting user %s: %w", username, err)
	}

	return &u, nil
}
