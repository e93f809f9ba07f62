// Package sqlite implements the repository interfaces on SQLite via
// database/sql. modernc.org/sqlite is a pure Go driver, so the binary
// needs no C toolchain and tests can run against ":memory:".
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// DB wraps a sql.DB connection pool and provides the repository
// methods for all four entities.
type DB struct {
	conn *sql.DB
}

// New opens the database at dbPath (":memory:" for tests), configures
// pragmas, and runs migrations.
//
// Foreign keys are OFF by default in SQLite; they must be ON because
// referential integrity is what turns an insert with an unknown author
// or topic into a constraint failure instead of an orphan row.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// PRAGMAs apply per connection and ":memory:" is per connection
	// too, so the pool must stay at a single connection. SQLite allows
	// one writer at a time anyway.
	conn.SetMaxOpenConns(1)

	// sql.Open only creates the pool; force a real connection so a bad
	// path surfaces here rather than on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL allows concurrent reads while a write is in progress.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS topics (
			slug        TEXT PRIMARY KEY,
			description TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS users (
			username   TEXT PRIMARY KEY,
			name       TEXT NOT NULL DEFAULT '',
			avatar_url TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS articles (
			article_id      INTEGER PRIMARY KEY AUTOINCREMENT,
			author          TEXT NOT NULL REFERENCES users(username),
			title           TEXT NOT NULL,
			body            TEXT NOT NULL DEFAULT '',
			topic           TEXT NOT NULL REFERENCES topics(slug),
			created_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			votes           INTEGER NOT NULL DEFAULT 0,
			article_img_url TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_articles_topic ON articles(topic);
		CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at);

		CREATE TABLE IF NOT EXISTS comments (
			comment_id INTEGER PRIMARY KEY AUTOINCREMENT,
			body       TEXT NOT NULL,
			article_id INTEGER NOT NULL REFERENCES articles(article_id),
			author     TEXT NOT NULL REFERENCES users(username),
			votes      INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id);
		CREATE INDEX IF NOT EXISTS idx_comments_created_at ON comments(created_at);
	`)
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// isForeignKeyViolation reports whether err is SQLite rejecting a
// write because a referenced row (author, topic, article) does not
// exist. The driver exposes this only through the message text.
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
