// Package sqlite provides the lexicon storage adapter over the dictionary
// database built by the asset pipeline: a read-only SQLite file with FTS5
// virtual tables for Japanese and English search plus a kanji character
// index.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite" // pure-Go SQLite driver with FTS5 support

	"github.com/heartmarshall/jdict-engine/internal/config"
)

// Open opens the lexicon database read-only and validates the connection.
func Open(ctx context.Context, cfg config.LexiconConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(%d)",
		url.PathEscape(cfg.Path), cfg.BusyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open lexicon database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping lexicon database: %w", err)
	}

	return db, nil
}

// OpenFile opens an arbitrary SQLite file read-write. Used by tests to seed
// a throwaway lexicon.
func OpenFile(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+url.PathEscape(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite file: %w", err)
	}
	return db, nil
}
