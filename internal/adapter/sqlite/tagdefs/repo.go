// Package tagdefs loads the tag vocabulary from the tag_definitions table.
package tagdefs

import (
	"context"
	"database/sql"
	"fmt"
)

// Repo reads tag definitions.
type Repo struct {
	db *sql.DB
}

// New creates a new tag definitions repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const allSQL = `SELECT tag, COALESCE(description, '') FROM tag_definitions`

// All returns the complete tag -> description vocabulary.
func (r *Repo) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, allSQL)
	if err != nil {
		return nil, fmt.Errorf("load tag definitions: %w", err)
	}
	defer rows.Close()

	defs := make(map[string]string)
	for rows.Next() {
		var tag, description string
		if err := rows.Scan(&tag, &description); err != nil {
			return nil, fmt.Errorf("scan tag definition: %w", err)
		}
		defs[tag] = description
	}
	return defs, rows.Err()
}
