// Package kanjidic implements single-character kanji lookup over the
// kanji_entries table of the lexicon database.
package kanjidic

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/jdict-engine/internal/adapter/sqlite"
	"github.com/heartmarshall/jdict-engine/internal/domain"
)

// Repo provides kanji character lookups.
type Repo struct {
	db  *sql.DB
	log *slog.Logger
}

// New creates a new kanjidic repository.
func New(db *sql.DB, log *slog.Logger) *Repo {
	return &Repo{db: db, log: log}
}

const searchSQL = `
SELECT kanji, meanings, kun_readings, on_readings,
       COALESCE(stroke_count, 0), COALESCE(grade, 0),
       COALESCE(jlpt_level, 0), COALESCE(frequency, 0),
       COALESCE(heisig_number, 0)
FROM kanji_entries
WHERE kanji = ?
LIMIT ?`

// SearchKanji returns character index entries for a single kanji literal.
func (r *Repo) SearchKanji(ctx context.Context, literal string, limit int) ([]domain.KanjiEntry, error) {
	rows, err := r.db.QueryContext(ctx, searchSQL, literal, limit)
	if err != nil {
		return nil, sqlite.MapError(err, "search kanji", literal)
	}
	defer rows.Close()

	var out []domain.KanjiEntry
	for rows.Next() {
		var (
			k        domain.KanjiEntry
			meanings sql.NullString
			kun      sql.NullString
			on       sql.NullString
		)
		if err := rows.Scan(&k.Literal, &meanings, &kun, &on,
			&k.StrokeCount, &k.Grade, &k.JLPTLevel, &k.Frequency, &k.HeisigNumber); err != nil {
			return nil, fmt.Errorf("scan kanji entry: %w", err)
		}
		k.Meanings = r.decodeList(meanings.String, "meanings", k.Literal)
		k.KunReadings = r.decodeList(kun.String, "kun_readings", k.Literal)
		k.OnReadings = r.decodeList(on.String, "on_readings", k.Literal)
		out = append(out, k)
	}
	return out, rows.Err()
}

func (r *Repo) decodeList(raw, column, literal string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		r.log.Warn("malformed stored list, treating as empty",
			slog.String("column", column), slog.String("kanji", literal),
			slog.String("error", err.Error()))
		return nil
	}
	return out
}
