// Package lexicon implements dictionary entry search over the SQLite
// lexicon. Exact lookups use plain indexed queries; Japanese and English
// text search ride the entries_fts5 / english_fts virtual tables; wildcard
// search builds a LIKE query with squirrel.
package lexicon

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/jdict-engine/internal/adapter/sqlite"
	"github.com/heartmarshall/jdict-engine/internal/domain"
)

// Repo provides lexicon search backed by the SQLite dictionary database.
type Repo struct {
	db  *sql.DB
	log *slog.Logger
}

// New creates a new lexicon repository.
func New(db *sql.DB, log *slog.Logger) *Repo {
	return &Repo{db: db, log: log}
}

const entryColumns = `d.id, d.kanji, d.reading, d.meanings, d.parts_of_speech,
	d.is_common, d.frequency, d.is_jmnedict_entry`

const exactSQL = `
SELECT ` + entryColumns + `
FROM dictionary_entries d
WHERE d.kanji = ? OR d.reading = ?
ORDER BY d.is_common DESC, d.frequency DESC
LIMIT ?`

const japaneseFTSSQL = `
SELECT ` + entryColumns + `
FROM dictionary_entries d
JOIN entries_fts5 f ON f.rowid = d.id
WHERE entries_fts5 MATCH ?
ORDER BY d.is_common DESC, d.frequency DESC
LIMIT ?`

const englishFTSSQL = `
SELECT ` + entryColumns + `
FROM dictionary_entries d
JOIN english_fts e ON e.entry_id = d.id
WHERE english_fts MATCH ?
ORDER BY d.is_common DESC, d.frequency DESC
LIMIT ?`

// Ready reports whether the lexicon is initialized and queryable. Callers
// receive empty results, never errors, while the lexicon is not ready.
func (r *Repo) Ready(ctx context.Context) bool {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM dictionary_entries LIMIT 1`).Scan(&one)
	return err == nil
}

// SearchJapanese finds entries by kanji or reading. ExactMatch restricts to
// equality; otherwise the FTS index is consulted, which also matches the
// tokenized headword columns.
func (r *Repo) SearchJapanese(ctx context.Context, q domain.JapaneseSearch) ([]domain.Entry, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if q.ExactMatch {
		rows, err = r.db.QueryContext(ctx, exactSQL, q.Text, q.Text, q.Limit)
	} else {
		match := fmt.Sprintf(`kanji:%[1]s OR reading:%[1]s OR tokenized_kanji:%[1]s OR tokenized_reading:%[1]s`,
			ftsQuote(q.Text))
		rows, err = r.db.QueryContext(ctx, japaneseFTSSQL, match, q.Limit)
	}
	if err != nil {
		return nil, sqlite.MapError(err, "search japanese", q.Text)
	}
	defer rows.Close()

	entries, err := r.scanEntries(rows)
	if err != nil {
		return nil, sqlite.MapError(err, "search japanese", q.Text)
	}

	if q.Deinflected && q.BaseForm != "" {
		for i := range entries {
			if entries[i].Kanji == q.BaseForm || entries[i].Reading == q.BaseForm {
				entries[i].IsDeinflectedValidConjugation = true
			}
		}
	}

	return r.attachTags(ctx, entries)
}

// SearchEnglish finds entries whose meaning text matches the query via the
// english_fts index (unicode61 tokenizer with prefix indexes).
func (r *Repo) SearchEnglish(ctx context.Context, text string, limit int) ([]domain.Entry, error) {
	rows, err := r.db.QueryContext(ctx, englishFTSSQL, ftsQuote(text), limit)
	if err != nil {
		return nil, sqlite.MapError(err, "search english", text)
	}
	defer rows.Close()

	entries, err := r.scanEntries(rows)
	if err != nil {
		return nil, sqlite.MapError(err, "search english", text)
	}
	return r.attachTags(ctx, entries)
}

// SearchWildcard finds entries whose kanji or reading matches a SQL LIKE
// pattern (the orchestrator translates '?' to '_' before calling).
func (r *Repo) SearchWildcard(ctx context.Context, likePattern string, limit int) ([]domain.Entry, error) {
	query, args, err := sq.Select(strings.ReplaceAll(entryColumns, "\n\t", " ")).
		From("dictionary_entries d").
		Where(sq.Or{
			sq.Like{"d.kanji": likePattern},
			sq.Like{"d.reading": likePattern},
		}).
		OrderBy("d.is_common DESC", "d.frequency DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build wildcard query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqlite.MapError(err, "search wildcard", likePattern)
	}
	defer rows.Close()

	entries, err := r.scanEntries(rows)
	if err != nil {
		return nil, sqlite.MapError(err, "search wildcard", likePattern)
	}
	return r.attachTags(ctx, entries)
}

// scanEntries reads entry rows. Malformed stored meanings or POS lists are
// logged and degrade to empty slices rather than failing the search.
func (r *Repo) scanEntries(rows *sql.Rows) ([]domain.Entry, error) {
	var entries []domain.Entry
	for rows.Next() {
		var (
			e        domain.Entry
			kanji    sql.NullString
			meanings string
			pos      sql.NullString
			common   int
			name     int
		)
		if err := rows.Scan(&e.ID, &kanji, &e.Reading, &meanings, &pos, &common, &e.Frequency, &name); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Kanji = kanji.String
		e.IsCommon = common != 0
		e.IsNameEntry = name != 0
		e.Meanings = r.decodeList(meanings, "meanings", e.ID)
		e.PartsOfSpeech = r.decodeList(pos.String, "parts_of_speech", e.ID)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// decodeList parses a JSON array column; unparsable data yields nil.
func (r *Repo) decodeList(raw, column string, id int64) []string {
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		r.log.Warn("malformed stored list, treating as empty",
			slog.String("column", column), slog.Int64("entry_id", id),
			slog.String("error", err.Error()))
		return nil
	}
	return out
}

// attachTags loads word_tags for the scanned entries in one batch.
func (r *Repo) attachTags(ctx context.Context, entries []domain.Entry) ([]domain.Entry, error) {
	if len(entries) == 0 {
		return entries, nil
	}

	ids := make([]any, 0, len(entries))
	byID := make(map[int64]int, len(entries))
	for i, e := range entries {
		ids = append(ids, e.ID)
		byID[e.ID] = i
	}

	query, args, err := sq.Select("entry_id", "tag").
		From("word_tags").
		Where(sq.Eq{"entry_id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tags query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqlite.MapError(err, "load tags", "")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id  int64
			tag string
		)
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		if i, ok := byID[id]; ok {
			entries[i].Tags = append(entries[i].Tags, tag)
		}
	}
	return entries, rows.Err()
}

// ftsQuote wraps a term in FTS5 string syntax, escaping embedded quotes.
func ftsQuote(term string) string {
	return `"` + strings.ReplaceAll(term, `"`, `""`) + `"`
}
