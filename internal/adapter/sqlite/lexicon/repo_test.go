package lexicon

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/jdict-engine/internal/adapter/sqlite"
	"github.com/heartmarshall/jdict-engine/internal/domain"
)

const testSchema = `
CREATE TABLE dictionary_entries (
	id INTEGER PRIMARY KEY,
	kanji TEXT,
	reading TEXT NOT NULL,
	meanings TEXT NOT NULL,
	parts_of_speech TEXT,
	is_common INTEGER DEFAULT 0,
	frequency INTEGER DEFAULT 0,
	is_jmnedict_entry INTEGER DEFAULT 0
);
CREATE VIRTUAL TABLE entries_fts5 USING fts5(
	kanji, reading, tokenized_kanji, tokenized_reading
);
CREATE VIRTUAL TABLE english_fts USING fts5(
	meanings, entry_id UNINDEXED, tokenize='unicode61', prefix='2 3 4'
);
CREATE TABLE tag_definitions (
	tag TEXT PRIMARY KEY,
	description TEXT
);
CREATE TABLE word_tags (
	entry_id INTEGER,
	tag TEXT
);`

type seedEntry struct {
	id       int64
	kanji    string
	reading  string
	meanings string
	pos      string
	common   int
	freq     int
	name     int
	tags     []string
}

func newTestRepo(t *testing.T) (*Repo, *sql.DB) {
	t.Helper()

	db, err := sqlite.OpenFile(filepath.Join(t.TempDir(), "lexicon.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(db, logger), db
}

func seed(t *testing.T, db *sql.DB, entries ...seedEntry) {
	t.Helper()
	for _, e := range entries {
		var kanji any
		if e.kanji != "" {
			kanji = e.kanji
		}
		_, err := db.Exec(`INSERT INTO dictionary_entries
			(id, kanji, reading, meanings, parts_of_speech, is_common, frequency, is_jmnedict_entry)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.id, kanji, e.reading, e.meanings, e.pos, e.common, e.freq, e.name)
		require.NoError(t, err)

		_, err = db.Exec(`INSERT INTO entries_fts5 (rowid, kanji, reading, tokenized_kanji, tokenized_reading)
			VALUES (?, ?, ?, ?, ?)`,
			e.id, e.kanji, e.reading, e.kanji, e.reading)
		require.NoError(t, err)

		_, err = db.Exec(`INSERT INTO english_fts (meanings, entry_id) VALUES (?, ?)`,
			e.meanings, e.id)
		require.NoError(t, err)

		for _, tag := range e.tags {
			_, err = db.Exec(`INSERT INTO word_tags (entry_id, tag) VALUES (?, ?)`, e.id, tag)
			require.NoError(t, err)
		}
	}
}

func TestRepo_Ready(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	assert.False(t, repo.Ready(context.Background()), "empty lexicon is not ready")

	seed(t, db, seedEntry{id: 1, kanji: "見る", reading: "みる", meanings: `["to see"]`, pos: `["v1"]`})
	assert.True(t, repo.Ready(context.Background()))
}

func TestRepo_SearchJapanese_Exact(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	seed(t, db,
		seedEntry{id: 1, kanji: "見る", reading: "みる", meanings: `["to see"]`, pos: `["v1","vt"]`, common: 1, freq: 500, tags: []string{"v1", "vt"}},
		seedEntry{id: 2, kanji: "診る", reading: "みる", meanings: `["to examine (medically)"]`, pos: `["v1"]`},
		seedEntry{id: 3, kanji: "食べる", reading: "たべる", meanings: `["to eat"]`, pos: `["v1"]`},
	)

	byReading, err := repo.SearchJapanese(context.Background(), domain.JapaneseSearch{Text: "みる", Limit: 10, ExactMatch: true})
	require.NoError(t, err)
	require.Len(t, byReading, 2)
	assert.Equal(t, "見る", byReading[0].Kanji, "common entry sorts first")
	assert.Equal(t, []string{"to see"}, byReading[0].Meanings)
	assert.Equal(t, []string{"v1", "vt"}, byReading[0].PartsOfSpeech)
	assert.True(t, byReading[0].IsCommon)
	assert.ElementsMatch(t, []string{"v1", "vt"}, byReading[0].Tags)

	byKanji, err := repo.SearchJapanese(context.Background(), domain.JapaneseSearch{Text: "食べる", Limit: 10, ExactMatch: true})
	require.NoError(t, err)
	require.Len(t, byKanji, 1)
	assert.Equal(t, "たべる", byKanji[0].Reading)
}

func TestRepo_SearchJapanese_NoRowsIsEmptyNotError(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	seed(t, db, seedEntry{id: 1, kanji: "見る", reading: "みる", meanings: `["to see"]`})

	out, err := repo.SearchJapanese(context.Background(), domain.JapaneseSearch{Text: "ない", Limit: 10, ExactMatch: true})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRepo_SearchJapanese_FTS(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	seed(t, db, seedEntry{id: 1, kanji: "日本語", reading: "にほんご", meanings: `["Japanese language"]`})

	out, err := repo.SearchJapanese(context.Background(), domain.JapaneseSearch{Text: "日本語", Limit: 10})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "日本語", out[0].Kanji)
}

func TestRepo_SearchJapanese_DeinflectedAnnotation(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	seed(t, db,
		seedEntry{id: 1, kanji: "見る", reading: "みる", meanings: `["to see"]`, pos: `["v1"]`},
		seedEntry{id: 2, kanji: "未る", reading: "みる", meanings: `["(rare) to not yet be"]`},
	)

	out, err := repo.SearchJapanese(context.Background(), domain.JapaneseSearch{
		Text: "みる", Limit: 10, ExactMatch: true,
		Deinflected: true, BaseForm: "みる",
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, e := range out {
		assert.True(t, e.IsDeinflectedValidConjugation, "entry %q", e.Kanji)
	}
}

func TestRepo_SearchEnglish(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	seed(t, db,
		seedEntry{id: 1, kanji: "猫", reading: "ねこ", meanings: `["cat"]`, common: 1},
		seedEntry{id: 2, kanji: "犬", reading: "いぬ", meanings: `["dog"]`},
	)

	out, err := repo.SearchEnglish(context.Background(), "cat", 10)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "猫", out[0].Kanji)
}

func TestRepo_SearchWildcard(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	seed(t, db,
		seedEntry{id: 1, kanji: "食べる", reading: "たべる", meanings: `["to eat"]`},
		seedEntry{id: 2, kanji: "食べ放題", reading: "たべほうだい", meanings: `["all-you-can-eat"]`},
		seedEntry{id: 3, kanji: "飲む", reading: "のむ", meanings: `["to drink"]`},
	)

	out, err := repo.SearchWildcard(context.Background(), "食べ_", 10)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "食べる", out[0].Kanji)
}

func TestRepo_ScanEntries_MalformedListDegrades(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	seed(t, db, seedEntry{id: 1, kanji: "壊", reading: "こわれ", meanings: `not-json`, pos: `["n"]`})

	out, err := repo.SearchJapanese(context.Background(), domain.JapaneseSearch{Text: "こわれ", Limit: 10, ExactMatch: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].Meanings, "bad JSON degrades to no meanings")
	assert.Equal(t, []string{"n"}, out[0].PartsOfSpeech)
}

func TestRepo_NullKanjiEntry(t *testing.T) {
	t.Parallel()

	repo, db := newTestRepo(t)
	seed(t, db, seedEntry{id: 1, reading: "ねこ", meanings: `["cat"]`})

	out, err := repo.SearchJapanese(context.Background(), domain.JapaneseSearch{Text: "ねこ", Limit: 10, ExactMatch: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].Kanji)
	assert.Equal(t, "ねこ", out[0].Headword())
}
