package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/jdict-engine/internal/domain"
)

func TestRank_DedupeFirstWins(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{
		{ID: 1, Kanji: "見る", Reading: "みる"},
		{ID: 2, Kanji: "見る", Reading: "みる", IsCommon: true},
	}

	out := rank(entries, rankContext{query: "みる"})
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID, "first occurrence wins over a later duplicate")
}

func TestRank_CollapsesKatakanaReadingDuplicates(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{
		{ID: 1, Kanji: "国", Reading: "くに"},
		{ID: 2, Kanji: "国", Reading: "クニ"},
	}

	out := rank(entries, rankContext{query: "くに"})
	require.Len(t, out, 1)
	assert.Equal(t, "くに", out[0].Reading)
}

func TestRank_CollapseDropsKatakanaEvenWhenFirst(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{
		{ID: 2, Kanji: "国", Reading: "クニ"},
		{ID: 1, Kanji: "国", Reading: "くに"},
	}

	out := rank(entries, rankContext{query: "くに"})
	require.Len(t, out, 1)
	assert.Equal(t, "くに", out[0].Reading, "the katakana spelling loses whichever order they arrive in")
}

func TestRank_ProperNounsSink(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{
		{ID: 1, Kanji: "翼", Reading: "つばさ", Tags: []string{"fem"}, IsCommon: true, Frequency: 9000},
		{ID: 2, Kanji: "翼", Reading: "よく", Meanings: []string{"wing"}},
	}

	out := rank(entries, rankContext{query: "翼"})
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID, "ordinary word outranks a name regardless of frequency")
}

func TestRank_ValidDeinflectionOutranksDirect(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{
		{ID: 1, Kanji: "見た", Reading: "みた", IsCommon: true},
		{
			ID: 2, Kanji: "見る", Reading: "みる",
			PartsOfSpeech:                 []string{"v1"},
			IsDeinflectedValidConjugation: true,
		},
	}

	out := rank(entries, rankContext{query: "みた"})
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID)
}

func TestRank_DeinflectionFlagNeedsConjugatablePOS(t *testing.T) {
	t.Parallel()

	// the flag alone does not promote an entry that cannot conjugate
	entries := []domain.Entry{
		{ID: 1, Kanji: "見た", Reading: "みた", IsCommon: true},
		{
			ID: 2, Kanji: "見た", Reading: "けんた",
			PartsOfSpeech:                 []string{"n"},
			IsDeinflectedValidConjugation: true,
		},
	}

	out := rank(entries, rankContext{query: "みた"})
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ID)
}

func TestRank_ExactMatchBeatsFrequency(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{
		{ID: 1, Kanji: "日本語", Reading: "にほんご", IsCommon: true, Frequency: 9999},
		{ID: 2, Kanji: "日本", Reading: "にほん"},
	}

	out := rank(entries, rankContext{query: "日本"})
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID)
}

func TestRank_MeaningPositionDominatesMatchStrength(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{
		// exact meaning, but buried at position 5
		{ID: 1, Kanji: "猫", Reading: "ねこ", Meanings: []string{
			"feline", "kitty", "pet", "mouser", "tomcat", "cat",
		}},
		// weaker word-level match, but at position 0
		{ID: 2, Kanji: "野良猫", Reading: "のらねこ", Meanings: []string{"stray cat"}},
	}

	out := rank(entries, rankContext{query: "cat", meaningQuery: true})
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID)
}

func TestRank_MeaningIgnoredForJapaneseQueries(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{
		{ID: 1, Kanji: "犬", Reading: "いぬ", Meanings: []string{"dog"}},
		{ID: 2, Kanji: "犬", Reading: "けん", Meanings: []string{"dog"}, IsCommon: true},
	}

	out := rank(entries, rankContext{query: "犬"})
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID, "commonality decides when meanings are out of play")
}

func TestRank_BaseFormCountsAsExact(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{
		{ID: 1, Kanji: "三田", Reading: "みた", IsCommon: true},
		{ID: 2, Kanji: "見る", Reading: "みる"},
	}
	rc := rankContext{
		query:     "みた",
		baseForms: map[string]struct{}{"みる": {}},
	}

	out := rank(entries, rc)
	require.Len(t, out, 2)
	// both count as exact; commonality breaks the tie
	assert.Equal(t, int64(1), out[0].ID)
}

func TestRank_ShorterReadingWinsLastResortTie(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{
		{ID: 1, Kanji: "", Reading: "たべもの"},
		{ID: 2, Kanji: "", Reading: "たべ"},
	}

	out := rank(entries, rankContext{query: "たべ?"})
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID)
}

func TestRank_WordOrderGroupsMultiWordResults(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{
		{ID: 1, Kanji: "語", Reading: "ご", WordOrder: 2, IsCommon: true},
		{ID: 2, Kanji: "日本", Reading: "にほん", WordOrder: 1},
	}

	out := rank(entries, rankContext{query: "日本 語"})
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID, "source word order is preserved across groups")
}

func TestRank_StableForEqualKeys(t *testing.T) {
	t.Parallel()

	entries := []domain.Entry{
		{ID: 1, Kanji: "あ一", Reading: "あい"},
		{ID: 2, Kanji: "あ二", Reading: "あう"},
		{ID: 3, Kanji: "あ三", Reading: "あえ"},
	}

	out := rank(entries, rankContext{query: "あ"})
	require.Len(t, out, 3)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(2), out[1].ID)
	assert.Equal(t, int64(3), out[2].ID)
}

func TestMeaningScore(t *testing.T) {
	t.Parallel()

	exactFirst := meaningScore([]string{"cat"}, "cat")
	wordFirst := meaningScore([]string{"stray cat"}, "cat")
	substringFirst := meaningScore([]string{"catalogue"}, "cat")
	none := meaningScore([]string{"dog"}, "cat")

	assert.Greater(t, exactFirst, wordFirst)
	assert.Greater(t, wordFirst, substringFirst)
	assert.Greater(t, substringFirst, none)
	assert.Zero(t, none)
}
