package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuery(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", NormalizeQuery("ｈｅｌｌｏ"))
	assert.Equal(t, "日本 語", NormalizeQuery("日本　語"))
	assert.Equal(t, "abc 123", NormalizeQuery("  ａｂｃ　１２３  "))
	assert.Equal(t, "", NormalizeQuery("   "))
}

func TestIsJapanese(t *testing.T) {
	t.Parallel()

	assert.True(t, IsJapanese("ひらがな"))
	assert.True(t, IsJapanese("カタカナ"))
	assert.True(t, IsJapanese("漢字"))
	assert.True(t, IsJapanese("abc漢abc"))
	assert.False(t, IsJapanese("hello"))
	assert.False(t, IsJapanese(""))
}

func TestIsPureJapanese(t *testing.T) {
	t.Parallel()

	assert.True(t, IsPureJapanese("食べる"))
	assert.True(t, IsPureJapanese("スーパー"))
	assert.True(t, IsPureJapanese("人々"))
	assert.True(t, IsPureJapanese("日本 語"))
	assert.False(t, IsPureJapanese("日本go"))
	assert.False(t, IsPureJapanese(""))
	assert.False(t, IsPureJapanese("  "))
}

func TestIsWildcardPattern(t *testing.T) {
	t.Parallel()

	assert.True(t, IsWildcardPattern("食べ?"))
	assert.True(t, IsWildcardPattern("?べる"))
	assert.False(t, IsWildcardPattern("食べる"))
	assert.False(t, IsWildcardPattern("ca?"), "wildcards are Japanese-only")
	assert.False(t, IsWildcardPattern("?"), "nothing but the wildcard")
}

func TestIsEnglish(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEnglish("cat"))
	assert.True(t, IsEnglish("ice cream"))
	assert.True(t, IsEnglish("mother-in-law"))
	assert.True(t, IsEnglish("don't"))
	assert.False(t, IsEnglish("食べる"))
	assert.False(t, IsEnglish("tabe食"))
	assert.False(t, IsEnglish("123"))
	assert.False(t, IsEnglish(""))
}

func TestIsLikelyJapaneseRomaji(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"kawaii", true},      // double vowel
		{"shiru", true},       // sh digraph
		{"tabemashita", true}, // polite ending
		{"konnichiwa", true},  // CV alternation sections
		{"ryokou", true},      // ry digraph + ou
		{"tsunami", true},     // ts digraph
		{"the", false},        // common word denylist
		{"dog", false},        // no romaji pattern
		{"strength", false},   // consonant clusters
		{"cat", false},        // no romanization pattern
		{"see", false},        // denylist
		{"", false},
		{"みたい", false}, // already Japanese
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLikelyJapaneseRomaji(tt.in), "input %q", tt.in)
	}
}

func TestParticleHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, IsParticle("は"))
	assert.True(t, IsParticle("から"))
	assert.False(t, IsParticle("た"))

	assert.True(t, EndsInParticle("これは"))
	assert.True(t, EndsInParticle("ここから"))
	assert.False(t, EndsInParticle("が"), "a bare particle does not end in one")
	assert.False(t, EndsInParticle("みた"))

	assert.True(t, ContainsParticle("猫が好き"))
	assert.False(t, ContainsParticle("すし"))
}

func TestSplitScriptRuns(t *testing.T) {
	t.Parallel()

	runs := SplitScriptRuns("日本のnihongoを勉強")
	require.Len(t, runs, 5)

	assert.Equal(t, ScriptRun{Text: "日本", Kind: RunKanji}, runs[0])
	assert.Equal(t, ScriptRun{Text: "の", Kind: RunKana}, runs[1])
	assert.Equal(t, ScriptRun{Text: "nihongo", Kind: RunLatin}, runs[2])
	assert.Equal(t, ScriptRun{Text: "を", Kind: RunKana}, runs[3])
	assert.Equal(t, ScriptRun{Text: "勉強", Kind: RunKanji}, runs[4])
}

func TestSplitScriptRuns_DropsPunctuation(t *testing.T) {
	t.Parallel()

	runs := SplitScriptRuns("cat, dog!")
	require.Len(t, runs, 2)
	assert.Equal(t, "cat", runs[0].Text)
	assert.Equal(t, "dog", runs[1].Text)
}
