package kagome

import (
	"context"
	"io"
	"log/slog"
	"testing"

	kgm "github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/jdict-engine/internal/domain"
)

func newTestTokenizer(t *testing.T) *Tokenizer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	tk, err := New(logger)
	require.NoError(t, err)
	return tk
}

func TestTokenizer_Tokenize(t *testing.T) {
	t.Parallel()

	tk := newTestTokenizer(t)

	tokens, err := tk.Tokenize(context.Background(), "猫が好き")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)

	assert.Equal(t, "猫", tokens[0].Surface)
	assert.Equal(t, domain.POSNoun, tokens[0].Category)
	assert.Equal(t, domain.POSParticle, tokens[1].Category)
}

func TestTokenizer_Tokenize_InflectedVerb(t *testing.T) {
	t.Parallel()

	tk := newTestTokenizer(t)

	tokens, err := tk.Tokenize(context.Background(), "食べた")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)

	verb := tokens[0]
	assert.Equal(t, domain.POSVerb, verb.Category)
	assert.Equal(t, "食べる", verb.BaseForm)
	assert.True(t, verb.IsInflected())
}

func TestTokenizer_Tokenize_CancelledContext(t *testing.T) {
	t.Parallel()

	tk := newTestTokenizer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tk.Tokenize(ctx, "食べた")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTokenizer_AnalyzeWord(t *testing.T) {
	t.Parallel()

	tk := newTestTokenizer(t)

	res, err := tk.AnalyzeWord(context.Background(), "食べた")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "食べ", res.Surface)
	assert.Equal(t, "食べる", res.BaseForm)
	assert.Equal(t, domain.POSVerb, res.Category)
}

func TestTokenizer_AnalyzeWord_NoContentMorpheme(t *testing.T) {
	t.Parallel()

	tk := newTestTokenizer(t)

	res, err := tk.AnalyzeWord(context.Background(), "を")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestMapCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pos1  string
		pos2  string
		class kgm.TokenClass
		want  domain.PartOfSpeechCategory
	}{
		{"動詞", "自立", kgm.KNOWN, domain.POSVerb},
		{"形容詞", "自立", kgm.KNOWN, domain.POSAdjective},
		{"名詞", "一般", kgm.KNOWN, domain.POSNoun},
		{"副詞", "一般", kgm.KNOWN, domain.POSAdverb},
		{"連体詞", "", kgm.KNOWN, domain.POSAdnominal},
		{"助詞", "格助詞", kgm.KNOWN, domain.POSParticle},
		{"助動詞", "", kgm.KNOWN, domain.POSAuxiliary},
		{"記号", "句点", kgm.KNOWN, domain.POSSymbol},
		{"記号", "アルファベット", kgm.KNOWN, domain.POSUnknown},
		{"名詞", "一般", kgm.UNKNOWN, domain.POSUnknown},
		{"感動詞", "", kgm.KNOWN, domain.POSOther},
	}
	for _, tt := range tests {
		got := mapCategory(tt.pos1, tt.pos2, tt.class)
		assert.Equal(t, tt.want, got, "pos1=%s pos2=%s", tt.pos1, tt.pos2)
	}
}
