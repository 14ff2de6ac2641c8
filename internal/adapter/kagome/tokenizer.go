// Package kagome adapts the kagome morphological tokenizer (IPA dictionary)
// to the abstract tokenizer contract the core depends on. Callers never see
// kagome types or its POS label vocabulary.
package kagome

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/heartmarshall/jdict-engine/internal/domain"
)

// Tokenizer wraps a kagome tokenizer instance. Safe for concurrent use.
type Tokenizer struct {
	log *slog.Logger
	t   *tokenizer.Tokenizer
}

// New builds a tokenizer over the embedded IPA dictionary.
func New(log *slog.Logger) (*Tokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("init kagome tokenizer: %w", err)
	}
	return &Tokenizer{log: log, t: t}, nil
}

// Tokenize segments text into morphemes. Panics inside the tokenizer are
// recovered and returned as errors so callers can degrade to "no analysis".
func (tk *Tokenizer) Tokenize(ctx context.Context, text string) (out []domain.Token, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			tk.log.Warn("tokenizer panic recovered", slog.Any("panic", r))
			out = nil
			err = fmt.Errorf("tokenize %q: %v", text, r)
		}
	}()

	ktoks := tk.t.Analyze(text, tokenizer.Normal)
	out = make([]domain.Token, 0, len(ktoks))
	for _, kt := range ktoks {
		tok := domain.Token{Surface: kt.Surface}

		features := kt.Features()
		if len(features) > 0 {
			tok.POSLevel1 = features[0]
		}
		if len(features) > 1 {
			tok.POSLevel2 = features[1]
		}
		if base, ok := kt.BaseForm(); ok {
			tok.BaseForm = base
		}
		if reading, ok := kt.Reading(); ok {
			tok.Reading = reading
		}
		tok.Category = mapCategory(tok.POSLevel1, tok.POSLevel2, kt.Class)
		out = append(out, tok)
	}
	return out, nil
}

// AnalyzeWord returns the morphology of a single word: the analysis of its
// first content morpheme, or nil when the word yields nothing useful.
func (tk *Tokenizer) AnalyzeWord(ctx context.Context, word string) (*domain.MorphologyResult, error) {
	tokens, err := tk.Tokenize(ctx, word)
	if err != nil {
		return nil, err
	}
	for _, t := range tokens {
		if t.Category.IsContentWord() {
			return &domain.MorphologyResult{
				Surface:  t.Surface,
				BaseForm: t.BaseForm,
				Reading:  t.Reading,
				Category: t.Category,
			}, nil
		}
	}
	return nil, nil
}

// mapCategory folds the IPA POS vocabulary into the abstract categories the
// core validates against. Out-of-dictionary tokens map to POSUnknown.
func mapCategory(pos1, pos2 string, class tokenizer.TokenClass) domain.PartOfSpeechCategory {
	if class == tokenizer.UNKNOWN || pos2 == "アルファベット" {
		return domain.POSUnknown
	}
	switch {
	case strings.HasPrefix(pos1, "動詞"):
		return domain.POSVerb
	case strings.HasPrefix(pos1, "形容詞"):
		return domain.POSAdjective
	case strings.HasPrefix(pos1, "名詞"):
		return domain.POSNoun
	case strings.HasPrefix(pos1, "副詞"):
		return domain.POSAdverb
	case strings.HasPrefix(pos1, "連体詞"):
		return domain.POSAdnominal
	case strings.HasPrefix(pos1, "助詞"):
		return domain.POSParticle
	case strings.HasPrefix(pos1, "助動詞"):
		return domain.POSAuxiliary
	case strings.HasPrefix(pos1, "記号"):
		return domain.POSSymbol
	default:
		return domain.POSOther
	}
}
