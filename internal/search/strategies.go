package search

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/jdict-engine/internal/domain"
	"github.com/heartmarshall/jdict-engine/internal/lang"
)

// verbEndings used by the sentence heuristic to spot conjugation inside
// mixed-script input.
var verbEndings = []string{
	"ます", "ました", "ません", "です", "でした",
	"ている", "ていた", "った", "んだ", "ない", "たい", "して",
}

// ---------------------------------------------------------------------------
// Japanese direct strategy
// ---------------------------------------------------------------------------

// searchJapanese queries both kana variants of the input, attempts
// deinflection when the input does not end in a particle, and falls back to
// the kanji character index for single-kanji queries with no exact hit.
func (e *Engine) searchJapanese(ctx context.Context, query string, fetch int) ([]domain.Entry, rankContext) {
	rc := rankContext{query: query, baseForms: make(map[string]struct{})}

	var entries []domain.Entry
	exactHit := false
	for _, variant := range lang.BothKanaVariants(query) {
		found, err := e.lexicon.SearchJapanese(ctx, domain.JapaneseSearch{
			Text: variant, Limit: fetch, ExactMatch: true,
		})
		if err != nil {
			e.logStrategyError("japanese-exact", variant, err)
			continue
		}
		if len(found) > 0 && variant == query {
			exactHit = true
		}
		entries = append(entries, found...)
	}

	if exactHit {
		// A confirmed direct hit revises cache membership and invalidates
		// any cached deinflection for this query (lazy correction).
		e.cache.MarkDirect(query)
	}
	anyExact := len(entries) > 0

	// Broader FTS match after the exact pass so exact hits keep insertion
	// priority for equal ranking keys.
	broad, err := e.lexicon.SearchJapanese(ctx, domain.JapaneseSearch{Text: query, Limit: fetch})
	if err != nil {
		e.logStrategyError("japanese-fts", query, err)
	} else {
		entries = append(entries, broad...)
	}

	deinflected, bases := e.applyDeinflection(ctx, query, fetch, exactHit)
	entries = append(entries, deinflected...)
	for b := range bases {
		rc.baseForms[b] = struct{}{}
	}

	// Shortening only fires when the exact pass and deinflection both came
	// up empty; broad FTS partial matches do not count as a direct match.
	if !anyExact && len(bases) == 0 {
		prog, base := e.progressiveFallback(ctx, query, fetch)
		if base != "" {
			rc.baseForms[base] = struct{}{}
		}
		entries = append(entries, prog...)
	}

	if !exactHit && utf8.RuneCountInString(query) == 1 && lang.IsJapanese(query) && !lang.IsHiragana(query) && !lang.IsKatakana(query) {
		entries = append(entries, e.searchKanjiCharacter(ctx, query)...)
	}

	return entries, rc
}

// applyDeinflection resolves the query's deinflection (through the cache)
// and queries the lexicon for the base form. It returns the matched entries
// and the set of tokenizer-confirmed base forms.
func (e *Engine) applyDeinflection(ctx context.Context, query string, fetch int, directHit bool) ([]domain.Entry, map[string]struct{}) {
	if lang.EndsInParticle(query) || e.cache.SkipDeinflection(query) {
		return nil, nil
	}

	var (
		candidates []domain.Deinflection
		fresh      bool
	)
	if cached, none, ok := e.cache.Deinflection(query); ok {
		if none {
			return nil, nil
		}
		candidates = []domain.Deinflection{*cached}
	} else if e.deinf != nil {
		candidates = e.deinf.Deinflect(ctx, query)
		if len(candidates) == 0 {
			e.cache.PutNoConjugation(query)
			e.cache.MarkNoDeinflection(query)
			return nil, nil
		}
		fresh = true
	} else {
		return nil, nil
	}

	bases := make(map[string]struct{})
	var entries []domain.Entry
	var matched *domain.Deinflection
	for _, cand := range candidates {
		if cand.BaseForm == query {
			continue
		}
		found, err := e.lexicon.SearchJapanese(ctx, domain.JapaneseSearch{
			Text:        cand.BaseForm,
			Limit:       fetch,
			ExactMatch:  true,
			Deinflected: true,
			BaseForm:    cand.BaseForm,
		})
		if err != nil {
			e.logStrategyError("japanese-deinflected", cand.BaseForm, err)
			continue
		}
		if len(found) > 0 {
			cand := cand
			matched = &cand
			bases[cand.BaseForm] = struct{}{}
			entries = append(entries, found...)
			break
		}
	}

	// Cache the decision that produced the result, so repeated calls replay
	// the same candidate instead of the scorer's first guess. Direct hits
	// take precedence; don't cache a deinflection a fresh lexicon lookup
	// already contradicts.
	if fresh && !directHit {
		decision := candidates[0]
		if matched != nil {
			decision = *matched
		}
		e.cache.PutDeinflection(query, &decision)
	}
	return entries, bases
}

// progressiveFallback retries deinflection on successively shorter prefixes
// of the query, down to the configured floor, accepting the first prefix
// whose base form has at least one lexicon hit. Recovers over-long input
// containing a valid conjugated verb plus trailing noise.
func (e *Engine) progressiveFallback(ctx context.Context, query string, fetch int) ([]domain.Entry, string) {
	if e.deinf == nil {
		return nil, ""
	}
	runes := []rune(query)
	for l := len(runes) - 1; l >= e.cfg.ProgressiveFloor; l-- {
		prefix := string(runes[:l])
		for _, cand := range e.deinf.Deinflect(ctx, prefix) {
			if cand.BaseForm == prefix {
				continue
			}
			found, err := e.lexicon.SearchJapanese(ctx, domain.JapaneseSearch{
				Text:        cand.BaseForm,
				Limit:       fetch,
				ExactMatch:  true,
				Deinflected: true,
				BaseForm:    cand.BaseForm,
			})
			if err != nil {
				e.logStrategyError("progressive", cand.BaseForm, err)
				continue
			}
			if len(found) > 0 {
				e.cache.MarkProgressive(query)
				return found, cand.BaseForm
			}
		}
	}
	return nil, ""
}

// searchKanjiCharacter consults the kanji character index and folds the
// results into dictionary-entry shape so they merge into one ranked list.
func (e *Engine) searchKanjiCharacter(ctx context.Context, literal string) []domain.Entry {
	if e.kanji == nil {
		return nil
	}
	chars, err := e.kanji.SearchKanji(ctx, literal, 1)
	if err != nil {
		e.logStrategyError("kanji-index", literal, err)
		return nil
	}
	var out []domain.Entry
	for _, k := range chars {
		reading := ""
		if len(k.KunReadings) > 0 {
			reading = k.KunReadings[0]
		} else if len(k.OnReadings) > 0 {
			reading = lang.KatakanaToHiragana(k.OnReadings[0])
		}
		out = append(out, domain.Entry{
			Kanji:     k.Literal,
			Reading:   reading,
			Meanings:  k.Meanings,
			Frequency: k.Frequency,
			Tags:      []string{"kanji"},
		})
	}
	return out
}

// ---------------------------------------------------------------------------
// English / unified strategies
// ---------------------------------------------------------------------------

func (e *Engine) searchEnglish(ctx context.Context, query string, fetch int) []domain.Entry {
	entries, err := e.lexicon.SearchEnglish(ctx, query, fetch)
	if err != nil {
		e.logStrategyError("english", query, err)
		return nil
	}
	return entries
}

// searchUnified covers queries that resist classification: both the
// Japanese and English interpretations are tried and merged, then ranked
// with meaning prioritization like a plain English query.
func (e *Engine) searchUnified(ctx context.Context, query string, fetch int) ([]domain.Entry, rankContext) {
	entries, rc := e.searchJapanese(ctx, query, fetch)
	entries = append(entries, e.searchEnglish(ctx, query, fetch)...)
	rc.meaningQuery = true
	return entries, rc
}

// ---------------------------------------------------------------------------
// Romaji parallel strategy
// ---------------------------------------------------------------------------

// searchRomaji runs the Japanese strategy on the kana conversions and an
// English meaning search on the raw romaji concurrently, then merges.
func (e *Engine) searchRomaji(ctx context.Context, query string, fetch int) ([]domain.Entry, rankContext) {
	var (
		japanese []domain.Entry
		english  []domain.Entry
		jrc      rankContext
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		japanese, jrc = e.searchJapanese(gctx, lang.ToHiragana(query), fetch)
		return nil
	})
	g.Go(func() error {
		english = e.searchEnglish(gctx, query, fetch)
		return nil
	})
	// strategies swallow their own errors; Wait only propagates ctx
	_ = g.Wait()

	rc := jrc
	rc.query = query
	rc.kanaForms = lang.BothKanaVariants(query)
	return append(japanese, english...), rc
}

// ---------------------------------------------------------------------------
// Wildcard strategy
// ---------------------------------------------------------------------------

// searchWildcard translates '?' to the single-character SQL wildcard and
// keeps only results of the same rune length as the pattern.
func (e *Engine) searchWildcard(ctx context.Context, query string, fetch int) []domain.Entry {
	pattern := strings.ReplaceAll(query, "?", "_")
	found, err := e.lexicon.SearchWildcard(ctx, pattern, fetch)
	if err != nil {
		e.logStrategyError("wildcard", pattern, err)
		return nil
	}

	want := utf8.RuneCountInString(query)
	out := found[:0]
	for _, entry := range found {
		if utf8.RuneCountInString(entry.Kanji) == want || utf8.RuneCountInString(entry.Reading) == want {
			out = append(out, entry)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Mixed-script strategy
// ---------------------------------------------------------------------------

// searchMixed handles Japanese text interleaved with romaji. Sentence-like
// input goes to the sentence analyzer; otherwise each script run is searched
// independently (romaji runs converted to hiragana first) in source order.
func (e *Engine) searchMixed(ctx context.Context, query string, fetch int) []domain.Entry {
	if e.isSentenceLike(query) {
		return e.analyzeSentence(ctx, query, fetch)
	}

	var entries []domain.Entry
	order := 0
	for _, run := range lang.SplitScriptRuns(query) {
		term := run.Text
		if run.Kind == lang.RunLatin {
			term = lang.ToHiragana(term)
		}
		found, _ := e.searchJapanese(ctx, term, fetch)
		if len(found) == 0 {
			continue
		}
		order++
		for i := range found {
			found[i].WordOrder = order
		}
		entries = append(entries, found...)
	}
	return entries
}

// isSentenceLike is a routing hint, not a correctness guarantee: particles
// anywhere, or multiple script transitions combined with a recognizable
// verb ending, suggest sentence input.
func (e *Engine) isSentenceLike(query string) bool {
	if lang.ContainsParticle(query) {
		return true
	}
	if len(lang.SplitScriptRuns(query)) < 3 {
		return false
	}
	for _, ending := range verbEndings {
		if strings.Contains(query, ending) {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Multi-word strategy
// ---------------------------------------------------------------------------

// searchMultiWord searches each whitespace-separated token with its own
// strategy and concatenates in token order. A fully-English query is first
// tried as a single phrase against the meaning text.
func (e *Engine) searchMultiWord(ctx context.Context, query string, words []string, fetch int) ([]domain.Entry, rankContext) {
	rc := rankContext{query: query, baseForms: make(map[string]struct{})}

	if lang.IsEnglish(query) {
		rc.meaningQuery = true
		if phrase := e.searchEnglish(ctx, query, fetch); len(phrase) > 0 {
			return phrase, rc
		}
	}

	var entries []domain.Entry
	for i, word := range words {
		found, wrc := e.dispatch(ctx, word, e.Classify(word), fetch)
		for j := range found {
			found[j].WordOrder = i + 1
		}
		entries = append(entries, found...)
		for b := range wrc.baseForms {
			rc.baseForms[b] = struct{}{}
		}
	}
	return entries, rc
}

func (e *Engine) logStrategyError(strategy, term string, err error) {
	e.log.Warn("search strategy degraded",
		slog.String("strategy", strategy),
		slog.String("term", term),
		slog.String("error", err.Error()))
}
