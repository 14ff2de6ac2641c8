package search

import (
	"context"
	"strings"

	"github.com/heartmarshall/jdict-engine/internal/domain"
	"github.com/heartmarshall/jdict-engine/internal/lang"
)

// analyzeSentence breaks sentence-like input into morphemes and looks up
// each content word. Particles and auxiliaries are skipped, token order is
// preserved through WordOrder, and the per-token result count is kept small
// so one sentence does not flood the merged list.
func (e *Engine) analyzeSentence(ctx context.Context, query string, fetch int) []domain.Entry {
	if e.tok == nil {
		return e.scanScriptRuns(ctx, query, fetch)
	}

	normalized := e.normalizeRomajiRuns(query)
	tokens, err := e.tok.Tokenize(ctx, normalized)
	if err != nil {
		e.logStrategyError("sentence", query, err)
		return e.scanScriptRuns(ctx, query, fetch)
	}

	perToken := fetch / e.cfg.SentenceTokenBudget
	if perToken < 1 {
		perToken = 1
	}

	covered := make(map[string]struct{})
	var entries []domain.Entry
	order := 0
	for _, tok := range tokens {
		if order >= e.cfg.SentenceTokenBudget {
			break
		}
		if !tok.Category.IsContentWord() {
			continue
		}
		found := e.lookupToken(ctx, tok, perToken)
		if len(found) == 0 {
			continue
		}
		covered[tok.Surface] = struct{}{}
		order++
		for i := range found {
			found[i].WordOrder = order
		}
		entries = append(entries, found...)
	}

	// Leftover budget goes to a plain scan of the script runs the tokenizer
	// did not resolve to a content word.
	for _, run := range lang.SplitScriptRuns(normalized) {
		if order >= e.cfg.SentenceTokenBudget {
			break
		}
		if lang.IsParticle(run.Text) || coveredRun(covered, run.Text) {
			continue
		}
		found, err := e.lexicon.SearchJapanese(ctx, domain.JapaneseSearch{
			Text: run.Text, Limit: perToken, ExactMatch: true,
		})
		if err != nil {
			e.logStrategyError("sentence-residual", run.Text, err)
			continue
		}
		found = filterContaining(found, run.Text)
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

// coveredRun reports whether a script run overlaps a surface already
// resolved through a tokenizer content word.
func coveredRun(covered map[string]struct{}, text string) bool {
	for s := range covered {
		if strings.Contains(text, s) || strings.Contains(s, text) {
			return true
		}
	}
	return false
}

// lookupToken tries the morpheme's base form first, then its surface, then
// its reading, and filters out entries that do not actually contain the
// looked-up term. The best candidates by commonality win within each form.
func (e *Engine) lookupToken(ctx context.Context, tok domain.Token, limit int) []domain.Entry {
	forms := make([]string, 0, 3)
	if tok.BaseForm != "" && tok.BaseForm != "*" {
		forms = append(forms, tok.BaseForm)
	}
	forms = append(forms, tok.Surface)
	if tok.Reading != "" && tok.Reading != "*" {
		forms = append(forms, lang.KatakanaToHiragana(tok.Reading))
	}

	seen := make(map[string]struct{}, len(forms))
	for _, form := range forms {
		if _, dup := seen[form]; dup {
			continue
		}
		seen[form] = struct{}{}

		found, err := e.lexicon.SearchJapanese(ctx, domain.JapaneseSearch{
			Text: form, Limit: limit, ExactMatch: true,
		})
		if err != nil {
			e.logStrategyError("sentence-token", form, err)
			continue
		}
		found = filterContaining(found, form)
		if len(found) > 0 {
			return found
		}
	}
	return nil
}

// filterContaining keeps entries whose headword or reading contains term,
// dropping FTS near-misses that would pollute a sentence breakdown.
func filterContaining(entries []domain.Entry, term string) []domain.Entry {
	out := entries[:0]
	for _, entry := range entries {
		if strings.Contains(entry.Kanji, term) || strings.Contains(entry.Reading, term) {
			out = append(out, entry)
		}
	}
	return out
}

// scanScriptRuns is the tokenizer-free residual path: each script run is
// searched on its own, romaji converted to hiragana first.
func (e *Engine) scanScriptRuns(ctx context.Context, query string, fetch int) []domain.Entry {
	var entries []domain.Entry
	order := 0
	for _, run := range lang.SplitScriptRuns(query) {
		term := run.Text
		if run.Kind == lang.RunLatin {
			term = lang.ToHiragana(term)
		}
		if lang.IsParticle(term) {
			continue
		}
		found, err := e.lexicon.SearchJapanese(ctx, domain.JapaneseSearch{
			Text: term, Limit: fetch, ExactMatch: true,
		})
		if err != nil {
			e.logStrategyError("sentence-scan", term, err)
			continue
		}
		found = filterContaining(found, term)
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

// normalizeRomajiRuns rewrites latin runs as hiragana so the tokenizer sees
// a homogeneous Japanese sentence.
func (e *Engine) normalizeRomajiRuns(query string) string {
	var b strings.Builder
	for _, run := range lang.SplitScriptRuns(query) {
		if run.Kind == lang.RunLatin {
			b.WriteString(lang.ToHiragana(run.Text))
			continue
		}
		b.WriteString(run.Text)
	}
	return b.String()
}
