package deinflect

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/heartmarshall/jdict-engine/internal/domain"
	"github.com/heartmarshall/jdict-engine/internal/lang"
)

// tokenizer is the slice of the external morphological tokenizer the engine
// needs for cross-validation. Failures degrade to "no deinflection".
type tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]domain.Token, error)
}

// Engine reduces conjugated surface forms to dictionary-form candidates.
type Engine struct {
	log *slog.Logger
	tok tokenizer
}

// NewEngine creates a deinflection engine. tok may be nil, in which case
// cross-validation is skipped and rule-table candidates are returned as-is.
func NewEngine(log *slog.Logger, tok tokenizer) *Engine {
	return &Engine{log: log, tok: tok}
}

// Candidates applies the irregular tables and the ordered rule table to the
// surface form and returns every reconstruction, unscored and unvalidated.
// Pure; no tokenizer involved.
func (e *Engine) Candidates(surface string) []domain.Deinflection {
	if surface == "" || lang.EndsInParticle(surface) {
		return nil
	}

	var out []domain.Deinflection
	seen := make(map[string]struct{})

	add := func(base string, r domain.ConjugationRule) {
		if base == "" {
			return
		}
		if _, dup := seen[base]; dup {
			return
		}
		seen[base] = struct{}{}
		out = append(out, domain.Deinflection{
			OriginalForm: surface,
			BaseForm:     base,
			ReasonChain:  []string{r.Reason},
			VerbType:     r.VerbType,
			Transformations: []domain.Transformation{
				{From: surface, To: base, Reason: r.Reason, RuleID: r.RuleID},
			},
		})
	}

	// Irregular verbs first: these may consume the entire surface form
	// (した → する) or act as a compound suffix (勉強した → 勉強する).
	for _, r := range irregularSuffixes {
		if strings.HasSuffix(surface, r.Ending) {
			stem := strings.TrimSuffix(surface, r.Ending)
			add(stem+r.Base, r)
		}
	}

	// Regular rules require a non-empty stem: a rule that consumes the whole
	// surface form reconstructs nothing but the suffix itself.
	for _, r := range rules {
		if !strings.HasSuffix(surface, r.Ending) {
			continue
		}
		stem := strings.TrimSuffix(surface, r.Ending)
		if stem == "" {
			continue
		}
		add(stem+r.Base, r)
	}

	return out
}

// Deinflect returns validated candidates, best guess first. The original
// surface form is cross-validated against the tokenizer once; if validation
// rejects it, no candidates are returned. Tokenizer errors are swallowed;
// deinflection is an enhancement, never a requirement.
func (e *Engine) Deinflect(ctx context.Context, surface string) []domain.Deinflection {
	cands := e.Candidates(surface)
	if len(cands) == 0 {
		return nil
	}

	if e.tok != nil && !e.IsValidConjugation(ctx, surface) {
		return nil
	}

	type scored struct {
		c     domain.Deinflection
		score int
	}
	ss := make([]scored, 0, len(cands))
	for _, c := range cands {
		ss = append(ss, scored{c: c, score: scoreCandidate(c)})
	}
	// stable: equal scores keep rule-table order
	sort.SliceStable(ss, func(i, j int) bool { return ss[i].score > ss[j].score })

	out := make([]domain.Deinflection, len(ss))
	for i, s := range ss {
		out[i] = s.c
	}
	return out
}

// IsValidConjugation cross-validates a surface form against the tokenizer:
// the form must tokenize cleanly (no unknown/foreign tokens), must not be a
// plain noun, must contain a verb or adjective whose reported base form
// differs from its surface, and must not end in a particle token.
func (e *Engine) IsValidConjugation(ctx context.Context, surface string) bool {
	if e.tok == nil {
		return false
	}
	tokens, err := e.tok.Tokenize(ctx, surface)
	if err != nil {
		e.log.Warn("tokenizer unavailable, skipping deinflection validation",
			slog.String("surface", surface), slog.String("error", err.Error()))
		return false
	}
	if len(tokens) == 0 {
		return false
	}

	for _, t := range tokens {
		if t.Category == domain.POSUnknown {
			return false
		}
	}

	// A single noun token is not an inflection of anything.
	if len(tokens) == 1 && tokens[0].Category == domain.POSNoun {
		return false
	}

	if tokens[len(tokens)-1].Category == domain.POSParticle {
		return false
	}

	for _, t := range tokens {
		if t.IsInflected() {
			return true
		}
	}
	return false
}
