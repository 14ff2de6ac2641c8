// Package search orchestrates dictionary lookups: it classifies the raw
// query, dispatches it to one or more search strategies, and merges, ranks,
// and deduplicates the results.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/jdict-engine/internal/config"
	"github.com/heartmarshall/jdict-engine/internal/domain"
	"github.com/heartmarshall/jdict-engine/internal/lang"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (collaborators implemented elsewhere)
// ---------------------------------------------------------------------------

type lexicon interface {
	Ready(ctx context.Context) bool
	SearchJapanese(ctx context.Context, q domain.JapaneseSearch) ([]domain.Entry, error)
	SearchEnglish(ctx context.Context, text string, limit int) ([]domain.Entry, error)
	SearchWildcard(ctx context.Context, likePattern string, limit int) ([]domain.Entry, error)
}

type kanjiIndex interface {
	SearchKanji(ctx context.Context, literal string, limit int) ([]domain.KanjiEntry, error)
}

type tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]domain.Token, error)
}

type deinflector interface {
	Deinflect(ctx context.Context, surface string) []domain.Deinflection
}

// Engine is the search orchestrator. Construct one per process with
// NewEngine and share it; all methods are safe for concurrent use.
type Engine struct {
	log     *slog.Logger
	lexicon lexicon
	kanji   kanjiIndex
	tok     tokenizer
	deinf   deinflector
	cache   *Cache
	cfg     config.SearchConfig
}

// NewEngine creates a search engine. kanji and tok may be nil; the
// strategies that need them degrade to skipping their enhancement.
func NewEngine(log *slog.Logger, lex lexicon, kanji kanjiIndex, tok tokenizer, deinf deinflector, cfg config.SearchConfig) (*Engine, error) {
	cache, err := NewCache(cfg.DeinflectionCacheSize)
	if err != nil {
		return nil, fmt.Errorf("search: create cache: %w", err)
	}
	return &Engine{
		log:     log,
		lexicon: lex,
		kanji:   kanji,
		tok:     tok,
		deinf:   deinf,
		cache:   cache,
		cfg:     cfg,
	}, nil
}

// Cache exposes the engine's cache, primarily so tests can reset state.
func (e *Engine) Cache() *Cache { return e.cache }

// Classify derives the script classification of a normalized query. The
// dispatch rules are evaluated in priority order; the first match wins.
func (e *Engine) Classify(query string) domain.Classification {
	if words := strings.Fields(query); len(words) > 1 {
		return domain.Classification{
			Kind:        domain.ScriptMultiWord,
			HasWildcard: strings.Contains(query, "?"),
			Words:       words,
		}
	}

	switch {
	case strings.Contains(query, "?"):
		if lang.IsWildcardPattern(query) {
			return domain.Classification{Kind: domain.ScriptWildcard, HasWildcard: true}
		}
		return domain.Classification{Kind: domain.ScriptInvalidWildcard, HasWildcard: true}
	case lang.IsMixedScript(query):
		return domain.Classification{Kind: domain.ScriptMixed}
	case lang.IsLikelyJapaneseRomaji(query):
		return domain.Classification{Kind: domain.ScriptRomaji}
	case lang.IsJapanese(query):
		return domain.Classification{Kind: domain.ScriptJapanese}
	case lang.IsEnglish(query):
		return domain.Classification{Kind: domain.ScriptEnglish}
	default:
		return domain.Classification{Kind: domain.ScriptAmbiguous}
	}
}

// Search runs the full pipeline: classify, dispatch, merge, rank, paginate.
// The worst outcome is an empty slice; sub-strategy failures contribute zero
// results rather than failing the call. Only context cancellation is
// returned as an error.
func (e *Engine) Search(ctx context.Context, raw string, limit, offset int) ([]domain.Entry, error) {
	query := lang.NormalizeQuery(raw)
	if query == "" {
		return nil, nil
	}
	if offset < 0 {
		offset = 0
	}
	limit = e.clampLimit(limit)

	if !e.lexicon.Ready(ctx) {
		e.log.Debug("lexicon not ready, returning empty result")
		return nil, nil
	}

	cls := e.Classify(query)
	e.log.Debug("dispatching query",
		slog.String("query", query), slog.String("kind", cls.Kind.String()))

	// fetch headroom: ranking, dedup, and offset all shrink the raw set
	fetch := limit + offset
	if fetch < e.cfg.DefaultLimit {
		fetch = e.cfg.DefaultLimit
	}

	entries, rc := e.dispatch(ctx, query, cls, fetch)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked := rank(entries, rc)
	return paginate(ranked, limit, offset), nil
}

// dispatch routes a classified query to its strategy and returns the merged
// raw entries plus the ranking context the final sort needs.
func (e *Engine) dispatch(ctx context.Context, query string, cls domain.Classification, fetch int) ([]domain.Entry, rankContext) {
	rc := rankContext{query: query}

	var entries []domain.Entry
	switch cls.Kind {
	case domain.ScriptMultiWord:
		entries, rc = e.searchMultiWord(ctx, query, cls.Words, fetch)
	case domain.ScriptWildcard:
		entries = e.searchWildcard(ctx, query, fetch)
	case domain.ScriptInvalidWildcard:
		// wildcards are Japanese-only; empty, not an error
	case domain.ScriptMixed:
		entries = e.searchMixed(ctx, query, fetch)
	case domain.ScriptRomaji:
		entries, rc = e.searchRomaji(ctx, query, fetch)
	case domain.ScriptJapanese:
		entries, rc = e.searchJapanese(ctx, query, fetch)
	case domain.ScriptEnglish:
		entries = e.searchEnglish(ctx, query, fetch)
		rc.meaningQuery = true
	case domain.ScriptAmbiguous:
		entries, rc = e.searchUnified(ctx, query, fetch)
	}
	return entries, rc
}

func (e *Engine) clampLimit(limit int) int {
	if limit <= 0 {
		return e.cfg.DefaultLimit
	}
	if limit > e.cfg.MaxLimit {
		return e.cfg.MaxLimit
	}
	return limit
}

func paginate(entries []domain.Entry, limit, offset int) []domain.Entry {
	if offset >= len(entries) {
		return nil
	}
	entries = entries[offset:]
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
