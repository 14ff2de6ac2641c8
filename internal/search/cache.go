package search

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/jdict-engine/internal/domain"
)

// deinflectionEntry is a cached decision for one surface form: either a
// result or an explicit "no conjugation" marker.
type deinflectionEntry struct {
	result *domain.Deinflection
	none   bool
}

// Cache holds per-process memoization for the search pipeline: deinflection
// decisions plus the match-tracking sets that prevent flip-flopping between
// "has direct match" and "needs deinflection" on repeated queries.
//
// Consistency rule: a query is a member of at most one of {direct,
// progressive}. A cached deinflection contradicted by a fresh direct lexicon
// hit is invalidated lazily via MarkDirect, never by background
// revalidation. All operations are single-key and safe for concurrent use.
type Cache struct {
	deinflections *lru.Cache[string, deinflectionEntry]

	mu          sync.RWMutex
	direct      map[string]struct{}
	progressive map[string]struct{}
	noDeinflect map[string]struct{}
}

// NewCache creates a cache whose deinflection side is bounded to size
// entries.
func NewCache(size int) (*Cache, error) {
	dc, err := lru.New[string, deinflectionEntry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{
		deinflections: dc,
		direct:        make(map[string]struct{}),
		progressive:   make(map[string]struct{}),
		noDeinflect:   make(map[string]struct{}),
	}, nil
}

// Deinflection returns the cached decision for a surface form.
// noConjugation reports an explicit negative marker; ok reports any cached
// decision at all.
func (c *Cache) Deinflection(query string) (result *domain.Deinflection, noConjugation, ok bool) {
	e, ok := c.deinflections.Get(query)
	if !ok {
		return nil, false, false
	}
	return e.result, e.none, true
}

// PutDeinflection caches a positive deinflection decision.
func (c *Cache) PutDeinflection(query string, d *domain.Deinflection) {
	c.deinflections.Add(query, deinflectionEntry{result: d})
}

// PutNoConjugation caches an explicit "this form is not a conjugation"
// marker so the engine does not re-derive the negative.
func (c *Cache) PutNoConjugation(query string) {
	c.deinflections.Add(query, deinflectionEntry{none: true})
}

// MarkDirect records a confirmed exact lexicon hit for the query. Any
// progressive-match membership and any cached deinflection for the same
// query are dropped (lazy correction: the direct hit wins).
func (c *Cache) MarkDirect(query string) {
	c.mu.Lock()
	c.direct[query] = struct{}{}
	delete(c.progressive, query)
	c.mu.Unlock()
	c.deinflections.Remove(query)
}

// MarkProgressive records that the query was resolved via progressive
// shortening. A query already confirmed as a direct match keeps that status.
func (c *Cache) MarkProgressive(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, isDirect := c.direct[query]; isDirect {
		return
	}
	c.progressive[query] = struct{}{}
}

// HasDirect reports a confirmed exact lexicon hit for the query.
func (c *Cache) HasDirect(query string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.direct[query]
	return ok
}

// HasProgressive reports a progressive-shortening resolution for the query.
func (c *Cache) HasProgressive(query string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.progressive[query]
	return ok
}

// MarkNoDeinflection excludes a query from deinflection recomputation.
func (c *Cache) MarkNoDeinflection(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.noDeinflect[query] = struct{}{}
}

// SkipDeinflection reports whether deinflection is excluded for the query.
func (c *Cache) SkipDeinflection(query string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.noDeinflect[query]
	return ok
}

// Clear resets all cached state. Exists for test isolation.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.direct = make(map[string]struct{})
	c.progressive = make(map[string]struct{})
	c.noDeinflect = make(map[string]struct{})
	c.mu.Unlock()
	c.deinflections.Purge()
}
