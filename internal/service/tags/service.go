// Package tags resolves the short POS and name-type tags carried by
// dictionary entries into human-readable labels.
package tags

import (
	"context"
	"log/slog"
	"sync"

	"github.com/heartmarshall/jdict-engine/internal/domain"
)

// vocabulary defines the tag definitions source needed by the tags service.
type vocabulary interface {
	All(ctx context.Context) (map[string]string, error)
}

// Service enriches ranked entries with display-ready tag labels. The
// vocabulary is loaded once on first use and held for the process lifetime.
type Service struct {
	log   *slog.Logger
	vocab vocabulary

	once sync.Once
	defs map[string]string
}

// NewService creates a new tags service instance.
func NewService(logger *slog.Logger, vocab vocabulary) *Service {
	return &Service{
		log:   logger.With("service", "tags"),
		vocab: vocab,
	}
}

// Enrich attaches tag labels to every entry. Tags without a definition keep
// their raw form; a failed vocabulary load degrades to raw tags for all.
func (s *Service) Enrich(ctx context.Context, entries []domain.Entry) []domain.EnrichedEntry {
	defs := s.definitions(ctx)

	out := make([]domain.EnrichedEntry, len(entries))
	for i, entry := range entries {
		enriched := domain.EnrichedEntry{Entry: entry}
		for _, tag := range entry.Tags {
			if label, ok := defs[tag]; ok && label != "" {
				enriched.TagLabels = append(enriched.TagLabels, label)
				continue
			}
			enriched.TagLabels = append(enriched.TagLabels, tag)
		}
		out[i] = enriched
	}
	return out
}

func (s *Service) definitions(ctx context.Context) map[string]string {
	s.once.Do(func() {
		defs, err := s.vocab.All(ctx)
		if err != nil {
			s.log.Warn("tag vocabulary unavailable, using raw tags",
				slog.String("error", err.Error()))
			return
		}
		s.defs = defs
	})
	return s.defs
}
