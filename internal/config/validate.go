package config

import (
	"fmt"

	"github.com/heartmarshall/jdict-engine/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Lexicon.Path == "" {
		return domain.NewValidationError("lexicon.path", "must be set")
	}
	return c.Search.validate()
}

func (s *SearchConfig) validate() error {
	if s.DefaultLimit <= 0 {
		return domain.NewValidationError("search.default_limit",
			fmt.Sprintf("must be > 0 (got %d)", s.DefaultLimit))
	}
	if s.MaxLimit < s.DefaultLimit {
		return domain.NewValidationError("search.max_limit",
			fmt.Sprintf("must be >= default_limit (got %d < %d)", s.MaxLimit, s.DefaultLimit))
	}
	if s.ProgressiveFloor < 1 {
		return domain.NewValidationError("search.progressive_floor",
			fmt.Sprintf("must be >= 1 (got %d)", s.ProgressiveFloor))
	}
	if s.DeinflectionCacheSize <= 0 {
		return domain.NewValidationError("search.deinflection_cache_size",
			fmt.Sprintf("must be > 0 (got %d)", s.DeinflectionCacheSize))
	}
	return nil
}
