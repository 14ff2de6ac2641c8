package config

import "time"

// Config is the root application configuration.
type Config struct {
	Lexicon LexiconConfig `yaml:"lexicon"`
	Search  SearchConfig  `yaml:"search"`
	Log     LogConfig     `yaml:"log"`
}

// LexiconConfig holds SQLite lexicon database settings.
type LexiconConfig struct {
	Path         string        `yaml:"path"          env:"LEXICON_PATH"          env-required:"true"`
	BusyTimeout  time.Duration `yaml:"busy_timeout"  env:"LEXICON_BUSY_TIMEOUT"  env-default:"5s"`
	MaxOpenConns int           `yaml:"max_open_conns" env:"LEXICON_MAX_OPEN_CONNS" env-default:"4"`
}

// SearchConfig holds search engine settings.
type SearchConfig struct {
	// DefaultLimit is used when a caller passes limit <= 0.
	DefaultLimit int `yaml:"default_limit" env:"SEARCH_DEFAULT_LIMIT" env-default:"50"`
	// MaxLimit caps the per-call result count.
	MaxLimit int `yaml:"max_limit" env:"SEARCH_MAX_LIMIT" env-default:"200"`
	// ProgressiveFloor is the minimum prefix length (in runes) the
	// progressive-shortening deinflection fallback will try.
	ProgressiveFloor int `yaml:"progressive_floor" env:"SEARCH_PROGRESSIVE_FLOOR" env-default:"3"`
	// SentenceTokenBudget caps how many content tokens the sentence
	// analyzer searches before falling back to script-run scanning.
	SentenceTokenBudget int `yaml:"sentence_token_budget" env:"SEARCH_SENTENCE_TOKEN_BUDGET" env-default:"10"`
	// DeinflectionCacheSize bounds the per-process deinflection cache.
	DeinflectionCacheSize int `yaml:"deinflection_cache_size" env:"SEARCH_DEINFLECTION_CACHE_SIZE" env-default:"4096"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
