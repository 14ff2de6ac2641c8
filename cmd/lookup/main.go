// Command lookup searches the dictionary from the command line.
//
// Usage:
//
//	lookup [flags] <query>
//
// The query may be Japanese, romaji, English, mixed script, a wildcard
// pattern using '?', or several whitespace-separated words.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/jdict-engine/internal/adapter/kagome"
	"github.com/heartmarshall/jdict-engine/internal/adapter/sqlite"
	kanjirepo "github.com/heartmarshall/jdict-engine/internal/adapter/sqlite/kanjidic"
	lexiconrepo "github.com/heartmarshall/jdict-engine/internal/adapter/sqlite/lexicon"
	tagdefsrepo "github.com/heartmarshall/jdict-engine/internal/adapter/sqlite/tagdefs"
	"github.com/heartmarshall/jdict-engine/internal/app"
	"github.com/heartmarshall/jdict-engine/internal/config"
	"github.com/heartmarshall/jdict-engine/internal/deinflect"
	"github.com/heartmarshall/jdict-engine/internal/domain"
	"github.com/heartmarshall/jdict-engine/internal/search"
	tagssvc "github.com/heartmarshall/jdict-engine/internal/service/tags"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults to CONFIG_PATH or ./config.yaml)")
	limit := flag.Int("limit", 0, "maximum number of results (0 = config default)")
	offset := flag.Int("offset", 0, "number of ranked results to skip")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: lookup [flags] <query>")
		os.Exit(1)
	}
	query := strings.Join(flag.Args(), " ")

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := sqlite.Open(ctx, cfg.Lexicon)
	if err != nil {
		logger.Error("open lexicon database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	lexicon := lexiconrepo.New(db, logger)
	if !lexicon.Ready(ctx) {
		logger.Error("dictionary database has no entries",
			slog.String("path", cfg.Lexicon.Path),
			slog.String("error", domain.ErrNotReady.Error()))
		os.Exit(1)
	}
	kanji := kanjirepo.New(db, logger)

	tok, err := kagome.New(logger)
	if err != nil {
		logger.Error("init tokenizer", slog.String("error", err.Error()))
		os.Exit(1)
	}

	deinf := deinflect.NewEngine(logger, tok)

	engine, err := search.NewEngine(logger, lexicon, kanji, tok, deinf, cfg.Search)
	if err != nil {
		logger.Error("create search engine", slog.String("error", err.Error()))
		os.Exit(1)
	}

	entries, err := engine.Search(ctx, query, *limit, *offset)
	if err != nil {
		logger.Error("search failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Println("no results")
		return
	}

	tags := tagssvc.NewService(logger, tagdefsrepo.New(db))
	for i, entry := range tags.Enrich(ctx, entries) {
		head := entry.Headword()
		if entry.Kanji != "" && entry.Reading != "" {
			head = fmt.Sprintf("%s【%s】", entry.Kanji, entry.Reading)
		}
		fmt.Printf("%2d. %s\n", i+1, head)
		if len(entry.Meanings) > 0 {
			fmt.Printf("    %s\n", strings.Join(entry.Meanings, "; "))
		}
		if len(entry.TagLabels) > 0 {
			fmt.Printf("    [%s]\n", strings.Join(entry.TagLabels, ", "))
		}
	}
}
