// internal/cli/engine.go
//
// Shared assembly for all commands: load word lists, build the graph, and
// wire the generator. Every command starts here, so the cost of a graph
// build is paid exactly once per invocation.

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordladder/internal/config"
	"github.com/robalobadob/wordladder/internal/graph"
	"github.com/robalobadob/wordladder/internal/puzzle"
	"github.com/robalobadob/wordladder/internal/words"
)

// engine bundles everything a command needs.
type engine struct {
	cfg   config.Config
	lists *words.Lists
	graph *graph.WordGraph
	bands puzzle.Bands
	gen   *puzzle.Generator
}

// buildEngine loads lists, builds the graph, and constructs the generator.
func buildEngine(cfg config.Config) (*engine, error) {
	lists, err := words.Load(cfg.DictionaryPath, cfg.BaseWordsPath)
	if err != nil {
		return nil, err
	}

	g, err := graph.Build(lists.Dictionary)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Int("base_words", lists.Base.Len()).
		Msg("word graph built")

	bands, err := cfg.Bands()
	if err != nil {
		return nil, err
	}

	gen, err := puzzle.NewGenerator(g, lists.Base, bands, cfg.MaxAttempts)
	if err != nil {
		return nil, err
	}

	return &engine{cfg: cfg, lists: lists, graph: g, bands: bands, gen: gen}, nil
}

// resolveOutputPath places relative outputs under the configured output
// directory, generating "<defaultName>.<ext>" when no path was given, and
// ensures the parent directory exists.
func resolveOutputPath(output, outputDir, ext, defaultName string) (string, error) {
	path := output
	switch {
	case path == "":
		path = filepath.Join(outputDir, defaultName+"."+ext)
	case !filepath.IsAbs(path):
		path = filepath.Join(outputDir, path)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	return path, nil
}

// formatExt maps an output format name to its file extension.
func formatExt(format string) string {
	switch format {
	case "json":
		return "json"
	case "sql":
		return "sql"
	case "db":
		return "db"
	default:
		return "txt"
	}
}

// logShortfall warns when a run produced fewer puzzles than requested.
func logShortfall(res puzzle.BatchResult, requested int) {
	if res.Shortfall > 0 {
		log.Warn().
			Int("requested", requested).
			Int("produced", len(res.Puzzles)).
			Int("shortfall", res.Shortfall).
			Msg("sampling budget exhausted before the batch was filled")
	}
}
