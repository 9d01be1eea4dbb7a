// internal/export/sql.go
//
// SQLite-compatible SQL script generation for mobile integration.
//
// Responsibilities:
//   - Optional CREATE TABLE schema plus difficulty/min_steps indexes.
//   - Batched multi-row INSERT statements for bulk load performance.
//   - Dictionary table export (word, length) with a length index.
//   - Single-quote escaping; word data is a-z only after normalization, but
//     escaping is kept so the writer never depends on that.

package export

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordladder/internal/puzzle"
	"github.com/robalobadob/wordladder/internal/words"
)

// SQLConfig controls script generation.
type SQLConfig struct {
	BatchSize     int  // rows per INSERT statement
	IncludeSchema bool // emit CREATE TABLE + indexes first
}

// DefaultSQLConfig mirrors the CLI defaults.
func DefaultSQLConfig() SQLConfig {
	return SQLConfig{BatchSize: 100, IncludeSchema: true}
}

const puzzleSchema = `-- Create puzzles table
CREATE TABLE IF NOT EXISTS puzzles (
	id TEXT PRIMARY KEY,
	start_word TEXT NOT NULL,
	target_word TEXT NOT NULL,
	min_steps INTEGER NOT NULL,
	difficulty TEXT NOT NULL
);

-- Indexes for better query performance
CREATE INDEX IF NOT EXISTS idx_puzzles_difficulty ON puzzles(difficulty);
CREATE INDEX IF NOT EXISTS idx_puzzles_steps ON puzzles(min_steps);
`

const dictionarySchema = `-- Create dictionary table
CREATE TABLE IF NOT EXISTS dictionary (
	word TEXT PRIMARY KEY,
	length INTEGER NOT NULL
);

-- Index for efficient word lookups
CREATE INDEX IF NOT EXISTS idx_dictionary_length ON dictionary(length);
`

// SQL renders puzzles as a SQL script.
func SQL(puzzles []*puzzle.Puzzle, cfg SQLConfig) string {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultSQLConfig().BatchSize
	}

	var b strings.Builder
	if cfg.IncludeSchema {
		b.WriteString(puzzleSchema)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "-- Generated %d puzzles\n\n", len(puzzles))

	for start := 0; start < len(puzzles); start += cfg.BatchSize {
		end := start + cfg.BatchSize
		if end > len(puzzles) {
			end = len(puzzles)
		}
		writePuzzleInsert(&b, puzzles[start:end])
	}
	return b.String()
}

func writePuzzleInsert(b *strings.Builder, chunk []*puzzle.Puzzle) {
	b.WriteString("INSERT INTO puzzles (id, start_word, target_word, min_steps, difficulty) VALUES\n")
	for i, p := range chunk {
		fmt.Fprintf(b, "\t('%s', '%s', '%s', %d, '%s')",
			escape(p.ID), escape(p.Start), escape(p.Target), p.MinSteps, escape(p.Difficulty))
		if i < len(chunk)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString(";\n")
		}
	}
}

// DictionarySQL renders the normalized dictionary as a SQL script. This is a
// direct transformation of the word list; no path search is involved.
func DictionarySQL(dict *words.List, cfg SQLConfig) string {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultSQLConfig().BatchSize
	}

	var b strings.Builder
	if cfg.IncludeSchema {
		b.WriteString(dictionarySchema)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "-- Generated %d dictionary words\n\n", dict.Len())

	ws := dict.Words
	for start := 0; start < len(ws); start += cfg.BatchSize {
		end := start + cfg.BatchSize
		if end > len(ws) {
			end = len(ws)
		}
		writeDictionaryInsert(&b, ws[start:end])
	}
	return b.String()
}

func writeDictionaryInsert(b *strings.Builder, chunk []string) {
	b.WriteString("INSERT OR IGNORE INTO dictionary (word, length) VALUES\n")
	for i, w := range chunk {
		fmt.Fprintf(b, "\t('%s', %d)", escape(w), len(w))
		if i < len(chunk)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString(";\n")
		}
	}
}

// escape doubles single quotes for safe SQL string literals.
func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
