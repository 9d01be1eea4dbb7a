// internal/puzzledb/puzzledb.go
//
// SQLite persistence for generated puzzles.
// Responsibilities:
//   - Opening a SQLite database file with safe defaults (WAL, busy timeout).
//   - Creating the puzzles/dictionary schema (idempotent).
//   - Bulk-inserting puzzle batches and dictionary words in transactions.
//   - Read queries used by the delivery API: by id, random per difficulty,
//     per-difficulty counts.
//
// The schema matches the SQL script exporter exactly, so a database written
// here and a script written by internal/export load into identical shapes.

package puzzledb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordladder/internal/puzzle"
	"github.com/robalobadob/wordladder/internal/words"
)

const schema = `
CREATE TABLE IF NOT EXISTS puzzles (
	id TEXT PRIMARY KEY,
	start_word TEXT NOT NULL,
	target_word TEXT NOT NULL,
	min_steps INTEGER NOT NULL,
	difficulty TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_puzzles_difficulty ON puzzles(difficulty);
CREATE INDEX IF NOT EXISTS idx_puzzles_steps ON puzzles(min_steps);

CREATE TABLE IF NOT EXISTS dictionary (
	word TEXT PRIMARY KEY,
	length INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_dictionary_length ON dictionary(length);
`

// DB wraps the sql handle with puzzle-shaped helpers.
type DB struct {
	sql *sql.DB
}

// Open opens (and creates if missing) a SQLite database file and ensures
// the schema exists.
//
// - Ensures the parent directory exists for relative DSNs (e.g. ./out/p.db).
// - Configures busy timeout and WAL journaling mode.
func Open(dsn string) (*DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &DB{sql: db}, nil
}

// Close closes the underlying handle.
func (d *DB) Close() error { return d.sql.Close() }

// InsertPuzzles writes a batch inside one transaction. Re-inserting an
// existing id is ignored, so concatenated runs stay idempotent.
func (d *DB) InsertPuzzles(ctx context.Context, puzzles []*puzzle.Puzzle) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO puzzles (id, start_word, target_word, min_steps, difficulty)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, p := range puzzles {
		if _, err := stmt.ExecContext(ctx, p.ID, p.Start, p.Target, p.MinSteps, p.Difficulty); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert puzzle %s: %w", p.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Debug().Int("count", len(puzzles)).Msg("puzzles inserted")
	return nil
}

// InsertDictionary writes the normalized dictionary in one transaction.
func (d *DB) InsertDictionary(ctx context.Context, dict *words.List) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO dictionary (word, length) VALUES (?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, w := range dict.Words {
		if _, err := stmt.ExecContext(ctx, w, len(w)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert word %s: %w", w, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Debug().Int("count", dict.Len()).Msg("dictionary inserted")
	return nil
}

// Row is the stored shape of a puzzle; the full path is not persisted, only
// the five exported columns.
type Row struct {
	ID         string `json:"id"`
	Start      string `json:"start_word"`
	Target     string `json:"target_word"`
	MinSteps   int    `json:"min_steps"`
	Difficulty string `json:"difficulty"`
}

// ByID fetches one puzzle row. Returns sql.ErrNoRows when absent.
func (d *DB) ByID(ctx context.Context, id string) (Row, error) {
	var r Row
	err := d.sql.QueryRowContext(ctx, `
		SELECT id, start_word, target_word, min_steps, difficulty
		FROM puzzles WHERE id = ?`, id,
	).Scan(&r.ID, &r.Start, &r.Target, &r.MinSteps, &r.Difficulty)
	return r, err
}

// Random fetches a random puzzle, optionally restricted to a difficulty.
// Returns sql.ErrNoRows when nothing matches.
func (d *DB) Random(ctx context.Context, difficulty string) (Row, error) {
	q := `SELECT id, start_word, target_word, min_steps, difficulty FROM puzzles`
	args := []any{}
	if difficulty != "" {
		q += ` WHERE difficulty = ?`
		args = append(args, difficulty)
	}
	q += ` ORDER BY RANDOM() LIMIT 1`

	var r Row
	err := d.sql.QueryRowContext(ctx, q, args...).
		Scan(&r.ID, &r.Start, &r.Target, &r.MinSteps, &r.Difficulty)
	return r, err
}

// All returns every stored puzzle ordered by id; used for deterministic
// daily selection.
func (d *DB) All(ctx context.Context) ([]Row, error) {
	rows, err := d.sql.QueryContext(ctx, `
		SELECT id, start_word, target_word, min_steps, difficulty
		FROM puzzles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.Start, &r.Target, &r.MinSteps, &r.Difficulty); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Counts returns stored puzzle counts per difficulty.
func (d *DB) Counts(ctx context.Context) (map[string]int, error) {
	rows, err := d.sql.QueryContext(ctx, `SELECT difficulty, COUNT(1) FROM puzzles GROUP BY difficulty`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var diff string
		var n int
		if err := rows.Scan(&diff, &n); err != nil {
			return nil, err
		}
		out[diff] = n
	}
	return out, rows.Err()
}
