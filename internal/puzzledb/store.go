// internal/puzzledb/store.go
//
// store.Store adapter over the SQLite handle, so the delivery API can serve
// either from memory or from a generated database file. The path column is
// not persisted, so puzzles read back carry an empty Path.

package puzzledb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/robalobadob/wordladder/internal/puzzle"
	"github.com/robalobadob/wordladder/internal/store"
)

type dbStore struct {
	d *DB
}

// Store exposes the database as a store.Store.
func (d *DB) Store() store.Store {
	return dbStore{d: d}
}

func (s dbStore) Put(ctx context.Context, puzzles []*puzzle.Puzzle) error {
	return s.d.InsertPuzzles(ctx, puzzles)
}

func (s dbStore) Get(ctx context.Context, id string) (*puzzle.Puzzle, error) {
	r, err := s.d.ByID(ctx, id)
	return fromRow(r, err)
}

func (s dbStore) Random(ctx context.Context, difficulty string) (*puzzle.Puzzle, error) {
	r, err := s.d.Random(ctx, difficulty)
	return fromRow(r, err)
}

func (s dbStore) All(ctx context.Context) ([]*puzzle.Puzzle, error) {
	rows, err := s.d.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*puzzle.Puzzle, len(rows))
	for i, r := range rows {
		out[i] = rowToPuzzle(r)
	}
	return out, nil
}

func (s dbStore) Counts(ctx context.Context) (map[string]int, error) {
	return s.d.Counts(ctx)
}

func fromRow(r Row, err error) (*puzzle.Puzzle, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rowToPuzzle(r), nil
}

func rowToPuzzle(r Row) *puzzle.Puzzle {
	return &puzzle.Puzzle{
		ID:         r.ID,
		Start:      r.Start,
		Target:     r.Target,
		MinSteps:   r.MinSteps,
		Difficulty: r.Difficulty,
	}
}
