// internal/store/memory.go
//
// In-memory puzzle store.
// This is a lightweight holding layer used by the delivery API when puzzles
// were generated in-process and no database path is configured.
//
// Characteristics:
//   - Stores *puzzle.Puzzle keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"sync"

	"github.com/robalobadob/wordladder/internal/puzzle"
)

// ErrNotFound is returned when no puzzle matches a lookup.
var ErrNotFound = errors.New("store: puzzle not found")

// Store is the read/write interface the delivery API consumes.
// Implementations may be backed by memory (this package) or SQLite.
type Store interface {
	// Put persists a batch of puzzles.
	Put(ctx context.Context, puzzles []*puzzle.Puzzle) error

	// Get retrieves a puzzle by ID; ErrNotFound when absent.
	Get(ctx context.Context, id string) (*puzzle.Puzzle, error)

	// Random returns a random puzzle, optionally filtered by difficulty;
	// ErrNotFound when nothing matches.
	Random(ctx context.Context, difficulty string) (*puzzle.Puzzle, error)

	// All returns every stored puzzle ordered by ID.
	All(ctx context.Context) ([]*puzzle.Puzzle, error)

	// Counts returns stored puzzle counts per difficulty.
	Counts(ctx context.Context) (map[string]int, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex
	puzzles map[string]*puzzle.Puzzle
}

// NewMemory constructs an empty in-memory Store.
func NewMemory() Store {
	return &memory{puzzles: make(map[string]*puzzle.Puzzle)}
}

func (m *memory) Put(_ context.Context, puzzles []*puzzle.Puzzle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range puzzles {
		m.puzzles[p.ID] = p
	}
	return nil
}

func (m *memory) Get(_ context.Context, id string) (*puzzle.Puzzle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.puzzles[id]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Random(_ context.Context, difficulty string) (*puzzle.Puzzle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var candidates []*puzzle.Puzzle
	for _, p := range m.puzzles {
		if difficulty == "" || p.Difficulty == difficulty {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNotFound
	}
	return candidates[rand.Intn(len(candidates))], nil
}

func (m *memory) All(_ context.Context) ([]*puzzle.Puzzle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*puzzle.Puzzle, 0, len(m.puzzles))
	for _, p := range m.puzzles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memory) Counts(_ context.Context) (map[string]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]int)
	for _, p := range m.puzzles {
		out[p.Difficulty]++
	}
	return out, nil
}
