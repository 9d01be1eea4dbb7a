// internal/puzzle/puzzle.go
//
// Core type definitions for generated puzzles.
// Defines:
//   - Puzzle: one accepted start/target pair with its minimal ladder.
//   - idCounter: deterministic start_target_NNN identifier assignment.

package puzzle

import (
	"fmt"
	"strings"
)

// Puzzle is an immutable record produced by the generator. Path is the
// shortest ladder between Start and Target, so MinSteps == len(Path)-1 is
// the true minimum, not merely the length of some sampled path.
type Puzzle struct {
	ID         string   `json:"id"`
	Start      string   `json:"start"`
	Target     string   `json:"end"`
	MinSteps   int      `json:"min_steps"`
	Difficulty string   `json:"difficulty"`
	Path       []string `json:"path"`
}

// PairKey normalizes an unordered start/target pair into a dedupe key.
func PairKey(a, b string) string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + ":" + b
}

// idCounter hands out stable puzzle IDs of the form start_target_NNN.
// The per-pair ordinal keeps IDs collision-free even if the same pair is
// exported more than once across runs concatenated into one script.
type idCounter struct {
	seen map[string]int
}

func newIDCounter() *idCounter {
	return &idCounter{seen: make(map[string]int)}
}

// next returns the ID for the given pair and advances its ordinal.
func (c *idCounter) next(start, target string) string {
	base := start + "_" + target
	c.seen[base]++
	return fmt.Sprintf("%s_%03d", base, c.seen[base])
}
