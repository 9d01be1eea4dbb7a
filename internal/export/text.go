// internal/export/text.go
//
// Plain-text rendering of puzzle batches: one line per puzzle in the form
//   start -> target: start -> w1 -> ... -> target

package export

import (
	"strings"

	"github.com/robalobadob/wordladder/internal/puzzle"
)

// Text renders puzzles as delimited text lines.
func Text(puzzles []*puzzle.Puzzle) string {
	var b strings.Builder
	for _, p := range puzzles {
		b.WriteString(p.Start)
		b.WriteString(" -> ")
		b.WriteString(p.Target)
		b.WriteString(": ")
		b.WriteString(strings.Join(p.Path, " -> "))
		b.WriteString("\n")
	}
	return b.String()
}
