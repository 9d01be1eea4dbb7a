// internal/puzzle/verify.go
//
// Ladder verification for externally supplied word sequences.
//
// The verifier checks the sequence it is given; it never substitutes a
// better one. A valid ladder may still be longer than the shortest possible
// ladder, so the result carries both the sequence's own step count and,
// when a path exists, the true minimum for comparison.

package puzzle

import (
	"strings"

	"github.com/robalobadob/wordladder/internal/graph"
)

// VerifyFailure says why a sequence was rejected.
type VerifyFailure string

const (
	// FailTooShort: fewer than two words.
	FailTooShort VerifyFailure = "too_short"
	// FailUnknownWord: a word is not in the dictionary. BadWord names it.
	FailUnknownWord VerifyFailure = "unknown_word"
	// FailNotAdjacent: consecutive words are not one letter apart.
	// BadIndex is the position of the first word of the offending pair.
	FailNotAdjacent VerifyFailure = "not_adjacent"
)

// VerifyResult reports the outcome of a verification.
type VerifyResult struct {
	Valid      bool          `json:"valid"`
	Steps      int           `json:"steps,omitempty"`
	Difficulty string        `json:"difficulty,omitempty"`
	MinSteps   int           `json:"min_steps,omitempty"`
	Optimal    bool          `json:"optimal,omitempty"`
	Failure    VerifyFailure `json:"failure,omitempty"`
	BadWord    string        `json:"bad_word,omitempty"`
	BadIndex   int           `json:"bad_index,omitempty"`
}

// Verify checks that seq is a valid ladder over g, in order: length,
// dictionary membership (first offender wins), pairwise adjacency. On
// success it classifies the step count against bands; counts outside every
// band report Unclassified, which is informational, not a failure.
func Verify(g *graph.WordGraph, bands Bands, seq []string) VerifyResult {
	if len(seq) < 2 {
		return VerifyResult{Failure: FailTooShort}
	}

	for _, w := range seq {
		if !g.Contains(w) {
			return VerifyResult{Failure: FailUnknownWord, BadWord: w}
		}
	}

	for i := 0; i+1 < len(seq); i++ {
		if !graph.AreNeighbors(seq[i], seq[i+1]) {
			return VerifyResult{Failure: FailNotAdjacent, BadIndex: i}
		}
	}

	steps := len(seq) - 1
	label, ok := bands.Classify(steps)
	if !ok {
		label = Unclassified
	}

	res := VerifyResult{Valid: true, Steps: steps, Difficulty: label}
	if min, found := g.MinSteps(seq[0], seq[len(seq)-1]); found {
		res.MinSteps = min
		res.Optimal = min == steps
	}
	return res
}

// ParseSequence tokenizes the CLI's comma-separated ladder syntax,
// lowercasing and trimming each word and dropping empty fields.
func ParseSequence(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		w := strings.TrimSpace(strings.ToLower(part))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
