// internal/puzzle/difficulty.go
//
// Difficulty classification for generated and verified ladders.
//
// Bands are a configuration input, not a constant: historical versions of
// this tool shipped with different boundaries, so callers load them from a
// YAML file or take the defaults. A step count outside every band has no
// classification; the sampler treats that as "reject the candidate".

package puzzle

import (
	"fmt"
	"sort"
)

// Band labels one inclusive step-count range. MaxSteps <= 0 means the band
// is open-ended above MinSteps.
type Band struct {
	Label    string `yaml:"label"`
	MinSteps int    `yaml:"min_steps"`
	MaxSteps int    `yaml:"max_steps"`
}

// contains reports whether steps falls inside the band.
func (b Band) contains(steps int) bool {
	if steps < b.MinSteps {
		return false
	}
	return b.MaxSteps <= 0 || steps <= b.MaxSteps
}

// Bands is an ordered set of difficulty bands.
type Bands []Band

// DefaultBands matches the shipped data set: easy 3–4, medium 5–7, hard 8+.
func DefaultBands() Bands {
	return Bands{
		{Label: "easy", MinSteps: 3, MaxSteps: 4},
		{Label: "medium", MinSteps: 5, MaxSteps: 7},
		{Label: "hard", MinSteps: 8, MaxSteps: 0},
	}
}

// Validate checks that bands are well-formed: non-empty, positively sized,
// contiguous, non-overlapping, and only the last band may be open-ended.
func (bs Bands) Validate() error {
	if len(bs) == 0 {
		return fmt.Errorf("difficulty: no bands configured")
	}
	sorted := make(Bands, len(bs))
	copy(sorted, bs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].MinSteps < sorted[j].MinSteps })

	for i, b := range sorted {
		if b.Label == "" {
			return fmt.Errorf("difficulty: band %d has no label", i)
		}
		if b.MinSteps < 1 {
			return fmt.Errorf("difficulty: band %q min_steps must be >= 1", b.Label)
		}
		if b.MaxSteps > 0 && b.MaxSteps < b.MinSteps {
			return fmt.Errorf("difficulty: band %q has max_steps < min_steps", b.Label)
		}
		if b.MaxSteps <= 0 && i != len(sorted)-1 {
			return fmt.Errorf("difficulty: only the last band may be open-ended, %q is not last", b.Label)
		}
		if i > 0 {
			prev := sorted[i-1]
			if b.MinSteps != prev.MaxSteps+1 {
				return fmt.Errorf("difficulty: bands %q and %q are not contiguous", prev.Label, b.Label)
			}
		}
	}
	return nil
}

// Classify maps a step count to its band label. ok is false when the count
// falls outside every band; that is a filtering signal, not an error.
func (bs Bands) Classify(steps int) (label string, ok bool) {
	for _, b := range bs {
		if b.contains(steps) {
			return b.Label, true
		}
	}
	return "", false
}

// ByLabel returns the band with the given label.
func (bs Bands) ByLabel(label string) (Band, bool) {
	for _, b := range bs {
		if b.Label == label {
			return b, true
		}
	}
	return Band{}, false
}

// Labels returns the band labels in configured order.
func (bs Bands) Labels() []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = b.Label
	}
	return out
}
