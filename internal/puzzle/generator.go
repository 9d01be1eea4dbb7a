// internal/puzzle/generator.go
//
// Puzzle sampling and batch generation.
//
// Responsibilities:
//   - Draw random equal-length start/target pairs from the base word list.
//   - Keep only pairs whose shortest path lands in the requested band.
//   - Deduplicate accepted pairs globally across a generation run.
//   - Enforce a bounded attempt budget per requested puzzle and report a
//     shortfall instead of looping forever when a band cannot be filled.
//   - Spread a requested total across bands by proportion and generate the
//     bands in parallel.
//
// Concurrency:
//   The word graph is read-only, so band workers share it freely. The dedupe
//   set and ID counter are the only mutable shared state; both live behind
//   one mutex. Each worker owns an independently seeded math/rand source so
//   parallel samplers do not draw correlated pairs.

package puzzle

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordladder/internal/graph"
	"github.com/robalobadob/wordladder/internal/words"
)

// DefaultMaxAttempts bounds sampling per requested puzzle. Exposed as a
// config value so tests can force exhaustion with a tiny graph.
const DefaultMaxAttempts = 250

var (
	// ErrNoBaseWords is returned when no word length has at least two
	// eligible base words, making pair sampling impossible.
	ErrNoBaseWords = errors.New("puzzle: no word length has two or more base words")

	// ErrNoPath is the soft failure for an explicitly requested pair with
	// no connecting ladder.
	ErrNoPath = errors.New("puzzle: no path between the requested words")

	// ErrUnknownBand is returned for a difficulty label outside the
	// configured bands.
	ErrUnknownBand = errors.New("puzzle: unknown difficulty band")
)

// Unclassified is reported when a valid ladder's step count falls outside
// every configured band.
const Unclassified = "unclassified"

// Generator samples puzzles from a built word graph and a base word list.
type Generator struct {
	graph       *graph.WordGraph
	bands       Bands
	maxAttempts int

	baseByLen map[int][]string // only lengths with >= 2 base words
	lengths   []int            // sorted keys of baseByLen

	mu     sync.Mutex
	dedupe map[string]struct{}
	ids    *idCounter
}

// NewGenerator builds a Generator. maxAttempts <= 0 selects the default
// budget. Base words missing from the graph never reach the sampler; the
// words loader has already restricted the base list to dictionary members.
func NewGenerator(g *graph.WordGraph, base *words.List, bands Bands, maxAttempts int) (*Generator, error) {
	if err := bands.Validate(); err != nil {
		return nil, err
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	byLen := make(map[int][]string)
	for length, ws := range base.ByLength() {
		if len(ws) >= 2 {
			byLen[length] = ws
		}
	}
	lengths := make([]int, 0, len(byLen))
	for l := range byLen {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	return &Generator{
		graph:       g,
		bands:       bands,
		maxAttempts: maxAttempts,
		baseByLen:   byLen,
		lengths:     lengths,
		dedupe:      make(map[string]struct{}),
		ids:         newIDCounter(),
	}, nil
}

// Bands returns the generator's difficulty configuration.
func (gen *Generator) Bands() Bands { return gen.bands }

// ForPair builds the puzzle for an explicitly requested pair. Unlike
// sampling, out-of-band step counts are reported as Unclassified rather
// than rejected: the caller asked for exactly this pair.
func (gen *Generator) ForPair(start, target string) (*Puzzle, error) {
	if !gen.graph.Contains(start) {
		return nil, fmt.Errorf("puzzle: word %q is not in the dictionary", start)
	}
	if !gen.graph.Contains(target) {
		return nil, fmt.Errorf("puzzle: word %q is not in the dictionary", target)
	}
	if len(start) != len(target) {
		return nil, fmt.Errorf("puzzle: %q and %q have different lengths", start, target)
	}

	path, ok := gen.graph.ShortestPath(start, target)
	if !ok {
		return nil, ErrNoPath
	}
	steps := len(path) - 1
	label, classified := gen.bands.Classify(steps)
	if !classified {
		label = Unclassified
	}

	gen.mu.Lock()
	id := gen.ids.next(start, target)
	gen.mu.Unlock()

	return &Puzzle{
		ID:         id,
		Start:      start,
		Target:     target,
		MinSteps:   steps,
		Difficulty: label,
		Path:       path,
	}, nil
}

// RandomPair draws two distinct base words of equal length.
func (gen *Generator) RandomPair() (string, string, error) {
	if len(gen.lengths) == 0 {
		return "", "", ErrNoBaseWords
	}
	return gen.randomPair(newRand())
}

func (gen *Generator) randomPair(rng *rand.Rand) (string, string, error) {
	if len(gen.lengths) == 0 {
		return "", "", ErrNoBaseWords
	}
	ws := gen.baseByLen[gen.lengths[rng.Intn(len(gen.lengths))]]
	start := ws[rng.Intn(len(ws))]
	target := ws[rng.Intn(len(ws))]
	for target == start {
		target = ws[rng.Intn(len(ws))]
	}
	return start, target, nil
}

// BatchResult reports a generation run. Shortfall is requested minus
// produced; a non-zero shortfall is a recoverable condition, not an error.
type BatchResult struct {
	Puzzles   []*Puzzle
	Shortfall int
}

// Batch generates up to count puzzles in the named band. The attempt budget
// is count*maxAttempts overall; when it runs out the remaining demand is
// returned as a shortfall.
func (gen *Generator) Batch(ctx context.Context, label string, count int) (BatchResult, error) {
	if _, ok := gen.bands.ByLabel(label); !ok {
		return BatchResult{}, fmt.Errorf("%w: %q", ErrUnknownBand, label)
	}
	if len(gen.lengths) == 0 {
		return BatchResult{}, ErrNoBaseWords
	}
	return gen.fillBand(ctx, label, count, newRand())
}

// fillBand is the single-band sampling loop shared by Batch and Distribution.
func (gen *Generator) fillBand(ctx context.Context, label string, count int, rng *rand.Rand) (BatchResult, error) {
	var res BatchResult
	budget := count * gen.maxAttempts

	for len(res.Puzzles) < count && budget > 0 {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}
		budget--

		start, target, err := gen.randomPair(rng)
		if err != nil {
			return res, err
		}
		path, ok := gen.graph.ShortestPath(start, target)
		if !ok {
			continue
		}
		steps := len(path) - 1
		got, classified := gen.bands.Classify(steps)
		if !classified || got != label {
			continue
		}
		if p, accepted := gen.accept(start, target, steps, got, path); accepted {
			res.Puzzles = append(res.Puzzles, p)
		}
	}

	res.Shortfall = count - len(res.Puzzles)
	return res, nil
}

// accept claims the pair's dedupe slot and mints the puzzle under the lock.
// Acceptance is the one serialization point between parallel band workers.
func (gen *Generator) accept(start, target string, steps int, label string, path []string) (*Puzzle, bool) {
	key := PairKey(start, target)

	gen.mu.Lock()
	defer gen.mu.Unlock()
	if _, dup := gen.dedupe[key]; dup {
		return nil, false
	}
	gen.dedupe[key] = struct{}{}
	return &Puzzle{
		ID:         gen.ids.next(start, target),
		Start:      start,
		Target:     target,
		MinSteps:   steps,
		Difficulty: label,
		Path:       path,
	}, true
}

// Distribution spreads total across bands by proportion and generates each
// band concurrently. Weights are relative shares and need not sum to one;
// each band gets the floor of its exact share and the leftover lands on the
// band with the largest weight, so the per-band counts always sum to total.
// Weights that do not mention a band contribute zero to it.
func (gen *Generator) Distribution(ctx context.Context, total int, weights map[string]float64) (BatchResult, error) {
	if len(gen.lengths) == 0 {
		return BatchResult{}, ErrNoBaseWords
	}
	for label := range weights {
		if _, ok := gen.bands.ByLabel(label); !ok {
			return BatchResult{}, fmt.Errorf("%w: %q", ErrUnknownBand, label)
		}
	}

	counts := splitByWeight(total, gen.bands.Labels(), weights)

	results := make([]BatchResult, len(gen.bands))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, label := range gen.bands.Labels() {
		if counts[i] == 0 {
			continue
		}
		i, label := i, label
		rng := newRand()
		eg.Go(func() error {
			r, err := gen.fillBand(egCtx, label, counts[i], rng)
			results[i] = r
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return BatchResult{}, err
	}

	var merged BatchResult
	for _, r := range results {
		merged.Puzzles = append(merged.Puzzles, r.Puzzles...)
		merged.Shortfall += r.Shortfall
	}
	return merged, nil
}

// splitByWeight divides total across labels in proportion to their weights,
// treating them as relative shares. Each label gets the floor of its exact
// share; the leftover goes to the label with the largest weight, so the
// counts are non-negative and always sum to total.
func splitByWeight(total int, labels []string, weights map[string]float64) []int {
	counts := make([]int, len(labels))
	var wsum float64
	for _, label := range labels {
		wsum += weights[label]
	}
	if total <= 0 || wsum <= 0 {
		return counts
	}

	largest := 0
	assigned := 0
	for i, label := range labels {
		// The epsilon keeps exact shares like 4.0 from flooring to 3 after
		// float division.
		counts[i] = int(float64(total)*(weights[label]/wsum) + 1e-9)
		assigned += counts[i]
		if weights[label] > weights[labels[largest]] {
			largest = i
		}
	}
	counts[largest] += total - assigned
	return counts
}

// newRand returns a math/rand source seeded from crypto/rand so concurrent
// workers never share a seed.
func newRand() *rand.Rand {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return rand.New(rand.NewSource(int64(binary.BigEndian.Uint64(b[:]))))
}
