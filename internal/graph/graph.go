// internal/graph/graph.go
//
// Word-adjacency graph for ladder puzzles.
//
// Responsibilities:
//   - Build an undirected graph whose nodes are words and whose edges connect
//     words of equal length differing in exactly one letter position.
//   - Answer neighbor and membership queries after the build.
//
// Construction:
//   Pairwise comparison of all words is O(n²) and does not scale to the
//   15k–25k word dictionaries this tool targets. Instead words are bucketed
//   by wildcard pattern: "cold" yields "_old", "c_ld", "co_d", "col_", and
//   any two words sharing a pattern bucket differ in exactly that position.
//   Build cost is O(n·L) pattern insertions plus edge emission within the
//   (small) buckets.
//
// Concurrency:
//   The graph is immutable once Build returns. Any number of goroutines may
//   query it concurrently without synchronization.

package graph

import (
	"sort"
	"strings"

	"github.com/robalobadob/wordladder/internal/words"
)

// patternWildcard replaces the varying position in a bucket key.
const patternWildcard = '_'

// WordGraph is the adjacency structure over a normalized word list.
// Neighbor slices are sorted so iteration order (and therefore BFS
// tie-breaking) is stable for a given dictionary.
type WordGraph struct {
	adj       map[string][]string
	edgeCount int
}

// Build constructs the graph from an already-normalized word list.
// Returns words.ErrEmptyDictionary when the list has no words.
func Build(dict *words.List) (*WordGraph, error) {
	if dict == nil || dict.Len() == 0 {
		return nil, words.ErrEmptyDictionary
	}

	// Pattern bucket -> words sharing it. Words of different lengths can
	// never collide: the key length always matches the word length.
	buckets := make(map[string][]string)
	for _, w := range dict.Words {
		for i := 0; i < len(w); i++ {
			key := w[:i] + string(patternWildcard) + w[i+1:]
			buckets[key] = append(buckets[key], w)
		}
	}

	g := &WordGraph{adj: make(map[string][]string, dict.Len())}
	for _, w := range dict.Words {
		g.adj[w] = nil
	}

	// Emit edges within each bucket. seen guards against double edges for
	// word pairs that differ in one position but share several patterns
	// (impossible by construction, kept cheap) and against self matches.
	seen := make(map[[2]string]struct{})
	for _, members := range buckets {
		if len(members) < 2 {
			continue
		}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				a, b := members[i], members[j]
				if a == b {
					continue
				}
				key := pairKey(a, b)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				g.adj[a] = append(g.adj[a], b)
				g.adj[b] = append(g.adj[b], a)
				g.edgeCount++
			}
		}
	}

	for w := range g.adj {
		sort.Strings(g.adj[w])
	}
	return g, nil
}

// pairKey normalizes an unordered word pair into a map key.
func pairKey(a, b string) [2]string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return [2]string{a, b}
}

// Contains reports whether w is a node of the graph.
func (g *WordGraph) Contains(w string) bool {
	_, ok := g.adj[w]
	return ok
}

// Neighbors returns the words adjacent to w, sorted. The result is nil when
// w is isolated or absent; callers must not mutate it.
func (g *WordGraph) Neighbors(w string) []string {
	return g.adj[w]
}

// NodeCount returns the number of words in the graph.
func (g *WordGraph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges.
func (g *WordGraph) EdgeCount() int { return g.edgeCount }

// AreNeighbors reports whether a and b have the same length and differ in
// exactly one letter position. This is a pure string check and also holds
// for words outside the graph.
func AreNeighbors(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	diff := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}
	return diff == 1
}
