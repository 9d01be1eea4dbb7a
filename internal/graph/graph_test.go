package graph

import (
	"testing"

	"github.com/robalobadob/wordladder/internal/words"
)

func build(t *testing.T, ws ...string) *WordGraph {
	t.Helper()
	g, err := Build(words.Normalize(ws))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestBuild_EmptyListFails(t *testing.T) {
	if _, err := Build(words.Normalize(nil)); err != words.ErrEmptyDictionary {
		t.Fatalf("expected ErrEmptyDictionary, got %v", err)
	}
}

func TestBuild_Adjacency(t *testing.T) {
	g := build(t, "cat", "cot", "cog", "dog", "bat", "bad")

	if g.NodeCount() != 6 {
		t.Errorf("expected 6 nodes, got %d", g.NodeCount())
	}
	// cat-cot, cat-bat, cot-cog, cog-dog, bat-bad
	if g.EdgeCount() != 5 {
		t.Errorf("expected 5 edges, got %d", g.EdgeCount())
	}

	nbrs := g.Neighbors("cat")
	want := []string{"bat", "cot"}
	if len(nbrs) != len(want) {
		t.Fatalf("neighbors of cat: got %v", nbrs)
	}
	for i := range want {
		if nbrs[i] != want[i] {
			t.Errorf("neighbors of cat: got %v, want %v", nbrs, want)
		}
	}
}

// Every edge connects equal-length words differing in exactly one position,
// adjacency is symmetric, and no word neighbors itself.
func TestBuild_EdgeInvariants(t *testing.T) {
	g := build(t, "cat", "cot", "cog", "dog", "bat", "bad", "cold", "cord", "card", "ward", "warm")

	for _, w := range []string{"cat", "cot", "cog", "dog", "bat", "bad", "cold", "cord", "card", "ward", "warm"} {
		for _, n := range g.Neighbors(w) {
			if n == w {
				t.Errorf("%q neighbors itself", w)
			}
			if !AreNeighbors(w, n) {
				t.Errorf("edge %q-%q violates one-letter rule", w, n)
			}
			back := false
			for _, m := range g.Neighbors(n) {
				if m == w {
					back = true
				}
			}
			if !back {
				t.Errorf("edge %q-%q is not symmetric", w, n)
			}
		}
	}
}

func TestBuild_DifferentLengthsNeverAdjacent(t *testing.T) {
	g := build(t, "cat", "cats", "cots", "cot")
	for _, n := range g.Neighbors("cat") {
		if len(n) != 3 {
			t.Errorf("cat adjacent to different-length word %q", n)
		}
	}
}

func TestNeighbors_AbsentOrIsolated(t *testing.T) {
	g := build(t, "cat", "dog", "zip")
	if nbrs := g.Neighbors("cat"); len(nbrs) != 0 {
		t.Errorf("isolated word should have no neighbors, got %v", nbrs)
	}
	if nbrs := g.Neighbors("missing"); len(nbrs) != 0 {
		t.Errorf("absent word should have no neighbors, got %v", nbrs)
	}
	if g.Contains("missing") {
		t.Error("graph should not contain unknown words")
	}
}

func TestAreNeighbors(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"cat", "cot", true},
		{"cat", "cat", false},
		{"cat", "dog", false},
		{"cat", "cats", false},
		{"dat", "dog", false}, // two positions differ
		{"cold", "cord", true},
	}
	for _, c := range cases {
		if got := AreNeighbors(c.a, c.b); got != c.want {
			t.Errorf("AreNeighbors(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
