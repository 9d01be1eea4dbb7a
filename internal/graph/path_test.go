package graph

import (
	"testing"

	"github.com/robalobadob/wordladder/internal/words"
)

func TestShortestPath_CatToDog(t *testing.T) {
	g := build(t, "cat", "cot", "cog", "dog", "bat", "bad")

	path, ok := g.ShortestPath("cat", "dog")
	if !ok {
		t.Fatal("expected a path from cat to dog")
	}
	want := []string{"cat", "cot", "cog", "dog"}
	if len(path) != len(want) {
		t.Fatalf("expected %v, got %v", want, path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, path)
		}
	}
	if steps, _ := g.MinSteps("cat", "dog"); steps != 3 {
		t.Errorf("expected 3 steps, got %d", steps)
	}
}

func TestShortestPath_SameWord(t *testing.T) {
	g := build(t, "cat", "cot")
	path, ok := g.ShortestPath("cat", "cat")
	if !ok || len(path) != 1 || path[0] != "cat" {
		t.Fatalf("expected zero-step single-word path, got %v (%v)", path, ok)
	}
}

func TestShortestPath_NegativeResults(t *testing.T) {
	g := build(t, "cat", "cot", "cold", "warm", "zip")

	if _, ok := g.ShortestPath("cat", "missing"); ok {
		t.Error("absent target must yield no path")
	}
	if _, ok := g.ShortestPath("missing", "cat"); ok {
		t.Error("absent start must yield no path")
	}
	if _, ok := g.ShortestPath("cat", "cold"); ok {
		t.Error("different lengths must yield no path")
	}
	if _, ok := g.ShortestPath("cat", "zip"); ok {
		t.Error("disconnected words must yield no path")
	}
}

// Compare BFS against exhaustive enumeration of simple paths on a small
// graph to confirm minimality.
func TestShortestPath_OptimalAgainstExhaustive(t *testing.T) {
	wordSet := []string{"cat", "cot", "cog", "dog", "dot", "cad", "cod", "bat", "bad", "bod"}
	g := build(t, wordSet...)

	for _, start := range wordSet {
		for _, target := range wordSet {
			bfsPath, ok := g.ShortestPath(start, target)
			best := exhaustiveShortest(g, start, target)
			if best < 0 {
				if ok {
					t.Errorf("%s->%s: BFS found a path where none exists", start, target)
				}
				continue
			}
			if !ok {
				t.Errorf("%s->%s: BFS missed an existing path", start, target)
				continue
			}
			if len(bfsPath)-1 != best {
				t.Errorf("%s->%s: BFS %d steps, exhaustive %d", start, target, len(bfsPath)-1, best)
			}
		}
	}
}

// exhaustiveShortest explores all simple paths by DFS and returns the
// minimal step count, or -1 when unreachable.
func exhaustiveShortest(g *WordGraph, start, target string) int {
	best := -1
	visited := map[string]bool{start: true}
	var dfs func(cur string, steps int)
	dfs = func(cur string, steps int) {
		if cur == target {
			if best < 0 || steps < best {
				best = steps
			}
			return
		}
		for _, n := range g.Neighbors(cur) {
			if visited[n] {
				continue
			}
			visited[n] = true
			dfs(n, steps+1)
			visited[n] = false
		}
	}
	dfs(start, 0)
	return best
}

func TestShortestPath_ConcurrentReads(t *testing.T) {
	g := build(t, "cat", "cot", "cog", "dog", "bat", "bad")

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				if _, ok := g.ShortestPath("cat", "dog"); !ok {
					t.Error("lost path under concurrent reads")
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

func buildFromList(t *testing.T, l *words.List) *WordGraph {
	t.Helper()
	g, err := Build(l)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// The embedded default lists must form a usable graph; guards against list
// edits that orphan the out-of-the-box experience.
func TestBuild_EmbeddedDefaults(t *testing.T) {
	lists, err := words.Load("", "")
	if err != nil {
		t.Fatal(err)
	}
	g := buildFromList(t, lists.Dictionary)
	if g.EdgeCount() == 0 {
		t.Fatal("embedded dictionary builds an edgeless graph")
	}
	if _, ok := g.ShortestPath("cat", "dog"); !ok {
		t.Error("expected cat->dog to be solvable with embedded defaults")
	}
}
