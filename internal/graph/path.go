// internal/graph/path.go
//
// Breadth-first shortest path over the word graph.
//
// BFS explores in non-decreasing distance order over unweighted edges, so the
// first time the target is discovered the reconstructed path is guaranteed
// minimal. Ties between equally short paths fall to neighbor iteration order,
// which is stable because neighbor slices are sorted at build time.

package graph

// ShortestPath returns the minimal ladder from start to target, inclusive of
// both endpoints, and true on success. It returns (nil, false) when either
// word is absent from the graph, the lengths differ, or no path connects
// them; these are normal negative results, not errors.
//
// start == target yields a single-element, zero-step path.
func (g *WordGraph) ShortestPath(start, target string) ([]string, bool) {
	if !g.Contains(start) || !g.Contains(target) {
		return nil, false
	}
	if len(start) != len(target) {
		return nil, false
	}
	if start == target {
		return []string{start}, true
	}

	parent := map[string]string{start: start}
	queue := []string{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == target {
			return reconstruct(parent, start, target), true
		}
		for _, nbr := range g.Neighbors(cur) {
			if _, visited := parent[nbr]; visited {
				continue
			}
			parent[nbr] = cur
			queue = append(queue, nbr)
		}
	}
	return nil, false
}

// MinSteps returns the shortest step count between start and target, and
// false when no path exists.
func (g *WordGraph) MinSteps(start, target string) (int, bool) {
	path, ok := g.ShortestPath(start, target)
	if !ok {
		return 0, false
	}
	return len(path) - 1, true
}

// reconstruct walks parent pointers from target back to start and reverses.
func reconstruct(parent map[string]string, start, target string) []string {
	path := []string{target}
	for cur := target; cur != start; cur = parent[cur] {
		path = append(path, parent[cur])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
