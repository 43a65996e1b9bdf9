package graph

import "sort"

// componentWalker holds the mutable state of one breadth-first sweep.
type componentWalker struct {
	neighbors [][]int // undirected view: u→v and v→u both recorded
	visited   []bool
	queue     []int
}

// Components returns the weakly connected components of g. Edge direction
// is ignored. Each component is sorted ascending and components are ordered
// by their smallest vertex, so an isolated vertex v appears as []int{v}.
// Complexity: O(V + E log E) (neighbor lists are sorted for determinism).
func (g *Graph) Components() [][]int {
	g.mu.RLock()
	n := g.n
	w := &componentWalker{
		neighbors: make([][]int, n),
		visited:   make([]bool, n),
		queue:     make([]int, 0, n),
	}
	for e := range g.edges {
		if e.From == e.To {
			continue // loops do not connect anything
		}
		w.neighbors[e.From] = append(w.neighbors[e.From], e.To)
		w.neighbors[e.To] = append(w.neighbors[e.To], e.From)
	}
	g.mu.RUnlock()

	for _, nbrs := range w.neighbors {
		sort.Ints(nbrs)
	}

	var out [][]int
	for start := 0; start < n; start++ {
		if w.visited[start] {
			continue
		}
		comp := w.sweep(start)
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out
}

// sweep runs breadth-first search from start and returns every vertex reached.
func (w *componentWalker) sweep(start int) []int {
	w.queue = w.queue[:0]
	w.visited[start] = true
	w.queue = append(w.queue, start)

	var comp []int
	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]
		comp = append(comp, u)
		for _, v := range w.neighbors[u] {
			if !w.visited[v] {
				w.visited[v] = true
				w.queue = append(w.queue, v)
			}
		}
	}

	return comp
}
