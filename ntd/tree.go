// File: tree.go
// Role: rooted tree over node ids 0..n-1.

package ntd

import "fmt"

// Tree is a rooted tree skeleton. Every node has at most one parent; the
// parent relation is fixed once set.
type Tree struct {
	n        int
	parent   []int // -1 when unset
	children [][]int
}

// NewTree returns a Tree with n parentless nodes.
func NewTree(n int) (*Tree, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNodeOutOfRange, n)
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	return &Tree{n: n, parent: parent, children: make([][]int, n)}, nil
}

// NodeCount returns the number of nodes.
func (t *Tree) NodeCount() int { return t.n }

// AddChild makes q a child of p. Children keep insertion order.
// Returns ErrNodeOutOfRange or ErrParentExists.
func (t *Tree) AddChild(p, q int) error {
	if p < 0 || p >= t.n || q < 0 || q >= t.n {
		return fmt.Errorf("%w: AddChild(%d,%d) with %d nodes", ErrNodeOutOfRange, p, q, t.n)
	}
	if t.parent[q] >= 0 {
		return fmt.Errorf("%w: node %d already has parent %d", ErrParentExists, q, t.parent[q])
	}
	t.parent[q] = p
	t.children[p] = append(t.children[p], q)

	return nil
}

// Parent returns the parent of q and whether one exists.
func (t *Tree) Parent(q int) (int, bool) {
	if q < 0 || q >= t.n || t.parent[q] < 0 {
		return -1, false
	}
	return t.parent[q], true
}

// Children returns a copy of p's children in insertion order.
func (t *Tree) Children(p int) []int {
	if p < 0 || p >= t.n {
		return nil
	}
	return append([]int(nil), t.children[p]...)
}

// IsParentOf reports whether p is the parent of q.
func (t *Tree) IsParentOf(p, q int) bool {
	par, ok := t.Parent(q)
	return ok && par == p
}

// Root walks up from node 0 until a parentless node is reached.
// Returns -1 for an empty tree. The walk is bounded by n steps, so a
// parent cycle yields -1 as well.
func (t *Tree) Root() int {
	if t.n == 0 {
		return -1
	}
	cur := 0
	for steps := 0; steps <= t.n; steps++ {
		p := t.parent[cur]
		if p < 0 {
			return cur
		}
		cur = p
	}

	return -1
}
