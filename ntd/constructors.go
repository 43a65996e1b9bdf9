// File: constructors.go
// Role: canonical decompositions for paths and complete graphs.
// Both produce a single chain of 2n nodes, node k+1 being the parent of k,
// with an empty root bag.

package ntd

import "fmt"

// PathDecomposition returns a width-1 decomposition of the path 0-1-…-(n-1):
//
//	leaf {0}, then for i = 1..n-1: introduce {i-1,i}, forget {i},
//	then a final forget {}.
func PathDecomposition(n int) (*Decomposition, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: PathDecomposition n=%d < 1", ErrMalformed, n)
	}
	nodes := make([]Node, 0, 2*n)
	nodes = append(nodes, Node{Type: Leaf, Bag: []int{0}})
	for i := 1; i < n; i++ {
		nodes = append(nodes,
			Node{Type: Introduce, Bag: []int{i - 1, i}},
			Node{Type: Forget, Bag: []int{i}},
		)
	}
	nodes = append(nodes, Node{Type: Forget, Bag: []int{}})

	return chain(nodes)
}

// CompleteDecomposition returns a width-(n-1) decomposition of K_n:
//
//	leaf {0}, introduce {0..i} for i = 1..n-1,
//	then forget n-1, n-2, …, 0 down to {}.
func CompleteDecomposition(n int) (*Decomposition, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: CompleteDecomposition n=%d < 1", ErrMalformed, n)
	}
	nodes := make([]Node, 0, 2*n)
	for i := 0; i < n; i++ {
		typ := Introduce
		if i == 0 {
			typ = Leaf
		}
		nodes = append(nodes, Node{Type: typ, Bag: prefix(i + 1)})
	}
	for i := n - 1; i >= 0; i-- {
		nodes = append(nodes, Node{Type: Forget, Bag: prefix(i)})
	}

	return chain(nodes)
}

// chain links nodes[k] as the child of nodes[k+1] and validates the result.
func chain(nodes []Node) (*Decomposition, error) {
	t, err := NewTree(len(nodes))
	if err != nil {
		return nil, err
	}
	for k := 0; k+1 < len(nodes); k++ {
		if err := t.AddChild(k+1, k); err != nil {
			return nil, err
		}
	}

	return New(t, nodes)
}

// prefix returns [0, 1, …, k-1].
func prefix(k int) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = i
	}
	return out
}
