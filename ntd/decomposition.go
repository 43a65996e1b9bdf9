// File: decomposition.go
// Role: validated nice tree decomposition with precomputed stingy ordering
// and unique vertices.
// Determinism:
//   - Bags are stored sorted ascending.
//   - StingyOrdering breaks branch-number ties in favour of the first child.

package ntd

import (
	"fmt"
	"sort"
)

// Decomposition is an immutable, validated nice tree decomposition.
type Decomposition struct {
	tree   *Tree
	nodes  []Node // bags sorted
	root   int
	order  []int // stingy ordering
	unique []int // -1 for Join nodes and empty leaves
	nVerts int
	width  int
}

// New validates tree and nodes (indexed by node id) and builds a Decomposition.
// All structural violations are reported as ErrMalformed.
// Complexity: O(N·w log w) where w is the largest bag size.
func New(tree *Tree, nodes []Node) (*Decomposition, error) {
	if tree == nil || tree.NodeCount() == 0 {
		return nil, fmt.Errorf("%w: empty tree", ErrMalformed)
	}
	if len(nodes) != tree.NodeCount() {
		return nil, fmt.Errorf("%w: %d nodes for a tree of %d", ErrMalformed, len(nodes), tree.NodeCount())
	}

	d := &Decomposition{
		tree:   tree,
		nodes:  make([]Node, len(nodes)),
		unique: make([]int, len(nodes)),
		width:  -1,
	}
	for p, nd := range nodes {
		bag := append([]int(nil), nd.Bag...)
		sort.Ints(bag)
		for i, v := range bag {
			if v < 0 {
				return nil, fmt.Errorf("%w: node %d: negative vertex %d", ErrMalformed, p, v)
			}
			if i > 0 && bag[i-1] == v {
				return nil, fmt.Errorf("%w: node %d: vertex %d listed twice", ErrMalformed, p, v)
			}
			if v+1 > d.nVerts {
				d.nVerts = v + 1
			}
		}
		if len(bag)-1 > d.width {
			d.width = len(bag) - 1
		}
		d.nodes[p] = Node{Type: nd.Type, Bag: bag}
	}

	if err := d.checkShape(); err != nil {
		return nil, err
	}
	for p := range d.nodes {
		if err := d.checkNode(p); err != nil {
			return nil, err
		}
	}
	d.order, _ = d.stingy(d.root)

	return d, nil
}

// checkShape verifies a single root from which every node is reachable.
func (d *Decomposition) checkShape() error {
	d.root = -1
	for p := 0; p < d.tree.NodeCount(); p++ {
		if _, ok := d.tree.Parent(p); ok {
			continue
		}
		if d.root >= 0 {
			return fmt.Errorf("%w: two roots %d and %d", ErrMalformed, d.root, p)
		}
		d.root = p
	}
	if d.root < 0 {
		return fmt.Errorf("%w: no root", ErrMalformed)
	}

	seen := 0
	stack := []int{d.root}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		seen++
		stack = append(stack, d.tree.children[p]...)
	}
	if seen != d.tree.NodeCount() {
		return fmt.Errorf("%w: %d of %d nodes reachable from root %d",
			ErrMalformed, seen, d.tree.NodeCount(), d.root)
	}

	return nil
}

// checkNode verifies the local nice-decomposition rule at p and records its
// unique vertex.
func (d *Decomposition) checkNode(p int) error {
	nd := d.nodes[p]
	kids := d.tree.children[p]
	d.unique[p] = -1

	switch nd.Type {
	case Leaf:
		if len(kids) != 0 {
			return fmt.Errorf("%w: leaf %d has %d children", ErrMalformed, p, len(kids))
		}
		if len(nd.Bag) > 1 {
			return fmt.Errorf("%w: leaf %d has bag of size %d", ErrMalformed, p, len(nd.Bag))
		}
		if len(nd.Bag) == 1 {
			d.unique[p] = nd.Bag[0]
		}
	case Introduce, Forget:
		if len(kids) != 1 {
			return fmt.Errorf("%w: %s node %d has %d children", ErrMalformed, nd.Type, p, len(kids))
		}
		big, small := nd.Bag, d.nodes[kids[0]].Bag
		if nd.Type == Forget {
			big, small = small, big
		}
		v, ok := singleExtra(big, small)
		if !ok {
			return fmt.Errorf("%w: %s node %d: bags %v and child %v differ by more than one vertex",
				ErrMalformed, nd.Type, p, nd.Bag, d.nodes[kids[0]].Bag)
		}
		d.unique[p] = v
	case Join:
		if len(kids) != 2 {
			return fmt.Errorf("%w: join %d has %d children", ErrMalformed, p, len(kids))
		}
		for _, q := range kids {
			if !equalInts(nd.Bag, d.nodes[q].Bag) {
				return fmt.Errorf("%w: join %d bag %v differs from child %d bag %v",
					ErrMalformed, p, nd.Bag, q, d.nodes[q].Bag)
			}
		}
	default:
		return fmt.Errorf("%w: node %d has unknown type %d", ErrMalformed, p, int(nd.Type))
	}

	return nil
}

// stingy returns the stingy ordering of the subtree at p and its branch number.
func (d *Decomposition) stingy(p int) ([]int, int) {
	var (
		order  []int
		branch int
	)
	kids := d.tree.children[p]
	switch d.nodes[p].Type {
	case Introduce, Forget:
		order, branch = d.stingy(kids[0])
	case Join:
		o1, b1 := d.stingy(kids[0])
		o2, b2 := d.stingy(kids[1])
		if b1 >= b2 {
			order = append(o1, o2...)
		} else {
			order = append(o2, o1...)
		}
		branch = b1 + b2 + 1
	}

	return append(order, p), branch
}

// singleExtra returns v when big = small ∪ {v} for sorted, duplicate-free inputs.
func singleExtra(big, small []int) (int, bool) {
	if len(big) != len(small)+1 {
		return 0, false
	}
	extra, j := -1, 0
	for _, v := range big {
		if j < len(small) && small[j] == v {
			j++
			continue
		}
		if extra >= 0 {
			return 0, false
		}
		extra = v
	}

	return extra, j == len(small) && extra >= 0
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
