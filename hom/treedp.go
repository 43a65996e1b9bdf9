package hom

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/homcount/graph"
	"github.com/katalvlaran/homcount/mapping"
	"github.com/katalvlaran/homcount/ntd"
)

// treeDP holds the state of one run of the tree-decomposition counter.
// tables[p] maps every encoded bag assignment of p (digit i = image of the
// i-th smallest bag vertex) to the number of homomorphisms of the subgraph
// forgotten below p that extend it. A child's table is released as soon as
// its parent has been built.
type treeDP struct {
	td     *ntd.Decomposition
	g, h   *graph.Adjacency
	m      uint64
	bags   [][]int
	tables [][]uint64
	limit  uint64
}

// bagLink records how the introduced vertex v relates to a bag vertex at
// significance sig: out means (v,u) ∈ E(G), in means (u,v) ∈ E(G).
type bagLink struct {
	sig     uint64
	out, in bool
}

// CountTreeDecomposition counts homomorphisms from g to h with the
// Diaz–Serna–Thilikos dynamic program over the nice tree decomposition td.
// Nodes are processed in stingy order. The count is the sum over the root
// table, so a root with a non-empty bag is handled as well.
//
// td must decompose g (ErrDecompositionMismatch otherwise). Tables larger
// than Options.MaxTableEntries fail with ErrTableTooLarge; counts that
// overflow uint64 fail with ErrSpaceTooLarge. Cancellation is checked
// before every node.
//
// Complexity: O(N · m^(w+1) · w) time and O(m^(w+1)) live entries per
// branch, where N is the node count and w the width.
func CountTreeDecomposition(g *graph.Graph, td *ntd.Decomposition, h *graph.Graph, opts ...Option) (uint64, error) {
	if g == nil || h == nil || td == nil {
		return 0, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if err := td.Decomposes(g); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDecompositionMismatch, err)
	}

	d := &treeDP{
		td:     td,
		g:      g.Adjacency(),
		h:      h.Adjacency(),
		m:      uint64(h.VertexCount()),
		bags:   make([][]int, td.NodeCount()),
		tables: make([][]uint64, td.NodeCount()),
		limit:  o.MaxTableEntries,
	}
	for p := range d.bags {
		d.bags[p] = td.Bag(p)
	}

	log := o.Logger.WithFields(logrus.Fields{
		"n": g.VertexCount(), "m": d.m, "nodes": td.NodeCount(), "width": td.Width(),
	})
	log.Debug("hom: tree decomposition start")

	for _, p := range td.StingyOrdering() {
		select {
		case <-o.Ctx.Done():
			return 0, o.Ctx.Err()
		default:
		}
		if err := d.step(p); err != nil {
			return 0, err
		}
		log.WithFields(logrus.Fields{"node": p, "bag": len(d.bags[p]), "entries": len(d.tables[p])}).
			Trace("hom: table built")
	}

	var total uint64
	for _, c := range d.tables[td.Root()] {
		if total, err = add(total, c); err != nil {
			return 0, err
		}
	}

	log.WithField("count", total).Debug("hom: tree decomposition done")
	return total, nil
}

// step builds tables[p] from its children's tables and releases them.
func (d *treeDP) step(p int) error {
	size, err := tableLen(d.m, len(d.bags[p]), 1, d.limit)
	if err != nil {
		return fmt.Errorf("node %d: %w", p, err)
	}
	t := make([]uint64, size)

	typ, _ := d.td.Type(p)
	switch typ {
	case ntd.Leaf:
		d.leaf(p, t)
	case ntd.Introduce:
		q, _ := d.td.UniqueChild(p)
		d.introduce(p, q, t)
		d.tables[q] = nil
	case ntd.Forget:
		q, _ := d.td.UniqueChild(p)
		if err := d.forget(p, q, t); err != nil {
			return err
		}
		d.tables[q] = nil
	case ntd.Join:
		kids := d.td.Children(p)
		if err := d.join(t, d.tables[kids[0]], d.tables[kids[1]]); err != nil {
			return err
		}
		d.tables[kids[0]], d.tables[kids[1]] = nil, nil
	}
	d.tables[p] = t

	return nil
}

// leaf: an empty bag has the single empty map; a looped vertex may only
// land on looped targets.
func (d *treeDP) leaf(p int, t []uint64) {
	if len(d.bags[p]) == 0 {
		t[0] = 1
		return
	}
	v := d.bags[p][0]
	loop := d.g.Has(v, v)
	for a := range t {
		if !loop || d.h.Has(a, a) {
			t[a] = 1
		}
	}
}

// introduce extends every child map by an image a of the introduced vertex
// and keeps the child count when every edge between v and the bag is preserved.
func (d *treeDP) introduce(p, q int, t []uint64) {
	v, _ := d.td.UniqueVertex(p)
	bag := d.bags[p]
	idx := uint64(sort.SearchInts(bag, v))

	links := make([]bagLink, 0, len(bag))
	for j, u := range bag {
		out, in := d.g.Has(v, u), d.g.Has(u, v)
		if out || in {
			links = append(links, bagLink{sig: uint64(j), out: out, in: in})
		}
	}

	for fq, c := range d.tables[q] {
		if c == 0 {
			continue
		}
		for a := uint64(0); a < d.m; a++ {
			f := mapping.Extend(d.m, uint64(fq), idx, a)
			if d.preserves(f, int(a), links) {
				t[f] = c
			}
		}
	}
}

// preserves checks the links of an introduced vertex with image a under f.
func (d *treeDP) preserves(f uint64, a int, links []bagLink) bool {
	for _, l := range links {
		img := int(mapping.Apply(d.m, f, l.sig))
		if l.out && !d.h.Has(a, img) {
			return false
		}
		if l.in && !d.h.Has(img, a) {
			return false
		}
	}
	return true
}

// forget sums the child table over every image of the forgotten vertex.
func (d *treeDP) forget(p, q int, t []uint64) error {
	w, _ := d.td.UniqueVertex(p)
	sig := uint64(sort.SearchInts(d.bags[q], w))
	tq := d.tables[q]

	for f := range t {
		var sum uint64
		for a := uint64(0); a < d.m; a++ {
			var err error
			if sum, err = add(sum, tq[mapping.Extend(d.m, uint64(f), sig, a)]); err != nil {
				return err
			}
		}
		t[f] = sum
	}
	return nil
}

// join multiplies the children's tables entrywise.
func (d *treeDP) join(t, t1, t2 []uint64) error {
	for f := range t {
		var err error
		if t[f], err = mul(t1[f], t2[f]); err != nil {
			return err
		}
	}
	return nil
}
