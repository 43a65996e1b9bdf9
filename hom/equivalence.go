package hom

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/homcount/graph"
	"github.com/katalvlaran/homcount/mapping"
	"github.com/katalvlaran/homcount/ntd"
)

// familyDP extends treeDP tables by an edge-subset key: tables[p][S][f] is
// the number of homomorphisms, extending f, of the graph whose edges are S
// restricted to what lies below p. reach[p] is the mask of possible edges
// introduced in p's subtree; bit i stands for PossibleEdges()[i].
type familyDP struct {
	td     *ntd.Decomposition
	h      *graph.Adjacency
	m      uint64
	bags   [][]int
	bit    map[graph.Edge]uint
	reach  []uint64
	tables []map[uint64][]uint64
	limit  uint64
}

// countEquivalence returns the count of every family member, indexed by
// edge-subset mask, from a single pass over td.
func countEquivalence(td *ntd.Decomposition, h *graph.Graph, o Options) ([]uint64, error) {
	possible := td.PossibleEdges()
	if len(possible) > 62 {
		return nil, fmt.Errorf("%w: %d possible edges", ntd.ErrTooManyEdges, len(possible))
	}

	d := &familyDP{
		td:     td,
		h:      h.Adjacency(),
		m:      uint64(h.VertexCount()),
		bags:   make([][]int, td.NodeCount()),
		bit:    make(map[graph.Edge]uint, len(possible)),
		reach:  make([]uint64, td.NodeCount()),
		tables: make([]map[uint64][]uint64, td.NodeCount()),
		limit:  o.MaxTableEntries,
	}
	for i, e := range possible {
		d.bit[e] = uint(i)
	}
	for p := range d.bags {
		d.bags[p] = td.Bag(p)
	}

	log := o.Logger.WithFields(logrus.Fields{"m": d.m, "nodes": td.NodeCount(), "possible": len(possible)})
	log.Debug("hom: equivalence start")

	for _, p := range td.StingyOrdering() {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		if err := d.step(p); err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{"node": p, "subsets": len(d.tables[p])}).Trace("hom: family table built")
	}

	root := td.Root()
	counts := make([]uint64, 1<<uint(len(possible)))
	for s, t := range d.tables[root] {
		var total uint64
		for _, c := range t {
			var err error
			if total, err = add(total, c); err != nil {
				return nil, err
			}
		}
		counts[s] = total
	}

	return counts, nil
}

func (d *familyDP) step(p int) error {
	typ, _ := d.td.Type(p)
	kids := d.td.Children(p)

	switch typ {
	case ntd.Leaf:
		if len(d.bags[p]) == 1 {
			v := d.bags[p][0]
			d.reach[p] = 1 << d.bit[graph.Edge{From: v, To: v}]
		}
	case ntd.Introduce:
		v, _ := d.td.UniqueVertex(p)
		fresh := d.incident(v, d.bags[p])
		if d.reach[kids[0]]&fresh != 0 {
			return fmt.Errorf("%w: vertex %d introduced twice", ErrDecompositionMismatch, v)
		}
		d.reach[p] = d.reach[kids[0]] | fresh
	case ntd.Forget:
		d.reach[p] = d.reach[kids[0]]
	case ntd.Join:
		d.reach[p] = d.reach[kids[0]] | d.reach[kids[1]]
	}

	subsets := uint64(1) << uint(bits.OnesCount64(d.reach[p]))
	size, err := tableLen(d.m, len(d.bags[p]), subsets, d.limit)
	if err != nil {
		return fmt.Errorf("node %d: %w", p, err)
	}

	d.tables[p] = make(map[uint64][]uint64, subsets)
	for s := range submasks(d.reach[p]) {
		t := make([]uint64, size)
		switch typ {
		case ntd.Leaf:
			d.leaf(p, s, t)
		case ntd.Introduce:
			d.introduce(p, kids[0], s, t)
		case ntd.Forget:
			if err := d.forget(p, kids[0], s, t); err != nil {
				return err
			}
		case ntd.Join:
			t1 := d.tables[kids[0]][s&d.reach[kids[0]]]
			t2 := d.tables[kids[1]][s&d.reach[kids[1]]]
			for f := range t {
				if t[f], err = mul(t1[f], t2[f]); err != nil {
					return err
				}
			}
		}
		d.tables[p][s] = t
	}
	for _, q := range kids {
		d.tables[q] = nil
	}

	return nil
}

// incident is the mask of possible edges {v,u} for u in bag, loop included.
func (d *familyDP) incident(v int, bag []int) uint64 {
	var mask uint64
	for _, u := range bag {
		a, b := v, u
		if a > b {
			a, b = b, a
		}
		mask |= 1 << d.bit[graph.Edge{From: a, To: b}]
	}
	return mask
}

func (d *familyDP) leaf(p int, s uint64, t []uint64) {
	if len(d.bags[p]) == 0 {
		t[0] = 1
		return
	}
	loop := s != 0
	for a := range t {
		if !loop || d.h.Has(a, a) {
			t[a] = 1
		}
	}
}

// introduce keeps child counts whose extension preserves every edge of s
// between the introduced vertex and the bag, in both orientations.
func (d *familyDP) introduce(p, q int, s uint64, t []uint64) {
	v, _ := d.td.UniqueVertex(p)
	bag := d.bags[p]
	idx := uint64(sort.SearchInts(bag, v))

	links := make([]uint64, 0, len(bag))
	for j, u := range bag {
		if s&d.incident(v, []int{u}) != 0 {
			links = append(links, uint64(j))
		}
	}

	tq := d.tables[q][s&d.reach[q]]
	for fq, c := range tq {
		if c == 0 {
			continue
		}
	images:
		for a := uint64(0); a < d.m; a++ {
			f := mapping.Extend(d.m, uint64(fq), idx, a)
			for _, sig := range links {
				img := int(mapping.Apply(d.m, f, sig))
				if !d.h.Has(int(a), img) || !d.h.Has(img, int(a)) {
					continue images
				}
			}
			t[f] = c
		}
	}
}

func (d *familyDP) forget(p, q int, s uint64, t []uint64) error {
	w, _ := d.td.UniqueVertex(p)
	sig := uint64(sort.SearchInts(d.bags[q], w))
	tq := d.tables[q][s]

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

// submasks yields every subset of mask, mask itself first and 0 last.
func submasks(mask uint64) func(yield func(uint64) bool) {
	return func(yield func(uint64) bool) {
		for s := mask; ; s = (s - 1) & mask {
			if !yield(s) {
				return
			}
			if s == 0 {
				return
			}
		}
	}
}
