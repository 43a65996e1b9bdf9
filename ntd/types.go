// File: types.go
// Role: node types, node payloads and sentinel errors.

package ntd

import "errors"

// Sentinel errors for decomposition construction and queries.
var (
	// ErrNodeOutOfRange indicates a node id outside [0,n).
	ErrNodeOutOfRange = errors.New("ntd: node out of range")

	// ErrParentExists indicates a second parent was assigned to a node.
	ErrParentExists = errors.New("ntd: node already has a parent")

	// ErrMalformed indicates that a tree and its nodes do not form a nice
	// tree decomposition.
	ErrMalformed = errors.New("ntd: malformed nice tree decomposition")

	// ErrNotDecomposition indicates that a decomposition does not decompose
	// a given graph.
	ErrNotDecomposition = errors.New("ntd: not a decomposition of graph")

	// ErrTooManyEdges indicates a graph family too large to enumerate.
	ErrTooManyEdges = errors.New("ntd: too many possible edges")
)

// NodeType is the kind of a nice tree decomposition node.
type NodeType int

const (
	Leaf NodeType = iota
	Introduce
	Forget
	Join
)

// String returns the lowercase name of the node type.
func (t NodeType) String() string {
	switch t {
	case Leaf:
		return "leaf"
	case Introduce:
		return "introduce"
	case Forget:
		return "forget"
	case Join:
		return "join"
	default:
		return "unknown"
	}
}

// Node is the payload of one tree node. Bag order is irrelevant; New stores
// a sorted copy.
type Node struct {
	Type NodeType
	Bag  []int
}

// maxFamilyEdges bounds ForEachGraph so that the subset mask fits in uint64.
const maxFamilyEdges = 62
