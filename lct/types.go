package lct

import (
	"errors"

	"github.com/katalvlaran/dynconn/internal/bbf"
	"github.com/katalvlaran/dynconn/internal/bbt"
)

// None marks the absence of a dashed parent, mirroring graph.None.
const None = ^uint64(0)

// ErrSameTree is returned by Link when both endpoints already share a root.
var ErrSameTree = errors.New("lct: vertices already in the same tree")

// ErrIsRoot is returned by Cut when the given vertex is already its own
// tree's root (has no parent edge to remove).
var ErrIsRoot = errors.New("lct: vertex is a tree root")

// ErrNotConnected is returned by CutEdge when the two vertices do not share
// a root.
var ErrNotConnected = errors.New("lct: vertices are not in the same tree")

// ErrNotAdjacentEdge is returned by CutEdge when neither vertex is the
// other's tree parent.
var ErrNotAdjacentEdge = errors.New("lct: vertices are not tree-adjacent")

// Edge identifies a parent-child tree edge and its cost, as returned by
// GetMinEdge/GetMaxEdge.
type Edge struct {
	Child, Parent uint64
	Cost          int64
}

// pathKey orders a vertex's dashed children by (solid-path weight, solid-
// path end vertex) — weight first so Max() in O(1) finds the heaviest
// dashed subtree, the one conceal promotes back to solid when it grows past
// half of its parent's own path weight.
type pathKey struct {
	weight uint64
	end    uint64
}

func lessPathKey(a, b pathKey) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.end < b.end
}

// Tree is a dynamic forest of rooted trees with weighted parent edges,
// supporting link, cut, reroot, and path-aggregate queries in O(log n).
type Tree struct {
	n uint64

	// parent[v] is v's dashed tree-parent when v is the last vertex of its
	// own solid path, or None when v's tree-parent relationship is carried
	// by the solid path itself (successor lookup via pathNodes).
	parent []uint64
	pCost  []int64

	// pathNodes[v] is v's own leaf in whichever solid path it currently
	// belongs to.
	pathNodes []*bbf.Node

	// pathSets[v] holds v's dashed children, keyed by pathKey.
	pathSets []*bbt.Tree[pathKey, *bbf.Node]
}

// New constructs a forest of n isolated single-vertex trees, named
// 0..n-1.
func New(n uint64) *Tree {
	t := &Tree{
		n:         n,
		parent:    make([]uint64, n),
		pCost:     make([]int64, n),
		pathNodes: make([]*bbf.Node, n),
		pathSets:  make([]*bbt.Tree[pathKey, *bbf.Node], n),
	}
	for v := uint64(0); v < n; v++ {
		t.parent[v] = None
		t.pathNodes[v] = bbf.NewLeaf(v, 1)
		t.pathSets[v] = bbt.New[pathKey, *bbf.Node](lessPathKey)
	}
	return t
}

func mustSetWeight(n *bbf.Node, w uint64) {
	if err := bbf.SetWeight(n, w); err != nil {
		panic("lct: corrupted invariant: " + err.Error())
	}
}
