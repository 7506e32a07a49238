package hdt

import (
	"errors"
	"math"

	"github.com/katalvlaran/dynconn/etf"
	"github.com/katalvlaran/dynconn/internal/avl"
)

// ErrSelfLoop is a ContractViolation: AddEdge/DeleteEdge called with u == v.
var ErrSelfLoop = errors.New("hdt: self-loop")

// ErrEdgeExists is a ContractViolation: AddEdge called for an edge already
// tracked as either a tree edge or a non-tree edge.
var ErrEdgeExists = errors.New("hdt: edge already present")

// ErrEdgeNotFound is a ContractViolation: DeleteEdge called for an edge
// neither a tree edge nor a non-tree edge.
var ErrEdgeNotFound = errors.New("hdt: edge not present")

var lessU64 = func(a, b uint64) bool { return a < b }

// maxLevels bounds numLevels regardless of n.
const maxLevels = 64

// HDT is the Holm-de Lichtenberg-Thorup dynamic connectivity structure.
type HDT struct {
	n             int
	numLevels     int
	numComponents int

	nonTreeEdgesOnLevels   [][]*avl.Tree[uint64, bool]       // [v][level]
	nonTreeEdgesLevelIndex []*avl.Tree[uint64, int]          // [v] -> level
	treeEdges              [][]*avl.Tree[uint64, *etf.HDTNode] // [v][level]
	activeEdge             [][]*etf.HDTNode                  // [v][level]

	forest *etf.HDT
}

// New constructs an HDT structure over n initially edgeless vertices.
func New(n uint64) *HDT {
	numLevels := int(math.Ceil(math.Log2(math.Max(float64(n), 2))))
	if numLevels < 1 {
		numLevels = 1
	}
	if numLevels > maxLevels {
		numLevels = maxLevels
	}

	h := &HDT{
		n:             int(n),
		numLevels:     numLevels,
		numComponents: int(n),
		forest:        etf.NewHDT(),
	}

	h.nonTreeEdgesOnLevels = make([][]*avl.Tree[uint64, bool], n)
	h.nonTreeEdgesLevelIndex = make([]*avl.Tree[uint64, int], n)
	h.treeEdges = make([][]*avl.Tree[uint64, *etf.HDTNode], n)
	h.activeEdge = make([][]*etf.HDTNode, n)

	for v := uint64(0); v < n; v++ {
		h.nonTreeEdgesLevelIndex[v] = avl.New[uint64, int](lessU64)
		h.nonTreeEdgesOnLevels[v] = make([]*avl.Tree[uint64, bool], numLevels)
		h.treeEdges[v] = make([]*avl.Tree[uint64, *etf.HDTNode], numLevels)
		h.activeEdge[v] = make([]*etf.HDTNode, numLevels)
		for lvl := 0; lvl < numLevels; lvl++ {
			h.nonTreeEdgesOnLevels[v][lvl] = avl.New[uint64, bool](lessU64)
			h.treeEdges[v][lvl] = avl.New[uint64, *etf.HDTNode](lessU64)
		}
	}
	return h
}

// Query reports whether u and v are currently connected. HDT is exact given
// correct bookkeeping; the probabilistic-failure mode that applies to
// Wang/Kaibel does not apply here.
func (h *HDT) Query(u, v uint64) bool {
	if u >= uint64(h.n) || v >= uint64(h.n) {
		return false
	}
	if u == v {
		return true
	}
	au, av := h.activeEdge[u][0], h.activeEdge[v][0]
	if au == nil || av == nil {
		return false
	}
	return h.forest.GetRoot(au) == h.forest.GetRoot(av)
}

// NumberOfComponents returns the current number of connected components.
func (h *HDT) NumberOfComponents() int {
	return h.numComponents
}

// AddEdge records edge (u,v): as a non-tree edge if u and v are already
// connected, else as a level-0 tree edge, merging their components.
func (h *HDT) AddEdge(u, v uint64) error {
	if u == v {
		return ErrSelfLoop
	}
	if h.nonTreeEdgesLevelIndex[u].Contains(v) || h.treeEdges[u][0].Contains(v) {
		return ErrEdgeExists
	}

	if h.Query(u, v) {
		h.addNonTreeEdge(u, v, 0)
	} else {
		h.addTreeEdge(u, v, 0, true)
		h.numComponents--
	}
	return nil
}

// DeleteEdge removes edge (u,v), searching for a replacement spanning edge
// if it was a tree edge. Returns ErrEdgeNotFound if (u,v) is tracked
// neither as a tree edge nor a non-tree edge.
func (h *HDT) DeleteEdge(u, v uint64) error {
	if u == v {
		return ErrSelfLoop
	}
	if lvl, err := h.nonTreeEdgesLevelIndex[u].FindVal(v); err == nil {
		h.deleteNonTreeEdge(u, v, lvl)
		return nil
	}
	if !h.treeEdges[u][0].Contains(v) {
		return ErrEdgeNotFound
	}

	h.deleteTreeEdge(u, v)
	h.numComponents++
	return nil
}

func (h *HDT) deleteTreeEdge(u, v uint64) {
	i := 0
	for ; i < h.numLevels; i++ {
		if !h.treeEdges[u][i].Contains(v) {
			break
		}
		uEdge, _ := h.treeEdges[u][i].Remove(v)
		vEdge, _ := h.treeEdges[v][i].Remove(u)
		h.forest.DeleteETEdge(uEdge, vEdge)

		if h.activeEdge[u][i] == uEdge {
			h.refreshActiveEdge(u, i)
		}
		if h.activeEdge[v][i] == vEdge {
			h.refreshActiveEdge(v, i)
		}
	}
	i-- // back to the last level that actually held (u,v)

	type replacement struct {
		v, w  uint64
		found bool
	}
	var rep replacement

	for ; i >= 0 && !rep.found; i-- {
		var uTree, vTree *etf.HDTNode
		if h.activeEdge[u][i] != nil {
			uTree = h.forest.GetRoot(h.activeEdge[u][i])
		}
		if h.activeEdge[v][i] != nil {
			vTree = h.forest.GetRoot(h.activeEdge[v][i])
		}

		if uTree == nil || vTree == nil {
			small := u
			if uTree != nil {
				small = v
			}
			if !h.nonTreeEdgesOnLevels[small][i].Empty() {
				w, _ := h.nonTreeEdgesOnLevels[small][i].AnyEntry()
				h.deleteNonTreeEdge(small, w, i)
				rep = replacement{small, w, true}
			}
			continue
		}

		smallTree := uTree
		if h.sizeOfTree(vTree) < h.sizeOfTree(uTree) {
			smallTree = vTree
		}

		for {
			toPromote := h.forest.GetOnLevelTreeEdge(smallTree)
			if toPromote == nil {
				break
			}
			pv, pw := toPromote.V, toPromote.W
			h.forest.SetOnLevel(h.mustFind(h.treeEdges[pv][i], pw), false)
			h.forest.SetOnLevel(h.mustFind(h.treeEdges[pw][i], pv), false)
			h.addTreeEdge(pv, pw, i+1, true)
		}

		for {
			carrier := h.forest.GetNodeWithOnLevelNontreeEdge(smallTree)
			if carrier == nil {
				break
			}
			v0 := carrier.V
			for !h.nonTreeEdgesOnLevels[v0][i].Empty() {
				w, _ := h.nonTreeEdgesOnLevels[v0][i].AnyEntry()
				h.deleteNonTreeEdge(v0, w, i)

				if h.activeEdge[w][i] == nil {
					panic("hdt: corrupted invariant: non-tree-edge carrier has no active edge")
				}
				if h.forest.GetRoot(h.activeEdge[w][i]) != smallTree {
					rep = replacement{v0, w, true}
					break
				}
				h.addNonTreeEdge(v0, w, i+1)
			}
			if rep.found {
				break
			}
		}
	}

	if rep.found {
		for j := 0; j <= i+1; j++ {
			h.addTreeEdge(rep.v, rep.w, j, j == i+1)
		}
		h.numComponents--
	}
}

// sizeOfTree counts vertices in an HDT tree by walking its Euler tour —
// etf.HDT's aggregate tracks on-level edge/carrier counts, not size, so
// this mirrors the reference's own addressHDT::getSize() by tour length:
// a tree over k vertices has exactly 2(k-1) edge-nodes.
func (h *HDT) sizeOfTree(root *etf.HDTNode) int {
	return len(h.forest.GetTour(root))/2 + 1
}

func (h *HDT) mustFind(tree *avl.Tree[uint64, *etf.HDTNode], key uint64) *etf.HDTNode {
	n, err := tree.FindVal(key)
	if err != nil {
		panic("hdt: corrupted invariant: " + err.Error())
	}
	return n
}

func (h *HDT) deleteNonTreeEdge(u, v uint64, level int) {
	_, _ = h.nonTreeEdgesLevelIndex[u].Remove(v)
	_, _ = h.nonTreeEdgesLevelIndex[v].Remove(u)

	_, _ = h.nonTreeEdgesOnLevels[u][level].Remove(v)
	if h.nonTreeEdgesOnLevels[u][level].Empty() && h.activeEdge[u][level] != nil {
		h.forest.SetNonTreeCount(h.activeEdge[u][level], 0)
	}
	_, _ = h.nonTreeEdgesOnLevels[v][level].Remove(u)
	if h.nonTreeEdgesOnLevels[v][level].Empty() && h.activeEdge[v][level] != nil {
		h.forest.SetNonTreeCount(h.activeEdge[v][level], 0)
	}
}

func (h *HDT) refreshActiveEdge(v uint64, level int) {
	if !h.treeEdges[v][level].Empty() {
		_, node := h.treeEdges[v][level].AnyEntry()
		h.activeEdge[v][level] = node
		if !h.nonTreeEdgesOnLevels[v][level].Empty() {
			h.forest.SetNonTreeCount(node, 1)
		}
	} else {
		h.activeEdge[v][level] = nil
	}
}

func (h *HDT) addTreeEdge(u, v uint64, level int, onLevel bool) {
	uHasNonTree := h.activeEdge[u][level] == nil && !h.nonTreeEdgesOnLevels[u][level].Empty()
	vHasNonTree := h.activeEdge[v][level] == nil && !h.nonTreeEdgesOnLevels[v][level].Empty()

	uwNode, wvNode := h.forest.InsertETEdge(u, v, h.activeEdge[u][level], h.activeEdge[v][level])
	h.forest.SetOnLevel(uwNode, onLevel)
	h.forest.SetOnLevel(wvNode, onLevel)
	if uHasNonTree {
		h.forest.SetNonTreeCount(uwNode, 1)
	}
	if vHasNonTree {
		h.forest.SetNonTreeCount(wvNode, 1)
	}

	_ = h.treeEdges[u][level].Insert(v, uwNode)
	if h.activeEdge[u][level] == nil {
		h.activeEdge[u][level] = uwNode
	}
	_ = h.treeEdges[v][level].Insert(u, wvNode)
	if h.activeEdge[v][level] == nil {
		h.activeEdge[v][level] = wvNode
	}
}

func (h *HDT) addNonTreeEdge(u, v uint64, level int) {
	if h.nonTreeEdgesOnLevels[u][level].Empty() && h.activeEdge[u][level] != nil {
		h.forest.SetNonTreeCount(h.activeEdge[u][level], 1)
	}
	if h.nonTreeEdgesOnLevels[v][level].Empty() && h.activeEdge[v][level] != nil {
		h.forest.SetNonTreeCount(h.activeEdge[v][level], 1)
	}

	_ = h.nonTreeEdgesLevelIndex[u].Insert(v, level)
	_ = h.nonTreeEdgesLevelIndex[v].Insert(u, level)
	_ = h.nonTreeEdgesOnLevels[u][level].Insert(v, false)
	_ = h.nonTreeEdgesOnLevels[v][level].Insert(u, false)
}
