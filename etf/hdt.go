package etf

import "github.com/katalvlaran/dynconn/internal/seqforest"

// HDTAgg is the per-node aggregate for an HDT-flavoured forest: whether this
// edge-node is itself an on-level tree edge, and how many on-level non-tree
// edges its owning vertex still carries. Both fields sum across a subtree.
type HDTAgg struct {
	TreeEdgesOnLevel    int
	NonTreeEdgesOnLevel int
}

func sumHDT(a, b HDTAgg) HDTAgg {
	return HDTAgg{
		TreeEdgesOnLevel:    a.TreeEdgesOnLevel + b.TreeEdgesOnLevel,
		NonTreeEdgesOnLevel: a.NonTreeEdgesOnLevel + b.NonTreeEdgesOnLevel,
	}
}

// HDTNode is one directed Euler-tour edge-node in an HDT-flavoured forest.
type HDTNode = seqforest.Node[HDTAgg]

// HDT is an Euler-tour forest whose node aggregate sums on-level tree-edge
// and non-tree-edge markers, letting HDT find a replacement edge for a
// removed tree edge in O(log n).
type HDT struct {
	f *seqforest.Forest[HDTAgg]
}

// NewHDT constructs an empty HDT-flavoured forest.
func NewHDT() *HDT {
	return &HDT{f: seqforest.New[HDTAgg](HDTAgg{}, sumHDT)}
}

// NewNode allocates a solitary edge-node (v, w).
func (h *HDT) NewNode(v, w uint64) *HDTNode {
	return h.f.NewNode(v, w)
}

// GetRoot returns the root of the tree containing n.
func (h *HDT) GetRoot(n *HDTNode) *HDTNode {
	return seqforest.GetRoot(n)
}

// SetOnLevel marks (or unmarks) n as an on-level tree edge.
func (h *HDT) SetOnLevel(n *HDTNode, onLevel bool) {
	agg := n.Own
	if onLevel {
		agg.TreeEdgesOnLevel = 1
	} else {
		agg.TreeEdgesOnLevel = 0
	}
	h.f.SetOwn(n, agg, agg != (HDTAgg{}))
}

// SetNonTreeCount sets the number of on-level non-tree edges n's vertex
// carries.
func (h *HDT) SetNonTreeCount(n *HDTNode, count int) {
	agg := n.Own
	agg.NonTreeEdgesOnLevel = count
	h.f.SetOwn(n, agg, agg != (HDTAgg{}))
}

// GetOnLevelTreeEdge returns some on-level tree edge-node in n's tree, or
// nil if none remain. O(log n).
func (h *HDT) GetOnLevelTreeEdge(n *HDTNode) *HDTNode {
	root := seqforest.GetRoot(n)
	if h.f.Agg(root).TreeEdgesOnLevel == 0 {
		return nil
	}
	cur := root
	for {
		if cur.HasOwn && cur.Own.TreeEdgesOnLevel > 0 {
			return cur
		}
		if l := cur.Left(); l != nil && h.f.Agg(l).TreeEdgesOnLevel > 0 {
			cur = l
			continue
		}
		cur = cur.Right()
	}
}

// GetNodeWithOnLevelNontreeEdge returns some edge-node in n's tree whose
// vertex still carries an on-level non-tree edge, or nil if none remain.
// O(log n).
func (h *HDT) GetNodeWithOnLevelNontreeEdge(n *HDTNode) *HDTNode {
	root := seqforest.GetRoot(n)
	if h.f.Agg(root).NonTreeEdgesOnLevel == 0 {
		return nil
	}
	cur := root
	for {
		if cur.HasOwn && cur.Own.NonTreeEdgesOnLevel > 0 {
			return cur
		}
		if l := cur.Left(); l != nil && h.f.Agg(l).NonTreeEdgesOnLevel > 0 {
			cur = l
			continue
		}
		cur = cur.Right()
	}
}

// InsertETEdge inserts the directed edge pair (v,w)/(w,v), splicing tree w
// into tree v at vSample/wSample (nil if that side is a single vertex).
func (h *HDT) InsertETEdge(v, w uint64, vSample, wSample *HDTNode) (vwEdge, wvEdge *HDTNode) {
	vwEdge = h.NewNode(v, w)
	wvEdge = h.NewNode(w, v)

	var vTree, wTree *HDTNode
	if vSample != nil {
		vTree = h.f.MakeFront(vSample)
	}
	if wSample != nil {
		wTree = h.f.MakeFront(wSample)
	}

	merged := h.f.Join3(vTree, vwEdge, wTree)
	h.f.TrivialInsert(wvEdge, merged, false)
	return vwEdge, wvEdge
}

// DeleteETEdge removes the (edge, backEdge) pair, splitting the tree into
// the two that result once that tree edge is gone.
func (h *HDT) DeleteETEdge(edge, backEdge *HDTNode) {
	h.f.MakeFront(edge)

	before, _ := h.f.Split3(backEdge)
	leftPart := h.f.TrivialInsert(backEdge, before, false)

	_, afterEdgeRemoved := h.f.TrivialDelete(leftPart, true)
	if afterEdgeRemoved == nil {
		return
	}
	h.f.TrivialDelete(afterEdgeRemoved, false)
}

// GetTour returns, in sequence order, every (v, w) directed edge in n's
// tree.
func (h *HDT) GetTour(n *HDTNode) []struct{ V, W uint64 } {
	var out []struct{ V, W uint64 }
	seqforest.GetTour(seqforest.GetRoot(n), &out)
	return out
}
