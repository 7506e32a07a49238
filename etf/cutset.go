package etf

import "github.com/katalvlaran/dynconn/internal/seqforest"

// Sketch is the per-(level, boost) row vector a CutSet edge-node may own;
// rows combine by element-wise XOR, so the subtree aggregate of any edge-
// node is the XOR of every row vector still "owned" beneath it.
type Sketch [][]uint64

func xorSketch(a, b Sketch) Sketch {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := make(Sketch, len(a))
	for i := range a {
		row := make([]uint64, len(a[i]))
		for j := range row {
			row[j] = a[i][j] ^ b[i][j]
		}
		out[i] = row
	}
	return out
}

// cutAgg is the per-node aggregate: the node's owned sketch rows (if any)
// plus a constant 1, so the subtree sum of Count is the number of directed
// edge-arcs in the tree — component size follows as arcs/2 + 1.
type cutAgg struct {
	Sketch Sketch
	Count  int
}

func combineCutAgg(a, b cutAgg) cutAgg {
	return cutAgg{Sketch: xorSketch(a.Sketch, b.Sketch), Count: a.Count + b.Count}
}

// CutNode is one directed Euler-tour edge-node in a CutSet-flavoured forest.
type CutNode = seqforest.Node[cutAgg]

// CutSet is an Euler-tour forest whose node aggregate is the XOR of every
// vertex's owned cut-set sketch rows in a tree. Exactly one edge-node per
// vertex per tree is the "active" owner of that vertex's sketch.
type CutSet struct {
	f *seqforest.Forest[cutAgg]
}

// NewCutSet constructs an empty CutSet-flavoured forest.
func NewCutSet() *CutSet {
	return &CutSet{f: seqforest.New[cutAgg](cutAgg{}, combineCutAgg)}
}

// NewNode allocates a solitary edge-node (v, w), not yet attached to any
// tree and owning no sketch.
func (c *CutSet) NewNode(v, w uint64) *CutNode {
	n := c.f.NewNode(v, w)
	c.f.SetOwn(n, cutAgg{Count: 1}, true)
	return n
}

// GetRoot returns the root of the tree containing n.
func (c *CutSet) GetRoot(n *CutNode) *CutNode {
	return seqforest.GetRoot(n)
}

// GetTrackingData returns the XORed sketch of every node owned in n's
// subtree (call with a tree root for the whole tree's accumulated data).
func (c *CutSet) GetTrackingData(n *CutNode) Sketch {
	return c.f.Agg(n).Sketch
}

// GetSize returns the number of vertices in n's tree.
func (c *CutSet) GetSize(n *CutNode) int {
	return c.f.Agg(n).Count/2 + 1
}

// SetTrackingData makes n the active owner of the given sketch rows (or
// clears ownership if rows is nil), propagating the XOR change to the root.
func (c *CutSet) SetTrackingData(n *CutNode, rows Sketch) {
	c.f.SetOwn(n, cutAgg{Sketch: rows, Count: 1}, true)
}

// AddEdgeToData XORs newEdge's contribution into every row at or above
// startingLevel, for whichever sketch n currently owns, then propagates the
// change upward.
func (c *CutSet) AddEdgeToData(n *CutNode, newEdge uint64, startingLevel int) {
	rows := n.Own.Sketch
	for b := range rows {
		for r := startingLevel; r < len(rows[b]); r++ {
			rows[b][r] ^= newEdge
		}
	}
	c.f.SetOwn(n, cutAgg{Sketch: rows, Count: 1}, true)
}

// InsertETEdge inserts the directed edge pair (v,w)/(w,v) into the forest,
// splicing tree w into tree v at the position of vSample/wSample (any
// existing edge-node touching v and w respectively, or nil if either side
// is currently a single isolated vertex). Returns the two new edge-nodes.
func (c *CutSet) InsertETEdge(v, w uint64, vSample, wSample *CutNode) (vwEdge, wvEdge *CutNode) {
	vwEdge = c.NewNode(v, w)
	wvEdge = c.NewNode(w, v)

	var vTree, wTree *CutNode
	if vSample != nil {
		vTree = c.f.MakeFront(vSample)
	}
	if wSample != nil {
		wTree = c.f.MakeFront(wSample)
	}

	merged := c.f.Join3(vTree, vwEdge, wTree)
	merged = c.f.TrivialInsert(wvEdge, merged, false)
	return vwEdge, wvEdge
}

// DeleteETEdge removes the (edge, backEdge) pair from the forest, splitting
// the tree into the two trees that result once that tree edge is gone. The
// two remaining trees are reachable afterward via GetRoot on any other node
// that used to share edge's or backEdge's tree.
func (c *CutSet) DeleteETEdge(edge, backEdge *CutNode) {
	c.f.MakeFront(edge)

	before, vTree := c.f.Split3(backEdge)
	leftPart := c.f.TrivialInsert(backEdge, before, false)

	_, afterEdgeRemoved := c.f.TrivialDelete(leftPart, true)
	if afterEdgeRemoved == nil {
		return
	}
	c.f.TrivialDelete(afterEdgeRemoved, false)
	_ = vTree
}

// GetTour returns, in sequence order, every (v, w) directed edge in n's
// tree.
func (c *CutSet) GetTour(n *CutNode) []struct{ V, W uint64 } {
	var out []struct{ V, W uint64 }
	seqforest.GetTour(seqforest.GetRoot(n), &out)
	return out
}
