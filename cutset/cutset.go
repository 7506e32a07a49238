package cutset

import (
	"errors"
	"math"

	"github.com/katalvlaran/dynconn/etf"
	"github.com/katalvlaran/dynconn/graph"
	"github.com/katalvlaran/dynconn/internal/avl"
	"github.com/katalvlaran/dynconn/internal/hashfam"
)

// blockSize is the TabularHash table's fixed bit width.
const blockSize = 2

// Edge is an unordered pair of vertices; the zero value is NoEdge.
type Edge struct{ V, W uint64 }

// NoEdge is the sentinel Search/xor-sketch rows use to mean "no edge here".
// Safe because every real edge is canonicalised to V < W, so {0,0} never
// occurs as a genuine edge.
var NoEdge = Edge{}

func canon(e Edge) Edge {
	if e.V >= e.W {
		e.V, e.W = e.W, e.V
	}
	return e
}

func pack(e Edge) uint64 { return e.V<<32 | (e.W & 0xffffffff) }
func unpack(x uint64) Edge {
	return Edge{V: x >> 32, W: x & 0xffffffff}
}

var lessU64 = func(a, b uint64) bool { return a < b }

// ErrAlreadyConnected is a ContractViolation: MakeTreeEdge was asked to link
// two vertices already connected at the level in question.
var ErrAlreadyConnected = errors.New("cutset: endpoints already connected at this level")

// ErrNotTreeEdge is a ContractViolation: MakeNonTreeEdge/DeleteEdge assumed
// an edge was a tree edge at the top level when it was not.
var ErrNotTreeEdge = errors.New("cutset: edge is not a tree edge at the top level")

// CutSet is a levelled, per-vertex XOR-sketch structure supporting
// cut-edge sampling from a component of a dynamic forest.
type CutSet struct {
	n, numLevels, boostLevel int
	lognsqr                  int
	adjacency                *graph.Graph

	treeEdges   [][]*avl.Tree[uint64, *etf.CutNode] // [level][vertex]
	activeEdges [][]*etf.CutNode                    // [level][vertex]
	forests     []*etf.CutSet                       // [level]
	xorVectors  [][][][]uint64                       // [level][vertex][boost][row], packed edges
	hashes      [][]*hashfam.TabularHash              // [level][boost]
}

// New constructs a CutSet structure over n vertices with the given boost
// multiplicity and number of levels, seeded deterministically, checking
// adjacency against g for Search's real-edge validity test.
func New(n uint64, boostLevel, numLevels int, seed int64, g *graph.Graph) *CutSet {
	c := &CutSet{
		n:         int(n),
		numLevels: numLevels,
		boostLevel: boostLevel,
		adjacency: g,
	}
	c.lognsqr = int(math.Ceil(2.0*math.Log2(float64(n)))) + 1
	if c.lognsqr < 1 {
		c.lognsqr = 1
	}

	c.treeEdges = make([][]*avl.Tree[uint64, *etf.CutNode], numLevels)
	c.activeEdges = make([][]*etf.CutNode, numLevels)
	c.forests = make([]*etf.CutSet, numLevels)
	c.xorVectors = make([][][][]uint64, numLevels)
	c.hashes = make([][]*hashfam.TabularHash, numLevels)

	seedCounter := seed
	for i := 0; i < numLevels; i++ {
		c.forests[i] = etf.NewCutSet()
		c.treeEdges[i] = make([]*avl.Tree[uint64, *etf.CutNode], n)
		c.activeEdges[i] = make([]*etf.CutNode, n)
		c.xorVectors[i] = make([][][]uint64, n)
		c.hashes[i] = make([]*hashfam.TabularHash, boostLevel)

		for j := 0; j < boostLevel; j++ {
			c.hashes[i][j] = hashfam.New(n, seedCounter, blockSize)
			seedCounter++
		}

		for v := uint64(0); v < n; v++ {
			c.treeEdges[i][v] = avl.New[uint64, *etf.CutNode](lessU64)
			c.xorVectors[i][v] = make([][]uint64, boostLevel)
			for k := 0; k < boostLevel; k++ {
				c.xorVectors[i][v][k] = make([]uint64, c.lognsqr)
			}
		}
	}
	return c
}

// AddEdgeToSet adds e to the cut-set sketches of its two endpoints on every
// level, at every boost copy, starting from the sparsest row the edge's
// hash selects. Calling this twice for the same edge removes it again (XOR
// is its own inverse), which is exactly how DeleteEdge uses it.
func (c *CutSet) AddEdgeToSet(e Edge) {
	e = canon(e)
	packed := pack(e)

	for i := 0; i < c.numLevels; i++ {
		startingLevel := make([]int, c.boostLevel)
		for j := 0; j < c.boostLevel; j++ {
			hashVal := c.hashes[i][j].Hash(e.V, e.W)
			binPotk := uint64(1)
			lvl := 0
			for hashVal >= binPotk {
				lvl++
				binPotk *= 2
			}
			startingLevel[j] = lvl

			for k := lvl; k < c.lognsqr; k++ {
				c.xorVectors[i][e.V][j][k] ^= packed
				c.xorVectors[i][e.W][j][k] ^= packed
			}
		}

		if c.activeEdges[i][e.V] != nil {
			c.forests[i].SetTrackingData(c.activeEdges[i][e.V], c.flattenSketch(i, e.V))
		}
		if c.activeEdges[i][e.W] != nil {
			c.forests[i].SetTrackingData(c.activeEdges[i][e.W], c.flattenSketch(i, e.W))
		}
	}
}

func (c *CutSet) refreshActiveInstance(level int, v uint64) {
	tree := c.treeEdges[level][v]
	if tree.Empty() {
		c.activeEdges[level][v] = nil
		return
	}
	_, node := tree.AnyEntry()
	c.activeEdges[level][v] = node
	c.forests[level].SetTrackingData(node, c.flattenSketch(level, v))
}

func (c *CutSet) flattenSketch(level int, v uint64) etf.Sketch {
	rows := make(etf.Sketch, c.boostLevel)
	for j := 0; j < c.boostLevel; j++ {
		row := make([]uint64, c.lognsqr)
		copy(row, c.xorVectors[level][v][j])
		rows[j] = row
	}
	return rows
}

// MakeTreeEdge inserts e as a tree edge on every level from level upward.
// Returns ErrAlreadyConnected if e's endpoints already share a component on
// any of those levels — callers must only invoke this for genuine spanning
// edges.
func (c *CutSet) MakeTreeEdge(e Edge, level int) error {
	e = canon(e)
	for i := level; i < c.numLevels; i++ {
		if c.CompRepresentative(e.V, i) == c.CompRepresentative(e.W, i) {
			return ErrAlreadyConnected
		}

		vEdge, wEdge := c.activeEdges[i][e.V], c.activeEdges[i][e.W]
		vwNode, wvNode := c.forests[i].InsertETEdge(e.V, e.W, vEdge, wEdge)

		_ = c.treeEdges[i][e.V].Insert(e.W, vwNode)
		_ = c.treeEdges[i][e.W].Insert(e.V, wvNode)

		if vEdge == nil {
			c.activeEdges[i][e.V] = vwNode
			c.forests[i].SetTrackingData(vwNode, c.flattenSketch(i, e.V))
		}
		if wEdge == nil {
			c.activeEdges[i][e.W] = wvNode
			c.forests[i].SetTrackingData(wvNode, c.flattenSketch(i, e.W))
		}
	}
	return nil
}

// MakeNonTreeEdge removes e from every level on which it is a tree edge,
// demoting it back to an ordinary sketch member (which AddEdgeToSet already
// keeps current, since sketch membership does not depend on tree status).
func (c *CutSet) MakeNonTreeEdge(e Edge) error {
	e = canon(e)
	if !c.treeEdges[c.numLevels-1][e.V].Contains(e.W) {
		return ErrNotTreeEdge
	}

	for i := c.numLevels - 1; i >= 0; i-- {
		if !c.treeEdges[i][e.V].Contains(e.W) {
			break
		}
		edgeNode, _ := c.treeEdges[i][e.V].Remove(e.W)
		backNode, _ := c.treeEdges[i][e.W].Remove(e.V)
		c.forests[i].DeleteETEdge(edgeNode, backNode)

		if c.activeEdges[i][e.V] == edgeNode {
			c.refreshActiveInstance(i, e.V)
		}
		if c.activeEdges[i][e.W] == backNode {
			c.refreshActiveInstance(i, e.W)
		}
	}
	return nil
}

// DeleteEdge removes e from the sketches of its two endpoints on every
// level, demoting it out of the spanning forest first if it is currently a
// tree edge.
func (c *CutSet) DeleteEdge(e Edge) {
	e = canon(e)
	if c.treeEdges[c.numLevels-1][e.V].Contains(e.W) {
		_ = c.MakeNonTreeEdge(e)
	}
	c.AddEdgeToSet(e)
}

// Search looks for an edge leaving v's component on level, returning one
// with probability at least 1/8 if any exists, or NoEdge otherwise.
func (c *CutSet) Search(v uint64, level int) Edge {
	var rows [][]uint64
	if c.activeEdges[level][v] == nil {
		rows = make([][]uint64, c.boostLevel)
		for j := 0; j < c.boostLevel; j++ {
			rows[j] = c.xorVectors[level][v][j]
		}
	} else {
		sketch := c.forests[level].GetTrackingData(c.forests[level].GetRoot(c.activeEdges[level][v]))
		rows = sketch
	}

	vRoot := c.CompRepresentative(v, level)

	for i := 0; i < c.boostLevel; i++ {
		for j := 0; j < c.lognsqr; j++ {
			packed := rows[i][j]
			if packed == 0 {
				continue
			}
			candidate := unpack(packed)
			if candidate.V >= uint64(c.n) || candidate.W >= uint64(c.n) {
				break
			}
			if !c.adjacency.HasEdge(candidate.V, candidate.W) {
				break
			}
			vIn := c.CompRepresentative(candidate.V, level) == vRoot
			wIn := c.CompRepresentative(candidate.W, level) == vRoot
			if vIn != wIn {
				return candidate
			}
			break
		}
	}
	return NoEdge
}

// CompRepresentative returns a representative vertex of v's component on
// level (the V end of the first edge-node of its Euler tour), stable until a
// tree edge is inserted or removed on that level.
func (c *CutSet) CompRepresentative(v uint64, level int) uint64 {
	if c.activeEdges[level][v] == nil {
		return v
	}
	first := c.forests[level].GetRoot(c.activeEdges[level][v])
	for first.Left() != nil {
		first = first.Left()
	}
	return first.V
}

// CompSize returns the size of v's component on level.
func (c *CutSet) CompSize(v uint64, level int) int {
	if c.activeEdges[level][v] == nil {
		return 1
	}
	return c.forests[level].GetSize(c.activeEdges[level][v])
}
