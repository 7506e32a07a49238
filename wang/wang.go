package wang

import (
	"errors"
	"math"

	"github.com/katalvlaran/dynconn/cutset"
	"github.com/katalvlaran/dynconn/graph"
	"github.com/katalvlaran/dynconn/lct"
	"github.com/katalvlaran/dynconn/queryforest"
)

// precision is the base per-boost-copy search failure probability, shared
// by both the base and lvlHeu level-count formulas.
const precision = 1.0 / 8

// Mode selects which of the three parameter heuristics govern numLevels/p.
type Mode int

const (
	// Base uses the worst-case-justified level-count formula.
	Base Mode = iota
	// PHeu overrides p to 1-(1/2)^boost, trading proof tightness for a
	// simpler bound.
	PHeu
	// LvlHeu sets numLevels to a flat 4*c*log2(n), ignoring p entirely.
	LvlHeu
)

// ErrSelfLoop is a ContractViolation: AddEdge/DeleteEdge called with u == v.
var ErrSelfLoop = errors.New("wang: self-loop")

// Wang is the randomized cut-set dynamic connectivity structure.
type Wang struct {
	n          uint64
	c          float64
	boostLevel int
	numLevels  int
	p          float64

	adjacency   *graph.Graph
	cutSet      *cutset.CutSet
	linkCut     *lct.Tree
	queryForest *queryforest.Forest
}

// New constructs a Wang/Kaibel instance over n initially-isolated vertices.
// c bounds query error probability at n^-c; boostLevel trades memory/time
// for a tighter per-round search success probability.
func New(n uint64, c float64, seed int64, boostLevel int, mode Mode) *Wang {
	w := &Wang{n: n, c: c, boostLevel: boostLevel}

	switch mode {
	case PHeu:
		w.p = 1 - math.Pow(0.5, float64(boostLevel))
	default:
		w.p = 1 - math.Pow(1-precision, float64(boostLevel))
	}

	logN := math.Log2(math.Max(float64(n), 2))
	switch mode {
	case LvlHeu:
		w.numLevels = int(math.Ceil(4 * c * logN))
	default:
		p := w.p
		a := 2 * math.Ceil(logN/math.Log2(4/(4-p))) * (1 - p/2) / (1 - p)
		b := 8 * c * logN * p * (1 - p/2) / (1 - p)
		w.numLevels = int(math.Ceil(math.Max(a, b)))
	}
	if w.numLevels < 1 {
		w.numLevels = 1
	}

	w.adjacency = graph.New()
	w.cutSet = cutset.New(n, boostLevel, w.numLevels, seed, w.adjacency)
	w.linkCut = lct.New(n)
	w.queryForest = queryforest.New(n)
	return w
}

// Query reports whether u and v are connected, with false negatives bounded
// by n^-c and no false positives.
func (w *Wang) Query(u, v uint64) bool {
	return w.queryForest.Connected(u, v)
}

// NumberOfComponents returns the current number of connected components.
func (w *Wang) NumberOfComponents() int {
	return w.queryForest.NumberOfComponents()
}

// AddEdge adds edge (u,v) to the graph and, if it connects two previously
// separate components, to the spanning forest at level 0.
func (w *Wang) AddEdge(u, v uint64) error {
	if u == v {
		return ErrSelfLoop
	}
	if err := w.adjacency.AddEdge(u, v); err != nil {
		return err
	}
	w.cutSet.AddEdgeToSet(cutset.Edge{V: u, W: v})

	if !w.queryForest.Connected(u, v) {
		_ = w.queryForest.AddEdge(u, v)
		_ = w.linkCut.Link(u, v, 0)
		_ = w.cutSet.MakeTreeEdge(cutset.Edge{V: u, W: v}, 0)
	}
	return nil
}

// DeleteEdge removes edge (u,v), triggering refreshTrees to search for a
// replacement spanning edge if (u,v) was one.
func (w *Wang) DeleteEdge(u, v uint64) error {
	if u == v {
		return ErrSelfLoop
	}
	if err := w.adjacency.DeleteEdge(u, v); err != nil {
		return err
	}
	w.cutSet.DeleteEdge(cutset.Edge{V: u, W: v})

	if w.queryForest.IsTreeEdge(u, v) {
		_ = w.queryForest.DeleteEdge(u, v)
		_, _ = w.linkCut.CutEdge(u, v)
		w.refreshTrees(u, v)
	}
	return nil
}

func (w *Wang) refreshTrees(u, v uint64) {
	separate := true

	for i := 0; i < w.numLevels-1; i++ {
		if w.cutSet.CompSize(u, i) == w.cutSet.CompSize(u, i+1) {
			w.searchAndInsert(u, i)
		}
		if separate && w.cutSet.CompSize(v, i) == w.cutSet.CompSize(v, i+1) {
			w.searchAndInsert(v, i)
		}
		if separate {
			separate = w.cutSet.CompRepresentative(u, i+1) != w.cutSet.CompRepresentative(v, i+1)
		}
	}

	top := w.numLevels - 1
	if w.cutSet.CompSize(u, top) == w.queryForest.CompSize(u) {
		w.searchAndInsert(u, top)
	}
	if separate && w.cutSet.CompSize(v, top) == w.queryForest.CompSize(v) {
		w.searchAndInsert(v, top)
	}
}

func (w *Wang) searchAndInsert(v uint64, level int) {
	e := w.cutSet.Search(v, level)
	if e == cutset.NoEdge {
		return
	}

	if w.queryForest.Connected(e.V, e.W) {
		w.linkCut.Reroot(e.V)
		heaviest, ok := w.linkCut.GetMaxEdge(e.W)
		if ok {
			w.cutSet.MakeNonTreeEdge(cutset.Edge{V: heaviest.Child, W: heaviest.Parent})
			_, _ = w.linkCut.Cut(heaviest.Child)
			_ = w.queryForest.DeleteEdge(heaviest.Child, heaviest.Parent)
		}
	}

	_ = w.cutSet.MakeTreeEdge(e, level+1)
	_ = w.queryForest.AddEdge(e.V, e.W)
	_ = w.linkCut.Link(e.V, e.W, int64(level+1))
}
