package queryforest

import (
	"errors"

	"github.com/katalvlaran/dynconn/internal/seqforest"
)

var (
	// ErrAlreadyConnected is a ContractViolation: AddEdge was asked to link
	// two vertices that already share a component.
	ErrAlreadyConnected = errors.New("queryforest: vertices already connected")
	// ErrNotAnEdge is a ContractViolation: DeleteEdge was asked to remove an
	// edge that was never added (or was already removed).
	ErrNotAnEdge = errors.New("queryforest: edge not present")
)

func sumSize(a, b int) int { return a + b }

type edgeKey struct{ u, v uint64 }

func canon(u, v uint64) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{u, v}
}

type edgeRef struct{ fwd, back *seqforest.Node[int] }

// Forest is QueryForestAVL: an Euler-tour forest over n vertices whose only
// aggregate is component size, used to answer "same component" and
// "component size" queries in O(log n). Every vertex owns one permanent
// anchor node that is never removed, so GetRoot is always defined even for
// an isolated vertex.
type Forest struct {
	f             *seqforest.Forest[int]
	anchor        []*seqforest.Node[int]
	edges         map[edgeKey]*edgeRef
	numComponents int
}

// New builds a QueryForestAVL over n initially-isolated vertices 0..n-1.
func New(n uint64) *Forest {
	qf := &Forest{
		f:             seqforest.New[int](0, sumSize),
		anchor:        make([]*seqforest.Node[int], n),
		edges:         make(map[edgeKey]*edgeRef),
		numComponents: int(n),
	}
	for v := uint64(0); v < n; v++ {
		a := qf.f.NewNode(v, v)
		qf.f.SetOwn(a, 1, true)
		qf.anchor[v] = a
	}
	return qf
}

// NumberOfComponents returns the current number of connected components.
func (qf *Forest) NumberOfComponents() int {
	return qf.numComponents
}

// Connected reports whether u and v currently share a component.
func (qf *Forest) Connected(u, v uint64) bool {
	if u == v {
		return true
	}
	return seqforest.GetRoot(qf.anchor[u]) == seqforest.GetRoot(qf.anchor[v])
}

// AddEdge records a new spanning edge between u and v, merging their two
// components into one. Returns ErrAlreadyConnected if u and v are already in
// the same component — callers must only invoke this for tree edges.
func (qf *Forest) AddEdge(u, v uint64) error {
	if qf.Connected(u, v) {
		return ErrAlreadyConnected
	}
	key := canon(u, v)
	vTree := qf.f.MakeFront(qf.anchor[u])
	wTree := qf.f.MakeFront(qf.anchor[v])

	fwd := qf.f.NewNode(u, v)
	back := qf.f.NewNode(v, u)

	merged := qf.f.Join3(vTree, fwd, wTree)
	qf.f.TrivialInsert(back, merged, false)

	qf.edges[key] = &edgeRef{fwd: fwd, back: back}
	qf.numComponents--
	return nil
}

// DeleteEdge removes a previously added spanning edge between u and v,
// splitting its component into the two that result. Returns ErrNotAnEdge if
// no such edge is on record.
func (qf *Forest) DeleteEdge(u, v uint64) error {
	key := canon(u, v)
	ref, ok := qf.edges[key]
	if !ok {
		return ErrNotAnEdge
	}
	delete(qf.edges, key)

	qf.f.MakeFront(ref.fwd)
	before, _ := qf.f.Split3(ref.back)
	leftPart := qf.f.TrivialInsert(ref.back, before, false)

	_, afterEdgeRemoved := qf.f.TrivialDelete(leftPart, true)
	if afterEdgeRemoved == nil {
		return nil
	}
	qf.f.TrivialDelete(afterEdgeRemoved, false)
	qf.numComponents++
	return nil
}

// IsTreeEdge reports whether (u,v) is currently a recorded spanning edge.
func (qf *Forest) IsTreeEdge(u, v uint64) bool {
	_, ok := qf.edges[canon(u, v)]
	return ok
}

// CompRepresentative returns a vertex that stably identifies v's component
// until the next AddEdge/DeleteEdge touching it — the V end of whichever
// node currently comes first in v's tour.
func (qf *Forest) CompRepresentative(v uint64) uint64 {
	first := seqforest.GetRoot(qf.anchor[v])
	for first.Left() != nil {
		first = first.Left()
	}
	return first.V
}

// CompSize returns the number of vertices in v's current component.
func (qf *Forest) CompSize(v uint64) int {
	return qf.f.Agg(seqforest.GetRoot(qf.anchor[v]))
}
