package lct

import "github.com/katalvlaran/dynconn/internal/bbf"

// Link attaches v as a new child of w with the given tree-edge cost. Returns
// ErrSameTree if v and w already share a root (linking them would create a
// cycle). O(log n).
func (t *Tree) Link(v, w uint64, cost int64) error {
	if t.GetRoot(v) == t.GetRoot(w) {
		return ErrSameTree
	}
	t.Reroot(v)
	pathV := bbf.GetRoot(t.pathNodes[v])
	pathW := t.expose(w)
	joined := bbf.GlobalJoin(pathV, pathW, cost)
	t.conceal(joined)
	return nil
}

// Cut detaches v from its tree parent, returning the cost the removed edge
// carried. Returns ErrIsRoot if v has no parent.
func (t *Tree) Cut(v uint64) (int64, error) {
	if t.GetRoot(v) == v {
		return 0, ErrIsRoot
	}
	t.expose(v)
	_, after, _, rCost := bbf.GlobalSplit(t.pathNodes[v])
	t.parent[v] = None
	if after != nil {
		t.conceal(after)
	}
	t.conceal(t.pathNodes[v])
	return rCost, nil
}

// CutEdge removes the tree edge between v and w, wherever in their common
// tree it sits relative to either endpoint, returning its cost. Returns
// ErrNotConnected if v and w are in different trees, or ErrNotAdjacentEdge
// if neither is the other's tree parent.
func (t *Tree) CutEdge(v, w uint64) (int64, error) {
	rv, rw := t.GetRoot(v), t.GetRoot(w)
	if rv != rw {
		return 0, ErrNotConnected
	}
	pv, pw := t.GetParent(v), t.GetParent(w)
	if pv != w && pw != v {
		return 0, ErrNotAdjacentEdge
	}

	oldRoot := rv
	t.Reroot(w)
	cost, _ := t.Cut(v)
	t.Reroot(oldRoot)
	return cost, nil
}

// Reroot makes v the root of its own tree, without altering the tree's
// shape otherwise (every edge on the old root-to-v path simply reverses
// direction). O(log n).
func (t *Tree) Reroot(v uint64) {
	path := t.expose(v)
	bbf.Reverse(path)
	t.parent[v] = None
	t.conceal(path)
}

// GetParent returns v's tree parent, or None if v is a tree root. O(log n).
func (t *Tree) GetParent(v uint64) uint64 {
	path := bbf.GetRoot(t.pathNodes[v])
	if v != bbf.GetEnd(path).Name() {
		after, _ := bbf.GetAfter(t.pathNodes[v])
		return after.Name()
	}
	return t.parent[v]
}

// GetRoot returns the root of v's tree. O(log n).
func (t *Tree) GetRoot(v uint64) uint64 {
	path := t.expose(v)
	root := bbf.GetEnd(path).Name()
	t.conceal(path)
	return root
}

// GetCost returns the cost of the edge between v and its tree parent, or 0
// if v is a tree root. O(log n).
func (t *Tree) GetCost(v uint64) int64 {
	path := bbf.GetRoot(t.pathNodes[v])
	if bbf.GetEnd(path).Name() == v {
		if t.parent[v] != None {
			return t.pCost[v]
		}
		return 0
	}
	_, cost := bbf.GetAfter(t.pathNodes[v])
	return cost
}

// GetMinEdge returns the minimum-cost edge on the path from v to its root,
// preferring the edge closest to the root among ties, or ok=false if v is
// its own root. O(log n).
func (t *Tree) GetMinEdge(v uint64) (edge Edge, ok bool) {
	path := t.expose(v)
	node := bbf.GetMinEdgeOnPath(path)
	ok = node != nil
	if ok {
		edge = Edge{Child: bbf.EdgeBefore(node).Name(), Parent: bbf.EdgeAfter(node).Name(), Cost: node.Cost()}
	}
	t.conceal(path)
	return edge, ok
}

// GetMaxEdge returns the maximum-cost edge on the path from v to its root,
// preferring the edge closest to the root among ties, or ok=false if v is
// its own root. O(log n).
func (t *Tree) GetMaxEdge(v uint64) (edge Edge, ok bool) {
	path := t.expose(v)
	node := bbf.GetMaxEdgeOnPath(path)
	ok = node != nil
	if ok {
		edge = Edge{Child: bbf.EdgeBefore(node).Name(), Parent: bbf.EdgeAfter(node).Name(), Cost: node.Cost()}
	}
	t.conceal(path)
	return edge, ok
}

// Update adds delta to the cost of every edge on the path from v to its
// root. O(log n).
func (t *Tree) Update(v uint64, delta int64) {
	path := t.expose(v)
	bbf.Update(path, delta)
	t.conceal(path)
}
