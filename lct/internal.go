package lct

import "github.com/katalvlaran/dynconn/internal/bbf"

// splice absorbs the dashed edge above path's far (root-ward) end into one
// solid path: let u = end(path), v = parent[u]. v's own solid path is split
// around v; whatever solid child v already had (its old continuation toward
// its own leaves) is demoted into v's dashed-child set, and path is joined
// in v's place, followed by whatever lay above v on its old path. O(log n)
// amortized — the cost is charged to the rebalancing this triggers in
// pathSets[v], not to splice itself.
func (t *Tree) splice(path *bbf.Node) *bbf.Node {
	u := bbf.GetEnd(path).Name()
	v := t.parent[u]

	before, after, lCost, rCost := bbf.GlobalSplit(t.pathNodes[v])
	mustSetWeight(t.pathNodes[v], t.pathNodes[v].Weight()-path.Weight())
	t.pathSets[v].Remove(pathKey{weight: path.Weight(), end: u})

	if before != nil {
		beforeEnd := bbf.GetEnd(before).Name()
		t.parent[beforeEnd] = v
		t.pCost[beforeEnd] = lCost
		mustSetWeight(t.pathNodes[v], t.pathNodes[v].Weight()+before.Weight())
		_ = t.pathSets[v].Insert(pathKey{weight: before.Weight(), end: beforeEnd}, before, before.Weight())
	}

	newPath := bbf.GlobalJoin(path, t.pathNodes[v], t.pCost[u])
	if after != nil {
		newPath = bbf.GlobalJoin(newPath, after, rCost)
	}
	return newPath
}

// expose builds one solid path from v up to the root of v's tree and
// returns it, splicing every dashed edge along the way.
func (t *Tree) expose(v uint64) *bbf.Node {
	before, after, lCost, rCost := bbf.GlobalSplit(t.pathNodes[v])
	if before != nil {
		beforeEnd := bbf.GetEnd(before).Name()
		t.parent[beforeEnd] = v
		t.pCost[beforeEnd] = lCost
		mustSetWeight(t.pathNodes[v], t.pathNodes[v].Weight()+before.Weight())
		_ = t.pathSets[v].Insert(pathKey{weight: before.Weight(), end: beforeEnd}, before, before.Weight())
	}

	path := t.pathNodes[v]
	if after != nil {
		path = bbf.GlobalJoin(path, after, rCost)
	}

	for t.parent[bbf.GetEnd(path).Name()] != None {
		path = t.splice(path)
	}
	return path
}

// slice demotes the rightmost tilted edge on path to dashed: the part
// before it (lighter than the part from v onward, or it wouldn't have been
// tilted) becomes a new dashed child hanging off v, keyed in pathSets[v].
// path's remaining solid portion at/above v may itself absorb a dashed
// child of v's that has since grown past half of v's own path weight.
// Returns the demoted (now-solitary-rooted) "before" portion, which is what
// the caller's outer loop continues checking for further tilted edges.
func (t *Tree) slice(path *bbf.Node) *bbf.Node {
	edge, _ := bbf.GetTiltedEdgeOnPath(path)
	v := bbf.EdgeAfter(edge).Name()

	before, after, lCost, rCost := bbf.GlobalSplit(t.pathNodes[v])
	pathUp := t.pathNodes[v]
	mustSetWeight(t.pathNodes[v], t.pathNodes[v].Weight()+before.Weight())

	if !t.pathSets[v].Empty() {
		maxKey, heavy := t.pathSets[v].Max()
		if maxKey.weight*2 > t.pathNodes[v].Weight() {
			t.pathSets[v].Remove(maxKey)
			mustSetWeight(t.pathNodes[v], t.pathNodes[v].Weight()-maxKey.weight)
			if after != nil {
				pathUp = bbf.GlobalJoin(pathUp, after, rCost)
			}
			pathUp = bbf.GlobalJoin(heavy, pathUp, t.pCost[bbf.GetEnd(heavy).Name()])
		} else if after != nil {
			pathUp = bbf.GlobalJoin(pathUp, after, rCost)
		}
	} else if after != nil {
		pathUp = bbf.GlobalJoin(pathUp, after, rCost)
	}

	t.refreshPathEntry(pathUp)

	beforeEnd := bbf.GetEnd(before).Name()
	_ = t.pathSets[v].Insert(pathKey{weight: before.Weight(), end: beforeEnd}, before, before.Weight())
	t.parent[beforeEnd] = v
	t.pCost[beforeEnd] = lCost

	return before
}

// conceal restores the dashed/solid boundary of path: it slices off every
// tilted edge, then, at path's new start vertex, promotes a dashed child
// back to solid if it has grown to outweigh half of that vertex's own path.
func (t *Tree) conceal(path *bbf.Node) {
	for {
		edge, _ := bbf.GetTiltedEdgeOnPath(path)
		if edge == nil {
			break
		}
		path = t.slice(path)
	}

	v := bbf.GetStart(path).Name()
	if !t.pathSets[v].Empty() {
		maxKey, heavy := t.pathSets[v].Max()
		if maxKey.weight*2 > t.pathNodes[v].Weight() {
			t.pathSets[v].Remove(maxKey)
			_, after, _, rCost := bbf.GlobalSplit(t.pathNodes[v])
			mustSetWeight(t.pathNodes[v], t.pathNodes[v].Weight()-maxKey.weight)
			if after != nil {
				path = bbf.GlobalJoin(t.pathNodes[v], after, rCost)
			}
			path = bbf.GlobalJoin(heavy, path, t.pCost[bbf.GetEnd(heavy).Name()])
			t.refreshPathEntry(path)
		}
	}
}

// refreshPathEntry updates the stored pointer for path's entry in its end
// vertex's dashed parent's pathSet after a join/split churn replaced the
// node object without changing its (weight, end) key. A no-op if that end
// vertex currently has no dashed parent (the common case: it is the true
// tree root).
func (t *Tree) refreshPathEntry(path *bbf.Node) {
	end := bbf.GetEnd(path).Name()
	p := t.parent[end]
	if p == None {
		return
	}
	_, _ = t.pathSets[p].ChangeVal(pathKey{weight: path.Weight(), end: end}, path)
}
