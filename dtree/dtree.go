package dtree

import "errors"

// None is the sentinel "no vertex/no parent" value.
const None = ^uint64(0)

// ErrSelfLoop is a ContractViolation: AddEdge/DeleteEdge called with u == v.
var ErrSelfLoop = errors.New("dtree: self-loop")

// ErrEdgeExists is a ContractViolation: AddEdge called for an edge already
// present, either as a tree edge or a non-tree edge.
var ErrEdgeExists = errors.New("dtree: edge already present")

// ErrEdgeNotFound is a ContractViolation: DeleteEdge called for an edge
// neither a tree edge nor a non-tree edge between u and v.
var ErrEdgeNotFound = errors.New("dtree: edge not present")

// DTree is the centroid-rerooting spanning-forest reference structure.
type DTree struct {
	n uint64

	parent   []uint64
	size     []uint64
	children [][]uint64
	childIdx []int // index of v within children[parent[v]]

	// nonTreeNeighbors[v] / nonTreeIdx[v] mirror graph.Graph's adjacency
	// representation: an insertion-order slice plus a position map, giving
	// O(1) removal by index instead of a linear scan.
	nonTreeNeighbors [][]uint64
	nonTreeIdx       []map[uint64]int

	compNum int
	// partitionDirty is set by any structural change and cleared by the
	// next call that needs a full component labeling, which then does one
	// O(n) resweep rather than maintaining a live dirty-component list —
	// see the Open Question resolution in the design notes.
	partitionDirty bool
	compOf         []int
	compReps       []uint64
}

// New constructs a DTree over n initially-isolated vertices.
func New(n uint64) *DTree {
	t := &DTree{
		n:                n,
		parent:           make([]uint64, n),
		size:             make([]uint64, n),
		children:         make([][]uint64, n),
		childIdx:         make([]int, n),
		nonTreeNeighbors: make([][]uint64, n),
		nonTreeIdx:       make([]map[uint64]int, n),
		compNum:          int(n),
		partitionDirty:   true,
	}
	for v := uint64(0); v < n; v++ {
		t.parent[v] = None
		t.size[v] = 1
		t.nonTreeIdx[v] = make(map[uint64]int)
	}
	return t
}

// Find returns the root of u's component. When allowReroot is true and the
// child adjacent to the root on u's path to it holds a majority of the
// tree's vertices, the tree is rerooted there first (the rerooting
// optimisation), shortening future lookups toward that heavier subtree.
func (t *DTree) Find(u uint64, allowReroot bool) uint64 {
	root := u
	var childOfRoot uint64 = None
	for t.parent[root] != None {
		childOfRoot = root
		root = t.parent[root]
	}
	if allowReroot && childOfRoot != None && t.size[childOfRoot]*2 > t.size[root] {
		t.Reroot(childOfRoot)
		return childOfRoot
	}
	return root
}

// Reroot makes v the root of its component, reversing the parent/child
// relationship along the path from v to the old root.
func (t *DTree) Reroot(v uint64) {
	var path []uint64
	cur := v
	for cur != None {
		path = append(path, cur)
		cur = t.parent[cur]
	}
	for j := 0; j < len(path)-1; j++ {
		child, oldParent := path[j], path[j+1]
		t.cutChild(child, oldParent)
		t.addChild(oldParent, child)
	}
}

func (t *DTree) addChild(c, p uint64) {
	t.parent[c] = p
	t.childIdx[c] = len(t.children[p])
	t.children[p] = append(t.children[p], c)
	for x := p; x != None; x = t.parent[x] {
		t.size[x] += t.size[c]
	}
}

func (t *DTree) cutChild(c, p uint64) {
	idx := t.childIdx[c]
	last := len(t.children[p]) - 1
	moved := t.children[p][last]
	t.children[p][idx] = moved
	t.childIdx[moved] = idx
	t.children[p] = t.children[p][:last]
	t.parent[c] = None

	for x := p; x != None; x = t.parent[x] {
		t.size[x] -= t.size[c]
	}
}

func (t *DTree) addNonTreeEdge(u, v uint64) {
	t.nonTreeIdx[u][v] = len(t.nonTreeNeighbors[u])
	t.nonTreeNeighbors[u] = append(t.nonTreeNeighbors[u], v)
	t.nonTreeIdx[v][u] = len(t.nonTreeNeighbors[v])
	t.nonTreeNeighbors[v] = append(t.nonTreeNeighbors[v], u)
}

func (t *DTree) removeNonTreeEdge(u, v uint64) {
	t.removeNonTreeOneSide(u, v)
	t.removeNonTreeOneSide(v, u)
}

func (t *DTree) removeNonTreeOneSide(u, v uint64) {
	idx, ok := t.nonTreeIdx[u][v]
	if !ok {
		return
	}
	last := len(t.nonTreeNeighbors[u]) - 1
	moved := t.nonTreeNeighbors[u][last]
	t.nonTreeNeighbors[u][idx] = moved
	t.nonTreeIdx[u][moved] = idx
	t.nonTreeNeighbors[u] = t.nonTreeNeighbors[u][:last]
	delete(t.nonTreeIdx[u], v)
}

func (t *DTree) hasNonTreeEdge(u, v uint64) bool {
	_, ok := t.nonTreeIdx[u][v]
	return ok
}

// Query reports whether u and v are currently connected.
func (t *DTree) Query(u, v uint64) bool {
	if u == v {
		return true
	}
	return t.Find(u, false) == t.Find(v, false)
}

// NumberOfComponents returns the current number of connected components.
func (t *DTree) NumberOfComponents() int {
	return t.compNum
}

// ComponentID returns a dense, stable-until-the-next-structural-change
// identifier in [0, NumberOfComponents) for v's component.
func (t *DTree) ComponentID(v uint64) int {
	t.ensurePartitionFresh()
	return t.compOf[v]
}

func (t *DTree) ensurePartitionFresh() {
	if !t.partitionDirty {
		return
	}
	t.compOf = make([]int, t.n)
	t.compReps = t.compReps[:0]
	rootID := make(map[uint64]int)
	for v := uint64(0); v < t.n; v++ {
		r := t.Find(v, false)
		id, ok := rootID[r]
		if !ok {
			id = len(t.compReps)
			rootID[r] = id
			t.compReps = append(t.compReps, r)
		}
		t.compOf[v] = id
	}
	t.compNum = len(t.compReps)
	t.partitionDirty = false
}

// AddEdge adds edge (u,v): if the endpoints are already connected, it is
// recorded as a non-tree edge; otherwise the lighter of the two components
// is rerooted at its own endpoint and linked as a child of the other
// endpoint.
func (t *DTree) AddEdge(u, v uint64) error {
	if u == v {
		return ErrSelfLoop
	}
	ru, rv := t.Find(u, true), t.Find(v, true)
	if ru == rv {
		if t.hasNonTreeEdge(u, v) || t.parent[u] == v || t.parent[v] == u {
			return ErrEdgeExists
		}
		t.addNonTreeEdge(u, v)
		return nil
	}

	if t.size[ru] <= t.size[rv] {
		t.Reroot(u)
		t.addChild(u, v)
	} else {
		t.Reroot(v)
		t.addChild(v, u)
	}
	t.compNum--
	t.partitionDirty = true
	return nil
}

// DeleteEdge removes edge (u,v). If it is a tree edge, the smaller of the
// two resulting pieces is searched for a replacement edge among its
// non-tree edges; if none is found the component genuinely splits.
func (t *DTree) DeleteEdge(u, v uint64) error {
	if u == v {
		return ErrSelfLoop
	}

	var child, par uint64
	switch {
	case t.parent[u] == v:
		child, par = u, v
	case t.parent[v] == u:
		child, par = v, u
	default:
		if !t.hasNonTreeEdge(u, v) {
			return ErrEdgeNotFound
		}
		t.removeNonTreeEdge(u, v)
		return nil
	}

	t.cutChild(child, par)
	t.compNum++
	t.partitionDirty = true

	largeRoot := t.Find(par, false)
	smallRoot := child
	var smallMembers []uint64
	if t.size[smallRoot] <= t.size[largeRoot] {
		smallMembers = t.collectSubtree(smallRoot)
	} else {
		smallRoot, largeRoot = largeRoot, smallRoot
		smallMembers = t.collectSubtree(smallRoot)
	}

	var repU, repV uint64
	found := false
outer:
	for _, x := range smallMembers {
		neighbors := append([]uint64(nil), t.nonTreeNeighbors[x]...)
		for _, y := range neighbors {
			if t.Find(y, false) == largeRoot {
				repU, repV = x, y
				found = true
				break outer
			}
		}
	}

	if found {
		t.removeNonTreeEdge(repU, repV)
		ra, rb := t.Find(repU, true), t.Find(repV, true)
		if t.size[ra] <= t.size[rb] {
			t.Reroot(repU)
			t.addChild(repU, repV)
		} else {
			t.Reroot(repV)
			t.addChild(repV, repU)
		}
		t.compNum--
		t.partitionDirty = true
	}
	return nil
}

func (t *DTree) collectSubtree(root uint64) []uint64 {
	out := []uint64{root}
	queue := []uint64{root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, c := range t.children[v] {
			out = append(out, c)
			queue = append(queue, c)
		}
	}
	return out
}
