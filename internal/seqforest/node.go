package seqforest

import "math/bits"

// Node is one element of an Euler-tour sequence: a directed edge (V, W) of
// some undirected tree, plus an aggregate slot. HasOwn/Own hold the node's
// own direct contribution to the aggregate (e.g. "I am the active owner of
// W's cut-set sketch", or "I am on-level"); Agg caches the combine of Own
// (or the forest's identity, if HasOwn is false) with both children's Agg.
type Node[A any] struct {
	V, W uint64

	HasOwn bool
	Own    A
	Agg    A

	left, right, parent *Node[A]
	rank                int
	size                uint64
}

// Parent exposes n's current tree parent, or nil at a root.
func (n *Node[A]) Parent() *Node[A] { return n.parent }

// Left exposes n's current left child, or nil if n is a leaf.
func (n *Node[A]) Left() *Node[A] { return n.left }

// Right exposes n's current right child, or nil if n is a leaf.
func (n *Node[A]) Right() *Node[A] { return n.right }

// Forest holds the aggregate's identity element and its combine function;
// every Node it creates or touches is combined through these two.
type Forest[A any] struct {
	identity A
	combine  func(a, b A) A
}

// New constructs a Forest whose aggregate combine is associative with the
// given identity (combine(identity, x) == x for all x).
func New[A any](identity A, combine func(a, b A) A) *Forest[A] {
	return &Forest[A]{identity: identity, combine: combine}
}

// NewNode allocates a solitary single-element tree for edge (v, w).
func (f *Forest[A]) NewNode(v, w uint64) *Node[A] {
	n := &Node[A]{V: v, W: w, Agg: f.identity, rank: 0, size: 1}
	return n
}

func rankOf(size uint64) int {
	if size == 0 {
		return 0
	}
	return bits.Len64(size) - 1
}

func sizeOf[A any](n *Node[A]) uint64 {
	if n == nil {
		return 0
	}
	return n.size
}

func rankOfNode[A any](n *Node[A]) int {
	if n == nil {
		return -1
	}
	return n.rank
}

func (f *Forest[A]) own(n *Node[A]) A {
	if n.HasOwn {
		return n.Own
	}
	return f.identity
}

func aggOf[A any](f *Forest[A], n *Node[A]) A {
	if n == nil {
		return f.identity
	}
	return n.Agg
}

func (f *Forest[A]) pull(n *Node[A]) {
	n.size = sizeOf(n.left) + sizeOf(n.right) + 1
	n.rank = rankOf(n.size)
	n.Agg = f.combine(f.combine(f.own(n), aggOf(f, n.left)), aggOf(f, n.right))
}

// SetOwn sets n's own aggregate contribution and re-pulls every ancestor up
// to the root. O(log n).
func (f *Forest[A]) SetOwn(n *Node[A], val A, hasOwn bool) {
	n.HasOwn = hasOwn
	n.Own = val
	for cur := n; cur != nil; cur = cur.parent {
		f.pull(cur)
	}
}

func (f *Forest[A]) rotate(head *Node[A], left bool) *Node[A] {
	var newHead *Node[A]
	if left {
		newHead = head.right
		head.right = newHead.left
		if head.right != nil {
			head.right.parent = head
		}
		newHead.left = head
	} else {
		newHead = head.left
		head.left = newHead.right
		if head.left != nil {
			head.left.parent = head
		}
		newHead.right = head
	}
	newHead.parent = head.parent
	head.parent = newHead
	f.pull(head)
	f.pull(newHead)
	return newHead
}

func (f *Forest[A]) fixup(n *Node[A]) *Node[A] {
	lr, rr := rankOfNode(n.left), rankOfNode(n.right)
	switch {
	case lr-rr > 1:
		if rankOfNode(n.left.left) < rankOfNode(n.left.right) {
			n.left = f.rotate(n.left, true)
			n.left.parent = n
		}
		return f.rotate(n, false)
	case rr-lr > 1:
		if rankOfNode(n.right.right) < rankOfNode(n.right.left) {
			n.right = f.rotate(n.right, false)
			n.right.parent = n
		}
		return f.rotate(n, true)
	default:
		return n
	}
}

func rankDiff[A any](a, b *Node[A]) int {
	d := rankOfNode(a) - rankOfNode(b)
	if d < 0 {
		d = -d
	}
	return d
}

// join2 merges t1 then t2 in sequence order, rank-balanced. Either side may
// be nil.
func (f *Forest[A]) join2(t1, t2 *Node[A]) *Node[A] {
	if t1 == nil {
		if t2 != nil {
			t2.parent = nil
		}
		return t2
	}
	if t2 == nil {
		t1.parent = nil
		return t1
	}
	if rankDiff[A](t1, t2) <= 1 {
		n := &Node[A]{left: t1, right: t2}
		t1.parent, t2.parent = n, n
		f.pull(n)
		return n
	}
	if t1.rank > t2.rank {
		nr := f.join2(t1.right, t2)
		t1.right = nr
		nr.parent = t1
		f.pull(t1)
		return f.fixup(t1)
	}
	nl := f.join2(t1, t2.left)
	t2.left = nl
	nl.parent = t2
	f.pull(t2)
	return f.fixup(t2)
}

// Join3 merges left, mid, right in sequence order. mid must be a solitary
// single-node tree (as returned by NewNode, or by Split*/TrivialDelete).
func (f *Forest[A]) Join3(left, mid, right *Node[A]) *Node[A] {
	return f.join2(f.join2(left, mid), right)
}

// Split3 splits n out of its tree into everything strictly before it and
// everything strictly after it, leaving n itself a solitary single-node
// tree. O(log n).
func (f *Forest[A]) Split3(n *Node[A]) (before, after *Node[A]) {
	cur := n
	for cur.parent != nil {
		p := cur.parent
		if p.left == cur {
			after = f.join2(after, p.right)
		} else {
			before = f.join2(p.left, before)
		}
		cur = p
	}
	n.left, n.right = nil, nil
	n.parent = nil
	f.pull(n)
	if before != nil {
		before.parent = nil
	}
	if after != nil {
		after.parent = nil
	}
	return before, after
}

// Split splits the tree containing n into everything strictly before n
// (left), and n together with everything after it (right). Matches the
// Euler-tour forest's split(v) contract, where v itself stays attached to
// the right-hand tree rather than becoming solitary.
func (f *Forest[A]) Split(n *Node[A]) (left, right *Node[A]) {
	before, after := f.Split3(n)
	return before, f.join2(n, after)
}

// GetRoot returns the root of the tree containing n. O(log n).
func GetRoot[A any](n *Node[A]) *Node[A] {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

func leftmost[A any](n *Node[A]) *Node[A] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[A any](n *Node[A]) *Node[A] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// TrivialInsert inserts newNode (solitary) as the first or last element of
// root's tree. O(log n).
func (f *Forest[A]) TrivialInsert(newNode, root *Node[A], first bool) *Node[A] {
	if first {
		return f.join2(newNode, root)
	}
	return f.join2(root, newNode)
}

// TrivialDelete removes the first or last element of root's tree, returning
// the removed (now solitary) node and the remaining tree's root (nil if
// root was a single element). O(log n).
func (f *Forest[A]) TrivialDelete(root *Node[A], first bool) (removed, remainder *Node[A]) {
	var target *Node[A]
	if first {
		target = leftmost(root)
	} else {
		target = rightmost(root)
	}
	before, after := f.Split3(target)
	if first {
		return target, after
	}
	return target, before
}

// MakeFront rotates the Euler tour so that newFront becomes the first
// element, without changing the cyclic sequence otherwise. Returns the root
// of the rotated tree. O(log n).
func (f *Forest[A]) MakeFront(newFront *Node[A]) *Node[A] {
	before, after := f.Split3(newFront)
	return f.join2(f.join2(newFront, after), before)
}

// GetTour collects, in sequence order, the (V, W) pair of every element in
// root's tree. Elements are the leaves; the internal routing nodes that
// join creates carry no pair and are skipped.
func GetTour[A any](root *Node[A], out *[]struct{ V, W uint64 }) {
	if root == nil {
		return
	}
	if root.left == nil && root.right == nil {
		*out = append(*out, struct{ V, W uint64 }{root.V, root.W})
		return
	}
	GetTour(root.left, out)
	GetTour(root.right, out)
}

// Agg returns the combine of every own value in root's subtree (or the
// forest's identity if root is nil).
func (f *Forest[A]) Agg(root *Node[A]) A {
	return aggOf(f, root)
}
