package bbf

// pushDown propagates a lazy reversal and/or pending cost delta from n to
// its immediate children, so code about to inspect or restructure n's
// children can trust their cost/min/max and literal left/right fields.
func pushDown(n *Node) {
	if n == nil || n.isLeaf {
		return
	}
	if n.reversed {
		n.left, n.right = n.right, n.left
		if n.left != nil {
			n.left.reversed = !n.left.reversed
			n.left.leftMost, n.left.rightMost = n.left.rightMost, n.left.leftMost
		}
		if n.right != nil {
			n.right.reversed = !n.right.reversed
			n.right.leftMost, n.right.rightMost = n.right.rightMost, n.right.leftMost
		}
		n.reversed = false
	}
	if n.pending != 0 {
		if n.left != nil {
			applyDelta(n.left, n.pending)
		}
		if n.right != nil {
			applyDelta(n.right, n.pending)
		}
		n.pending = 0
	}
}

func applyDelta(n *Node, delta int64) {
	if n.isLeaf {
		return
	}
	n.cost += delta
	n.min += delta
	n.max += delta
	n.pending += delta
}

// pull recomputes weight/rank/min/max/leftMost/rightMost of an internal node
// from its (already correct, already unreversed) children. Precondition:
// n.reversed == false.
func pull(n *Node) {
	l, r := n.left, n.right
	n.weight = l.weight + r.weight
	n.rank = rankOf(n.weight)

	min := n.cost
	if l.min < min {
		min = l.min
	}
	if r.min < min {
		min = r.min
	}
	n.min = min

	max := n.cost
	if l.max > max {
		max = l.max
	}
	if r.max > max {
		max = r.max
	}
	n.max = max

	n.leftMost = l.leftMost
	n.rightMost = r.rightMost

	lMin, lMax := effTilt(l)
	rMin, rMax := effTilt(r)
	here := int64(l.weight) - int64(r.weight)

	tMin := here
	if lMin < tMin {
		tMin = lMin
	}
	if v := rMin + int64(l.weight); v < tMin {
		tMin = v
	}
	n.tiltLocalMin = tMin

	tMax := here
	if lMax > tMax {
		tMax = lMax
	}
	if v := rMax + int64(l.weight); v > tMax {
		tMax = v
	}
	n.tiltLocalMax = tMax
}

// effTilt returns n's tilt-aggregate bounds as seen in its CURRENT logical
// orientation, i.e. accounting for n's own (not-yet-pushed-down) reversed
// flag by swapping and negating min/max — reversing a sequence turns
// "weight before e" into "weight after e", which negates the tilt value at
// every edge and swaps which bound is the min and which is the max.
func effTilt(n *Node) (lo, hi int64) {
	if n.reversed {
		return -n.tiltLocalMax, -n.tiltLocalMin
	}
	return n.tiltLocalMin, n.tiltLocalMax
}

func newInternal(left, right *Node, cost int64) *Node {
	n := &Node{left: left, right: right, cost: cost}
	left.parent = n
	right.parent = n
	pull(n)
	return n
}

func rotate(head *Node, left bool) *Node {
	pushDown(head)
	var newHead *Node
	if left {
		newHead = head.right
		pushDown(newHead)
		head.right = newHead.left
		if head.right != nil {
			head.right.parent = head
		}
		newHead.left = head
	} else {
		newHead = head.left
		pushDown(newHead)
		head.left = newHead.right
		if head.left != nil {
			head.left.parent = head
		}
		newHead.right = head
	}
	newHead.parent = head.parent
	head.parent = newHead
	pull(head)
	pull(newHead)
	return newHead
}

// fixup restores the rank-balance condition (|rank(left)-rank(right)| <= 1)
// at n after one child's rank changed by at most the recursive join depth,
// using the same single/double rotation shapes as a rank-balanced AVL tree.
func fixup(n *Node) *Node {
	lr, rr := n.left.rank, n.right.rank
	switch {
	case lr-rr > 1:
		pushDown(n.left)
		if n.left.left.rank < n.left.right.rank {
			n.left = rotate(n.left, true)
			n.left.parent = n
		}
		return rotate(n, false)
	case rr-lr > 1:
		pushDown(n.right)
		if n.right.right.rank < n.right.left.rank {
			n.right = rotate(n.right, false)
			n.right.parent = n
		}
		return rotate(n, true)
	default:
		return n
	}
}

// join merges t1 and t2 (in that in-order relation) via a new boundary edge
// of the given cost, maintaining rank balance. Either side may be nil, in
// which case the other side is returned unchanged and the edge cost is
// discarded (there is nothing to attach it to).
func join(t1, t2 *Node, cost int64) *Node {
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
	if rankDiff(t1, t2) <= 1 {
		return newInternal(t1, t2, cost)
	}
	if t1.rank > t2.rank {
		pushDown(t1)
		nr := join(t1.right, t2, cost)
		t1.right = nr
		nr.parent = t1
		pull(t1)
		return fixup(t1)
	}
	pushDown(t2)
	nl := join(t1, t2.left, cost)
	t2.left = nl
	nl.parent = t2
	pull(t2)
	return fixup(t2)
}

// GlobalJoin joins t1 and t2, in that order, connected by a new edge of cost
// x. O(log(W1) + log(W2)) where W_i are the trees' weights. Either tree may
// be nil.
func GlobalJoin(t1, t2 *Node, x int64) *Node {
	return join(t1, t2, x)
}

// GlobalSplit splits the tree containing splitNode into a tree of every
// leaf strictly before it and a tree of every leaf strictly after it,
// leaving splitNode itself a solitary leaf (parent == nil). Returns the two
// flanking roots (nil if empty) and the costs of the two edges that used to
// be immediately before and after splitNode (0 if no such edge existed).
// O(log n).
func GlobalSplit(splitNode *Node) (before, after *Node, lCost, rCost int64) {
	if b, c := GetBefore(splitNode); b != nil {
		lCost = c
	}
	if a, c := GetAfter(splitNode); a != nil {
		rCost = c
	}

	cur := splitNode
	for cur.parent != nil {
		p := cur.parent
		pushDown(p)
		e := p.cost
		if p.left == cur {
			// cur (containing splitNode on its rightmost boundary, or equal
			// to it) is the left child: p.right lies entirely after it.
			after = join(after, p.right, e)
		} else {
			// p.left lies entirely before splitNode, further out than
			// whatever "before" has accumulated from closer levels.
			before = join(p.left, before, e)
		}
		cur = p
	}
	splitNode.parent = nil
	if before != nil {
		before.parent = nil
	}
	if after != nil {
		after.parent = nil
	}
	return before, after, lCost, rCost
}

// DeleteTree drops all references out of a tree, allowing Go's garbage
// collector to reclaim it. There is no manual arena to release.
func DeleteTree(n *Node) {
	if n == nil {
		return
	}
	n.left, n.right, n.parent = nil, nil, nil
}
