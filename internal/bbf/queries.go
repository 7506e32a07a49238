package bbf

// GetRoot returns the root of the tree containing n. O(log n).
func GetRoot(n *Node) *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// GetStart returns the leftmost (first in-order) leaf of root's tree. O(1).
func GetStart(root *Node) *Node {
	return root.leftMost
}

// GetEnd returns the rightmost (last in-order) leaf of root's tree. O(1).
func GetEnd(root *Node) *Node {
	return root.rightMost
}

// pushPath pushes down every ancestor of n, from the root toward n, so that
// no ancestor of n still holds a lazy reversal or cost delta.
func pushPath(n *Node) {
	var path []*Node
	for p := n.parent; p != nil; p = p.parent {
		path = append(path, p)
	}
	for i := len(path) - 1; i >= 0; i-- {
		pushDown(path[i])
	}
}

// GetBefore returns the leaf immediately preceding n in in-order sequence
// and the cost of the edge between them, or (nil, 0) if n is already first.
// It first pushes down every ancestor of n, so the parent-pointer walk reads
// reversal flags and costs that already reflect every Reverse/Update applied
// higher in the tree.
func GetBefore(n *Node) (*Node, int64) {
	pushPath(n)
	cur := n
	for cur.parent != nil {
		p := cur.parent
		wasLeft := p.left == cur
		if p.reversed {
			wasLeft = !wasLeft
		}
		if !wasLeft {
			sibling := p.left
			if p.reversed {
				sibling = p.right
			}
			return sibling.rightMost, p.cost
		}
		cur = p
	}
	return nil, 0
}

// GetAfter returns the leaf immediately following n in in-order sequence
// and the cost of the edge between them, or (nil, 0) if n is already last.
func GetAfter(n *Node) (*Node, int64) {
	pushPath(n)
	cur := n
	for cur.parent != nil {
		p := cur.parent
		wasLeft := p.left == cur
		if p.reversed {
			wasLeft = !wasLeft
		}
		if wasLeft {
			sibling := p.right
			if p.reversed {
				sibling = p.left
			}
			return sibling.leftMost, p.cost
		}
		cur = p
	}
	return nil, 0
}

// GetMinEdgeOnPath returns the node representing the minimum-cost edge on
// root's path, preferring the rightmost such edge among ties, or nil if
// root is a solitary leaf. O(log n).
func GetMinEdgeOnPath(root *Node) *Node {
	if root.isLeaf {
		return nil
	}
	target := root.min
	n := root
	for !n.isLeaf {
		pushDown(n)
		if !n.right.isLeaf && n.right.min == target {
			n = n.right
			continue
		}
		if n.cost == target {
			return n
		}
		n = n.left
	}
	return nil
}

// GetMaxEdgeOnPath returns the node representing the maximum-cost edge on
// root's path, preferring the rightmost such edge among ties, or nil if
// root is a solitary leaf. O(log n).
func GetMaxEdgeOnPath(root *Node) *Node {
	if root.isLeaf {
		return nil
	}
	target := root.max
	n := root
	for !n.isLeaf {
		pushDown(n)
		if !n.right.isLeaf && n.right.max == target {
			n = n.right
			continue
		}
		if n.cost == target {
			return n
		}
		n = n.left
	}
	return nil
}

// GetTiltedEdgeOnPath returns the rightmost edge (v,w) on root's path such
// that w's subtree weight is at least the combined weight of every leaf
// left of w, along with the signed tilt (left weight minus right weight,
// <= 0) at that edge — or (nil, 0) if no such edge exists. This is the edge
// LCT's slice/conceal logic demotes to dashed. O(log n).
func GetTiltedEdgeOnPath(root *Node) (*Node, int64) {
	if root.isLeaf {
		return nil, 0
	}
	rootMin, _ := effTilt(root)
	if rootMin > 0 {
		return nil, 0
	}

	n := root
	leftAcc := int64(0)
	for {
		pushDown(n)
		lw := leftAcc + int64(n.left.weight)

		if !n.right.isLeaf {
			rMin, _ := effTilt(n.right)
			if rMin+lw <= 0 {
				leftAcc = lw
				n = n.right
				continue
			}
		}

		here := lw - int64(n.right.weight)
		if here <= 0 {
			return n, here
		}

		if !n.left.isLeaf {
			lMin, _ := effTilt(n.left)
			if lMin+leftAcc <= 0 {
				n = n.left
				continue
			}
		}
		// Unreachable if rootMin <= 0 at entry: the aggregate guarantees a
		// qualifying edge exists somewhere on this path.
		return nil, 0
	}
}

// EdgeBefore returns the leaf immediately to the left of an internal edge
// node, i.e. the rightmost leaf of its (already pushed-down) left subtree.
// Valid only on a node previously returned by GetMinEdgeOnPath,
// GetMaxEdgeOnPath, or GetTiltedEdgeOnPath, which already pushed down every
// ancestor on the path to it.
func EdgeBefore(edge *Node) *Node {
	return edge.left.rightMost
}

// EdgeAfter returns the leaf immediately to the right of an internal edge
// node, i.e. the leftmost leaf of its (already pushed-down) right subtree.
func EdgeAfter(edge *Node) *Node {
	return edge.right.leftMost
}

// Cost returns an internal node's edge cost. Meaningless on a leaf.
func (n *Node) Cost() int64 {
	return n.cost
}

// Reverse reverses the in-order sequence of root's tree. O(1).
func Reverse(root *Node) {
	if root.isLeaf {
		return
	}
	root.reversed = !root.reversed
	root.leftMost, root.rightMost = root.rightMost, root.leftMost
}

// Update adds delta to the cost of every internal edge on root's path in
// O(1), by shifting root's cached cost/min/max and recording delta as a
// pending push for children. If root is a leaf this is a no-op (leaves
// carry no cost field).
func Update(root *Node, delta int64) {
	if root.isLeaf {
		return
	}
	root.cost += delta
	root.min += delta
	root.max += delta
	root.pending += delta
}

// WritePath appends, in in-order sequence, the vertex name of every leaf in
// root's tree to out. Pure recursive traversal; does not need pushDown
// because reversed/pending only affect structure and cost values, never
// the set or multiplicity of leaf names, except for ordering, which is
// resolved explicitly below by carrying the combined reversal state of
// every ancestor down the recursion.
func WritePath(root *Node, out *[]uint64) {
	var walk func(n *Node, rev bool)
	walk = func(n *Node, rev bool) {
		if n.isLeaf {
			*out = append(*out, n.v)
			return
		}
		rev = rev != n.reversed
		left, right := n.left, n.right
		if rev {
			left, right = right, left
		}
		walk(left, rev)
		walk(right, rev)
	}
	walk(root, false)
}
