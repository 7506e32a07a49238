// Package bbt implements BiasedBinaryTree: a globally biased
// binary search tree keyed by a caller-supplied strict-weak order, weighted
// the same way as package bbf. Used standalone and as the per-vertex
// pathSets[v] structure inside a Link-Cut Tree (package lct), there keyed by
// (pathWeight, endVertex).
//
// Shares its rank discipline with bbf (rank(leaf) = floor(log2(weight)),
// join descends into the heavier side and rebalances on the way back up)
// but carries no edge cost or lazy reversal/update state: internal nodes
// are pure routing nodes, and each one's split key is its right subtree's
// leftmost leaf key. insert/remove are built from one generic split(key)
// plus join, the same "split via join" technique bbf's GlobalSplit uses;
// contains/findVal/changeVal descend by those split keys without
// restructuring the tree.
package bbt
