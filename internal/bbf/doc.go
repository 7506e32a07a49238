// Package bbf implements the BiasedBinaryForest: a forest of
// globally-biased binary trees over weighted leaves, used standalone as an
// ordered sequence and as the per-path representation inside a Link-Cut
// Tree (package lct).
//
// Leaves carry a node name and a positive weight; internal nodes represent
// the "edge" between the two leaves adjacent to them in in-order sequence,
// and carry that edge's cost. Join/Split follow the rank-balanced join
// algorithm for weight-biased trees (Blelloch et al.'s "Join-Based" family):
// rank(leaf) = floor(log2(weight)), rank(internal) >= max(rank(children)),
// and two trees whose ranks differ by more than one are joined by
// descending into the heavier tree along its boundary spine and fixing up
// rank balance as recursion unwinds — the same asymptotic guarantee as the
// five-case Bent/Sleator/Tarjan rewrite, reached with a single generic
// recursive join instead of five hand-enumerated shapes (see DESIGN.md).
//
// Path reversal and additive cost updates are both O(1) at the touched
// root: reversal is a boolean XOR tag with swapped leftmost/rightmost
// pointers, and update(root, Δ) adds Δ to the root's cached cost/min/max and
// records a pending delta that is pushed one level down the next time a
// structural operation needs to see past the root (classic lazy
// propagation), giving the O(1)-at-the-access-root behaviour the Link-Cut
// Tree's update relies on.
package bbf
