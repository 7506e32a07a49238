// Package lct implements Link-Cut Trees (Sleator & Tarjan), maintaining a
// dynamic forest of rooted trees under link, cut, and path-aggregate queries
// in O(log n) worst case per operation — no amortization.
//
// Each rooted tree is partitioned into vertex-disjoint solid paths; within a
// solid path, a biased binary forest (internal/bbf) keeps vertices ordered
// from the deepest vertex up to the topmost one and answers path-aggregate
// queries in O(log path length). Between a vertex and its tree parent, an
// edge is either solid (the parent is the next leaf after the vertex on the
// same solid path) or dashed (the vertex is the last leaf of its own solid
// path, linked to the path containing its parent by an ordinary dashed
// pointer one level up). Every
// vertex's dashed children are kept in a biased binary tree (internal/bbt)
// keyed by (solid-path weight, solid-path end vertex), so the heaviest
// dashed child — the one worth re-attaching as solid — is found in O(1) and
// the rebalancing invariant (no dashed child has more than half its parent's
// path weight) is restored in O(log n) amortized rotations.
//
// expose(v) walks v up to the tree root, splicing every dashed edge on the
// way into one solid path ending at v; conceal undoes that by re-demoting
// the subtree that has grown too heavy relative to its solid parent back to
// dashed. Every public operation below is expose/restructure/conceal.
package lct
