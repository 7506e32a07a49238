// Package etf implements Euler-tour forests (Henzinger & King 1993): a
// disjoint collection of balanced sequences, one per tree in a forest, each
// representing that tree's Euler tour as directed edge-nodes. Two flavours
// share the internal/seqforest skeleton but attach different per-node
// aggregates:
//
//   - CutSet: each vertex's currently "active" edge-node owns a reference to
//     that vertex's cut-set sketch rows; the subtree aggregate is their
//     element-wise XOR, letting a caller sample a surviving cut edge for an
//     entire tree in O(log n) without scanning every vertex.
//   - HDT: each vertex's active edge-node on a given level records whether
//     it is itself an on-level tree edge and how many on-level non-tree
//     edges that vertex still carries; the subtree aggregate sums both,
//     letting Holm–de Lichtenberg–Thorup find a replacement edge in
//     O(log n).
package etf
