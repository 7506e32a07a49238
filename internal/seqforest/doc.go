// Package seqforest is the generic sequence-tree skeleton shared by both
// Euler-tour forest flavours (etf.CutSet and etf.HDT): a disjoint collection
// of rank-balanced binary trees over an ordered sequence of opaque edge
// nodes, each carrying an "own" value of an aggregate type A that combines
// associatively, plus a cached subtree combine of every own value beneath
// it. It provides exactly the primitives an Euler-tour tree needs — split,
// 3-way join, front/back trivial insert and delete, and "rotate so this
// element is first" — and nothing specific to trees-of-graphs; etf attaches
// vertex/edge identity and the two concrete aggregate shapes spec'd for
// cut-set sketches and HDT level counters.
package seqforest
