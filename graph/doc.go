// Package graph defines the undirected simple graph type that every
// dynamic-connectivity algorithm in this module operates over.
//
// A Graph stores, per vertex, an insertion-ordered sequence of neighbors
// (not a map), so iteration order is deterministic and matches the order
// edges were added — a single undirected simple graph with no parallel
// edges and no self-loops.
//
// Vertex indices are dense uint64s starting at 0; the vertex count grows
// monotonically with the highest index ever seen via AddEdge or EnsureVertex,
// and never shrinks.
//
// Errors:
//
//	ErrSelfLoop      - an edge's two endpoints are equal.
//	ErrEdgeExists    - AddEdge called for an edge that is already present.
//	ErrEdgeNotFound  - DeleteEdge called for an edge that is not present.
package graph
