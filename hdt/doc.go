// Package hdt implements the Holm-de Lichtenberg-Thorup deterministic
// amortized dynamic connectivity algorithm: an L-level stack
// of spanning forests sharing one etf.HDT Euler-tour forest, where level i
// holds a spanning forest whose components have at most n/2^i vertices.
// Deleting a tree edge searches for a replacement by promoting the smaller
// half's on-level structure one level at a time until either a cross edge
// is found or the level range is exhausted, giving O(log^2 n) amortized
// update time.
package hdt
