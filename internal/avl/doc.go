// Package avl implements a generic, comparator-parameterised AVL tree used as
// the ordered-map primitive underneath the rest of dynconn (adjacency sets,
// per-level tree/non-tree edge indices, dashed-path key sets, ...).
//
// Operations Insert, Contains, FindVal, ChangeVal, Remove run in O(log n);
// AnyEntry and Empty run in O(1); Sorted runs in O(n).
//
// Errors:
//
//	ErrDuplicateKey - Insert called with a key already present.
//	ErrKeyNotFound  - FindVal/ChangeVal/Remove called with an absent key.
package avl
