// Package wang implements the randomized Wang/Kaibel cut-set dynamic
// connectivity algorithm: a level stack of cutset.CutSet
// sketches backed by a lct.Tree spanning forest and a queryforest.Forest
// component oracle. Deleting a tree edge triggers refreshTrees, which walks
// every level searching for a replacement via CutSet.Search, evicting the
// heaviest same-level edge on the resulting cycle (via the link-cut tree)
// if the candidate would otherwise close one. Query has a bounded
// false-negative probability controlled by the boost parameter and is
// never a false positive.
package wang
