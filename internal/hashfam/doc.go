// Package hashfam implements TabularHash: a 3-wise independent
// hash family on edges, built from random lookup tables indexed by fixed-
// width bit blocks of each endpoint, following Thorup/Zhang tabulation
// hashing. CutSet uses one independent TabularHash per (level, boost) pair
// to drive its linear sketches.
package hashfam
