// Package cutset implements the randomized cut-set sketch structure (spec
// §4.8): a stack of numLevels spanning forests over the same n vertices,
// each vertex carrying boostLevel independent XOR sketches of its
// not-yet-classified incident edges at ⌈2·log2 n⌉ granularities. Search on
// a level returns some edge leaving a vertex's component with probability
// at least 1/8 per boost copy, the core primitive the Wang/Kaibel algorithm
// builds its replacement-edge search on.
package cutset
