// Package dynconn exposes Algorithm, the common interface satisfied by
// every algorithm in this module (dtree.DTree, hdt.HDT, wang.Wang), plus New,
// a by-name registry constructor used by cmd/dynconn to turn the `-a` flag
// into a running instance. New takes functional options (WithPrecision,
// WithBoost, WithSeed) and passes their values on to the positional
// constructor of the selected concrete type.
package dynconn
