// Package action defines the Action entity the benchmark driver replays: a
// tagged value produced by parsing an action-stream file and consumed
// left-to-right against a DynConnectivity algorithm.
//
// The action-stream format is ASCII, one directive per line: "a u v" adds
// an edge, "d u v" deletes one, "q u v" queries connectivity, "b" marks a
// query block (the driver issues a batch of random queries there), "t"
// resets the driver's running timer, and "c ..." is a comment. An unknown
// leading character is a fatal ParseError naming the offending line.
package action
