// Package dynconn (module github.com/katalvlaran/dynconn) is a library of
// fully dynamic graph connectivity algorithms.
//
// 🚀 What is dynconn?
//
//	A thread-oriented, low-dependency toolkit that brings together:
//
//	  • Core primitives: Euler-tour forests, biased binary forests and
//	    trees, link-cut trees, and tabular-hash cut-set sketches
//	  • Three interchangeable algorithms behind one interface: the
//	    deterministic amortized HDT, the randomized Wang/Kaibel cut-set
//	    method, and the centroid-balanced DTree reference algorithm
//	  • A benchmark driver CLI replaying action-stream files against any
//	    of them and reporting timing or correctness CSV rows
//
// ✨ Why choose dynconn?
//
//   - Polylogarithmic      — HDT and Wang/Kaibel run updates/queries in
//     O(polylog n); DTree is the simpler O(√n)-ish reference
//   - Swappable            — pick an algorithm via one Algorithm interface
//   - Pure Go              — no cgo
//
// Under the hood, everything is organized under several subpackages:
//
//	graph/       — the undirected simple Graph entity & edge-list file format
//	action/      — the Action entity & action-stream file format
//	internal/    — AVLTree, TabularHash, BiasedBinaryForest, BiasedBinaryTree
//	lct/         — Link-Cut Trees
//	etf/         — Euler-tour forests (CutSet and HDT flavours)
//	cutset/      — the tabular-hash cut-set sketch
//	queryforest/ — the AVL-backed component-partition index
//	dtree/       — the DTree reference algorithm
//	hdt/         — the HDT algorithm
//	wang/        — the Wang/Kaibel randomized algorithm
//	dynconn/     — the Algorithm interface and algorithm registry
//	cmd/dynconn/ — the benchmark driver CLI
//
//	go get github.com/katalvlaran/dynconn
package dynconn
