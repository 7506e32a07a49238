// Package queryforest implements QueryForestAVL: an Euler-tour forest
// stripped down to a component-size aggregate, used as the authoritative
// "which component is v in right now" oracle by the Wang/Kaibel algorithm
// and as a component-partition index generally. Every vertex owns one
// permanent anchor edge-node (never removed) contributing weight 1 to its
// component's size aggregate; AddEdge/DeleteEdge splice edge-arc node pairs
// around those anchors exactly as etf.CutSet/etf.HDT do.
package queryforest
