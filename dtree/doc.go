// Package dtree implements DTree: a centroid-rerooting
// spanning-forest reference algorithm used both as a standalone O(sqrt n)-ish
// connectivity algorithm and as the ground-truth correctness oracle for HDT
// and Wang/Kaibel. Each component is a rooted tree (parent/children/
// subtree-size) plus, per vertex, the non-tree edges incident to it; adding
// an edge across two components reroots the lighter one onto the heavier;
// deleting a tree edge detaches the smaller side and searches its non-tree
// edges for a replacement back to the larger side.
package dtree
