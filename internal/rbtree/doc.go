// Package rbtree implements an intrusive, augmented red-black tree.
//
// Nodes carry no key of their own: position in the tree is purely
// positional (in-order index), the same way a rope or an order-statistic
// tree works. Callers establish order either by comparator-driven Insert
// (classic BST-by-key insertion) or, for sequence-style use such as an
// Euler-tour tree, by InsertAfter/InsertBefore relative to an existing
// node.
//
// Every node carries a payload implementing Augmenter. Augment is called
// bottom-up after any structural change and recomputes the payload's
// derived fields (sizes, folds, presence flags, ...) from the payload
// itself plus whatever the (possibly absent) children currently carry.
// Augment reports whether anything changed; callers use that signal to
// cut short the upward refresh walk once a node's augmentation has
// stabilized. A false positive (reporting changed when nothing did) only
// costs a few wasted comparisons further up the tree: it is never
// incorrect, only slightly wasteful. Reporting unchanged when something
// did change corrupts every fold built on top of it, so implementations
// must err on the side of reporting "changed".
//
// There is no sentinel node: nil represents every leaf, matching normal
// Go nil-safety. Color of a nil node reads as black.
//
// Split and Concat give the tree rope-like behavior: two trees can be
// joined with one extra pivot node in O(log n), and a tree can be cut at
// an arbitrary node into a strictly-less and a greater-or-equal half in
// O(log n). Both are built from the same red-black join primitive used
// to implement Concat.
package rbtree
