package forest

import "github.com/wengh/dynamic-connectivity/internal/rbtree"

// ETV is the representative of one external vertex at one level of the
// layered forest (spec §3, "EulerTourVertex"). Only the top-level ETV
// (higher == nil) ever carries an augmentation.
type ETV struct {
	forest *Forest

	higher, lower *ETV
	level         int

	arbitraryVisit *visit

	graphListHead  *GraphEdge
	forestListHead *GraphEdge

	augmentation    interface{}
	hasAugmentation bool
}

// NewTop allocates a fresh top-level ETV (level 0 and, until anything
// forces a lower level to exist, the only level) seeded with a
// single-node Euler tour.
func (f *Forest) NewTop() *ETV {
	v := &ETV{forest: f}
	v.arbitraryVisit = newVisit(v)
	return v
}

// Lower returns v's ETV at level-1, allocating and linking a fresh
// single-node one on first use.
func (v *ETV) Lower() *ETV {
	if v.lower == nil {
		lower := &ETV{forest: v.forest, higher: v, level: v.level - 1}
		lower.arbitraryVisit = newVisit(lower)
		v.lower = lower
	}
	return v.lower
}

// Root returns the root ETT node of v's tour at v's level (the
// representative used for connectivity comparisons and component reads).
func (v *ETV) Root() *rbtree.Node {
	return rbtree.Root(v.arbitraryVisit.self)
}

// Size returns the number of vertices in v's component at v's level.
func (v *ETV) Size() int {
	return v.Root().Aug.(*visit).size
}

// SameTree reports whether u and v share an Euler-tour tree at their
// (common) level.
func SameTree(u, v *ETV) bool {
	return u.Root() == v.Root()
}

// sever drops v's upward link once v's tree has shrunk to a single
// node, per spec §4.3(d): the lower ETV becomes collectible once
// nothing else references it, since it no longer records any edges.
func (v *ETV) sever() {
	if v.higher == nil {
		return
	}
	if v.Size() != 1 {
		return
	}
	v.higher.lower = nil
	v.higher = nil
}

// AugmentationFold returns the current fold over v's whole component and
// whether any member vertex has an augmentation set.
func (v *ETV) AugmentationFold() (interface{}, bool) {
	root := v.Root().Aug.(*visit)
	return root.aug, root.hasAug
}

// ComponentSize returns the size of v's component at its level.
func (v *ETV) ComponentSize() int {
	return v.Root().Aug.(*visit).size
}

// SetAugmentation stores x as v's augmentation (v must be a top-level
// ETV) and refreshes the fold up to the component root.
func (v *ETV) SetAugmentation(x interface{}) (previous interface{}, hadPrevious bool) {
	previous, hadPrevious = v.augmentation, v.hasAugmentation
	v.augmentation, v.hasAugmentation = x, true
	rbtree.Refresh(v.arbitraryVisit.self)
	return previous, hadPrevious
}

// RemoveAugmentation clears v's augmentation and refreshes the fold.
func (v *ETV) RemoveAugmentation() (previous interface{}, hadPrevious bool) {
	previous, hadPrevious = v.augmentation, v.hasAugmentation
	v.augmentation, v.hasAugmentation = nil, false
	rbtree.Refresh(v.arbitraryVisit.self)
	return previous, hadPrevious
}

// HasAugmentation reports whether v itself (not its component) carries
// an augmentation.
func (v *ETV) HasAugmentation() bool {
	return v.hasAugmentation
}

// Augmentation returns v's own stored value, if any.
func (v *ETV) Augmentation() (interface{}, bool) {
	return v.augmentation, v.hasAugmentation
}
