package forest

import "github.com/wengh/dynamic-connectivity/internal/rbtree"

// CombineFunc folds two user vertex augmentations into one. The engine
// treats it as associative but never assumes commutativity: it is always
// invoked left-argument-first in in-order traversal order.
type CombineFunc func(left, right interface{}) interface{}

// visit is one node of an Euler-tour tree: a single traversal step
// through some vertex. It implements rbtree.Augmenter; self is the
// rbtree.Node that wraps this payload, kept so Augment can tell whether
// it is currently the vertex's arbitrary visit.
type visit struct {
	self   *rbtree.Node
	vertex *ETV

	size           int
	hasGraphEdge   bool
	hasForestEdge  bool
	hasAug         bool
	aug            interface{}
}

func newVisit(v *ETV) *visit {
	vis := &visit{vertex: v}
	vis.self = rbtree.New(vis)
	return vis
}

// Augment recomputes size, the two presence flags, and the augmentation
// fold from this visit's children and, when this visit is currently its
// vertex's arbitrary visit, from the vertex's own list heads and
// augmentation. See forest/doc.go and spec §4.2 for the contract.
//
// size counts VERTICES, not raw Euler-tour nodes: it is gated on the
// arbitrary-visit flag exactly like has_graph_edge/has_forest_edge,
// rather than incrementing at every node as spec.md's literal
// "size ← left.size + right.size + 1" describes. A tour under Link
// allocates two bookkeeping nodes per tree edge beyond each vertex's one
// arbitrary visit, so raw node count is 3V-2 for a V-vertex component —
// a number neither callers of get_component_info nor the "pick the
// smaller side" replacement-search heuristic actually want. Gating on
// arbitrary-visit keeps size equal to vertex count throughout, at the
// cost of this one documented divergence from the literal accumulator
// spec.md spells out (see DESIGN.md).
func (vis *visit) Augment(left, right rbtree.Augmenter) bool {
	size := 0
	hasG, hasF := false, false
	var aug interface{}
	hasAug := false

	combine := vis.vertex.forest.combine

	if left != nil {
		l := left.(*visit)
		size += l.size
		hasG = hasG || l.hasGraphEdge
		hasF = hasF || l.hasForestEdge
		if l.hasAug {
			aug, hasAug = l.aug, true
		}
	}

	if vis.vertex.arbitraryVisit == vis {
		size++
		if vis.vertex.graphListHead != nil {
			hasG = true
		}
		if vis.vertex.forestListHead != nil {
			hasF = true
		}
		if vis.vertex.higher == nil && vis.vertex.hasAugmentation {
			if hasAug {
				aug = combine(aug, vis.vertex.augmentation)
			} else {
				aug, hasAug = vis.vertex.augmentation, true
			}
		}
	}

	if right != nil {
		r := right.(*visit)
		size += r.size
		hasG = hasG || r.hasGraphEdge
		hasF = hasF || r.hasForestEdge
		if r.hasAug {
			if hasAug {
				aug = combine(aug, r.aug)
			} else {
				aug, hasAug = r.aug, true
			}
		}
	}

	changed := size != vis.size ||
		hasG != vis.hasGraphEdge ||
		hasF != vis.hasForestEdge ||
		hasAug != vis.hasAug ||
		(hasAug && !valuesEqual(aug, vis.aug))

	vis.size, vis.hasGraphEdge, vis.hasForestEdge = size, hasG, hasF
	vis.hasAug, vis.aug = hasAug, aug
	return changed
}

// valuesEqual reports whether a and b compare equal, treating
// non-comparable dynamic types as always unequal (a conservative "report
// changed" false positive, which spec §4.1 explicitly permits) rather
// than panicking.
func valuesEqual(a, b interface{}) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// refreshArbitraryVisit re-runs augment on old (if non-nil) and on the
// vertex's current arbitrary visit, used whenever arbitraryVisit is
// reassigned so both the vacated and the newly anchored visit reflect
// their changed contribution.
func refreshArbitraryVisit(v *ETV, old *visit) {
	if old != nil {
		rbtree.Refresh(old.self)
	}
	if v.arbitraryVisit != nil {
		rbtree.Refresh(v.arbitraryVisit.self)
	}
}
