package forest

import (
	"github.com/pkg/errors"

	"github.com/wengh/dynamic-connectivity/internal/rbtree"
)

// Forest is one layered Holm/de Lichtenberg/Thorup dynamic-connectivity
// structure: a stack of per-level Euler-tour forests connected by the
// push-down machinery of spec §4.3. It owns no notion of external vertex
// identity -- callers create top-level ETVs with NewTop and drive every
// mutation through AddEdge/RemoveEdge.
type Forest struct {
	combine CombineFunc
}

// New allocates an empty forest. combine folds two vertex augmentations
// in in-order traversal order; it is never assumed commutative.
func New(combine CombineFunc) *Forest {
	return &Forest{combine: combine}
}

// AddEdge joins u and v with a fresh GraphEdge (spec §4.3 "Add edge").
// u and v must already have arbitrary visits (callers create them with
// NewTop on first use of a vertex). The edge becomes a tree edge (Link)
// if u and v are not yet connected, or a non-tree edge otherwise.
func (f *Forest) AddEdge(u, v *ETV) *GraphEdge {
	ge := &GraphEdge{v1: u, v2: v}

	if SameTree(u, v) {
		insertGraphEdge(u, ge)
		insertGraphEdge(v, ge)
		rbtree.Refresh(u.arbitraryVisit.self)
		rbtree.Refresh(v.arbitraryVisit.self)
		return ge
	}

	te, err := Link(u, v)
	if err != nil {
		panic(errors.Wrap(err, "forest: AddEdge: SameTree reported distinct trees but Link disagreed"))
	}
	ge.treeEdge = te
	insertForestEdge(u, ge)
	insertForestEdge(v, ge)
	rbtree.Refresh(u.arbitraryVisit.self)
	rbtree.Refresh(v.arbitraryVisit.self)
	return ge
}

// RemoveEdge deletes ge from the forest (spec §4.3 "Remove edge"). If ge
// is a non-tree edge this is a plain unlink. If ge is a tree edge, it is
// cut at every level it spans and a replacement-search (§4.3) looks for
// a non-tree edge to reconnect the two pieces it leaves behind; if none
// is found the two sides are permanently disconnected.
func (f *Forest) RemoveEdge(ge *GraphEdge) {
	if ge.treeEdge == nil {
		removeFromGraphList(ge.v1, ge)
		removeFromGraphList(ge.v2, ge)
		rbtree.Refresh(ge.v1.arbitraryVisit.self)
		rbtree.Refresh(ge.v2.arbitraryVisit.self)
		return
	}
	f.removeTreeEdge(ge)
}

// Connected reports whether u and v currently share an Euler-tour tree
// at their (necessarily common) level -- O(log n).
func Connected(u, v *ETV) bool {
	return SameTree(u, v)
}
