package forest

import (
	"github.com/pkg/errors"

	"github.com/wengh/dynamic-connectivity/internal/rbtree"
)

// removeTreeEdge implements spec §4.3 "Remove edge" case 2: cut the tree
// edge at every level it spans, then replacement-search upward from its
// own (lowest) level looking for a non-tree edge that reconnects the two
// pieces the cut leaves behind at some level.
func (f *Forest) removeTreeEdge(ge *GraphEdge) {
	var chain []*TreeEdge
	for te := ge.treeEdge; te != nil; te = te.higher {
		chain = append(chain, te)
	}

	removeFromForestList(ge.v1, ge)
	removeFromForestList(ge.v2, ge)
	rbtree.Refresh(ge.v1.arbitraryVisit.self)
	rbtree.Refresh(ge.v2.arbitraryVisit.self)

	type side struct{ u, v *ETV }
	sides := make([]side, len(chain))
	for i, te := range chain {
		Cut(te)
		sides[i] = side{te.u, te.v}
	}

	for _, s := range sides {
		T, other := s.u, s.v
		if other.Size() < T.Size() {
			T, other = other, T
		}

		f.pushForestEdgesDown(T)

		if owner, replacement, found := f.findReplacement(T); found {
			w := replacement.otherEndpoint(owner)
			f.reclassifyAsTreeEdge(owner, w, replacement)
			T.sever()
			other.sever()
			return
		}

		T.sever()
		other.sever()
	}
}

// pushForestEdgesDown implements spec §4.3 step (b): every tree edge
// currently owned at T's level is pushed down one level, preserving
// F_{i-1} ⊆ F_i. T's own ETT shape is untouched -- only which level
// owns each edge's bookkeeping, and a fresh lower-level Link per edge.
func (f *Forest) pushForestEdgesDown(T *ETV) {
	for {
		_, ge, ok := popForestEdge(T.Root())
		if !ok {
			return
		}
		f.pushTreeEdgeDown(ge)
	}
}

// pushTreeEdgeDown moves ge's ownership from its current (lowest) level
// down to a fresh level below, per spec §4.3 step (b): "Link the
// level-(i-1) ETVs, store the resulting TreeEdge as e.tree_edge's new
// bottom and link the old bottom via higher, and move the GraphEdge from
// the level-i forest list to the level-(i-1) forest list."
func (f *Forest) pushTreeEdgeDown(ge *GraphEdge) {
	oldBottom := ge.treeEdge
	u, v := oldBottom.u, oldBottom.v

	removeFromForestList(u, ge)
	removeFromForestList(v, ge)

	uLow, vLow := u.Lower(), v.Lower()
	newBottom, err := Link(uLow, vLow)
	if err != nil {
		panic(errors.Wrap(err, "forest: push-down invariant violated (F_{i-1} not a subset of F_i)"))
	}
	newBottom.higher = oldBottom
	ge.treeEdge = newBottom

	retarget(ge, u, uLow)
	retarget(ge, v, vLow)
	insertForestEdge(uLow, ge)
	insertForestEdge(vLow, ge)

	rbtree.Refresh(u.arbitraryVisit.self)
	rbtree.Refresh(v.arbitraryVisit.self)
	rbtree.Refresh(uLow.arbitraryVisit.self)
	rbtree.Refresh(vLow.arbitraryVisit.self)
	u.sever()
	v.sever()
}

// findReplacement implements spec §4.3 step (c): walk T's non-tree
// adjacency one edge at a time; an edge whose other endpoint is outside
// T at this level is the replacement. Edges internal to T are pushed
// down a level and the walk continues.
func (f *Forest) findReplacement(T *ETV) (owner *ETV, replacement *GraphEdge, found bool) {
	root := T.Root()
	for {
		v, ge, ok := popGraphEdge(root)
		if !ok {
			return nil, nil, false
		}
		w := ge.otherEndpoint(v)
		if rbtree.Root(w.arbitraryVisit.self) != root {
			return v, ge, true
		}
		f.pushGraphEdgeDown(v, w, ge)
	}
}

// pushGraphEdgeDown implements spec §4.3 step (c)'s internal-edge case:
// ge connects two vertices already in the same component at this level,
// so it cannot help reconnect T; push it down one level. This never
// requires a Link since the endpoints are already connected at the
// lower level too (via the tree edges pushed down in step (b)).
func (f *Forest) pushGraphEdgeDown(u, v *ETV, ge *GraphEdge) {
	removeFromGraphList(u, ge)
	removeFromGraphList(v, ge)

	uLow, vLow := u.Lower(), v.Lower()
	retarget(ge, u, uLow)
	retarget(ge, v, vLow)
	insertGraphEdge(uLow, ge)
	insertGraphEdge(vLow, ge)

	rbtree.Refresh(u.arbitraryVisit.self)
	rbtree.Refresh(v.arbitraryVisit.self)
	rbtree.Refresh(uLow.arbitraryVisit.self)
	rbtree.Refresh(vLow.arbitraryVisit.self)
	u.sever()
	v.sever()
}

// reclassifyAsTreeEdge implements spec §4.3 step (c)'s found-replacement
// case: ge is re-classified as a tree edge at every level from its own
// (current) level up to the top, by walking owner/w's higher chains in
// lockstep -- both chains reach the shared top in the same number of
// steps since every Link only ever joins same-numbered levels.
func (f *Forest) reclassifyAsTreeEdge(owner, w *ETV, ge *GraphEdge) {
	removeFromGraphList(owner, ge)
	removeFromGraphList(w, ge)
	insertForestEdge(owner, ge)
	insertForestEdge(w, ge)
	rbtree.Refresh(owner.arbitraryVisit.self)
	rbtree.Refresh(w.arbitraryVisit.self)

	u, v := owner, w
	te, err := Link(u, v)
	if err != nil {
		panic(errors.Wrap(err, "forest: replacement edge invariant violated"))
	}
	ge.treeEdge = te
	last := te
	for u.higher != nil {
		u, v = u.higher, v.higher
		nte, err := Link(u, v)
		if err != nil {
			panic(errors.Wrap(err, "forest: replacement edge invariant violated at a higher level"))
		}
		last.higher = nte
		last = nte
	}
}

// popForestEdge finds a vertex within the ETT rooted at root whose
// forest-list head is non-nil and returns it along with that head edge,
// or reports ok=false if no level-i tree edge touches this tree at all.
func popForestEdge(root *rbtree.Node) (v *ETV, ge *GraphEdge, ok bool) {
	return popEdge(root, func(vis *visit) bool { return vis.hasForestEdge }, func(v *ETV) *GraphEdge { return v.forestListHead })
}

// popGraphEdge is popForestEdge's counterpart for non-tree edges.
func popGraphEdge(root *rbtree.Node) (v *ETV, ge *GraphEdge, ok bool) {
	return popEdge(root, func(vis *visit) bool { return vis.hasGraphEdge }, func(v *ETV) *GraphEdge { return v.graphListHead })
}

// popEdge descends the ETT rooted at root following flagged() to find a
// vertex whose list head (given by head()) is non-nil, and returns the
// vertex and that head edge. Because flagged is exactly the OR of a
// node's children and its own list-presence, a node reporting true that
// isn't satisfied by either child must be satisfied by itself.
func popEdge(root *rbtree.Node, flagged func(*visit) bool, head func(*ETV) *GraphEdge) (*ETV, *GraphEdge, bool) {
	n := root
	for n != nil {
		vis := n.Aug.(*visit)
		if !flagged(vis) {
			return nil, nil, false
		}
		if n.Left != nil && flagged(n.Left.Aug.(*visit)) {
			n = n.Left
			continue
		}
		if vis.vertex.arbitraryVisit.self == n {
			if e := head(vis.vertex); e != nil {
				return vis.vertex, e, true
			}
		}
		if n.Right != nil && flagged(n.Right.Aug.(*visit)) {
			n = n.Right
			continue
		}
		panic(errors.New("forest: hasForestEdge/hasGraphEdge augmentation inconsistent with actual list contents"))
	}
	return nil, nil, false
}
