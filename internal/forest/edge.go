package forest

// GraphEdge is one undirected edge, irrespective of how many levels it
// has spanned over its lifetime. v1/v2 are its endpoints at the edge's
// current level; treeEdge is non-nil iff the edge is currently a tree
// edge, in which case it points at that edge's lowest-level TreeEdge.
//
// An edge is a member of exactly one list per endpoint: graphList if
// treeEdge == nil, forestList otherwise (spec §3 invariant (b)/(c)).
type GraphEdge struct {
	v1, v2   *ETV
	treeEdge *TreeEdge

	prev1, next1 *GraphEdge
	prev2, next2 *GraphEdge
}

// TreeEdge is the representative of one forest edge at one level.
// visit1/visit2 are the two ETT nodes that immediately precede the
// edge's traversal in the Euler tour; higher links to the same edge one
// level up (nil only at the edge's own top level). u/v are the two
// endpoint ETVs Link joined at this level -- kept directly rather than
// recovered from visit1/visit2 (which are dedicated bracket nodes
// belonging to u, not arbitrary visits of either endpoint) since
// replacement search needs the endpoint ETVs themselves, not just the
// tour positions bracketing the subtree.
type TreeEdge struct {
	visit1, visit2 *visit
	higher         *TreeEdge
	u, v           *ETV
}

// IsTreeEdge reports whether e is currently classified as a tree edge
// (spec §3's GraphEdge.tree_edge != nil), i.e. whether it belongs to its
// endpoints' forestList rather than their graphList.
func (e *GraphEdge) IsTreeEdge() bool {
	return e.treeEdge != nil
}

// otherEndpoint returns the endpoint of e that is not v.
func (e *GraphEdge) otherEndpoint(v *ETV) *ETV {
	if e.v1 == v {
		return e.v2
	}
	return e.v1
}

// linkedTo reports whether v is one of e's two current endpoints.
func (e *GraphEdge) linkedTo(v *ETV) bool {
	return e.v1 == v || e.v2 == v
}

// insertGraphEdge splices e into v's graph (non-tree) list head.
func insertGraphEdge(v *ETV, e *GraphEdge) {
	if e.v1 == v {
		e.next1 = v.graphListHead
		e.prev1 = nil
	} else {
		e.next2 = v.graphListHead
		e.prev2 = nil
	}
	if v.graphListHead != nil {
		setPrev(v.graphListHead, v, e)
	}
	v.graphListHead = e
}

// insertForestEdge splices e into v's forest (tree) list head.
func insertForestEdge(v *ETV, e *GraphEdge) {
	if e.v1 == v {
		e.next1 = v.forestListHead
		e.prev1 = nil
	} else {
		e.next2 = v.forestListHead
		e.prev2 = nil
	}
	if v.forestListHead != nil {
		setPrev(v.forestListHead, v, e)
	}
	v.forestListHead = e
}

// setPrev sets the prev pointer of e's slot for endpoint v to newPrev.
func setPrev(e *GraphEdge, v *ETV, newPrev *GraphEdge) {
	if e.v1 == v {
		e.prev1 = newPrev
	} else {
		e.prev2 = newPrev
	}
}

// removeFromGraphList unlinks e from v's graph-edge list.
func removeFromGraphList(v *ETV, e *GraphEdge) {
	removeFromList(v, e, &v.graphListHead)
}

// removeFromForestList unlinks e from v's forest-edge list.
func removeFromForestList(v *ETV, e *GraphEdge) {
	removeFromList(v, e, &v.forestListHead)
}

func removeFromList(v *ETV, e *GraphEdge, head **GraphEdge) {
	var prev, next *GraphEdge
	if e.v1 == v {
		prev, next = e.prev1, e.next1
		e.prev1, e.next1 = nil, nil
	} else {
		prev, next = e.prev2, e.next2
		e.prev2, e.next2 = nil, nil
	}
	if prev != nil {
		setNext(prev, v, next)
	} else {
		*head = next
	}
	if next != nil {
		setPrev(next, v, prev)
	}
}

func setNext(e *GraphEdge, v *ETV, newNext *GraphEdge) {
	if e.v1 == v {
		e.next1 = newNext
	} else {
		e.next2 = newNext
	}
}

// nextEdge returns the next edge after e in v's list (graph or forest,
// whichever e currently belongs to), or nil if e is the last.
func nextEdge(e *GraphEdge, v *ETV) *GraphEdge {
	if e.v1 == v {
		return e.next1
	}
	return e.next2
}

// retarget repoints e's endpoint reference from old to fresh without
// touching its list linkage (used when pushing an edge down to a lower
// ETV of the same vertex).
func retarget(e *GraphEdge, old, fresh *ETV) {
	if e.v1 == old {
		e.v1 = fresh
	} else {
		e.v2 = fresh
	}
}
