package forest

import "github.com/wengh/dynamic-connectivity/internal/rbtree"

// CollapseBottomLevel implements one step of spec §4.3 "Rebuild": for
// every vertex named in tops, merge its deepest (most pushed-down) ETV
// into the level immediately above it, promoting ownership of every
// edge still anchored there. The deepest level's Euler-tour structure
// itself is simply discarded afterward -- once every edge's bookkeeping
// has moved up a level, nothing outside this package still points into
// it, so it becomes ordinary garbage.
//
// The caller (the façade, which alone tracks the full vertex set and the
// max_log_v/rebuild-slack bookkeeping of spec §4.3) is responsible for
// deciding how many times to call this and over which vertices; this
// function performs exactly one level of collapse.
func (f *Forest) CollapseBottomLevel(tops []*ETV) {
	seen := make(map[*ETV]bool)
	for _, top := range tops {
		bottom := top
		for bottom.lower != nil {
			bottom = bottom.lower
		}
		if bottom.higher == nil || seen[bottom] {
			continue
		}
		seen[bottom] = true
		promoteAllEdges(bottom)
	}
	for bottom := range seen {
		if bottom.higher != nil {
			bottom.higher.lower = nil
			bottom.higher = nil
		}
	}
}

// promoteAllEdges moves every edge owned at v's level up to v.higher,
// leaving v's list heads empty. Tree edges reuse the TreeEdge that
// already exists one level up (every tree edge present at level i also
// has a TreeEdge at every level above i, per spec §3); non-tree edges
// need no such structure.
func promoteAllEdges(v *ETV) {
	higher := v.higher
	for v.forestListHead != nil {
		ge := v.forestListHead
		removeFromForestList(v, ge)
		if ge.treeEdge.higher != nil {
			ge.treeEdge = ge.treeEdge.higher
		}
		retarget(ge, v, higher)
		insertForestEdge(higher, ge)
	}
	for v.graphListHead != nil {
		ge := v.graphListHead
		removeFromGraphList(v, ge)
		retarget(ge, v, higher)
		insertGraphEdge(higher, ge)
	}
	rbtree.Refresh(higher.arbitraryVisit.self)
}
