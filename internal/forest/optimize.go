package forest

import "github.com/wengh/dynamic-connectivity/internal/rbtree"

// Optimize performs the lossless reorganization spec §4.3 describes:
// forest edges are pushed down as far as component-size balance allows,
// and non-tree edges sink to the lowest level their endpoints still
// share. Neither pass changes any observable answer -- only the shape
// of the internal structure and the cost of future replacement search.
//
// tops lists every vertex's top-level ETV; only the façade tracks the
// full vertex set, so it drives this call.
func (f *Forest) Optimize(tops []*ETV) {
	f.optimizeForestEdges(tops)
	f.optimizeGraphEdges(tops)
}

func (f *Forest) optimizeForestEdges(tops []*ETV) {
	seen := make(map[*GraphEdge]bool)
	var queue []*GraphEdge
	for _, top := range tops {
		collectEdges(top.Root(), seen, &queue, func(vis *visit) bool { return vis.hasForestEdge }, func(v *ETV) *GraphEdge { return v.forestListHead })
	}
	for _, ge := range queue {
		f.sinkForestEdge(ge)
	}
}

// sinkForestEdge repeatedly pushes ge down while the combined size of
// the two lower components stays within spec.md's 2·2^(i-1)-1 budget,
// using this implementation's relative (top-anchored-at-zero) level
// numbering as the exponent in place of spec.md's globally-indexed one
// (see DESIGN.md).
func (f *Forest) sinkForestEdge(ge *GraphEdge) {
	for {
		te := ge.treeEdge
		u, v := te.u, te.v
		depth := -u.level
		if depth < 0 {
			depth = 0
		}
		budget := (1 << uint(depth+1)) - 1
		if lowerSize(u)+lowerSize(v) > budget {
			return
		}
		f.pushTreeEdgeDown(ge)
	}
}

func lowerSize(v *ETV) int {
	if v.lower == nil {
		return 0
	}
	return v.lower.Size()
}

func (f *Forest) optimizeGraphEdges(tops []*ETV) {
	seen := make(map[*GraphEdge]bool)
	var queue []*GraphEdge
	for _, top := range tops {
		collectEdges(top.Root(), seen, &queue, func(vis *visit) bool { return vis.hasGraphEdge }, func(v *ETV) *GraphEdge { return v.graphListHead })
	}
	for _, ge := range queue {
		f.sinkGraphEdge(ge)
	}
}

// sinkGraphEdge moves ge down only onto lower ETVs that already exist
// and already share a root -- it never allocates a new lower level,
// since doing so would undo the very compaction this pass is for.
func (f *Forest) sinkGraphEdge(ge *GraphEdge) {
	for {
		u, v := ge.v1, ge.v2
		if u.lower == nil || v.lower == nil || !SameTree(u.lower, v.lower) {
			return
		}
		f.pushGraphEdgeDown(u, v, ge)
	}
}

// collectEdges gathers every distinct edge reachable from root whose
// presence is marked by flagged(), deduplicating via seen.
func collectEdges(root *rbtree.Node, seen map[*GraphEdge]bool, out *[]*GraphEdge, flagged func(*visit) bool, head func(*ETV) *GraphEdge) {
	if root == nil {
		return
	}
	var walk func(n *rbtree.Node)
	walk = func(n *rbtree.Node) {
		if n == nil {
			return
		}
		vis := n.Aug.(*visit)
		if !flagged(vis) {
			return
		}
		walk(n.Left)
		if vis.vertex.arbitraryVisit.self == n {
			for e := head(vis.vertex); e != nil; e = nextEdge(e, vis.vertex) {
				if !seen[e] {
					seen[e] = true
					*out = append(*out, e)
				}
			}
		}
		walk(n.Right)
	}
	walk(root)
}
