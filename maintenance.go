package dynconn

import "github.com/wengh/dynamic-connectivity/internal/forest"

// Clear resets the graph to the empty state: every vertex, edge, and
// augmentation is discarded and the component registry (if any) is
// purged so it cannot hand out stale IDs for components that no longer
// exist (spec.md §6).
func (g *Graph) Clear() {
	g.forest = forest.New(forest.CombineFunc(g.combine))
	g.vertices = make(map[*Vertex]*vertexInfo)
	g.maxLogV = 0
	g.trackedMaxV = 0
	g.componentCount = 0
	if g.registry != nil {
		g.registry.Purge()
	}
}

// Optimize performs the layered forest's background maintenance pass
// (spec.md §4.3): it sinks forest and non-tree graph edges to the
// lowest level consistent with the invariants, shrinking future
// replacement searches without changing connectivity, augmentation, or
// component membership in any observable way (spec.md §8 property 7).
// It is safe, but never required, to call between mutations.
func (g *Graph) Optimize() {
	g.forest.Optimize(g.topETVs())
	g.debugValidate()
}
