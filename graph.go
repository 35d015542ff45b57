package dynconn

import (
	"math/rand/v2"

	"github.com/wengh/dynamic-connectivity/internal/forest"
	"github.com/wengh/dynamic-connectivity/registry"
)

// defaultRebuildSlack is spec.md §4.3's REBUILD_SLACK constant.
const defaultRebuildSlack = 2

// vertexInfo is the façade's per-graph, per-vertex record (spec.md §3
// "VertexInfo"): a pointer to the vertex's top-level Euler-tour
// representative, and a map from each neighbour to the GraphEdge
// between them.
type vertexInfo struct {
	top       *forest.ETV
	neighbors map[*Vertex]*forest.GraphEdge
	// neighborHighWater counts insertions into neighbors since the map
	// was last rebuilt in noteNeighborInsert (an upper bound on how large
	// it has grown), bounding the map's backing capacity the way
	// spec.md §5 asks ("periodically rebuilt to bound its capacity to
	// O(neighbour count)") even though Go's own map never shrinks on
	// delete.
	neighborHighWater int
}

func newVertexInfo(top *forest.ETV) *vertexInfo {
	return &vertexInfo{top: top, neighbors: make(map[*Vertex]*forest.GraphEdge)}
}

// smallMapConstant is the "capacity > small-constant" floor spec.md §5
// sets on the rebuild-if-oversized check, so a handful of neighbours
// never triggers a pointless reallocation.
const smallMapConstant = 8

// rebuildThreshold is spec.md §5's shrink trigger: "size · 4 <= capacity".
const rebuildThreshold = 4

func (vi *vertexInfo) noteNeighborInsert() {
	vi.neighborHighWater++
	if vi.neighborHighWater > smallMapConstant && len(vi.neighbors)*rebuildThreshold <= vi.neighborHighWater {
		fresh := make(map[*Vertex]*forest.GraphEdge, len(vi.neighbors))
		for k, v := range vi.neighbors {
			fresh[k] = v
		}
		vi.neighbors = fresh
		vi.neighborHighWater = len(vi.neighbors)
	}
}

// Graph is one fully-dynamic undirected connectivity structure: the
// façade described in spec.md §4.4. Every mutation and query is driven
// through the internal/forest layered HLT forest; this type owns the
// external-vertex-identity bookkeeping the core itself deliberately
// knows nothing about (spec.md §1).
//
// A Graph is not safe for concurrent use (spec.md §5: "single-threaded
// cooperative ... no operation may overlap another on the same graph").
type Graph struct {
	forest *forest.Forest

	combine    CombineFunc
	augEnabled bool

	vertices map[*Vertex]*vertexInfo

	rng      *rand.Rand
	registry *registry.Cache[*Vertex]

	rebuildSlack   int
	maxLogV        int
	trackedMaxV    int
	componentCount int
}

// NewGraph allocates an empty Graph. By default augmentation is
// disabled and the component registry is absent; see WithAugmentation
// and WithRegistry.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:     make(map[*Vertex]*vertexInfo),
		rebuildSlack: defaultRebuildSlack,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.forest = forest.New(forest.CombineFunc(g.combine))
	return g
}

// topETVs snapshots every currently-known vertex's top-level ETV, the
// input internal/forest's Rebuild/Optimize/Validate entry points need
// (they have no notion of the external vertex set themselves).
func (g *Graph) topETVs() []*forest.ETV {
	tops := make([]*forest.ETV, 0, len(g.vertices))
	for _, vi := range g.vertices {
		tops = append(tops, vi.top)
	}
	return tops
}

// ensureVertex returns u's vertexInfo, allocating a fresh top-level ETV
// (and counting u as a new, singleton component) on first use. Returns
// ErrTooManyVertices -- without allocating anything -- if doing so would
// exceed the 2^30 hard limit.
func (g *Graph) ensureVertex(u *Vertex) (*vertexInfo, error) {
	if vi, ok := g.vertices[u]; ok {
		return vi, nil
	}
	if len(g.vertices) >= maxVertices {
		return nil, ErrTooManyVertices
	}
	vi := newVertexInfo(g.forest.NewTop())
	g.vertices[u] = vi
	g.componentCount++
	g.onVertexCountChanged()
	return vi, nil
}

// dropVertexIfIdle discards u's vertexInfo once it has no edges and no
// augmentation (spec.md §5: "the façade eagerly drops a VertexInfo when
// its edge map empties AND no augmentation is set").
func (g *Graph) dropVertexIfIdle(u *Vertex) {
	vi, ok := g.vertices[u]
	if !ok {
		return
	}
	if len(vi.neighbors) != 0 {
		return
	}
	if g.augEnabled && vi.top.HasAugmentation() {
		return
	}
	delete(g.vertices, u)
	g.componentCount--
	g.onVertexCountChanged()
}

// ceilLog2 returns ceil(log2(n)), and 0 for n <= 1 (spec.md §4.3's L and
// max_log_v are both defined this way).
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	bits, v := 0, n-1
	for v > 0 {
		v >>= 1
		bits++
	}
	return bits
}

// onVertexCountChanged implements spec.md §4.3's "Rebuild": max_log_v
// tracks ceil(log2(max vertex count since last rebuild)); once V shrinks
// enough that V·2^rebuildSlack <= 2^max_log_v, the excess levels the
// forest no longer needs are collapsed away in one O(V+E) pass amortized
// into whichever operation triggered it.
func (g *Graph) onVertexCountChanged() {
	v := len(g.vertices)
	if v > g.trackedMaxV {
		g.trackedMaxV = v
		g.maxLogV = ceilLog2(v)
	}
	if v == 0 {
		return
	}
	if v<<uint(g.rebuildSlack) > (1 << uint(g.maxLogV)) {
		return
	}
	newLogV := ceilLog2(v)
	levels := g.maxLogV - newLogV
	if levels <= 0 {
		return
	}
	tops := g.topETVs()
	for i := 0; i < levels; i++ {
		g.forest.CollapseBottomLevel(tops)
	}
	g.maxLogV = newLogV
	g.trackedMaxV = v
}
