package oracle

// CombineFunc folds two augmentations together, mirroring
// forest.CombineFunc without creating a dependency from this test helper
// onto the production package it is meant to check.
type CombineFunc[T any] func(left, right T) T

// Graph is a brute-force undirected graph used as the ground truth in
// randomized and scenario tests: every query rebuilds its answer from
// the current adjacency set instead of maintaining any incremental
// structure.
type Graph[V comparable, T any] struct {
	combine CombineFunc[T]
	adj     map[V]map[V]bool
	aug     map[V]T
	hasAug  map[V]bool
}

// New allocates an empty oracle graph. combine is used exactly the way
// the façade's CombineFunc is: left-argument-first, in visitation order,
// never assumed commutative.
func New[V comparable, T any](combine CombineFunc[T]) *Graph[V, T] {
	return &Graph[V, T]{
		combine: combine,
		adj:     make(map[V]map[V]bool),
		aug:     make(map[V]T),
		hasAug:  make(map[V]bool),
	}
}

func (g *Graph[V, T]) ensure(v V) {
	if g.adj[v] == nil {
		g.adj[v] = make(map[V]bool)
	}
}

// AddEdge adds the undirected edge (u, v). Reports whether the edge was
// not already present. u == v is rejected by the caller, not here --
// this oracle trusts its test-only callers.
func (g *Graph[V, T]) AddEdge(u, v V) bool {
	g.ensure(u)
	g.ensure(v)
	if g.adj[u][v] {
		return false
	}
	g.adj[u][v] = true
	g.adj[v][u] = true
	return true
}

// RemoveEdge removes the undirected edge (u, v), reporting whether it
// was present.
func (g *Graph[V, T]) RemoveEdge(u, v V) bool {
	if g.adj[u] == nil || !g.adj[u][v] {
		return false
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	return true
}

// IsConnected reports whether some path connects u and v, including the
// reflexive u == v case. O(V+E).
func (g *Graph[V, T]) IsConnected(u, v V) bool {
	if u == v {
		return true
	}
	if g.adj[u] == nil || g.adj[v] == nil {
		return u == v
	}
	visited := map[V]bool{u: true}
	queue := []V{u}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == v {
			return true
		}
		for nbr := range g.adj[cur] {
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}
	return visited[v]
}

// AdjacentVertices returns v's direct neighbours, or nil if v is unknown.
func (g *Graph[V, T]) AdjacentVertices(v V) []V {
	nbrs := g.adj[v]
	if nbrs == nil {
		return nil
	}
	out := make([]V, 0, len(nbrs))
	for w := range nbrs {
		out = append(out, w)
	}
	return out
}

// SetAugmentation stores x as v's own augmentation.
func (g *Graph[V, T]) SetAugmentation(v V, x T) {
	g.ensure(v)
	g.aug[v] = x
	g.hasAug[v] = true
}

// RemoveAugmentation clears v's own augmentation.
func (g *Graph[V, T]) RemoveAugmentation(v V) {
	delete(g.aug, v)
	delete(g.hasAug, v)
}

// HasAugmentation reports whether v itself carries an augmentation.
func (g *Graph[V, T]) HasAugmentation(v V) bool {
	return g.hasAug[v]
}

// ComponentInfo walks v's whole reachable set by BFS and folds every
// *visited* vertex's own augmentation (v's included) into the result
// exactly once, in visitation order -- never the starting vertex's value
// at every step, which is the bug spec.md §9 warns the original
// reference helper has.
func (g *Graph[V, T]) ComponentInfo(v V) (size int, fold T, hasFold bool) {
	if g.adj[v] == nil {
		var zero T
		if g.hasAug[v] {
			return 1, g.aug[v], true
		}
		return 1, zero, false
	}
	visited := map[V]bool{v: true}
	queue := []V{v}
	size = 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		size++
		if g.hasAug[cur] {
			if hasFold {
				fold = g.combine(fold, g.aug[cur])
			} else {
				fold, hasFold = g.aug[cur], true
			}
		}
		for nbr := range g.adj[cur] {
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}
	return size, fold, hasFold
}
