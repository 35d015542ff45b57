package dynconn

import "github.com/wengh/dynamic-connectivity/internal/forest"

// AddEdge inserts the undirected edge (u, v), creating either or both
// handles' vertex records on first use. Reports true iff the edge was
// not already present; a second call with the same pair is a no-op that
// returns false (spec.md §6, §8 property 1).
//
// u == v is rejected with ErrSelfLoop. If u and/or v are new to the
// graph and admitting them would exceed the 2^30 vertex cap,
// ErrTooManyVertices is returned and nothing is mutated.
func (g *Graph) AddEdge(u, v *Vertex) (bool, error) {
	if u == v {
		return false, ErrSelfLoop
	}

	need := 0
	if _, ok := g.vertices[u]; !ok {
		need++
	}
	if _, ok := g.vertices[v]; !ok {
		need++
	}
	if len(g.vertices)+need > maxVertices {
		return false, ErrTooManyVertices
	}

	uInfo, err := g.ensureVertex(u)
	if err != nil {
		return false, err
	}
	vInfo, err := g.ensureVertex(v)
	if err != nil {
		return false, err
	}

	if _, exists := uInfo.neighbors[v]; exists {
		return false, nil
	}

	before := uInfo.top.Root() != vInfo.top.Root()
	ge := g.forest.AddEdge(uInfo.top, vInfo.top)
	if before {
		g.componentCount--
	}

	uInfo.neighbors[v] = ge
	uInfo.noteNeighborInsert()
	vInfo.neighbors[u] = ge
	vInfo.noteNeighborInsert()

	g.debugValidate()
	return true, nil
}

// RemoveEdge deletes the undirected edge (u, v), reporting true iff it
// was present (spec.md §6, §8 property 2). u == v is rejected with
// ErrSelfLoop; removing an edge that is absent, or touches an unknown
// vertex, is a no-op returning false.
func (g *Graph) RemoveEdge(u, v *Vertex) (bool, error) {
	if u == v {
		return false, ErrSelfLoop
	}

	uInfo, ok := g.vertices[u]
	if !ok {
		return false, nil
	}
	ge, ok := uInfo.neighbors[v]
	if !ok {
		return false, nil
	}
	vInfo := g.vertices[v]

	wasTree := ge.IsTreeEdge()
	delete(uInfo.neighbors, v)
	delete(vInfo.neighbors, u)

	g.forest.RemoveEdge(ge)
	if wasTree && uInfo.top.Root() != vInfo.top.Root() {
		g.componentCount++
	}

	g.dropVertexIfIdle(u)
	g.dropVertexIfIdle(v)

	g.debugValidate()
	return true, nil
}

// IsConnected reports whether some path currently connects u and v. It
// is reflexive (u == v, even for a handle never added to this graph) and
// an equivalence relation over every other pair (spec.md §8 property 3).
// An unknown vertex is connected to nothing but itself.
func (g *Graph) IsConnected(u, v *Vertex) bool {
	if u == v {
		return true
	}
	uInfo, ok := g.vertices[u]
	if !ok {
		return false
	}
	vInfo, ok := g.vertices[v]
	if !ok {
		return false
	}
	return forest.Connected(uInfo.top, vInfo.top)
}

// AdjacentVertices returns u's direct neighbours, or an empty slice if u
// is unknown to this graph.
func (g *Graph) AdjacentVertices(u *Vertex) []*Vertex {
	info, ok := g.vertices[u]
	if !ok {
		return nil
	}
	out := make([]*Vertex, 0, len(info.neighbors))
	for w := range info.neighbors {
		out = append(out, w)
	}
	return out
}
