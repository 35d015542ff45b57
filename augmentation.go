package dynconn

// SetVertexAugmentation stores x as u's own augmentation, creating u's
// vertex record on first use, and returns whatever was previously
// stored (nil, false if none). Passing x == nil stores nil -- it does
// NOT remove the augmentation; use RemoveVertexAugmentation for that
// (spec.md §6).
func (g *Graph) SetVertexAugmentation(u *Vertex, x interface{}) (previous interface{}, hadPrevious bool, err error) {
	if !g.augEnabled {
		return nil, false, ErrAugmentationDisabled
	}
	vi, err := g.ensureVertex(u)
	if err != nil {
		return nil, false, err
	}
	previous, hadPrevious = vi.top.SetAugmentation(x)
	g.debugValidate()
	return previous, hadPrevious, nil
}

// RemoveVertexAugmentation clears u's own augmentation and returns
// whatever was previously stored. A vertex with no edges and no
// augmentation left afterward is dropped (spec.md §5).
func (g *Graph) RemoveVertexAugmentation(u *Vertex) (previous interface{}, hadPrevious bool, err error) {
	if !g.augEnabled {
		return nil, false, ErrAugmentationDisabled
	}
	vi, ok := g.vertices[u]
	if !ok {
		return nil, false, nil
	}
	previous, hadPrevious = vi.top.RemoveAugmentation()
	g.dropVertexIfIdle(u)
	g.debugValidate()
	return previous, hadPrevious, nil
}

// GetVertexAugmentation returns u's own current augmentation, or
// (nil, false) if u is unknown or carries none.
func (g *Graph) GetVertexAugmentation(u *Vertex) (value interface{}, has bool, err error) {
	if !g.augEnabled {
		return nil, false, ErrAugmentationDisabled
	}
	vi, ok := g.vertices[u]
	if !ok {
		return nil, false, nil
	}
	value, has = vi.top.Augmentation()
	return value, has, nil
}

// VertexHasAugmentation reports whether u itself (not its component)
// carries an augmentation.
func (g *Graph) VertexHasAugmentation(u *Vertex) (bool, error) {
	if !g.augEnabled {
		return false, ErrAugmentationDisabled
	}
	vi, ok := g.vertices[u]
	if !ok {
		return false, nil
	}
	return vi.top.HasAugmentation(), nil
}

// ComponentHasAugmentation reports whether any vertex in u's component
// carries an augmentation. Unlike the per-vertex augmentation methods
// this never errors: with augmentation disabled no vertex ever has one
// set, so the fold is trivially always empty and the answer is simply
// always false.
func (g *Graph) ComponentHasAugmentation(u *Vertex) bool {
	vi, ok := g.vertices[u]
	if !ok {
		return false
	}
	_, has := vi.top.AugmentationFold()
	return has
}

// GetComponentInfo returns a vertex in u's own connected component
// (u itself, which trivially qualifies), the fold of every member's
// augmentation in some in-order traversal order, and the component's
// size. u need not have been added to the graph yet: an unknown vertex
// is its own singleton component.
func (g *Graph) GetComponentInfo(u *Vertex) (representative *Vertex, augmentation interface{}, size int) {
	vi, ok := g.vertices[u]
	if !ok {
		return u, nil, 1
	}
	aug, has := vi.top.AugmentationFold()
	size = vi.top.ComponentSize()
	if !has {
		return u, nil, size
	}
	return u, aug, size
}
