package dynconn

import (
	"github.com/google/uuid"

	"github.com/wengh/dynamic-connectivity/internal/rbtree"
)

// ComponentInfo summarizes one connected component as returned by
// GetAllComponents: an identity for the component (the same across calls
// only while the component's Euler-tour root node is unchanged), one of its
// member vertices, its folded augmentation (if any), and its size.
type ComponentInfo struct {
	ID              uuid.UUID
	Representative  *Vertex
	Augmentation    interface{}
	HasAugmentation bool
	Size            int
}

// GetNumberOfComponents returns the number of connected components,
// including isolated vertices carrying an augmentation, in O(1).
// Returns ErrRegistryDisabled if the Graph was constructed without
// WithRegistry (spec.md §6 gates both registry-backed queries on it
// even though the count itself needs no registry lookup, matching the
// error table's grouping of the two operations).
func (g *Graph) GetNumberOfComponents() (int, error) {
	if g.registry == nil {
		return 0, ErrRegistryDisabled
	}
	return g.componentCount, nil
}

// GetAllComponents enumerates every connected component exactly once,
// each with a stable ID assigned by the registry (spec.md §1, §6).
// Returns ErrRegistryDisabled if the Graph was constructed without
// WithRegistry.
func (g *Graph) GetAllComponents() ([]ComponentInfo, error) {
	if g.registry == nil {
		return nil, ErrRegistryDisabled
	}

	byRoot := make(map[*rbtree.Node][]*Vertex)
	for u, vi := range g.vertices {
		root := vi.top.Root()
		byRoot[root] = append(byRoot[root], u)
	}

	out := make([]ComponentInfo, 0, len(byRoot))
	for root, members := range byRoot {
		comp := g.registry.Representative(root, members)

		var aug interface{}
		hasAug := false
		size := len(members)
		if g.augEnabled {
			if vi, ok := g.vertices[members[0]]; ok {
				aug, hasAug = vi.top.AugmentationFold()
				size = vi.top.ComponentSize()
			}
		}
		out = append(out, ComponentInfo{
			ID:              comp.ID,
			Representative:  comp.Representative,
			Augmentation:    aug,
			HasAugmentation: hasAug,
			Size:            size,
		})
	}
	return out, nil
}
