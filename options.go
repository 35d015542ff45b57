package dynconn

import (
	"math/rand/v2"

	"github.com/wengh/dynamic-connectivity/registry"
)

// CombineFunc folds two vertex augmentations into one (spec.md §6). The
// façade treats it as associative and always invokes it left-argument-
// first in in-order traversal order; it never assumes commutativity.
type CombineFunc func(left, right interface{}) interface{}

// GraphOption configures a Graph at construction time, the same
// functional-options shape the teacher package uses for its own
// GraphOption (core.WithWeighted, core.WithLoops, ...) generalized to
// this module's concerns.
type GraphOption func(*Graph)

// WithAugmentation enables per-vertex augmentation and the component
// fold it supports, using combine to fold values in in-order traversal
// order. Without this option every augmentation method returns
// ErrAugmentationDisabled.
func WithAugmentation(combine CombineFunc) GraphOption {
	return func(g *Graph) {
		g.combine = combine
		g.augEnabled = true
	}
}

// WithRNG supplies the generator g.NewVertex draws fingerprints from
// (vertex fingerprints have no bearing on Go's own map bucketing --
// spec.md §9's case for explicit-RNG reproducibility is about
// debug/test determinism, not correctness). It has no effect on the
// package-level NewVertex, which takes its own optional rng argument
// instead.
func WithRNG(rng *rand.Rand) GraphOption {
	return func(g *Graph) { g.rng = rng }
}

// WithRegistry enables the optional component-registry collaborator
// (spec.md §1, §6): GetNumberOfComponents and GetAllComponents return
// ErrRegistryDisabled without it. size bounds how many distinct
// components the registry's LRU keeps a stable representative/ID for at
// once (registry.New); it does not bound how many components the graph
// itself may have.
func WithRegistry(size int) GraphOption {
	return func(g *Graph) { g.registry = registry.New[*Vertex](size) }
}

// WithRebuildSlack overrides spec.md §4.3's REBUILD_SLACK constant (2):
// a rebuild collapsing unused forest levels triggers once
// V·2^slack <= 2^max_log_v. Lower values rebuild more eagerly, trading
// extra O(V+E) rebuild passes for a tighter space bound; the spec's own
// default of 2 is used unless this option is given.
func WithRebuildSlack(slack int) GraphOption {
	return func(g *Graph) { g.rebuildSlack = slack }
}
