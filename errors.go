package dynconn

import "errors"

// Sentinel errors for the façade's public surface (spec.md §6-§7). Every
// mutating operation either completes fully or returns one of these
// without touching any state -- argument checks always run before any
// structural edit begins.
var (
	// ErrSelfLoop is returned by AddEdge/RemoveEdge when called with
	// u == v; self-loops are out of scope (spec.md §1 Non-goals).
	ErrSelfLoop = errors.New("dynconn: self-loop edges are not supported")

	// ErrTooManyVertices is returned when an operation would create a
	// vertex past the 2^30 hard limit (spec.md §6).
	ErrTooManyVertices = errors.New("dynconn: vertex count would exceed the 2^30 limit")

	// ErrAugmentationDisabled is returned by every augmentation method
	// when the Graph was constructed without WithAugmentation.
	ErrAugmentationDisabled = errors.New("dynconn: graph was constructed without WithAugmentation")

	// ErrRegistryDisabled is returned by GetNumberOfComponents and
	// GetAllComponents when the Graph was constructed without
	// WithRegistry.
	ErrRegistryDisabled = errors.New("dynconn: graph was constructed without WithRegistry")
)

// maxVertices is the hard simultaneous-vertex cap spec.md §6 sets: 2^30,
// chosen to fit a 31-bit size augmentation with sign-bit slack.
const maxVertices = 1 << 30
