// Package dynconn is the public façade over a fully-dynamic undirected
// graph connectivity structure: it maintains a graph under an
// interleaved sequence of edge insertions and deletions and answers, at
// any moment, whether two vertices lie in the same connected component.
// Vertices may also carry a user-supplied augmentation; the façade
// exposes folding that augmentation across a whole connected component.
//
// The hard part -- the poly-logarithmic layered Euler-tour forest of
// Holm, de Lichtenberg and Thorup, and the augmented red-black tree each
// Euler tour is built from -- lives in internal/rbtree and
// internal/forest. This package turns that machinery into the narrow
// external surface below: argument checks, vertex-handle bookkeeping,
// and the periodic rebuild/shrink maintenance the core asks its caller
// to drive.
//
//	AddEdge / RemoveEdge / IsConnected / AdjacentVertices
//	SetVertexAugmentation / RemoveVertexAugmentation / GetVertexAugmentation
//	GetComponentInfo / VertexHasAugmentation / ComponentHasAugmentation
//	Clear / Optimize
//	GetNumberOfComponents / GetAllComponents (require WithRegistry)
//
// Complexity: AddEdge/RemoveEdge are O(log^2 V) amortized with high
// probability; IsConnected and the augmentation reads are O(log V) with
// high probability; space is O(V log V + E).
package dynconn
