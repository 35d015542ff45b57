// Package forest implements the layered Holm/de Lichtenberg/Thorup (HLT)
// dynamic connectivity forest: a stack of Euler-tour trees (one per
// level, per component) connected by push-down edges, giving
// polylogarithmic amortized edge insertion/deletion and logarithmic
// connectivity and component-augmentation queries.
//
// The package operates purely on internal handles (ETV, GraphEdge): it
// has no notion of an external vertex identity, a neighbour map, or a
// public error surface. That bookkeeping belongs to the façade package,
// which maps external handles onto the top-level ETV this package hands
// it and delegates every structural mutation here.
package forest
