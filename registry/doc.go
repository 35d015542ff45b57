// Package registry implements the "component registry" collaborator
// spec.md §1 deliberately keeps outside the dynamic-connectivity core: a
// plug-in cache mapping a connected component to one representative
// vertex and a stable external identifier, used only by
// Graph.GetNumberOfComponents and Graph.GetAllComponents.
//
// The core forest never enumerates components on its own -- doing so is
// an O(V) walk, not the O(log V) the core's other operations guarantee
// -- so spec.md treats whole-graph enumeration as an external concern
// layered on top. Cache keeps that enumeration bounded in memory (via an
// LRU of recently-seen component roots) and keeps each component's
// identity stable across calls for as long as its internal root node
// stays the same; a component whose root node has changed is given a
// fresh identity.
package registry
