// Package oracle is the "naive reference implementation" spec.md §1
// calls out as a collaborator outside the core's scope, and §9 asks
// implementers to write "from scratch" rather than port -- the source's
// own NaiveConnGraph appears to fold the *starting* vertex's
// augmentation in at every BFS step instead of the *current* one, which
// spec.md flags as a likely bug in the reference, not the engine.
//
// Graph here tracks the same edge set as the façade but answers every
// query by brute force: IsConnected is a fresh BFS: and ComponentInfo
// walks the whole reachable set, folding each *visited* vertex's own
// augmentation in visitation order. It exists only to be cross-checked
// against in tests; it is never tuned for speed.
package oracle
