package forest

import "github.com/wengh/dynamic-connectivity/internal/rbtree"

// Link joins u's and v's Euler-tour trees with a fresh tree edge,
// implementing spec §4.2. u and v must currently sit in distinct ETTs;
// ErrAlreadyConnected is returned otherwise.
//
// v's whole existing tour is spliced in unchanged (no re-rooting of v is
// needed: its internal order is irrelevant to anything outside it) as a
// single contiguous block bracketed by two fresh visits of u, entry and
// exit, immediately after u's arbitrary visit:
//
//	before, u.arbitrary_visit, entry, v's whole tour, exit, afterTail
//
// entry and exit are dedicated to this one edge and never shared with
// any sibling edge also attached near u.arbitrary_visit, so later
// insertions of further children under u (which always re-split at
// u.arbitrary_visit and push whatever is already there outward) cannot
// disturb which two markers bound *this* edge's subtree -- Cut finds it
// again by looking at entry/exit directly, never by position relative
// to u.arbitrary_visit.
func Link(u, v *ETV) (*TreeEdge, error) {
	if SameTree(u, v) {
		return nil, ErrAlreadyConnected
	}

	entry := newVisit(u)
	exit := newVisit(u)

	uRoot := u.Root()
	before, afterIncl := rbtree.Split(uRoot, u.arbitraryVisit.self)
	afterTail := rbtree.Remove(afterIncl, u.arbitraryVisit.self)

	vRoot := v.Root()
	withEntry := rbtree.Concat(nil, entry.self, vRoot)
	withBoth := rbtree.Concat(withEntry, exit.self, afterTail)
	rbtree.Concat(before, u.arbitraryVisit.self, withBoth)

	return &TreeEdge{visit1: entry, visit2: exit, u: u, v: v}, nil
}

// Cut removes the tree edge te, splitting its Euler-tour tree back into
// the two it joined. te.visit1 (entry) always precedes te.visit2 (exit)
// in in-order position and nothing strictly between them belongs to any
// other edge's bookkeeping, so the span (entry, exit) -- exclusive on
// both ends -- is exactly the child side's whole tour. entry is
// discarded; exit is detached and reused as the pivot rejoining what
// remains on the parent side.
func Cut(te *TreeEdge) *rbtree.Node {
	entry, exit := te.visit1.self, te.visit2.self

	root := rbtree.Root(entry)
	lessEntry, geqEntry := rbtree.Split(root, entry)
	rest := rbtree.Remove(geqEntry, entry)

	childTour, exitAndAfter := rbtree.Split(rest, exit)
	afterTail := rbtree.Remove(exitAndAfter, exit)

	rbtree.Concat(lessEntry, exit, afterTail)
	return childTour
}
