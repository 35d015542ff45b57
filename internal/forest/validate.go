package forest

import (
	"fmt"

	"github.com/wengh/dynamic-connectivity/internal/rbtree"
)

// Validate walks every level reachable from tops and reports the first
// structural invariant violation found (spec §8 "Structural
// invariants"), or nil if the forest is well-formed. It is not called
// outside tests and the dynconn_debug build tag.
func Validate(tops []*ETV) error {
	seen := make(map[*rbtree.Node]bool)
	for _, top := range tops {
		for v := top; v != nil; v = v.lower {
			root := v.Root()
			if seen[root] {
				continue
			}
			seen[root] = true
			if err := rbtree.Validate(root); err != nil {
				return fmt.Errorf("forest: level %d: %w", v.level, err)
			}
			if err := validateArbitraryVisit(root); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateArbitraryVisit checks that every vertex reachable in this ETT
// is, at most, the arbitrary visit of exactly one node -- i.e. that
// vis.vertex.arbitraryVisit.self == n holds for at most the one node it
// names, never silently for a stale duplicate.
func validateArbitraryVisit(root *rbtree.Node) error {
	var walk func(n *rbtree.Node) error
	walk = func(n *rbtree.Node) error {
		if n == nil {
			return nil
		}
		if err := walk(n.Left); err != nil {
			return err
		}
		vis := n.Aug.(*visit)
		if vis.vertex.arbitraryVisit == vis && vis.vertex.arbitraryVisit.self != n {
			return fmt.Errorf("forest: vertex %p's arbitrary visit is not self-consistent", vis.vertex)
		}
		return walk(n.Right)
	}
	return walk(root)
}
