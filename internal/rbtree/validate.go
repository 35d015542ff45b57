package rbtree

import "fmt"

// Validate walks the tree rooted at root and returns an error describing
// the first red-black invariant violation it finds, or nil if the tree
// is well-formed. It is called only from tests and from forest.Validate,
// which normal builds never run: production code pays for balance, not
// for re-verifying it.
func Validate(root *Node) error {
	if root == nil {
		return nil
	}
	if root.c != black {
		return fmt.Errorf("rbtree: root %p is red", root)
	}
	if root.Parent != nil {
		return fmt.Errorf("rbtree: root %p has non-nil parent", root)
	}
	_, err := validate(root)
	return err
}

// validate returns the subtree's black height and the first violation
// found beneath n.
func validate(n *Node) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.Left != nil && n.Left.Parent != n {
		return 0, fmt.Errorf("rbtree: node %p's left child has wrong parent pointer", n)
	}
	if n.Right != nil && n.Right.Parent != n {
		return 0, fmt.Errorf("rbtree: node %p's right child has wrong parent pointer", n)
	}
	if n.c == red {
		if colorOf(n.Left) == red || colorOf(n.Right) == red {
			return 0, fmt.Errorf("rbtree: red node %p has a red child", n)
		}
	}

	lh, err := validate(n.Left)
	if err != nil {
		return 0, err
	}
	rh, err := validate(n.Right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("rbtree: node %p has unequal black heights (%d left, %d right)", n, lh, rh)
	}

	if n.Aug != nil && n.Aug.Augment(augOf(n.Left), augOf(n.Right)) {
		return 0, fmt.Errorf("rbtree: node %p's augmentation is stale", n)
	}

	h := lh
	if n.c == black {
		h++
	}
	return h, nil
}
