package rbtree

import "fmt"

// color is the red/black tag. A nil *Node is always treated as black.
type color bool

const (
	black color = false
	red   color = true
)

// Augmenter is implemented by the value attached to a Node. Augment
// recomputes the receiver's derived fields from its own intrinsic value
// and from left/right, the (possibly nil) Augmenters of the node's
// children, and returns true iff the receiver's derived state changed
// relative to the previous call.
//
// Augment must not read or write Node.Parent/Left/Right directly; it only
// ever sees the children's Augmenter, never their Node wrapper, so that a
// payload can never accidentally corrupt tree shape.
type Augmenter interface {
	Augment(left, right Augmenter) bool
}

// Node is one tree position. Payload-free fields (Parent/Left/Right/Color)
// are exactly what rotate/insert/remove/split/concat manipulate; Aug is
// opaque to this package beyond calling Augment on it.
type Node struct {
	Parent, Left, Right *Node
	c                   color
	Aug                 Augmenter
}

// New allocates a detached red node carrying aug. Callers insert it with
// Insert, InsertAfter, or use it as a Concat pivot.
func New(aug Augmenter) *Node {
	return &Node{c: red, Aug: aug}
}

func colorOf(n *Node) color {
	if n == nil {
		return black
	}
	return n.c
}

func augOf(n *Node) Augmenter {
	if n == nil {
		return nil
	}
	return n.Aug
}

// augment recomputes n's payload from its current children and reports
// whether anything changed.
func augment(n *Node) bool {
	if n == nil || n.Aug == nil {
		return false
	}
	return n.Aug.Augment(augOf(n.Left), augOf(n.Right))
}

// Refresh recomputes n's augmentation and walks upward until an
// ancestor's Augment call reports no change. Callers use this after
// mutating a node's payload in place (without any Insert/Remove/
// Concat/Split call touching the tree), e.g. changing a stored user
// value or reassigning which node is a vertex's arbitrary visit.
func Refresh(n *Node) {
	refreshUp(n)
}

// refreshUp recomputes augmentation from n upward to the root, stopping
// as soon as a node's Augment call reports no change (the optimization
// the source calls out: ancestors above a stable node cannot differ from
// what they already recorded, since their inputs are unchanged).
func refreshUp(n *Node) {
	for n != nil && augment(n) {
		n = n.Parent
	}
}

// Root walks up from n to the root of its tree. O(log n) on a balanced
// tree; nil in, nil out.
func Root(n *Node) *Node {
	if n == nil {
		return nil
	}
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// Min returns the in-order minimum of the subtree rooted at n.
func Min(n *Node) *Node {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Max returns the in-order maximum of the subtree rooted at n.
func Max(n *Node) *Node {
	if n == nil {
		return nil
	}
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// Next returns the in-order successor of n within its whole tree, or nil
// if n is the maximum.
func Next(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.Right != nil {
		return Min(n.Right)
	}
	child, parent := n, n.Parent
	for parent != nil && child == parent.Right {
		child, parent = parent, parent.Parent
	}
	return parent
}

// Prev returns the in-order predecessor of n within its whole tree, or
// nil if n is the minimum.
func Prev(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.Left != nil {
		return Max(n.Left)
	}
	child, parent := n, n.Parent
	for parent != nil && child == parent.Left {
		child, parent = parent, parent.Parent
	}
	return parent
}

// depth counts the edges from n up to its root. Used only by CompareTo
// and LCA; O(log n) on a balanced tree.
func depth(n *Node) int {
	d := 0
	for n.Parent != nil {
		n = n.Parent
		d++
	}
	return d
}

func parentSlot(n *Node) **Node {
	p := n.Parent
	switch {
	case p == nil:
		panic(fmt.Errorf("rbtree: node %p has no parent", n))
	case p.Left == n:
		return &p.Left
	case p.Right == n:
		return &p.Right
	default:
		panic(fmt.Errorf("rbtree: node %p is not a child of its parent %p", n, p))
	}
}

// rotateLeft performs a standard left rotation around x, reattaching the
// pivoted subtree to x's former parent. Augment is refreshed on x (now a
// child) and on its new parent only, per the source's rotation contract;
// callers needing a full ancestor refresh call refreshUp separately.
func rotateLeft(x *Node) *Node {
	y := x.Right
	b := y.Left

	y.Parent = x.Parent
	if x.Parent != nil {
		*parentSlot(x) = y
	}

	x.Parent = y
	y.Left = x

	x.Right = b
	if b != nil {
		b.Parent = x
	}

	augment(x)
	augment(y)
	return y
}

// rotateRight is the mirror image of rotateLeft.
func rotateRight(y *Node) *Node {
	x := y.Left
	b := x.Right

	x.Parent = y.Parent
	if y.Parent != nil {
		*parentSlot(y) = x
	}

	y.Parent = x
	x.Right = y

	y.Left = b
	if b != nil {
		b.Parent = y
	}

	augment(y)
	augment(x)
	return x
}
