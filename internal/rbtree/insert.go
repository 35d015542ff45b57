package rbtree

// Insert performs a classic BST-by-key insertion: cmp(v) must return <0 to
// go left, >0 to go right, 0 only if v occupies n's exact slot (cmp is
// never called with that meaning here; Insert always places newNode at a
// nil child). newNode must be a freshly allocated, parent-less node
// (New(aug)); Insert colors it red itself. Returns the tree's new root.
//
// This is the generic comparator-keyed entry point used by plain
// order-statistic trees; sequence structures such as an Euler-tour tree
// use InsertAfter/InsertBefore instead, since their order is positional
// rather than key-derived.
func Insert(root, newNode *Node, cmp func(*Node) int) *Node {
	if newNode.Parent != nil || newNode.Left != nil || newNode.Right != nil {
		panic("rbtree: Insert requires a detached node")
	}
	newNode.c = red
	augment(newNode)

	if root == nil {
		newNode.c = black
		return newNode
	}
	n := root
	for {
		if cmp(n) < 0 {
			if n.Left == nil {
				n.Left = newNode
				break
			}
			n = n.Left
		} else {
			if n.Right == nil {
				n.Right = newNode
				break
			}
			n = n.Right
		}
	}
	newNode.Parent = n
	refreshUp(n)
	return fixupInsert(root, newNode)
}

// InsertAfter splices newNode in immediately after "after" in in-order
// sequence. "after" may be nil, meaning newNode becomes the very first
// element of the tree rooted at root. newNode must be detached.
func InsertAfter(root, after, newNode *Node) *Node {
	if newNode.Parent != nil || newNode.Left != nil || newNode.Right != nil {
		panic("rbtree: InsertAfter requires a detached node")
	}
	newNode.c = red
	augment(newNode)

	if after == nil {
		if root == nil {
			newNode.c = black
			return newNode
		}
		first := Min(root)
		first.Left = newNode
		newNode.Parent = first
		refreshUp(first)
		return fixupInsert(root, newNode)
	}

	if after.Right == nil {
		after.Right = newNode
		newNode.Parent = after
		refreshUp(after)
	} else {
		succ := Min(after.Right)
		succ.Left = newNode
		newNode.Parent = succ
		refreshUp(succ)
	}
	return fixupInsert(root, newNode)
}

// InsertBefore is the mirror image of InsertAfter: newNode becomes the
// in-order predecessor of "before" (or the new last element if before is
// nil).
func InsertBefore(root, before, newNode *Node) *Node {
	if newNode.Parent != nil || newNode.Left != nil || newNode.Right != nil {
		panic("rbtree: InsertBefore requires a detached node")
	}
	newNode.c = red
	augment(newNode)

	if before == nil {
		if root == nil {
			newNode.c = black
			return newNode
		}
		last := Max(root)
		last.Right = newNode
		newNode.Parent = last
		refreshUp(last)
		return fixupInsert(root, newNode)
	}

	if before.Left == nil {
		before.Left = newNode
		newNode.Parent = before
		refreshUp(before)
	} else {
		pred := Max(before.Left)
		pred.Right = newNode
		newNode.Parent = pred
		refreshUp(pred)
	}
	return fixupInsert(root, newNode)
}

// fixupInsert restores red-black balance after a red newNode was attached
// as a leaf, then returns the (possibly new) root. It follows the
// standard CLRS fixup; augmentation of rotated nodes happens inside
// rotateLeft/rotateRight, and refreshUp in the caller already brought the
// pre-rotation ancestor chain up to date, so no separate augment pass is
// needed here.
func fixupInsert(root, node *Node) *Node {
	for colorOf(node.Parent) == red {
		parent := node.Parent
		grandparent := parent.Parent
		if grandparent == nil {
			break
		}
		if parent == grandparent.Left {
			uncle := grandparent.Right
			if colorOf(uncle) == red {
				parent.c = black
				uncle.c = black
				grandparent.c = red
				node = grandparent
				continue
			}
			if node == parent.Right {
				node = parent
				rotateLeft(node)
				parent = node.Parent
			}
			parent.c = black
			grandparent.c = red
			rotateRight(grandparent)
			break
		}
		uncle := grandparent.Left
		if colorOf(uncle) == red {
			parent.c = black
			uncle.c = black
			grandparent.c = red
			node = grandparent
			continue
		}
		if node == parent.Left {
			node = parent
			rotateRight(node)
			parent = node.Parent
		}
		parent.c = black
		grandparent.c = red
		rotateLeft(grandparent)
		break
	}
	result := Root(node)
	result.c = black
	return result
}
