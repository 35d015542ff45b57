package rbtree

// Remove splices victim out of its tree and returns the new root (nil if
// the tree is now empty). When victim has two children it is replaced by
// pointer surgery with its in-order successor -- the successor node
// itself is relinked into victim's old position, never copied -- so any
// external pointer into the successor (an ETT's arbitrary_visit, say)
// keeps pointing at a node that is still live and still holds the same
// Aug payload it always did.
func Remove(root, victim *Node) *Node {
	if victim == nil {
		panic("rbtree: Remove of nil node")
	}

	var rebalance, rebalanceParent *Node
	needsFixup := victim.c == black

	switch {
	case victim.Left == nil:
		rebalance = victim.Right
		rebalanceParent = victim.Parent
		root = transplant(root, victim, victim.Right)
		if rebalanceParent != nil {
			refreshUp(rebalanceParent)
		}
	case victim.Right == nil:
		rebalance = victim.Left
		rebalanceParent = victim.Parent
		root = transplant(root, victim, victim.Left)
		if rebalanceParent != nil {
			refreshUp(rebalanceParent)
		}
	default:
		succ := Min(victim.Right)
		if succ.Parent == victim {
			//        v                  s
			//      /   \      =>      /   \
			//     a      s           a    b(succ.Right)
			//             \
			//              b
			rebalance = succ.Right
			rebalanceParent = succ

			root = transplant(root, victim, succ)
			succ.Left = victim.Left
			succ.Left.Parent = succ
			needsFixup = succ.c == black
			succ.c = victim.c
			refreshUp(succ)
		} else {
			//       v                  s
			//      / \               /   \
			//     a   x      =>     a     x
			//        / \                 / \
			//       s   z               b   z
			//        \
			//         b
			parent := succ.Parent
			rebalance = succ.Right
			rebalanceParent = parent

			parent.Left = succ.Right
			if succ.Right != nil {
				succ.Right.Parent = parent
			}

			root = transplant(root, victim, succ)
			succ.Left = victim.Left
			succ.Left.Parent = succ
			succ.Right = victim.Right
			succ.Right.Parent = succ
			needsFixup = succ.c == black
			succ.c = victim.c

			refreshUp(parent)
			refreshUp(succ)
		}
	}

	victim.Parent, victim.Left, victim.Right = nil, nil, nil

	if !needsFixup {
		if root != nil {
			root.c = black
		}
		return root
	}
	return fixupDelete(rebalance, rebalanceParent)
}

// transplant replaces the subtree rooted at old with the subtree rooted
// at repl (possibly nil) and returns the (possibly new) root.
func transplant(root, old, repl *Node) *Node {
	if old.Parent == nil {
		if repl != nil {
			repl.Parent = nil
		}
		return repl
	}
	*parentSlot(old) = repl
	if repl != nil {
		repl.Parent = old.Parent
	}
	return root
}

// fixupDelete restores red-black balance after removing a black node.
// node may be nil (the removed node had no children); nodeParent carries
// the would-be parent in that case since node itself has no Parent link
// to consult. node is the root of its tree exactly when nodeParent==nil,
// so the loop never needs to consult a (potentially rotation-staled)
// root variable directly.
func fixupDelete(node, nodeParent *Node) *Node {
	for nodeParent != nil && colorOf(node) == black {
		if node == nodeParent.Left {
			sibling := nodeParent.Right
			if colorOf(sibling) == red {
				sibling.c = black
				nodeParent.c = red
				rotateLeft(nodeParent)
				sibling = nodeParent.Right
			}
			if colorOf(sibling.Left) == black && colorOf(sibling.Right) == black {
				sibling.c = red
				node, nodeParent = nodeParent, nodeParent.Parent
				continue
			}
			if colorOf(sibling.Right) == black {
				sibling.Left.c = black
				sibling.c = red
				rotateRight(sibling)
				sibling = nodeParent.Right
			}
			sibling.c = nodeParent.c
			nodeParent.c = black
			sibling.Right.c = black
			rotateLeft(nodeParent)
			node, nodeParent = Root(sibling), nil
			break
		}
		sibling := nodeParent.Left
		if colorOf(sibling) == red {
			sibling.c = black
			nodeParent.c = red
			rotateRight(nodeParent)
			sibling = nodeParent.Left
		}
		if colorOf(sibling.Right) == black && colorOf(sibling.Left) == black {
			sibling.c = red
			node, nodeParent = nodeParent, nodeParent.Parent
			continue
		}
		if colorOf(sibling.Left) == black {
			sibling.Right.c = black
			sibling.c = red
			rotateLeft(sibling)
			sibling = nodeParent.Left
		}
		sibling.c = nodeParent.c
		nodeParent.c = black
		sibling.Left.c = black
		rotateRight(nodeParent)
		node, nodeParent = Root(sibling), nil
		break
	}
	if node != nil {
		node.c = black
		result := Root(node)
		result.c = black
		return result
	}
	if nodeParent != nil {
		result := Root(nodeParent)
		result.c = black
		return result
	}
	return nil
}
