package Trees

// A node in the LinkedBST.
// Each node is owned by exactly one link: its parent's l or r, or the tree's root.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// leftmost node of the subtree rooting at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func (n *node[T]) leftmost() *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node of the subtree rooting at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func (n *node[T]) rightmost() *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// clone the subtree rooting at n recursively. A nil n gives nil.
func (n *node[T]) clone() *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{n.v, n.l.clone(), n.r.clone()}
}

// height of the subtree rooting at n recursively.
func (n *node[T]) height() int {
	if n == nil {
		return -1
	}
	return 1 + max(n.l.height(), n.r.height())
}
