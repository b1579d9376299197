package Trees

import "github.com/g-m-twostay/linkedbst/Queues"

// Iter [Tree.Iter]
// The nodes waiting to be visited are kept in a linked stack; the right child
// is pushed before the left so the left subtree comes out first.
// Time: f(): O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) Iter() func() (T, bool) {
	st := Queues.MakeLinkedStack[*node[T]]()
	if u.root != nil {
		st.Push(u.root)
	}
	return func() (r T, has bool) {
		cur, e := st.Pop()
		if e != nil {
			return
		}
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
		return cur.v, true
	}
}

// Range calls f on the elements in pre-order until f returns false.
func (u *LinkedBST[T]) Range(f func(T) bool) {
	for next := u.Iter(); ; {
		if v, ok := next(); !ok || !f(v) {
			return
		}
	}
}

// PreOrder [Tree.PreOrder]
// Time: O(n); Space: O(n)
func (u *LinkedBST[T]) PreOrder() []T {
	vs := make([]T, 0, u.sz)
	u.Range(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

func (u *LinkedBST[T]) inOrder(cur *node[T], vs []T) []T {
	if cur != nil {
		vs = u.inOrder(cur.l, vs)
		vs = append(vs, cur.v)
		vs = u.inOrder(cur.r, vs)
	}
	return vs
}

// InOrder [Tree.InOrder]. Recursive.
// The returned slice is a snapshot and doesn't change with the tree.
// Time: O(n); Space: O(n)
func (u *LinkedBST[T]) InOrder() []T {
	return u.inOrder(u.root, make([]T, 0, u.sz))
}

// PostOrder [Tree.PostOrder]
func (u *LinkedBST[T]) PostOrder() ([]T, error) {
	return nil, ErrNotSupported
}

// LevelOrder [Tree.LevelOrder]
func (u *LinkedBST[T]) LevelOrder() ([]T, error) {
	return nil, ErrNotSupported
}

// bounded is a node with the range its element has to be in to be found by a search.
type bounded[T any] struct {
	n      *node[T]
	lo, hi *T // nil means unbounded. Both are inclusive.
}

// Corrupt [Tree.Corrupt]
// Nodes are checked level by level against the bounds set by their ancestors:
// anything in a left subtree must be <= the ancestor, anything in a right
// subtree must be >= it. Removing a node with 2 children can lift a value
// above an equal one in its left subtree, so the left bound isn't strict.
// Time: O(n); Space: O(n)
func (u *LinkedBST[T]) Corrupt() bool {
	q := Queues.MakeArrayQueue[bounded[T]](u.sz/2 + 1)
	if u.root != nil {
		q.Push(bounded[T]{n: u.root})
	}
	count := 0
	for !q.Empty() {
		b, _ := q.Pop()
		if (b.lo != nil && b.n.v < *b.lo) || (b.hi != nil && b.n.v > *b.hi) {
			return true
		}
		count++
		if b.n.l != nil {
			q.Push(bounded[T]{b.n.l, b.lo, &b.n.v})
		}
		if b.n.r != nil {
			q.Push(bounded[T]{b.n.r, &b.n.v, b.hi})
		}
	}
	return count != u.sz
}
