package Trees

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/g-m-twostay/linkedbst/Collections"
	"golang.org/x/exp/constraints"
)

// LinkedBST is a binary search tree made of linked nodes. It never balances
// itself: the shape is decided by the order of insertion and removal until
// Rebalance is called explicitly.
// Elements in the left subtree of a node are less than the node's element,
// elements in the right subtree are greater or equal. Duplicates are allowed.
// D below denotes the height of the tree, which is n-1 in the worst case.
// The zero value is an empty tree ready to use.
type LinkedBST[T constraints.Ordered] struct {
	root *node[T]
	sz   int
}

// New returns an empty LinkedBST.
func New[T constraints.Ordered]() *LinkedBST[T] {
	return &LinkedBST[T]{}
}

// From builds a LinkedBST by adding the given values in order. The shape of
// the result is the same as adding them one by one.
func From[T constraints.Ordered](vs ...T) *LinkedBST[T] {
	u := New[T]()
	Collections.AddSlice[T](u, vs...)
	return u
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *LinkedBST[T]) Size() int {
	return u.sz
}

func (u *LinkedBST[T]) Empty() bool {
	return u.sz == 0
}

// find the first node equal to v in the subtree rooting at cur recursively.
func (u *LinkedBST[T]) find(cur *node[T], v T) *node[T] {
	if cur == nil {
		return nil
	} else if v == cur.v {
		return cur
	} else if v < cur.v {
		return u.find(cur.l, v)
	} else {
		return u.find(cur.r, v)
	}
}

// Find [Tree.Find]. Recursive.
// Time: O(D)
func (u *LinkedBST[T]) Find(v T) (T, bool) {
	if n := u.find(u.root, v); n != nil {
		return n.v, true
	}
	return *new(T), false
}

// Has [Tree.Has]. Recursive.
// Time: O(D)
func (u *LinkedBST[T]) Has(v T) bool {
	return u.find(u.root, v) != nil
}

// Add v to the tree. v goes left of every node it's less than and right of
// every node it's greater or equal to on its way down.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Add(v T) {
	link := &u.root
	for *link != nil {
		if v < (*link).v {
			link = &(*link).l
		} else {
			link = &(*link).r
		}
	}
	*link = &node[T]{v: v}
	u.sz++
}

// Remove [Tree.Remove].
// A node with 2 children takes the element of the rightmost node in its left
// subtree, and that node is spliced out instead. Otherwise, the link to the
// node is replaced by its only child or nil.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Remove(v T) (T, bool, error) {
	if u.root == nil {
		return *new(T), false, nil
	}
	link := &u.root // the link that owns cur
	for *link != nil && (*link).v != v {
		if v < (*link).v {
			link = &(*link).l
		} else {
			link = &(*link).r
		}
	}
	cur := *link
	if cur == nil {
		return *new(T), false, &KeyError[T]{v}
	}
	old := cur.v
	if cur.l != nil && cur.r != nil {
		m := &cur.l
		for (*m).r != nil {
			m = &(*m).r
		}
		cur.v = (*m).v
		*m = (*m).l
	} else if cur.l == nil {
		*link = cur.r
	} else {
		*link = cur.l
	}
	u.sz--
	return old, true, nil
}

// Replace [Tree.Replace].
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Replace(v, nv T) (T, bool) {
	for cur := u.root; cur != nil; {
		if cur.v == v {
			old := cur.v
			cur.v = nv
			return old, true
		} else if cur.v > v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return *new(T), false
}

// Clear the tree without visiting the nodes.
// Time: O(1); Space: O(1)
func (u *LinkedBST[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.leftmost().v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.rightmost().v, true
}

// Successor [Tree.Successor]. Recursive search.
// If v isn't in the tree, the minimum of the tree is returned instead. If the
// node holding v has no right child, there's no successor even when a greater
// element exists above it.
// Time: O(D)
func (u *LinkedBST[T]) Successor(v T) (T, bool) {
	n := u.find(u.root, v)
	if n == nil {
		return u.Minimum()
	} else if n.r == nil {
		return *new(T), false
	}
	return n.r.leftmost().v, true
}

// Predecessor [Tree.Predecessor]. Recursive search.
// If v isn't in the tree or the node holding it has no left child, there's no predecessor.
// Time: O(D)
func (u *LinkedBST[T]) Predecessor(v T) (T, bool) {
	n := u.find(u.root, v)
	if n == nil || n.l == nil {
		return *new(T), false
	}
	return n.l.rightmost().v, true
}

// Height [Tree.Height]. Recursive.
// Time: O(n)
func (u *LinkedBST[T]) Height() int {
	return u.root.height()
}

// IsBalanced reports whether Height() < 2*log2(Size()+1)-1. It's a loose bound
// meant to tell whether calling Rebalance is worth it; nothing enforces it.
// An empty tree is never balanced under this bound.
// Time: O(n)
func (u *LinkedBST[T]) IsBalanced() bool {
	return float64(u.Height()) < 2*math.Log2(float64(u.sz+1))-1
}

// RangeFind [Tree.RangeFind].
// Every node is visited; the ordering isn't used to skip subtrees.
// Time: O(n log n); Space: O(n)
func (u *LinkedBST[T]) RangeFind(lo, hi T) []T {
	var vs []T
	u.Range(func(v T) bool {
		if lo <= v && v <= hi {
			vs = append(vs, v)
		}
		return true
	})
	slices.Sort(vs)
	return vs
}

// Clone returns a tree with the same shape and elements.
// Time: O(n)
func (u *LinkedBST[T]) Clone() *LinkedBST[T] {
	return &LinkedBST[T]{u.root.clone(), u.sz}
}

// Concat returns a clone of u with every element of c added in c's iteration order.
func (u *LinkedBST[T]) Concat(c Collections.Collection[T]) *LinkedBST[T] {
	r := u.Clone()
	Collections.AddAll[T](r, c)
	return r
}

// String draws the tree rotated 90 degrees counterclockwise: the root is on
// the left, right subtrees are above and each level is indented by "| ".
func (u *LinkedBST[T]) String() string {
	var sb strings.Builder
	var draw func(*node[T], int)
	draw = func(n *node[T], level int) {
		if n != nil {
			draw(n.r, level+1)
			sb.WriteString(strings.Repeat("| ", level))
			fmt.Fprintln(&sb, n.v)
			draw(n.l, level+1)
		}
	}
	draw(u.root, 0)
	return sb.String()
}
