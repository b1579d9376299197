package Trees

import "github.com/g-m-twostay/linkedbst/Collections"

// Tree represents an ordered collection implemented using linked nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and shouldn't be used.
// Duplicates are allowed; an element equal to a stored one is placed to its right.
// Methods implemented recursively are noted, otherwise they are implemented iteratively.
// A Tree isn't safe for concurrent use.
type Tree[T any] interface {
	Collections.Collection[T]
	//Find the first element equal to v on the search path from the root.
	Find(v T) (T, bool)
	//Remove an element equal to v. Removing from an empty tree is a no-op that
	//returns (x, false, nil). Removing an absent v returns a *KeyError.
	Remove(v T) (T, bool, error)
	//Replace the first element equal to v with nv in place and return the
	//old element. The ordering isn't checked, so nv must fit where v was.
	Replace(v, nv T) (T, bool)
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor is the greatest element of the left subtree of the node holding v.
	Predecessor(v T) (T, bool)
	//Successor is the smallest element of the right subtree of the node holding v.
	Successor(v T) (T, bool)
	//RangeFind returns all elements in [lo, hi] in ascending order.
	RangeFind(lo, hi T) []T
	//Height of the tree. An empty tree has height -1.
	Height() int
	//IsBalanced is an advisory check of the height against the size.
	IsBalanced() bool
	//Rebalance rebuilds the tree into a minimal height shape.
	Rebalance()
	//Clear the tree.
	Clear()
	//Iter returns a closure f acting like an iterator that gives the elements
	//in pre-order. Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree shouldn't be modified during the iteration of f.
	Iter() func() (T, bool)
	//PreOrder returns all elements in pre-order.
	PreOrder() []T
	//InOrder returns all elements in ascending order.
	InOrder() []T
	//PostOrder isn't supported and returns ErrNotSupported.
	PostOrder() ([]T, error)
	//LevelOrder isn't supported and returns ErrNotSupported.
	LevelOrder() ([]T, error)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node can't be reached by a search or the size is wrong.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}
