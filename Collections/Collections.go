// Package Collections holds the capability set shared by the collections in
// this module and a few helpers written only against that capability set.
package Collections

// Sized is anything that keeps count of its elements.
type Sized interface {
	Size() int
	Empty() bool
}

// Collection of elements that can be added to and visited.
type Collection[E any] interface {
	Sized
	Add(E)
	Has(E) bool
	//Range calls f on each element in the collection's iteration order until f returns false.
	Range(f func(E) bool)
}

// Equal reports whether a and b have the same size and yield equal elements
// pairwise in their own iteration orders.
// Time: O(n); Space: O(n)
func Equal[E comparable](a, b Collection[E]) bool {
	if a.Size() != b.Size() {
		return false
	}
	vs := make([]E, 0, a.Size())
	a.Range(func(v E) bool {
		vs = append(vs, v)
		return true
	})
	i, eq := 0, true
	b.Range(func(v E) bool {
		if i >= len(vs) || vs[i] != v {
			eq = false
		}
		i++
		return eq
	})
	return eq && i == len(vs)
}

// AddAll of src to dst. Returns the number of elements added.
func AddAll[E any](dst, src Collection[E]) int {
	n := 0
	src.Range(func(v E) bool {
		dst.Add(v)
		n++
		return true
	})
	return n
}

// AddSlice adds every element of vs to dst in slice order.
func AddSlice[E any](dst Collection[E], vs ...E) int {
	for _, v := range vs {
		dst.Add(v)
	}
	return len(vs)
}

// Count occurrences of v in c.
func Count[E comparable](c Collection[E], v E) (n int) {
	c.Range(func(e E) bool {
		if e == v {
			n++
		}
		return true
	})
	return
}
