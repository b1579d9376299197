package Trees

import "github.com/g-m-twostay/linkedbst/Queues"

// Rebalance [Tree.Rebalance]
// The elements are taken out in order, the tree is cleared, and then the
// median of the sorted elements is added first, followed by the medians of
// the lower and upper halves, and so on. The result has minimal height when
// the elements are distinct.
// Time: O(n log n); Space: O(n)
func (u *LinkedBST[T]) Rebalance() {
	vs := u.InOrder()
	u.Clear()
	u.addMedians(vs)
}

// midIndex of a sorted run of length n: the middle for odd n, the lower middle for even n.
func midIndex(n int) int {
	if n&1 == 0 {
		return n/2 - 1
	}
	return n / 2
}

// addMedians of vs in the same order as adding the median then recursing
// into vs[:mid] and vs[mid+1:]. The pending ranges are kept on a stack as
// [left, right) so that long inputs don't grow the call stack.
func (u *LinkedBST[T]) addMedians(vs []T) {
	st := Queues.MakeArrayStack[[2]int]()
	st.Push([2]int{0, len(vs)})
	for !st.Empty() {
		top, _ := st.Pop()
		if top[0] >= top[1] {
			continue
		}
		mid := top[0] + midIndex(top[1]-top[0])
		u.Add(vs[mid])
		st.Push([2]int{mid + 1, top[1]})
		st.Push([2]int{top[0], mid})
	}
}
