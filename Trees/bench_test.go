package Trees

import (
	"slices"
	"testing"
)

const (
	bAddN = 1 << 14
	bQryN = bAddN
)

var sideEff bool

func create(b *testing.B, sorted bool) *LinkedBST[int] {
	b.Helper()
	all := rg.Perm(bAddN)
	if sorted {
		slices.Sort(all)
	}
	return From(all...)
}

func BenchmarkAdd(b *testing.B) {
	all := rg.Perm(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := New[int]()
		for _, v := range all {
			tree.Add(v)
		}
	}
}

func BenchmarkRemove(b *testing.B) {
	all := rg.Perm(bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := create(b, false)
		b.StartTimer()
		for _, v := range all {
			tree.Remove(v)
		}
	}
}

func benchmarkHas(b *testing.B, tree *LinkedBST[int]) {
	b.Helper()
	b.Logf("depth: %f, height: %d", tree.depth(), tree.Height())
	b.ResetTimer()
	for range b.N {
		for range bQryN {
			sideEff = tree.Has(rg.Intn(bAddN))
		}
	}
}

func BenchmarkHas_Random(b *testing.B) {
	benchmarkHas(b, create(b, false))
}

func BenchmarkHas_Sorted(b *testing.B) {
	benchmarkHas(b, create(b, true))
}

func BenchmarkHas_Rebalanced(b *testing.B) {
	tree := create(b, true)
	tree.Rebalance()
	benchmarkHas(b, tree)
}

func BenchmarkRebalance(b *testing.B) {
	for range b.N {
		b.StopTimer()
		tree := create(b, false)
		b.StartTimer()
		tree.Rebalance()
	}
}

func BenchmarkIter(b *testing.B) {
	tree := create(b, false)
	b.ResetTimer()
	for range b.N {
		for next := tree.Iter(); ; {
			if _, ok := next(); !ok {
				break
			}
		}
	}
}
