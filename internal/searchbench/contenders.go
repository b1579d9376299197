package searchbench

import (
	"fmt"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/linkedbst/Trees"
)

// contender is a structure searched by the benchmark. build isn't timed.
type contender struct {
	name  string
	words func(*Plan) []string
	build func(words []string) (has func(string) bool, extra string)
}

func sortedWords(p *Plan) []string { return p.Sorted }
func randomWords(p *Plan) []string { return p.Random }

func treeShape(t *Trees.LinkedBST[string]) string {
	return fmt.Sprintf("height=%d balanced=%v", t.Height(), t.IsBalanced())
}

// word adapts string to llrb.Item.
type word string

func (w word) Less(than llrb.Item) bool {
	return w < than.(word)
}

const btreeDegree = 16

var contenders = []contender{
	{"list, file order", sortedWords, func(ws []string) (func(string) bool, string) {
		l := arraylist.New()
		for _, w := range ws {
			l.Add(w)
		}
		return func(w string) bool { return l.Contains(w) }, ""
	}},
	{"tree, file order", sortedWords, func(ws []string) (func(string) bool, string) {
		t := Trees.From(ws...)
		return t.Has, treeShape(t)
	}},
	{"tree, random order", randomWords, func(ws []string) (func(string) bool, string) {
		t := Trees.From(ws...)
		return t.Has, treeShape(t)
	}},
	{"tree, file order rebalanced", sortedWords, func(ws []string) (func(string) bool, string) {
		t := Trees.From(ws...)
		t.Rebalance()
		return t.Has, treeShape(t)
	}},
	{"gods red-black tree", sortedWords, func(ws []string) (func(string) bool, string) {
		t := redblacktree.NewWithStringComparator()
		for _, w := range ws {
			t.Put(w, struct{}{})
		}
		return func(w string) bool {
			_, ok := t.Get(w)
			return ok
		}, ""
	}},
	{"google btree", sortedWords, func(ws []string) (func(string) bool, string) {
		t := btree.NewOrderedG[string](btreeDegree)
		for _, w := range ws {
			t.ReplaceOrInsert(w)
		}
		return t.Has, fmt.Sprintf("degree=%d", btreeDegree)
	}},
	{"llrb", sortedWords, func(ws []string) (func(string) bool, string) {
		t := llrb.New()
		for _, w := range ws {
			t.ReplaceOrInsert(word(w))
		}
		return func(w string) bool { return t.Has(word(w)) }, ""
	}},
	{"haxmap", sortedWords, func(ws []string) (func(string) bool, string) {
		m := haxmap.New[string, struct{}]()
		for _, w := range ws {
			m.Set(w, struct{}{})
		}
		return func(w string) bool {
			_, ok := m.Get(w)
			return ok
		}, ""
	}},
	{"cornelk hashmap", sortedWords, func(ws []string) (func(string) bool, string) {
		m := hashmap.New[string, struct{}]()
		for _, w := range ws {
			m.Set(w, struct{}{})
		}
		return func(w string) bool {
			_, ok := m.Get(w)
			return ok
		}, ""
	}},
}
