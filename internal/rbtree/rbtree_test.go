package rbtree_test

import (
	"math/rand"
	"testing"

	"github.com/wengh/dynamic-connectivity/internal/rbtree"
)

// countAug folds the in-order sequence length into every node so tests
// can assert on subtree size without a separate accounting structure.
type countAug struct {
	val  int
	size int
}

func (c *countAug) Augment(left, right rbtree.Augmenter) bool {
	size := 1
	if left != nil {
		size += left.(*countAug).size
	}
	if right != nil {
		size += right.(*countAug).size
	}
	if size == c.size {
		return false
	}
	c.size = size
	return true
}

func inorder(n *rbtree.Node, out *[]int) {
	if n == nil {
		return
	}
	inorder(n.Left, out)
	*out = append(*out, n.Aug.(*countAug).val)
	inorder(n.Right, out)
}

func newNode(v int) *rbtree.Node {
	return rbtree.New(&countAug{val: v})
}

func TestInsertAfterPreservesOrder(t *testing.T) {
	var root *rbtree.Node
	var nodes []*rbtree.Node
	for i := 0; i < 200; i++ {
		n := newNode(i)
		root = rbtree.InsertAfter(root, lastOrNil(nodes), n)
		nodes = append(nodes, n)
		if err := rbtree.Validate(root); err != nil {
			t.Fatalf("after inserting %d: %v", i, err)
		}
	}

	var got []int
	inorder(root, &got)
	for i, v := range got {
		if v != i {
			t.Fatalf("order[%d] = %d; want %d", i, v, i)
		}
	}
}

func lastOrNil(nodes []*rbtree.Node) *rbtree.Node {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[len(nodes)-1]
}

func TestInsertBeforePreservesOrder(t *testing.T) {
	var root *rbtree.Node
	var first *rbtree.Node
	for i := 199; i >= 0; i-- {
		n := newNode(i)
		root = rbtree.InsertBefore(root, first, n)
		first = n
		if err := rbtree.Validate(root); err != nil {
			t.Fatalf("after inserting %d: %v", i, err)
		}
	}

	var got []int
	inorder(root, &got)
	for i, v := range got {
		if v != i {
			t.Fatalf("order[%d] = %d; want %d", i, v, i)
		}
	}
}

func TestRemoveRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var root *rbtree.Node
	var nodes []*rbtree.Node
	for i := 0; i < 300; i++ {
		n := newNode(i)
		root = rbtree.InsertAfter(root, lastOrNil(nodes), n)
		nodes = append(nodes, n)
	}
	if err := rbtree.Validate(root); err != nil {
		t.Fatalf("initial build: %v", err)
	}

	want := map[int]bool{}
	for _, n := range nodes {
		want[n.Aug.(*countAug).val] = true
	}

	rng.Shuffle(len(nodes), func(i, j int) { nodes[i], nodes[j] = nodes[j], nodes[i] })
	for _, n := range nodes[:150] {
		root = rbtree.Remove(root, n)
		delete(want, n.Aug.(*countAug).val)
		if err := rbtree.Validate(root); err != nil {
			t.Fatalf("after removing %d: %v", n.Aug.(*countAug).val, err)
		}
	}

	var got []int
	inorder(root, &got)
	if len(got) != len(want) {
		t.Fatalf("len(got) = %d; want %d", len(got), len(want))
	}
	for _, v := range got {
		if !want[v] {
			t.Fatalf("unexpected survivor %d", v)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("order violated at %d: %d >= %d", i, got[i-1], got[i])
		}
	}
}

func TestConcatAndSplitRoundTrip(t *testing.T) {
	left := buildChain(0, 50)
	right := buildChain(50, 100)
	pivot := newNode(-1)

	joined := rbtree.Concat(left, pivot, right)
	if err := rbtree.Validate(joined); err != nil {
		t.Fatalf("Concat: %v", err)
	}
	var got []int
	inorder(joined, &got)
	want := make([]int, 0, 101)
	for i := 0; i < 50; i++ {
		want = append(want, i)
	}
	want = append(want, -1)
	for i := 50; i < 100; i++ {
		want = append(want, i)
	}
	assertIntSlicesEqual(t, got, want)

	less, geq := rbtree.Split(joined, pivot)
	if err := rbtree.Validate(less); err != nil {
		t.Fatalf("Split less: %v", err)
	}
	if err := rbtree.Validate(geq); err != nil {
		t.Fatalf("Split geq: %v", err)
	}
	var gotLess, gotGeq []int
	inorder(less, &gotLess)
	inorder(geq, &gotGeq)

	lessWant := make([]int, 0, 50)
	for i := 0; i < 50; i++ {
		lessWant = append(lessWant, i)
	}
	geqWant := append([]int{-1}, want[51:]...)
	assertIntSlicesEqual(t, gotLess, lessWant)
	assertIntSlicesEqual(t, gotGeq, geqWant)
}

func TestConcatWithEmptySides(t *testing.T) {
	pivot := newNode(1)
	joined := rbtree.Concat(nil, pivot, nil)
	if err := rbtree.Validate(joined); err != nil {
		t.Fatalf("Concat(nil,p,nil): %v", err)
	}
	var got []int
	inorder(joined, &got)
	assertIntSlicesEqual(t, got, []int{1})

	right := buildChain(2, 5)
	joined2 := rbtree.Concat(nil, newNode(1), right)
	if err := rbtree.Validate(joined2); err != nil {
		t.Fatalf("Concat(nil,p,right): %v", err)
	}
	var got2 []int
	inorder(joined2, &got2)
	assertIntSlicesEqual(t, got2, []int{1, 2, 3, 4})
}

func buildChain(lo, hi int) *rbtree.Node {
	var root *rbtree.Node
	var last *rbtree.Node
	for i := lo; i < hi; i++ {
		n := newNode(i)
		root = rbtree.InsertAfter(root, last, n)
		last = n
	}
	return root
}

func assertIntSlicesEqual(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d; want %d (got %v, want %v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("[%d] = %d; want %d (got %v, want %v)", i, got[i], want[i], got, want)
		}
	}
}

func TestCompareToAndLCA(t *testing.T) {
	root := buildChain(0, 30)
	var seq []*rbtree.Node
	n := rbtree.Min(root)
	for n != nil {
		seq = append(seq, n)
		n = rbtree.Next(n)
	}
	for i := range seq {
		for j := range seq {
			got := rbtree.CompareTo(seq[i], seq[j])
			switch {
			case i < j && got >= 0:
				t.Fatalf("CompareTo(%d,%d) = %d; want negative", i, j, got)
			case i > j && got <= 0:
				t.Fatalf("CompareTo(%d,%d) = %d; want positive", i, j, got)
			case i == j && got != 0:
				t.Fatalf("CompareTo(%d,%d) = %d; want 0", i, j, got)
			}
		}
	}

	mid := len(seq) / 2
	if got := rbtree.LCA(seq[mid], seq[mid]); got != seq[mid] {
		t.Fatalf("LCA(x,x) = %p; want %p", got, seq[mid])
	}
	lca := rbtree.LCA(seq[0], seq[len(seq)-1])
	if rbtree.CompareTo(lca, seq[0]) < 0 || rbtree.CompareTo(lca, seq[len(seq)-1]) > 0 {
		t.Fatalf("LCA(%d,%d) fell outside the span", 0, len(seq)-1)
	}
}
