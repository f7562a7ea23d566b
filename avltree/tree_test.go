package avltree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func makeIntTree(t *testing.T, keys ...int) *Tree[int] {
	t.Helper()
	tree, err := New(OrderedConfig[int]())
	require.NoError(t, err)
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}

func collectKeys[T any](tree *Tree[T]) []T {
	var out []T
	tree.ForEach(func(key T) bool {
		out = append(out, key)
		return true
	})
	return out
}

func checkTree[T any](t *testing.T, tree *Tree[T]) int {
	t.Helper()
	n, err := tree.Check()
	require.NoError(t, err)
	return n
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestCheckEmptyTree(t *testing.T) {
	tree := makeIntTree(t)
	n := checkTree(t, tree)
	require.Equal(t, 0, n)
	require.True(t, tree.IsEmpty())
	require.Equal(t, 0, tree.Height())
	require.Nil(t, tree.Min())
	require.Nil(t, tree.Max())
	require.Nil(t, tree.Find(1))
	require.Nil(t, tree.LowerBound(1))
}

func TestInsertBuildsBalancedTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordset")
	defer teardown()
	//
	tree := makeIntTree(t, 5, 3, 8, 1, 4, 7, 9)
	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, collectKeys(tree))
	require.Equal(t, 7, checkTree(t, tree))
	require.Equal(t, 3, tree.Height())
	require.Equal(t, 5, tree.Root().Key())
	require.Equal(t, 9, tree.Root().MaxValue())
	require.Nil(t, tree.Root().Parent())
}

func TestInsertAscendingRotates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordset")
	defer teardown()
	//
	tree := makeIntTree(t)
	for i := 1; i <= 1000; i++ {
		require.True(t, tree.Insert(i))
	}
	require.Equal(t, 1000, checkTree(t, tree))
	// an AVL tree of 1000 nodes is at most 1.44*log2(1002) high
	require.LessOrEqual(t, tree.Height(), 14)
	require.Equal(t, 1, tree.Min().Key())
	require.Equal(t, 1000, tree.Max().Key())
}

func TestInsertDoubleRotation(t *testing.T) {
	tree := makeIntTree(t, 10, 30, 20)
	checkTree(t, tree)
	require.Equal(t, 20, tree.Root().Key())
	require.Equal(t, 10, tree.Root().Left().Key())
	require.Equal(t, 30, tree.Root().Right().Key())
	//
	tree = makeIntTree(t, 30, 10, 20)
	checkTree(t, tree)
	require.Equal(t, 20, tree.Root().Key())
}

func TestInsertDuplicateIsNoOp(t *testing.T) {
	tree := makeIntTree(t, 2, 1, 3)
	root := tree.Root()
	require.False(t, tree.Insert(2))
	require.False(t, tree.Insert(3))
	require.Same(t, root, tree.Root())
	require.Equal(t, 3, checkTree(t, tree))
}

type record struct {
	id   int
	name string
}

func TestInsertDuplicateKeepsStoredKey(t *testing.T) {
	tree, err := New(Config[record]{
		Compare: func(a, b record) int { return a.id - b.id },
	})
	require.NoError(t, err)
	tree.Insert(record{id: 1, name: "first"})
	tree.Insert(record{id: 1, name: "second"})
	require.Equal(t, "first", tree.Find(record{id: 1}).Key().name)
}

func TestEraseTwoChildrenPromotesSuccessor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordset")
	defer teardown()
	//
	tree := makeIntTree(t, 5, 3, 8, 1, 4, 7, 9)
	seven := tree.Find(7)
	require.True(t, tree.Erase(5))
	require.Equal(t, []int{1, 3, 4, 7, 8, 9}, collectKeys(tree))
	require.Equal(t, 6, checkTree(t, tree))
	require.Same(t, seven, tree.Root(), "successor node should take the erased node's place")
}

func TestEraseLeaves(t *testing.T) {
	tree := makeIntTree(t, 5, 3, 8, 1, 4, 7, 9)
	require.True(t, tree.Erase(1))
	require.True(t, tree.Erase(9))
	require.Equal(t, []int{3, 4, 5, 7, 8}, collectKeys(tree))
	checkTree(t, tree)
}

func TestEraseAbsentIsNoOp(t *testing.T) {
	tree := makeIntTree(t, 2, 1, 3)
	require.False(t, tree.Erase(42))
	require.Equal(t, 3, checkTree(t, tree))
	empty := makeIntTree(t)
	require.False(t, empty.Erase(1))
}

func TestEraseRootWithLeftChildOnly(t *testing.T) {
	tree := makeIntTree(t, 2, 1)
	require.True(t, tree.Erase(2))
	require.Equal(t, 1, checkTree(t, tree))
	require.Nil(t, tree.Root().Parent(), "promoted left child must not keep a stale parent")
	require.Nil(t, Next(tree.Root()))
}

func TestEraseClearsRemovedNode(t *testing.T) {
	tree := makeIntTree(t, 2, 1, 3)
	one := tree.Find(1)
	require.True(t, tree.Erase(1))
	require.Nil(t, one.Parent())
	require.Equal(t, 0, one.Height())
}

func TestEraseAll(t *testing.T) {
	tree := makeIntTree(t)
	for i := range 200 {
		tree.Insert((i * 37) % 200)
	}
	for i := range 200 {
		require.True(t, tree.Erase((i*91)%200), "erase %d", (i*91)%200)
		require.Equal(t, 199-i, checkTree(t, tree))
	}
	require.True(t, tree.IsEmpty())
}

func TestClear(t *testing.T) {
	tree := makeIntTree(t, 1, 2, 3)
	tree.Clear()
	require.True(t, tree.IsEmpty())
	require.True(t, tree.Insert(1))
	require.Equal(t, 1, checkTree(t, tree))
}

func TestLowerBound(t *testing.T) {
	tree := makeIntTree(t, 5, 3, 8, 1, 4, 7, 9)
	cases := []struct {
		key   int
		want  int
		found bool
	}{
		{key: 0, want: 1, found: true},
		{key: 1, want: 1, found: true},
		{key: 2, want: 3, found: true},
		{key: 6, want: 7, found: true},
		{key: 9, want: 9, found: true},
		{key: 10, found: false},
	}
	for _, c := range cases {
		n := tree.LowerBound(c.key)
		if !c.found {
			require.Nil(t, n, "LowerBound(%d)", c.key)
			continue
		}
		require.NotNil(t, n, "LowerBound(%d)", c.key)
		require.Equal(t, c.want, n.Key(), "LowerBound(%d)", c.key)
	}
}

func TestUpperBound(t *testing.T) {
	tree := makeIntTree(t, 5, 3, 8, 1, 4, 7, 9)
	cases := []struct {
		key   int
		want  int
		found bool
	}{
		{key: 0, want: 1, found: true},
		{key: 1, want: 3, found: true},
		{key: 5, want: 7, found: true},
		{key: 8, want: 9, found: true},
		{key: 9, found: false},
	}
	for _, c := range cases {
		n := tree.UpperBound(c.key)
		if !c.found {
			require.Nil(t, n, "UpperBound(%d)", c.key)
			continue
		}
		require.NotNil(t, n, "UpperBound(%d)", c.key)
		require.Equal(t, c.want, n.Key(), "UpperBound(%d)", c.key)
	}
}

func TestNextPrevWalk(t *testing.T) {
	tree := makeIntTree(t, 5, 3, 8, 1, 4, 7, 9, 2, 6)
	var fwd []int
	for n := tree.Min(); n != nil; n = Next(n) {
		fwd = append(fwd, n.Key())
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, fwd)
	var bwd []int
	for n := tree.Max(); n != nil; n = Prev(n) {
		bwd = append(bwd, n.Key())
	}
	require.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, bwd)
}

func TestForEachStopsEarly(t *testing.T) {
	tree := makeIntTree(t, 1, 2, 3, 4, 5)
	var seen []int
	tree.ForEach(func(k int) bool {
		seen = append(seen, k)
		return k < 3
	})
	require.Equal(t, []int{1, 2, 3}, seen)
}

func TestForEachNodePostOrder(t *testing.T) {
	tree := makeIntTree(t, 2, 1, 3)
	var keys, depths []int
	tree.ForEachNode(func(n *Node[int], depth int) bool {
		keys = append(keys, n.Key())
		depths = append(depths, depth)
		return true
	})
	require.Equal(t, []int{1, 3, 2}, keys)
	require.Equal(t, []int{1, 1, 0}, depths)
}

// lots of duplicates must neither add nodes nor disturb the balance
func TestInsertStringListWithDuplicates(t *testing.T) {
	tree, err := New(OrderedConfig[string]())
	require.NoError(t, err)
	list := []string{
		"1720", "0506", "8382", "6774", "1247", "1250", "1264", "1258",
		"1255", "2247", "1720", "0506", "8382", "1042", "1042", "1042",
		"1042", "1042", "6774", "1247",
	}
	added := 0
	for _, s := range list {
		if tree.Insert(s) {
			added++
		}
	}
	require.Equal(t, 11, added)
	require.Equal(t, 11, checkTree(t, tree))
	keys := collectKeys(tree)
	require.Equal(t, "0506", keys[0])
	require.Equal(t, "8382", keys[len(keys)-1])
}
