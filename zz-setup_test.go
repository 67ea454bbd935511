// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

import (
	"cmp"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/gaissmai/splay/arena"
)

// workLoadN to adjust loops for tests with -short
func workLoadN() int {
	if testing.Short() {
		return 100
	}
	return 1_000
}

// this file contains helpers for other test functions

// item is the simple element, one tree by key.
type item struct {
	Key  int `json:"key"`
	node Node[item]
}

func (e *item) String() string {
	return strconv.Itoa(e.Key)
}

type byKey struct{}

func (byKey) Node(e *item) *Node[item]      { return &e.node }
func (byKey) Compare(a, b *item) int        { return cmp.Compare(a.Key, b.Key) }
func (byKey) CompareKey(k int, e *item) int { return cmp.Compare(k, e.Key) }

type itemTree = Tree[byKey, item]

// monster is the element with two orderings.
type monster struct {
	name     string
	health   uint32
	byName   Node[monster]
	byHealth Node[monster]
}

func (m *monster) String() string {
	return m.name
}

type byName struct{}

func (byName) Node(m *monster) *Node[monster]      { return &m.byName }
func (byName) Compare(a, b *monster) int           { return strings.Compare(a.name, b.name) }
func (byName) CompareKey(k string, m *monster) int { return strings.Compare(k, m.name) }

type byHealth struct{}

func (byHealth) Node(m *monster) *Node[monster]      { return &m.byHealth }
func (byHealth) Compare(a, b *monster) int           { return cmp.Compare(a.health, b.health) }
func (byHealth) CompareKey(k uint32, m *monster) int { return cmp.Compare(k, m.health) }

// newMonster allocates the monster from the cohort region.
func newMonster(r *arena.Region[monster], name string, health uint32) *monster {
	return r.New(func(m *monster) {
		m.name = name
		m.health = health
	})
}

// statefulTag is a broken tag, tags must be zero-sized.
type statefulTag struct{ n int }

func (statefulTag) Node(e *item) *Node[item] { return &e.node }
func (statefulTag) Compare(a, b *item) int   { return cmp.Compare(a.Key, b.Key) }

// newItems allocates items with keys from one region.
func newItems(keys ...int) []*item {
	r := arena.New[item](arena.WithChunkSize(len(keys) + 1))

	items := make([]*item, len(keys))
	for i, k := range keys {
		items[i] = r.Alloc()
		items[i].Key = k
	}
	return items
}

// buildTree inserts all items with keys into a new tree.
func buildTree(keys ...int) (*itemTree, []*item) {
	tree := new(itemTree)
	items := newItems(keys...)
	for _, e := range items {
		tree.Insert(e)
	}
	return tree, items
}

// keysOf collects the keys in iteration order.
func keysOf(tree *itemTree) []int {
	var keys []int
	for e := range tree.All {
		keys = append(keys, e.Key)
	}
	return keys
}

// shuffled returns a shuffled copy.
func shuffled[S ~[]E, E any](prng *rand.Rand, s S) S {
	c := append(S(nil), s...)
	prng.Shuffle(len(c), func(i, j int) { c[i], c[j] = c[j], c[i] })
	return c
}

// checkInvariants validates the shape: no cycles, the elements are
// sorted in-order and the size matches the reachable elements.
func checkInvariants[T Tag[E], E any](t *testing.T, tree *Tree[T, E]) {
	t.Helper()

	var tag T
	seen := map[*E]bool{}

	var walk func(e *E) int
	walk = func(e *E) int {
		if e == nil {
			return 0
		}
		if seen[e] {
			t.Fatalf("cycle detected at element %v", e)
		}
		seen[e] = true

		n := tag.Node(e)
		if n.left != nil && tag.Compare(n.left, e) > 0 {
			t.Fatalf("left child %v sorts after parent %v", n.left, e)
		}
		if n.right != nil && tag.Compare(n.right, e) < 0 {
			t.Fatalf("right child %v sorts before parent %v", n.right, e)
		}
		return walk(n.left) + 1 + walk(n.right)
	}

	if reachable := walk(tree.root); reachable != tree.Len() {
		t.Fatalf("Len() = %d, reachable elements = %d", tree.Len(), reachable)
	}

	var prev *E
	count := 0
	for e := range tree.All {
		if prev != nil && tag.Compare(prev, e) > 0 {
			t.Fatalf("All() not sorted: %v before %v", prev, e)
		}
		prev = e
		count++
	}

	if count != tree.Len() {
		t.Fatalf("All() yields %d elements, Len() = %d", count, tree.Len())
	}
	if tree.IsEmpty() != (tree.Len() == 0) {
		t.Fatalf("IsEmpty() = %v, Len() = %d", tree.IsEmpty(), tree.Len())
	}
}
