// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package splay provides intrusive splay trees: ordered, associative
// lookup over caller-owned elements without allocation and without
// moving elements.
//
// The link metadata lives inside the elements. An element embeds one
// [Node] per ordering it participates in, and a zero-sized tag type
// tells a [Tree] which Node to use and how to compare elements:
//
//	type Monster struct {
//	    Name     string
//	    Health   uint32
//	    byName   splay.Node[Monster]
//	    byHealth splay.Node[Monster]
//	}
//
//	type ByName struct{}
//
//	func (ByName) Node(m *Monster) *splay.Node[Monster] { return &m.byName }
//	func (ByName) Compare(a, b *Monster) int            { return strings.Compare(a.Name, b.Name) }
//	func (ByName) CompareKey(k string, m *Monster) int  { return strings.Compare(k, m.Name) }
//
// The same elements can then be linked into a Tree[ByName, Monster] and
// a Tree[ByHealth, Monster] at the same time.
//
// The trees use the top-down splay of Sleator and Tarjan: every access
// moves the accessed element to the root, giving amortized O(log n)
// operations and O(1) for repeated access. The top-down variant needs no
// parent links, a Node is just two pointers.
//
// One generic implementation serves all tag and element types, tags are
// zero-sized and all elements are pointers, so every Tree shares the same
// GC shape.
//
// The tree borrows the elements. The caller must keep them alive and
// unmoved while linked and all elements of one tree should share one
// lifetime; the arena package provides regions for such cohorts.
//
// Trees are not safe for concurrent use. Note that Find mutates the tree.
package splay
