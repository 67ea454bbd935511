// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package arena provides regions of elements with one common lifetime.
//
// A [Region] hands out zeroed elements from chunks of fixed capacity.
// A chunk is never grown or copied, so an element keeps its address for
// the whole life of the region. That is exactly what intrusive
// containers need: the elements linked into a splay.Tree must not move
// and should be released together, not one by one.
//
//	r := arena.New[Monster](arena.WithChunkSize(1024))
//	m := r.Alloc()
//	m.Name = "Godzilla"
//	byName.Insert(m)
//
// There is no individual deallocation, [Region.Reset] ends the whole
// cohort at once. Trees holding elements of a reset region must be
// discarded or cleared before, this is not checked.
//
// A Region is not safe for concurrent use.
package arena
