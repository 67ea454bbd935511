// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden provides a simple and slow ordered multiset,
// implemented as a slice of keys, as a golden reference for splay.
package golden

import (
	"cmp"
	"fmt"
	"slices"
)

// GoldTree is a multiset of keys, kept in insertion order.
type GoldTree[K cmp.Ordered] []K

func (t GoldTree[K]) String() string {
	return fmt.Sprint(t.AllSorted())
}

// Insert appends k, duplicates are allowed.
func (t *GoldTree[K]) Insert(k K) {
	*t = append(*t, k)
}

// InsertUnique appends k if not already present.
func (t *GoldTree[K]) InsertUnique(k K) bool {
	if t.Contains(k) {
		return false
	}
	*t = append(*t, k)
	return true
}

// Delete removes one k, k does not have to be present.
func (t *GoldTree[K]) Delete(k K) (exists bool) {
	for i, item := range *t {
		if item == k {
			*t = slices.Delete(*t, i, i+1)
			return true
		}
	}
	return false
}

func (t GoldTree[K]) Contains(k K) bool {
	return slices.Contains(t, k)
}

// Count returns the number of keys equal to k.
func (t GoldTree[K]) Count(k K) int {
	n := 0
	for _, item := range t {
		if item == k {
			n++
		}
	}
	return n
}

func (t GoldTree[K]) Len() int {
	return len(t)
}

func (t GoldTree[K]) Min() (k K, ok bool) {
	if len(t) == 0 {
		return k, false
	}
	return slices.Min(t), true
}

func (t GoldTree[K]) Max() (k K, ok bool) {
	if len(t) == 0 {
		return k, false
	}
	return slices.Max(t), true
}

// PopMin removes and returns the minimum.
func (t *GoldTree[K]) PopMin() (k K, ok bool) {
	if k, ok = t.Min(); ok {
		t.Delete(k)
	}
	return k, ok
}

// PopMax removes and returns the maximum.
func (t *GoldTree[K]) PopMax() (k K, ok bool) {
	if k, ok = t.Max(); ok {
		t.Delete(k)
	}
	return k, ok
}

// AllSorted returns a sorted copy of all keys.
func (t GoldTree[K]) AllSorted() []K {
	result := slices.Clone(t)
	slices.Sort(result)
	return result
}
