// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package random provides deterministic random test data,
// keys and monster names for splay trees.
package random

import (
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v6"
)

// Key returns a random key in [0, limit).
func Key(prng *rand.Rand, limit int) int {
	return prng.IntN(limit)
}

// Keys returns n random keys in [0, limit), duplicates are likely
// for small limit.
func Keys(prng *rand.Rand, n, limit int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = prng.IntN(limit)
	}
	return keys
}

// DistinctKeys returns n distinct keys in random order.
func DistinctKeys(prng *rand.Rand, n int) []int {
	return prng.Perm(n)
}

// Names returns n random person names, seeded by prng.
func Names(prng *rand.Rand, n int) []string {
	faker := gofakeit.New(prng.Int64())

	names := make([]string, n)
	for i := range names {
		names[i] = faker.Name()
	}
	return names
}

// Health returns a random health value, monsters have up to 9001.
func Health(prng *rand.Rand) uint32 {
	return prng.Uint32N(9002)
}
