// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"cmp"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/gaissmai/splay"
	"github.com/gaissmai/splay/arena"
)

type monster struct {
	name     string
	health   uint32
	byName   splay.Node[monster]
	byHealth splay.Node[monster]
}

func (m *monster) String() string {
	return m.name
}

type byName struct{}

func (byName) Node(m *monster) *splay.Node[monster] { return &m.byName }
func (byName) Compare(a, b *monster) int            { return strings.Compare(a.name, b.name) }
func (byName) CompareKey(k string, m *monster) int  { return strings.Compare(k, m.name) }

type byHealth struct{}

func (byHealth) Node(m *monster) *splay.Node[monster] { return &m.byHealth }
func (byHealth) Compare(a, b *monster) int            { return cmp.Compare(a.health, b.health) }
func (byHealth) CompareKey(k uint32, m *monster) int  { return cmp.Compare(k, m.health) }

// horde is one cohort: the monsters share the region and both trees.
type horde struct {
	prng    *rand.Rand
	faker   *gofakeit.Faker
	region  *arena.Region[monster]
	names   splay.Tree[byName, monster]
	healths splay.Tree[byHealth, monster]

	// probes for the lookups, some of them misses
	nameProbes   []string
	healthProbes []uint32
}

func newHorde(seed uint64, chunk int) *horde {
	return &horde{
		prng:   rand.New(rand.NewPCG(seed, seed>>1)),
		faker:  gofakeit.New(int64(seed)),
		region: arena.New[monster](arena.WithChunkSize(chunk)),
	}
}

// spawn allocates n monsters and links them into both trees.
func (h *horde) spawn(n int) {
	for range n {
		name := h.faker.Name()
		health := h.prng.Uint32N(9002)

		m := h.region.New(func(m *monster) {
			m.name = name
			m.health = health
		})

		h.names.Insert(m)
		h.healths.Insert(m)

		// every 16th monster is a probe, every probe
		// gets an unknown twin
		if h.prng.IntN(16) == 0 {
			h.nameProbes = append(h.nameProbes, name, h.faker.Name()+" Jr.")
			h.healthProbes = append(h.healthProbes, health, 9002+health)
		}
	}

	if len(h.nameProbes) == 0 {
		h.nameProbes = []string{"Gill-Man"}
		h.healthProbes = []uint32{9001}
	}
}

// hunt runs n lookups per tree, skewed to a few hot probes.
func (h *horde) hunt(n int) (hits, misses int) {
	hot := min(8, len(h.nameProbes))

	for i := range n {
		j := h.prng.IntN(len(h.nameProbes))
		if i%4 != 0 {
			j %= hot
		}

		if m, ok := splay.FindKey(&h.names, h.nameProbes[j]); ok {
			hits++
			slog.Debug("found by name", "name", m.name, "health", m.health)
		} else {
			misses++
		}

		if m, ok := splay.FindKey(&h.healths, h.healthProbes[j]); ok {
			hits++
			slog.Debug("found by health", "health", m.health, "name", m.name)
		} else {
			misses++
		}
	}
	return hits, misses
}

// strongest returns the monster with the most health.
func (h *horde) strongest() (*monster, bool) {
	return h.healths.Max()
}

// disband unlinks all monsters and releases the cohort, the trees
// go before the region.
func (h *horde) disband() {
	h.names.Clear()
	h.healths.Clear()
	h.region.Reset()
}
