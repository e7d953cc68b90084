// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package cuckoomap

import "golang.org/x/exp/rand"

// maxLoop bounds both the number of displacements tried by a single
// insertion and the number of hash function pairs tried at a fixed
// table length before growing.
const maxLoop = 8

// entry is a key/elem pair together with the scalar hash of its key,
// so that entries can be moved between tables without rehashing keys.
type entry[K, E any] struct {
	hash uint64
	key  K
	elem E
}

// tables is one generation of the Map's storage: the two slot tables
// and the pair of functions indexing them.
type tables[K, E any] struct {
	t1, t2 table[K, E]
	h1, h2 HashFunc
}

func (t *tables[K, E]) find(hash uint64, key K, equal func(a, b K) bool) *slot[K, E] {
	if s := &t.t1[t.h1(hash)]; s.used && s.hash == hash && equal(s.key, key) {
		return s
	}
	if s := &t.t2[t.h2(hash)]; s.used && s.hash == hash && equal(s.key, key) {
		return s
	}
	return nil
}

// tryPlace makes one bounded attempt at storing e. If a slot already
// holds e's key, its elem is overwritten. Otherwise e goes into the
// first free slot of T1 then T2, or evicts one of the two occupants,
// chosen at random, and the evicted entry becomes the candidate. After
// maxLoop candidates tryPlace gives up and returns the entry left
// without a slot along with errEvictionCycle. Every other entry is
// stored in the tables, so the caller must find a home for the
// orphan. tryPlace never grows or regenerates t.
func (t *tables[K, E]) tryPlace(e entry[K, E], equal func(a, b K) bool,
	r *rand.Rand) (entry[K, E], error) {
	for loop := 0; loop < maxLoop; loop++ {
		s1 := &t.t1[t.h1(e.hash)]
		s2 := &t.t2[t.h2(e.hash)]

		// update in place
		if s1.used && s1.hash == e.hash && equal(s1.key, e.key) {
			s1.entry = e
			return entry[K, E]{}, nil
		}
		if s2.used && s2.hash == e.hash && equal(s2.key, e.key) {
			s2.entry = e
			return entry[K, E]{}, nil
		}

		// Prefer T1 so that positive lookups mostly stop at the first
		// probe.
		if !s1.used {
			*s1 = slot[K, E]{entry: e, used: true}
			return entry[K, E]{}, nil
		}
		if !s2.used {
			*s2 = slot[K, E]{entry: e, used: true}
			return entry[K, E]{}, nil
		}

		if r.Uint64()&1 == 0 {
			e, s1.entry = s1.entry, e
		} else {
			e, s2.entry = s2.entry, e
		}
	}
	return e, errEvictionCycle
}
