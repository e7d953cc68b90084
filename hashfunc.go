// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package cuckoomap

import (
	"math/bits"

	"golang.org/x/exp/rand"
)

// HashFunc maps the 64-bit hash of a key to a slot index in [0, n),
// where n is the table length the HashFunc was generated for.
type HashFunc func(hash uint64) int

// HashFamily generates pairs of independent HashFuncs for a given
// table length. A Map holds exactly one pair at a time, one function
// per table, and asks its family for a new pair whenever the tables
// are rebuilt.
type HashFamily interface {
	// Generate returns two HashFuncs mapping into [0, tableLen).
	// tableLen is always a power of two. Any randomness must be drawn
	// from r, which is owned by the Map.
	Generate(tableLen int, r *rand.Rand) (h1, h2 HashFunc)
	// Regenerates reports whether repeated calls to Generate for the
	// same table length may return different functions. When it is
	// false the Map recovers from eviction cycles by growing only.
	Regenerates() bool
}

// MultiplyShift is the default HashFamily. Each function has the form
//
//	h(x) = (a*x + b) >> (64 - log2(tableLen))
//
// with a odd and b non-zero, both drawn at random. The high bits of
// the product are used, so the scalar hash need not be well mixed in
// its low bits.
type MultiplyShift struct{}

// Generate implements HashFamily.
func (MultiplyShift) Generate(tableLen int, r *rand.Rand) (HashFunc, HashFunc) {
	shift := 64 - uint(bits.TrailingZeros64(uint64(tableLen)))
	return multiplyShift(r, shift), multiplyShift(r, shift)
}

// Regenerates implements HashFamily.
func (MultiplyShift) Regenerates() bool { return true }

func multiplyShift(r *rand.Rand, shift uint) HashFunc {
	a := r.Uint64() | 1
	var b uint64
	for b == 0 {
		b = r.Uint64()
	}
	return func(hash uint64) int {
		// A shift of 64 yields 0, which is the only index of a
		// single slot table.
		return int((a*hash + b) >> shift)
	}
}

// Supplemental is a fixed HashFamily. The first function mixes the
// scalar hash and the second mixes hash+1; both are masked to the
// table length. Generate always returns the same pair for a given
// table length, so a Map using it only grows on eviction cycles.
type Supplemental struct{}

// Generate implements HashFamily. r is unused.
func (Supplemental) Generate(tableLen int, _ *rand.Rand) (HashFunc, HashFunc) {
	mask := uint64(tableLen - 1)
	h1 := func(hash uint64) int {
		return int(supplementalHash(hash) & mask)
	}
	h2 := func(hash uint64) int {
		return int(supplementalHash(hash+1) & mask)
	}
	return h1, h2
}

// Regenerates implements HashFamily.
func (Supplemental) Regenerates() bool { return false }

// supplementalHash defends against scalar hashes that only differ in
// their upper bits, since the tables are indexed by the lower bits.
func supplementalHash(h uint64) uint64 {
	h ^= (h >> 40) ^ (h >> 24)
	h ^= (h >> 20) ^ (h >> 12)
	return h ^ (h >> 7) ^ (h >> 4)
}
