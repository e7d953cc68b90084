// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package cuckoomap

import "math/bits"

// maxCapacity is the largest total capacity New accepts.
const maxCapacity = 1 << (bits.UintSize - 2)

// slot holds at most one entry.
type slot[K, E any] struct {
	entry[K, E]
	used bool
}

// table is a power of two sized array of slots.
type table[K, E any] []slot[K, E]

func makeTable[K, E any](n int) table[K, E] {
	if n <= 0 || n&(n-1) != 0 {
		panic("table length is not power of 2")
	}
	return make(table[K, E], n)
}

// tableLen returns the length of each table for a total capacity of
// capacity, which is rounded up to a power of two and split evenly
// between the two tables.
func tableLen(capacity int) int {
	n := roundPow2(capacity) / 2
	if n < 1 {
		n = 1
	}
	return n
}

func roundPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
