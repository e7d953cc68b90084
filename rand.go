// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package cuckoomap

import "golang.org/x/exp/rand"

// newRand returns a source of randomness for a Map that was not given
// one. Each Map gets its own PCG source seeded from the runtime, so
// Maps never share random state.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(seed64()))
}
