// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package cuckoomap

import (
	"encoding/binary"
	"hash/maphash"

	"golang.org/x/exp/constraints"
)

// HashInteger is a hash function for integer keys, suitable for New.
// Use [hash/maphash.String] and [hash/maphash.Bytes] for string and
// []byte keys.
func HashInteger[T constraints.Integer](seed maphash.Seed, key T) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return maphash.Bytes(seed, buf[:])
}
