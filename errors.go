// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package cuckoomap

import "errors"

var (
	// ErrInvalidKey is returned when a nil key is passed to a Map
	// operation. Keys whose type cannot be nil are always valid.
	ErrInvalidKey = errors.New("cuckoomap: invalid key")

	// ErrInvalidArgument is returned by New when an option is out of
	// range. The returned error wraps ErrInvalidArgument with details.
	ErrInvalidArgument = errors.New("cuckoomap: invalid argument")

	// errEvictionCycle is the internal signal that tryPlace ran out of
	// displacements. It never escapes the package.
	errEvictionCycle = errors.New("cuckoomap: eviction cycle")
)
