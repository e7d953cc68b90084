// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !go1.22

package cuckoomap

import (
	_ "unsafe"
)

//go:linkname fastrand64 runtime.fastrand64
func fastrand64() uint64

func seed64() uint64 {
	return fastrand64()
}
