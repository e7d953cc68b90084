// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cuckoomap_test

import (
	"fmt"
	"hash/maphash"

	"github.com/aristanetworks/cuckoomap"
)

func ExampleMap_Iter() {
	m, err := cuckoomap.New[string, string](
		func(a, b string) bool { return a == b },
		maphash.String,
	)
	if err != nil {
		panic(err)
	}
	m.PutAll(
		cuckoomap.KeyElem[string, string]{"Avenue", "AVE"},
		cuckoomap.KeyElem[string, string]{"Street", "ST"},
		cuckoomap.KeyElem[string, string]{"Court", "CT"},
	)

	for i := m.Iter(); i.Next(); {
		fmt.Printf("The abbreviation for %q is %q", i.Key(), i.Elem())
	}
}

func ExampleMap_Put() {
	m, err := cuckoomap.New[int, string](
		func(a, b int) bool { return a == b },
		cuckoomap.HashInteger[int],
		cuckoomap.WithCapacity(64),
		cuckoomap.WithLoadFactor(0.5),
	)
	if err != nil {
		panic(err)
	}
	m.Put(1, "one")
	old, replaced, _ := m.Put(1, "uno")
	v, _, _ := m.Get(1)
	fmt.Println(old, replaced, v, m.Len())
	// Output: one true uno 1
}
