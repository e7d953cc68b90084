// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cuckoomap

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// String converts m to a string representation using K's and E's
// String functions.
func String[K fmt.Stringer, E fmt.Stringer](m *Map[K, E]) string {
	return StringFunc(m,
		func(key K) string { return key.String() },
		func(elem E) string { return elem.String() },
	)
}

type strKE struct {
	k string
	e string
}

// StringFunc converts m to a string representation with the help of
// strK and strE functions to stringify m's keys and elems. Entries
// are sorted by their stringified key.
func StringFunc[K any, E any](m *Map[K, E],
	strK func(key K) string,
	strE func(elem E) string) string {
	if m == nil || m.Len() == 0 {
		return "cuckoomap.Map[]"
	}
	strs := make([]strKE, 0, m.Len())
	s := 0
	m.ForEach(func(key K, elem E) bool {
		ke := strKE{k: strK(key), e: strE(elem)}
		s += len(ke.k) + len(ke.e)
		strs = append(strs, ke)
		return true
	})
	slices.SortFunc(strs, func(a, b strKE) bool { return a.k < b.k })

	var b strings.Builder
	b.Grow(len("cuckoomap.Map[]") + // space for header and footer
		len(strs)*2 - 1 + // space for delimiters
		s) // space for keys and elems
	b.WriteString("cuckoomap.Map[")
	for i, ke := range strs {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ke.k)
		b.WriteByte(':')
		b.WriteString(ke.e)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal returns true if the same set of keys and elems are in m1 and
// m2. Elements are compared using ==.
func Equal[K any, E comparable](m1, m2 *Map[K, E]) bool {
	return EqualFunc(m1, m2, func(a, b E) bool { return a == b })
}

// EqualFunc returns true if the same set of keys and elems are in m1
// and m2. Elements are compared using eq.
func EqualFunc[K, E any](m1, m2 *Map[K, E], eq func(E, E) bool) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	equal := true
	m1.ForEach(func(key K, elem E) bool {
		e2, ok, err := m2.Get(key)
		equal = err == nil && ok && eq(elem, e2)
		return equal
	})
	return equal
}

// ContainsValue reports whether any key in m is associated with elem.
// Elements are compared using ==. It scans both tables.
func ContainsValue[K any, E comparable](m *Map[K, E], elem E) bool {
	return ContainsValueFunc(m, elem, func(a, b E) bool { return a == b })
}

// ContainsValueFunc reports whether any key in m is associated with an
// element equal to elem according to eq.
func ContainsValueFunc[K, E any](m *Map[K, E], elem E, eq func(E, E) bool) bool {
	found := false
	m.ForEach(func(_ K, e E) bool {
		found = eq(e, elem)
		return !found
	})
	return found
}
