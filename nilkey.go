// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package cuckoomap

import "reflect"

// nilable reports whether values of K can be nil. It is computed once
// per Map so that maps over plain value types never pay for reflection.
func nilable[K any]() bool {
	switch reflect.TypeOf((*K)(nil)).Elem().Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}

// isNil reports whether key is nil. Only valid when K is nilable.
func isNil[K any](key K) bool {
	v := reflect.ValueOf(any(key))
	if !v.IsValid() {
		// nil interface
		return true
	}
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
