// Modifications copyright (c) Arista Networks, Inc. 2026
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cuckoomap provides the Map type, a hash table using two-table
// cuckoo hashing. Lookups and deletes probe exactly two slots.
// Inserts take amortized constant time: an insert may displace
// existing entries between the tables, and when a chain of
// displacements runs too long the tables are rebuilt with new hash
// functions or at twice their size.
//
// Users provide an equal and a hash function. The
// following requirements are the user's responsibility to follow:
//   - equal(a, b) => hash(a) == hash(b)
//   - equal(a, a) must be true for all values of a. Be careful around NaN
//     float values.
//   - If a key in a Map contains references -- such as pointers, maps,
//     or slices -- modifying the referenced data in a way that affects
//     the result of the equal or hash functions will result in undefined
//     behavior.
//   - Keys with equal hashes can only be told apart by equal, so a hash
//     function returning the same value for more than two keys makes
//     those keys impossible to place and the Map will panic.
//
// A Map is not safe for concurrent use.
package cuckoomap

// Each key has one candidate slot in each of two equally sized
// tables, T1 and T2, given by a pair of hash functions drawn from a
// HashFamily. A key is stored in at most one of its two slots, so a
// lookup checks T1 then T2 and is done.
//
// An insert takes the first free candidate slot, preferring T1. If
// both are occupied it evicts one of the occupants at random and
// tries to place the evicted entry in its other slot, repeating up to
// maxLoop times. An entry still without a slot at the end of the
// chain is handed to recoverOrphan, which rebuilds the tables from
// scratch: first at the same size with fresh hash functions, then at
// twice the size.
// The live tables are only replaced by a rebuild that placed every
// entry.

import (
	"hash/maphash"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

const (
	// flags
	hashWriting = 4 // a goroutine is writing to the map
)

// Map implements a hashmap using cuckoo hashing.
type Map[K, E any] struct {
	count int // # live cells == size of map
	flags uint32

	tab tables[K, E]

	// statistics, reported by debugString
	ngrow  int
	nregen int

	seed    maphash.Seed
	hash    func(maphash.Seed, K) uint64
	equal   func(K, K) bool
	nilable bool

	capacity   int // configured starting capacity
	loadFactor float64
	family     HashFamily
	rand       *rand.Rand
	log        *zap.Logger
}

// KeyElem contains a Key and Elem.
type KeyElem[K, E any] struct {
	Key  K
	Elem E
}

// New instantiates a new, empty Map configured by opts. The equal func
// must return true for two values of K that are equal and false
// otherwise. The hash func should return a uniformly distributed hash
// value. If equal(a, b) then hash(a) == hash(b). The hash function is
// passed a [hash/maphash.Seed], this is meant to be used with
// functions and types in the [hash/maphash] package, though can be
// ignored.
//
// New returns an error wrapping ErrInvalidArgument if an option is
// out of range or equal or hash is nil.
func New[K, E any](
	equal func(a, b K) bool,
	hash func(maphash.Seed, K) uint64,
	opts ...Option) (*Map[K, E], error) {

	if equal == nil || hash == nil {
		return nil, ErrInvalidArgument
	}
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	m := &Map[K, E]{
		seed:       maphash.MakeSeed(),
		hash:       hash,
		equal:      equal,
		nilable:    nilable[K](),
		capacity:   c.capacity,
		loadFactor: c.loadFactor,
		family:     c.family,
		rand:       c.rand,
		log:        c.logger,
	}
	m.tab = m.newTables(tableLen(c.capacity))
	return m, nil
}

// checkKey returns ErrInvalidKey if key is nil.
func (m *Map[K, E]) checkKey(key K) error {
	if m.nilable && isNil(key) {
		return ErrInvalidKey
	}
	return nil
}

// Len returns the count of occupied elements in m.
func (m *Map[K, E]) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// IsEmpty reports whether m holds no elements.
func (m *Map[K, E]) IsEmpty() bool {
	return m.Len() == 0
}

// Cap returns the total number of slots across both tables of m.
func (m *Map[K, E]) Cap() int {
	if m == nil {
		return 0
	}
	return len(m.tab.t1) + len(m.tab.t2)
}

// Get returns the element associated with key and true if that key is
// in the Map, otherwise it returns the zero value of E and false. It
// returns ErrInvalidKey if key is nil.
func (m *Map[K, E]) Get(key K) (E, bool, error) {
	var zeroE E
	if m == nil {
		return zeroE, false, nil
	}
	if err := m.checkKey(key); err != nil {
		return zeroE, false, err
	}
	s := m.tab.find(m.hash(m.seed, key), key, m.equal)
	if s == nil {
		return zeroE, false, nil
	}
	return s.elem, true, nil
}

// GetOrDefault returns the element associated with key, or def if key
// is not in the Map.
func (m *Map[K, E]) GetOrDefault(key K, def E) (E, error) {
	e, ok, err := m.Get(key)
	if err != nil || !ok {
		return def, err
	}
	return e, nil
}

// ContainsKey reports whether key is in the Map.
func (m *Map[K, E]) ContainsKey(key K) (bool, error) {
	_, ok, err := m.Get(key)
	return ok, err
}

// Put associates key with elem in m. If key was already present, Put
// returns its previous element and true. It returns ErrInvalidKey,
// and leaves m unchanged, if key is nil.
func (m *Map[K, E]) Put(key K, elem E) (E, bool, error) {
	var zeroE E
	if m == nil {
		// We have to panic here rather than initialize an empty map
		// because we need the user to pass in hash and equal
		// functions
		panic("Put called on nil map")
	}
	if err := m.checkKey(key); err != nil {
		return zeroE, false, err
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	hash := m.hash(m.seed, key)
	// Set hashWriting after calling m.hash, since m.hash may panic,
	// in which case we have not actually done a write.
	m.flags ^= hashWriting

	if s := m.tab.find(hash, key, m.equal); s != nil {
		// already have a mapping for key. Update it.
		old := s.elem
		s.key = key
		s.elem = elem
		m.doneWriting()
		return old, true, nil
	}

	for m.overLoadFactor(m.count + 1) {
		m.grow(nil)
	}
	e := entry[K, E]{hash: hash, key: key, elem: elem}
	if orphan, err := m.tab.tryPlace(e, m.equal, m.rand); err != nil {
		m.recoverOrphan(orphan)
	}
	m.count++

	m.doneWriting()
	return zeroE, false, nil
}

// Update calls fn with the element associated with key, or the zero
// value of E if key is not in m, and associates key with the result.
func (m *Map[K, E]) Update(key K, fn func(cur E) E) error {
	cur, _, err := m.Get(key)
	if err != nil {
		return err
	}
	_, _, err = m.Put(key, fn(cur))
	return err
}

// PutAll puts every KeyElem in kes into m. If any key is nil, PutAll
// returns ErrInvalidKey without modifying m.
func (m *Map[K, E]) PutAll(kes ...KeyElem[K, E]) error {
	if m == nil {
		panic("PutAll called on nil map")
	}
	for _, ke := range kes {
		if err := m.checkKey(ke.Key); err != nil {
			return err
		}
	}
	for _, ke := range kes {
		if _, _, err := m.Put(ke.Key, ke.Elem); err != nil {
			return err
		}
	}
	return nil
}

// Remove removes key and its associated element from the map. If key
// was present, Remove returns its element and true. Removing never
// shrinks the tables.
func (m *Map[K, E]) Remove(key K) (E, bool, error) {
	var zeroE E
	if m == nil {
		return zeroE, false, nil
	}
	if err := m.checkKey(key); err != nil {
		return zeroE, false, err
	}
	if m.count == 0 {
		return zeroE, false, nil
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	hash := m.hash(m.seed, key)
	m.flags ^= hashWriting

	var (
		old     E
		removed bool
	)
	for _, s := range [...]*slot[K, E]{&m.tab.t1[m.tab.h1(hash)], &m.tab.t2[m.tab.h2(hash)]} {
		if s.used && s.hash == hash && m.equal(s.key, key) {
			old, removed = s.elem, true
			*s = slot[K, E]{}
			m.count--
		}
	}

	m.doneWriting()
	return old, removed, nil
}

// Clear deletes all keys from m and returns it to its configured
// starting capacity.
func (m *Map[K, E]) Clear() {
	if m == nil {
		return
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	m.flags ^= hashWriting

	m.count = 0
	m.seed = maphash.MakeSeed()
	m.tab = m.newTables(tableLen(m.capacity))

	m.doneWriting()
}

func (m *Map[K, E]) doneWriting() {
	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
}

// ForEach calls fn for every key and element in m, in no particular
// order, until fn returns false. fn must not modify m.
func (m *Map[K, E]) ForEach(fn func(key K, elem E) bool) {
	if m == nil {
		return
	}
	for _, t := range [...]table[K, E]{m.tab.t1, m.tab.t2} {
		for i := range t {
			if t[i].used && !fn(t[i].key, t[i].elem) {
				return
			}
		}
	}
}

// Iterator is instantiated by a call Iter(). It allows iterating over
// a Map.
type Iterator[K, E any] struct {
	key    K
	elem   E
	t1, t2 table[K, E]
	offset int
	i      int
}

// Key returns the key at the iterator's current position. This is
// only valid after a call to Next() that returns true.
func (it *Iterator[K, E]) Key() K {
	return it.key
}

// Elem returns the element at the iterator's current position. This
// is only valid after a call to Next() that returns true.
func (it *Iterator[K, E]) Elem() E {
	return it.elem
}

// Iter instantiates an Iterator to explore the elements of the Map.
// Ordering is undefined and is intentionally randomized. If the Map is
// modified before the iteration completes, the entries returned are
// undefined.
func (m *Map[K, E]) Iter() *Iterator[K, E] {
	if m == nil || m.count == 0 {
		return &Iterator[K, E]{}
	}
	n := len(m.tab.t1) + len(m.tab.t2)
	return &Iterator[K, E]{
		t1: m.tab.t1,
		t2: m.tab.t2,
		// decide where to start
		offset: int(m.rand.Uint64() & uint64(n-1)),
	}
}

// Next moves the iterator to the next element. Next returns false
// when the iterator is complete.
func (it *Iterator[K, E]) Next() bool {
	n := len(it.t1)
	for it.i < 2*n {
		p := (it.offset + it.i) & (2*n - 1)
		it.i++
		var s *slot[K, E]
		if p < n {
			s = &it.t1[p]
		} else {
			s = &it.t2[p-n]
		}
		if s.used {
			it.key = s.key
			it.elem = s.elem
			return true
		}
	}
	return false
}
