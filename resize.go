// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package cuckoomap

import "go.uber.org/zap"

// maxGrowths is the number of consecutive doublings grow attempts
// before concluding that the hash function cannot tell the keys apart.
const maxGrowths = 16

// overLoadFactor reports whether count entries in m exceed its load
// factor.
func (m *Map[K, E]) overLoadFactor(count int) bool {
	return float64(count) >= m.loadFactor*float64(m.Cap())
}

// recoverOrphan finds a home for orphan, which tryPlace failed to store.
// It first rebuilds the tables at their current length with fresh
// hash functions, up to maxLoop times, and then falls back to
// growing.
func (m *Map[K, E]) recoverOrphan(orphan entry[K, E]) {
	n := len(m.tab.t1)
	if m.family.Regenerates() {
		for i := 0; i < maxLoop; i++ {
			if m.rebuild(n, &orphan) {
				m.nregen++
				m.log.Debug("regenerated hash functions",
					zap.Int("tableLen", n),
					zap.Int("attempt", i+1),
					zap.Int("count", m.count))
				return
			}
		}
		m.log.Debug("hash function regeneration exhausted",
			zap.Int("tableLen", n),
			zap.Int("count", m.count))
	}
	m.grow(&orphan)
}

// grow doubles the length of the tables until all entries, and extra
// if it is not nil, fit.
func (m *Map[K, E]) grow(extra *entry[K, E]) {
	n := len(m.tab.t1)
	for i := 0; i < maxGrowths; i++ {
		n <<= 1
		if m.rebuild(n, extra) {
			m.ngrow++
			m.log.Debug("grew tables",
				zap.Int("tableLen", n),
				zap.Int("count", m.count))
			return
		}
	}
	panic("cuckoomap: cannot place entries after growing; " +
		"the hash function does not distinguish keys")
}

// rebuild moves every entry, plus extra if it is not nil, into fresh
// tables of length n indexed by a new pair of hash functions. The new
// tables replace m's only if every entry found a slot; otherwise m is
// left untouched and rebuild returns false.
func (m *Map[K, E]) rebuild(n int, extra *entry[K, E]) bool {
	scratch := m.newTables(n)
	for _, t := range [...]table[K, E]{m.tab.t1, m.tab.t2} {
		for i := range t {
			if !t[i].used {
				continue
			}
			if _, err := scratch.tryPlace(t[i].entry, m.equal, m.rand); err != nil {
				m.log.Debug("abandoned rebuild", zap.Int("tableLen", n), zap.Error(err))
				return false
			}
		}
	}
	if extra != nil {
		if _, err := scratch.tryPlace(*extra, m.equal, m.rand); err != nil {
			m.log.Debug("abandoned rebuild", zap.Int("tableLen", n), zap.Error(err))
			return false
		}
	}
	m.tab = scratch
	return true
}

func (m *Map[K, E]) newTables(n int) tables[K, E] {
	h1, h2 := m.family.Generate(n, m.rand)
	return tables[K, E]{
		t1: makeTable[K, E](n),
		t2: makeTable[K, E](n),
		h1: h1,
		h2: h2,
	}
}
