// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package cuckoomap

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

const (
	defaultCapacity   = 16
	defaultLoadFactor = 0.75
)

type config struct {
	capacity   int
	loadFactor float64
	family     HashFamily
	rand       *rand.Rand
	logger     *zap.Logger
}

// Option configures a Map created by New.
type Option func(*config)

// WithCapacity sets the initial total capacity of the Map, split
// between its two tables. It is rounded up to a power of two. Clear
// returns the Map to this capacity. The default is 16.
func WithCapacity(capacity int) Option {
	return func(c *config) { c.capacity = capacity }
}

// WithLoadFactor sets the fraction of the total capacity that may be
// occupied before the Map grows. It must be in (0, 1]. The default is
// 0.75.
func WithLoadFactor(loadFactor float64) Option {
	return func(c *config) { c.loadFactor = loadFactor }
}

// WithHashFamily sets the family the Map draws its hash function
// pairs from. The default is MultiplyShift.
func WithHashFamily(family HashFamily) Option {
	return func(c *config) { c.family = family }
}

// WithRand sets the source of randomness used to break eviction ties,
// generate hash functions and pick iteration start points. A Map
// takes ownership of r. Passing a fixed-seed source makes eviction
// sequences reproducible as long as the scalar hash ignores its seed.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rand = r }
}

// WithLogger sets the logger used to report table growth and hash
// function regeneration at debug level. The default discards all
// output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func newConfig(opts []Option) (config, error) {
	c := config{
		capacity:   defaultCapacity,
		loadFactor: defaultLoadFactor,
		family:     MultiplyShift{},
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rand == nil {
		c.rand = newRand()
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c, c.validate()
}

func (c *config) validate() error {
	switch {
	case c.capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d",
			ErrInvalidArgument, c.capacity)
	case c.capacity > maxCapacity:
		return fmt.Errorf("%w: capacity %d exceeds maximum %d",
			ErrInvalidArgument, c.capacity, maxCapacity)
	case !(c.loadFactor > 0 && c.loadFactor <= 1):
		// also rejects NaN
		return fmt.Errorf("%w: load factor must be in (0, 1], got %v",
			ErrInvalidArgument, c.loadFactor)
	case c.family == nil:
		return fmt.Errorf("%w: nil hash family", ErrInvalidArgument)
	}
	return nil
}
