// Copyright 2024 The pathtree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package pathtree

import (
	"fmt"
	"log/slog"
)

type config struct {
	logger        *slog.Logger
	routeCapacity int
	maxParams     int
}

func defaultConfig() config {
	return config{maxParams: 64}
}

// Option configures a Tree at construction time. See New.
type Option interface {
	apply(*config) error
}

type optionFunc func(*config) error

func (f optionFunc) apply(c *config) error { return f(c) }

// WithLogger sets the structured logger a Tree uses to report structural
// events (a new route registered, an existing route overwritten) during
// Insert. Find
// never logs, on any logger: a lookup hot path has no business paying for
// a log call. A nil handler is ignored.
func WithLogger(handler slog.Handler) Option {
	return optionFunc(func(c *config) error {
		if handler != nil {
			c.logger = slog.New(handler)
		}
		return nil
	})
}

// WithRouteCapacity pre-sizes the tree's route table for n routes. It is
// purely an allocation hint; exceeding n still works, it just reallocates.
func WithRouteCapacity(n int) Option {
	return optionFunc(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: route capacity %d is negative", ErrInvalidOption, n)
		}
		c.routeCapacity = n
		return nil
	})
}

// WithMaxParams sizes the initial capacity of the capture slice Tree.Find
// preallocates per lookup. It is a preallocation hint, not an enforced
// ceiling: Insert registers patterns with any number of parameters
// regardless of this value, matching the parser and tree's infallible
// contract, and Find still succeeds on them, it just grows the capture
// slice past the hint like any other append.
func WithMaxParams(n int) Option {
	return optionFunc(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: max params %d is negative", ErrInvalidOption, n)
		}
		c.maxParams = n
		return nil
	})
}
