// Copyright 2024 The pathtree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package pathtree

import "log/slog"

// routeEntry is one row of the tree's route table: the user value and the
// piece list produced by the parser for that route's pattern, kept
// together so Route and Find can resolve a terminal id back to both.
type routeEntry[V any] struct {
	value  V
	pieces []Piece
}

// Tree is a generic radix tree mapping URL path patterns to values of type
// V. Patterns may contain named and wildcard parameters; Find resolves a
// concrete path to the most specific matching pattern's value, along with
// the captured parameter substrings.
//
// The zero value of Tree is not ready to use; construct one with New.
// A Tree built by New is safe for any number of concurrent Find calls
// against it as long as no Insert runs concurrently with them.
type Tree[V any] struct {
	root   *node
	routes []routeEntry[V]
	logger *slog.Logger
	maxParams int
}

// New builds an empty Tree, applying any supplied Options. It returns
// ErrInvalidOption if an Option rejects its configured value.
func New[V any](opts ...Option) (*Tree[V], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt.apply(&cfg); err != nil {
			return nil, err
		}
	}

	t := &Tree[V]{
		root:      newLiteralNode([]byte("/")),
		logger:    cfg.logger,
		maxParams: cfg.maxParams,
	}
	if cfg.routeCapacity > 0 {
		t.routes = make([]routeEntry[V], 0, cfg.routeCapacity)
	}
	return t, nil
}

// Insert adds pattern to the tree bound to value, returning t so inserts
// can be chained. Patterns that don't begin with / are accepted verbatim;
// the root's label, conventionally /, simply won't match them at lookup
// time. The empty pattern is a no-op. Re-inserting a pattern that
// terminates at an already-terminal node silently overwrites that route's
// value; it does not allocate a new id.
func (t *Tree[V]) Insert(pattern string, value V) *Tree[V] {
	if pattern == "" {
		return t
	}

	pieces := parsePattern(pattern)

	n := t.root
	for i, p := range pieces {
		if p.IsParam() {
			n = n.insertParameter(p.Param)
			continue
		}

		lit := p.Literal
		if i+1 < len(pieces) && pieces[i+1].IsParam() && pieces[i+1].Param.segment() &&
			len(lit) > 0 && lit[len(lit)-1] == '/' {
			// The governing slash of a segment-aligned parameter is the
			// parameter's own to match (see matchOptionalSegment and
			// matchZeroOrMoreSegment); it is not a mandatory literal edge.
			lit = lit[:len(lit)-1]
		}
		if len(lit) == 0 {
			continue
		}
		n = n.insertBytes(lit)
	}

	overwrite := n.terminal >= 0
	id := n.terminal
	if overwrite {
		t.routes[id] = routeEntry[V]{value: value, pieces: pieces}
	} else {
		id = len(t.routes)
		t.routes = append(t.routes, routeEntry[V]{value: value, pieces: pieces})
		n.terminal = id
	}

	if t.logger != nil {
		if overwrite {
			t.logger.Debug("overwrite existing route", slog.String("pattern", pattern), slog.Int("id", id))
		} else {
			t.logger.Debug("insert route", slog.String("pattern", pattern), slog.Int("id", id))
		}
	}

	return t
}

// Find matches path against the tree, returning a Match view for the most
// specific pattern that matches it, and false if none does.
func (t *Tree[V]) Find(path string) (Match[V], bool) {
	id, caps, ok := t.search(path)
	if !ok {
		return Match[V]{}, false
	}
	entry := t.routes[id]
	return Match[V]{
		value:  entry.value,
		id:     id,
		pieces: entry.pieces,
		path:   path,
		ranges: caps,
	}, true
}

// Route resolves id to the value and piece list of the route registered
// under it, and reports ErrRouteNotFound if id is out of range.
func (t *Tree[V]) Route(id int) (V, []Piece, error) {
	if id < 0 || id >= len(t.routes) {
		var zero V
		return zero, nil, ErrRouteNotFound
	}
	e := t.routes[id]
	return e.value, e.pieces, nil
}

// Len reports the number of routes registered in the tree.
func (t *Tree[V]) Len() int {
	return len(t.routes)
}
