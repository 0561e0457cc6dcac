// Copyright 2024 The pathtree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package pathtree

import "strings"

// Param is one captured parameter: its display name (a user-supplied
// identifier, or an auto-assigned "*N"/"+N") paired with the substring of
// the query path it matched.
type Param struct {
	Name  string
	Value string
}

// Match is the result of a successful Tree.Find: the matched route's
// value and id, its captured parameters, and enough structure to
// reconstruct the original pattern text.
type Match[V any] struct {
	value  V
	id     int
	pieces []Piece
	path   string
	ranges ranges
}

// Value returns the user value bound to the matched route.
func (m Match[V]) Value() V { return m.value }

// ID returns the matched route's terminal id, as assigned by Tree.Insert.
func (m Match[V]) ID() int { return m.id }

// Pieces returns the matched pattern's parsed piece list.
func (m Match[V]) Pieces() []Piece { return m.pieces }

// Pattern renders the matched pattern's pieces back into pattern syntax.
// The result re-parses to an equivalent piece list, but is not guaranteed
// to be byte-identical to the original pattern string (e.g. an escaped
// literal that didn't need escaping is rendered with its escape dropped).
func (m Match[V]) Pattern() string {
	return renderPattern(m.pieces)
}

// Params returns the captured parameters in the order their parameters
// appear in the pattern's piece list. The returned values borrow from the
// path passed to Find and must not be retained past that call's lifetime.
func (m Match[V]) Params() []Param {
	if len(m.ranges) == 0 {
		return nil
	}
	params := make([]Param, 0, len(m.ranges))
	ri := 0
	for _, p := range m.pieces {
		if !p.IsParam() {
			continue
		}
		r := m.ranges[ri]
		ri++
		params = append(params, Param{Name: p.Name, Value: m.path[r[0]:r[1]]})
	}
	return params
}

// renderPattern re-assembles pieces into pattern syntax, escaping literal
// bytes that would otherwise be parsed as syntax.
func renderPattern(pieces []Piece) string {
	var sb strings.Builder
	for _, p := range pieces {
		p.appendGlyph(&sb)
	}
	return sb.String()
}
