// Copyright 2024 The pathtree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package pathtree

import (
	"strings"

	"github.com/foxtrot-router/pathtree/internal/bytesconv"
)

// ranges is the ordered list of captured (start, end) byte offsets a search
// accumulates as it descends. Entries are appended on the way down and
// truncated back to a saved length on backtrack, so only the ranges from
// the winning path survive to the caller.
type ranges = [][2]int

// search runs the matcher's depth-first, ordered-backtracking descent
// against path, starting at the tree's root. It returns the terminal id of
// the first winning route and the capture ranges collected along the way
// to it.
func (t *Tree[V]) search(path string) (int, ranges, bool) {
	if t.root == nil {
		return 0, nil, false
	}
	caps := make(ranges, 0, t.maxParams)
	id, ok := searchLiteral(t.root, path, 0, &caps)
	if !ok {
		return 0, nil, false
	}
	return id, caps, true
}

// searchLiteral matches n's own label (n must be literal-labelled) against
// path[pos:], then hands off to searchChildren at the advanced position.
func searchLiteral(n *node, path string, pos int, caps *ranges) (int, bool) {
	label := n.label
	if pos+len(label) > len(path) || path[pos:pos+len(label)] != bytesconv.String(label) {
		return 0, false
	}
	return searchChildren(n, path, pos+len(label), caps)
}

// searchChildren implements the per-node decision in the matcher
// discipline: succeed immediately on an exact terminal match, otherwise try
// the single matching literal child, then every parameter child in Kind
// rank order, returning the first success.
func searchChildren(n *node, path string, pos int, caps *ranges) (int, bool) {
	if pos == len(path) && n.terminal >= 0 {
		return n.terminal, true
	}
	if pos < len(path) {
		if c := n.literalChild(path[pos]); c != nil {
			if id, ok := searchLiteral(c, path, pos, caps); ok {
				return id, true
			}
		}
	}
	for _, c := range n.paramChildren {
		if id, ok := searchParam(c, path, pos, caps); ok {
			return id, true
		}
	}
	return 0, false
}

// searchParam dispatches to the consumption rule for n's Kind, per the
// matcher discipline's per-kind description.
func searchParam(n *node, path string, pos int, caps *ranges) (int, bool) {
	switch n.kind {
	case KindNormal:
		return matchShrink(n, path, pos, caps, segmentCeiling(path, pos), 1)
	case KindOptional:
		return matchOptional(n, path, pos, caps)
	case KindOptionalSegment:
		return matchOptionalSegment(n, path, pos, caps)
	case KindOneOrMore:
		return matchShrink(n, path, pos, caps, len(path)-pos, 1)
	case KindZeroOrMore:
		return matchShrink(n, path, pos, caps, len(path)-pos, 0)
	case KindZeroOrMoreSegment:
		return matchZeroOrMoreSegment(n, path, pos, caps)
	default:
		return 0, false
	}
}

// segmentCeiling returns the number of bytes from pos up to (but not
// including) the next '/' in path, or to end of input if there is none.
// This is the upper bound on how far an inline (non-segment) parameter
// may reach.
func segmentCeiling(path string, pos int) int {
	if i := strings.IndexByte(path[pos:], '/'); i >= 0 {
		return i
	}
	return len(path) - pos
}

// matchShrink tries consumption lengths from ceiling down to min,
// recording each candidate as a capture and recursing into n's own
// children at the advanced position. It backs out (restoring caps) on
// failure and tries the next shorter length.
//
// This single shrinking search serves both Normal (ceiling bounded to the
// current segment, min 1) and OneOrMore/ZeroOrMore (ceiling unbounded
// across slashes, min 1 or 0): despite Normal's informal description as
// fixed-length, adjoining literals inside the same segment (see the dotted
// day/month/year pattern) require it to shrink exactly like the greedy
// kinds do.
func matchShrink(n *node, path string, pos int, caps *ranges, ceiling, min int) (int, bool) {
	for length := ceiling; length >= min; length-- {
		save := len(*caps)
		*caps = append(*caps, [2]int{pos, pos + length})
		if id, ok := searchChildren(n, path, pos+length, caps); ok {
			return id, true
		}
		*caps = (*caps)[:save]
	}
	return 0, false
}

// matchOptional implements inline Optional: the skip branch (empty
// capture, zero bytes consumed) is tried before any non-empty-length
// candidate, longest first.
func matchOptional(n *node, path string, pos int, caps *ranges) (int, bool) {
	save := len(*caps)
	*caps = append(*caps, [2]int{pos, pos})
	if id, ok := searchChildren(n, path, pos, caps); ok {
		return id, true
	}
	*caps = (*caps)[:save]

	return matchShrink(n, path, pos, caps, segmentCeiling(path, pos), 1)
}

// matchOptionalSegment implements OptionalSegment: the governing '/' that
// would separate this parameter from what precedes it belongs to the
// parameter itself, not to a literal sibling edge (Tree.Insert folds that
// separator out of the preceding literal piece for exactly this reason).
// Skipping therefore also consumes a leading '/' if one is present;
// matching requires one and then behaves like Optional within the segment
// that follows it.
func matchOptionalSegment(n *node, path string, pos int, caps *ranges) (int, bool) {
	rest := path[pos:]

	save := len(*caps)
	*caps = append(*caps, [2]int{pos, pos})
	skipTo := pos
	if len(rest) > 0 && rest[0] == '/' {
		skipTo = pos + 1
	}
	if id, ok := searchChildren(n, path, skipTo, caps); ok {
		return id, true
	}
	*caps = (*caps)[:save]

	if len(rest) == 0 || rest[0] != '/' {
		return 0, false
	}
	content := rest[1:]
	ceiling := len(content)
	if i := strings.IndexByte(content, '/'); i >= 0 {
		ceiling = i
	}
	for length := ceiling; length >= 1; length-- {
		save := len(*caps)
		*caps = append(*caps, [2]int{pos + 1, pos + 1 + length})
		if id, ok := searchChildren(n, path, pos+1+length, caps); ok {
			return id, true
		}
		*caps = (*caps)[:save]
	}
	return 0, false
}

// matchZeroOrMoreSegment implements ZeroOrMoreSegment: greedy over the
// whole remaining tail, but every candidate length must land its right
// edge exactly on a '/' or on end of input; it can never stop mid
// segment. Like OptionalSegment, the governing leading '/' is the
// parameter's own to consume, not a preceding literal edge's.
func matchZeroOrMoreSegment(n *node, path string, pos int, caps *ranges) (int, bool) {
	rest := path[pos:]
	if len(rest) == 0 {
		save := len(*caps)
		*caps = append(*caps, [2]int{pos, pos})
		if id, ok := searchChildren(n, path, pos, caps); ok {
			return id, true
		}
		*caps = (*caps)[:save]
		return 0, false
	}
	if rest[0] != '/' {
		return 0, false
	}

	content := rest[1:]
	for length := len(content); length >= 0; length-- {
		if length < len(content) && content[length] != '/' {
			continue
		}
		save := len(*caps)
		*caps = append(*caps, [2]int{pos + 1, pos + 1 + length})
		if id, ok := searchChildren(n, path, pos+1+length, caps); ok {
			return id, true
		}
		*caps = (*caps)[:save]
	}
	return 0, false
}
