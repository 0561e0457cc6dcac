// Copyright 2024 The pathtree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package pathtree

import "strconv"

// parsePattern tokenises a route pattern into an ordered, possibly empty,
// sequence of Pieces. It consumes the pattern left to right with a single
// byte of lookahead and never fails: pathological or truncated input simply
// yields whatever pieces were parsed up to that point.
//
// Syntax:
//
//	literal-bytes     any bytes except : + * \
//	escape            \X        emits literal X (in particular \:, \\)
//	named param       :ident    ident = [^-.~/\:?+*]+
//	quantifier suffix ? + *     modifies a preceding named param
//	bare wildcard     *  +      introduces an anonymous parameter (auto-named *N or +N)
func parsePattern(pattern string) []Piece {
	if pattern == "" {
		return nil
	}

	var pieces []Piece
	var starN, plusN int

	n := len(pattern)
	litStart := -1

	flushLiteral := func(end int) {
		if litStart >= 0 && end > litStart {
			pieces = append(pieces, literalPiece([]byte(pattern[litStart:end])))
		}
		litStart = -1
	}

	i := 0
	for i < n {
		c := pattern[i]
		switch c {
		case '\\':
			flushLiteral(i)
			if i+1 < n {
				pieces = append(pieces, literalPiece([]byte{pattern[i+1]}))
				i += 2
			} else {
				// Dangling escape with nothing to escape: emit the backslash itself.
				pieces = append(pieces, literalPiece([]byte{'\\'}))
				i++
			}
		case ':':
			flushLiteral(i)
			prevSlash := i > 0 && pattern[i-1] == '/'
			j := i + 1
			identStart := j
			for j < n && !isIdentBoundary(pattern[j]) {
				j++
			}
			name := pattern[identStart:j]
			kind := KindNormal
			if j < n {
				switch pattern[j] {
				case '?':
					if prevSlash && nextIsSlashOrEnd(pattern, j+1) {
						kind = KindOptionalSegment
					} else {
						kind = KindOptional
					}
					j++
				case '+':
					kind = KindOneOrMore
					j++
				case '*':
					if prevSlash && nextIsSlashOrEnd(pattern, j+1) {
						kind = KindZeroOrMoreSegment
					} else {
						kind = KindZeroOrMore
					}
					j++
				}
			}
			pieces = append(pieces, paramPiece(name, kind))
			i = j
		case '*', '+':
			flushLiteral(i)
			prevSlash := i > 0 && pattern[i-1] == '/'
			var kind Kind
			var name string
			if c == '+' {
				plusN++
				kind = KindOneOrMore
				name = "+" + strconv.Itoa(plusN)
			} else {
				starN++
				if prevSlash && nextIsSlashOrEnd(pattern, i+1) {
					kind = KindZeroOrMoreSegment
				} else {
					kind = KindZeroOrMore
				}
				name = "*" + strconv.Itoa(starN)
			}
			pieces = append(pieces, paramPiece(name, kind))
			i++
		default:
			if litStart < 0 {
				litStart = i
			}
			i++
		}
	}
	flushLiteral(n)

	return pieces
}

// isIdentBoundary reports whether b terminates a named-parameter
// identifier: '-', '.', '~', '/', '\\', ':', '?', '+', '*'.
func isIdentBoundary(b byte) bool {
	switch b {
	case '-', '.', '~', '/', '\\', ':', '?', '+', '*':
		return true
	default:
		return false
	}
}

// nextIsSlashOrEnd reports whether pattern[idx] is '/' or idx is past the
// end of pattern, the other half of the segment-vs-inline classification.
func nextIsSlashOrEnd(pattern string, idx int) bool {
	return idx >= len(pattern) || pattern[idx] == '/'
}
