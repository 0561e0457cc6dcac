// Copyright 2024 The pathtree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package pathtree

import "strings"

// PieceKind distinguishes the two Piece variants produced by the parser.
type PieceKind uint8

const (
	// PieceLiteral marks a Piece carrying a non-empty literal byte run.
	PieceLiteral PieceKind = iota
	// PieceParam marks a Piece carrying a parameter descriptor.
	PieceParam
)

// Piece is one token of a parsed pattern: either a literal byte run or a
// parameter. Literal and Param fields are only meaningful for the
// corresponding PieceKind; a Piece is never both.
//
// Escaped bytes (\X) are emitted as their own single-byte literal Piece,
// distinct from the literal run surrounding them. When pieces are rendered
// back into pattern syntax, every ':', '*', '+' and '\\' byte of a literal
// Piece is escaped, whether or not it came from an escape sequence.
type Piece struct {
	Kind    PieceKind
	Literal []byte // non-empty iff Kind == PieceLiteral
	Name    string // display name iff Kind == PieceParam: a user ident, or "*N" / "+N"
	Param   Kind   // parameter quantifier kind iff Kind == PieceParam
}

func literalPiece(b []byte) Piece {
	return Piece{Kind: PieceLiteral, Literal: b}
}

func paramPiece(name string, kind Kind) Piece {
	return Piece{Kind: PieceParam, Name: name, Param: kind}
}

// IsParam reports whether p is a parameter piece.
func (p Piece) IsParam() bool {
	return p.Kind == PieceParam
}

// appendGlyph writes p's pattern-syntax rendering to sb, escaping literal
// bytes that would otherwise be parsed as syntax (':', '*', '+', '\\').
func (p Piece) appendGlyph(sb *strings.Builder) {
	if p.Kind == PieceLiteral {
		for _, b := range p.Literal {
			switch b {
			case ':', '*', '+', '\\':
				sb.WriteByte('\\')
			}
			sb.WriteByte(b)
		}
		return
	}

	if isAnonName(p.Name) {
		// Anonymous parameters render as their bare introducer; the
		// original surrounding literal context determines, on re-parse,
		// whether that introducer classifies as inline or segment.
		if p.Param == KindOneOrMore {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('*')
		}
		return
	}

	sb.WriteByte(':')
	sb.WriteString(p.Name)
	switch p.Param {
	case KindOptional, KindOptionalSegment:
		sb.WriteByte('?')
	case KindOneOrMore:
		sb.WriteByte('+')
	case KindZeroOrMore, KindZeroOrMoreSegment:
		sb.WriteByte('*')
	}
}

// isAnonName reports whether name is an auto-assigned display name of the
// form "*N" or "+N", as opposed to a user-supplied identifier.
func isAnonName(name string) bool {
	if len(name) < 2 {
		return false
	}
	if name[0] != '*' && name[0] != '+' {
		return false
	}
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
