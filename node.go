// Copyright 2024 The pathtree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package pathtree

import "slices"

// node is one vertex of the radix tree. It is tagged rather than
// polymorphic: isParam selects which half of the struct is meaningful.
//
//   - literal-labelled node: label is a non-empty byte run, the edge to
//     reach this node from its parent.
//   - parameter node: kind identifies the quantifier class; the
//     parameter's display name lives in the route's piece list, not here.
//
// terminal is the id of the route that ends at this node, or -1 if none
// does. literalChildren is kept sorted ascending by first byte;
// paramChildren is kept sorted ascending by Kind rank. Both invariants are
// maintained by insertLiteralChild and insertParameter respectively and
// relied upon by the matcher's binary searches.
type node struct {
	label    []byte
	isParam  bool
	kind     Kind
	terminal int

	literalChildren []*node
	paramChildren   []*node
}

func newLiteralNode(label []byte) *node {
	return &node{label: label, terminal: -1}
}

func newParamNode(kind Kind) *node {
	return &node{isParam: true, kind: kind, terminal: -1}
}

// insertBytes inserts a literal edge labelled label starting at n,
// returning the node that terminates that label. n itself may be split if
// label only shares a partial prefix with n's own label.
func (n *node) insertBytes(label []byte) *node {
	if n.isParam {
		// Parameter nodes have no label of their own to compare against;
		// the bytes become a literal child directly.
		return n.insertLiteralChild(label)
	}

	k := commonPrefixLen(n.label, label)
	if k == 0 {
		// Nothing in common with n's own label: the bytes start a new
		// literal child instead of splitting n down to an empty label.
		return n.insertLiteralChild(label)
	}
	if k < len(n.label) {
		n.split(k)
	}
	if k == len(label) {
		return n
	}

	return n.insertLiteralChild(label[k:])
}

// split truncates n's label to its first k bytes, demoting the remainder
// (and everything n used to own: its terminal id and both child vectors)
// into a new sole literal child.
func (n *node) split(k int) {
	child := &node{
		label:           n.label[k:],
		terminal:        n.terminal,
		literalChildren: n.literalChildren,
		paramChildren:   n.paramChildren,
	}
	n.label = n.label[:k]
	n.terminal = -1
	n.literalChildren = []*node{child}
	n.paramChildren = nil
}

// insertLiteralChild binary-searches n's literal children by first byte,
// recursing into an exact hit or inserting a fresh leaf at the sorted
// position on a miss.
func (n *node) insertLiteralChild(label []byte) *node {
	idx, found := slices.BinarySearchFunc(n.literalChildren, label[0], func(c *node, b byte) int {
		return int(c.label[0]) - int(b)
	})
	if found {
		return n.literalChildren[idx].insertBytes(label)
	}
	child := newLiteralNode(label)
	n.literalChildren = slices.Insert(n.literalChildren, idx, child)
	return child
}

// insertParameter binary-searches n's parameter children by Kind rank,
// returning the existing child on a hit or inserting a new one at the
// sorted position on a miss.
func (n *node) insertParameter(kind Kind) *node {
	idx, found := slices.BinarySearchFunc(n.paramChildren, kind, func(c *node, k Kind) int {
		return int(c.kind) - int(k)
	})
	if found {
		return n.paramChildren[idx]
	}
	child := newParamNode(kind)
	n.paramChildren = slices.Insert(n.paramChildren, idx, child)
	return child
}

// literalChild returns n's literal child whose label starts with b, or nil
// if none does. Read-only counterpart of insertLiteralChild's search, used
// on the matcher's hot path.
func (n *node) literalChild(b byte) *node {
	idx, found := slices.BinarySearchFunc(n.literalChildren, b, func(c *node, b byte) int {
		return int(c.label[0]) - int(b)
	})
	if !found {
		return nil
	}
	return n.literalChildren[idx]
}

func commonPrefixLen(a, b []byte) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
