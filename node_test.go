// Copyright 2024 The pathtree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package pathtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeInsertBytesSplitsOnPartialPrefix(t *testing.T) {
	root := newLiteralNode([]byte("/ab"))
	leaf := root.insertBytes([]byte("/ac"))

	require.NotNil(t, leaf)
	assert.Equal(t, "/a", string(root.label))
	require.Len(t, root.literalChildren, 2)
	assert.Equal(t, "b", string(root.literalChildren[0].label))
	assert.Equal(t, "c", string(root.literalChildren[1].label))
	assert.Same(t, root.literalChildren[1], leaf)
}

func TestNodeInsertBytesExactLabelReturnsSameNode(t *testing.T) {
	root := newLiteralNode([]byte("/ab"))
	got := root.insertBytes([]byte("/ab"))
	assert.Same(t, root, got)
}

func TestNodeInsertBytesSplitPreservesTerminalAndChildren(t *testing.T) {
	root := newLiteralNode([]byte("/abc"))
	root.terminal = 7
	child := newLiteralNode([]byte("/x"))
	root.literalChildren = []*node{child}

	root.insertBytes([]byte("/ab"))

	assert.Equal(t, "/ab", string(root.label))
	assert.Equal(t, -1, root.terminal)
	require.Len(t, root.literalChildren, 1)
	demoted := root.literalChildren[0]
	assert.Equal(t, "c", string(demoted.label))
	assert.Equal(t, 7, demoted.terminal)
	require.Len(t, demoted.literalChildren, 1)
	assert.Same(t, child, demoted.literalChildren[0])
}

func TestNodeLiteralChildrenStaySortedByFirstByte(t *testing.T) {
	root := newLiteralNode([]byte("/"))
	root.insertLiteralChild([]byte("c"))
	root.insertLiteralChild([]byte("a"))
	root.insertLiteralChild([]byte("b"))

	require.Len(t, root.literalChildren, 3)
	assert.Equal(t, byte('a'), root.literalChildren[0].label[0])
	assert.Equal(t, byte('b'), root.literalChildren[1].label[0])
	assert.Equal(t, byte('c'), root.literalChildren[2].label[0])
}

func TestNodeInsertParameterDedupesByKind(t *testing.T) {
	root := newLiteralNode([]byte("/"))
	a := root.insertParameter(KindZeroOrMore)
	b := root.insertParameter(KindNormal)
	c := root.insertParameter(KindZeroOrMore)

	assert.Same(t, a, c)
	require.Len(t, root.paramChildren, 2)
	assert.Equal(t, KindNormal, root.paramChildren[0].kind)
	assert.Equal(t, KindZeroOrMore, root.paramChildren[1].kind)
	assert.NotSame(t, a, b)
}

func TestNodeLiteralChildLookup(t *testing.T) {
	root := newLiteralNode([]byte("/"))
	root.insertLiteralChild([]byte("abc"))
	root.insertLiteralChild([]byte("xyz"))

	assert.NotNil(t, root.literalChild('a'))
	assert.NotNil(t, root.literalChild('x'))
	assert.Nil(t, root.literalChild('q'))
}

func TestNodeParamNodeSkipsPrefixCompareOnInsert(t *testing.T) {
	param := newParamNode(KindNormal)
	leaf := param.insertBytes([]byte("/edit"))

	require.Len(t, param.literalChildren, 1)
	assert.Same(t, param.literalChildren[0], leaf)
	assert.Equal(t, "/edit", string(leaf.label))
}

func TestCommonPrefixLen(t *testing.T) {
	assert.Equal(t, 2, commonPrefixLen([]byte("ab"), []byte("abc")))
	assert.Equal(t, 0, commonPrefixLen([]byte("a"), []byte("b")))
	assert.Equal(t, 3, commonPrefixLen([]byte("abc"), []byte("abc")))
	assert.Equal(t, 0, commonPrefixLen([]byte(""), []byte("abc")))
}
