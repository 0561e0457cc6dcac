// Copyright 2024 The pathtree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package pathtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPatternRoundTrip(t *testing.T) {
	tr, err := New[int]()
	require.NoError(t, err)
	tr.Insert("/api/:day/:month?/:year?", 0)

	m, ok := tr.Find("/api/1/")
	require.True(t, ok)

	rendered := m.Pattern()
	reparsed := parsePattern(rendered)
	assert.Equal(t, m.Pieces(), reparsed)
}

func TestMatchPatternRoundTripAnonymousWildcard(t *testing.T) {
	tr, err := New[int]()
	require.NoError(t, err)
	tr.Insert("/src/*", 0)

	m, ok := tr.Find("/src/subdir/x.rs")
	require.True(t, ok)

	rendered := m.Pattern()
	assert.Equal(t, "/src/*", rendered)
	assert.Equal(t, m.Pieces(), parsePattern(rendered))
}

func TestMatchParamsOrderFollowsPiecesNotInsertionOfSiblings(t *testing.T) {
	tr, err := New[int]()
	require.NoError(t, err)
	tr.Insert("/shop/:category/item/:sku", 0)

	m, ok := tr.Find("/shop/tools/item/abc123")
	require.True(t, ok)

	params := m.Params()
	require.Len(t, params, 2)
	assert.Equal(t, "category", params[0].Name)
	assert.Equal(t, "tools", params[0].Value)
	assert.Equal(t, "sku", params[1].Name)
	assert.Equal(t, "abc123", params[1].Value)
}

func TestMatchParamsEmptyWhenNoParametersInPattern(t *testing.T) {
	tr, err := New[int]()
	require.NoError(t, err)
	tr.Insert("/healthz", 0)

	m, ok := tr.Find("/healthz")
	require.True(t, ok)
	assert.Nil(t, m.Params())
}

func TestMatchValueAndID(t *testing.T) {
	tr, err := New[string]()
	require.NoError(t, err)
	tr.Insert("/users/:id", "handler-a")

	m, ok := tr.Find("/users/7")
	require.True(t, ok)
	assert.Equal(t, "handler-a", m.Value())
	assert.Equal(t, 0, m.ID())
}
