// Copyright 2024 The pathtree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package pathtree

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	tr, err := New[int]()
	require.NoError(t, err)
	assert.Equal(t, 64, tr.maxParams)
	assert.Nil(t, tr.logger)
}

func TestWithLoggerInstallsSlogLogger(t *testing.T) {
	tr, err := New[int](WithLogger(slog.NewTextHandler(noopWriter{}, nil)))
	require.NoError(t, err)
	assert.NotNil(t, tr.logger)
}

func TestWithLoggerNilHandlerIgnored(t *testing.T) {
	tr, err := New[int](WithLogger(nil))
	require.NoError(t, err)
	assert.Nil(t, tr.logger)
}

func TestWithRouteCapacityRejectsNegative(t *testing.T) {
	_, err := New[int](WithRouteCapacity(-1))
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestWithRouteCapacityPreallocates(t *testing.T) {
	tr, err := New[int](WithRouteCapacity(8))
	require.NoError(t, err)
	assert.Equal(t, 0, len(tr.routes))
	assert.Equal(t, 8, cap(tr.routes))
}

func TestWithMaxParamsRejectsNegative(t *testing.T) {
	_, err := New[int](WithMaxParams(-1))
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestWithMaxParamsOverridesDefault(t *testing.T) {
	tr, err := New[int](WithMaxParams(2))
	require.NoError(t, err)
	assert.Equal(t, 2, tr.maxParams)
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }
