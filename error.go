// Copyright 2024 The pathtree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package pathtree

import "errors"

var (
	// ErrRouteNotFound is returned by Tree.Route when id is out of range.
	ErrRouteNotFound = errors.New("route not found")
	// ErrInvalidOption is returned by New when an Option rejects its
	// configured value.
	ErrInvalidOption = errors.New("invalid option")
)
