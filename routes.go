// Copyright 2024 The pathtree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

package pathtree

import "iter"

// RouteInfo is one entry of a Tree's route table, as yielded by Routes.
type RouteInfo[V any] struct {
	ID      int
	Pattern string
	Value   V
}

// Routes returns a range iterator over every route registered in the
// tree, in ascending id order. The route table is read when ranging
// begins: routes appended by Inserts during the range are not yielded,
// while an overwriting Insert during the range may or may not be seen.
func (t *Tree[V]) Routes() iter.Seq2[int, RouteInfo[V]] {
	return func(yield func(int, RouteInfo[V]) bool) {
		for id, e := range t.routes {
			info := RouteInfo[V]{ID: id, Pattern: renderPattern(e.pieces), Value: e.value}
			if !yield(id, info) {
				return
			}
		}
	}
}
