// Copyright 2024 The pathtree Authors. All rights reserved.
// Use of this source code is governed by an Apache-2.0 license that can be
// found in the LICENSE file.

// Package pathtree implements a generic URL-path routing core: a radix
// tree that associates route patterns carrying named and wildcard
// parameters with user values, and resolves a concrete path to the
// best-matching pattern's value together with the captured parameter
// substrings.
//
// A Tree is built with New and populated with Insert. Insert never fails
// and is chainable:
//
//	t, err := pathtree.New[http.Handler]()
//	t.Insert("/users/:id", getUser).
//		Insert("/users/:id/repos/:repo", getRepo).
//		Insert("/assets/*", serveAsset)
//
// Find resolves a request path to the most specific matching route:
//
//	m, ok := t.Find("/users/gordon")
//	if ok {
//		m.Value().ServeHTTP(w, r) // an http.Handler in this example
//		for _, p := range m.Params() {
//			// p.Name == "id", p.Value == "gordon"
//		}
//	}
//
// pathtree is a routing core only: it has no HTTP server, no method
// demultiplexing, and no URL decoding. Those concerns belong to a layer
// built on top of it.
package pathtree
