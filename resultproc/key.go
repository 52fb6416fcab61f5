// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultproc

import (
	"fmt"
	"sort"
)

// A Key holds the values of a Projection's two fixed dimensions, in
// Projection order. Keys are comparable and may be used as map keys.
type Key struct {
	A, B int
}

// Less reports whether k sorts before o. Keys are ordered lexically:
// first by A, then by B.
func (k Key) Less(o Key) bool {
	if k.A != o.A {
		return k.A < o.A
	}
	return k.B < o.B
}

func (k Key) String() string {
	return fmt.Sprintf("%d,%d", k.A, k.B)
}

// Label returns k as a comma-separated sequence of name=value pairs
// using the short names of proj's fixed dimensions, such as
// "data=150, table=60".
func (k Key) Label(proj Projection) string {
	return fmt.Sprintf("%s=%d, %s=%d", proj.Fixed[0].Short(), k.A, proj.Fixed[1].Short(), k.B)
}

// SortKeys sorts a slice of Keys using Key.Less.
func SortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
}
