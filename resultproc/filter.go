// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultproc

import (
	"fmt"
	"strings"

	"github.com/hashbench/hashbench/resultfmt"
)

// A Filter selects results whose parameters equal fixed values.
// An empty Filter matches everything.
type Filter map[Dim]int

// Match reports whether p has the value f requires in every dimension
// f constrains.
func (f Filter) Match(p resultfmt.Point) bool {
	for d, v := range f {
		if d.Get(p) != v {
			return false
		}
	}
	return true
}

// String returns f as "dim=value" pairs in Dim order.
func (f Filter) String() string {
	var parts []string
	for _, d := range Dims {
		if v, ok := f[d]; ok {
			parts = append(parts, fmt.Sprintf("%s=%d", d, v))
		}
	}
	return strings.Join(parts, " ")
}

// A NoMatchingDataError reports that no result matched a Filter.
type NoMatchingDataError struct {
	Filter Filter
}

func (e *NoMatchingDataError) Error() string {
	return fmt.Sprintf("no matching results found for %s", e.Filter)
}
