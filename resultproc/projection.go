// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultproc

import (
	"fmt"
	"strings"

	"github.com/hashbench/hashbench/resultfmt"
)

// A Projection selects the two dimensions held fixed within a chart
// and the free dimension that varies along its x axis.
type Projection struct {
	Fixed [2]Dim
	Free  Dim
}

// ByThreads is the default projection of the charts command:
// data size and table size are fixed, thread count varies.
var ByThreads = Projection{Fixed: [2]Dim{DataSize, TableSize}, Free: Threads}

// ByTableSize fixes data size and thread count and varies table size.
var ByTableSize = Projection{Fixed: [2]Dim{DataSize, Threads}, Free: TableSize}

// NewProjection returns the Projection that fixes a and b, in that
// order, and leaves the remaining dimension free.
func NewProjection(a, b Dim) (Projection, error) {
	if a == b {
		return Projection{}, fmt.Errorf("dimension %s fixed twice", a)
	}
	for _, d := range Dims {
		if d != a && d != b {
			return Projection{Fixed: [2]Dim{a, b}, Free: d}, nil
		}
	}
	return Projection{}, fmt.Errorf("bad dimensions %s, %s", a, b)
}

// ParseProjection parses a comma-separated list of exactly two
// dimension names, such as "dataSize,tableSize".
func ParseProjection(fixed string) (Projection, error) {
	names := strings.Split(fixed, ",")
	if len(names) != 2 {
		return Projection{}, fmt.Errorf("projection %q: want two dimensions, have %d", fixed, len(names))
	}
	var dims [2]Dim
	for i, name := range names {
		d, err := ParseDim(name)
		if err != nil {
			return Projection{}, fmt.Errorf("projection %q: %w", fixed, err)
		}
		dims[i] = d
	}
	p, err := NewProjection(dims[0], dims[1])
	if err != nil {
		return Projection{}, fmt.Errorf("projection %q: %w", fixed, err)
	}
	return p, nil
}

// Project returns the Key of p and the value of its free dimension.
func (proj Projection) Project(p resultfmt.Point) (Key, int) {
	return Key{proj.Fixed[0].Get(p), proj.Fixed[1].Get(p)}, proj.Free.Get(p)
}

func (proj Projection) String() string {
	return fmt.Sprintf("%s,%s", proj.Fixed[0], proj.Fixed[1])
}
