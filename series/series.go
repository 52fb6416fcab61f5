// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series turns grouped benchmark results into plot-ready
// series and renders them as charts, CSV, or text tables.
package series

import (
	"github.com/hashbench/hashbench/resultproc"
)

// A Series is one Bucket of an Index laid out for plotting.
//
// X, ExecTimeMs and Collisions have the same length and are index
// aligned: position i of each describes the same run. X is strictly
// increasing.
type Series struct {
	Proj resultproc.Projection
	Key  resultproc.Key

	X          []int // values of Proj.Free
	ExecTimeMs []float64
	Collisions []int
}

// Build lays out bucket b, whose Records share Key key under proj, as
// a Series ordered by the free dimension.
func Build(proj resultproc.Projection, key resultproc.Key, b resultproc.Bucket) *Series {
	// Bucket keys are the free values themselves, so there are no
	// ties to break.
	xs := b.Values()
	s := &Series{
		Proj:       proj,
		Key:        key,
		X:          xs,
		ExecTimeMs: make([]float64, len(xs)),
		Collisions: make([]int, len(xs)),
	}
	for i, x := range xs {
		rec := b[x]
		s.ExecTimeMs[i] = rec.ExecTimeMs
		s.Collisions[i] = rec.Collisions
	}
	return s
}

// BuildAll builds a Series for every Key of x, in ascending Key order.
func BuildAll(x *resultproc.Index) []*Series {
	groups := x.Sorted()
	ss := make([]*Series, len(groups))
	for i, g := range groups {
		ss[i] = Build(x.Projection(), g.Key, g.Bucket)
	}
	return ss
}

// Len returns the number of points in s.
func (s *Series) Len() int {
	return len(s.X)
}
