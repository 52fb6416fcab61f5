// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sweep enumerates and runs the parameter sweep of a benchmark
// campaign.
//
// A Space describes the campaign as three ordered axes. Its Points are
// the Cartesian product of those axes in a fixed nested order, which is
// part of the contract: an interrupted sweep resumes by skipping a
// known prefix of the same sequence. A Driver runs the Points one at a
// time through an Invoker.
package sweep

import (
	"fmt"

	"github.com/hashbench/hashbench/resultfmt"
)

// TableSizeDivisor relates a data size to the base table size that
// multipliers scale.
const TableSizeDivisor = 5

// A Space is the set of parameters to benchmark.
type Space struct {
	DataSizes   []int `yaml:"dataSizes"`
	Threads     []int `yaml:"threads"`
	Multipliers []int `yaml:"multipliers"` // table size multipliers
}

// TableSize returns the table size benchmarked for dataSize and
// multiplier m: floor(dataSize/TableSizeDivisor) * m.
func TableSize(dataSize, m int) int {
	return dataSize / TableSizeDivisor * m
}

// Len returns the number of Points in s.
func (s Space) Len() int {
	return len(s.DataSizes) * len(s.Threads) * len(s.Multipliers)
}

// Validate reports an error if some axis of s is empty or holds a
// negative value.
func (s Space) Validate() error {
	for _, axis := range []struct {
		name string
		vals []int
	}{
		{"dataSizes", s.DataSizes},
		{"threads", s.Threads},
		{"multipliers", s.Multipliers},
	} {
		if len(axis.vals) == 0 {
			return fmt.Errorf("sweep: no %s", axis.name)
		}
		for _, v := range axis.vals {
			if v < 0 {
				return fmt.Errorf("sweep: negative value %d in %s", v, axis.name)
			}
		}
	}
	return nil
}

// Points returns every Point of s. Data size varies slowest and the
// table size multiplier fastest:
//
//	for each data size
//		for each thread count
//			for each multiplier
//
// The order is stable and callers may rely on it.
func (s Space) Points() []resultfmt.Point {
	pts := make([]resultfmt.Point, 0, s.Len())
	for _, ds := range s.DataSizes {
		for _, th := range s.Threads {
			for _, m := range s.Multipliers {
				pts = append(pts, resultfmt.Point{DataSize: ds, Threads: th, TableSize: TableSize(ds, m)})
			}
		}
	}
	return pts
}

// PowersOfTwo returns 1, 2, 4, ..., 2^(n-1).
func PowersOfTwo(n int) []int {
	vs := make([]int, n)
	for i := range vs {
		vs[i] = 1 << i
	}
	return vs
}
