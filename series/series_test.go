// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashbench/hashbench/resultfmt"
	"github.com/hashbench/hashbench/resultproc"
)

func pt(ds, th, ts int) resultfmt.Point {
	return resultfmt.Point{DataSize: ds, Threads: th, TableSize: ts}
}

func rec(ms float64, coll int) resultfmt.Record {
	return resultfmt.Record{ExecTimeMs: ms, Collisions: coll}
}

func TestBuildOrdersByFreeValue(t *testing.T) {
	x := resultproc.NewIndex(resultproc.ByThreads)
	// Inserted out of order.
	require.NoError(t, x.Insert(pt(150, 4, 60), rec(10, 40)))
	require.NoError(t, x.Insert(pt(150, 1, 60), rec(40, 10)))
	require.NoError(t, x.Insert(pt(150, 2, 60), rec(20, 20)))

	ss := BuildAll(x)
	require.Len(t, ss, 1)
	s := ss[0]
	assert.Equal(t, resultproc.Key{A: 150, B: 60}, s.Key)
	assert.Equal(t, []int{1, 2, 4}, s.X)
	assert.Equal(t, []float64{40, 20, 10}, s.ExecTimeMs)
	assert.Equal(t, []int{10, 20, 40}, s.Collisions)
}

func TestBuildInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 100; iter++ {
		b := make(resultproc.Bucket)
		for n := r.Intn(20); n > 0; n-- {
			v := r.Intn(50)
			b[v] = rec(float64(v)*1.5, v*2)
		}
		s := Build(resultproc.ByThreads, resultproc.Key{}, b)
		require.Equal(t, len(b), s.Len())
		require.Len(t, s.ExecTimeMs, s.Len())
		require.Len(t, s.Collisions, s.Len())
		for i := range s.X {
			if i > 0 {
				require.Less(t, s.X[i-1], s.X[i], "X not strictly increasing: %v", s.X)
			}
			// Alignment: each position carries its own run.
			require.Equal(t, b[s.X[i]], rec(s.ExecTimeMs[i], s.Collisions[i]))
		}
	}
}

func TestBuildAllKeyOrder(t *testing.T) {
	x := resultproc.NewIndex(resultproc.ByThreads)
	for _, p := range []resultfmt.Point{pt(600, 1, 240), pt(150, 1, 90), pt(150, 1, 60), pt(300, 1, 60)} {
		require.NoError(t, x.Insert(p, rec(1, 1)))
	}
	var keys []resultproc.Key
	for _, s := range BuildAll(x) {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []resultproc.Key{{A: 150, B: 60}, {A: 150, B: 90}, {A: 300, B: 60}, {A: 600, B: 240}}, keys)
}
