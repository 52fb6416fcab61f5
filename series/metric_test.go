// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hashbench/hashbench/resultproc"
)

func TestFileStemAndTitle(t *testing.T) {
	byThreads := &Series{Proj: resultproc.ByThreads, Key: resultproc.Key{A: 150, B: 60}}
	byTable := &Series{Proj: resultproc.ByTableSize, Key: resultproc.Key{A: 150, B: 4}}
	byData := &Series{
		Proj: resultproc.Projection{Fixed: [2]resultproc.Dim{resultproc.Threads, resultproc.TableSize}, Free: resultproc.DataSize},
		Key:  resultproc.Key{A: 8, B: 90},
	}

	for _, test := range []struct {
		m     Metric
		s     *Series
		stem  string
		title string
	}{
		{ExecTime, byThreads, "execTime_150_60", "Exec Time (data=150, table=60)"},
		{Collisions, byThreads, "collisions_150_60", "Collisions (data=150, table=60)"},
		{ExecTime, byTable, "exec_vs_table_150_4", "Exec Time vs Table Size (data=150, threads=4)"},
		{Collisions, byTable, "coll_vs_table_150_4", "Collisions vs Table Size (data=150, threads=4)"},
		{ExecTime, byData, "execTime_vs_dataSize_8_90", "Exec Time vs Data Size (threads=8, table=90)"},
	} {
		assert.Equal(t, test.stem, FileStem(test.m, test.s))
		assert.Equal(t, test.title, Title(test.m, test.s))
	}
}

func TestMetricValues(t *testing.T) {
	s := &Series{X: []int{1, 2}, ExecTimeMs: []float64{1.5, 2.5}, Collisions: []int{3, 4}}
	assert.Equal(t, []float64{1.5, 2.5}, ExecTime.Values(s))
	assert.Equal(t, []float64{3, 4}, Collisions.Values(s))

	// Values returns a copy.
	v := ExecTime.Values(s)
	v[0] = 99
	assert.Equal(t, 1.5, s.ExecTimeMs[0])
}
