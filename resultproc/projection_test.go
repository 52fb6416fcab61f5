// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProjection(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Projection
	}{
		{"dataSize,tableSize", ByThreads},
		{"data-size, threads", ByTableSize},
		{"table,data", Projection{Fixed: [2]Dim{TableSize, DataSize}, Free: Threads}},
		{"THREADS,tsize", Projection{Fixed: [2]Dim{Threads, TableSize}, Free: DataSize}},
	} {
		got, err := ParseProjection(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}
}

func TestParseProjectionErrors(t *testing.T) {
	for _, test := range []struct {
		in, err string
	}{
		{"dataSize", `projection "dataSize": want two dimensions, have 1`},
		{"a,b,c", `projection "a,b,c": want two dimensions, have 3`},
		{"dataSize,color", `projection "dataSize,color": unknown dimension "color"`},
		{"threads,t", `projection "threads,t": dimension threads fixed twice`},
	} {
		_, err := ParseProjection(test.in)
		assert.EqualError(t, err, test.err, test.in)
	}
}

func TestProject(t *testing.T) {
	k, v := ByThreads.Project(pt(150, 4, 60))
	assert.Equal(t, Key{150, 60}, k)
	assert.Equal(t, 4, v)

	k, v = ByTableSize.Project(pt(150, 4, 60))
	assert.Equal(t, Key{150, 4}, k)
	assert.Equal(t, 60, v)

	assert.Equal(t, "dataSize,tableSize", ByThreads.String())
	assert.Equal(t, "data=150, table=60", Key{150, 60}.Label(ByThreads))
}

func TestDimNames(t *testing.T) {
	for _, d := range Dims {
		got, err := ParseDim(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	assert.Equal(t, "Dim(7)", Dim(7).String())
	assert.Equal(t, "Number of Threads", Threads.Title())
}
