// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashbench/hashbench/resultfmt"
)

// fakeInvoker records invocations and fails the Points in fail.
type fakeInvoker struct {
	calls []string
	fail  map[resultfmt.Point]bool
}

func (f *fakeInvoker) Invoke(p resultfmt.Point, input string) error {
	f.calls = append(f.calls, fmt.Sprintf("%d/%d/%d %s", p.DataSize, p.Threads, p.TableSize, input))
	if f.fail[p] {
		return &InvocationError{Point: p, Input: input, Diagnostic: "Empty file\n", Err: errors.New("exit status 1")}
	}
	return nil
}

func inputPath(ds int) string { return fmt.Sprintf("data/%dK_set1.txt", ds) }

func TestDriverRun(t *testing.T) {
	space := Space{DataSizes: []int{150}, Threads: []int{1, 2}, Multipliers: []int{2, 3}}
	bad := resultfmt.Point{DataSize: 150, Threads: 1, TableSize: 90}
	inv := &fakeInvoker{fail: map[resultfmt.Point]bool{bad: true}}
	logger, hook := test.NewNullLogger()
	var out bytes.Buffer
	var slept []time.Duration

	d := &Driver{
		Invoker: inv,
		Input:   inputPath,
		Delay:   time.Second,
		Log:     logger,
		Out:     &out,
		sleep:   func(d time.Duration) { slept = append(slept, d) },
	}
	sum := d.Run(space.Points())

	// The failure does not stop the sweep.
	assert.Equal(t, []string{
		"150/1/60 data/150K_set1.txt",
		"150/1/90 data/150K_set1.txt",
		"150/2/60 data/150K_set1.txt",
		"150/2/90 data/150K_set1.txt",
	}, inv.calls)
	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 3, sum.Succeeded)
	assert.Equal(t, 0, sum.Skipped)
	require.Len(t, sum.Failed, 1)
	assert.Equal(t, bad, sum.Failed[0].Point)

	// Delay only between runs.
	assert.Equal(t, []time.Duration{time.Second, time.Second, time.Second}, slept)

	var merr *multierror.Error
	require.True(t, errors.As(sum.Err(), &merr))
	assert.Len(t, merr.Errors, 1)
	assert.Contains(t, sum.Err().Error(), "Empty file")

	assert.Contains(t, out.String(), "Success!")
	assert.Contains(t, out.String(), "Error: run dataSize=150 threads=1 tableSize=90: exit status 1: Empty file")

	var warns int
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warns++
			assert.Equal(t, "Empty file\n", e.Data["stderr"])
		}
	}
	assert.Equal(t, 1, warns)
	assert.Equal(t, "Progress: 4/4", hook.LastEntry().Message)
	assert.Equal(t, 150, hook.LastEntry().Data["dataSize"])
}

func TestDriverSkip(t *testing.T) {
	space := Space{DataSizes: []int{150, 300}, Threads: []int{1}, Multipliers: []int{2, 3}}
	inv := &fakeInvoker{}
	d := &Driver{Invoker: inv, Input: inputPath, Skip: 3, sleep: func(time.Duration) { t.Fatal("unexpected sleep") }}
	sum := d.Run(space.Points())
	assert.Equal(t, []string{"300/1/120 data/300K_set1.txt"}, inv.calls)
	assert.Equal(t, 3, sum.Skipped)
	assert.Equal(t, 1, sum.Succeeded)
	assert.NoError(t, sum.Err())
	assert.Contains(t, sum.String(), "4 runs: 1 succeeded, 0 failed, 3 skipped in ")
}

func TestDriverPlainError(t *testing.T) {
	p := resultfmt.Point{DataSize: 1, Threads: 1, TableSize: 0}
	d := &Driver{
		Invoker: InvokerFunc(func(resultfmt.Point, string) error { return errors.New("boom") }),
		Input:   inputPath,
	}
	sum := d.Run([]resultfmt.Point{p})
	require.Len(t, sum.Failed, 1)
	assert.Equal(t, p, sum.Failed[0].Point)
	assert.Equal(t, "data/1K_set1.txt", sum.Failed[0].Input)
	assert.EqualError(t, sum.Failed[0], "run dataSize=1 threads=1 tableSize=0: boom")
}

func TestDriverNoInput(t *testing.T) {
	inv := &fakeInvoker{}
	d := &Driver{Invoker: inv}
	sum := d.Run([]resultfmt.Point{{DataSize: 150, Threads: 2, TableSize: 60}})
	assert.Equal(t, []string{"150/2/60 "}, inv.calls)
	assert.Equal(t, 1, sum.Succeeded)
}
