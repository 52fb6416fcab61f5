// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/hako/durafmt"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/hashbench/hashbench/resultfmt"
)

// A Driver runs a sequence of Points through an Invoker, one at a time.
//
// A failed run is logged and recorded in the Summary; the Driver then
// moves on to the next Point. Nothing is retried. The Driver has no
// timeout or cancellation: if an invocation never returns, Run blocks.
type Driver struct {
	Invoker Invoker

	// Input returns the input file for a data size. If nil, every
	// run is given an empty input path.
	Input func(dataSize int) string

	// Delay is the pause between successive invocations. It only
	// eases resource contention on the benchmark machine; results
	// do not depend on it.
	Delay time.Duration

	// Skip is the number of leading Points to pass over, used to
	// resume an interrupted sweep.
	Skip int

	// Log receives progress and failures. If nil, logging is
	// discarded.
	Log logrus.FieldLogger

	// Out receives a one-line status after each run. If nil, it is
	// discarded.
	Out io.Writer

	// sleep replaces time.Sleep in tests.
	sleep func(time.Duration)
}

// A Summary describes a completed Run.
type Summary struct {
	Total     int // number of Points given to Run
	Skipped   int
	Succeeded int
	Failed    []*InvocationError
	Elapsed   time.Duration
}

// Err returns every failure of the run as a single error, or nil if
// every invoked Point succeeded.
func (s *Summary) Err() error {
	var errs *multierror.Error
	for _, f := range s.Failed {
		errs = multierror.Append(errs, f)
	}
	return errs.ErrorOrNil()
}

func (s *Summary) String() string {
	return fmt.Sprintf("%d runs: %d succeeded, %d failed, %d skipped in %s",
		s.Total, s.Succeeded, len(s.Failed), s.Skipped, durafmt.Parse(s.Elapsed.Round(time.Millisecond)))
}

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
)

// Run invokes d.Invoker for each Point after the first d.Skip, in order.
func (d *Driver) Run(points []resultfmt.Point) *Summary {
	log := d.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	out := d.Out
	if out == nil {
		out = io.Discard
	}
	sleep := d.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	start := time.Now()
	sum := &Summary{Total: len(points)}
	ran := 0
	for i, p := range points {
		if i < d.Skip {
			sum.Skipped++
			continue
		}
		if ran > 0 && d.Delay > 0 {
			sleep(d.Delay)
		}
		ran++

		var input string
		if d.Input != nil {
			input = d.Input(p.DataSize)
		}
		log.WithFields(logrus.Fields{
			"dataSize":  p.DataSize,
			"threads":   p.Threads,
			"tableSize": p.TableSize,
			"input":     input,
		}).Infof("Progress: %d/%d", i+1, len(points))

		if err := d.Invoker.Invoke(p, input); err != nil {
			ie, ok := err.(*InvocationError)
			if !ok {
				ie = &InvocationError{Point: p, Input: input, Err: err}
			}
			sum.Failed = append(sum.Failed, ie)
			log.WithError(ie.Err).WithField("stderr", ie.Diagnostic).Warnf("run %d/%d failed", i+1, len(points))
			failColor.Fprintf(out, "Error: %v\n", ie)
			continue
		}
		sum.Succeeded++
		okColor.Fprintln(out, "Success!")
	}
	sum.Elapsed = time.Since(start)
	return sum
}
