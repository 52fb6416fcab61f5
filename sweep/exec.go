// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"bytes"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/hashbench/hashbench/resultfmt"
)

// DefaultUnit is the size suffix appended to data and table sizes on
// the benchmark's command line.
const DefaultUnit = "K"

// An ExecInvoker runs the benchmark binary as a subprocess.
type ExecInvoker struct {
	// Binary is the path of the benchmark executable.
	Binary string

	// Dir is the working directory of the benchmark. The benchmark
	// writes its result files relative to it. If empty, the
	// current directory is used.
	Dir string

	// Unit is the size suffix; DefaultUnit if empty.
	Unit string

	// Stdout receives the benchmark's standard output. If nil, it
	// is discarded.
	Stdout io.Writer
}

// Args returns the benchmark's arguments for p and input:
//
//	--data_size <dataSize><unit> --threads <threads> --tsize <tableSize><unit> --input <input>
func (e *ExecInvoker) Args(p resultfmt.Point, input string) []string {
	unit := e.Unit
	if unit == "" {
		unit = DefaultUnit
	}
	return []string{
		"--data_size", strconv.Itoa(p.DataSize) + unit,
		"--threads", strconv.Itoa(p.Threads),
		"--tsize", strconv.Itoa(p.TableSize) + unit,
		"--input", input,
	}
}

// CommandLine returns the command Invoke runs for p, for display.
func (e *ExecInvoker) CommandLine(p resultfmt.Point, input string) string {
	return strings.Join(append([]string{e.Binary}, e.Args(p, input)...), " ")
}

// Invoke runs the benchmark once and waits for it to exit.
func (e *ExecInvoker) Invoke(p resultfmt.Point, input string) error {
	cmd := exec.Command(e.Binary, e.Args(p, input)...)
	cmd.Dir = e.Dir
	var stderr bytes.Buffer
	cmd.Stdout = e.Stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return &InvocationError{Point: p, Input: input, Diagnostic: stderr.String(), Err: err}
	}
	return nil
}
