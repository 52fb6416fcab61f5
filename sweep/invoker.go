// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"fmt"
	"strings"

	"github.com/hashbench/hashbench/resultfmt"
)

// An Invoker runs the benchmark once for one Point.
//
// Invoke makes exactly one attempt and returns nil on success. On
// failure it returns an *InvocationError carrying any diagnostic text
// the benchmark printed. Invoke enforces no timeout: if the benchmark
// never exits, neither does Invoke.
type Invoker interface {
	Invoke(p resultfmt.Point, input string) error
}

// An InvocationError reports a failed benchmark run.
type InvocationError struct {
	Point resultfmt.Point
	Input string

	// Diagnostic is what the benchmark wrote to its error stream.
	Diagnostic string

	Err error // underlying error, such as an *exec.ExitError
}

func (e *InvocationError) Error() string {
	msg := fmt.Sprintf("run %s: %v", e.Point, e.Err)
	if d := strings.TrimSpace(e.Diagnostic); d != "" {
		msg += ": " + d
	}
	return msg
}

func (e *InvocationError) Unwrap() error { return e.Err }

// An InvokerFunc adapts an ordinary function to the Invoker interface.
type InvokerFunc func(p resultfmt.Point, input string) error

// Invoke calls f(p, input).
func (f InvokerFunc) Invoke(p resultfmt.Point, input string) error {
	return f(p, input)
}
