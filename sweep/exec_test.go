// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashbench/hashbench/resultfmt"
)

func TestExecInvokerArgs(t *testing.T) {
	e := &ExecInvoker{Binary: "./bin/bench"}
	p := resultfmt.Point{DataSize: 150, Threads: 4, TableSize: 60}
	assert.Equal(t, []string{"--data_size", "150K", "--threads", "4", "--tsize", "60K", "--input", "data/150K_set1.txt"},
		e.Args(p, "data/150K_set1.txt"))
	assert.Equal(t, "./bin/bench --data_size 150K --threads 4 --tsize 60K --input in.txt", e.CommandLine(p, "in.txt"))

	e.Unit = "M"
	assert.Equal(t, "150M", e.Args(p, "x")[1])
}

// writeScript writes an executable shell script and returns its path.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found")
	}
	path := filepath.Join(t.TempDir(), "bench.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0777))
	return path
}

func TestExecInvokerInvoke(t *testing.T) {
	bin := writeScript(t, `echo "args: $*"`+"\n")
	var out bytes.Buffer
	e := &ExecInvoker{Binary: bin, Stdout: &out}
	p := resultfmt.Point{DataSize: 300, Threads: 2, TableSize: 180}
	require.NoError(t, e.Invoke(p, "in.txt"))
	assert.Equal(t, "args: --data_size 300K --threads 2 --tsize 180K --input in.txt\n", out.String())
}

func TestExecInvokerFailure(t *testing.T) {
	bin := writeScript(t, "echo 'Empty file' >&2\nexit 1\n")
	e := &ExecInvoker{Binary: bin}
	p := resultfmt.Point{DataSize: 300, Threads: 2, TableSize: 180}
	err := e.Invoke(p, "in.txt")
	var ie *InvocationError
	require.True(t, errors.As(err, &ie), "got %v", err)
	assert.Equal(t, p, ie.Point)
	assert.Equal(t, "Empty file\n", ie.Diagnostic)
	var exitErr *exec.ExitError
	assert.True(t, errors.As(err, &exitErr))
}

func TestExecInvokerMissingBinary(t *testing.T) {
	e := &ExecInvoker{Binary: filepath.Join(t.TempDir(), "nope")}
	err := e.Invoke(resultfmt.Point{}, "in.txt")
	var ie *InvocationError
	require.True(t, errors.As(err, &ie))
	assert.Empty(t, ie.Diagnostic)
}

func TestExecInvokerDir(t *testing.T) {
	bin := writeScript(t, "pwd\n")
	dir := t.TempDir()
	var out bytes.Buffer
	e := &ExecInvoker{Binary: bin, Dir: dir, Stdout: &out}
	require.NoError(t, e.Invoke(resultfmt.Point{}, "in.txt"))
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(string(bytes.TrimSpace(out.Bytes())))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
