// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultfmt

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

// A Writer writes result files in the format the benchmark itself
// emits. It is used to build fixtures and by tools that stand in for
// the benchmark.
type Writer struct {
	// Indices is the number of input records the benchmark ran
	// over. The benchmark ends every file with a line listing the
	// index of each of them, so for real runs this line runs to
	// hundreds of kilobytes.
	Indices int

	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a writer that writes result content to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write writes rec. Execution time is rounded to whole milliseconds,
// as the benchmark does.
func (w *Writer) Write(rec Record) error {
	fmt.Fprintf(&w.buf, "ExecutionTime: %.0f ms\n", rec.ExecTimeMs)
	fmt.Fprintf(&w.buf, "NumberOfHandledCollision: %d\n", rec.Collisions)
	var num []byte
	for i := 0; i < w.Indices; i++ {
		if i > 0 {
			w.buf.WriteByte(',')
		}
		num = strconv.AppendInt(num[:0], int64(i), 10)
		w.buf.Write(num)
	}
	w.buf.WriteByte('\n')

	// Writes to the buffer can't fail, so we only have to check
	// the flush.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

// WriteFile writes rec, followed by an index line of the given length,
// to dir under the name FormatName(tag, p) and returns the file's path.
func WriteFile(dir, tag string, p Point, rec Record, indices int) (string, error) {
	path := filepath.Join(dir, FormatName(tag, p))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	w := NewWriter(f)
	w.Indices = indices
	if err := w.Write(rec); err != nil {
		f.Close()
		return "", errors.Wrapf(err, "writing %s", path)
	}
	return path, f.Close()
}
