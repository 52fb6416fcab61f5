// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resultfmt reads and writes the result files produced by one
// run of the concurrent hash table benchmark.
//
// Each run writes a single text file whose name encodes the run's
// parameters and whose content reports the run's metrics:
//
//	results/Results_<free text>_<dataSize>_<threads>_<tableSize>.txt
//
//	ExecutionTime: 123 ms
//	NumberOfHandledCollision: 7
//	...
//
// ParseName decodes the parameters from a file name, ParseRecord
// extracts the metrics from the file content, and Files scans a whole
// result directory, reporting per-file problems as entries rather than
// stopping.
//
// This package is designed to be used with the higher-level packages
// resultproc and series.
package resultfmt

import "fmt"

// A Point fully specifies one benchmark run.
type Point struct {
	DataSize  int
	Threads   int
	TableSize int
}

func (p Point) String() string {
	return fmt.Sprintf("dataSize=%d threads=%d tableSize=%d", p.DataSize, p.Threads, p.TableSize)
}

// A Record is the pair of metrics reported by one benchmark run.
// Records are values; a Record only exists once both metrics were
// found.
type Record struct {
	ExecTimeMs float64 // wall-clock time in milliseconds
	Collisions int     // handled collision count
}

// A Result is a successfully scanned result file.
type Result struct {
	// File is the base name of the result file.
	File string

	Point
	Record
}

// An Entry is one item produced by Files.Scan. It is either a *Result
// or one of the per-file errors *FormatError and *MissingFieldError.
type Entry interface {
	// Pos returns the name of the file this Entry describes.
	Pos() string
}

func (r *Result) Pos() string { return r.File }
