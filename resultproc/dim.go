// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resultproc

import (
	"fmt"
	"strings"

	"github.com/hashbench/hashbench/resultfmt"
)

// A Dim is one of the three parameters of a benchmark run.
type Dim int

const (
	DataSize Dim = iota
	Threads
	TableSize
)

// Dims lists every Dim in the order the parameters appear in a result
// file name.
var Dims = [...]Dim{DataSize, Threads, TableSize}

func (d Dim) String() string {
	switch d {
	case DataSize:
		return "dataSize"
	case Threads:
		return "threads"
	case TableSize:
		return "tableSize"
	}
	return fmt.Sprintf("Dim(%d)", int(d))
}

// Short returns the label used for d in chart titles.
func (d Dim) Short() string {
	switch d {
	case DataSize:
		return "data"
	case Threads:
		return "threads"
	case TableSize:
		return "table"
	}
	return d.String()
}

// Title returns a human-readable name for d, such as "Table Size".
func (d Dim) Title() string {
	switch d {
	case DataSize:
		return "Data Size"
	case Threads:
		return "Number of Threads"
	case TableSize:
		return "Table Size"
	}
	return d.String()
}

// Get returns the value of d in p.
func (d Dim) Get(p resultfmt.Point) int {
	switch d {
	case DataSize:
		return p.DataSize
	case Threads:
		return p.Threads
	case TableSize:
		return p.TableSize
	}
	panic("unknown " + d.String())
}

var dimNames = map[string]Dim{
	"datasize":   DataSize,
	"data-size":  DataSize,
	"data_size":  DataSize,
	"data":       DataSize,
	"d":          DataSize,
	"threads":    Threads,
	"thread":     Threads,
	"t":          Threads,
	"tablesize":  TableSize,
	"table-size": TableSize,
	"table_size": TableSize,
	"tsize":      TableSize,
	"table":      TableSize,
}

// ParseDim parses a dimension name. Names are case-insensitive and
// accept the common spellings "dataSize", "data-size", "data_size",
// "data", and likewise for the other dimensions.
func ParseDim(name string) (Dim, error) {
	d, ok := dimNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown dimension %q", name)
	}
	return d, nil
}
