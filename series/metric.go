// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"fmt"

	"github.com/hashbench/hashbench/resultproc"
)

// A Metric is one of the measurements a Series carries.
type Metric int

const (
	ExecTime Metric = iota
	Collisions
)

// Metrics lists every Metric. Each Series gets one chart per Metric.
var Metrics = []Metric{ExecTime, Collisions}

func (m Metric) String() string {
	switch m {
	case ExecTime:
		return "execTime"
	case Collisions:
		return "collisions"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// Title is the name of m in chart titles.
func (m Metric) Title() string {
	switch m {
	case ExecTime:
		return "Exec Time"
	case Collisions:
		return "Collisions"
	}
	return m.String()
}

// Label is the y-axis label for m.
func (m Metric) Label() string {
	switch m {
	case ExecTime:
		return "Time (ms)"
	case Collisions:
		return "Handled Collisions"
	}
	return m.String()
}

// Values returns m's measurements in s as float64s, aligned with s.X.
func (m Metric) Values(s *Series) []float64 {
	switch m {
	case ExecTime:
		return append([]float64(nil), s.ExecTimeMs...)
	case Collisions:
		vs := make([]float64, len(s.Collisions))
		for i, c := range s.Collisions {
			vs[i] = float64(c)
		}
		return vs
	}
	panic("unknown " + m.String())
}

// FileStem returns the base file name, without extension, of m's
// chart of s. It depends only on m, the free dimension and the Key, so
// rerunning over the same results overwrites earlier charts instead of
// adding new ones.
func FileStem(m Metric, s *Series) string {
	var stem string
	switch s.Proj.Free {
	case resultproc.Threads:
		stem = m.String()
	case resultproc.TableSize:
		switch m {
		case ExecTime:
			stem = "exec_vs_table"
		case Collisions:
			stem = "coll_vs_table"
		}
	}
	if stem == "" {
		stem = m.String() + "_vs_" + s.Proj.Free.String()
	}
	return fmt.Sprintf("%s_%d_%d", stem, s.Key.A, s.Key.B)
}

// Title returns the title of m's chart of s, such as
// "Exec Time (data=150, table=60)".
func Title(m Metric, s *Series) string {
	if s.Proj.Free == resultproc.Threads {
		return fmt.Sprintf("%s (%s)", m.Title(), s.Key.Label(s.Proj))
	}
	return fmt.Sprintf("%s vs %s (%s)", m.Title(), s.Proj.Free.Title(), s.Key.Label(s.Proj))
}
