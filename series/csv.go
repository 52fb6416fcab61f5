// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes ss to out as CSV, one row per point. The header names
// the two fixed dimensions and the free dimension of the first Series;
// all Series are expected to share a Projection.
func WriteCSV(out io.Writer, ss []*Series) error {
	if len(ss) == 0 {
		return nil
	}
	w := csv.NewWriter(out)
	proj := ss[0].Proj
	w.Write([]string{proj.Fixed[0].String(), proj.Fixed[1].String(), proj.Free.String(), "execTimeMs", "collisions"})
	for _, s := range ss {
		a, b := strconv.Itoa(s.Key.A), strconv.Itoa(s.Key.B)
		for i, x := range s.X {
			w.Write([]string{
				a, b,
				strconv.Itoa(x),
				strconv.FormatFloat(s.ExecTimeMs[i], 'f', -1, 64),
				strconv.Itoa(s.Collisions[i]),
			})
		}
	}
	w.Flush()
	return w.Error()
}
