// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"io"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// WriteTable writes a one-line summary of each Series to out as an
// aligned text table: the Key, the free values present, the range of
// each metric, and the free value with the lowest execution time.
func WriteTable(out io.Writer, ss []*Series) {
	if len(ss) == 0 {
		return
	}
	proj := ss[0].Proj
	t := tablewriter.NewWriter(out)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetBorder(false)
	t.SetHeader([]string{
		proj.Fixed[0].String(),
		proj.Fixed[1].String(),
		proj.Free.String(),
		"time (ms)",
		"collisions",
		"fastest " + proj.Free.String(),
	})
	for _, s := range ss {
		if s.Len() == 0 {
			continue
		}
		xs := make([]string, len(s.X))
		fastest := 0
		for i, x := range s.X {
			xs[i] = strconv.Itoa(x)
			if s.ExecTimeMs[i] < s.ExecTimeMs[fastest] {
				fastest = i
			}
		}
		tlo, thi := stats.Bounds(s.ExecTimeMs)
		clo, chi := stats.Bounds(Collisions.Values(s))
		t.Append([]string{
			strconv.Itoa(s.Key.A),
			strconv.Itoa(s.Key.B),
			strings.Join(xs, ","),
			span(humanize.Ftoa(tlo), humanize.Ftoa(thi)),
			span(humanize.Comma(int64(clo)), humanize.Comma(int64(chi))),
			strconv.Itoa(s.X[fastest]),
		})
	}
	t.Render()
}

func span(lo, hi string) string {
	if lo == hi {
		return lo
	}
	return lo + "-" + hi
}
