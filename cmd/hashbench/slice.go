// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashbench/hashbench/resultproc"
	"github.com/hashbench/hashbench/series"
)

func (a *app) sliceCmd() *cobra.Command {
	var o outputFlags
	var threads, dataSize int
	cmd := &cobra.Command{
		Use:   "slice",
		Short: "Chart results against table size for one thread count and data size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := series.ParseFormats(o.format); err != nil {
				return err
			}
			filter := resultproc.Filter{
				resultproc.Threads:  threads,
				resultproc.DataSize: dataSize,
			}
			x, err := a.load(&o, resultproc.ByTableSize, filter)
			if err != nil {
				return err
			}
			if x.Len() == 0 {
				fmt.Fprintln(a.stderr, "No matching results found.")
				return &resultproc.NoMatchingDataError{Filter: filter}
			}
			return a.render(&o, series.BuildAll(x))
		},
	}
	o.register(cmd.Flags())
	cmd.Flags().IntVarP(&threads, "threads", "t", 0, "thread `count` to chart")
	cmd.Flags().IntVarP(&dataSize, "data-size", "d", 0, "data `size` to chart")
	cmd.MarkFlagRequired("threads")
	cmd.MarkFlagRequired("data-size")
	return cmd
}
