// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/hashbench/hashbench/resultproc"
	"github.com/hashbench/hashbench/series"
)

func (a *app) chartsCmd() *cobra.Command {
	var o outputFlags
	var fixed string
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Chart every result series against the free dimension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := resultproc.ParseProjection(fixed)
			if err != nil {
				return err
			}
			if _, err := series.ParseFormats(o.format); err != nil {
				return err
			}
			x, err := a.load(&o, proj, nil)
			if err != nil {
				return err
			}
			a.log.Debugf("%d series over %s", x.Len(), proj.Free)
			return a.render(&o, series.BuildAll(x))
		},
	}
	o.register(cmd.Flags())
	cmd.Flags().StringVar(&fixed, "fixed", resultproc.ByThreads.String(), "comma-separated `dims` held fixed within a chart")
	return cmd
}
