// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hashbench/hashbench/sweep"
)

func (a *app) sweepCmd() *cobra.Command {
	var (
		configPath string
		binary     string
		delay      time.Duration
		skip       int
		dryRun     bool
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the benchmark over every point of the parameter sweep",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := sweep.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = sweep.LoadConfig(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("binary") {
				cfg.Binary = binary
			}
			if cmd.Flags().Changed("delay") {
				cfg.Delay = delay
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if skip < 0 {
				return fmt.Errorf("negative --skip %d", skip)
			}

			points := cfg.Points()
			if dryRun {
				inv := cfg.Invoker()
				for i := skip; i < len(points); i++ {
					fmt.Fprintln(a.stdout, inv.CommandLine(points[i], cfg.InputPath(points[i].DataSize)))
				}
				return nil
			}

			todo := len(points) - skip
			if todo < 0 {
				todo = 0
			}
			fmt.Fprintf(a.stdout, "Starting experiments... (%s runs)\n", humanize.Comma(int64(todo)))
			d := &sweep.Driver{
				Invoker: a.newInvoker(cfg),
				Input:   cfg.InputPath,
				Delay:   cfg.Delay,
				Skip:    skip,
				Log:     a.log,
				Out:     a.stdout,
			}
			sum := d.Run(points)
			a.log.Info(sum)
			if err := sum.Err(); err != nil {
				a.log.WithError(err).Warnf("%d runs failed", len(sum.Failed))
			}
			fmt.Fprintln(a.stdout, "All experiments completed!")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "read the sweep configuration from YAML `file`")
	f.StringVar(&binary, "binary", "", "benchmark executable `path`")
	f.DurationVar(&delay, "delay", 0, "pause between runs")
	f.IntVar(&skip, "skip", 0, "skip the first `n` runs to resume a sweep")
	f.BoolVar(&dryRun, "dry-run", false, "print the benchmark commands without running them")
	return cmd
}
