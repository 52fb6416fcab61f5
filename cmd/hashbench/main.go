// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Hashbench runs a hash table benchmark over a parameter sweep and
// charts the results.
//
// Usage:
//
//	hashbench sweep [--config file] [--binary path] [--delay dur] [--skip n] [--dry-run]
//	hashbench charts [--results dir] [--out dir] [--fixed dims] [--format list] [--strict] [--csv] [--table]
//	hashbench slice -t threads -d dataSize [--results dir] [--out dir] [--format list] [--strict] [--csv] [--table]
//
// The sweep subcommand invokes the benchmark once for every combination
// of data size, thread count, and table size multiplier. The benchmark
// writes one result file per run, named
//
//	Results_<tag>_<dataSize>_<threads>_<tableSize>.txt
//
// and holding an execution time and a collision count:
//
//	ExecutionTime: 1234 ms
//	NumberOfHandledCollision: 56789
//
// The charts subcommand reads a directory of result files and draws,
// for every combination of the fixed dimensions (by default data size
// and table size), line charts of execution time and collisions against
// the remaining dimension. A thread axis is drawn on a log scale.
//
// The slice subcommand charts execution time and collisions against
// table size for a single thread count and data size. It exits with
// status 1 if no result matches.
//
// Malformed result files are reported on standard error and skipped.
// A missing or empty result directory is an error.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hashbench/hashbench/sweep"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	return newApp(stdout, stderr).run(args)
}

// An app holds the state shared by every subcommand.
type app struct {
	stdout, stderr io.Writer
	log            *logrus.Logger
	verbose        bool

	// newInvoker returns the Invoker used by the sweep subcommand.
	newInvoker func(cfg sweep.Config) sweep.Invoker
}

func newApp(stdout, stderr io.Writer) *app {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	a := &app{stdout: stdout, stderr: stderr, log: log}
	a.newInvoker = func(cfg sweep.Config) sweep.Invoker {
		inv := cfg.Invoker()
		inv.Stdout = a.stdout
		return inv
	}
	return a
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hashbench",
		Short:         "Run hash table benchmark sweeps and chart their results",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.verbose {
				a.log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debugging detail")
	root.AddCommand(a.chartsCmd(), a.sliceCmd(), a.sweepCmd())
	return root
}

func (a *app) run(args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(a.stderr, "hashbench: %v\n", err)
		return 1
	}
	return 0
}
