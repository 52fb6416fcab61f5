// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/hashbench/hashbench/resultfmt"
	"github.com/hashbench/hashbench/resultproc"
	"github.com/hashbench/hashbench/series"
)

// outputFlags are the flags shared by the charts and slice subcommands.
type outputFlags struct {
	results string
	out     string
	format  string
	strict  bool
	csv     bool
	table   bool
}

func (o *outputFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.results, "results", "results", "read result files from `dir`")
	fs.StringVar(&o.out, "out", ".", "write charts to `dir`")
	fs.StringVar(&o.format, "format", "png", "comma-separated chart `formats` (png, jpg, svg, pdf)")
	fs.BoolVar(&o.strict, "strict", false, "reject duplicate results instead of keeping the last")
	fs.BoolVar(&o.csv, "csv", false, "also write the series as CSV to standard output")
	fs.BoolVar(&o.table, "table", false, "also write a summary table to standard output")
}

// load scans the result directory into an Index over proj, keeping only
// results that match filter. Files whose names fall outside filter are
// not read. Unreadable or malformed files are logged and skipped.
func (a *app) load(o *outputFlags, proj resultproc.Projection, filter resultproc.Filter) (*resultproc.Index, error) {
	x := resultproc.NewIndex(proj)
	x.Strict = o.strict

	var skipped *multierror.Error
	files := &resultfmt.Files{Dir: o.results, Match: filter.Match}
	for files.Scan() {
		ent := files.Entry()
		switch e := ent.(type) {
		case *resultfmt.Result:
			if err := x.Insert(e.Point, e.Record); err != nil {
				a.log.WithFields(logrus.Fields{"file": e.File, "error": err}).Warn("skipping duplicate result")
				skipped = multierror.Append(skipped, err)
				continue
			}
			a.log.WithField("file", e.File).Debug(e.Point)
		case error:
			a.log.WithFields(logrus.Fields{"file": ent.Pos(), "error": e}).Warn("skipping file")
			skipped = multierror.Append(skipped, e)
		}
	}
	if err := files.Err(); err != nil {
		return nil, err
	}
	if err := skipped.ErrorOrNil(); err != nil {
		a.log.Warnf("skipped %d of the result files", len(skipped.Errors))
	}
	return x, nil
}

// render writes both metric charts of every series, then the optional
// CSV and table output.
func (a *app) render(o *outputFlags, ss []*series.Series) error {
	formats, err := series.ParseFormats(o.format)
	if err != nil {
		return err
	}
	opts := series.DefaultChartOptions()
	opts.Dir = o.out
	opts.Formats = formats
	for _, s := range ss {
		for _, m := range series.Metrics {
			paths, err := series.Chart(s, m, opts)
			for _, path := range paths {
				fmt.Fprintf(a.stdout, "  -> saved %s\n", path)
			}
			if err != nil {
				return err
			}
		}
	}
	if o.csv {
		if err := series.WriteCSV(a.stdout, ss); err != nil {
			return err
		}
	}
	if o.table {
		series.WriteTable(a.stdout, ss)
	}
	fmt.Fprintln(a.stdout, "All done.")
	return nil
}
