// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/hashbench/hashbench/resultproc"
)

// ChartOptions controls how Chart renders and where it writes.
type ChartOptions struct {
	Dir     string   // output directory; created if missing
	Formats []string // file formats: "png", "jpg", "svg", "pdf"
	DPI     int      // resolution of raster formats
	Width   vg.Length
	Height  vg.Length
}

// DefaultChartOptions returns options that write 6x4 inch PNGs at 300
// DPI into the current directory.
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Dir:     ".",
		Formats: []string{"png"},
		DPI:     300,
		Width:   6 * vg.Inch,
		Height:  4 * vg.Inch,
	}
}

var chartFormats = []string{"png", "jpg", "svg", "pdf"}

// ParseFormats parses a comma-separated list of chart formats.
func ParseFormats(list string) ([]string, error) {
	var formats []string
	for _, f := range strings.Split(list, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "jpeg" {
			f = "jpg"
		}
		ok := false
		for _, known := range chartFormats {
			ok = ok || f == known
		}
		if !ok {
			return nil, fmt.Errorf("unknown chart format %q (want one of %s)", f, strings.Join(chartFormats, ", "))
		}
		formats = append(formats, f)
	}
	return formats, nil
}

const pointRad = 3

// NewPlot returns the line chart of metric m over s.
func NewPlot(s *Series, m Metric) (*plot.Plot, error) {
	if s.Len() == 0 {
		return nil, fmt.Errorf("%s: empty series", FileStem(m, s))
	}
	ys := m.Values(s)

	pl := plot.New()
	pl.Title.Text = Title(m, s)
	pl.X.Label.Text = s.Proj.Free.Title()
	pl.Y.Label.Text = m.Label()

	grid := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(4), vg.Points(4)}
	grid.Vertical.Dashes = dashes
	grid.Horizontal.Dashes = dashes
	grid.Vertical.Color = color.Gray{Y: 0xC0}
	grid.Horizontal.Color = color.Gray{Y: 0xC0}
	pl.Add(grid)

	xys := make(plotter.XYs, s.Len())
	for i, x := range s.X {
		xys[i].X = float64(x)
		xys[i].Y = ys[i]
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, errors.Wrap(err, FileStem(m, s))
	}
	line.Width = vg.Points(2)
	line.Color = color.NRGBA{R: 0x1F, G: 0x77, B: 0xB4, A: 0xFF}
	points.Shape = draw.CircleGlyph{}
	points.Radius = vg.Points(pointRad)
	points.Color = line.Color
	pl.Add(line, points)

	// Thread counts are usually powers of two, so spread them on a
	// log scale. A log axis needs at least two distinct positive
	// values.
	if s.Proj.Free == resultproc.Threads && s.Len() > 1 && s.X[0] > 0 {
		pl.X.Scale = plot.LogScale{}
	}
	ticks := make([]plot.Tick, s.Len())
	for i, x := range s.X {
		ticks[i] = plot.Tick{Value: float64(x), Label: strconv.Itoa(x)}
	}
	pl.X.Tick.Marker = plot.ConstantTicks(ticks)

	// Pad the y range so the extreme points are not drawn on the
	// axes.
	lo, hi := stats.Bounds(ys)
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*0.05, 1)
	}
	pl.Y.Min, pl.Y.Max = lo-pad, hi+pad
	if lo >= 0 && pl.Y.Min < 0 {
		pl.Y.Min = 0
	}

	return pl, nil
}

// Chart renders metric m of s in every format of opts and returns the
// paths written. File names come from FileStem.
func Chart(s *Series, m Metric, opts ChartOptions) ([]string, error) {
	pl, err := NewPlot(s, m)
	if err != nil {
		return nil, err
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}

	var paths []string
	for _, format := range opts.Formats {
		c, err := newCanvas(format, opts)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, FileStem(m, s)) + "." + format
		if err := writeCanvas(pl, c, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func newCanvas(format string, opts ChartOptions) (vg.CanvasWriterTo, error) {
	w, h := opts.Width, opts.Height
	if w == 0 || h == 0 {
		def := DefaultChartOptions()
		w, h = def.Width, def.Height
	}
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = 96
	}
	raster := func() *vgimg.Canvas {
		return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(color.White))
	}
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: raster()}, nil
	case "jpg":
		return vgimg.JpegCanvas{Canvas: raster()}, nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "pdf":
		return vgpdf.New(w, h), nil
	}
	return nil, fmt.Errorf("unknown chart format %q", format)
}

func writeCanvas(pl *plot.Plot, c vg.CanvasWriterTo, path string) error {
	pl.Draw(draw.New(c))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}
