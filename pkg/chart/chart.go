// Package chart renders the line and bar charts as PNG images.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"

	gochart "github.com/wcharczuk/go-chart"

	"github.com/dtnitsch/hashtag-tally/pkg/mapreduce"
	"github.com/dtnitsch/hashtag-tally/pkg/series"
)

// Line is one named series plotted against day of year.
type Line struct {
	Name   string
	Values []float64
}

// LineSpec describes a time-series chart.
type LineSpec struct {
	Title  string
	XLabel string
	YLabel string
	Lines  []Line
	Ticks  []series.Tick
}

// BarSpec describes a bar chart. Bars are drawn left to right in order.
type BarSpec struct {
	Title  string
	YLabel string
	Bars   []mapreduce.Entry
}

// RenderLine writes a PNG line chart to w.
func RenderLine(w io.Writer, spec LineSpec) error {
	if len(spec.Lines) == 0 {
		return errors.New("no lines to plot")
	}

	n := 0
	maxY := 0.0
	var lines []gochart.Series
	for i, l := range spec.Lines {
		if len(l.Values) > n {
			n = len(l.Values)
		}
		xs := make([]float64, len(l.Values))
		for x, y := range l.Values {
			xs[x] = float64(x)
			if y > maxY {
				maxY = y
			}
		}
		lines = append(lines, gochart.ContinuousSeries{
			Name:    l.Name,
			XValues: xs,
			YValues: l.Values,
			Style: gochart.Style{
				Show:        true,
				StrokeColor: gochart.GetAlternateColor(i),
			},
		})
	}
	if n < 2 {
		return fmt.Errorf("need at least 2 points per line, got %d", n)
	}

	var ticks []gochart.Tick
	for _, t := range spec.Ticks {
		ticks = append(ticks, gochart.Tick{Value: float64(t.Index), Label: t.Label})
	}

	graph := gochart.Chart{
		Title:      spec.Title,
		TitleStyle: gochart.Style{Show: spec.Title != ""},
		XAxis: gochart.XAxis{
			Name:      spec.XLabel,
			NameStyle: gochart.StyleShow(),
			Style:     gochart.StyleShow(),
			Range:     &gochart.ContinuousRange{Min: 0, Max: float64(n - 1)},
			Ticks:     ticks,
		},
		YAxis: gochart.YAxis{
			Name:      spec.YLabel,
			NameStyle: gochart.StyleShow(),
			Style:     gochart.StyleShow(),
			Range:     &gochart.ContinuousRange{Min: 0, Max: upperBound(maxY)},
		},
		Series: lines,
	}
	graph.Elements = []gochart.Renderable{
		gochart.Legend(&graph),
	}

	return graph.Render(gochart.PNG, w)
}

// RenderBar writes a PNG bar chart to w.
func RenderBar(w io.Writer, spec BarSpec) error {
	if len(spec.Bars) == 0 {
		return errors.New("no bars to plot")
	}

	maxY := 0.0
	bars := make([]gochart.Value, 0, len(spec.Bars))
	for _, b := range spec.Bars {
		if b.Value > maxY {
			maxY = b.Value
		}
		bars = append(bars, gochart.Value{Label: b.Label, Value: b.Value})
	}

	graph := gochart.BarChart{
		Title:      spec.Title,
		TitleStyle: gochart.Style{Show: spec.Title != ""},
		Width:      1024,
		Height:     512,
		BarWidth:   60,
		BarSpacing: 20,
		XAxis:      gochart.StyleShow(),
		YAxis: gochart.YAxis{
			Name:      spec.YLabel,
			NameStyle: gochart.StyleShow(),
			Style:     gochart.StyleShow(),
			Range:     &gochart.ContinuousRange{Min: 0, Max: upperBound(maxY)},
		},
		Bars: bars,
	}
	return graph.Render(gochart.PNG, w)
}

// SaveFile renders with render into a new file at path.
func SaveFile(path string, render func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := render(f); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}

// upperBound pads the largest value so the top of the plot has headroom, and
// keeps the range non-empty for all-zero data.
func upperBound(maxY float64) float64 {
	if maxY <= 0 {
		return 1
	}
	return maxY * 1.05
}
