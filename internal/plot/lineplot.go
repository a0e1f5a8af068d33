package plot

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/hashtag-tally/internal/common"
	"github.com/dtnitsch/hashtag-tally/models"
	"github.com/dtnitsch/hashtag-tally/pkg/chart"
	"github.com/dtnitsch/hashtag-tally/pkg/series"
	"github.com/dtnitsch/hashtag-tally/pkg/storage"
)

const DefaultLineOutput = "lineplot_by_hashtag.png"

// LineOptions configures a time-series plot.
type LineOptions struct {
	InputPaths []string
	Keys       []string
	Percent    bool
	Year       int
	Positional bool
	Output     string
}

// LineSummary is printed to stdout after the chart is written.
type LineSummary struct {
	Status  string         `json:"status" yaml:"status"`
	Output  string         `json:"output" yaml:"output"`
	Days    int            `json:"days" yaml:"days"`
	Files   int            `json:"files" yaml:"files"`
	Totals  map[string]int `json:"totals" yaml:"totals"`
	Percent bool           `json:"percent_applied" yaml:"percent_applied"`
}

// LinePlotAction plots per-day totals of each key across daily aggregates.
func LinePlotAction(c *cli.Context) error {
	if err := common.ValidateFormat(c.String("format")); err != nil {
		return err
	}
	logger := common.NewLogger(c.Bool("quiet"))

	s := &storage.Storage{}
	extra, err := positionalInputs(c.Args().Slice(), s)
	if err != nil {
		return err
	}
	opts := LineOptions{
		InputPaths: append(c.StringSlice("input_paths"), extra...),
		Keys:       c.StringSlice("keys"),
		Percent:    c.Bool("percent"),
		Year:       c.Int("year"),
		Positional: c.Bool("positional"),
		Output:     c.String("output"),
	}

	summary, err := RunLine(logger, opts, s)
	if err != nil {
		return err
	}
	return common.PrintOutput(c.App.Writer, summary, c.String("format"))
}

// RunLine loads the daily aggregates, sums each key per day and renders the
// chart. Keys missing from a day count as zero.
func RunLine(logger *slog.Logger, opts LineOptions, s *storage.Storage) (*LineSummary, error) {
	if len(opts.InputPaths) == 0 {
		return nil, fmt.Errorf("no input paths provided")
	}
	if len(opts.Keys) == 0 {
		return nil, fmt.Errorf("no keys provided")
	}
	if opts.Output == "" {
		opts.Output = DefaultLineOutput
	}
	if opts.Percent {
		logger.Warn("--percent is accepted but not applied to line plots")
	}

	for _, path := range opts.InputPaths {
		if _, err := s.GetFileStats(path); err != nil {
			return nil, fmt.Errorf("input %q: %w", path, err)
		}
	}

	days, err := series.Index(opts.InputPaths, opts.Year, opts.Positional)
	if err != nil {
		return nil, err
	}

	tables := make([]models.Table, 0, len(days))
	for _, day := range days {
		table, err := s.LoadAggregate(day.Path)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	values, err := series.Build(days, tables, opts.Keys, opts.Year)
	if err != nil {
		return nil, err
	}

	spec := chart.LineSpec{
		Title:  fmt.Sprintf("Tweets with Given Hashtags per Day in %d", opts.Year),
		XLabel: fmt.Sprintf("Date in %d", opts.Year),
		YLabel: "Number of Tweets",
		Ticks:  series.MonthTicks(opts.Year),
	}
	totals := make(map[string]int, len(opts.Keys))
	for _, key := range opts.Keys {
		spec.Lines = append(spec.Lines, chart.Line{Name: key, Values: values[key]})
		total := 0
		for _, v := range values[key] {
			total += int(v)
		}
		totals[key] = total
	}

	if err := chart.SaveFile(opts.Output, func(w io.Writer) error {
		return chart.RenderLine(w, spec)
	}); err != nil {
		return nil, err
	}
	logger.Info("Saved line plot", "path", opts.Output, "files", len(days), "keys", len(opts.Keys))

	return &LineSummary{
		Status: "success",
		Output: opts.Output,
		Days:   series.DaysInYear(opts.Year),
		Files:  len(days),
		Totals: totals,
	}, nil
}

// positionalInputs accepts positional arguments only when they name existing
// files. A flag takes one value per occurrence, so a second --keys value lands
// here and must not be read as an aggregate.
func positionalInputs(args []string, s *storage.Storage) ([]string, error) {
	for _, arg := range args {
		if _, err := s.GetFileStats(arg); err != nil {
			return nil, fmt.Errorf("argument %q is not an aggregate file; give several keys as --keys a --keys b or --keys a,b", arg)
		}
	}
	return args, nil
}
