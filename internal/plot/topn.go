package plot

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/hashtag-tally/internal/common"
	"github.com/dtnitsch/hashtag-tally/pkg/chart"
	"github.com/dtnitsch/hashtag-tally/pkg/mapreduce"
	"github.com/dtnitsch/hashtag-tally/pkg/storage"
)

// ErrNoCounts is returned when the key exists but has no dimension counts.
var ErrNoCounts = errors.New("key has no counts")

// untitledKey gets no chart title.
const untitledKey = "#코로나바이러스"

// TopOptions configures a top-N bar chart.
type TopOptions struct {
	InputPath string
	Key       string
	Percent   bool
	Limit     int
	Output    string
}

// TopSummary is printed to stdout after the chart is written.
type TopSummary struct {
	Status    string            `json:"status" yaml:"status"`
	Output    string            `json:"output" yaml:"output"`
	Key       string            `json:"key" yaml:"key"`
	Dimension string            `json:"dimension" yaml:"dimension"`
	Percent   bool              `json:"percent" yaml:"percent"`
	Top       []mapreduce.Entry `json:"top" yaml:"top"`
}

// TopAction charts the largest dimension values of one key in one aggregate.
func TopAction(c *cli.Context) error {
	if err := common.ValidateFormat(c.String("format")); err != nil {
		return err
	}
	logger := common.NewLogger(c.Bool("quiet"))

	opts := TopOptions{
		InputPath: c.String("input_path"),
		Key:       c.String("key"),
		Percent:   c.Bool("percent"),
		Limit:     c.Int("limit"),
		Output:    c.String("output"),
	}

	summary, err := RunTop(logger, opts, &storage.Storage{})
	if err != nil {
		return err
	}
	return common.PrintOutput(c.App.Writer, summary, c.String("format"))
}

// DimensionLabel names the axis from the aggregate's file name.
func DimensionLabel(inputPath string) string {
	if strings.Contains(inputPath, "country") {
		return "Country"
	}
	return "Language"
}

// TopTitle returns the chart title, or "" for keys drawn without one.
func TopTitle(key, dimension string, limit int) string {
	if strings.Contains(key, untitledKey) {
		return ""
	}
	return fmt.Sprintf("Top %d %s Tweets by %s", limit, key, dimension)
}

// RunTop ranks key's dimension values and renders them, largest last.
func RunTop(logger *slog.Logger, opts TopOptions, s *storage.Storage) (*TopSummary, error) {
	if opts.Limit <= 0 {
		opts.Limit = mapreduce.DefaultTopN
	}
	if opts.Output == "" {
		opts.Output = fmt.Sprintf("%s_top%d.png", opts.InputPath, opts.Limit)
	}

	table, err := s.LoadAggregate(opts.InputPath)
	if err != nil {
		return nil, err
	}

	top, err := mapreduce.TopN(table, opts.Key, opts.Percent, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.InputPath, err)
	}
	if len(top) == 0 {
		return nil, fmt.Errorf("%s: %q: %w", opts.InputPath, opts.Key, ErrNoCounts)
	}
	logger.Info("Ranked", "key", opts.Key, "top", mapreduce.TopKeywords(top, opts.Limit))

	dimension := DimensionLabel(opts.InputPath)
	yLabel := "Number of Tweets"
	if opts.Percent {
		yLabel = "Fraction of Tweets"
	}
	spec := chart.BarSpec{
		Title:  TopTitle(opts.Key, dimension, opts.Limit),
		YLabel: yLabel,
		Bars:   mapreduce.Reverse(top),
	}

	if err := chart.SaveFile(opts.Output, func(w io.Writer) error {
		return chart.RenderBar(w, spec)
	}); err != nil {
		return nil, err
	}
	logger.Info("Saved bar chart", "path", opts.Output)

	return &TopSummary{
		Status:    "success",
		Output:    opts.Output,
		Key:       opts.Key,
		Dimension: dimension,
		Percent:   opts.Percent,
		Top:       top,
	}, nil
}
