package reduce

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/hashtag-tally/internal/common"
	"github.com/dtnitsch/hashtag-tally/models"
	"github.com/dtnitsch/hashtag-tally/pkg/mapreduce"
	"github.com/dtnitsch/hashtag-tally/pkg/storage"
)

// Summary is printed to stdout after a successful reduce.
type Summary struct {
	Status     string   `json:"status" yaml:"status"`
	Inputs     int      `json:"inputs" yaml:"inputs"`
	OutputPath string   `json:"output_path" yaml:"output_path"`
	Keys       int      `json:"keys" yaml:"keys"`
	TopAll     []string `json:"top_all,omitempty" yaml:"top_all,omitempty"`
}

// ReduceAction sums several aggregates of the same dimension into one file.
// Extra positional arguments are treated as more input paths.
func ReduceAction(c *cli.Context) error {
	if err := common.ValidateFormat(c.String("format")); err != nil {
		return err
	}
	logger := common.NewLogger(c.Bool("quiet"))

	inputPaths := append(c.StringSlice("input_paths"), c.Args().Slice()...)
	summary, err := Run(logger, inputPaths, c.String("output_path"), &storage.Storage{})
	if err != nil {
		return err
	}
	return common.PrintOutput(c.App.Writer, summary, c.String("format"))
}

// Run loads every input, merges them and writes the combined aggregate.
func Run(logger *slog.Logger, inputPaths []string, outputPath string, s *storage.Storage) (*Summary, error) {
	if len(inputPaths) == 0 {
		return nil, fmt.Errorf("no input paths provided")
	}

	tables := make([]models.Table, 0, len(inputPaths))
	for _, path := range inputPaths {
		table, err := s.LoadAggregate(path)
		if err != nil {
			return nil, err
		}
		logger.Info("Loaded aggregate", "path", path, "keys", len(table))
		tables = append(tables, table)
	}

	combined := mapreduce.Reduce(tables)

	logger.Info("Saving", "path", outputPath)
	if err := s.WriteAggregate(outputPath, combined); err != nil {
		return nil, err
	}

	summary := &Summary{
		Status:     "success",
		Inputs:     len(inputPaths),
		OutputPath: outputPath,
		Keys:       len(combined),
	}
	if _, ok := combined[models.AllKey]; ok {
		top, err := mapreduce.TopN(combined, models.AllKey, false, 5)
		if err != nil {
			return nil, err
		}
		summary.TopAll = mapreduce.TopKeywords(top, 5)
	}
	return summary, nil
}
