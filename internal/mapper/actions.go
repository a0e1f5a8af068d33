package mapper

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/hashtag-tally/internal/common"
	"github.com/dtnitsch/hashtag-tally/models"
	"github.com/dtnitsch/hashtag-tally/pkg/archive"
	"github.com/dtnitsch/hashtag-tally/pkg/langdetect"
	"github.com/dtnitsch/hashtag-tally/pkg/storage"
	"github.com/dtnitsch/hashtag-tally/pkg/tally"
)

// Summary is printed to stdout after a successful run.
type Summary struct {
	Status           string      `json:"status" yaml:"status"`
	InputPath        string      `json:"input_path" yaml:"input_path"`
	LangPath         string      `json:"lang_path" yaml:"lang_path"`
	CountryPath      string      `json:"country_path" yaml:"country_path"`
	Members          int         `json:"members" yaml:"members"`
	Keywords         int         `json:"keywords" yaml:"keywords"`
	Stats            tally.Stats `json:"stats" yaml:"stats"`
	TotalTimeSeconds float64     `json:"total_time_seconds" yaml:"total_time_seconds"`
}

// MapAction scans one archive and writes its .lang and .country aggregates.
func MapAction(c *cli.Context) error {
	if err := common.ValidateFormat(c.String("format")); err != nil {
		return err
	}
	logger := common.NewLogger(c.Bool("quiet"))

	keywords := models.DefaultKeywords
	if path := c.String("keywords"); path != "" {
		var err error
		keywords, err = models.LoadKeywords(path)
		if err != nil {
			return err
		}
		logger.Info("Loaded keywords", "path", path, "count", len(keywords))
	}

	config := &models.MapConfig{
		InputPath:          c.String("input_path"),
		OutputFolder:       c.String("output_folder"),
		Keywords:           keywords,
		DetectUndetermined: c.Bool("detect-undetermined"),
	}

	summary, err := Run(logger, config, &storage.Storage{})
	if err != nil {
		return err
	}
	return common.PrintOutput(c.App.Writer, summary, c.String("format"))
}

// Run performs the scan. Nothing is written unless every record decodes.
func Run(logger *slog.Logger, config *models.MapConfig, s *storage.Storage) (*Summary, error) {
	startTime := time.Now()

	keywords, err := models.ValidateKeywords(config.Keywords)
	if err != nil {
		return nil, err
	}

	var opts []tally.Option
	if config.DetectUndetermined {
		logger.Info("Language detection enabled for undetermined tweets")
		opts = append(opts, tally.WithLanguageResolver(langdetect.New()))
	}
	agg := tally.NewAggregator(keywords, opts...)

	scanner, err := archive.Open(config.InputPath)
	if err != nil {
		return nil, err
	}
	defer scanner.Close()

	scanner.OnMember = func(name string) {
		logger.Info("Scanning member", "input_path", config.InputPath, "member", name)
	}
	for scanner.Next() {
		if err := agg.AddLine(scanner.Line()); err != nil {
			return nil, fmt.Errorf("%s: %s line %d: %w", config.InputPath, scanner.Member(), scanner.LineNumber(), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	members := scanner.Members()
	if err := scanner.Close(); err != nil {
		return nil, err
	}

	result := agg.Snapshot()

	if err := s.EnsureDir(config.OutputFolder); err != nil {
		return nil, err
	}
	langPath, countryPath := storage.OutputPaths(config.OutputFolder, config.InputPath)

	for _, out := range []struct {
		path  string
		table models.Table
	}{
		{langPath, result.Lang},
		{countryPath, result.Country},
	} {
		logger.Info("Saving", "path", out.path, "keys", len(out.table))
		if err := s.WriteAggregate(out.path, out.table); err != nil {
			return nil, err
		}
		if stats, err := s.GetFileStats(out.path); err == nil {
			logger.Info("Saved", "path", out.path, "size", humanize.Bytes(uint64(stats.SizeBytes)))
		}
	}

	logger.Info("Map complete",
		"records", humanize.Comma(int64(result.Stats.Records)),
		"matched", humanize.Comma(int64(result.Stats.Matched)),
		"with_country", humanize.Comma(int64(result.Stats.WithCountry)),
		"members", members,
		"elapsed", time.Since(startTime).String())

	return &Summary{
		Status:           "success",
		InputPath:        config.InputPath,
		LangPath:         langPath,
		CountryPath:      countryPath,
		Members:          members,
		Keywords:         len(keywords),
		Stats:            result.Stats,
		TotalTimeSeconds: time.Since(startTime).Seconds(),
	}, nil
}
