package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/hashtag-tally/internal/mapper"
	"github.com/dtnitsch/hashtag-tally/internal/plot"
	"github.com/dtnitsch/hashtag-tally/internal/reduce"
	"github.com/dtnitsch/hashtag-tally/pkg/help"
	"github.com/dtnitsch/hashtag-tally/pkg/mapreduce"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// commonFlags returns fresh copies of the flags every command takes.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "only log errors",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: "json",
			Usage: "summary output format: json or yaml",
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "hashtag-tally",
		Usage: "count hashtags in archived tweets by language and country, and chart the counts",
		Commands: []*cli.Command{
			{
				Name:   "map",
				Usage:  "tally one zip archive of tweets into .lang and .country aggregates",
				Action: mapper.MapAction,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "input_path",
						Usage:    "zip archive of newline-delimited tweet JSON",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "output_folder",
						Value: "outputs",
						Usage: "directory for the aggregates",
					},
					&cli.StringFlag{
						Name:  "keywords",
						Usage: "YAML file with a keywords list (default: built-in hashtag set)",
					},
					&cli.BoolFlag{
						Name:  "detect-undetermined",
						Usage: "detect the language of tweets tagged \"und\" from their text",
					},
				}, commonFlags()...),
			},
			{
				Name:      "reduce",
				Usage:     "sum several aggregates into one",
				ArgsUsage: "[aggregate...]",
				Action:    reduce.ReduceAction,
				Flags: append([]cli.Flag{
					&cli.StringSliceFlag{
						Name:  "input_paths",
						Usage: "aggregate files to combine (positional arguments are added too)",
					},
					&cli.StringFlag{
						Name:     "output_path",
						Usage:    "where to write the combined aggregate",
						Required: true,
					},
				}, commonFlags()...),
			},
			{
				Name:      "lineplot",
				Usage:     "plot per-day totals of keys across daily aggregates",
				ArgsUsage: "[aggregate...]",
				Action:    plot.LinePlotAction,
				Flags: append([]cli.Flag{
					&cli.StringSliceFlag{
						Name:  "input_paths",
						Usage: "one aggregate per day (positional arguments are added too)",
					},
					&cli.StringSliceFlag{
						Name:     "keys",
						Usage:    "keyword to plot, one line each (repeat the flag or separate with commas)",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "percent",
						Usage: "accepted for compatibility; not applied to line plots",
					},
					&cli.IntFlag{
						Name:  "year",
						Value: 2020,
						Usage: "calendar year the x-axis spans",
					},
					&cli.BoolFlag{
						Name:  "positional",
						Usage: "map sorted input files to consecutive days instead of reading dates from file names",
					},
					&cli.StringFlag{
						Name:  "output",
						Value: plot.DefaultLineOutput,
						Usage: "PNG file to write",
					},
				}, commonFlags()...),
			},
			{
				Name:   "topn",
				Usage:  "bar chart of the top languages or countries for one key",
				Action: plot.TopAction,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "input_path",
						Usage:    "a single .lang or .country aggregate",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "key",
						Usage:    "keyword to rank",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "percent",
						Usage: "divide each count by the _all count of the same language or country",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: mapreduce.DefaultTopN,
						Usage: "number of bars",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "PNG file to write (default: <input_path>_top<limit>.png)",
					},
				}, commonFlags()...),
			},
			{
				Name:  "quickstart",
				Usage: "print a YAML cheat sheet",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return err
				},
			},
		},
	}
}
