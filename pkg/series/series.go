// Package series turns one aggregate per day into per-keyword daily totals.
package series

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/dtnitsch/hashtag-tally/models"
)

// Day binds an aggregate file to its zero-based day of the year.
type Day struct {
	Path  string
	Index int
}

// Tick is a labelled x-axis position.
type Tick struct {
	Index int
	Label string
}

// datePattern matches YY-MM-DD or YYYY-MM-DD, e.g. geoTwitter20-03-14.zip.lang.
var datePattern = regexp.MustCompile(`(\d{2}|\d{4})-(\d{2})-(\d{2})`)

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

// MonthTicks labels the first day of every other month, starting in January.
func MonthTicks(year int) []Tick {
	labels := map[time.Month]string{
		time.January:   "Jan",
		time.March:     "Mar",
		time.May:       "May",
		time.July:      "Jul",
		time.September: "Sept",
		time.November:  "Nov",
	}
	ticks := make([]Tick, 0, len(labels))
	for m := time.January; m <= time.December; m += 2 {
		day := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC).YearDay() - 1
		ticks = append(ticks, Tick{Index: day, Label: labels[m]})
	}
	return ticks
}

// DayIndex extracts the date embedded in the base name of path and returns
// its zero-based day within year.
func DayIndex(path string, year int) (int, error) {
	base := filepath.Base(path)
	m := datePattern.FindAllStringSubmatch(base, -1)
	if len(m) == 0 {
		return 0, fmt.Errorf("no YY-MM-DD date in file name %q", base)
	}
	last := m[len(m)-1]

	y, _ := strconv.Atoi(last[1])
	if len(last[1]) == 2 {
		y += 2000
	}
	month, _ := strconv.Atoi(last[2])
	day, _ := strconv.Atoi(last[3])

	t := time.Date(y, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != month || t.Day() != day {
		return 0, fmt.Errorf("invalid date %s in file name %q", last[0], base)
	}
	if y != year {
		return 0, fmt.Errorf("file %q is dated %d, want %d", base, y, year)
	}
	return t.YearDay() - 1, nil
}

// Index maps every path to a day of year. By default the day comes from the
// date in the file name; with positional the paths are sorted and the i-th
// path is day i. Either way each day may appear at most once.
func Index(paths []string, year int, positional bool) ([]Day, error) {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	n := DaysInYear(year)
	if positional && len(sorted) > n {
		return nil, fmt.Errorf("%d files for a %d-day year", len(sorted), n)
	}

	days := make([]Day, 0, len(sorted))
	seen := make(map[int]string, len(sorted))
	for i, path := range sorted {
		idx := i
		if !positional {
			var err error
			idx, err = DayIndex(path, year)
			if err != nil {
				return nil, err
			}
		}
		if prev, dup := seen[idx]; dup {
			return nil, fmt.Errorf("files %q and %q map to the same day %d", prev, path, idx)
		}
		seen[idx] = path
		days = append(days, Day{Path: path, Index: idx})
	}
	return days, nil
}

// Sum totals every dimension value of key in one day's table. A keyword that
// does not occur that day contributes zero.
func Sum(table models.Table, key string) int {
	total, ok := table.Sum(key)
	if !ok {
		return 0
	}
	return total
}

// Build returns, for every key, one value per day of year. tables[i] is the
// aggregate for days[i]; days without a file stay zero.
func Build(days []Day, tables []models.Table, keys []string, year int) (map[string][]float64, error) {
	if len(days) != len(tables) {
		return nil, fmt.Errorf("%d days but %d tables", len(days), len(tables))
	}
	n := DaysInYear(year)

	out := make(map[string][]float64, len(keys))
	for _, key := range keys {
		values := make([]float64, n)
		for i, day := range days {
			if day.Index < 0 || day.Index >= n {
				return nil, fmt.Errorf("day index %d out of range for %d", day.Index, year)
			}
			values[day.Index] += float64(Sum(tables[i], key))
		}
		out[key] = values
	}
	return out, nil
}
