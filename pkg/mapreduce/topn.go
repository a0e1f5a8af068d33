package mapreduce

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/dtnitsch/hashtag-tally/models"
)

// DefaultTopN is how many entries a top-N chart shows.
const DefaultTopN = 10

var (
	ErrKeyNotFound   = errors.New("keyword not found in aggregate")
	ErrMissingTotals = errors.New("aggregate has no " + models.AllKey + " entry")
	ErrZeroTotal     = errors.New("division by zero total")
)

// Entry is one ranked dimension value.
type Entry struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// String formats the entry as "label:value" (e.g. "en:153" or "en:0.25").
func (e Entry) String() string {
	return e.Label + ":" + strconv.FormatFloat(e.Value, 'f', -1, 64)
}

// TopN ranks the dimension values of key, highest first, ties broken by the
// label descending. With percent each count is divided by the _all count of
// the same dimension value. n <= 0 keeps every entry.
func TopN(table models.Table, key string, percent bool, n int) ([]Entry, error) {
	counts, ok := table[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	var totals map[string]int
	if percent {
		totals, ok = table[models.AllKey]
		if !ok {
			return nil, ErrMissingTotals
		}
	}

	entries := make([]Entry, 0, len(counts))
	for label, count := range counts {
		value := float64(count)
		if percent {
			total := totals[label]
			if total == 0 {
				return nil, fmt.Errorf("%w: %s[%q]", ErrZeroTotal, models.AllKey, label)
			}
			value /= float64(total)
		}
		entries = append(entries, Entry{Label: label, Value: value})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Label > entries[j].Label
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

// TopKeywords returns the top N entries formatted as "label:value" strings.
func TopKeywords(entries []Entry, n int) []string {
	limit := n
	if len(entries) < n {
		limit = len(entries)
	}
	if limit < 0 {
		limit = 0
	}

	keywords := make([]string, limit)
	for i := 0; i < limit; i++ {
		keywords[i] = entries[i].String()
	}
	return keywords
}

// Reverse returns entries in the opposite order, so the largest value is
// drawn last.
func Reverse(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}
