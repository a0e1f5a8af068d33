// Package tally counts keyword occurrences in tweets, grouped by language and
// by country.
package tally

import (
	"strings"

	"github.com/dtnitsch/hashtag-tally/models"
)

// LanguageResolver may replace a record's language code before it is counted.
type LanguageResolver interface {
	ResolveLanguage(text, lang string) string
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLanguageResolver installs a resolver consulted for every record.
func WithLanguageResolver(r LanguageResolver) Option {
	return func(a *Aggregator) { a.resolver = r }
}

// Stats summarizes what an Aggregator has seen.
type Stats struct {
	Records     int `json:"records" yaml:"records"`
	Matched     int `json:"matched" yaml:"matched"`
	WithCountry int `json:"with_country" yaml:"with_country"`
}

// Result is an immutable snapshot of both tables.
type Result struct {
	Lang    models.Table
	Country models.Table
	Stats   Stats
}

// Aggregator owns the language and country tables for one run. It is not
// safe for concurrent use.
type Aggregator struct {
	keywords []string
	resolver LanguageResolver
	lang     models.Table
	country  models.Table
	stats    Stats
}

// NewAggregator creates an aggregator over a validated keyword list (see
// models.ValidateKeywords). The list is copied.
func NewAggregator(keywords []string, opts ...Option) *Aggregator {
	a := &Aggregator{
		keywords: append([]string(nil), keywords...),
		lang:     make(models.Table),
		country:  make(models.Table),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Add counts one record. Each matching keyword is incremented at most once
// per record, and _all exactly once.
func (a *Aggregator) Add(r models.Record) {
	text := strings.ToLower(r.Text)
	lang := r.Lang
	if a.resolver != nil {
		lang = a.resolver.ResolveLanguage(r.Text, lang)
	}
	hasCountry := r.Country != ""

	matched := false
	for _, k := range a.keywords {
		if !strings.Contains(text, k) {
			continue
		}
		matched = true
		a.lang.Increment(k, lang)
		if hasCountry {
			a.country.Increment(k, r.Country)
		}
	}

	a.lang.Increment(models.AllKey, lang)
	if hasCountry {
		a.country.Increment(models.AllKey, r.Country)
		a.stats.WithCountry++
	}
	a.stats.Records++
	if matched {
		a.stats.Matched++
	}
}

// AddLine decodes and counts one raw line.
func (a *Aggregator) AddLine(line []byte) error {
	r, err := DecodeRecord(line)
	if err != nil {
		return err
	}
	a.Add(r)
	return nil
}

// Snapshot returns deep copies of the current tables.
func (a *Aggregator) Snapshot() Result {
	return Result{
		Lang:    a.lang.Clone(),
		Country: a.country.Clone(),
		Stats:   a.stats,
	}
}
