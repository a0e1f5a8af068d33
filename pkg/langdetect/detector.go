// Package langdetect fills in the language of tweets that Twitter tagged as
// undetermined.
package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Undetermined is Twitter's language code for "could not tell".
const Undetermined = "und"

// Detector re-detects the language of records tagged Undetermined. Records
// with any other language code pass through untouched.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector over the given languages, or over every language
// lingua knows when none are given. Low accuracy mode keeps the loaded
// models small, which suits short tweet text.
func New(languages ...lingua.Language) *Detector {
	builder := lingua.NewLanguageDetectorBuilder()
	var b lingua.LanguageDetectorBuilder
	if len(languages) == 0 {
		b = builder.FromAllLanguages()
	} else {
		b = builder.FromLanguages(languages...)
	}
	return &Detector{detector: b.WithLowAccuracyMode().Build()}
}

// ResolveLanguage returns the ISO 639-1 code detected from text when lang is
// Undetermined, and lang otherwise. Undetermined is kept when detection fails.
func (d *Detector) ResolveLanguage(text, lang string) string {
	if lang != Undetermined {
		return lang
	}
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return lang
	}
	code := strings.ToLower(language.IsoCode639_1().String())
	if code == "" {
		return lang
	}
	return code
}
