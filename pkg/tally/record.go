package tally

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dtnitsch/hashtag-tally/models"
)

var (
	// ErrMissingField is returned when text, lang or place is absent.
	ErrMissingField = errors.New("missing field")
	// ErrNullField is returned when text or lang is JSON null.
	ErrNullField = errors.New("null field")
)

type rawRecord struct {
	Text  json.RawMessage `json:"text"`
	Lang  json.RawMessage `json:"lang"`
	Place json.RawMessage `json:"place"`
}

type rawPlace struct {
	CountryCode json.RawMessage `json:"country_code"`
}

var jsonNull = []byte("null")

// DecodeRecord decodes one tweet line. Any missing field or malformed JSON is
// an error; the caller treats it as fatal for the run.
func DecodeRecord(line []byte) (models.Record, error) {
	var raw rawRecord
	if err := json.Unmarshal(line, &raw); err != nil {
		return models.Record{}, fmt.Errorf("malformed record: %w", err)
	}

	text, err := stringField("text", raw.Text)
	if err != nil {
		return models.Record{}, err
	}
	lang, err := stringField("lang", raw.Lang)
	if err != nil {
		return models.Record{}, err
	}
	if raw.Place == nil {
		return models.Record{}, fmt.Errorf("%w: place", ErrMissingField)
	}
	country, err := countryCode(raw.Place)
	if err != nil {
		return models.Record{}, err
	}

	return models.Record{Text: text, Lang: lang, Country: country}, nil
}

func stringField(name string, raw json.RawMessage) (string, error) {
	if raw == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return "", fmt.Errorf("%w: %s", ErrNullField, name)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("field %s: %w", name, err)
	}
	return s, nil
}

// countryCode resolves place.country_code. A place that is null or empty
// ("", false, 0, [] or {}), or an absent, null or empty country_code,
// resolves to "".
func countryCode(place json.RawMessage) (string, error) {
	if isEmptyValue(place) {
		return "", nil
	}
	var p rawPlace
	if err := json.Unmarshal(place, &p); err != nil {
		return "", fmt.Errorf("field place: %w", err)
	}
	if p.CountryCode == nil || bytes.Equal(bytes.TrimSpace(p.CountryCode), jsonNull) {
		return "", nil
	}
	var code string
	if err := json.Unmarshal(p.CountryCode, &code); err != nil {
		return "", fmt.Errorf("field place.country_code: %w", err)
	}
	return code, nil
}

// isEmptyValue reports whether raw is null or a zero-valued JSON scalar,
// array or object.
func isEmptyValue(raw json.RawMessage) bool {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case float64:
		return x == 0
	case string:
		return x == ""
	case []interface{}:
		return len(x) == 0
	case map[string]interface{}:
		return len(x) == 0
	}
	return false
}
