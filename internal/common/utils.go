package common

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// NewLogger returns the JSON stderr logger every command uses. quiet drops
// everything below Error.
func NewLogger(quiet bool) *slog.Logger {
	return newLogger(os.Stderr, quiet)
}

func newLogger(w io.Writer, quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// ValidateFormat reports whether format is one MarshalOutput accepts.
func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case "", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown output format %q (want json or yaml)", format)
}

// MarshalOutput encodes v as indented JSON, or as YAML when format is "yaml".
func MarshalOutput(v interface{}, format string) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	if strings.ToLower(format) == "yaml" {
		return yaml.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}

// PrintOutput writes v to w in the requested format.
func PrintOutput(w io.Writer, v interface{}, format string) error {
	outputData, err := MarshalOutput(v, format)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, strings.TrimRight(string(outputData), "\n"))
	return err
}
