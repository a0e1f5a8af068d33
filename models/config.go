// Package models defines data structures for configuration and aggregation.
package models

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultKeywords is the hashtag set used when no --keywords file is given.
var DefaultKeywords = []string{
	"#코로나바이러스", // korean
	"#コロナウイルス",  // japanese
	"#冠状病毒",     // chinese
	"#covid2019",
	"#covid-2019",
	"#covid19",
	"#covid-19",
	"#coronavirus",
	"#corona",
	"#virus",
	"#flu",
	"#sick",
	"#cough",
	"#sneeze",
	"#hospital",
	"#nurse",
	"#doctor",
}

// MapConfig holds runtime configuration for the map command.
// All values come from CLI flags, the keyword list optionally from a YAML file.
type MapConfig struct {
	InputPath          string
	OutputFolder       string
	Keywords           []string
	DetectUndetermined bool
}

// KeywordFile is the on-disk shape of a --keywords file.
type KeywordFile struct {
	Keywords []string `yaml:"keywords"`
}

// LoadKeywords reads a keyword list from a YAML file and validates it.
func LoadKeywords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword file: %w", err)
	}

	var kf KeywordFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("failed to parse keyword file %s: %w", path, err)
	}

	return ValidateKeywords(kf.Keywords)
}

// ValidateKeywords lower-cases the keywords and rejects empty, duplicate or
// reserved entries. Order is preserved.
func ValidateKeywords(keywords []string) ([]string, error) {
	if len(keywords) == 0 {
		return nil, fmt.Errorf("keyword list is empty")
	}

	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			return nil, fmt.Errorf("keyword list contains an empty keyword")
		}
		if k == AllKey {
			return nil, fmt.Errorf("keyword %q is reserved", AllKey)
		}
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("duplicate keyword %q", k)
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out, nil
}
