package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dtnitsch/hashtag-tally/models"
)

const (
	LangSuffix    = ".lang"
	CountrySuffix = ".country"
)

type Storage struct{}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

// OutputPaths returns the language and country aggregate paths for an
// archive: <folder>/<basename(input)>.lang and .country.
func OutputPaths(folder, inputPath string) (string, string) {
	base := filepath.Join(folder, filepath.Base(inputPath))
	return base + LangSuffix, base + CountrySuffix
}

// EnsureDir creates dir and any parents. An existing directory is not an error.
func (s *Storage) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory %s: %w", dir, err)
	}
	return nil
}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	err := os.WriteFile(filePath, content, 0644)
	if err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}

	return nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

// WriteAggregate serializes table as JSON to filePath, replacing any existing
// file. encoding/json sorts map keys, so equal tables give identical bytes.
func (s *Storage) WriteAggregate(filePath string, table models.Table) error {
	if table == nil {
		table = models.Table{}
	}
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("error marshalling aggregate: %w", err)
	}
	return s.SaveFile(filePath, data)
}

// LoadAggregate reads an aggregate written by WriteAggregate.
func (s *Storage) LoadAggregate(filePath string) (models.Table, error) {
	data, err := s.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var table models.Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("error decoding aggregate %s: %w", filePath, err)
	}
	if table == nil {
		table = models.Table{}
	}
	return table, nil
}

// GetFileStats returns metadata about a file using os.Stat (no I/O overhead).
func (s *Storage) GetFileStats(filePath string) (*FileStats, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error getting file stats: %w", err)
	}

	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}
