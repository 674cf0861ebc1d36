package fmp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"market-reports/internal/aggregate"
)

// SaveSnapshot writes the raw records to disk as pretty-printed JSON, the
// same shape the provider sent them in, so a report can be re-rendered
// later without another fetch.
func SaveSnapshot(path string, records []aggregate.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadSnapshot reads back a file written by SaveSnapshot.
func LoadSnapshot(path string) ([]aggregate.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []aggregate.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
