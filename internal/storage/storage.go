package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/chronos-cli/chronos/internal/model"
)

// Data is the full persisted state: ISO date key -> day record.
// encoding/json writes map keys sorted, which keeps the file diffable.
type Data map[string]*model.DayRecord

// BaseDir returns the root data directory (~/.chronos).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".chronos"), nil
}

// dataFilePath returns the path of the single data file.
func dataFilePath(base string) string {
	return filepath.Join(base, "data.json")
}

// Load reads the data file. A missing file is created with an empty
// document; a malformed file is backed up alongside the original and
// replaced by the in-memory default, so a broken file never blocks
// stamping.
func Load(base string) (Data, error) {
	path := dataFilePath(base)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		data := Data{}
		if writeErr := Save(base, data); writeErr != nil {
			return nil, writeErr
		}
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		fmt.Fprintf(os.Stderr, "Warning: corrupt data file backed up to %s, starting fresh: %v\n", backupPath, err)
		return Data{}, nil
	}
	if data == nil {
		data = Data{}
	}
	return data, nil
}

// Save atomically writes the full data file, keys sorted.
func Save(base string, data Data) error {
	path := dataFilePath(base)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, raw, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// GetOrCreate returns the record for the given date key, inserting def
// when the date has never been touched. Records are never deleted.
func (d Data) GetOrCreate(key string, def model.DayRecord) *model.DayRecord {
	if rec, ok := d[key]; ok {
		return rec
	}
	rec := def
	d[key] = &rec
	return &rec
}

// SortedKeys returns all date keys in ascending order.
func (d Data) SortedKeys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
