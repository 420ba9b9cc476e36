// Package history persists the observed price log as a flat JSON file.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pricewatch/internal/model"
)

// Load reads the history from a JSON file. A missing file is an empty
// history, not an error.
func Load(path string) (model.History, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.History{}, nil
		}
		return nil, fmt.Errorf("read history %s: %w", path, err)
	}
	var h model.History
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("parse history %s: %w", path, err)
	}
	return h, nil
}

// Save rewrites the whole history file as indented JSON, creating the
// parent directory if needed. The write is not atomic; a single-process
// low-frequency invocation model is assumed.
func Save(path string, h model.History) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create history dir %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write history %s: %w", path, err)
	}
	return nil
}
