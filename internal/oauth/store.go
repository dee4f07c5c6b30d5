package oauth

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists a single token record as a JSON file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the stored token. A missing or empty file is a normal cold
// start and returns (nil, nil).
func (s *Store) Load() (*Token, error) {
	content, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load token: read file: %w", err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, nil
	}

	var token Token
	if err := json.Unmarshal(content, &token); err != nil {
		return nil, fmt.Errorf("load token: unmarshal json: %w", err)
	}

	return &token, nil
}

// Save overwrites the stored token via a temp file rename.
func (s *Store) Save(token *Token) error {
	if token == nil {
		return fmt.Errorf("save token: nil token")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("save token: ensure data dir: %w", err)
	}

	payload, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("save token: marshal json: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, payload, 0o600); err != nil {
		return fmt.Errorf("save token: write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("save token: rename temp file: %w", err)
	}

	return nil
}

// Clear removes the stored token. A missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear token: remove file: %w", err)
	}
	return nil
}
