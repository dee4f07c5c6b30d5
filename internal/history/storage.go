package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Storage keeps one JSON file per download record under the data directory.
type Storage struct {
	dataDir string
}

func NewStorage(dataDir string) *Storage {
	return &Storage{dataDir: dataDir}
}

// Append persists a new record, assigning its UUID and timestamp when unset.
func (s *Storage) Append(record *Record) error {
	if record == nil {
		return fmt.Errorf("append history: nil record")
	}
	if record.UUID == "" {
		record.UUID = GenerateUUID()
	}
	if !IsValidUUID(record.UUID) {
		return fmt.Errorf("append history: invalid uuid %q", record.UUID)
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if err := s.ensureHistoryDir(); err != nil {
		return fmt.Errorf("append history: ensure history dir: %w", err)
	}

	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("append history: marshal json: %w", err)
	}

	path := s.recordPath(record.UUID)
	tmpPath := path + ".tmp"

	if err := os.WriteFile(tmpPath, payload, 0o600); err != nil {
		return fmt.Errorf("append history: write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("append history: rename temp file: %w", err)
	}

	return nil
}

// List returns all records sorted by creation time.
func (s *Storage) List() ([]*Record, error) {
	historyDir := s.historyDir()
	if err := s.ensureHistoryDir(); err != nil {
		return nil, fmt.Errorf("list history: ensure history dir: %w", err)
	}

	entries, err := os.ReadDir(historyDir)
	if err != nil {
		return nil, fmt.Errorf("list history: read dir: %w", err)
	}

	records := make([]*Record, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(historyDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("list history: read %s: %w", entry.Name(), err)
		}

		var record Record
		if err := json.Unmarshal(content, &record); err != nil {
			return nil, fmt.Errorf("list history: parse %s: %w", entry.Name(), err)
		}

		records = append(records, &record)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].UUID < records[j].UUID
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})

	return records, nil
}

func (s *Storage) ensureHistoryDir() error {
	return os.MkdirAll(s.historyDir(), 0o755)
}

func (s *Storage) historyDir() string {
	return filepath.Join(s.dataDir, "history")
}

func (s *Storage) recordPath(uuid string) string {
	return filepath.Join(s.historyDir(), uuid+".json")
}
