package history

import (
	"time"

	"github.com/google/uuid"
)

// Record captures one completed table download. Failed downloads are never
// recorded.
type Record struct {
	UUID       string    `json:"uuid"`
	Database   string    `json:"database"`
	Table      string    `json:"table"`
	Records    int       `json:"records"`
	OutputPath string    `json:"output_path"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

func GenerateUUID() string {
	return uuid.NewString()
}

func IsValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
