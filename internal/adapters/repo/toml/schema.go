package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int            `toml:"version"`
	Memories []memorySchema `toml:"memories"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported memories schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type memorySchema struct {
	ID          int64     `toml:"id"`
	UserID      int64     `toml:"user_id"`
	Title       string    `toml:"title"`
	Desc        string    `toml:"desc,omitempty"`
	CreatedAt   string    `toml:"created_at,omitempty"`
	Emotion     string    `toml:"emotion,omitempty"`
	ModelPath   string    `toml:"model_path,omitempty"`
	MediaPath   string    `toml:"media_path,omitempty"`
	MediaType   string    `toml:"media_type,omitempty"`
	UnlockAtISO string    `toml:"unlock_at_iso,omitempty"`
	Position    []float64 `toml:"position,omitempty"`
}
