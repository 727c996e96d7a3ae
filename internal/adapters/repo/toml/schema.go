package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Sessions []sessionSchema `toml:"sessions"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported history schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	ID             string `toml:"id"`
	UserID         string `toml:"user_id"`
	PatternID      string `toml:"pattern_id"`
	StartTime      string `toml:"start_time"`
	EndTime        string `toml:"end_time"`
	PlannedSeconds int64  `toml:"planned_seconds,omitempty"`
	Outcome        string `toml:"outcome,omitempty"`
}
