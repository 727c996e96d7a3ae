package domain

import (
	"fmt"
	"strings"
	"time"
)

type PatternID string

type Pattern struct {
	ID    PatternID
	Name  string
	Scene SceneName
}

func (p Pattern) Validate() error {
	if strings.TrimSpace(string(p.ID)) == "" {
		return fmt.Errorf("pattern id is required")
	}
	if strings.TrimSpace(string(p.Scene)) == "" {
		return fmt.Errorf("pattern %q: scene is required", p.ID)
	}

	return nil
}

// Catalog is the fixed list of selectable patterns and session durations.
type Catalog struct {
	Patterns  []Pattern
	Durations []time.Duration
}

func DefaultCatalog() Catalog {
	return Catalog{
		Patterns: []Pattern{
			{ID: "glow", Name: "Glow", Scene: "3 VR Glow"},
			{ID: "gridwave", Name: "GridWave", Scene: "4 VR GridWave"},
			{ID: "splinetrack", Name: "SplineTrack", Scene: "5 VR SplineTrack"},
		},
		Durations: []time.Duration{
			6 * time.Second,
			30 * time.Second,
			time.Minute,
			10 * time.Minute,
		},
	}
}

func (c Catalog) Validate() error {
	if len(c.Patterns) == 0 || len(c.Durations) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[PatternID]struct{}, len(c.Patterns))
	for _, pattern := range c.Patterns {
		if err := pattern.Validate(); err != nil {
			return err
		}
		if _, ok := seen[pattern.ID]; ok {
			return fmt.Errorf("duplicate pattern id %q", pattern.ID)
		}
		seen[pattern.ID] = struct{}{}
	}
	for _, d := range c.Durations {
		if d < 0 {
			return fmt.Errorf("negative session duration %s", d)
		}
	}

	return nil
}

// PatternAt clamps index into the catalog. Out-of-range selections resolve
// to the nearest valid pattern instead of failing.
func (c Catalog) PatternAt(index int) Pattern {
	return c.Patterns[clampIndex(index, len(c.Patterns))]
}

func (c Catalog) DurationAt(index int) time.Duration {
	return c.Durations[clampIndex(index, len(c.Durations))]
}

func (c Catalog) PatternByID(id PatternID) (Pattern, bool) {
	for _, pattern := range c.Patterns {
		if pattern.ID == id {
			return pattern, true
		}
	}

	return Pattern{}, false
}

func (c Catalog) IsVRScene(scene SceneName) bool {
	for _, pattern := range c.Patterns {
		if pattern.Scene == scene {
			return true
		}
	}

	return false
}

func clampIndex(index, length int) int {
	if index < 0 {
		return 0
	}
	if index > length-1 {
		return length - 1
	}

	return index
}
