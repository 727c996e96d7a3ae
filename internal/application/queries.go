package application

import (
	"time"

	"github.com/bnema/vr-therapy-cli/internal/domain"
)

type HistoryEntry struct {
	Record      domain.SessionRecord
	PatternName string
	Elapsed     time.Duration
}

// LatestEntries keeps the limit most recent entries in log order. A limit
// of zero or less keeps everything.
func LatestEntries(entries []HistoryEntry, limit int) []HistoryEntry {
	if limit <= 0 || len(entries) <= limit {
		return entries
	}

	return entries[len(entries)-limit:]
}
