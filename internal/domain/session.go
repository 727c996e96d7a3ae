package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const GuestUserID = "guest"

type Outcome string

const (
	OutcomeCompleted  Outcome = "completed"
	OutcomeTerminated Outcome = "terminated"
)

type SessionConfig struct {
	UserID   string
	Pattern  Pattern
	Duration time.Duration
}

type SessionRecord struct {
	ID        string
	UserID    string
	PatternID PatternID
	StartTime time.Time
	EndTime   time.Time
	Planned   time.Duration
	Outcome   Outcome
}

// Elapsed is the measured wall time, not the configured duration.
func (r SessionRecord) Elapsed() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

func NormalizeUserID(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return GuestUserID
	}

	return trimmed
}

// SessionState tracks the single session in progress.
type SessionState struct {
	config    SessionConfig
	startTime time.Time
	active    bool
}

// Begin starts tracking cfg and reports whether an unfinished session was
// overwritten.
func (s *SessionState) Begin(cfg SessionConfig, now time.Time) bool {
	replaced := s.active

	s.config = cfg
	s.startTime = now
	s.active = true

	return replaced
}

func (s *SessionState) End(now time.Time, outcome Outcome) (SessionRecord, error) {
	if !s.active {
		return SessionRecord{}, ErrNoActiveSession
	}
	if now.Before(s.startTime) {
		now = s.startTime
	}

	record := SessionRecord{
		ID:        uuid.NewString(),
		UserID:    s.config.UserID,
		PatternID: s.config.Pattern.ID,
		StartTime: s.startTime,
		EndTime:   now,
		Planned:   s.config.Duration,
		Outcome:   outcome,
	}

	s.config = SessionConfig{}
	s.startTime = time.Time{}
	s.active = false

	return record, nil
}

func (s *SessionState) Active() (SessionConfig, bool) {
	return s.config, s.active
}

func (s *SessionState) StartTime() time.Time {
	return s.startTime
}

type EventKind string

const (
	EventStarted    EventKind = "started"
	EventCompleted  EventKind = "completed"
	EventTerminated EventKind = "terminated"
)

// SessionEvent is delivered to orchestrator subscribers. Record is set for
// completed and terminated events.
type SessionEvent struct {
	Kind   EventKind
	Config SessionConfig
	Record *SessionRecord
}
