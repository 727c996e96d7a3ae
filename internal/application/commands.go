package application

import "time"

type StartSessionCommand struct {
	UserID        string
	PatternIndex  int
	DurationIndex int
}

type MenuSelection struct {
	UserName      string
	PatternIndex  int
	DurationIndex int
}

// SessionDelays are the grace periods between finalizing a session and
// returning to the main menu.
type SessionDelays struct {
	Completion  time.Duration
	Termination time.Duration
}

func DefaultSessionDelays() SessionDelays {
	return SessionDelays{
		Completion:  2 * time.Second,
		Termination: 1500 * time.Millisecond,
	}
}
