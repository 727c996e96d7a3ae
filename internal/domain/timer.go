package domain

import "time"

type TimerState int

const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerExpired
)

func (s TimerState) String() string {
	switch s {
	case TimerIdle:
		return "idle"
	case TimerRunning:
		return "running"
	case TimerExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Timer counts a duration down on host ticks and fires onExpire once per
// Start. It is not safe for concurrent use; owners serialize access.
type Timer struct {
	state     TimerState
	duration  time.Duration
	remaining time.Duration
	onExpire  func()
}

func NewTimer(onExpire func()) *Timer {
	return &Timer{onExpire: onExpire}
}

// Start replaces any countdown in progress.
func (t *Timer) Start(d time.Duration) {
	t.duration = d
	t.remaining = d
	t.state = TimerRunning
}

// Stop reports whether a running countdown was cancelled.
func (t *Timer) Stop() bool {
	if t.state != TimerRunning {
		return false
	}

	t.state = TimerIdle
	return true
}

func (t *Timer) Tick(elapsed time.Duration) {
	if t.state != TimerRunning {
		return
	}

	if elapsed > 0 {
		t.remaining -= elapsed
	}
	if t.remaining > 0 {
		return
	}

	t.remaining = 0
	t.state = TimerExpired
	if t.onExpire != nil {
		t.onExpire()
	}
}

func (t *Timer) Remaining() time.Duration {
	return t.remaining
}

func (t *Timer) Duration() time.Duration {
	return t.duration
}

func (t *Timer) IsRunning() bool {
	return t.state == TimerRunning
}

func (t *Timer) State() TimerState {
	return t.state
}
