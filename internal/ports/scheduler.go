package ports

import "time"

// Scheduler runs fn on the host loop once delay has elapsed. The returned
// cancel func is safe to call after the task ran.
type Scheduler interface {
	After(delay time.Duration, fn func()) (cancel func())
}
