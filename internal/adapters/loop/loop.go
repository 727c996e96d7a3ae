package loop

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/ports"
)

type task struct {
	seq      uint64
	due      time.Duration
	fn       func()
	canceled bool
}

// Loop is a cooperative single-threaded scheduler. Time only moves when
// Advance is called, so tests drive it with simulated time and the CLI
// drives it from a ticker or a bubbletea update loop.
type Loop struct {
	mu      sync.Mutex
	now     time.Duration
	seq     uint64
	tasks   []*task
	tickers []func(elapsed time.Duration)
}

var _ ports.Scheduler = (*Loop)(nil)

func New() *Loop {
	return &Loop{}
}

func (l *Loop) After(delay time.Duration, fn func()) func() {
	if delay < 0 {
		delay = 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	t := &task{seq: l.seq, due: l.now + delay, fn: fn}
	l.tasks = append(l.tasks, t)

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		t.canceled = true
	}
}

// OnTick registers fn to run at the start of every Advance.
func (l *Loop) OnTick(fn func(elapsed time.Duration)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tickers = append(l.tickers, fn)
}

// Advance moves the loop clock forward, runs tick subscribers, then fires
// every task that is due, including tasks scheduled by the ones it fires.
func (l *Loop) Advance(elapsed time.Duration) {
	if elapsed < 0 {
		elapsed = 0
	}

	l.mu.Lock()
	l.now += elapsed
	tickers := append([]func(time.Duration){}, l.tickers...)
	l.mu.Unlock()

	for _, tick := range tickers {
		tick(elapsed)
	}

	for {
		next := l.popDue()
		if next == nil {
			return
		}
		next.fn()
	}
}

func (l *Loop) popDue() *task {
	l.mu.Lock()
	defer l.mu.Unlock()

	live := l.tasks[:0]
	for _, t := range l.tasks {
		if !t.canceled {
			live = append(live, t)
		}
	}
	l.tasks = live

	sort.SliceStable(l.tasks, func(i, j int) bool {
		if l.tasks[i].due == l.tasks[j].due {
			return l.tasks[i].seq < l.tasks[j].seq
		}
		return l.tasks[i].due < l.tasks[j].due
	})

	if len(l.tasks) == 0 || l.tasks[0].due > l.now {
		return nil
	}

	next := l.tasks[0]
	l.tasks = l.tasks[1:]
	return next
}

// Pending counts scheduled tasks that have neither fired nor been canceled.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, t := range l.tasks {
		if !t.canceled {
			count++
		}
	}

	return count
}

// Run advances the loop by wall-clock time every interval until done
// reports true or ctx is canceled.
func (l *Loop) Run(ctx context.Context, interval time.Duration, done func() bool) error {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	l.Advance(0)
	for !done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			l.Advance(elapsed)
		}
	}

	return nil
}

const DefaultTickInterval = 50 * time.Millisecond
