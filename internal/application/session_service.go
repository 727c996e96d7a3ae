package application

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/bnema/vr-therapy-cli/internal/ports"
	"go.uber.org/zap"
)

// SessionService coordinates the session state, its countdown timer, the
// history log and navigation back to the menu. Completion and forced
// termination are serialized by mu, and each session is finalized by
// exactly one of them.
type SessionService struct {
	mu      sync.Mutex
	catalog domain.Catalog
	state   domain.SessionState
	timer   *domain.Timer
	expired []finalized

	history *HistoryService
	nav     ports.Navigator
	clock   ports.Clock
	delays  SessionDelays
	logger  *zap.Logger

	subsMu  sync.Mutex
	subs    map[int]func(domain.SessionEvent)
	nextSub int
}

type finalized struct {
	config domain.SessionConfig
	record domain.SessionRecord
}

func NewSessionService(
	catalog domain.Catalog,
	history *HistoryService,
	nav ports.Navigator,
	clock ports.Clock,
	delays SessionDelays,
	logger *zap.Logger,
) (*SessionService, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("validate session catalog: %w", err)
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &SessionService{
		catalog: catalog,
		history: history,
		nav:     nav,
		clock:   clock,
		delays:  delays,
		logger:  logger.Named("session"),
		subs:    map[int]func(domain.SessionEvent){},
	}
	s.timer = domain.NewTimer(s.onTimerExpired)

	return s, nil
}

func (s *SessionService) StartSession(ctx context.Context, cmd StartSessionCommand) (domain.SessionConfig, error) {
	if err := ctx.Err(); err != nil {
		return domain.SessionConfig{}, err
	}

	cfg := domain.SessionConfig{
		UserID:   domain.NormalizeUserID(cmd.UserID),
		Pattern:  s.catalog.PatternAt(cmd.PatternIndex),
		Duration: s.catalog.DurationAt(cmd.DurationIndex),
	}

	s.mu.Lock()
	replaced := s.state.Begin(cfg, s.clock.Now())
	s.timer.Start(cfg.Duration)
	s.mu.Unlock()

	if replaced {
		s.logger.Warn("active session overwritten by a new start", zap.String("user", cfg.UserID))
	}
	s.logger.Info("session started",
		zap.String("user", cfg.UserID),
		zap.String("pattern", string(cfg.Pattern.ID)),
		zap.Duration("duration", cfg.Duration),
		zap.Int("pattern_index", cmd.PatternIndex),
		zap.Int("duration_index", cmd.DurationIndex),
	)

	s.notify(domain.SessionEvent{Kind: domain.EventStarted, Config: cfg})
	return cfg, nil
}

// Advance ticks the session timer. A natural completion is finalized after
// the lock is released so subscribers may call back into the service.
func (s *SessionService) Advance(ctx context.Context, elapsed time.Duration) {
	s.mu.Lock()
	s.timer.Tick(elapsed)
	done := s.expired
	s.expired = nil
	s.mu.Unlock()

	for _, f := range done {
		s.finalize(ctx, f, domain.EventCompleted, s.delays.Completion)
	}
}

// onTimerExpired runs inside Advance with mu held.
func (s *SessionService) onTimerExpired() {
	cfg, _ := s.state.Active()
	record, err := s.state.End(s.clock.Now(), domain.OutcomeCompleted)
	if err != nil {
		s.logger.Warn("timer completed without an active session", zap.Error(err))
		return
	}

	s.expired = append(s.expired, finalized{config: cfg, record: record})
}

func (s *SessionService) ForceEndSession(ctx context.Context) (domain.SessionRecord, error) {
	s.mu.Lock()
	if !s.timer.Stop() {
		s.logger.Debug("force end with no running timer", zap.Stringer("timer", s.timer.State()))
	}
	cfg, _ := s.state.Active()
	record, err := s.state.End(s.clock.Now(), domain.OutcomeTerminated)
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("tried to end session before starting one")
		return domain.SessionRecord{}, fmt.Errorf("force end session: %w", err)
	}

	s.finalize(ctx, finalized{config: cfg, record: record}, domain.EventTerminated, s.delays.Termination)
	return record, nil
}

func (s *SessionService) finalize(ctx context.Context, f finalized, kind domain.EventKind, delay time.Duration) {
	s.logger.Info("session ended",
		zap.String("user", f.record.UserID),
		zap.String("outcome", string(f.record.Outcome)),
		zap.Duration("elapsed", f.record.Elapsed()),
	)

	if err := s.history.Log(ctx, f.record); err != nil {
		s.logger.Error("failed to log session", zap.Error(err))
	}

	record := f.record
	s.notify(domain.SessionEvent{Kind: kind, Config: f.config, Record: &record})

	if s.nav != nil {
		s.nav.RequestSceneChange(ctx, domain.SceneMainMenu, delay)
	}
}

// Subscribe registers fn for session events until the returned func is
// called.
func (s *SessionService) Subscribe(fn func(domain.SessionEvent)) func() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *SessionService) notify(event domain.SessionEvent) {
	s.subsMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	subs := make([]func(domain.SessionEvent), 0, len(ids))
	for _, id := range ids {
		subs = append(subs, s.subs[id])
	}
	s.subsMu.Unlock()

	for _, fn := range subs {
		fn(event)
	}
}

func (s *SessionService) Active() (domain.SessionConfig, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Active()
}

func (s *SessionService) Remaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.timer.Remaining()
}

func (s *SessionService) TimerState() domain.TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.timer.State()
}

func (s *SessionService) Catalog() domain.Catalog {
	return s.catalog
}
