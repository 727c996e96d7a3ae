package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/adapters/immersive/headless"
	"github.com/bnema/vr-therapy-cli/internal/adapters/loop"
	"github.com/bnema/vr-therapy-cli/internal/adapters/repo/memory"
	scenecatalog "github.com/bnema/vr-therapy-cli/internal/adapters/scene/catalog"
	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/bnema/vr-therapy-cli/internal/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var testEpoch = time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

// harness wires the real scheduler, scene controller and in-memory history
// around a SessionService, with simulated time.
type harness struct {
	now       time.Time
	loop      *loop.Loop
	repo      *memory.HistoryRepository
	immersive *headless.Controller
	scenes    *SceneController
	history   *HistoryService
	sessions  *SessionService
	logs      *observer.ObservedLogs
	events    []domain.SessionEvent
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{now: testEpoch}

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().RunAndReturn(func() time.Time { return h.now }).Maybe()

	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	catalog := domain.DefaultCatalog()

	h.logs = logs
	h.loop = loop.New()
	h.repo = memory.NewHistoryRepository()
	h.immersive = headless.NewController(logger)
	h.scenes = NewSceneController(catalog, scenecatalog.NewLoader(catalog), h.immersive, h.loop, logger)
	h.history = NewHistoryService(h.repo, catalog, logger)

	sessions, err := NewSessionService(catalog, h.history, h.scenes, clock, DefaultSessionDelays(), logger)
	require.NoError(t, err)
	h.sessions = sessions

	h.loop.OnTick(func(elapsed time.Duration) {
		h.sessions.Advance(context.Background(), elapsed)
	})
	h.sessions.Subscribe(func(event domain.SessionEvent) {
		h.events = append(h.events, event)
	})

	return h
}

func (h *harness) advance(d time.Duration) {
	h.now = h.now.Add(d)
	h.loop.Advance(d)
}

func (h *harness) records(t *testing.T) []domain.SessionRecord {
	t.Helper()

	records, err := h.repo.All(context.Background())
	require.NoError(t, err)
	return records
}

func (h *harness) eventKinds() []domain.EventKind {
	kinds := make([]domain.EventKind, 0, len(h.events))
	for _, event := range h.events {
		kinds = append(kinds, event.Kind)
	}
	return kinds
}

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool { return ctx != nil })
}

func fixedClock(t *testing.T, at time.Time) *mocks.MockClock {
	t.Helper()

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(at).Maybe()
	return clock
}
