package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenu(h *harness) *MenuService {
	return NewMenuService(h.sessions, h.scenes, h.immersive, h.loop, 2*time.Second, nil)
}

func TestMenuStartTherapyLoadsPatternSceneAndStartsSession(t *testing.T) {
	h := newHarness(t)
	menu := newMenu(h)

	cfg, err := menu.StartTherapy(context.Background(), MenuSelection{UserName: "", PatternIndex: 7, DurationIndex: -2})
	require.NoError(t, err)

	assert.Equal(t, domain.GuestUserID, cfg.UserID)
	assert.Equal(t, domain.PatternID("splinetrack"), cfg.Pattern.ID)
	assert.Equal(t, 6*time.Second, cfg.Duration)

	h.advance(0)
	assert.Equal(t, domain.SceneName("5 VR SplineTrack"), h.scenes.Current())
	assert.True(t, h.immersive.IsImmersive())

	h.advance(6 * time.Second)
	h.advance(2 * time.Second)

	assert.Equal(t, domain.SceneMainMenu, h.scenes.Current())
	assert.False(t, h.immersive.IsImmersive())
	records := h.records(t)
	require.Len(t, records, 1)
	assert.Equal(t, domain.GuestUserID, records[0].UserID)
}

func TestMenuOpenHistorySkipsWhenAlreadyThere(t *testing.T) {
	h := newHarness(t)
	menu := newMenu(h)

	menu.OpenHistory(context.Background())
	assert.Equal(t, 1, h.loop.Pending())
	h.advance(0)
	assert.Equal(t, domain.SceneHistory, h.scenes.Current())

	menu.OpenHistory(context.Background())
	assert.Zero(t, h.loop.Pending())
}

func enterMainMenu(t *testing.T, h *harness) {
	t.Helper()

	h.scenes.RequestSceneChange(context.Background(), domain.SceneMainMenu, 0)
	h.advance(0)
	require.Equal(t, domain.SceneMainMenu, h.scenes.Current())
}

func TestMenuEnterExitsImmersiveAfterDelay(t *testing.T) {
	h := newHarness(t)
	menu := newMenu(h)
	enterMainMenu(t, h)
	require.NoError(t, h.immersive.EnterImmersiveMode(context.Background()))

	menu.Enter(context.Background())
	h.advance(time.Second)
	assert.True(t, h.immersive.IsImmersive())

	h.advance(time.Second)
	assert.False(t, h.immersive.IsImmersive())
}

func TestMenuStartTherapyKeepsImmersiveUntilSessionEnds(t *testing.T) {
	h := newHarness(t)
	menu := newMenu(h)
	enterMainMenu(t, h)

	menu.Enter(context.Background())
	_, err := menu.StartTherapy(context.Background(), MenuSelection{UserName: "alice", PatternIndex: 0, DurationIndex: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, h.loop.Pending(), "only the pattern scene load is pending")

	h.advance(0)
	require.Equal(t, domain.SceneName("3 VR Glow"), h.scenes.Current())

	for elapsed := time.Duration(0); elapsed < 30*time.Second; elapsed += 500 * time.Millisecond {
		assert.True(t, h.immersive.IsImmersive(), "immersive at %s", elapsed)
		_, active := h.sessions.Active()
		require.True(t, active)
		h.advance(500 * time.Millisecond)
	}

	_, active := h.sessions.Active()
	assert.False(t, active)
	assert.Equal(t, []domain.EventKind{domain.EventStarted, domain.EventCompleted}, h.eventKinds())

	h.advance(2 * time.Second)
	assert.Equal(t, domain.SceneMainMenu, h.scenes.Current())
	assert.False(t, h.immersive.IsImmersive())

	_, exits := h.immersive.Transitions()
	assert.Equal(t, 1, exits)
}

func TestMenuOpenHistoryCancelsPendingImmersiveExit(t *testing.T) {
	h := newHarness(t)
	menu := newMenu(h)
	enterMainMenu(t, h)

	menu.Enter(context.Background())
	menu.OpenHistory(context.Background())
	assert.Equal(t, 1, h.loop.Pending())

	h.advance(0)
	require.NoError(t, h.immersive.EnterImmersiveMode(context.Background()))
	h.advance(3 * time.Second)

	assert.Equal(t, domain.SceneHistory, h.scenes.Current())
	assert.True(t, h.immersive.IsImmersive())
}

func TestMenuEnterTwiceKeepsOneExitPending(t *testing.T) {
	h := newHarness(t)
	menu := newMenu(h)
	enterMainMenu(t, h)

	menu.Enter(context.Background())
	menu.Enter(context.Background())

	assert.Equal(t, 1, h.loop.Pending())
}
