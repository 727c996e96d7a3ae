package application

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/bnema/vr-therapy-cli/internal/ports"
	"go.uber.org/zap"
)

type sceneNavigator interface {
	ports.Navigator
	Current() domain.SceneName
}

// MenuService turns main menu selections into a therapy launch.
type MenuService struct {
	sessions  *SessionService
	nav       sceneNavigator
	immersive ports.ImmersiveController
	scheduler ports.Scheduler
	exitDelay time.Duration
	logger    *zap.Logger

	mu         sync.Mutex
	cancelExit func()
}

func NewMenuService(
	sessions *SessionService,
	nav sceneNavigator,
	immersive ports.ImmersiveController,
	scheduler ports.Scheduler,
	exitDelay time.Duration,
	logger *zap.Logger,
) *MenuService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &MenuService{
		sessions:  sessions,
		nav:       nav,
		immersive: immersive,
		scheduler: scheduler,
		exitDelay: exitDelay,
		logger:    logger.Named("menu"),
	}
}

// Enter leaves immersive mode once exitDelay has passed, for headsets that
// were still immersive when the menu came up. The pending exit is dropped
// as soon as the menu is left.
func (m *MenuService) Enter(ctx context.Context) {
	cancel := m.scheduler.After(m.exitDelay, func() {
		m.mu.Lock()
		m.cancelExit = nil
		m.mu.Unlock()

		if m.nav.Current() != domain.SceneMainMenu || !m.immersive.IsImmersive() {
			return
		}
		if err := m.immersive.ExitImmersiveMode(ctx); err != nil {
			m.logger.Warn("exit immersive mode on menu", zap.Error(err))
			return
		}
		m.logger.Debug("immersive mode exited after delay")
	})

	m.mu.Lock()
	if m.cancelExit != nil {
		m.cancelExit()
	}
	m.cancelExit = cancel
	m.mu.Unlock()
}

// leave cancels the delayed immersive exit scheduled by Enter.
func (m *MenuService) leave() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancelExit != nil {
		m.cancelExit()
		m.cancelExit = nil
	}
}

func (m *MenuService) StartTherapy(ctx context.Context, selection MenuSelection) (domain.SessionConfig, error) {
	catalog := m.sessions.Catalog()
	pattern := catalog.PatternAt(selection.PatternIndex)
	user := domain.NormalizeUserID(selection.UserName)

	m.logger.Info("launching therapy",
		zap.String("scene", string(pattern.Scene)),
		zap.Duration("duration", catalog.DurationAt(selection.DurationIndex)),
		zap.String("user", user),
	)

	m.leave()
	m.nav.RequestSceneChange(ctx, pattern.Scene, 0)

	return m.sessions.StartSession(ctx, StartSessionCommand{
		UserID:        user,
		PatternIndex:  selection.PatternIndex,
		DurationIndex: selection.DurationIndex,
	})
}

func (m *MenuService) OpenHistory(ctx context.Context) {
	if m.nav.Current() == domain.SceneHistory {
		return
	}

	m.leave()
	m.nav.RequestSceneChange(ctx, domain.SceneHistory, 0)
}
