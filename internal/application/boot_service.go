package application

import (
	"context"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/bnema/vr-therapy-cli/internal/ports"
	"go.uber.org/zap"
)

type BootService struct {
	nav       ports.Navigator
	immersive ports.ImmersiveController
	scheduler ports.Scheduler
	delay     time.Duration
	logger    *zap.Logger
}

func NewBootService(nav ports.Navigator, immersive ports.ImmersiveController, scheduler ports.Scheduler, delay time.Duration, logger *zap.Logger) *BootService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &BootService{
		nav:       nav,
		immersive: immersive,
		scheduler: scheduler,
		delay:     delay,
		logger:    logger.Named("boot"),
	}
}

// Boot leaves the splash scene: after delay it drops immersive mode and
// requests the main menu, which loads after a second delay.
func (b *BootService) Boot(ctx context.Context) {
	b.progress(0.7, "services wired")

	b.scheduler.After(b.delay, func() {
		b.progress(0.8, "")
		if err := b.immersive.ExitImmersiveMode(ctx); err != nil {
			b.logger.Warn("exit immersive mode on boot", zap.Error(err))
		}

		b.progress(0.9, "loading main menu")
		b.nav.RequestSceneChange(ctx, domain.SceneMainMenu, b.delay)
	})
}

func (b *BootService) progress(value float64, label string) {
	if label == "" {
		b.logger.Debug("boot progress", zap.Float64("progress", value))
		return
	}

	b.logger.Info(label, zap.Float64("progress", value))
}
