package application

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/bnema/vr-therapy-cli/internal/ports"
	"go.uber.org/zap"
)

// SceneController performs scene transitions on the host scheduler and
// keeps immersive mode in line with the loaded scene: VR scenes run
// immersive, every other scene runs flat.
type SceneController struct {
	catalog   domain.Catalog
	loader    ports.SceneLoader
	immersive ports.ImmersiveController
	scheduler ports.Scheduler
	logger    *zap.Logger

	mu        sync.Mutex
	current   domain.SceneName
	listeners map[int]func(domain.SceneName)
	nextID    int
}

var _ ports.Navigator = (*SceneController)(nil)

func NewSceneController(
	catalog domain.Catalog,
	loader ports.SceneLoader,
	immersive ports.ImmersiveController,
	scheduler ports.Scheduler,
	logger *zap.Logger,
) *SceneController {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SceneController{
		catalog:   catalog,
		loader:    loader,
		immersive: immersive,
		scheduler: scheduler,
		logger:    logger.Named("scene"),
		current:   domain.SceneSplash,
		listeners: map[int]func(domain.SceneName){},
	}
}

func (c *SceneController) RequestSceneChange(ctx context.Context, dest domain.SceneName, delay time.Duration) {
	if strings.TrimSpace(string(dest)) == "" {
		c.logger.Error("scene name is empty")
		return
	}

	if c.immersive.IsImmersive() {
		if err := c.immersive.ExitImmersiveMode(ctx); err != nil {
			c.logger.Warn("exit immersive mode before scene load", zap.Error(err))
		} else {
			c.logger.Debug("immersive mode exited before loading scene", zap.String("scene", string(dest)))
		}
	}

	c.scheduler.After(delay, func() {
		c.load(ctx, dest)
	})
}

func (c *SceneController) load(ctx context.Context, dest domain.SceneName) {
	if err := c.loader.LoadScene(ctx, dest); err != nil {
		c.logger.Error("failed to load scene", zap.String("scene", string(dest)), zap.Error(err))
		return
	}

	c.mu.Lock()
	c.current = dest
	c.mu.Unlock()

	c.syncImmersive(ctx, dest)
	c.logger.Info("scene loaded",
		zap.String("scene", string(dest)),
		zap.Bool("immersive", c.immersive.IsImmersive()),
	)

	for _, fn := range c.snapshotListeners() {
		fn(dest)
	}
}

func (c *SceneController) syncImmersive(ctx context.Context, scene domain.SceneName) {
	isVR := c.catalog.IsVRScene(scene)
	immersive := c.immersive.IsImmersive()

	switch {
	case isVR && !immersive:
		if err := c.immersive.EnterImmersiveMode(ctx); err != nil {
			c.logger.Error("enter immersive mode", zap.String("scene", string(scene)), zap.Error(err))
		}
	case !isVR && immersive:
		if err := c.immersive.ExitImmersiveMode(ctx); err != nil {
			c.logger.Error("exit immersive mode", zap.String("scene", string(scene)), zap.Error(err))
		}
	}
}

// OnSceneLoaded registers fn for successful loads until the returned func
// is called.
func (c *SceneController) OnSceneLoaded(fn func(domain.SceneName)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.listeners[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

func (c *SceneController) snapshotListeners() []func(domain.SceneName) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fns := make([]func(domain.SceneName), 0, len(c.listeners))
	for id := 0; id < c.nextID; id++ {
		if fn, ok := c.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}

	return fns
}

func (c *SceneController) Current() domain.SceneName {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current
}
