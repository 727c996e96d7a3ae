package headless

import (
	"context"
	"sync"

	"github.com/bnema/vr-therapy-cli/internal/ports"
	"go.uber.org/zap"
)

// Controller stands in for the XR runtime when no headset is attached. It
// tracks the mode and logs each transition.
type Controller struct {
	mu        sync.Mutex
	immersive bool
	enters    int
	exits     int
	logger    *zap.Logger
}

var _ ports.ImmersiveController = (*Controller)(nil)

func NewController(logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Controller{logger: logger.Named("xr")}
}

func (c *Controller) EnterImmersiveMode(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.immersive {
		return nil
	}
	c.immersive = true
	c.enters++
	c.logger.Info("xr started")
	return nil
}

func (c *Controller) ExitImmersiveMode(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.immersive {
		return nil
	}
	c.immersive = false
	c.exits++
	c.logger.Info("xr stopped")
	return nil
}

func (c *Controller) IsImmersive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.immersive
}

// Transitions reports how many times immersive mode was entered and exited.
func (c *Controller) Transitions() (enters, exits int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.enters, c.exits
}
