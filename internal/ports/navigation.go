package ports

import (
	"context"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/domain"
)

// Navigator requests a scene transition. Requests are fire-and-forget:
// failures are logged by the implementation, never returned.
type Navigator interface {
	RequestSceneChange(ctx context.Context, dest domain.SceneName, delay time.Duration)
}

type SceneLoader interface {
	LoadScene(ctx context.Context, name domain.SceneName) error
}

type ImmersiveController interface {
	EnterImmersiveMode(ctx context.Context) error
	ExitImmersiveMode(ctx context.Context) error
	IsImmersive() bool
}
