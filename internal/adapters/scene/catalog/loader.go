package catalog

import (
	"context"
	"fmt"

	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/bnema/vr-therapy-cli/internal/ports"
)

// Loader accepts any scene in the build catalog. There are no assets to
// stream in a headless host, so a known name loads immediately.
type Loader struct {
	scenes map[domain.SceneName]struct{}
}

var _ ports.SceneLoader = (*Loader)(nil)

func NewLoader(catalog domain.Catalog) *Loader {
	scenes := make(map[domain.SceneName]struct{})
	for _, scene := range catalog.Scenes() {
		scenes[scene] = struct{}{}
	}

	return &Loader{scenes: scenes}
}

func (l *Loader) LoadScene(ctx context.Context, name domain.SceneName) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := l.scenes[name]; !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownScene, name)
	}

	return nil
}
