package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/adapters/immersive/headless"
	"github.com/bnema/vr-therapy-cli/internal/adapters/loop"
	historyrender "github.com/bnema/vr-therapy-cli/internal/adapters/render/history"
	"github.com/bnema/vr-therapy-cli/internal/adapters/repo/memory"
	sqliterepo "github.com/bnema/vr-therapy-cli/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/vr-therapy-cli/internal/adapters/repo/toml"
	scenecatalog "github.com/bnema/vr-therapy-cli/internal/adapters/scene/catalog"
	"github.com/bnema/vr-therapy-cli/internal/application"
	"github.com/bnema/vr-therapy-cli/internal/config"
	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/bnema/vr-therapy-cli/internal/logging"
	"github.com/bnema/vr-therapy-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	config          config.Config
	logger          *zap.Logger
	loop            *loop.Loop
	immersive       *headless.Controller
	scenes          *application.SceneController
	history         *application.HistoryService
	sessions        *application.SessionService
	menu            *application.MenuService
	boot            *application.BootService
	historyRenderer func([]application.HistoryEntry, historyrender.RenderOptions) (string, error)
	closeHistory    func() error
	now             func() time.Time
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, closeRepo, err := wireHistoryRepository(cfg.History, v)
	if err != nil {
		return nil, fmt.Errorf("wire history repository: %w", err)
	}

	catalog := cfg.Catalog
	l := loop.New()
	immersive := headless.NewController(logger)
	scenes := application.NewSceneController(catalog, scenecatalog.NewLoader(catalog), immersive, l, logger)
	history := application.NewHistoryService(repo, catalog, logger)

	sessions, err := application.NewSessionService(catalog, history, scenes, ports.SystemClock{}, application.SessionDelays{
		Completion:  cfg.Navigation.CompletionDelay,
		Termination: cfg.Navigation.TerminationDelay,
	}, logger)
	if err != nil {
		_ = closeRepo()
		return nil, fmt.Errorf("wire session service: %w", err)
	}

	l.OnTick(func(elapsed time.Duration) {
		sessions.Advance(context.Background(), elapsed)
	})

	return &app{
		config:          cfg,
		logger:          logger,
		loop:            l,
		immersive:       immersive,
		scenes:          scenes,
		history:         history,
		sessions:        sessions,
		menu:            application.NewMenuService(sessions, scenes, immersive, l, cfg.Navigation.MenuExitDelay, logger),
		boot:            application.NewBootService(scenes, immersive, l, cfg.Navigation.BootDelay, logger),
		historyRenderer: historyrender.Render,
		closeHistory:    closeRepo,
		now:             time.Now,
	}, nil
}

func wireHistoryRepository(cfg config.HistoryConfig, v *viper.Viper) (ports.HistoryRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendMemory:
		return memory.NewHistoryRepository(), noop, nil
	case config.BackendTOML:
		repo, err := tomlrepo.NewHistoryRepository(v)
		if err != nil {
			return nil, nil, err
		}
		return repo, noop, nil
	case config.BackendSQLite:
		repo, err := sqliterepo.NewHistoryRepository(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedHistoryBackend, cfg.Backend)
	}
}

func (a *app) close() error {
	err := a.closeHistory()
	if syncErr := logging.Sync(a.logger); syncErr != nil && err == nil {
		err = syncErr
	}
	return err
}
