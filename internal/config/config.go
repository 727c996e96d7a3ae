package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/bnema/vr-therapy-cli/internal/logging"
	"github.com/spf13/viper"
)

const (
	configDir  = ".vrt"
	configName = "config"
	configType = "toml"
	envPrefix  = "VRT"

	BackendMemory = "memory"
	BackendTOML   = "toml"
	BackendSQLite = "sqlite"
)

const (
	keyLogLevel         = "log.level"
	keyLogFormat        = "log.format"
	keyHistoryBackend   = "history.backend"
	keyHistoryPath      = "history.path"
	keySessionDurations = "session.durations"
	keySessionPatterns  = "session.patterns"
	keyCompletionDelay  = "navigation.completion_delay"
	keyTerminationDelay = "navigation.termination_delay"
	keyBootDelay        = "navigation.boot_delay"
	keyMenuExitDelay    = "navigation.menu_exit_delay"
	keyLoopTickInterval = "loop.tick_interval"
)

const (
	defaultTickInterval  = 50 * time.Millisecond
	defaultBootDelay     = 500 * time.Millisecond
	defaultMenuExitDelay = 2 * time.Second
	defaultCompletion    = 2 * time.Second
	defaultTermination   = 1500 * time.Millisecond
	defaultHistoryTOML   = "history.toml"
	defaultHistorySQLite = "history.db"
)

type Config struct {
	Log        logging.Config
	History    HistoryConfig
	Catalog    domain.Catalog
	Navigation NavigationConfig
	Loop       LoopConfig
}

type HistoryConfig struct {
	Backend string
	Path    string
}

type NavigationConfig struct {
	CompletionDelay  time.Duration
	TerminationDelay time.Duration
	BootDelay        time.Duration
	MenuExitDelay    time.Duration
}

type LoopConfig struct {
	TickInterval time.Duration
}

type patternConfig struct {
	ID    string `mapstructure:"id"`
	Name  string `mapstructure:"name"`
	Scene string `mapstructure:"scene"`
}

// Load reads ~/.vrt/config.toml and VRT_* environment overrides into v and
// resolves the result. A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	backend := strings.ToLower(strings.TrimSpace(v.GetString(keyHistoryBackend)))
	switch backend {
	case BackendTOML:
		v.SetDefault(keyHistoryPath, filepath.Join(homeDir, configDir, defaultHistoryTOML))
	case BackendSQLite:
		v.SetDefault(keyHistoryPath, filepath.Join(homeDir, configDir, defaultHistorySQLite))
	case BackendMemory:
	default:
		return Config{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedHistoryBackend, backend)
	}

	catalog, err := loadCatalog(v)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Log: logging.Config{
			Level:  v.GetString(keyLogLevel),
			Format: v.GetString(keyLogFormat),
		},
		History: HistoryConfig{
			Backend: backend,
			Path:    v.GetString(keyHistoryPath),
		},
		Catalog: catalog,
		Navigation: NavigationConfig{
			CompletionDelay:  v.GetDuration(keyCompletionDelay),
			TerminationDelay: v.GetDuration(keyTerminationDelay),
			BootDelay:        v.GetDuration(keyBootDelay),
			MenuExitDelay:    v.GetDuration(keyMenuExitDelay),
		},
		Loop: LoopConfig{
			TickInterval: v.GetDuration(keyLoopTickInterval),
		},
	}

	if err := cfg.Log.Validate(); err != nil {
		return Config{}, fmt.Errorf("log config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := logging.NewDefaultConfig()
	v.SetDefault(keyLogLevel, defaults.Level)
	v.SetDefault(keyLogFormat, defaults.Format)
	v.SetDefault(keyHistoryBackend, BackendTOML)
	v.SetDefault(keySessionDurations, []int{6, 30, 60, 600})
	v.SetDefault(keyCompletionDelay, defaultCompletion)
	v.SetDefault(keyTerminationDelay, defaultTermination)
	v.SetDefault(keyBootDelay, defaultBootDelay)
	v.SetDefault(keyMenuExitDelay, defaultMenuExitDelay)
	v.SetDefault(keyLoopTickInterval, defaultTickInterval)
}

func loadCatalog(v *viper.Viper) (domain.Catalog, error) {
	catalog := domain.DefaultCatalog()

	if v.IsSet(keySessionPatterns) {
		var patterns []patternConfig
		if err := v.UnmarshalKey(keySessionPatterns, &patterns); err != nil {
			return domain.Catalog{}, fmt.Errorf("decode %s: %w", keySessionPatterns, err)
		}

		catalog.Patterns = make([]domain.Pattern, 0, len(patterns))
		for _, p := range patterns {
			catalog.Patterns = append(catalog.Patterns, domain.Pattern{
				ID:    domain.PatternID(strings.TrimSpace(p.ID)),
				Name:  p.Name,
				Scene: domain.SceneName(p.Scene),
			})
		}
	}

	seconds := v.GetIntSlice(keySessionDurations)
	catalog.Durations = make([]time.Duration, 0, len(seconds))
	for _, s := range seconds {
		catalog.Durations = append(catalog.Durations, time.Duration(s)*time.Second)
	}

	if err := catalog.Validate(); err != nil {
		return domain.Catalog{}, fmt.Errorf("session catalog: %w", err)
	}

	return catalog, nil
}
