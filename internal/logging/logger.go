package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logging configuration.
type Config struct {
	Level  string
	Format string
	Output io.Writer
}

func NewDefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: FormatConsole,
	}
}

func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}

	switch strings.ToLower(c.Format) {
	case FormatConsole, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid log format %q: must be console or json", c.Format)
	}
}

// New builds a zap logger writing to cfg.Output, stderr when unset.
func New(cfg Config) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	level, _ := zapcore.ParseLevel(cfg.Level)

	var out io.Writer = os.Stderr
	if cfg.Output != nil {
		out = cfg.Output
	}

	core := zapcore.NewCore(newEncoder(strings.ToLower(cfg.Format)), zapcore.AddSync(out), level)
	return zap.New(core), nil
}

func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == FormatConsole {
		return zapcore.NewConsoleEncoder(encoderCfg)
	}
	return zapcore.NewJSONEncoder(encoderCfg)
}

// Sync flushes the logger, ignoring the EINVAL/ENOTTY that Linux returns
// when syncing a terminal.
func Sync(logger *zap.Logger) error {
	err := logger.Sync()
	if err != nil && isStdoutSyncError(err) {
		return nil
	}
	return err
}

func isStdoutSyncError(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.EINVAL || errno == syscall.ENOTTY
	}
	return false
}
