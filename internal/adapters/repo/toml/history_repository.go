package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/bnema/vr-therapy-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	historyPathKey    = "history.path"
	historyFileMode   = 0o600
	historyDirMode    = 0o700
	historyConfigDir  = ".vrt"
	historyConfigFile = "history.toml"
	tempFilePattern   = ".history-*.toml.tmp"
)

type HistoryRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.HistoryRepository = (*HistoryRepository)(nil)

func NewHistoryRepository(cfg *viper.Viper) (*HistoryRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(historyPathKey)
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, historyConfigDir, historyConfigFile)
	}

	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &HistoryRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *HistoryRepository) Path() string {
	return r.path
}

func (r *HistoryRepository) Append(ctx context.Context, record domain.SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	file.Sessions = append(file.Sessions, toSchema(record))

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *HistoryRepository) All(ctx context.Context) ([]domain.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	records := make([]domain.SessionRecord, 0, len(file.Sessions))
	for _, entry := range file.Sessions {
		records = append(records, fromSchema(entry))
	}

	return records, nil
}

func (r *HistoryRepository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read history file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode history file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve history path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

// writeSchema replaces the history file through a temp file and rename so
// readers never observe a partial log.
func (r *HistoryRepository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), historyDirMode); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode history file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp history file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp history file: %w", err)
	}

	if err := tempFile.Chmod(historyFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp history file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp history file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace history file: %w", err)
	}

	cleanup = false
	return nil
}

func toSchema(record domain.SessionRecord) sessionSchema {
	return sessionSchema{
		ID:             record.ID,
		UserID:         record.UserID,
		PatternID:      string(record.PatternID),
		StartTime:      formatTime(record.StartTime),
		EndTime:        formatTime(record.EndTime),
		PlannedSeconds: int64(record.Planned / time.Second),
		Outcome:        string(record.Outcome),
	}
}

func fromSchema(entry sessionSchema) domain.SessionRecord {
	return domain.SessionRecord{
		ID:        entry.ID,
		UserID:    entry.UserID,
		PatternID: domain.PatternID(entry.PatternID),
		StartTime: parseTime(entry.StartTime),
		EndTime:   parseTime(entry.EndTime),
		Planned:   time.Duration(entry.PlannedSeconds) * time.Second,
		Outcome:   domain.Outcome(entry.Outcome),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339Nano)
}
