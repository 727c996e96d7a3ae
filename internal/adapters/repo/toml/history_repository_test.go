package toml

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*HistoryRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "history.toml")
	config := viper.New()
	config.Set("history.path", path)

	repo, err := NewHistoryRepository(config)
	require.NoError(t, err)

	return repo, path
}

func TestHistoryRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	start := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	first := domain.SessionRecord{
		ID:        "rec-1",
		UserID:    "alice",
		PatternID: "glow",
		StartTime: start,
		EndTime:   start.Add(6 * time.Second),
		Planned:   6 * time.Second,
		Outcome:   domain.OutcomeCompleted,
	}
	second := domain.SessionRecord{
		ID:        "rec-2",
		UserID:    "bob",
		PatternID: "splinetrack",
		StartTime: start.Add(time.Minute),
		EndTime:   start.Add(time.Minute + 1500*time.Millisecond),
		Planned:   30 * time.Second,
		Outcome:   domain.OutcomeTerminated,
	}

	require.NoError(t, repo.Append(context.Background(), first))
	require.NoError(t, repo.Append(context.Background(), second))

	records, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.SessionRecord{first, second}, records)
}

func TestHistoryRepositoryMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	records, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHistoryRepositoryPersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	require.NoError(t, repo.Append(context.Background(), domain.SessionRecord{ID: "rec-1", UserID: "alice"}))

	config := viper.New()
	config.Set("history.path", path)
	reopened, err := NewHistoryRepository(config)
	require.NoError(t, err)

	records, err := reopened.All(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "alice", records[0].UserID)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(historyFileMode), info.Mode().Perm())
}

func TestHistoryRepositoryRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0o600))

	_, err := repo.All(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported history schema version 99")
}

func TestHistoryRepositoryRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	require.NoError(t, os.WriteFile(path, []byte("sessions = ["), 0o600))

	err := repo.Append(context.Background(), domain.SessionRecord{ID: "rec-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode history file")
}

func TestHistoryRepositoryConcurrentAppendsAreSerialized(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Append(context.Background(), domain.SessionRecord{ID: "rec-" + strconv.Itoa(i)}))
		}(i)
	}
	wg.Wait()

	records, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, writers)
}

func TestHistoryRepositoryHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	repo, path := newTestRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Append(ctx, domain.SessionRecord{ID: "rec-1"}), context.Canceled)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
