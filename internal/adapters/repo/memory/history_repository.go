package memory

import (
	"context"
	"sync"

	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/bnema/vr-therapy-cli/internal/ports"
)

// HistoryRepository keeps the session log for the lifetime of the process.
type HistoryRepository struct {
	mu      sync.RWMutex
	records []domain.SessionRecord
}

var _ ports.HistoryRepository = (*HistoryRepository)(nil)

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

func (r *HistoryRepository) Append(ctx context.Context, record domain.SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record)
	return nil
}

func (r *HistoryRepository) All(ctx context.Context) ([]domain.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.SessionRecord(nil), r.records...), nil
}
