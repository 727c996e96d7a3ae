package ports

import (
	"context"

	"github.com/bnema/vr-therapy-cli/internal/domain"
)

// HistoryRepository is an append-only, insertion-ordered session log.
type HistoryRepository interface {
	Append(ctx context.Context, record domain.SessionRecord) error
	All(ctx context.Context) ([]domain.SessionRecord, error)
}
