package application

import (
	"context"
	"fmt"

	"github.com/bnema/vr-therapy-cli/internal/domain"
	"github.com/bnema/vr-therapy-cli/internal/ports"
	"go.uber.org/zap"
)

type HistoryService struct {
	repo    ports.HistoryRepository
	catalog domain.Catalog
	logger  *zap.Logger
}

func NewHistoryService(repo ports.HistoryRepository, catalog domain.Catalog, logger *zap.Logger) *HistoryService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &HistoryService{
		repo:    repo,
		catalog: catalog,
		logger:  logger.Named("history"),
	}
}

func (s *HistoryService) Log(ctx context.Context, record domain.SessionRecord) error {
	if err := s.repo.Append(ctx, record); err != nil {
		return fmt.Errorf("append session record: %w", err)
	}

	s.logger.Info("session logged",
		zap.String("user", record.UserID),
		zap.String("pattern", string(record.PatternID)),
		zap.String("outcome", string(record.Outcome)),
	)
	return nil
}

func (s *HistoryService) Records(ctx context.Context) ([]domain.SessionRecord, error) {
	records, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session records: %w", err)
	}

	return records, nil
}

func (s *HistoryService) List(ctx context.Context) ([]HistoryEntry, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, HistoryEntry{
			Record:      record,
			PatternName: s.patternName(record.PatternID),
			Elapsed:     record.Elapsed(),
		})
	}

	return entries, nil
}

// patternName falls back to the raw id for records written under an older
// catalog.
func (s *HistoryService) patternName(id domain.PatternID) string {
	pattern, ok := s.catalog.PatternByID(id)
	if !ok || pattern.Name == "" {
		return string(id)
	}

	return pattern.Name
}
