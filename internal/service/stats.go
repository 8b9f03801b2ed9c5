package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

// StatsRecorder receives terminal outcomes. Delivery completes before the
// triggering action is acknowledged.
type StatsRecorder interface {
	RecordOutcome(ctx context.Context, userID string, delta entity.StatsDelta) error
}

type statsRepo interface {
	ApplyStatsDelta(ctx context.Context, userID string, delta entity.StatsDelta) error
}

type statsService struct {
	statsRepo statsRepo
}

func NewStatsService(statsRepo statsRepo) StatsRecorder {
	return &statsService{
		statsRepo: statsRepo,
	}
}

func (that *statsService) RecordOutcome(ctx context.Context, userID string, delta entity.StatsDelta) error {
	if err := that.statsRepo.ApplyStatsDelta(ctx, userID, delta); err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	return nil
}
