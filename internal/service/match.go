package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type MatchService interface {
	UpdateMatch(ctx context.Context, match *entity.Match) error
	DeleteMatch(ctx context.Context, matchID string) error

	GetMatchByID(ctx context.Context, id string) (*entity.Match, error)
	GetUnfinishedMatches(ctx context.Context) ([]*entity.Match, error)
	GetMatchesByUser(ctx context.Context, userID string) ([]*entity.Match, error)
}

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error

	GetUnfinished(ctx context.Context) ([]*entity.Match, error)
	GetByUser(ctx context.Context, userID string) ([]*entity.Match, error)
}

type matchService struct {
	matchRepo matchRepo
}

func NewMatchService(matchRepo matchRepo) MatchService {
	return &matchService{
		matchRepo: matchRepo,
	}
}

func (that *matchService) UpdateMatch(ctx context.Context, match *entity.Match) error {
	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}
	return nil
}

func (that *matchService) DeleteMatch(ctx context.Context, matchID string) error {
	if err := that.matchRepo.DeleteByID(ctx, matchID); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}

func (that *matchService) GetMatchByID(ctx context.Context, id string) (*entity.Match, error) {
	match, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve match from storage: %w", err)
	}
	return match, nil
}

func (that *matchService) GetUnfinishedMatches(ctx context.Context) ([]*entity.Match, error) {
	matches, err := that.matchRepo.GetUnfinished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve unfinished matches from storage: %w", err)
	}
	return matches, nil
}

func (that *matchService) GetMatchesByUser(ctx context.Context, userID string) ([]*entity.Match, error) {
	matches, err := that.matchRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user matches from storage: %w", err)
	}
	return matches, nil
}
