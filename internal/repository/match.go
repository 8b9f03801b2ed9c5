package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	matchKeyPrefix     = "match:"
	unfinishedSetKey   = "matches:unfinished"
	userMatchKeyPrefix = "user:"
	userMatchKeySuffix = ":matches"
)

type MatchRepository interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error

	GetUnfinished(ctx context.Context) ([]*entity.Match, error)
	GetByUser(ctx context.Context, userID string) ([]*entity.Match, error)
}

type dbMatch struct {
	client *redis.Client
}

func NewMatchRepository(client *redis.Client) MatchRepository {
	return &dbMatch{
		client: client,
	}
}

func (that *dbMatch) CreateOrUpdate(ctx context.Context, match *entity.Match) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	matchKey := matchKeyPrefix + match.ID
	if err = that.client.Set(ctx, matchKey, matchJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set match: %w", err)
	}

	// keep the query indexes in step with the document
	if match.IsTerminal() {
		if err = that.client.SRem(ctx, unfinishedSetKey, match.ID).Err(); err != nil {
			return fmt.Errorf("failed to unindex finished match: %w", err)
		}
	} else {
		if err = that.client.SAdd(ctx, unfinishedSetKey, match.ID).Err(); err != nil {
			return fmt.Errorf("failed to index unfinished match: %w", err)
		}
	}

	for _, participant := range match.Participants {
		userKey := userMatchKeyPrefix + participant.UserID + userMatchKeySuffix
		if err = that.client.SAdd(ctx, userKey, match.ID).Err(); err != nil {
			return fmt.Errorf("failed to index match for user: %w", err)
		}
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	matchKey := matchKeyPrefix + id

	response, err := that.client.Get(ctx, matchKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	var existingMatch entity.Match
	if err = json.Unmarshal([]byte(response), &existingMatch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &existingMatch, nil
}

func (that *dbMatch) DeleteByID(ctx context.Context, id string) error {
	matchKey := matchKeyPrefix + id

	if err := that.client.Del(ctx, matchKey).Err(); err != nil {
		return fmt.Errorf("failed to delete match by id: %w", err)
	}

	if err := that.client.SRem(ctx, unfinishedSetKey, id).Err(); err != nil {
		return fmt.Errorf("failed to unindex deleted match: %w", err)
	}

	return nil
}

func (that *dbMatch) GetUnfinished(ctx context.Context) ([]*entity.Match, error) {
	ids, err := that.client.SMembers(ctx, unfinishedSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read unfinished index: %w", err)
	}

	return that.getAll(ctx, ids)
}

func (that *dbMatch) GetByUser(ctx context.Context, userID string) ([]*entity.Match, error) {
	userKey := userMatchKeyPrefix + userID + userMatchKeySuffix

	ids, err := that.client.SMembers(ctx, userKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read user match index: %w", err)
	}

	return that.getAll(ctx, ids)
}

func (that *dbMatch) getAll(ctx context.Context, ids []string) ([]*entity.Match, error) {
	matches := make([]*entity.Match, 0, len(ids))

	for _, id := range ids {
		match, err := that.GetByID(ctx, id)
		if errors.Is(err, apperror.ErrNotFound) {
			// index entry outlived a deleted match
			continue
		}
		if err != nil {
			return nil, err
		}

		matches = append(matches, match)
	}

	return matches, nil
}
