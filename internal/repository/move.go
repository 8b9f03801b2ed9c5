package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	moveKeySuffix    = ":moves"
	moveSeqKeySuffix = ":moves:seq"
)

type MoveRepository interface {
	Create(ctx context.Context, move *entity.MoveRecord) error
	ListByMatch(ctx context.Context, matchID string) ([]*entity.MoveRecord, error)
	Latest(ctx context.Context, matchID string) (*entity.MoveRecord, error)
}

type dbMove struct {
	client *redis.Client
}

func NewMoveRepository(client *redis.Client) MoveRepository {
	return &dbMove{
		client: client,
	}
}

// Create appends the move to the match's log. Scores come from a per-match
// counter rather than the timestamp: nanosecond values do not survive the
// float64 score exactly, so near-simultaneous moves could tie and reorder.
func (that *dbMove) Create(ctx context.Context, move *entity.MoveRecord) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	seq, err := that.client.Incr(ctx, matchKeyPrefix+move.MatchID+moveSeqKeySuffix).Result()
	if err != nil {
		return fmt.Errorf("failed to advance move sequence: %w", err)
	}

	moveKey := matchKeyPrefix + move.MatchID + moveKeySuffix
	err = that.client.ZAdd(ctx, moveKey, redis.Z{
		Score:  float64(seq),
		Member: moveJSON,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to add move: %w", err)
	}

	return nil
}

// ListByMatch returns the match's moves ordered newest-first.
func (that *dbMove) ListByMatch(ctx context.Context, matchID string) ([]*entity.MoveRecord, error) {
	moveKey := matchKeyPrefix + matchID + moveKeySuffix

	members, err := that.client.ZRevRange(ctx, moveKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}

	moves := make([]*entity.MoveRecord, 0, len(members))
	for _, member := range members {
		var move entity.MoveRecord
		if err = json.Unmarshal([]byte(member), &move); err != nil {
			return nil, fmt.Errorf("failed to unmarshal move: %w", err)
		}

		moves = append(moves, &move)
	}

	return moves, nil
}

// Latest returns the newest move, or nil when no move has been made yet.
func (that *dbMove) Latest(ctx context.Context, matchID string) (*entity.MoveRecord, error) {
	moveKey := matchKeyPrefix + matchID + moveKeySuffix

	members, err := that.client.ZRevRange(ctx, moveKey, 0, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get latest move: %w", err)
	}

	if len(members) == 0 {
		return nil, nil
	}

	var move entity.MoveRecord
	if err = json.Unmarshal([]byte(members[0]), &move); err != nil {
		return nil, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return &move, nil
}
