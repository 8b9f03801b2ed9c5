package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveRepository_ListByMatch(t *testing.T) {
	ctx, st := suite.New(t)

	moveRepo := NewMoveRepository(st.Redis)

	// Given: three moves recorded in order
	base := time.Now()
	for i := 0; i < 3; i++ {
		move := &entity.MoveRecord{
			ID:            "move-" + string(rune('a'+i)),
			ParticipantID: "seat-1",
			MatchID:       "m1",
			X:             i,
			Y:             i,
			Timestamp:     base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, moveRepo.Create(ctx, move))
	}

	// When: listing the match's moves
	moves, err := moveRepo.ListByMatch(ctx, "m1")

	// Then: they come back newest-first
	require.NoError(t, err)
	require.Len(t, moves, 3)
	assert.Equal(t, 2, moves[0].X)
	assert.Equal(t, 1, moves[1].X)
	assert.Equal(t, 0, moves[2].X)
}

func TestMoveRepository_SameTimestampKeepsInsertionOrder(t *testing.T) {
	ctx, st := suite.New(t)

	moveRepo := NewMoveRepository(st.Redis)

	// Given: three moves sharing one timestamp
	stamp := time.Now()
	for i := 0; i < 3; i++ {
		move := &entity.MoveRecord{
			ID:        "move-" + string(rune('a'+i)),
			MatchID:   "m1",
			X:         i,
			Timestamp: stamp,
		}
		require.NoError(t, moveRepo.Create(ctx, move))
	}

	// Then: newest-first still reflects the order they were recorded in
	moves, err := moveRepo.ListByMatch(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, moves, 3)
	assert.Equal(t, 2, moves[0].X)
	assert.Equal(t, 1, moves[1].X)
	assert.Equal(t, 0, moves[2].X)

	latest, err := moveRepo.Latest(ctx, "m1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "move-c", latest.ID)
}

func TestMoveRepository_Latest(t *testing.T) {
	t.Run("Latest returns the newest move", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Redis)

		base := time.Now()
		first := &entity.MoveRecord{ID: "move-a", MatchID: "m1", X: 1, Y: 1, Timestamp: base}
		second := &entity.MoveRecord{ID: "move-b", MatchID: "m1", X: 2, Y: 2, Timestamp: base.Add(time.Second)}
		require.NoError(t, moveRepo.Create(ctx, first))
		require.NoError(t, moveRepo.Create(ctx, second))

		latest, err := moveRepo.Latest(ctx, "m1")

		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, "move-b", latest.ID)
	})

	t.Run("Latest is nil for a match without moves", func(t *testing.T) {
		ctx, st := suite.New(t)

		moveRepo := NewMoveRepository(st.Redis)

		latest, err := moveRepo.Latest(ctx, "empty")

		require.NoError(t, err)
		assert.Nil(t, latest)
	})
}

func TestMoveRepository_MovesAreScopedByMatch(t *testing.T) {
	ctx, st := suite.New(t)

	moveRepo := NewMoveRepository(st.Redis)

	require.NoError(t, moveRepo.Create(ctx, &entity.MoveRecord{ID: "a", MatchID: "m1", Timestamp: time.Now()}))
	require.NoError(t, moveRepo.Create(ctx, &entity.MoveRecord{ID: "b", MatchID: "m2", Timestamp: time.Now()}))

	moves, err := moveRepo.ListByMatch(ctx, "m1")

	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, "a", moves[0].ID)
}
