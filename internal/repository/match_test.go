package repository

import (
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatch(id, userID string) *entity.Match {
	owner := entity.NewParticipant("seat-"+userID, userID, id, true)
	return entity.NewMatch(id, owner)
}

func TestMatchRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	matchRepo := NewMatchRepository(st.Redis)

	// Given: a fresh open match
	match := testMatch("123", "userA")

	// When: CreateOrUpdate is called
	err := matchRepo.CreateOrUpdate(ctx, match)

	// Then: no error should be returned, and the match is stored
	require.NoError(t, err)
}

func TestMatchRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Redis)

		// Given: a stored match with one placed token
		match := testMatch("123", "userA")
		match.Board[7][7] = entity.OwnerToken

		err := matchRepo.CreateOrUpdate(ctx, match)
		require.NoError(t, err)

		// When: GetByID is called with the existing ID
		retrieved, err := matchRepo.GetByID(ctx, match.ID)

		// Then: the retrieved match should match the saved one
		require.NoError(t, err)
		require.Equal(t, match.ID, retrieved.ID)
		require.Equal(t, match.Phase, retrieved.Phase)
		require.Equal(t, entity.OwnerToken, retrieved.Board[7][7])
		require.Len(t, retrieved.Participants, 1)
		require.True(t, retrieved.Participants[0].IsOwner)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Redis)

		// When: GetByID is called with a non-existent ID
		retrieved, err := matchRepo.GetByID(ctx, "9999999")

		// Then: ErrNotFound should be returned
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestMatchRepository_DeleteByID(t *testing.T) {
	ctx, st := suite.New(t)

	matchRepo := NewMatchRepository(st.Redis)

	// Given: a stored match
	match := testMatch("123", "userA")
	require.NoError(t, matchRepo.CreateOrUpdate(ctx, match))

	// When: DeleteByID is called
	err := matchRepo.DeleteByID(ctx, match.ID)

	// Then: the match is gone, including from the unfinished index
	require.NoError(t, err)

	_, err = matchRepo.GetByID(ctx, match.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	unfinished, err := matchRepo.GetUnfinished(ctx)
	require.NoError(t, err)
	assert.Empty(t, unfinished)
}

func TestMatchRepository_GetUnfinished(t *testing.T) {
	ctx, st := suite.New(t)

	matchRepo := NewMatchRepository(st.Redis)

	// Given: one open and one terminal match
	open := testMatch("open-1", "userA")
	require.NoError(t, matchRepo.CreateOrUpdate(ctx, open))

	finished := testMatch("done-1", "userB")
	finished.Phase = entity.PhaseTerminal
	finished.Outcome = entity.OutcomeDraw
	require.NoError(t, matchRepo.CreateOrUpdate(ctx, finished))

	// When: listing unfinished matches
	unfinished, err := matchRepo.GetUnfinished(ctx)

	// Then: only the open match is returned
	require.NoError(t, err)
	require.Len(t, unfinished, 1)
	assert.Equal(t, open.ID, unfinished[0].ID)
}

func TestMatchRepository_GetByUser(t *testing.T) {
	ctx, st := suite.New(t)

	matchRepo := NewMatchRepository(st.Redis)

	// Given: two matches for userA and one for userB
	require.NoError(t, matchRepo.CreateOrUpdate(ctx, testMatch("m1", "userA")))
	require.NoError(t, matchRepo.CreateOrUpdate(ctx, testMatch("m2", "userA")))
	require.NoError(t, matchRepo.CreateOrUpdate(ctx, testMatch("m3", "userB")))

	// When: listing userA's matches
	matches, err := matchRepo.GetByUser(ctx, "userA")

	// Then: both of userA's matches are returned
	require.NoError(t, err)
	require.Len(t, matches, 2)

	ids := []string{matches[0].ID, matches[1].ID}
	assert.ElementsMatch(t, []string{"m1", "m2"}, ids)
}

func TestMatchRepository_TerminalLeavesUserIndex(t *testing.T) {
	ctx, st := suite.New(t)

	matchRepo := NewMatchRepository(st.Redis)

	// Given: a match that later finishes
	match := testMatch("m1", "userA")
	require.NoError(t, matchRepo.CreateOrUpdate(ctx, match))

	match.Phase = entity.PhaseTerminal
	match.Outcome = entity.OutcomeWin
	require.NoError(t, matchRepo.CreateOrUpdate(ctx, match))

	// Then: it leaves the unfinished index but stays queryable by user
	unfinished, err := matchRepo.GetUnfinished(ctx)
	require.NoError(t, err)
	assert.Empty(t, unfinished)

	byUser, err := matchRepo.GetByUser(ctx, "userA")
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, entity.PhaseTerminal, byUser[0].Phase)
}
