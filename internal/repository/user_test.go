package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRepo(t *testing.T) (context.Context, UserRepository) {
	t.Helper()

	ctx := context.Background()

	sqliteStorage, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, sqliteStorage.Close())
	})

	require.NoError(t, sqliteStorage.Init(ctx))

	return ctx, NewUserRepository(sqliteStorage.Connection)
}

func TestUserRepository_SaveAndFind(t *testing.T) {
	ctx, userRepo := newUserRepo(t)

	// Given: a saved user
	user := &entity.User{ID: "u1", Username: "alice", PasswordHash: "hash"}
	require.NoError(t, userRepo.Save(ctx, user))

	t.Run("FindByID returns the user with zeroed stats", func(t *testing.T) {
		found, err := userRepo.FindByID(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, "alice", found.Username)
		assert.Equal(t, entity.Stats{}, found.Stats)
	})

	t.Run("FindByUsername returns the user", func(t *testing.T) {
		found, err := userRepo.FindByUsername(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, "u1", found.ID)
	})

	t.Run("Unknown user reports not found", func(t *testing.T) {
		_, err := userRepo.FindByID(ctx, "nope")
		assert.ErrorIs(t, err, apperror.ErrNotFound)

		_, err = userRepo.FindByUsername(ctx, "nope")
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("Duplicate username is rejected", func(t *testing.T) {
		err := userRepo.Save(ctx, &entity.User{ID: "u2", Username: "alice", PasswordHash: "hash"})
		assert.Error(t, err)
	})
}

func TestUserRepository_ApplyStatsDelta(t *testing.T) {
	ctx, userRepo := newUserRepo(t)

	user := &entity.User{ID: "u1", Username: "alice", PasswordHash: "hash"}
	require.NoError(t, userRepo.Save(ctx, user))

	// When: two outcome deltas are applied
	require.NoError(t, userRepo.ApplyStatsDelta(ctx, "u1", entity.StatsDelta{Won: 1, WonBySurrender: 1}))
	require.NoError(t, userRepo.ApplyStatsDelta(ctx, "u1", entity.StatsDelta{Draws: 1}))

	// Then: the counters accumulate
	found, err := userRepo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.Stats{Won: 1, WonBySurrender: 1, Draws: 1}, found.Stats)

	t.Run("Delta for an unknown user reports not found", func(t *testing.T) {
		err := userRepo.ApplyStatsDelta(ctx, "nope", entity.StatsDelta{Won: 1})
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})
}
