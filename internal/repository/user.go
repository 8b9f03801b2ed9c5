package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	ApplyStatsDelta(ctx context.Context, userID string, delta entity.StatsDelta) error
}

type userRepository struct {
	conn *sql.DB
}

func NewUserRepository(conn *sql.DB) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (that *userRepository) Save(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (id, username, password_hash) VALUES (?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, user.ID, user.Username, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("can't save user: %w", err)
	}

	return nil
}

func (that *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT id, username, password_hash, won, lost, won_by_surrender, draws, surrendered
		FROM users WHERE id = ?`

	return that.scanUser(that.conn.QueryRowContext(ctx, query, id))
}

func (that *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT id, username, password_hash, won, lost, won_by_surrender, draws, surrendered
		FROM users WHERE username = ?`

	return that.scanUser(that.conn.QueryRowContext(ctx, query, username))
}

// ApplyStatsDelta increments the user's aggregate counters in place.
func (that *userRepository) ApplyStatsDelta(ctx context.Context, userID string, delta entity.StatsDelta) error {
	query := `UPDATE users SET
		won = won + ?,
		lost = lost + ?,
		won_by_surrender = won_by_surrender + ?,
		draws = draws + ?,
		surrendered = surrendered + ?
		WHERE id = ?`

	result, err := that.conn.ExecContext(ctx, query,
		delta.Won, delta.Lost, delta.WonBySurrender, delta.Draws, delta.Surrendered, userID)
	if err != nil {
		return fmt.Errorf("can't update user stats: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't read affected rows: %w", err)
	}

	if affected == 0 {
		return apperror.ErrNotFound
	}

	return nil
}

func (that *userRepository) scanUser(row *sql.Row) (*entity.User, error) {
	var user entity.User

	err := row.Scan(
		&user.ID, &user.Username, &user.PasswordHash,
		&user.Stats.Won, &user.Stats.Lost, &user.Stats.WonBySurrender,
		&user.Stats.Draws, &user.Stats.Surrendered,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find user: %w", err)
	}

	return &user, nil
}
