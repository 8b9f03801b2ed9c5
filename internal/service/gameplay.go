package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

type GamePlayService interface {
	CreateMatch(ctx context.Context, userID string) (*entity.Match, error)
	JoinMatch(ctx context.Context, matchID, userID string) (*entity.Match, error)
	LeaveMatch(ctx context.Context, matchID, userID string) error
	StartMatch(ctx context.Context, matchID, userID string) (*entity.Match, error)
	Surrender(ctx context.Context, matchID, userID string) error

	SubmitMove(ctx context.Context, matchID, userID string, x, y int) (*entity.Match, *entity.MoveRecord, error)

	GetMatch(ctx context.Context, matchID string) (*entity.Match, error)
	ListMoves(ctx context.Context, matchID string) ([]*entity.MoveRecord, error)
	LatestMove(ctx context.Context, matchID string) (*entity.MoveRecord, error)
}

type moveRepo interface {
	Create(ctx context.Context, move *entity.MoveRecord) error
	ListByMatch(ctx context.Context, matchID string) ([]*entity.MoveRecord, error)
	Latest(ctx context.Context, matchID string) (*entity.MoveRecord, error)
}

type gamePlayService struct {
	logger *slog.Logger

	matchService MatchService
	moveRepo     moveRepo
	stats        StatsRecorder

	// opening-mover source, injected so tests can seed it. rand.Rand is not
	// safe for concurrent use and starts of different matches run in
	// parallel, so every draw goes through rndMu.
	rndMu sync.Mutex
	rnd   *rand.Rand

	locks *matchLocker
}

func NewGamePlayService(logger *slog.Logger, matchService MatchService, moveRepo moveRepo, stats StatsRecorder, rnd *rand.Rand) GamePlayService {
	return &gamePlayService{
		logger:       logger,
		matchService: matchService,
		moveRepo:     moveRepo,
		stats:        stats,
		rnd:          rnd,
		locks:        newMatchLocker(),
	}
}

func (that *gamePlayService) CreateMatch(ctx context.Context, userID string) (*entity.Match, error) {
	matchID := uuid.NewString()
	owner := entity.NewParticipant(uuid.NewString(), userID, matchID, true)
	match := entity.NewMatch(matchID, owner)

	if err := that.matchService.UpdateMatch(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	that.logger.Info("match created", "matchID", match.ID, "userID", userID)

	return match, nil
}

func (that *gamePlayService) JoinMatch(ctx context.Context, matchID, userID string) (*entity.Match, error) {
	unlock := that.locks.Lock(matchID)
	defer unlock()

	match, err := that.matchService.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	guest := entity.NewParticipant(uuid.NewString(), userID, matchID, false)
	if err = match.Join(guest); err != nil {
		return nil, err
	}

	if err = that.matchService.UpdateMatch(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to save joined match: %w", err)
	}

	return match, nil
}

// LeaveMatch removes the caller's seat before the match starts. When the
// sole remaining owner leaves, the match is deleted outright.
func (that *gamePlayService) LeaveMatch(ctx context.Context, matchID, userID string) error {
	unlock := that.locks.Lock(matchID)
	defer unlock()

	match, err := that.matchService.GetMatchByID(ctx, matchID)
	if err != nil {
		return err
	}

	if err = match.Leave(userID); err != nil {
		return err
	}

	if match.ParticipantCount == 0 {
		if err = that.matchService.DeleteMatch(ctx, match.ID); err != nil {
			return fmt.Errorf("failed to delete abandoned match: %w", err)
		}

		that.logger.Info("match deleted", "matchID", match.ID)

		return nil
	}

	if err = that.matchService.UpdateMatch(ctx, match); err != nil {
		return fmt.Errorf("failed to save left match: %w", err)
	}

	return nil
}

// StartMatch activates a full match and picks the opening mover uniformly
// between the two seats.
func (that *gamePlayService) StartMatch(ctx context.Context, matchID, userID string) (*entity.Match, error) {
	unlock := that.locks.Lock(matchID)
	defer unlock()

	match, err := that.matchService.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if match.ParticipantByUser(userID) == nil {
		return nil, apperror.ErrNotInGame
	}

	if !match.IsFull() || match.ParticipantCount != 2 {
		return nil, apperror.ErrGameNotStartable
	}

	that.rndMu.Lock()
	pick := that.rnd.Intn(len(match.Participants))
	that.rndMu.Unlock()

	first := match.Participants[pick]
	match.Start(first)

	if err = that.matchService.UpdateMatch(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to save started match: %w", err)
	}

	that.logger.Info("match started", "matchID", match.ID, "firstParticipant", first.ID)

	return match, nil
}

func (that *gamePlayService) Surrender(ctx context.Context, matchID, userID string) error {
	unlock := that.locks.Lock(matchID)
	defer unlock()

	match, err := that.matchService.GetMatchByID(ctx, matchID)
	if err != nil {
		return err
	}

	if !match.IsActive() {
		return apperror.ErrGameNotActive
	}

	loser := match.ParticipantByUser(userID)
	if loser == nil {
		return apperror.ErrNotInGame
	}

	winner := match.Opponent(loser.ID)
	match.Finish(entity.OutcomeSurrender, winner)

	if err = that.matchService.UpdateMatch(ctx, match); err != nil {
		return fmt.Errorf("failed to save surrendered match: %w", err)
	}

	if err = that.stats.RecordOutcome(ctx, winner.UserID, entity.StatsDelta{Won: 1, WonBySurrender: 1}); err != nil {
		return err
	}

	if err = that.stats.RecordOutcome(ctx, loser.UserID, entity.StatsDelta{Lost: 1, Surrendered: 1}); err != nil {
		return err
	}

	that.logger.Info("match surrendered", "matchID", match.ID, "winner", winner.ID)

	return nil
}

// SubmitMove runs the validation chain in order (membership, phase, turn,
// bounds, occupancy), applies the placement, evaluates the board for a
// terminal result, then persists the match followed by the move log entry.
func (that *gamePlayService) SubmitMove(ctx context.Context, matchID, userID string, x, y int) (*entity.Match, *entity.MoveRecord, error) {
	unlock := that.locks.Lock(matchID)
	defer unlock()

	match, err := that.matchService.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, nil, err
	}

	participant := match.ParticipantByUser(userID)
	if participant == nil {
		return nil, nil, apperror.ErrNotInGame
	}

	if !match.IsActive() {
		return nil, nil, apperror.ErrGameNotActive
	}

	if err = match.ApplyMove(participant, x, y); err != nil {
		return nil, nil, err
	}

	move := &entity.MoveRecord{
		ID:            uuid.NewString(),
		ParticipantID: participant.ID,
		MatchID:       match.ID,
		X:             x,
		Y:             y,
		Timestamp:     time.Now(),
	}

	if err = that.settleBoard(ctx, match, participant); err != nil {
		return nil, nil, err
	}

	// The match document is the source of truth; it is saved before the move
	// log entry so a storage failure never leaves a logged move the saved
	// board does not show.
	if err = that.matchService.UpdateMatch(ctx, match); err != nil {
		return nil, nil, fmt.Errorf("failed to save match after move: %w", err)
	}

	if err = that.moveRepo.Create(ctx, move); err != nil {
		return nil, nil, fmt.Errorf("failed to save move: %w", err)
	}

	return match, move, nil
}

// settleBoard evaluates the board after an accepted move and finishes the
// match when the mover won or filled the last cell. Win takes precedence
// over draw.
func (that *gamePlayService) settleBoard(ctx context.Context, match *entity.Match, mover *entity.Participant) error {
	result, _ := gomoku.Evaluate(&match.Board)

	switch result {
	case gomoku.ResultWin:
		opponent := match.Opponent(mover.ID)
		match.Finish(entity.OutcomeWin, mover)

		if err := that.stats.RecordOutcome(ctx, mover.UserID, entity.StatsDelta{Won: 1}); err != nil {
			return err
		}
		if err := that.stats.RecordOutcome(ctx, opponent.UserID, entity.StatsDelta{Lost: 1}); err != nil {
			return err
		}

		that.logger.Info("match won", "matchID", match.ID, "winner", mover.ID)
	case gomoku.ResultDraw:
		match.Finish(entity.OutcomeDraw, nil)

		for _, participant := range match.Participants {
			if err := that.stats.RecordOutcome(ctx, participant.UserID, entity.StatsDelta{Draws: 1}); err != nil {
				return err
			}
		}

		that.logger.Info("match drawn", "matchID", match.ID)
	case gomoku.ResultNone:
	}

	return nil
}

func (that *gamePlayService) GetMatch(ctx context.Context, matchID string) (*entity.Match, error) {
	return that.matchService.GetMatchByID(ctx, matchID)
}

func (that *gamePlayService) ListMoves(ctx context.Context, matchID string) ([]*entity.MoveRecord, error) {
	moves, err := that.moveRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}
	return moves, nil
}

func (that *gamePlayService) LatestMove(ctx context.Context, matchID string) (*entity.MoveRecord, error) {
	move, err := that.moveRepo.Latest(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest move: %w", err)
	}
	return move, nil
}
