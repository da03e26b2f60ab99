// Package duel runs PvP challenges: an Arena holds open offers and the
// Service settles accepted ones with a full combat simulation.
package duel

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BrandishRPG_Go/internal/combat"
	"github.com/osse101/BrandishRPG_Go/internal/concurrency"
	"github.com/osse101/BrandishRPG_Go/internal/domain"
	"github.com/osse101/BrandishRPG_Go/internal/event"
	"github.com/osse101/BrandishRPG_Go/internal/logger"
	"github.com/osse101/BrandishRPG_Go/internal/repository"
	"github.com/osse101/BrandishRPG_Go/internal/rng"
)

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// StatCalculator computes a character's combat snapshot
type StatCalculator interface {
	Calculate(ctx context.Context, c *domain.Character) (domain.ActiveBuffs, error)
}

// Service defines the interface for duel operations
type Service interface {
	Challenge(ctx context.Context, challengerID, opponentID string, wager int64) (*domain.Challenge, error)
	Accept(ctx context.Context, opponentID string, challengeID uuid.UUID) (*domain.DuelResult, error)
	Decline(ctx context.Context, characterID string, challengeID uuid.UUID) error
	Pending(ctx context.Context, characterID string) ([]domain.Challenge, error)
}

type service struct {
	repo        repository.Game
	arena       *Arena
	calc        StatCalculator
	lockManager *concurrency.LockManager
	publisher   EventPublisher
	rnd         rng.Source
	now         func() time.Time
}

// NewService creates a new duel service
func NewService(repo repository.Game, arena *Arena, calc StatCalculator, lockManager *concurrency.LockManager, publisher EventPublisher, rnd rng.Source) Service {
	return &service{
		repo:        repo,
		arena:       arena,
		calc:        calc,
		lockManager: lockManager,
		publisher:   publisher,
		rnd:         rnd,
		now:         time.Now,
	}
}

// Challenge opens a duel offer. The challenger must be able to cover the
// wager now; both sides are checked again on accept.
func (s *service) Challenge(ctx context.Context, challengerID, opponentID string, wager int64) (*domain.Challenge, error) {
	log := logger.FromContext(ctx)
	log.Info("Challenge called", "challengerID", challengerID, "opponentID", opponentID, "wager", wager)

	challenger, err := s.repo.GetCharacter(ctx, challengerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}
	if _, err := s.repo.GetCharacter(ctx, opponentID); err != nil {
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}
	if challenger.Balance < wager {
		return nil, fmt.Errorf("%w: "+ErrMsgWagerFmt, domain.ErrInsufficientFunds, challengerID, wager, challenger.Balance)
	}

	c, err := s.arena.Issue(challengerID, opponentID, wager, s.now())
	if err != nil {
		log.Warn("Challenge rejected", "error", err, "challengerID", challengerID, "opponentID", opponentID)
		return nil, err
	}

	log.Info("Challenge issued", "challengeID", c.ID, "expiresAt", c.ExpiresAt)
	return c, nil
}

// Accept consumes the challenge, fights it out and settles the wager.
// Both characters are locked for the whole settlement.
func (s *service) Accept(ctx context.Context, opponentID string, challengeID uuid.UUID) (*domain.DuelResult, error) {
	log := logger.FromContext(ctx)
	log.Info("Accept called", "opponentID", opponentID, "challengeID", challengeID)

	pending, err := s.arena.Get(challengeID, s.now())
	if err != nil {
		return nil, err
	}
	if pending.OpponentID != opponentID {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotChallenged, opponentID)
	}

	unlock := s.lockManager.LockAll(pending.ChallengerID, pending.OpponentID)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	challenger, err := tx.GetCharacterForUpdate(ctx, pending.ChallengerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}
	opponent, err := tx.GetCharacterForUpdate(ctx, pending.OpponentID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}
	for _, c := range []*domain.Character{challenger, opponent} {
		if c.Balance < pending.Wager {
			return nil, fmt.Errorf("%w: "+ErrMsgWagerFmt, domain.ErrInsufficientFunds, c.ID, pending.Wager, c.Balance)
		}
	}

	challengerBuffs, err := s.calc.Calculate(ctx, challenger)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCalculateFailed, err)
	}
	opponentBuffs, err := s.calc.Calculate(ctx, opponent)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCalculateFailed, err)
	}

	// Claim the challenge only once the duel can be settled
	challenge, err := s.arena.Accept(challengeID, opponentID, s.now())
	if err != nil {
		return nil, err
	}

	fight := combat.Resolve(
		combat.CharacterFighter(challenger, challengerBuffs),
		combat.CharacterFighter(opponent, opponentBuffs),
		combat.Duel,
		s.rnd,
	)

	winner, loser := challenger, opponent
	if fight.Winner == domain.SideDefender {
		winner, loser = opponent, challenger
	}
	winner.Balance += challenge.Wager
	loser.Balance -= challenge.Wager
	winner.Wins++
	loser.Losses++

	now := s.now()
	for _, c := range []*domain.Character{winner, loser} {
		c.UpdatedAt = now
		if err := tx.SaveCharacter(ctx, c); err != nil {
			return nil, fmt.Errorf(ErrMsgSaveCharacterFailed, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit duel", "error", err, "challengeID", challengeID)
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	res := &domain.DuelResult{
		ChallengeID: challenge.ID,
		WinnerID:    winner.ID,
		LoserID:     loser.ID,
		Wager:       challenge.Wager,
		Combat:      fight,
	}
	s.publish(ctx, event.NewDuelCompletedEvent(res))
	log.Info("Duel completed", "challengeID", challengeID, "winnerID", winner.ID,
		"turns", fight.Turns, "termination", fight.Termination, "wager", challenge.Wager)
	return res, nil
}

// Decline removes a challenge. The challenger may use it to withdraw.
func (s *service) Decline(ctx context.Context, characterID string, challengeID uuid.UUID) error {
	log := logger.FromContext(ctx)
	log.Info("Decline called", "characterID", characterID, "challengeID", challengeID)

	if _, err := s.arena.Decline(challengeID, characterID); err != nil {
		return err
	}
	return nil
}

// Pending lists the open challenges a character sent or received
func (s *service) Pending(ctx context.Context, characterID string) ([]domain.Challenge, error) {
	if _, err := s.repo.GetCharacter(ctx, characterID); err != nil {
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}
	return s.arena.Pending(characterID, s.now()), nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}
