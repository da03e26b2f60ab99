// Package adventure runs PvE campaigns for stored characters and applies
// their rewards.
package adventure

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/osse101/BrandishRPG_Go/internal/concurrency"
	"github.com/osse101/BrandishRPG_Go/internal/cooldown"
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

// Outcome is an applied campaign
type Outcome struct {
	Campaign     *domain.CampaignResult `json:"campaign"`
	GoldAwarded  int64                  `json:"gold_awarded"`
	XPAwarded    int64                  `json:"xp_awarded"`
	LevelsGained int                    `json:"levels_gained"`
	Character    *domain.Character      `json:"character"`
}

// Service defines the interface for PvE operations
type Service interface {
	Adventure(ctx context.Context, characterID string) (*Outcome, error)
	Raid(ctx context.Context, characterID string) (*Outcome, error)
}

type service struct {
	repo        repository.Game
	calc        StatCalculator
	lockManager *concurrency.LockManager
	publisher   EventPublisher
	rnd         rng.Source
	cooldowns   cooldown.Service
}

// NewService creates a new adventure service. A nil cooldowns disables
// campaign cooldowns.
func NewService(repo repository.Game, calc StatCalculator, lockManager *concurrency.LockManager, publisher EventPublisher, rnd rng.Source, cooldowns cooldown.Service) Service {
	return &service{
		repo:        repo,
		calc:        calc,
		lockManager: lockManager,
		publisher:   publisher,
		rnd:         rnd,
		cooldowns:   cooldowns,
	}
}

// Adventure runs the monster gauntlet
func (s *service) Adventure(ctx context.Context, characterID string) (*Outcome, error) {
	logger.FromContext(ctx).Info("Adventure called", "characterID", characterID)
	return s.run(ctx, characterID, Adventure)
}

// Raid runs the boss raid
func (s *service) Raid(ctx context.Context, characterID string) (*Outcome, error) {
	logger.FromContext(ctx).Info("Raid called", "characterID", characterID)
	return s.run(ctx, characterID, Raid)
}

// run fights the campaign and saves rewards in one transaction. XPBoost and
// LootBoost scale the campaign's XP and gold, cooldownReduction shortens the
// wait before the next run.
func (s *service) run(ctx context.Context, characterID string, campaign Campaign) (*Outcome, error) {
	log := logger.FromContext(ctx)

	unlock := s.lockManager.LockAll(characterID)
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	char, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}
	b, err := s.calc.Calculate(ctx, char)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCalculateFailed, err)
	}

	var out *Outcome
	err = s.enforceCooldown(ctx, characterID, campaign.Action, b.CooldownReduction, func() error {
		res := campaign.Run(char, b, s.rnd)

		out = &Outcome{
			Campaign:    res,
			GoldAwarded: boosted(res.GoldReward, b.LootBoost),
			XPAwarded:   boosted(res.XPReward, b.XPBoost),
		}
		char.Balance += out.GoldAwarded
		out.LevelsGained = char.GrantXP(out.XPAwarded)
		if res.Completed {
			char.Wins++
		} else {
			char.Losses++
		}
		char.UpdatedAt = time.Now()

		if err := tx.SaveCharacter(ctx, char); err != nil {
			return fmt.Errorf(ErrMsgSaveCharacterFailed, err)
		}
		if err := tx.Commit(ctx); err != nil {
			log.Error("Failed to commit campaign", "error", err, "characterID", characterID, "mode", campaign.Mode.Name)
			return fmt.Errorf(ErrMsgCommitTxFailed, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out.Character = char

	res := out.Campaign
	s.publish(ctx, event.NewCombatResolvedEvent(characterID, res, lastTermination(res), out.LevelsGained))
	log.Info("Campaign resolved", "characterID", characterID, "mode", campaign.Mode.Name,
		"stagesCleared", res.StagesCleared, "completed", res.Completed,
		"gold", out.GoldAwarded, "xp", out.XPAwarded, "levelsGained", out.LevelsGained)
	return out, nil
}

// enforceCooldown runs fn directly when no cooldown service is configured
func (s *service) enforceCooldown(ctx context.Context, characterID, action string, reduction float64, fn func() error) error {
	if s.cooldowns == nil {
		return fn()
	}
	return s.cooldowns.EnforceCooldown(ctx, characterID, action, reduction, fn)
}

func boosted(amount int64, boost float64) int64 {
	if boost <= 0 {
		return amount
	}
	return int64(math.Floor(float64(amount) * (1 + boost)))
}

func lastTermination(res *domain.CampaignResult) domain.TerminationReason {
	if len(res.Stages) == 0 || res.Stages[len(res.Stages)-1].Result == nil {
		return ""
	}
	return res.Stages[len(res.Stages)-1].Result.Termination
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, evt)
	}
}
