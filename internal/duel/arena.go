package duel

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

// Arena owns the outstanding PvP challenges. Each challenger/opponent pair
// may have one pending challenge at a time. Expired challenges are rejected
// on access and removed by Sweep.
type Arena struct {
	mu     sync.Mutex
	ttl    time.Duration
	byID   map[uuid.UUID]*domain.Challenge
	byPair map[string]uuid.UUID
}

// NewArena creates an empty arena whose challenges live for ttl
func NewArena(ttl time.Duration) *Arena {
	if ttl <= 0 {
		ttl = DefaultChallengeTTL
	}
	return &Arena{
		ttl:    ttl,
		byID:   make(map[uuid.UUID]*domain.Challenge),
		byPair: make(map[string]uuid.UUID),
	}
}

// TTL returns the lifetime given to new challenges
func (a *Arena) TTL() time.Duration {
	return a.ttl
}

// Issue opens a challenge from challengerID to opponentID. An expired
// challenge for the same pair is replaced.
func (a *Arena) Issue(challengerID, opponentID string, wager int64, now time.Time) (*domain.Challenge, error) {
	if challengerID == opponentID {
		return nil, domain.ErrSelfChallenge
	}
	if wager < 0 {
		return nil, fmt.Errorf("%w: "+ErrMsgNegativeWagerFmt, domain.ErrInvalidInput, wager)
	}

	c := &domain.Challenge{
		ID:           uuid.New(),
		ChallengerID: challengerID,
		OpponentID:   opponentID,
		Wager:        wager,
		State:        domain.ChallengeStatePending,
		CreatedAt:    now,
		ExpiresAt:    now.Add(a.ttl),
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if id, ok := a.byPair[c.PairKey()]; ok {
		existing := a.byID[id]
		if !existing.IsExpired(now) {
			return nil, fmt.Errorf("%w: %s", domain.ErrChallengeExists, existing.ID)
		}
		a.remove(existing)
	}

	a.byID[c.ID] = c
	a.byPair[c.PairKey()] = c.ID
	cp := *c
	return &cp, nil
}

// Get returns a pending challenge without consuming it
func (a *Arena) Get(id uuid.UUID, now time.Time) (*domain.Challenge, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	c, err := a.live(id, now)
	if err != nil {
		return nil, err
	}
	cp := *c
	return &cp, nil
}

// Accept consumes the challenge on behalf of its opponent
func (a *Arena) Accept(id uuid.UUID, opponentID string, now time.Time) (*domain.Challenge, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	c, err := a.live(id, now)
	if err != nil {
		return nil, err
	}
	if c.OpponentID != opponentID {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotChallenged, opponentID)
	}

	a.remove(c)
	c.State = domain.ChallengeStateAccepted
	return c, nil
}

// Decline removes the challenge. Either side may decline; for the
// challenger it is a withdrawal.
func (a *Arena) Decline(id uuid.UUID, characterID string) (*domain.Challenge, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	c, ok := a.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrChallengeNotFound, id)
	}
	if c.OpponentID != characterID && c.ChallengerID != characterID {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotChallenged, characterID)
	}

	a.remove(c)
	c.State = domain.ChallengeStateDeclined
	return c, nil
}

// Pending lists the live challenges involving characterID, oldest first
func (a *Arena) Pending(characterID string, now time.Time) []domain.Challenge {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := []domain.Challenge{}
	for _, c := range a.byID {
		if c.IsExpired(now) {
			continue
		}
		if c.ChallengerID == characterID || c.OpponentID == characterID {
			out = append(out, *c)
		}
	}
	sortByCreated(out)
	return out
}

// Sweep removes every challenge that expired at or before now and returns them
func (a *Arena) Sweep(now time.Time) []domain.Challenge {
	a.mu.Lock()
	defer a.mu.Unlock()

	var expired []domain.Challenge
	for _, c := range a.byID {
		if !c.IsExpired(now) {
			continue
		}
		a.remove(c)
		c.State = domain.ChallengeStateExpired
		expired = append(expired, *c)
	}
	sortByCreated(expired)
	return expired
}

// Len returns the number of stored challenges, expired ones included
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.byID)
}

// live returns the stored challenge, dropping it if it has expired.
// Caller must hold mu.
func (a *Arena) live(id uuid.UUID, now time.Time) (*domain.Challenge, error) {
	c, ok := a.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrChallengeNotFound, id)
	}
	if c.IsExpired(now) {
		a.remove(c)
		return nil, fmt.Errorf("%w: %s", domain.ErrChallengeExpired, id)
	}
	return c, nil
}

func (a *Arena) remove(c *domain.Challenge) {
	delete(a.byID, c.ID)
	if a.byPair[c.PairKey()] == c.ID {
		delete(a.byPair, c.PairKey())
	}
}

func sortByCreated(list []domain.Challenge) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID.String() < list[j].ID.String()
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
}
