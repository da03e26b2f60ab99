package combat

import "github.com/osse101/BrandishRPG_Go/internal/domain"

type statusKind int

const (
	statusDot statusKind = iota
	statusShield
	statusDefenseDown
	statusBuff
	statusReflect
)

// status is one timed effect on a participant. Durations count the owner's
// turns and are ticked once at the start of each of them.
type status struct {
	kind   statusKind
	amount float64
	stat   domain.ReactionBuffStat
	turns  int
}

// statusList is the small per-combatant effect list
type statusList []status

func (l *statusList) add(s status) {
	if s.turns <= 0 || s.amount <= 0 {
		return
	}
	*l = append(*l, s)
}

// tick returns damage-over-time due this turn, then ages every effect and
// drops the expired ones
func (l *statusList) tick() float64 {
	dot := 0.0
	kept := (*l)[:0]
	for _, s := range *l {
		if s.kind == statusDot {
			dot += s.amount
		}
		s.turns--
		if s.turns > 0 && s.amount > 0 {
			kept = append(kept, s)
		}
	}
	*l = kept
	return dot
}

func (l statusList) sum(kind statusKind) float64 {
	total := 0.0
	for _, s := range l {
		if s.kind == kind {
			total += s.amount
		}
	}
	return total
}

func (l statusList) buff(stat domain.ReactionBuffStat) float64 {
	total := 0.0
	for _, s := range l {
		if s.kind == statusBuff && s.stat == stat {
			total += s.amount
		}
	}
	return total
}

// absorb drains shields oldest first and returns the damage they took
func (l statusList) absorb(damage float64) float64 {
	absorbed := 0.0
	for i := range l {
		if damage <= 0 {
			break
		}
		if l[i].kind != statusShield {
			continue
		}
		take := min(l[i].amount, damage)
		l[i].amount -= take
		damage -= take
		absorbed += take
	}
	return absorbed
}

func (l statusList) maxAmount(kind statusKind) float64 {
	best := 0.0
	for _, s := range l {
		if s.kind == kind && s.amount > best {
			best = s.amount
		}
	}
	return best
}
