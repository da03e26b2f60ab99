package combat

// Phase is the fight-wide state evaluated before every action
type Phase int

const (
	// PhaseOpening covers the first rounds; the acting side gets bonus crit
	PhaseOpening Phase = iota
	// PhaseMidFight applies no modifiers
	PhaseMidFight
	// PhaseDesperate starts once either side is low; low sides gain dodge
	// and damage
	PhaseDesperate
)

func (p Phase) String() string {
	switch p {
	case PhaseOpening:
		return "opening"
	case PhaseDesperate:
		return "desperate"
	default:
		return "mid_fight"
	}
}

// phaseFor evaluates the phase at the start of an action. Opening always
// wins during the first rounds, even if someone is already low.
func phaseFor(round int, a, b *Participant) Phase {
	if round <= OpeningRounds {
		return PhaseOpening
	}
	if a.isLow() || b.isLow() {
		return PhaseDesperate
	}
	return PhaseMidFight
}
