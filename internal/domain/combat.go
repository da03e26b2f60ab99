package domain

// Side identifies one of the two combatants in a fight
type Side int

const (
	SideAttacker Side = iota
	SideDefender
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideAttacker {
		return SideDefender
	}
	return SideAttacker
}

func (s Side) String() string {
	if s == SideAttacker {
		return "attacker"
	}
	return "defender"
}

// TerminationReason explains why a fight stopped
type TerminationReason string

const (
	TerminationKnockout TerminationReason = "knockout"
	TerminationTurnCap  TerminationReason = "turn_cap"
)

// CombatMode names the rule preset a fight ran under
type CombatMode string

const (
	ModeDuel      CombatMode = "duel"
	ModeAdventure CombatMode = "adventure"
	ModeRaid      CombatMode = "raid"
)

// CombatAction is the kind of a journal entry
type CombatAction string

const (
	ActionAttack   CombatAction = "attack"
	ActionDodge    CombatAction = "dodge"
	ActionStunned  CombatAction = "stunned"
	ActionFollowUp CombatAction = "follow_up"
	ActionCounter  CombatAction = "counter"
	ActionReflect  CombatAction = "reflect"
	ActionDot      CombatAction = "dot"
)

// CombatLogEntry records one action for the presentation layer
type CombatLogEntry struct {
	Turn     int          `json:"turn"`
	Actor    Side         `json:"actor"`
	Action   CombatAction `json:"action"`
	Damage   int          `json:"damage"`
	Crit     bool         `json:"crit,omitempty"`
	Procs    []string     `json:"procs,omitempty"`
	TargetHP float64      `json:"target_hp"`
}

// CombatantStats aggregates per-side outcome counters
type CombatantStats struct {
	ID            string  `json:"id"`
	TotalDamage   int     `json:"total_damage"`
	FinalHP       float64 `json:"final_hp"`
	MaxHP         float64 `json:"max_hp"`
	Crits         int     `json:"crits"`
	Dodges        int     `json:"dodges"`
	Counters      int     `json:"counters"`
	ReactionProcs int     `json:"reaction_procs"`
	TurnsSkipped  int     `json:"turns_skipped"`
	HealingDone   int     `json:"healing_done"`
}

// CombatResult is the outcome of one fight
type CombatResult struct {
	Mode        CombatMode        `json:"mode"`
	Winner      Side              `json:"winner"`
	WinnerID    string            `json:"winner_id"`
	Turns       int               `json:"turns"`
	Termination TerminationReason `json:"termination"`
	Combatants  [2]CombatantStats `json:"combatants"`
	Log         []CombatLogEntry  `json:"log"`
}

// DamageBy returns the total damage dealt by side
func (r *CombatResult) DamageBy(side Side) int {
	return r.Combatants[side].TotalDamage
}

// CampaignStage records the result of one stage in a multi-stage run
type CampaignStage struct {
	Stage  int           `json:"stage"`
	Enemy  string        `json:"enemy"`
	Won    bool          `json:"won"`
	Result *CombatResult `json:"result"`
}

// CampaignResult is the outcome of an adventure or raid run
type CampaignResult struct {
	Mode          CombatMode      `json:"mode"`
	StagesCleared int             `json:"stages_cleared"`
	Completed     bool            `json:"completed"`
	GoldReward    int64           `json:"gold_reward"`
	XPReward      int64           `json:"xp_reward"`
	FinalHP       float64         `json:"final_hp"`
	Stages        []CampaignStage `json:"stages"`
}
