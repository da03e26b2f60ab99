package combat

// ==================== Derived Stats ====================

// Baselines added to every combatant before buffs
const (
	BaseCritRate = 5.0 // percent points
	BaseDodge    = 0.0
	DodgePerLuck = 0.5
)

// Chance caps in percent points
const (
	CounterChanceCap   = 50.0
	LifestealChanceCap = 50.0
)

// ==================== Phases ====================

const (
	// OpeningRounds is how many rounds the opening strike bonus lasts
	OpeningRounds = 3
	// OpeningCritBonus is added to the acting side's crit rate while opening
	OpeningCritBonus = 50.0

	// DesperateHPFraction is the HP fraction under which a side is desperate
	DesperateHPFraction = 0.30
	// DesperateDodgeBonus and DesperateDamageBonus apply to each low side
	DesperateDodgeBonus  = 15.0
	DesperateDamageBonus = 0.30
)

// ==================== Damage ====================

// ArmorConstant is the defense value that halves incoming damage
const ArmorConstant = 100.0

// Energy burst: each attack adds the attacker's energy stat to its bar, and
// the attack that fills it deals EnergyBurstMult damage
const (
	EnergyBurstLevel = 100.0
	EnergyBurstMult  = 1.5
)

// ReactionCooldownTurns is the number of the attacker's own turns, stunned
// and dodged ones included, during which its reaction cannot proc again.
// Cooldown reduction shortens it.
const ReactionCooldownTurns = 2

// ==================== Procs ====================

// Proc chances are base + luck * per-luck, capped. All in percent points.
const (
	CrushingBaseChance   = 5.0
	CrushingPerLuck      = 1.0
	CrushingChanceCap    = 30.0
	CrushingDefenseScale = 0.5 // target defense counts half
	CrushingFlatBonus    = 10.0

	FuryBaseChance = 5.0
	FuryPerLuck    = 1.0
	FuryChanceCap  = 25.0
	FuryPower      = 0.6

	LifestealBaseChance = 5.0
	LifestealPerLuck    = 1.0
	LifestealHealRatio  = 0.30

	StunBaseChance = 3.0
	StunPerLuck    = 0.5
	StunChanceCap  = 20.0
)

// Counter-attacks hit for CounterBasePower + counterDamage of attack
const CounterBasePower = 0.5

// ==================== Campaigns ====================

// Rewards per cleared stage, multiplied by the stage number
const (
	DefaultCampaignStages = 50
	GoldPerStage          = 40
	XPPerStage            = 15
)

// Proc names used in the combat log
const (
	ProcCrit         = "crit"
	ProcEnergyBurst  = "energy_burst"
	ProcCrushingBlow = "crushing_blow"
	ProcFury         = "fury"
	ProcLifesteal    = "lifesteal"
	ProcStun         = "stun"
	ProcShield       = "shield"
	ProcReflect      = "reflect"
	ProcOpening      = "opening_strike"
	ProcDesperate    = "desperate"
)
