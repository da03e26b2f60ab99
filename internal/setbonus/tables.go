package setbonus

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

// ErrInvalidTables is wrapped by every validation failure
var ErrInvalidTables = errors.New("invalid set bonus tables")

//go:embed tables.yaml
var embeddedTables []byte

// BonusStat is a key in a set, resonance or tier bonus table
type BonusStat string

const (
	BonusAttack            BonusStat = "attack"
	BonusDefense           BonusStat = "defense"
	BonusHP                BonusStat = "hp"
	BonusCritRate          BonusStat = "critRate"
	BonusCritDMG           BonusStat = "critDMG"
	BonusEnergy            BonusStat = "energy"
	BonusDodge             BonusStat = "dodge"
	BonusCooldownReduction BonusStat = "cooldownReduction"
	BonusProcRate          BonusStat = "procRate"
	BonusDamageBonus       BonusStat = "damageBonus"
	BonusHealing           BonusStat = "healing"
	BonusCounterChance     BonusStat = "counterChance"
	BonusCounterDamage     BonusStat = "counterDamage"
	BonusLifesteal         BonusStat = "lifesteal"
	BonusLifestealChance   BonusStat = "lifestealChance"
)

// bonusFields routes each bonus stat into the ActiveBuffs field it feeds
var bonusFields = map[BonusStat]domain.BuffField{
	BonusAttack:            domain.BuffAttack,
	BonusDefense:           domain.BuffDefense,
	BonusHP:                domain.BuffHPPercent,
	BonusCritRate:          domain.BuffCritChance,
	BonusCritDMG:           domain.BuffCritDMG,
	BonusEnergy:            domain.BuffEnergy,
	BonusDodge:             domain.BuffDodge,
	BonusCooldownReduction: domain.BuffCooldownReduction,
	BonusProcRate:          domain.BuffProcRate,
	BonusDamageBonus:       domain.BuffDamageBonus,
	BonusHealing:           domain.BuffHealingBoost,
	BonusCounterChance:     domain.BuffCounterChance,
	BonusCounterDamage:     domain.BuffCounterDamage,
	BonusLifesteal:         domain.BuffLifesteal,
	BonusLifestealChance:   domain.BuffLifestealChance,
}

// Field returns the ActiveBuffs field this bonus stat is added to
func (b BonusStat) Field() (domain.BuffField, bool) {
	f, ok := bonusFields[b]
	return f, ok
}

// Bonuses is a bundle of additive bonus values
type Bonuses map[BonusStat]float64

// SetDef is one named equipment set
type SetDef struct {
	Element domain.Element  `yaml:"element"`
	Tiers   map[int]Bonuses `yaml:"tiers"`
}

// Tables holds every set, resonance and reaction definition
type Tables struct {
	Version    string                         `yaml:"version"`
	Sets       map[string]SetDef              `yaml:"sets"`
	Resonances map[domain.Element]Bonuses     `yaml:"resonances"`
	Reactions  map[string]*domain.ReactionDef `yaml:"reactions"`
}

var defaultTables = mustLoad(embeddedTables)

func mustLoad(data []byte) *Tables {
	t, err := Load(data)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the tables compiled into the binary
func Default() *Tables {
	return defaultTables
}

// Load parses and validates a YAML table document
func Load(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf(ErrMsgParseTablesFailed, err)
	}
	for key, def := range t.Reactions {
		if def != nil {
			def.Key = key
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks the tables for structural errors
func (t *Tables) Validate() error {
	if len(t.Sets) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTables, ErrMsgNoSets)
	}

	for name, set := range t.Sets {
		if set.Element != domain.ElementNone && !isElement(set.Element) {
			return fmt.Errorf("%w: "+ErrMsgUnknownElement, ErrInvalidTables, name, set.Element)
		}
		for tier, bonuses := range set.Tiers {
			if tier != TierTwoPiece && tier != TierThreePiece && tier != TierSixPiece {
				return fmt.Errorf("%w: "+ErrMsgInvalidTier, ErrInvalidTables, name, tier)
			}
			if err := validateBonuses("set "+name, bonuses); err != nil {
				return err
			}
		}
	}

	for element, bonuses := range t.Resonances {
		if !isElement(element) {
			return fmt.Errorf("%w: "+ErrMsgResonanceElement, ErrInvalidTables, element)
		}
		if err := validateBonuses("resonance "+string(element), bonuses); err != nil {
			return err
		}
	}
	for _, element := range domain.AllElements {
		if _, ok := t.Resonances[element]; !ok {
			return fmt.Errorf("%w: "+ErrMsgMissingResonance, ErrInvalidTables, element)
		}
	}

	if len(t.Reactions) != ReactionCount {
		return fmt.Errorf("%w: "+ErrMsgReactionCount, ErrInvalidTables, ReactionCount, len(t.Reactions))
	}
	for key, def := range t.Reactions {
		if err := validateReaction(key, def); err != nil {
			return err
		}
	}

	return nil
}

func validateBonuses(owner string, bonuses Bonuses) error {
	for stat := range bonuses {
		if _, ok := stat.Field(); !ok {
			return fmt.Errorf("%w: "+ErrMsgUnknownBonusStat, ErrInvalidTables, owner, stat)
		}
	}
	return nil
}

func validateReaction(key string, def *domain.ReactionDef) error {
	if def == nil || len(def.Elements) != 2 || def.Elements[0] == def.Elements[1] ||
		!isElement(def.Elements[0]) || !isElement(def.Elements[1]) {
		return fmt.Errorf("%w: "+ErrMsgReactionElements, ErrInvalidTables, key)
	}
	if ReactionKey(def.Elements[0], def.Elements[1]) != key {
		return fmt.Errorf("%w: "+ErrMsgReactionKey, ErrInvalidTables, key, def.Elements)
	}
	if def.Name == "" {
		return fmt.Errorf("%w: "+ErrMsgReactionNoName, ErrInvalidTables, key)
	}
	if def.ProcChance < 0 || def.ProcChance > 1 || def.StunChance < 0 || def.StunChance > 1 {
		return fmt.Errorf("%w: "+ErrMsgNegativeProbability, ErrInvalidTables, key)
	}
	if def.Buff != nil {
		switch def.Buff.Stat {
		case domain.BuffStatAttack, domain.BuffStatDefense, domain.BuffStatCrit:
		default:
			return fmt.Errorf("%w: "+ErrMsgReactionBuffStat, ErrInvalidTables, key, def.Buff.Stat)
		}
	}
	return nil
}

func isElement(e domain.Element) bool {
	for _, known := range domain.AllElements {
		if e == known {
			return true
		}
	}
	return false
}

// ReactionKey returns the table key for an unordered element pair
func ReactionKey(a, b domain.Element) string {
	if b < a {
		a, b = b, a
	}
	return string(a) + "+" + string(b)
}

// Reaction returns the reaction for two distinct elements, or nil
func (t *Tables) Reaction(a, b domain.Element) *domain.ReactionDef {
	if a == b {
		return nil
	}
	return t.Reactions[ReactionKey(a, b)]
}

// HasSet reports whether name is a known set
func (t *Tables) HasSet(name string) bool {
	_, ok := t.Sets[name]
	return ok
}

// SetElement returns the element of a known set
func (t *Tables) SetElement(name string) domain.Element {
	return t.Sets[name].Element
}

// SetNames returns the known set names in sorted order
func (t *Tables) SetNames() []string {
	names := make([]string, 0, len(t.Sets))
	for name := range t.Sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DisplayName converts a set key such as "crimson_witch" to "Crimson Witch".
// A Caser is stateful, so each call gets its own.
func DisplayName(setName string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(setName, "_", " "))
}

// ElementLabel converts an element to its display form, e.g. "Pyro"
func ElementLabel(e domain.Element) string {
	return cases.Title(language.English).String(string(e))
}
