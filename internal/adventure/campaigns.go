package adventure

import (
	"fmt"

	"github.com/osse101/BrandishRPG_Go/internal/combat"
	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

// Campaign describes one kind of PvE run
type Campaign struct {
	Mode   combat.Mode
	Stages int
	// Action names the cooldown the campaign waits on
	Action string
	// Enemy builds the stage opponent for a character of the given level
	Enemy func(characterLevel, stage int) combat.Fighter
}

var monsters = []string{"Slime", "Goblin", "Dire Wolf", "Bandit", "Wraith", "Stone Golem", "Drake"}

// Adventure is the 50 stage monster gauntlet. Stage n fields a level n
// monster regardless of the character's level.
var Adventure = Campaign{
	Mode:   combat.Adventure,
	Stages: AdventureStages,
	Action: domain.ActionAdventure,
	Enemy: func(_ int, stage int) combat.Fighter {
		name := monsters[(stage-1)%len(monsters)]
		return combat.Fighter{
			ID:    fmt.Sprintf("adventure-%d", stage),
			Name:  fmt.Sprintf("%s (Lv %d)", name, stage),
			Level: stage,
			Base:  combat.EnemyBase,
		}
	},
}

// Raid pits the character against a boss that levels with them and gets
// one level stronger each stage
var Raid = Campaign{
	Mode:   combat.Raid,
	Stages: RaidStages,
	Action: domain.ActionRaid,
	Enemy: func(characterLevel, stage int) combat.Fighter {
		level := characterLevel + stage - 1
		return combat.Fighter{
			ID:    fmt.Sprintf("raid-%d", stage),
			Name:  fmt.Sprintf("Ancient Wyrm (Lv %d)", level),
			Level: level,
			Base:  combat.BossBase,
			Reaction: &domain.ReactionDef{
				Key:          "wyrm_breath",
				Name:         "Wyrm Breath",
				ProcChance:   0.10,
				BonusDamage:  0.5,
				StunChance:   0.25,
				StunDuration: 1,
			},
		}
	},
}

// Run plays the campaign for a character with the given buffs
func (c Campaign) Run(char *domain.Character, b domain.ActiveBuffs, src combat.Source) *domain.CampaignResult {
	enemyFor := func(stage int) combat.Fighter { return c.Enemy(char.Level, stage) }
	return combat.RunCampaign(combat.CharacterFighter(char, b), enemyFor, c.Mode, c.Stages, src)
}
