package combat

import "github.com/osse101/BrandishRPG_Go/internal/domain"

// EnemyFunc builds the opponent for a 1-based stage number
type EnemyFunc func(stage int) Fighter

// RunCampaign fights stages in order until the player loses or every stage
// is cleared. The player's HP and statuses carry from one stage to the next;
// each enemy starts fresh. stages <= 0 uses DefaultCampaignStages.
//
// Clearing stage n pays GoldPerStage*n gold and XPPerStage*n XP.
func RunCampaign(player Fighter, enemyFor EnemyFunc, mode Mode, stages int, src Source) *domain.CampaignResult {
	if stages <= 0 {
		stages = DefaultCampaignStages
	}

	hero := NewParticipant(player)
	res := &domain.CampaignResult{Mode: mode.Name}

	for stage := 1; stage <= stages; stage++ {
		enemy := enemyFor(stage)
		if enemy.ID == "" {
			enemy.ID = enemy.Name
		}

		fight := ResolveParticipants(hero, NewParticipant(enemy), mode, src)
		won := fight.Winner == domain.SideAttacker
		res.Stages = append(res.Stages, domain.CampaignStage{
			Stage:  stage,
			Enemy:  enemy.Name,
			Won:    won,
			Result: fight,
		})
		if !won {
			break
		}

		res.StagesCleared = stage
		res.GoldReward += int64(GoldPerStage * stage)
		res.XPReward += int64(XPPerStage * stage)
	}

	res.Completed = res.StagesCleared == stages
	res.FinalHP = hero.hp
	return res
}

// StageEnemy returns an EnemyFunc whose stage n monster is level baseLevel+n
// and uses formula for its stats
func StageEnemy(name string, baseLevel int, formula BaseStatFormula) EnemyFunc {
	return func(stage int) Fighter {
		return Fighter{
			ID:    name,
			Name:  name,
			Level: baseLevel + stage,
			Base:  formula,
		}
	}
}
