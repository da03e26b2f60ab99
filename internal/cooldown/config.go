package cooldown

import (
	"time"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

// Config holds the base durations per action
type Config struct {
	// DevMode turns every check into a pass
	DevMode   bool
	Cooldowns map[string]time.Duration
	// Now is time.Now unless a test replaces it
	Now func() time.Time
}

// NewConfig covers the two campaign actions
func NewConfig(devMode bool, adventure, raid time.Duration) Config {
	return Config{
		DevMode: devMode,
		Cooldowns: map[string]time.Duration{
			domain.ActionAdventure: adventure,
			domain.ActionRaid:      raid,
		},
	}
}

// Duration is the unreduced cooldown for action
func (c *Config) Duration(action string) time.Duration {
	if d, ok := c.Cooldowns[action]; ok {
		return d
	}
	return DefaultCooldownDuration
}

func (c *Config) effective(action string, reduction float64) time.Duration {
	return domain.ReducedCooldown(c.Duration(action), reduction)
}

func (c *Config) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
