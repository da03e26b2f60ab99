package domain

import "time"

// LegacyBuffs is the per-character percentage buff record carried over from
// older profile rows. Each percentage field may be stored either as a fraction
// (0.05) or, for legacy rows, as a whole-number percent (25). Readers must
// normalize before use; see buffs.NormalizeLegacy.
type LegacyBuffs struct {
	AttackBoost       float64 `json:"attack_boost"`
	DefenseBoost      float64 `json:"defense_boost"`
	MagicBoost        float64 `json:"magic_boost"`
	MagicDefenseBoost float64 `json:"magic_defense_boost"`
	HealingBoost      float64 `json:"healing_boost"`
	XPBoost           float64 `json:"xp_boost"`
	LuckBoost         float64 `json:"luck_boost"`
	LootBoost         float64 `json:"loot_boost"`
	FindRateBoost     float64 `json:"find_rate_boost"`
	CooldownReduction float64 `json:"cooldown_reduction"`

	// CritChance is a flat percent-point field, never a fraction
	CritChance float64 `json:"crit_chance"`
}

// InventoryEntry is a stack of one item id in a character's bag
type InventoryEntry struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Character is the persisted player profile
type Character struct {
	ID        string           `json:"id" db:"character_id"`
	Name      string           `json:"name" db:"name"`
	Level     int              `json:"level" db:"level"`
	XP        int64            `json:"xp" db:"xp"`
	Balance   int64            `json:"balance" db:"balance"`
	Wins      int              `json:"wins" db:"wins"`
	Losses    int              `json:"losses" db:"losses"`
	Buffs     LegacyBuffs      `json:"buffs"`
	Equipment map[Slot]string  `json:"equipment"`
	Inventory []InventoryEntry `json:"inventory"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" db:"updated_at"`
}

// EquippedItemIDs returns the ids in the filled slots, in canonical slot order
func (c *Character) EquippedItemIDs() []string {
	ids := make([]string, 0, len(AllSlots))
	for _, slot := range AllSlots {
		if id, ok := c.Equipment[slot]; ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// HasItem reports whether the item id is in the character's inventory or equipped
func (c *Character) HasItem(itemID string) bool {
	for _, entry := range c.Inventory {
		if entry.ItemID == itemID && entry.Quantity > 0 {
			return true
		}
	}
	for _, id := range c.Equipment {
		if id == itemID {
			return true
		}
	}
	return false
}

// AddInventory adds quantity of itemID to the character's bag
func (c *Character) AddInventory(itemID string, quantity int) {
	for i := range c.Inventory {
		if c.Inventory[i].ItemID == itemID {
			c.Inventory[i].Quantity += quantity
			return
		}
	}
	c.Inventory = append(c.Inventory, InventoryEntry{ItemID: itemID, Quantity: quantity})
}

// XPForNextLevel returns the experience needed to advance from level
func XPForNextLevel(level int) int64 {
	if level < 1 {
		level = 1
	}
	return int64(level) * 100
}

// GrantXP adds experience and applies any level-ups. Returns levels gained.
func (c *Character) GrantXP(amount int64) int {
	if amount <= 0 {
		return 0
	}
	c.XP += amount
	gained := 0
	for c.XP >= XPForNextLevel(c.Level) {
		c.XP -= XPForNextLevel(c.Level)
		c.Level++
		gained++
	}
	return gained
}

// NewCharacter returns a level-1 character with empty slots
func NewCharacter(id, name string, startingBalance int64) *Character {
	now := time.Now()
	return &Character{
		ID:        id,
		Name:      name,
		Level:     1,
		Balance:   startingBalance,
		Equipment: make(map[Slot]string),
		Inventory: []InventoryEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy of the character
func (c *Character) Clone() *Character {
	cp := *c
	cp.Equipment = make(map[Slot]string, len(c.Equipment))
	for k, v := range c.Equipment {
		cp.Equipment[k] = v
	}
	cp.Inventory = append([]InventoryEntry(nil), c.Inventory...)
	return &cp
}

// RemoveInventory takes quantity of itemID out of the bag.
// Returns false when the bag holds fewer than quantity.
func (c *Character) RemoveInventory(itemID string, quantity int) bool {
	for i := range c.Inventory {
		if c.Inventory[i].ItemID != itemID {
			continue
		}
		if c.Inventory[i].Quantity < quantity {
			return false
		}
		c.Inventory[i].Quantity -= quantity
		if c.Inventory[i].Quantity == 0 {
			c.Inventory = append(c.Inventory[:i], c.Inventory[i+1:]...)
		}
		return true
	}
	return false
}
