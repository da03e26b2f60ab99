package domain

// Slot identifies one of the six equipment slots a character can fill
type Slot string

const (
	SlotWeapon    Slot = "weapon"
	SlotHead      Slot = "head"
	SlotChest     Slot = "chest"
	SlotHands     Slot = "hands"
	SlotFeet      Slot = "feet"
	SlotAccessory Slot = "accessory"
)

// AllSlots lists the equipment slots in their canonical order.
// Every aggregation walks slots in this order so results are reproducible.
var AllSlots = []Slot{SlotWeapon, SlotHead, SlotChest, SlotHands, SlotFeet, SlotAccessory}

// IsValid reports whether s is one of the six known slots
func (s Slot) IsValid() bool {
	for _, known := range AllSlots {
		if s == known {
			return true
		}
	}
	return false
}

// Rarity represents the visual rarity and power tier of an item
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// AllRarities lists rarities from weakest to strongest
var AllRarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

// Rank returns the 0-based strength ordering of the rarity, or -1 if unknown
func (r Rarity) Rank() int {
	for i, known := range AllRarities {
		if r == known {
			return i
		}
	}
	return -1
}

// IsValid reports whether r is a known rarity
func (r Rarity) IsValid() bool {
	return r.Rank() >= 0
}

// StatType is the kind of stat an item rolls as main stat or sub-stat
type StatType string

const (
	StatAttack         StatType = "attack"
	StatDefense        StatType = "defense"
	StatHP             StatType = "hp"
	StatAttackPercent  StatType = "attack%"
	StatDefensePercent StatType = "defense%"
	StatHPPercent      StatType = "hp%"
	StatCritRate       StatType = "critRate"
	StatCritDMG        StatType = "critDMG"
	StatEnergy         StatType = "energy"
	StatLuck           StatType = "luck"
)

// Element is the elemental affinity carried by a set
type Element string

const (
	ElementNone    Element = ""
	ElementPyro    Element = "pyro"
	ElementElectro Element = "electro"
	ElementCryo    Element = "cryo"
	ElementAnemo   Element = "anemo"
	ElementGeo     Element = "geo"
	ElementHydro   Element = "hydro"
)

// AllElements lists the six elements in their canonical order
var AllElements = []Element{ElementPyro, ElementElectro, ElementCryo, ElementAnemo, ElementGeo, ElementHydro}

// Stat is a single rolled stat line on an item
type Stat struct {
	Type  StatType `json:"type"`
	Value float64  `json:"value"`
}

// MaxItemLevel is the highest enhancement level an item can reach
const MaxItemLevel = 15

// Item is a persisted piece of equipment.
// Items are global documents: several characters may reference the same id.
// Base stat values never change after generation; only Level does.
type Item struct {
	ID      string  `json:"id" db:"item_id"`
	Name    string  `json:"name" db:"name"`
	Slot    Slot    `json:"slot" db:"slot"`
	Rarity  Rarity  `json:"rarity" db:"rarity"`
	SetName string  `json:"set_name,omitempty" db:"set_name"`
	Element Element `json:"element,omitempty" db:"element"`
	Level   int     `json:"level" db:"level"`
	Price   int64   `json:"price" db:"price"`

	// Structured shape
	MainStat *Stat  `json:"main_stat,omitempty"`
	SubStats []Stat `json:"sub_stats,omitempty"`

	// Legacy shape: free-form map keyed by ActiveBuffs field names.
	// Only read for items created before structured stats existed.
	Buffs map[string]float64 `json:"buffs,omitempty"`
}

// IsLegacy reports whether the item only carries the old free-form buffs map
func (i *Item) IsLegacy() bool {
	return i.MainStat == nil && len(i.Buffs) > 0
}

// Clone returns a deep copy of the item
func (i *Item) Clone() *Item {
	cp := *i
	if i.MainStat != nil {
		ms := *i.MainStat
		cp.MainStat = &ms
	}
	cp.SubStats = append([]Stat(nil), i.SubStats...)
	if i.Buffs != nil {
		cp.Buffs = make(map[string]float64, len(i.Buffs))
		for k, v := range i.Buffs {
			cp.Buffs[k] = v
		}
	}
	return &cp
}
