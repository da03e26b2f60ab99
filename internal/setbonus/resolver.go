package setbonus

import (
	"fmt"
	"sort"

	"github.com/osse101/BrandishRPG_Go/internal/domain"
)

var tierThresholds = []int{TierTwoPiece, TierThreePiece, TierSixPiece}

// ActiveSet describes a set with at least two pieces equipped
type ActiveSet struct {
	Name    string         `json:"name"`
	Pieces  int            `json:"pieces"`
	Tier    int            `json:"tier"` // highest unlocked threshold
	Element domain.Element `json:"element,omitempty"`
}

// Label renders the set for display, e.g. "Crimson Witch (3pc)"
func (a ActiveSet) Label() string {
	return fmt.Sprintf("%s (%dpc)", DisplayName(a.Name), a.Tier)
}

// Bundle is the resolved set bonus for one loadout
type Bundle struct {
	Bonuses   Bonuses             `json:"bonuses"`
	Sets      []ActiveSet         `json:"sets"`
	Elements  []domain.Element    `json:"elements"`
	Resonance domain.Element      `json:"resonance,omitempty"`
	Reaction  *domain.ReactionDef `json:"reaction,omitempty"`
}

// Resolve computes the set bonus bundle using the embedded tables
func Resolve(items []*domain.Item) Bundle {
	return Default().Resolve(items)
}

// Resolve groups items by set, applies every unlocked tier cumulatively,
// adds the resonance of a completed elemental set, and selects the reaction
// when exactly two distinct elements are present. Nil items are ignored.
func (t *Tables) Resolve(items []*domain.Item) Bundle {
	bundle := Bundle{
		Bonuses:  make(Bonuses),
		Sets:     []ActiveSet{},
		Elements: []domain.Element{},
	}

	counts := make(map[string]int)
	present := make(map[domain.Element]bool)
	for _, item := range items {
		if item == nil {
			continue
		}
		if item.SetName != "" {
			counts[item.SetName]++
		}
		if element := t.itemElement(item); element != domain.ElementNone {
			present[element] = true
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		set, ok := t.Sets[name]
		pieces := counts[name]
		if !ok || pieces < TierTwoPiece {
			continue
		}

		active := ActiveSet{Name: name, Pieces: pieces, Element: set.Element}
		for _, threshold := range tierThresholds {
			if pieces < threshold {
				break
			}
			active.Tier = threshold
			bundle.Bonuses.addAll(set.Tiers[threshold])
		}

		if pieces >= TierSixPiece && set.Element != domain.ElementNone {
			if resonance, ok := t.Resonances[set.Element]; ok {
				bundle.Bonuses.addAll(resonance)
				bundle.Resonance = set.Element
			}
		}
		bundle.Sets = append(bundle.Sets, active)
	}

	for element := range present {
		bundle.Elements = append(bundle.Elements, element)
	}
	sort.Slice(bundle.Elements, func(i, j int) bool { return bundle.Elements[i] < bundle.Elements[j] })

	if len(bundle.Elements) == 2 {
		bundle.Reaction = t.Reaction(bundle.Elements[0], bundle.Elements[1])
	}

	return bundle
}

// itemElement prefers the element stored on the item and falls back to the set's
func (t *Tables) itemElement(item *domain.Item) domain.Element {
	if item.Element != domain.ElementNone && isElement(item.Element) {
		return item.Element
	}
	if set, ok := t.Sets[item.SetName]; ok {
		return set.Element
	}
	return domain.ElementNone
}

// SetInfo returns the display descriptor for the bundle
func (b *Bundle) SetInfo() domain.SetInfo {
	info := domain.SetInfo{
		ActiveSets:     make([]string, 0, len(b.Sets)),
		ActiveElements: append([]domain.Element{}, b.Elements...),
		Resonance:      b.Resonance,
		Reaction:       b.Reaction,
	}
	for _, s := range b.Sets {
		info.ActiveSets = append(info.ActiveSets, s.Label())
	}
	return info
}

// Contributions maps the bundle onto ActiveBuffs fields in stable key order
func (b *Bundle) Contributions() []domain.StatContribution {
	keys := b.Bonuses.sortedKeys()
	out := make([]domain.StatContribution, 0, len(keys))
	for _, stat := range keys {
		field, ok := stat.Field()
		if !ok {
			continue
		}
		out = append(out, domain.StatContribution{Field: field, Value: b.Bonuses[stat]})
	}
	return out
}

// Get returns the accumulated value of one bonus stat
func (b Bonuses) Get(stat BonusStat) float64 {
	return b[stat]
}

func (b Bonuses) addAll(other Bonuses) {
	for _, stat := range other.sortedKeys() {
		b[stat] += other[stat]
	}
}

func (b Bonuses) sortedKeys() []BonusStat {
	keys := make([]BonusStat, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
