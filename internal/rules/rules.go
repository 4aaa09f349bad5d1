// Package rules holds the immutable class, race and alignment tables the
// rules engine evaluates characters against.
package rules

import (
	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
)

// DefaultHitDie applies to classes outside the class enum
const DefaultHitDie = 8

// Requirement is a minimum score for one ability
type Requirement struct {
	Ability dnd5e.Ability
	Minimum int
}

// RaceRules are the score constraints for a race. A total outside the
// band is advisory; a hard minimum is blocking.
type RaceRules struct {
	MinTotal     int
	MaxTotal     int
	HardMinimums []Requirement
}

type classRules struct {
	hitDie       int
	armorBonus   int
	priority     []dnd5e.Ability
	minimums     []Requirement
	prereqs      []Requirement
	archetypes   []string
	spellcasting *spellcasting
}

type spellcasting struct {
	learningLevels []int
	maxPerLevel    int
	tiers          map[int][]dnd5e.Spell
	slots          map[int]dnd5e.SpellSlots
	starting       []dnd5e.Spell
}

// Tables is the loaded rule set. It is safe for concurrent use and never
// changes after Load; accessors hand out copies.
type Tables struct {
	classes      map[dnd5e.Class]*classRules
	races        map[dnd5e.Race]RaceRules
	alignments   map[dnd5e.Alignment]bool
	defaultSlots dnd5e.SpellSlots
}

// HitDie returns the class hit die, DefaultHitDie for unknown classes
func (t *Tables) HitDie(class dnd5e.Class) int {
	if rules, ok := t.classes[class]; ok {
		return rules.hitDie
	}
	return DefaultHitDie
}

// ArmorBonus returns the starting armor bonus over the unarmored 10
func (t *Tables) ArmorBonus(class dnd5e.Class) int {
	if rules, ok := t.classes[class]; ok {
		return rules.armorBonus
	}
	return 0
}

// AbilityPriority returns the order in which generated scores are
// assigned, highest first. Unknown classes use canonical order.
func (t *Tables) AbilityPriority(class dnd5e.Class) []dnd5e.Ability {
	if rules, ok := t.classes[class]; ok {
		return append([]dnd5e.Ability(nil), rules.priority...)
	}
	return append([]dnd5e.Ability(nil), dnd5e.Abilities...)
}

// AbilityMinimums returns the class requirements in canonical ability order
func (t *Tables) AbilityMinimums(class dnd5e.Class) []Requirement {
	if rules, ok := t.classes[class]; ok {
		return append([]Requirement(nil), rules.minimums...)
	}
	return nil
}

// MulticlassPrerequisites returns the scores needed to multiclass into class
func (t *Tables) MulticlassPrerequisites(class dnd5e.Class) []Requirement {
	if rules, ok := t.classes[class]; ok {
		return append([]Requirement(nil), rules.prereqs...)
	}
	return nil
}

// Archetypes returns the archetypes available to a class
func (t *Tables) Archetypes(class dnd5e.Class) []string {
	if rules, ok := t.classes[class]; ok {
		return append([]string(nil), rules.archetypes...)
	}
	return nil
}

// IsArchetypeAllowed reports whether archetype belongs to class
func (t *Tables) IsArchetypeAllowed(class dnd5e.Class, archetype string) bool {
	rules, ok := t.classes[class]
	if !ok {
		return false
	}
	for _, a := range rules.archetypes {
		if a == archetype {
			return true
		}
	}
	return false
}

// HasSpellLearning reports whether the class has a spell-learning table
func (t *Tables) HasSpellLearning(class dnd5e.Class) bool {
	return t.spellcasting(class) != nil
}

// IsSpellcaster reports whether the class is a designated spellcasting
// class with a starting spell set
func (t *Tables) IsSpellcaster(class dnd5e.Class) bool {
	sc := t.spellcasting(class)
	return sc != nil && len(sc.starting) > 0
}

// IsSpellLearningLevel reports whether level is a spell-learning level for class
func (t *Tables) IsSpellLearningLevel(class dnd5e.Class, level int) bool {
	sc := t.spellcasting(class)
	if sc == nil {
		return false
	}
	for _, l := range sc.learningLevels {
		if l == level {
			return true
		}
	}
	return false
}

// SpellsForTier returns the spell list keyed by floor(level/2)
func (t *Tables) SpellsForTier(class dnd5e.Class, tier int) []dnd5e.Spell {
	if sc := t.spellcasting(class); sc != nil {
		return append([]dnd5e.Spell(nil), sc.tiers[tier]...)
	}
	return nil
}

// MaxSpellsPerLevel returns the per-level spell cap, 0 without spell rules
func (t *Tables) MaxSpellsPerLevel(class dnd5e.Class) int {
	if sc := t.spellcasting(class); sc != nil {
		return sc.maxPerLevel
	}
	return 0
}

// SpellSlots returns the slot allocation for class at level, falling back
// to the default floor when the table has no entry.
func (t *Tables) SpellSlots(class dnd5e.Class, level int) dnd5e.SpellSlots {
	if sc := t.spellcasting(class); sc != nil {
		if slots, ok := sc.slots[level]; ok {
			return slots
		}
	}
	return t.defaultSlots
}

// StartingSpells returns the fixed spells granted when multiclassing into class
func (t *Tables) StartingSpells(class dnd5e.Class) []dnd5e.Spell {
	if sc := t.spellcasting(class); sc != nil {
		return append([]dnd5e.Spell(nil), sc.starting...)
	}
	return nil
}

// Race returns the score constraints for a race
func (t *Tables) Race(race dnd5e.Race) (RaceRules, bool) {
	rules, ok := t.races[race]
	if !ok {
		return RaceRules{}, false
	}
	rules.HardMinimums = append([]Requirement(nil), rules.HardMinimums...)
	return rules, true
}

// IsCanonicalAlignment reports whether a is one of the nine alignments
func (t *Tables) IsCanonicalAlignment(a dnd5e.Alignment) bool {
	return t.alignments[a]
}

func (t *Tables) spellcasting(class dnd5e.Class) *spellcasting {
	if rules, ok := t.classes[class]; ok {
		return rules.spellcasting
	}
	return nil
}
