package engine

import (
	"strings"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
)

// GetNewSpellsForLevel returns the spells a character gains on reaching
// its current level. Levels outside the class's learning table yield none.
func (e *RuleEngine) GetNewSpellsForLevel(character *dnd5e.Character) []dnd5e.Spell {
	if !e.rules.IsSpellLearningLevel(character.Class, character.Level) {
		return []dnd5e.Spell{}
	}

	spells := e.rules.SpellsForTier(character.Class, maxSpellLevel(character.Level))
	if limit := e.rules.MaxSpellsPerLevel(character.Class); len(spells) > limit {
		spells = spells[:limit]
	}
	if spells == nil {
		return []dnd5e.Spell{}
	}
	return spells
}

// CalculateSpellSlots returns the daily slot allocation for the character's
// class and level
func (e *RuleEngine) CalculateSpellSlots(character *dnd5e.Character) dnd5e.SpellSlots {
	return e.rules.SpellSlots(character.Class, character.Level)
}

// ValidateSpellLearning checks whether spell may be added to the character.
// All failures are reported, not just the first.
func (e *RuleEngine) ValidateSpellLearning(character *dnd5e.Character, spell dnd5e.Spell) *SpellLearningResult {
	r := &result{}

	if strings.TrimSpace(spell.Name) == "" {
		r.errorf("spell name is required")
	}
	if spell.Level < 0 {
		r.errorf("spell level %d must not be negative", spell.Level)
	}

	if !e.rules.HasSpellLearning(character.Class) {
		r.errorf("%s cannot learn spells", character.Class)
	} else {
		known := 0
		for _, s := range character.Spells {
			if s.Level == spell.Level {
				known++
			}
		}
		if limit := e.rules.MaxSpellsPerLevel(character.Class); known >= limit {
			r.errorf("already knows %d level %d spells (maximum %d)", known, spell.Level, limit)
		}
	}

	if character.KnowsSpell(spell.Name) {
		r.errorf("spell %q is already known", spell.Name)
	}
	if highest := maxSpellLevel(character.Level); spell.Level > highest {
		r.errorf("spell level %d exceeds maximum %d at character level %d", spell.Level, highest, character.Level)
	}

	return &SpellLearningResult{
		CanLearn: len(r.errors) == 0,
		Errors:   nonNil(r.errors),
	}
}

// PrepareDailySpells returns the first N known spells marked prepared,
// where N = max(1, floor(level/2) + wisdom modifier). The character's own
// spell list is not modified.
func (e *RuleEngine) PrepareDailySpells(character *dnd5e.Character) []dnd5e.Spell {
	count := max(1, maxSpellLevel(character.Level)+dnd5e.AbilityModifier(character.AbilityScores.Wisdom))
	count = min(count, len(character.Spells))

	prepared := make([]dnd5e.Spell, count)
	for i := range prepared {
		prepared[i] = character.Spells[i]
		prepared[i].Prepared = true
	}
	return prepared
}

// maxSpellLevel is the highest spell level learnable at a character level
func maxSpellLevel(level int) int {
	return dnd5e.FloorDiv(level, 2)
}
