package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
)

// MulticlassEligibility returns one message per reason the character may
// not take levels in class: the class is the primary class, or an ability
// prerequisite is unmet. An empty result means eligible on those grounds.
func (e *RuleEngine) MulticlassEligibility(character *dnd5e.Character, class dnd5e.Class) []string {
	var reasons []string

	if class == character.Class {
		reasons = append(reasons, fmt.Sprintf("cannot multiclass into primary class %s", class))
	}
	for _, req := range e.rules.MulticlassPrerequisites(class) {
		if score := character.AbilityScores.Get(req.Ability); score < req.Minimum {
			reasons = append(reasons, fmt.Sprintf("multiclassing into %s requires %s %d or higher (has %d)",
				class, req.Ability, req.Minimum, score))
		}
	}

	return reasons
}

// CanMulticlass reports whether class can be added to the character
func (e *RuleEngine) CanMulticlass(character *dnd5e.Character, class dnd5e.Class) bool {
	return len(e.ineligibility(character, class)) == 0
}

// ineligibility extends MulticlassEligibility with the checks that only
// matter when adding a new entry.
func (e *RuleEngine) ineligibility(character *dnd5e.Character, class dnd5e.Class) []string {
	if !class.IsValid() {
		return []string{fmt.Sprintf("invalid class %q", class)}
	}

	reasons := e.MulticlassEligibility(character, class)
	if class != character.Class && character.HasClass(class) {
		reasons = append(reasons, fmt.Sprintf("already multiclassed into %s", class))
	}
	return reasons
}

// CalculateMulticlassHitPoints returns the hit points gained by taking the
// first level in class: half its hit die plus the constitution modifier,
// never less than 1.
func (e *RuleEngine) CalculateMulticlassHitPoints(character *dnd5e.Character, class dnd5e.Class) int {
	hp := e.rules.HitDie(class)/2 + dnd5e.AbilityModifier(character.AbilityScores.Constitution)
	return max(1, hp)
}

// PerformMulticlass returns a copy of character with class added at level
// 1. Hit points grow by CalculateMulticlassHitPoints and spellcasting
// classes grant their starting spells. Nothing is persisted.
func (e *RuleEngine) PerformMulticlass(character *dnd5e.Character, class dnd5e.Class) (*dnd5e.Character, error) {
	if character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if reasons := e.ineligibility(character, class); len(reasons) > 0 {
		return nil, errors.Ineligiblef("cannot multiclass into %s: %s", class, strings.Join(reasons, "; "))
	}

	updated := character.Clone()
	updated.Multiclass = append(updated.Multiclass, dnd5e.MulticlassEntry{
		Class: class,
		Level: dnd5e.MinLevel,
	})
	updated.HitPoints += e.CalculateMulticlassHitPoints(character, class)

	if e.rules.IsSpellcaster(class) {
		for _, spell := range e.rules.StartingSpells(class) {
			if !updated.KnowsSpell(spell.Name) {
				updated.Spells = append(updated.Spells, spell)
			}
		}
	}

	return updated, nil
}
