// Package engine evaluates characters against the rule tables: the
// validation pipeline, multiclass eligibility and spell progression.
// Every method is pure; callers pass snapshots and get new values back.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-rules/internal/engine Engine

import (
	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
)

// Engine applies game rules to character snapshots
type Engine interface {
	// Validation
	ValidateCharacter(character *dnd5e.Character) *dnd5e.ValidationResult

	// Multiclassing
	MulticlassEligibility(character *dnd5e.Character, class dnd5e.Class) []string
	CanMulticlass(character *dnd5e.Character, class dnd5e.Class) bool
	CalculateMulticlassHitPoints(character *dnd5e.Character, class dnd5e.Class) int
	PerformMulticlass(character *dnd5e.Character, class dnd5e.Class) (*dnd5e.Character, error)

	// Spell progression
	GetNewSpellsForLevel(character *dnd5e.Character) []dnd5e.Spell
	CalculateSpellSlots(character *dnd5e.Character) dnd5e.SpellSlots
	ValidateSpellLearning(character *dnd5e.Character, spell dnd5e.Spell) *SpellLearningResult
	PrepareDailySpells(character *dnd5e.Character) []dnd5e.Spell
}
