// Package character defines the interface for character lifecycle operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-rules/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/rpg-rules/internal/builder"
	"github.com/KirkDiggler/rpg-rules/internal/engine"
	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
)

// Service defines the interface for character operations.
//
// Mutating operations run the full validation pipeline on the candidate
// before persisting. When it reports blocking errors the output carries
// only the Validation result, Character is nil, the error is nil and
// nothing is stored.
type Service interface {
	// Lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	LevelUpCharacter(ctx context.Context, input *LevelUpCharacterInput) (*LevelUpCharacterOutput, error)
	UpdateBackground(ctx context.Context, input *UpdateBackgroundInput) (*UpdateBackgroundOutput, error)

	// Storage passthrough
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Rules
	ValidateCharacter(ctx context.Context, input *ValidateCharacterInput) (*ValidateCharacterOutput, error)
	MulticlassCharacter(ctx context.Context, input *MulticlassCharacterInput) (*MulticlassCharacterOutput, error)
	LearnSpell(ctx context.Context, input *LearnSpellInput) (*LearnSpellOutput, error)
	PrepareSpells(ctx context.Context, input *PrepareSpellsInput) (*PrepareSpellsOutput, error)

	// Portability
	ExportCharacter(ctx context.Context, input *ExportCharacterInput) (*ExportCharacterOutput, error)
	ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error)
}

// CreateCharacterInput holds the caller-chosen parts of a new character.
// Ability scores, hit points and armor class come from the builder.
type CreateCharacterInput struct {
	Name       string
	Race       dnd5e.Race
	Class      dnd5e.Class
	Method     builder.Method // defaults to builder.MethodStandard
	CampaignID string

	// Optional starting details
	Alignment         *dnd5e.Alignment
	Skills            map[string]int
	Inventory         []dnd5e.InventoryItem
	ArchetypeFeatures []string
	Traits            dnd5e.Traits
	Backstory         string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character  *dnd5e.Character
	Validation *dnd5e.ValidationResult
}

// LevelUpCharacterInput defines the request for leveling up a character
type LevelUpCharacterInput struct {
	CharacterID string
}

// LevelUpCharacterOutput defines the response for leveling up a character
type LevelUpCharacterOutput struct {
	Character  *dnd5e.Character
	Validation *dnd5e.ValidationResult

	HitPointsGained int
	// ImprovedAbility is set when the new level granted an improvement
	ImprovedAbility dnd5e.Ability
	LearnedSpells   []dnd5e.Spell
}

// BackgroundPatch lists the background fields to replace. A nil field is
// left untouched; an empty non-nil list clears the field.
type BackgroundPatch struct {
	Backstory   *string
	Personality []string
	Ideals      []string
	Bonds       []string
	Flaws       []string
}

// UpdateBackgroundInput defines the request for updating a background
type UpdateBackgroundInput struct {
	CharacterID string
	Patch       BackgroundPatch
}

// UpdateBackgroundOutput defines the response for updating a background
type UpdateBackgroundOutput struct {
	Character  *dnd5e.Character
	Validation *dnd5e.ValidationResult
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *dnd5e.Character
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct {
	CampaignID string // Optional filter
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*dnd5e.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct {
	// Character is the record as it was before deletion
	Character *dnd5e.Character
}

// ValidateCharacterInput defines the request for validating a stored character
type ValidateCharacterInput struct {
	CharacterID string
}

// ValidateCharacterOutput defines the response for validating a character
type ValidateCharacterOutput struct {
	Character  *dnd5e.Character
	Validation *dnd5e.ValidationResult
}

// MulticlassCharacterInput defines the request for adding a class
type MulticlassCharacterInput struct {
	CharacterID string
	Class       dnd5e.Class
}

// MulticlassCharacterOutput defines the response for adding a class
type MulticlassCharacterOutput struct {
	Character  *dnd5e.Character
	Validation *dnd5e.ValidationResult
}

// LearnSpellInput names the spell to learn, either in full or by SRD key
type LearnSpellInput struct {
	CharacterID string
	Spell       *dnd5e.Spell
	SpellKey    string
}

// LearnSpellOutput defines the response for learning a spell. When the
// spell cannot be learned Learning lists why and Character is nil.
type LearnSpellOutput struct {
	Character  *dnd5e.Character
	Spell      *dnd5e.Spell
	Learning   *engine.SpellLearningResult
	Validation *dnd5e.ValidationResult
}

// PrepareSpellsInput defines the request for preparing daily spells
type PrepareSpellsInput struct {
	CharacterID string
}

// PrepareSpellsOutput holds today's prepared spells. The stored
// character is not changed.
type PrepareSpellsOutput struct {
	Prepared []dnd5e.Spell
	Slots    dnd5e.SpellSlots
}

// ExportCharacterInput defines the request for exporting a character
type ExportCharacterInput struct {
	CharacterID string
}

// ExportCharacterOutput defines the response for exporting a character
type ExportCharacterOutput struct {
	Envelope *dnd5e.ExportEnvelope
}

// ImportCharacterInput defines the request for importing a character
type ImportCharacterInput struct {
	Envelope   *dnd5e.ExportEnvelope
	CampaignID string // Optional
}

// ImportCharacterOutput defines the response for importing a character
type ImportCharacterOutput struct {
	Character  *dnd5e.Character
	Validation *dnd5e.ValidationResult
}
