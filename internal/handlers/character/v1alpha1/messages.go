package v1alpha1

import (
	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
)

// CreateCharacterRequest creates a character at level 1
type CreateCharacterRequest struct {
	Name       string `json:"name"`
	Race       string `json:"race"`
	Class      string `json:"class"`
	Method     string `json:"method,omitempty"`
	CampaignID string `json:"campaign_id,omitempty"`

	Alignment         *dnd5e.Alignment      `json:"alignment,omitempty"`
	Skills            map[string]int        `json:"skills,omitempty"`
	Inventory         []dnd5e.InventoryItem `json:"inventory,omitempty"`
	ArchetypeFeatures []string              `json:"archetype_features,omitempty"`
	Traits            dnd5e.Traits          `json:"traits"`
	Backstory         string                `json:"backstory,omitempty"`
}

// CharacterResponse is returned by every mutating call. Character is
// absent when validation blocked the change.
type CharacterResponse struct {
	Character  *dnd5e.Character        `json:"character,omitempty"`
	Validation *dnd5e.ValidationResult `json:"validation,omitempty"`
}

// CharacterIDRequest addresses a single stored character
type CharacterIDRequest struct {
	CharacterID string `json:"character_id"`
}

// LevelUpCharacterResponse reports what the new level granted
type LevelUpCharacterResponse struct {
	Character       *dnd5e.Character        `json:"character,omitempty"`
	Validation      *dnd5e.ValidationResult `json:"validation,omitempty"`
	HitPointsGained int                     `json:"hit_points_gained"`
	ImprovedAbility string                  `json:"improved_ability,omitempty"`
	LearnedSpells   []dnd5e.Spell           `json:"learned_spells,omitempty"`
}

// UpdateBackgroundRequest replaces background fields. Null or omitted
// fields are kept; an empty list clears the field.
type UpdateBackgroundRequest struct {
	CharacterID string   `json:"character_id"`
	Backstory   *string  `json:"backstory,omitempty"`
	Personality []string `json:"personality"`
	Ideals      []string `json:"ideals"`
	Bonds       []string `json:"bonds"`
	Flaws       []string `json:"flaws"`
}

// GetCharacterResponse holds a stored character
type GetCharacterResponse struct {
	Character *dnd5e.Character `json:"character"`
}

// ListCharactersRequest filters by campaign when CampaignID is set
type ListCharactersRequest struct {
	CampaignID string `json:"campaign_id,omitempty"`
}

// ListCharactersResponse holds stored characters in creation order
type ListCharactersResponse struct {
	Characters []*dnd5e.Character `json:"characters"`
}

// DeleteCharacterResponse confirms a deletion
type DeleteCharacterResponse struct {
	CharacterID string `json:"character_id"`
}

// MulticlassCharacterRequest adds a secondary class
type MulticlassCharacterRequest struct {
	CharacterID string `json:"character_id"`
	Class       string `json:"class"`
}

// LearnSpellRequest names a spell in full or by SRD key
type LearnSpellRequest struct {
	CharacterID string       `json:"character_id"`
	Spell       *dnd5e.Spell `json:"spell,omitempty"`
	SpellKey    string       `json:"spell_key,omitempty"`
}

// LearnSpellResponse reports the learned spell or why it was refused
type LearnSpellResponse struct {
	Character      *dnd5e.Character        `json:"character,omitempty"`
	Spell          *dnd5e.Spell            `json:"spell,omitempty"`
	CanLearn       bool                    `json:"can_learn"`
	LearningErrors []string                `json:"learning_errors,omitempty"`
	Validation     *dnd5e.ValidationResult `json:"validation,omitempty"`
}

// PrepareSpellsResponse holds today's prepared spells
type PrepareSpellsResponse struct {
	Prepared []dnd5e.Spell    `json:"prepared"`
	Slots    dnd5e.SpellSlots `json:"slots"`
}

// ExportCharacterResponse holds a portable envelope
type ExportCharacterResponse struct {
	Envelope *dnd5e.ExportEnvelope `json:"envelope"`
}

// ImportCharacterRequest stores an exported character under a new id
type ImportCharacterRequest struct {
	Envelope   *dnd5e.ExportEnvelope `json:"envelope"`
	CampaignID string                `json:"campaign_id,omitempty"`
}

// ListCampaignCharactersRequest reads a campaign roster
type ListCampaignCharactersRequest struct {
	CampaignID string `json:"campaign_id"`
}

// ListCampaignCharactersResponse holds the roster's character ids, sorted
type ListCampaignCharactersResponse struct {
	CharacterIDs []string `json:"character_ids"`
}
