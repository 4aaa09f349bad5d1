// Package v1alpha1 handles the character gRPC service interface
package v1alpha1

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-rules/internal/builder"
	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
	"github.com/KirkDiggler/rpg-rules/internal/repositories/campaign"
	"github.com/KirkDiggler/rpg-rules/internal/services/character"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
	Roster           campaign.Roster
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.Roster == nil {
		vb.RequiredField("Roster")
	}
	return vb.Build()
}

// Handler implements CharacterServiceServer on top of the character service
// and keeps campaign rosters in step with stored characters
type Handler struct {
	characterService character.Service
	roster           campaign.Roster
}

var _ CharacterServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
		roster:           cfg.Roster,
	}, nil
}

// CreateCharacter creates a character and enrolls it in its campaign
func (h *Handler) CreateCharacter(
	ctx context.Context,
	req *CreateCharacterRequest,
) (*CharacterResponse, error) {
	race := dnd5e.Race(normalize(req.Race))
	class := dnd5e.Class(normalize(req.Class))
	method := builder.Method(normalize(req.Method))

	vb := errors.NewValidationBuilder()
	if !race.IsValid() {
		vb.Fieldf("race", "unknown race %q", req.Race)
	}
	if !class.IsValid() {
		vb.Fieldf("class", "unknown class %q", req.Class)
	}
	if method != "" && !method.IsValid() {
		vb.Fieldf("method", "unknown generation method %q", req.Method)
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.CreateCharacter(ctx, &character.CreateCharacterInput{
		Name:              req.Name,
		Race:              race,
		Class:             class,
		Method:            method,
		CampaignID:        req.CampaignID,
		Alignment:         req.Alignment,
		Skills:            req.Skills,
		Inventory:         req.Inventory,
		ArchetypeFeatures: req.ArchetypeFeatures,
		Traits:            req.Traits,
		Backstory:         req.Backstory,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	h.enroll(ctx, output.Character)

	return &CharacterResponse{
		Character:  output.Character,
		Validation: output.Validation,
	}, nil
}

// LevelUpCharacter advances a character by one level
func (h *Handler) LevelUpCharacter(
	ctx context.Context,
	req *CharacterIDRequest,
) (*LevelUpCharacterResponse, error) {
	if err := validateCharacterID(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.LevelUpCharacter(ctx, &character.LevelUpCharacterInput{
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LevelUpCharacterResponse{
		Character:       output.Character,
		Validation:      output.Validation,
		HitPointsGained: output.HitPointsGained,
		ImprovedAbility: string(output.ImprovedAbility),
		LearnedSpells:   output.LearnedSpells,
	}, nil
}

// UpdateBackground patches backstory and traits
func (h *Handler) UpdateBackground(
	ctx context.Context,
	req *UpdateBackgroundRequest,
) (*CharacterResponse, error) {
	if req.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	output, err := h.characterService.UpdateBackground(ctx, &character.UpdateBackgroundInput{
		CharacterID: req.CharacterID,
		Patch: character.BackgroundPatch{
			Backstory:   req.Backstory,
			Personality: req.Personality,
			Ideals:      req.Ideals,
			Bonds:       req.Bonds,
			Flaws:       req.Flaws,
		},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CharacterResponse{
		Character:  output.Character,
		Validation: output.Validation,
	}, nil
}

// GetCharacter retrieves a stored character
func (h *Handler) GetCharacter(
	ctx context.Context,
	req *CharacterIDRequest,
) (*GetCharacterResponse, error) {
	if err := validateCharacterID(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.GetCharacter(ctx, &character.GetCharacterInput{
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetCharacterResponse{Character: output.Character}, nil
}

// ListCharacters lists stored characters
func (h *Handler) ListCharacters(
	ctx context.Context,
	req *ListCharactersRequest,
) (*ListCharactersResponse, error) {
	output, err := h.characterService.ListCharacters(ctx, &character.ListCharactersInput{
		CampaignID: req.CampaignID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	characters := output.Characters
	if characters == nil {
		characters = []*dnd5e.Character{}
	}
	return &ListCharactersResponse{Characters: characters}, nil
}

// DeleteCharacter deletes a character and drops it from its campaign
func (h *Handler) DeleteCharacter(
	ctx context.Context,
	req *CharacterIDRequest,
) (*DeleteCharacterResponse, error) {
	if err := validateCharacterID(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.DeleteCharacter(ctx, &character.DeleteCharacterInput{
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if deleted := output.Character; deleted != nil && deleted.CampaignID != "" {
		if _, err := h.roster.RemoveCharacter(ctx, campaign.RemoveCharacterInput{
			CampaignID:  deleted.CampaignID,
			CharacterID: deleted.ID,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to remove character from campaign roster",
				"character_id", deleted.ID,
				"campaign_id", deleted.CampaignID,
				"error", err)
		}
	}

	return &DeleteCharacterResponse{CharacterID: req.CharacterID}, nil
}

// ValidateCharacter runs the validation pipeline over a stored character
func (h *Handler) ValidateCharacter(
	ctx context.Context,
	req *CharacterIDRequest,
) (*CharacterResponse, error) {
	if err := validateCharacterID(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.ValidateCharacter(ctx, &character.ValidateCharacterInput{
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CharacterResponse{
		Character:  output.Character,
		Validation: output.Validation,
	}, nil
}

// MulticlassCharacter adds a secondary class
func (h *Handler) MulticlassCharacter(
	ctx context.Context,
	req *MulticlassCharacterRequest,
) (*CharacterResponse, error) {
	class := dnd5e.Class(normalize(req.Class))

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", req.CharacterID, vb)
	if !class.IsValid() {
		vb.Fieldf("class", "unknown class %q", req.Class)
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.MulticlassCharacter(ctx, &character.MulticlassCharacterInput{
		CharacterID: req.CharacterID,
		Class:       class,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CharacterResponse{
		Character:  output.Character,
		Validation: output.Validation,
	}, nil
}

// LearnSpell adds a spell to a character's spell list
func (h *Handler) LearnSpell(
	ctx context.Context,
	req *LearnSpellRequest,
) (*LearnSpellResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", req.CharacterID, vb)
	if req.Spell == nil && strings.TrimSpace(req.SpellKey) == "" {
		vb.Field("spell", "spell or spell_key is required")
	}
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.LearnSpell(ctx, &character.LearnSpellInput{
		CharacterID: req.CharacterID,
		Spell:       req.Spell,
		SpellKey:    req.SpellKey,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &LearnSpellResponse{
		Character:  output.Character,
		Spell:      output.Spell,
		Validation: output.Validation,
	}
	if output.Learning != nil {
		resp.CanLearn = output.Learning.CanLearn
		resp.LearningErrors = output.Learning.Errors
	}
	return resp, nil
}

// PrepareSpells returns today's prepared spells
func (h *Handler) PrepareSpells(
	ctx context.Context,
	req *CharacterIDRequest,
) (*PrepareSpellsResponse, error) {
	if err := validateCharacterID(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.PrepareSpells(ctx, &character.PrepareSpellsInput{
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	prepared := output.Prepared
	if prepared == nil {
		prepared = []dnd5e.Spell{}
	}
	return &PrepareSpellsResponse{
		Prepared: prepared,
		Slots:    output.Slots,
	}, nil
}

// ExportCharacter wraps a character in a portable envelope
func (h *Handler) ExportCharacter(
	ctx context.Context,
	req *CharacterIDRequest,
) (*ExportCharacterResponse, error) {
	if err := validateCharacterID(req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.characterService.ExportCharacter(ctx, &character.ExportCharacterInput{
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ExportCharacterResponse{Envelope: output.Envelope}, nil
}

// ImportCharacter stores an exported character and enrolls it in the
// requested campaign
func (h *Handler) ImportCharacter(
	ctx context.Context,
	req *ImportCharacterRequest,
) (*CharacterResponse, error) {
	if req.Envelope == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("envelope is required"))
	}

	output, err := h.characterService.ImportCharacter(ctx, &character.ImportCharacterInput{
		Envelope:   req.Envelope,
		CampaignID: req.CampaignID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	h.enroll(ctx, output.Character)

	return &CharacterResponse{
		Character:  output.Character,
		Validation: output.Validation,
	}, nil
}

// ListCampaignCharacters returns the ids enrolled in a campaign
func (h *Handler) ListCampaignCharacters(
	ctx context.Context,
	req *ListCampaignCharactersRequest,
) (*ListCampaignCharactersResponse, error) {
	output, err := h.roster.ListCharacterIDs(ctx, campaign.ListCharacterIDsInput{
		CampaignID: req.CampaignID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	ids := output.CharacterIDs
	if ids == nil {
		ids = []string{}
	}
	return &ListCampaignCharactersResponse{CharacterIDs: ids}, nil
}

// enroll adds a stored character to its campaign roster. The character is
// already persisted, so a roster failure is logged and not returned.
func (h *Handler) enroll(ctx context.Context, c *dnd5e.Character) {
	if c == nil || c.CampaignID == "" {
		return
	}

	if _, err := h.roster.AddCharacter(ctx, campaign.AddCharacterInput{
		CampaignID:  c.CampaignID,
		CharacterID: c.ID,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to add character to campaign roster",
			"character_id", c.ID,
			"campaign_id", c.CampaignID,
			"error", err)
	}
}

func validateCharacterID(req *CharacterIDRequest) error {
	if req.CharacterID == "" {
		return errors.InvalidArgument("character_id is required")
	}
	return nil
}

// normalize turns "Half-Elf" into "half_elf"
func normalize(value string) string {
	return strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(value)))
}
