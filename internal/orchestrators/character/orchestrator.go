// Package character implements the character lifecycle orchestrator
package character

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-rules/internal/builder"
	"github.com/KirkDiggler/rpg-rules/internal/clients/srd"
	"github.com/KirkDiggler/rpg-rules/internal/engine"
	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
	"github.com/KirkDiggler/rpg-rules/internal/events"
	"github.com/KirkDiggler/rpg-rules/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-rules/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-rules/internal/repositories/character"
	"github.com/KirkDiggler/rpg-rules/internal/services/character"
)

const (
	tracerName = "github.com/KirkDiggler/rpg-rules/internal/orchestrators/character"

	// experiencePerLevel is the flat experience a character holds per level
	experiencePerLevel = 300

	// improvementInterval is how often a level grants an ability increase
	improvementInterval = 4
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Engine        engine.Engine
	Builder       builder.Builder
	IDGenerator   idgen.Generator
	Clock         clock.Clock
	Publisher     *events.Publisher

	// ExportIDGenerator defaults to a UUID generator with the "export" prefix
	ExportIDGenerator idgen.Generator
	// SpellCatalog resolves LearnSpell requests that only name an SRD key
	SpellCatalog srd.Catalog
	// TracerProvider defaults to the global provider
	TracerProvider trace.TracerProvider
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Builder == nil {
		vb.RequiredField("Builder")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	engine        engine.Engine
	builder       builder.Builder
	idGenerator   idgen.Generator
	exportIDs     idgen.Generator
	clock         clock.Clock
	publisher     *events.Publisher
	spellCatalog  srd.Catalog
	tracer        trace.Tracer
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	exportIDs := cfg.ExportIDGenerator
	if exportIDs == nil {
		exportIDs = idgen.NewUUID("export")
	}
	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		engine:        cfg.Engine,
		builder:       cfg.Builder,
		idGenerator:   cfg.IDGenerator,
		exportIDs:     exportIDs,
		clock:         cfg.Clock,
		publisher:     cfg.Publisher,
		spellCatalog:  cfg.SpellCatalog,
		tracer:        tp.Tracer(tracerName),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

func (o *Orchestrator) startSpan(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return o.tracer.Start(ctx, "character."+operation, trace.WithAttributes(attrs...))
}

// endSpan records err on span and ends it
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func characterIDAttr(id string) attribute.KeyValue {
	return attribute.String("character.id", id)
}

// CreateCharacter builds, validates and stores a new level 1 character
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *character.CreateCharacterInput) (_ *character.CreateCharacterOutput, err error) {
	ctx, span := o.startSpan(ctx, "CreateCharacter")
	defer func() { endSpan(span, err) }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("race", string(input.Race), vb)
	errors.ValidateRequired("class", string(input.Class), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	method := input.Method
	if method == "" {
		method = builder.MethodStandard
	}

	built, err := o.builder.Build(ctx, &builder.BuildInput{
		Class:  input.Class,
		Race:   input.Race,
		Method: method,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build character")
	}

	now := clock.Millis(o.clock)
	candidate := &dnd5e.Character{
		ID:                o.idGenerator.Generate(),
		Name:              input.Name,
		Race:              input.Race,
		Class:             input.Class,
		Level:             dnd5e.MinLevel,
		Experience:        0,
		AbilityScores:     built.AbilityScores,
		HitPoints:         built.HitPoints,
		ArmorClass:        built.ArmorClass,
		CampaignID:        input.CampaignID,
		Status:            dnd5e.StatusActive,
		Inventory:         []dnd5e.InventoryItem{},
		Spells:            []dnd5e.Spell{},
		Skills:            input.Skills,
		ArchetypeFeatures: input.ArchetypeFeatures,
		Alignment:         input.Alignment,
		Traits:            emptyTraits(),
		Backstory:         input.Backstory,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if input.Inventory != nil {
		candidate.Inventory = input.Inventory
	}
	mergeTraits(&candidate.Traits, input.Traits)
	// Detach from caller-owned slices and maps
	candidate = candidate.Clone()
	span.SetAttributes(characterIDAttr(candidate.ID))

	validation := o.engine.ValidateCharacter(candidate)
	if !validation.IsValid {
		slog.InfoContext(ctx, "character creation rejected by validation",
			"name", input.Name,
			"class", input.Class,
			"race", input.Race,
			"errors", validation.Errors)
		return &character.CreateCharacterOutput{Validation: validation}, nil
	}

	if err := o.save(ctx, candidate); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character created",
		"character_id", candidate.ID,
		"class", candidate.Class,
		"race", candidate.Race,
		"method", method)

	o.publish(ctx, events.EventCharacterCreated, candidate, map[string]any{
		events.ContextCampaignID: candidate.CampaignID,
	})

	return &character.CreateCharacterOutput{
		Character:  candidate,
		Validation: validation,
	}, nil
}

// LevelUpCharacter advances a character by one level
func (o *Orchestrator) LevelUpCharacter(ctx context.Context, input *character.LevelUpCharacterInput) (_ *character.LevelUpCharacterOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "LevelUpCharacter", characterIDAttr(input.CharacterID))
	defer func() { endSpan(span, err) }()

	current, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	candidate := current.Clone()
	candidate.Level++

	hp, err := o.builder.LevelUpHitPoints(ctx, &builder.LevelUpHitPointsInput{
		Class:        candidate.Class,
		Constitution: candidate.AbilityScores.Constitution,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll level-up hit points")
	}
	candidate.HitPoints += hp.HitPoints

	var improved dnd5e.Ability
	if candidate.Level%improvementInterval == 0 {
		improved = improveAbility(&candidate.AbilityScores)
	}

	learned := []dnd5e.Spell{}
	for _, spell := range o.engine.GetNewSpellsForLevel(candidate) {
		if candidate.KnowsSpell(spell.Name) {
			continue
		}
		candidate.Spells = append(candidate.Spells, spell)
		learned = append(learned, spell)
	}

	candidate.Experience = candidate.Level * experiencePerLevel
	candidate.UpdatedAt = clock.Millis(o.clock)

	validation := o.engine.ValidateCharacter(candidate)
	if !validation.IsValid {
		slog.InfoContext(ctx, "level up rejected by validation",
			"character_id", candidate.ID,
			"level", candidate.Level,
			"errors", validation.Errors)
		return &character.LevelUpCharacterOutput{Validation: validation}, nil
	}

	if err := o.save(ctx, candidate); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character leveled up",
		"character_id", candidate.ID,
		"level", candidate.Level,
		"hit_points_gained", hp.HitPoints,
		"improved_ability", improved,
		"spells_learned", len(learned))

	o.publish(ctx, events.EventCharacterLeveledUp, candidate, map[string]any{
		events.ContextLevel: candidate.Level,
	})

	return &character.LevelUpCharacterOutput{
		Character:       candidate,
		Validation:      validation,
		HitPointsGained: hp.HitPoints,
		ImprovedAbility: improved,
		LearnedSpells:   learned,
	}, nil
}

// UpdateBackground replaces the supplied background fields
func (o *Orchestrator) UpdateBackground(ctx context.Context, input *character.UpdateBackgroundInput) (_ *character.UpdateBackgroundOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "UpdateBackground", characterIDAttr(input.CharacterID))
	defer func() { endSpan(span, err) }()

	current, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	candidate := current.Clone()
	applyBackground(candidate, input.Patch)
	candidate = candidate.Clone()
	candidate.UpdatedAt = clock.Millis(o.clock)

	validation := o.engine.ValidateCharacter(candidate)
	if !validation.IsValid {
		return &character.UpdateBackgroundOutput{Validation: validation}, nil
	}

	if err := o.save(ctx, candidate); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character background updated", "character_id", candidate.ID)

	o.publish(ctx, events.EventCharacterBackgroundUpdated, candidate, nil)

	return &character.UpdateBackgroundOutput{
		Character:  candidate,
		Validation: validation,
	}, nil
}

// GetCharacter retrieves a character by ID
func (o *Orchestrator) GetCharacter(ctx context.Context, input *character.GetCharacterInput) (_ *character.GetCharacterOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "GetCharacter", characterIDAttr(input.CharacterID))
	defer func() { endSpan(span, err) }()

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &character.GetCharacterOutput{Character: c}, nil
}

// ListCharacters lists stored characters, optionally for one campaign
func (o *Orchestrator) ListCharacters(ctx context.Context, input *character.ListCharactersInput) (_ *character.ListCharactersOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "ListCharacters", attribute.String("campaign.id", input.CampaignID))
	defer func() { endSpan(span, err) }()

	result, err := o.characterRepo.List(ctx, characterrepo.ListInput{CampaignID: input.CampaignID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &character.ListCharactersOutput{Characters: result.Characters}, nil
}

// DeleteCharacter removes a character
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *character.DeleteCharacterInput) (_ *character.DeleteCharacterOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "DeleteCharacter", characterIDAttr(input.CharacterID))
	defer func() { endSpan(span, err) }()

	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	result, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	slog.InfoContext(ctx, "character deleted", "character_id", input.CharacterID)

	o.publish(ctx, events.EventCharacterDeleted, result.Deleted, map[string]any{
		events.ContextCampaignID: result.Deleted.CampaignID,
	})

	return &character.DeleteCharacterOutput{Character: result.Deleted}, nil
}

// ValidateCharacter runs the validation pipeline on a stored character
func (o *Orchestrator) ValidateCharacter(ctx context.Context, input *character.ValidateCharacterInput) (_ *character.ValidateCharacterOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "ValidateCharacter", characterIDAttr(input.CharacterID))
	defer func() { endSpan(span, err) }()

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	validation := o.engine.ValidateCharacter(c)
	span.SetAttributes(
		attribute.Bool("validation.valid", validation.IsValid),
		attribute.Int("validation.errors", len(validation.Errors)),
		attribute.Int("validation.warnings", len(validation.Warnings)),
	)

	return &character.ValidateCharacterOutput{
		Character:  c,
		Validation: validation,
	}, nil
}

// MulticlassCharacter adds a class at level 1
func (o *Orchestrator) MulticlassCharacter(ctx context.Context, input *character.MulticlassCharacterInput) (_ *character.MulticlassCharacterOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "MulticlassCharacter",
		characterIDAttr(input.CharacterID),
		attribute.String("class", string(input.Class)))
	defer func() { endSpan(span, err) }()

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("class", string(input.Class), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	current, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	candidate, err := o.engine.PerformMulticlass(current, input.Class)
	if err != nil {
		return nil, errors.Wrap(err, "failed to multiclass")
	}
	candidate.UpdatedAt = clock.Millis(o.clock)

	validation := o.engine.ValidateCharacter(candidate)
	if !validation.IsValid {
		return &character.MulticlassCharacterOutput{Validation: validation}, nil
	}

	if err := o.save(ctx, candidate); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character multiclassed",
		"character_id", candidate.ID,
		"class", input.Class,
		"total_level", candidate.TotalLevel())

	o.publish(ctx, events.EventCharacterMulticlassed, candidate, map[string]any{
		events.ContextClass: string(input.Class),
	})

	return &character.MulticlassCharacterOutput{
		Character:  candidate,
		Validation: validation,
	}, nil
}

// LearnSpell adds a spell to the character's known spells
func (o *Orchestrator) LearnSpell(ctx context.Context, input *character.LearnSpellInput) (_ *character.LearnSpellOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "LearnSpell", characterIDAttr(input.CharacterID))
	defer func() { endSpan(span, err) }()

	if input.Spell == nil && input.SpellKey == "" {
		return nil, errors.InvalidArgument("spell or spell key is required")
	}

	current, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	spell, err := o.resolveSpell(ctx, input)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("spell", spell.Name))

	learning := o.engine.ValidateSpellLearning(current, spell)
	if !learning.CanLearn {
		slog.InfoContext(ctx, "spell cannot be learned",
			"character_id", current.ID,
			"spell", spell.Name,
			"errors", learning.Errors)
		return &character.LearnSpellOutput{Spell: &spell, Learning: learning}, nil
	}

	candidate := current.Clone()
	candidate.Spells = append(candidate.Spells, spell)
	candidate.UpdatedAt = clock.Millis(o.clock)

	validation := o.engine.ValidateCharacter(candidate)
	if !validation.IsValid {
		return &character.LearnSpellOutput{
			Spell:      &spell,
			Learning:   learning,
			Validation: validation,
		}, nil
	}

	if err := o.save(ctx, candidate); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character learned spell",
		"character_id", candidate.ID,
		"spell", spell.Name,
		"spell_level", spell.Level)

	o.publish(ctx, events.EventCharacterSpellLearned, candidate, map[string]any{
		events.ContextSpell: spell.Name,
	})

	return &character.LearnSpellOutput{
		Character:  candidate,
		Spell:      &spell,
		Learning:   learning,
		Validation: validation,
	}, nil
}

// resolveSpell returns the spell from the request, looking it up in the
// SRD catalog when only a key was given
func (o *Orchestrator) resolveSpell(ctx context.Context, input *character.LearnSpellInput) (dnd5e.Spell, error) {
	if input.Spell != nil {
		spell := *input.Spell
		spell.Prepared = false
		return spell, nil
	}

	if o.spellCatalog == nil {
		return dnd5e.Spell{}, errors.FailedPrecondition("spell catalog is not configured")
	}

	spell, err := o.spellCatalog.GetSpell(ctx, input.SpellKey)
	if err != nil {
		return dnd5e.Spell{}, errors.Wrapf(err, "failed to resolve spell %s", input.SpellKey)
	}
	return *spell, nil
}

// PrepareSpells returns today's prepared spells and slots without saving
func (o *Orchestrator) PrepareSpells(ctx context.Context, input *character.PrepareSpellsInput) (_ *character.PrepareSpellsOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "PrepareSpells", characterIDAttr(input.CharacterID))
	defer func() { endSpan(span, err) }()

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &character.PrepareSpellsOutput{
		Prepared: o.engine.PrepareDailySpells(c),
		Slots:    o.engine.CalculateSpellSlots(c),
	}, nil
}

func (o *Orchestrator) load(ctx context.Context, id string) (*dnd5e.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	result, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character")
	}
	return result.Character, nil
}

func (o *Orchestrator) save(ctx context.Context, c *dnd5e.Character) error {
	if _, err := o.characterRepo.Save(ctx, characterrepo.SaveInput{Character: c}); err != nil {
		return errors.Wrap(err, "failed to save character")
	}
	return nil
}

// publish emits a lifecycle event. The change is already stored, so a
// failing handler is logged rather than returned.
func (o *Orchestrator) publish(ctx context.Context, eventType string, c *dnd5e.Character, data map[string]any) {
	if err := o.publisher.Publish(ctx, eventType, c, data); err != nil {
		slog.ErrorContext(ctx, "failed to publish character event",
			"event", eventType,
			"character_id", c.ID,
			"error", err.Error())
	}
}

// improveAbility adds one point to the first ability, in canonical order,
// that is below the maximum score. It returns the ability raised, or ""
// when every score is already at the maximum.
func improveAbility(scores *dnd5e.AbilityScores) dnd5e.Ability {
	for _, ability := range dnd5e.Abilities {
		if value := scores.Get(ability); value < dnd5e.MaxAbilityScore {
			scores.Set(ability, value+1)
			return ability
		}
	}
	return ""
}

func emptyTraits() dnd5e.Traits {
	return dnd5e.Traits{
		Personality: []string{},
		Ideals:      []string{},
		Bonds:       []string{},
		Flaws:       []string{},
	}
}

// mergeTraits copies the non-nil trait lists from src
func mergeTraits(dst *dnd5e.Traits, src dnd5e.Traits) {
	if src.Personality != nil {
		dst.Personality = src.Personality
	}
	if src.Ideals != nil {
		dst.Ideals = src.Ideals
	}
	if src.Bonds != nil {
		dst.Bonds = src.Bonds
	}
	if src.Flaws != nil {
		dst.Flaws = src.Flaws
	}
}

func applyBackground(c *dnd5e.Character, patch character.BackgroundPatch) {
	if patch.Backstory != nil {
		c.Backstory = *patch.Backstory
	}
	mergeTraits(&c.Traits, dnd5e.Traits{
		Personality: patch.Personality,
		Ideals:      patch.Ideals,
		Bonds:       patch.Bonds,
		Flaws:       patch.Flaws,
	})
}
