package character

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
	"github.com/KirkDiggler/rpg-rules/internal/events"
	"github.com/KirkDiggler/rpg-rules/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-rules/internal/services/character"
)

const (
	// ExportVersion is the envelope format this service reads and writes
	ExportVersion = "1.0.0"

	// MaxExportAgeMillis is how long an export stays importable
	MaxExportAgeMillis int64 = 365 * 24 * 60 * 60 * 1000
)

// ExportCharacter wraps a stored character in a portable envelope. The
// exported character carries no id, status or campaign.
func (o *Orchestrator) ExportCharacter(ctx context.Context, input *character.ExportCharacterInput) (_ *character.ExportCharacterOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	ctx, span := o.startSpan(ctx, "ExportCharacter", characterIDAttr(input.CharacterID))
	defer func() { endSpan(span, err) }()

	c, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	portable := c.Clone()
	portable.ID = ""
	portable.Status = ""
	portable.CampaignID = ""

	envelope := &dnd5e.ExportEnvelope{
		Version:   ExportVersion,
		ExportID:  o.exportIDs.Generate(),
		Timestamp: clock.Millis(o.clock),
		Character: portable,
		Metadata: dnd5e.ExportMetadata{
			ValidationResult: o.engine.ValidateCharacter(c),
			ExportVersion:    ExportVersion,
		},
	}
	span.SetAttributes(attribute.String("export.id", envelope.ExportID))

	slog.InfoContext(ctx, "character exported",
		"character_id", c.ID,
		"export_id", envelope.ExportID)

	return &character.ExportCharacterOutput{Envelope: envelope}, nil
}

// ImportCharacter accepts an envelope of the current version that is no
// older than MaxExportAgeMillis, gives the character a new id and stores
// it once it passes validation
func (o *Orchestrator) ImportCharacter(ctx context.Context, input *character.ImportCharacterInput) (_ *character.ImportCharacterOutput, err error) {
	ctx, span := o.startSpan(ctx, "ImportCharacter")
	defer func() { endSpan(span, err) }()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Envelope == nil {
		vb.RequiredField("envelope")
	} else if input.Envelope.Character == nil {
		vb.RequiredField("envelope.character")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	envelope := input.Envelope
	span.SetAttributes(
		attribute.String("export.id", envelope.ExportID),
		attribute.String("export.version", envelope.Version),
	)

	if envelope.Version != ExportVersion {
		return nil, errors.VersionMismatch(envelope.Version, ExportVersion)
	}

	now := clock.Millis(o.clock)
	if age := now - envelope.Timestamp; age > MaxExportAgeMillis {
		return nil, errors.StaleExport(age, MaxExportAgeMillis)
	}

	candidate := envelope.Character.Clone()
	candidate.ID = o.idGenerator.Generate()
	candidate.Status = dnd5e.StatusActive
	candidate.CampaignID = input.CampaignID
	candidate.CreatedAt = now
	candidate.UpdatedAt = now
	span.SetAttributes(characterIDAttr(candidate.ID))

	validation := o.engine.ValidateCharacter(candidate)
	if !validation.IsValid {
		slog.InfoContext(ctx, "character import rejected by validation",
			"export_id", envelope.ExportID,
			"errors", validation.Errors)
		return &character.ImportCharacterOutput{Validation: validation}, nil
	}

	if err := o.save(ctx, candidate); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "character imported",
		"character_id", candidate.ID,
		"export_id", envelope.ExportID)

	o.publish(ctx, events.EventCharacterImported, candidate, map[string]any{
		events.ContextExportID:   envelope.ExportID,
		events.ContextCampaignID: candidate.CampaignID,
	})

	return &character.ImportCharacterOutput{
		Character:  candidate,
		Validation: validation,
	}, nil
}
