// Package events adapts characters to the rpg-toolkit event bus and
// names the lifecycle events the character orchestrator publishes.
package events

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
)

// Lifecycle event types
const (
	EventCharacterCreated           = "character.created"
	EventCharacterLeveledUp         = "character.leveled_up"
	EventCharacterBackgroundUpdated = "character.background_updated"
	EventCharacterMulticlassed      = "character.multiclassed"
	EventCharacterSpellLearned      = "character.spell_learned"
	EventCharacterImported          = "character.imported"
	EventCharacterDeleted           = "character.deleted"
)

// LifecycleEvents lists every event type the orchestrator publishes
var LifecycleEvents = []string{
	EventCharacterCreated,
	EventCharacterLeveledUp,
	EventCharacterBackgroundUpdated,
	EventCharacterMulticlassed,
	EventCharacterSpellLearned,
	EventCharacterImported,
	EventCharacterDeleted,
}

// Context keys carried on lifecycle events
const (
	ContextCampaignID = "campaign_id"
	ContextLevel      = "level"
	ContextClass      = "class"
	ContextSpell      = "spell"
	ContextExportID   = "export_id"
)

// EntityTypeCharacter is the core.Entity type of a wrapped character
const EntityTypeCharacter = "character"

// CharacterEntity wraps a character to implement core.Entity
type CharacterEntity struct {
	*dnd5e.Character
}

var _ core.Entity = (*CharacterEntity)(nil)

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}

// WrapCharacter converts a character into an event entity
func WrapCharacter(character *dnd5e.Character) *CharacterEntity {
	return &CharacterEntity{Character: character}
}

// ExtractCharacter returns the character behind an event entity
func ExtractCharacter(entity core.Entity) (*dnd5e.Character, bool) {
	wrapped, ok := entity.(*CharacterEntity)
	if !ok || wrapped == nil {
		return nil, false
	}
	return wrapped.Character, true
}

// Publisher emits character lifecycle events on an rpg-toolkit bus
type Publisher struct {
	bus rpgevents.EventBus
}

// NewPublisher creates a publisher on bus
func NewPublisher(bus rpgevents.EventBus) (*Publisher, error) {
	if bus == nil {
		return nil, errors.InvalidArgument("event bus is required")
	}
	return &Publisher{bus: bus}, nil
}

// Publish emits eventType with the character as source. Each entry in
// data is set on the event context. The character is cloned so handlers
// cannot modify the caller's value.
func (p *Publisher) Publish(ctx context.Context, eventType string, character *dnd5e.Character, data map[string]any) error {
	event := rpgevents.NewGameEvent(eventType, WrapCharacter(character.Clone()), nil)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := p.bus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s", eventType)
	}

	slog.DebugContext(ctx, "published character event",
		"event", eventType,
		"character_id", character.ID)

	return nil
}

// auditPriority runs the audit log after any game handlers on the bus
const auditPriority = 1000

// SubscribeAuditLog logs every lifecycle event at info level and returns
// the subscription ids
func SubscribeAuditLog(bus rpgevents.EventBus) ([]string, error) {
	if bus == nil {
		return nil, errors.InvalidArgument("event bus is required")
	}

	ids := make([]string, 0, len(LifecycleEvents))
	for _, eventType := range LifecycleEvents {
		id := bus.SubscribeFunc(eventType, auditPriority, func(ctx context.Context, event rpgevents.Event) error {
			attrs := []any{"event", event.Type()}
			if c, ok := ExtractCharacter(event.Source()); ok {
				attrs = append(attrs, "character_id", c.ID, "level", c.Level)
			}
			slog.InfoContext(ctx, "character lifecycle event", attrs...)
			return nil
		})
		ids = append(ids, id)
	}
	return ids, nil
}
