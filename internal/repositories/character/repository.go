// Package character persists character records. Stores are keyed by
// character id and keep a campaign index for filtered listing.
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-rules/internal/repositories/character Repository

import (
	"context"
	"sort"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
)

// Repository defines character persistence
type Repository interface {
	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns stored characters, optionally only one campaign's
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Save inserts or replaces a character by ID
	// Returns errors.InvalidArgument for a nil character or empty ID
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a character by ID
	// Returns errors.NotFound if the character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *dnd5e.Character
}

// ListInput filters the listing. An empty CampaignID lists everything.
type ListInput struct {
	CampaignID string
}

// ListOutput holds characters ordered by creation time, then ID
type ListOutput struct {
	Characters []*dnd5e.Character
}

// SaveInput defines the input for saving a character
type SaveInput struct {
	Character *dnd5e.Character
}

// SaveOutput defines the output for saving a character
type SaveOutput struct {
	Character *dnd5e.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct {
	// Deleted is the record as it was before removal
	Deleted *dnd5e.Character
}

const (
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
)

func validateSave(input SaveInput) error {
	if input.Character == nil {
		return errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	return nil
}

func notFound(id string) error {
	return errors.NotFoundf("character with ID %s not found", id)
}

// sortCharacters orders by CreatedAt then ID so every backend lists the
// same way
func sortCharacters(characters []*dnd5e.Character) {
	sort.Slice(characters, func(i, j int) bool {
		if characters[i].CreatedAt != characters[j].CreatedAt {
			return characters[i].CreatedAt < characters[j].CreatedAt
		}
		return characters[i].ID < characters[j].ID
	})
}
