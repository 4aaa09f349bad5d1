package character

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
)

// MemoryRepository keeps characters in process. Records are cloned on the
// way in and out so callers never share state with the store.
type MemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*dnd5e.Character
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemory creates an empty in-memory repository
func NewMemory() *MemoryRepository {
	return &MemoryRepository{characters: make(map[string]*dnd5e.Character)}
}

// Get retrieves a character by ID
func (r *MemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	character, ok := r.characters[input.ID]
	if !ok {
		return nil, notFound(input.ID)
	}
	return &GetOutput{Character: character.Clone()}, nil
}

// List returns all characters or those in one campaign
func (r *MemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	characters := make([]*dnd5e.Character, 0, len(r.characters))
	for _, character := range r.characters {
		if input.CampaignID != "" && character.CampaignID != input.CampaignID {
			continue
		}
		characters = append(characters, character.Clone())
	}
	sortCharacters(characters)

	return &ListOutput{Characters: characters}, nil
}

// Save inserts or replaces a character
func (r *MemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.characters[input.Character.ID] = input.Character.Clone()
	return &SaveOutput{Character: input.Character}, nil
}

// Delete removes a character
func (r *MemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	character, ok := r.characters[input.ID]
	if !ok {
		return nil, notFound(input.ID)
	}
	delete(r.characters, input.ID)

	return &DeleteOutput{Deleted: character}, nil
}
