package campaign

import (
	"context"
	"sort"
	"sync"
)

// MemoryRoster keeps campaign membership in process
type MemoryRoster struct {
	mu        sync.RWMutex
	campaigns map[string]map[string]struct{}
}

var _ Roster = (*MemoryRoster)(nil)

// NewMemory creates an empty in-memory roster
func NewMemory() *MemoryRoster {
	return &MemoryRoster{campaigns: make(map[string]map[string]struct{})}
}

// AddCharacter adds a character to a campaign
func (r *MemoryRoster) AddCharacter(_ context.Context, input AddCharacterInput) (*AddCharacterOutput, error) {
	if err := validateMember(input.CampaignID, input.CharacterID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.campaigns[input.CampaignID]
	if !ok {
		members = make(map[string]struct{})
		r.campaigns[input.CampaignID] = members
	}
	members[input.CharacterID] = struct{}{}

	return &AddCharacterOutput{}, nil
}

// RemoveCharacter removes a character from a campaign
func (r *MemoryRoster) RemoveCharacter(_ context.Context, input RemoveCharacterInput) (*RemoveCharacterOutput, error) {
	if err := validateMember(input.CampaignID, input.CharacterID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	members := r.campaigns[input.CampaignID]
	if _, ok := members[input.CharacterID]; !ok {
		return &RemoveCharacterOutput{}, nil
	}
	delete(members, input.CharacterID)
	if len(members) == 0 {
		delete(r.campaigns, input.CampaignID)
	}

	return &RemoveCharacterOutput{Removed: true}, nil
}

// ListCharacterIDs returns the campaign's members
func (r *MemoryRoster) ListCharacterIDs(_ context.Context, input ListCharacterIDsInput) (*ListCharacterIDsOutput, error) {
	if err := validateCampaign(input.CampaignID); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.campaigns[input.CampaignID]))
	for id := range r.campaigns[input.CampaignID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &ListCharacterIDsOutput{CharacterIDs: ids}, nil
}
