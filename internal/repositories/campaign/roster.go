// Package campaign tracks which characters belong to which campaign
package campaign

//go:generate mockgen -destination=mock/mock_roster.go -package=campaignmock github.com/KirkDiggler/rpg-rules/internal/repositories/campaign Roster

import (
	"context"

	"github.com/KirkDiggler/rpg-rules/internal/errors"
)

// Roster maintains campaign membership
type Roster interface {
	// AddCharacter adds a character to a campaign. Adding twice is a no-op.
	AddCharacter(ctx context.Context, input AddCharacterInput) (*AddCharacterOutput, error)

	// RemoveCharacter removes a character from a campaign. Removing a
	// non-member is a no-op.
	RemoveCharacter(ctx context.Context, input RemoveCharacterInput) (*RemoveCharacterOutput, error)

	// ListCharacterIDs returns member ids in sorted order
	ListCharacterIDs(ctx context.Context, input ListCharacterIDsInput) (*ListCharacterIDsOutput, error)
}

// AddCharacterInput defines the input for adding a campaign member
type AddCharacterInput struct {
	CampaignID  string
	CharacterID string
}

// AddCharacterOutput defines the output for adding a campaign member
type AddCharacterOutput struct{}

// RemoveCharacterInput defines the input for removing a campaign member
type RemoveCharacterInput struct {
	CampaignID  string
	CharacterID string
}

// RemoveCharacterOutput defines the output for removing a campaign member
type RemoveCharacterOutput struct {
	// Removed is false when the character was not a member
	Removed bool
}

// ListCharacterIDsInput defines the input for listing campaign members
type ListCharacterIDsInput struct {
	CampaignID string
}

// ListCharacterIDsOutput defines the output for listing campaign members
type ListCharacterIDsOutput struct {
	CharacterIDs []string
}

func validateMember(campaignID, characterID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("campaign_id", campaignID, vb)
	errors.ValidateRequired("character_id", characterID, vb)
	return vb.Build()
}

func validateCampaign(campaignID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("campaign_id", campaignID, vb)
	return vb.Build()
}
