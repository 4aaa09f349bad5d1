package campaign

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-rules/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-rules/internal/redis"
)

// RedisConfig contains configuration for the Redis roster
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// RedisRoster keeps each campaign's members in the set
// campaign:<id>:characters
type RedisRoster struct {
	client redisclient.Client
}

var _ Roster = (*RedisRoster)(nil)

// NewRedis creates a Redis-backed roster
func NewRedis(cfg *RedisConfig) (*RedisRoster, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &RedisRoster{client: cfg.Client}, nil
}

func membersKey(campaignID string) string {
	return "campaign:" + campaignID + ":characters"
}

// AddCharacter adds a character to a campaign
func (r *RedisRoster) AddCharacter(ctx context.Context, input AddCharacterInput) (*AddCharacterOutput, error) {
	if err := validateMember(input.CampaignID, input.CharacterID); err != nil {
		return nil, err
	}

	if err := r.client.SAdd(ctx, membersKey(input.CampaignID), input.CharacterID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to add character %s to campaign %s",
			input.CharacterID, input.CampaignID)
	}

	slog.DebugContext(ctx, "added character to campaign",
		"campaign_id", input.CampaignID,
		"character_id", input.CharacterID)

	return &AddCharacterOutput{}, nil
}

// RemoveCharacter removes a character from a campaign
func (r *RedisRoster) RemoveCharacter(ctx context.Context, input RemoveCharacterInput) (*RemoveCharacterOutput, error) {
	if err := validateMember(input.CampaignID, input.CharacterID); err != nil {
		return nil, err
	}

	removed, err := r.client.SRem(ctx, membersKey(input.CampaignID), input.CharacterID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to remove character %s from campaign %s",
			input.CharacterID, input.CampaignID)
	}

	slog.DebugContext(ctx, "removed character from campaign",
		"campaign_id", input.CampaignID,
		"character_id", input.CharacterID,
		"removed", removed > 0)

	return &RemoveCharacterOutput{Removed: removed > 0}, nil
}

// ListCharacterIDs returns the campaign's members
func (r *RedisRoster) ListCharacterIDs(ctx context.Context, input ListCharacterIDsInput) (*ListCharacterIDsOutput, error) {
	if err := validateCampaign(input.CampaignID); err != nil {
		return nil, err
	}

	ids, err := r.client.SMembers(ctx, membersKey(input.CampaignID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters in campaign %s", input.CampaignID)
	}
	sort.Strings(ids)

	return &ListCharacterIDsOutput{CharacterIDs: ids}, nil
}
