package character

import (
	"context"
	"encoding/json"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-rules/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-rules/internal/redis"
)

const (
	characterKeyPrefix  = "character:"
	allIndexKey         = "characters:all"
	campaignIndexPrefix = "characters:campaign:"

	// listConcurrency bounds parallel GETs during List
	listConcurrency = 8
)

// RedisConfig contains configuration for the Redis character repository
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

// RedisRepository stores each character as a JSON blob under
// character:<id>, indexed by the characters:all and
// characters:campaign:<id> sets
type RedisRepository struct {
	client redisclient.Client
}

var _ Repository = (*RedisRepository)(nil)

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (*RedisRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &RedisRepository{client: cfg.Client}, nil
}

// Get retrieves a character by ID
func (r *RedisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	character, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: character}, nil
}

func (r *RedisRepository) get(ctx context.Context, id string) (*dnd5e.Character, error) {
	result, err := r.client.Get(ctx, characterKeyPrefix+id).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, notFound(id)
		}
		return nil, errors.Wrapf(err, "failed to get character %s", id)
	}

	var character dnd5e.Character
	if err := json.Unmarshal([]byte(result), &character); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character %s", id)
	}
	return &character, nil
}

// Save writes the character and moves it between campaign indexes when its
// campaign changed
func (r *RedisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}
	character := input.Character

	previousCampaign := ""
	existing, err := r.get(ctx, character.ID)
	switch {
	case err == nil:
		previousCampaign = existing.CampaignID
	case !errors.IsNotFound(err):
		return nil, err
	}

	data, err := json.Marshal(character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKeyPrefix+character.ID, data, 0)
	pipe.SAdd(ctx, allIndexKey, character.ID)
	if previousCampaign != "" && previousCampaign != character.CampaignID {
		pipe.SRem(ctx, campaignIndexPrefix+previousCampaign, character.ID)
	}
	if character.CampaignID != "" {
		pipe.SAdd(ctx, campaignIndexPrefix+character.CampaignID, character.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save character %s", character.ID)
	}

	slog.DebugContext(ctx, "saved character",
		"character_id", character.ID,
		"campaign_id", character.CampaignID)

	return &SaveOutput{Character: character}, nil
}

// Delete removes the character and its index entries
func (r *RedisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	character, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKeyPrefix+input.ID)
	pipe.SRem(ctx, allIndexKey, input.ID)
	if character.CampaignID != "" {
		pipe.SRem(ctx, campaignIndexPrefix+character.CampaignID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.ID)
	}

	return &DeleteOutput{Deleted: character}, nil
}

// List reads the index set and fetches every member concurrently. Index
// entries whose record has gone are pruned.
func (r *RedisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	indexKey := allIndexKey
	if input.CampaignID != "" {
		indexKey = campaignIndexPrefix + input.CampaignID
	}

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get characters from index %s", indexKey)
	}

	slog.DebugContext(ctx, "found character IDs in index",
		"index_key", indexKey,
		"count", len(ids))

	fetched := make([]*dnd5e.Character, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			character, err := r.get(gctx, id)
			if errors.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			fetched[i] = character
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	characters := make([]*dnd5e.Character, 0, len(ids))
	var dangling []any
	for i, character := range fetched {
		if character == nil {
			dangling = append(dangling, ids[i])
			continue
		}
		characters = append(characters, character)
	}

	if len(dangling) > 0 {
		slog.WarnContext(ctx, "pruning dangling character index entries",
			"index_key", indexKey,
			"count", len(dangling))
		if err := r.client.SRem(ctx, indexKey, dangling...).Err(); err != nil {
			slog.WarnContext(ctx, "failed to prune character index",
				"index_key", indexKey,
				"error", err.Error())
		}
	}

	sortCharacters(characters)
	return &ListOutput{Characters: characters}, nil
}
