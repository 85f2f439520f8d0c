package characters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/lgw4/cetools/internal/entities"
	cerrors "github.com/lgw4/cetools/internal/errors"
)

// indexKey is the set holding every stored character ID.
const indexKey = "characters"

type redisRepo struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed character repository
func NewRedis(redisClient *redis.Client) Repository {
	return &redisRepo{
		client: redisClient,
	}
}

func characterKey(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return cerrors.InvalidArgument("character cannot be nil")
	}

	if character.ID == "" {
		return cerrors.InvalidArgument("character ID is required")
	}

	exists, err := r.client.Exists(ctx, characterKey(character.ID)).Result()
	if err != nil {
		return cerrors.Wrap(err, "failed to check character existence")
	}
	if exists > 0 {
		return cerrors.AlreadyExistsf("character with ID '%s' already exists", character.ID).
			WithMeta("character_id", character.ID)
	}

	jsonData, err := json.Marshal(character)
	if err != nil {
		return cerrors.Wrap(err, "failed to marshal character data")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, characterKey(character.ID), string(jsonData), 0)
	pipe.SAdd(ctx, indexKey, character.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return cerrors.Wrap(err, "failed to store character in Redis")
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, cerrors.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, characterKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, cerrors.NotFoundf("character with ID '%s' not found", id).
				WithMeta("character_id", id)
		}
		return nil, cerrors.Wrap(err, "failed to get character from Redis")
	}

	var character entities.Character
	if err := json.Unmarshal(jsonData, &character); err != nil {
		return nil, cerrors.Wrap(err, "failed to unmarshal character data")
	}

	return &character, nil
}

// List retrieves all stored characters
func (r *redisRepo) List(ctx context.Context) ([]*entities.Character, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, cerrors.Wrap(err, "failed to list characters from Redis")
	}

	characters := make([]*entities.Character, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			character, err := r.Get(ctx, id)
			if err != nil {
				return cerrors.Wrapf(err, "failed to get character %s", id)
			}
			characters[i] = character
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return characters, nil
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return cerrors.InvalidArgument("character ID is required")
	}

	exists, err := r.client.Exists(ctx, characterKey(id)).Result()
	if err != nil {
		return cerrors.Wrap(err, "failed to check character existence")
	}
	if exists == 0 {
		return cerrors.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, characterKey(id))
	pipe.SRem(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return cerrors.Wrap(err, "failed to delete character from Redis")
	}

	return nil
}
