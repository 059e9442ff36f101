package abilitydraft

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	// Key pattern: ability_draft:{id}
	draftKeyPrefix = "ability_draft:"
	// DefaultTTL is how long a draft lives when Config.TTL is zero
	DefaultTTL = 24 * time.Hour

	// Error messages
	errDraftNil      = "draft cannot be nil"
	errDraftIDEmpty  = "draft ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
	errMethodEmpty   = "method cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for ability drafts
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Draft == nil {
		return nil, errors.InvalidArgument(errDraftNil)
	}
	if input.Draft.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}
	if input.Draft.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Draft.Method == "" {
		return nil, errors.InvalidArgument(errMethodEmpty)
	}

	now := r.clock.Now()
	draft := *input.Draft
	draft.CreatedAt = now.Unix()
	draft.UpdatedAt = now.Unix()
	draft.ExpiresAt = now.Add(r.ttl).Unix()

	data, err := json.Marshal(&draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	// SetNX so a colliding ID never overwrites another build
	created, err := r.client.SetNX(ctx, r.buildKey(draft.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store draft in Redis")
	}
	if !created {
		return nil, errors.AlreadyExistsf("draft with ID %s already exists", draft.ID)
	}

	slog.DebugContext(ctx, "stored ability draft",
		"draft_id", draft.ID,
		"player_id", draft.PlayerID,
		"expires_at", draft.ExpiresAt)

	return &CreateOutput{Draft: &draft}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	draft, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Draft: draft}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Draft == nil {
		return nil, errors.InvalidArgument(errDraftNil)
	}
	if input.Draft.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}
	if input.Draft.Method == "" {
		return nil, errors.InvalidArgument(errMethodEmpty)
	}

	existing, err := r.load(ctx, input.Draft.ID)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now()
	remaining := time.Unix(existing.ExpiresAt, 0).Sub(now)
	if remaining <= 0 {
		return nil, errors.NotFoundf("draft with ID %s has expired", existing.ID)
	}

	// Ownership and lifetime are fixed at creation
	draft := *existing
	draft.Method = input.Draft.Method
	draft.Scores = input.Draft.Scores
	draft.UpdatedAt = now.Unix()

	data, err := json.Marshal(&draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	if err := r.client.Set(ctx, r.buildKey(draft.ID), data, remaining).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update draft in Redis")
	}

	return &UpdateOutput{Draft: &draft}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	deleted, err := r.client.Del(ctx, r.buildKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*dnd5e.AbilityDraft, error) {
	key := r.buildKey(id)

	raw, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("draft with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get draft from Redis")
	}

	var draft dnd5e.AbilityDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal draft")
	}

	// Expired by our clock even if Redis has not evicted the key yet
	if draft.ExpiresAt > 0 && !r.clock.Now().Before(time.Unix(draft.ExpiresAt, 0)) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFoundf("draft with ID %s has expired", id)
	}

	return &draft, nil
}

func (r *redisRepository) buildKey(id string) string {
	return draftKeyPrefix + id
}
