package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/roll20log/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	archiveKeyPrefix = "archive:"
	archiveIndexKey  = "archives" // sorted by creation time
)

// ErrArchiveNotFound is returned when an archive is not found
var ErrArchiveNotFound = errors.New("archive not found")

// Config holds configuration for the Redis archive repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL expires archives after this long. Zero keeps them forever.
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed archive repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.TTL < 0 {
		return nil, errors.New("ttl cannot be negative")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.TTL,
	}, nil
}

func archiveKey(id string) string {
	return fmt.Sprintf("%s%s", archiveKeyPrefix, id)
}

// SaveArchive persists an archive to Redis
func (r *redisRepository) SaveArchive(ctx context.Context, input *SaveArchiveInput) error {
	if input == nil || input.Archive == nil {
		return errors.New("input and archive cannot be nil")
	}

	if input.Archive.ID == "" {
		return errors.New("archive ID cannot be empty")
	}

	archiveJSON, err := json.Marshal(input.Archive)
	if err != nil {
		return fmt.Errorf("failed to marshal archive: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, archiveKey(input.Archive.ID), archiveJSON, r.ttl)
	pipe.ZAdd(ctx, archiveIndexKey, redis.Z{
		Score:  float64(input.Archive.CreatedAt.UnixNano()),
		Member: input.Archive.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save archive: %w", err)
	}

	return nil
}

// GetArchive retrieves an archive by ID from Redis
func (r *redisRepository) GetArchive(ctx context.Context, input *GetArchiveInput) (*models.Archive, error) {
	if input == nil || input.ArchiveID == "" {
		return nil, errors.New("input and archive ID cannot be empty")
	}

	archiveJSON, err := r.client.Get(ctx, archiveKey(input.ArchiveID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrArchiveNotFound
		}
		return nil, fmt.Errorf("failed to get archive: %w", err)
	}

	var archive models.Archive
	if err := json.Unmarshal([]byte(archiveJSON), &archive); err != nil {
		return nil, fmt.Errorf("failed to unmarshal archive: %w", err)
	}

	return &archive, nil
}

// ListArchives retrieves the most recent archives from Redis, newest first.
// Index entries whose archive has expired are pruned.
func (r *redisRepository) ListArchives(ctx context.Context, input *ListArchivesInput) (*ListArchivesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	ids, err := r.client.ZRevRange(ctx, archiveIndexKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list archive IDs: %w", err)
	}

	if len(ids) == 0 {
		return &ListArchivesOutput{
			Archives: []*models.Archive{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, archiveKey(id))
	}

	// redis.Nil from expired keys is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get archives: %w", err)
	}

	archives := make([]*models.Archive, 0, len(ids))
	var expired []interface{}
	for i, cmd := range cmds {
		archiveJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				expired = append(expired, ids[i])
				continue
			}
			return nil, fmt.Errorf("failed to get archive %s: %w", ids[i], err)
		}

		var archive models.Archive
		if err := json.Unmarshal([]byte(archiveJSON), &archive); err != nil {
			return nil, fmt.Errorf("failed to unmarshal archive %s: %w", ids[i], err)
		}
		archives = append(archives, &archive)
	}

	if len(expired) > 0 {
		if err := r.client.ZRem(ctx, archiveIndexKey, expired...).Err(); err != nil {
			return nil, fmt.Errorf("failed to prune expired archives: %w", err)
		}
	}

	return &ListArchivesOutput{
		Archives: archives,
	}, nil
}

// DeleteArchive removes an archive from Redis
func (r *redisRepository) DeleteArchive(ctx context.Context, input *DeleteArchiveInput) error {
	if input == nil || input.ArchiveID == "" {
		return errors.New("input and archive ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, archiveKey(input.ArchiveID))
	pipe.ZRem(ctx, archiveIndexKey, input.ArchiveID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete archive: %w", err)
	}

	if del.Val() == 0 {
		return ErrArchiveNotFound
	}

	return nil
}
