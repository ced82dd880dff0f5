package photo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"snapquest/internal/model"
)

// Key prefix for stored photos
const keyPrefix = "snapquest"

// RedisConfig holds Redis connection and TTL settings for photo storage
type RedisConfig struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// PhotoTTL is how long a stored photo survives. Photos only need to
	// outlive the game they belong to.
	PhotoTTL time.Duration
}

// DefaultRedisConfig returns sensible defaults for Redis photo storage
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		PhotoTTL:     2 * time.Hour,
	}
}

// RedisStore is a Redis-backed photo store with per-photo TTL
type RedisStore struct {
	client *redis.Client
	cfg    RedisConfig
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis photo store and verifies the connection
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client, cfg: cfg}, nil
}

// NewRedisStoreWithClient creates a Redis photo store with an existing
// client (for testing)
func NewRedisStoreWithClient(client *redis.Client, cfg RedisConfig) *RedisStore {
	return &RedisStore{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Put(ctx context.Context, p Photo) (string, error) {
	if len(p.Data) > MaxPhotoBytes {
		return "", model.ErrPhotoTooLarge
	}

	ref := NewRef()
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, dataKey(ref), p.Data, s.cfg.PhotoTTL)
	pipe.Set(ctx, typeKey(ref), p.ContentType, s.cfg.PhotoTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", err
	}
	return ref, nil
}

func (s *RedisStore) Get(ctx context.Context, ref string) (Photo, error) {
	data, err := s.client.Get(ctx, dataKey(ref)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Photo{}, model.ErrPhotoNotFound
	}
	if err != nil {
		return Photo{}, err
	}

	contentType, err := s.client.Get(ctx, typeKey(ref)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return Photo{}, err
	}

	return Photo{Data: data, ContentType: contentType}, nil
}

func (s *RedisStore) Delete(ctx context.Context, ref string) error {
	return s.client.Del(ctx, dataKey(ref), typeKey(ref)).Err()
}

// dataKey returns the Redis key for a photo's bytes
func dataKey(ref string) string {
	return fmt.Sprintf("%s:photo:%s:data", keyPrefix, ref)
}

// typeKey returns the Redis key for a photo's content type
func typeKey(ref string) string {
	return fmt.Sprintf("%s:photo:%s:type", keyPrefix, ref)
}
