package tmpstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yldio/xbbcode/util"
)

// Different key prefixes for different use cases
const (
	CachePrefix = "cache:"
)

var ErrCacheMiss = errors.New("rendered text not found in cache")

// Store keeps rendered markup between requests so the same text under the
// same profile is resolved only once per TTL window.
type Store interface {
	SaveRenderedText(ctx context.Context, profile string, input string, html string, ttl time.Duration) error
	GetRenderedText(ctx context.Context, profile string, input string) (string, error)
	InvalidateProfile(ctx context.Context, profile string) error
}

type RedisStore struct {
	client *redis.Client
}

func NewStore(config *util.Config) Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddress, //  default "localhost:6379"
		Password: "",                  // "" for no password, ok for now
		DB:       0,                   // 0 for default database
	})

	return &RedisStore{client: rdb}
}

// renderKey builds the cache key of one (profile, input) pair. The input is
// user text of arbitrary size, so the key carries its hash, not the text.
// The profile name sits outside the hash as its own key segment, which is
// what makes per-profile invalidation a pattern scan.
func renderKey(profile string, input string) string {
	sum := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%s%s:%s", CachePrefix, profile, hex.EncodeToString(sum[:]))
}

// SaveRenderedText puts one rendered result into the cache.
func (store *RedisStore) SaveRenderedText(
	ctx context.Context,
	profile string,
	input string,
	html string,
	ttl time.Duration,
) error {
	return store.client.Set(ctx, renderKey(profile, input), html, ttl).Err()
}

// GetRenderedText retrieves a rendered result from the cache.
// Returns ErrCacheMiss if not found or expired.
func (store *RedisStore) GetRenderedText(ctx context.Context, profile string, input string) (string, error) {
	html, err := store.client.Get(ctx, renderKey(profile, input)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get rendered text: %w", err)
	}

	return html, nil
}

// InvalidateProfile drops every cached result rendered under the given
// profile. Called after the profile's tag set changes.
func (store *RedisStore) InvalidateProfile(ctx context.Context, profile string) error {
	pattern := fmt.Sprintf("%s%s:*", CachePrefix, profile)

	iter := store.client.Scan(ctx, 0, pattern, 0).Iterator()

	for iter.Next(ctx) {
		if err := store.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cached render %s: %w", iter.Val(), err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached renders: %w", err)
	}

	return nil
}
