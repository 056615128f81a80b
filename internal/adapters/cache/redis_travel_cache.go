package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"nightshift-routing-service/internal/ports"
)

const redisKeyPrefix = "travel:"

// RedisTravelCache keeps travel results in Redis with a TTL, for
// deployments that want the cache shared and self-expiring rather than
// durable. Values are stored as "minutes|kilometers".
type RedisTravelCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisTravelCache(client *redis.Client, ttl time.Duration) *RedisTravelCache {
	return &RedisTravelCache{Client: client, TTL: ttl}
}

func (r *RedisTravelCache) Get(ctx context.Context, pair string) (ports.TravelResult, bool, error) {
	if r.Client == nil {
		return ports.TravelResult{}, false, errors.New("travel cache: redis client is nil")
	}
	if pair == "" {
		return ports.TravelResult{}, false, errors.New("get travel cache: pair must not be empty")
	}

	raw, err := r.Client.Get(ctx, redisKeyPrefix+pair).Result()
	if errors.Is(err, redis.Nil) {
		return ports.TravelResult{}, false, nil
	}
	if err != nil {
		return ports.TravelResult{}, false, fmt.Errorf("get travel cache: redis get: %w", err)
	}

	result, err := decodeResult(raw)
	if err != nil {
		return ports.TravelResult{}, false, fmt.Errorf("get travel cache pair=%q: %w", pair, err)
	}

	return result, true, nil
}

func (r *RedisTravelCache) Put(ctx context.Context, pair string, result ports.TravelResult) error {
	if r.Client == nil {
		return errors.New("travel cache: redis client is nil")
	}
	if pair == "" {
		return errors.New("insert travel cache: pair must not be empty")
	}

	raw := encodeResult(result)
	if err := r.Client.Set(ctx, redisKeyPrefix+pair, raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert travel cache pair=%q: redis set: %w", pair, err)
	}

	return nil
}

func encodeResult(r ports.TravelResult) string {
	return strconv.FormatFloat(r.Minutes, 'f', -1, 64) + "|" + strconv.FormatFloat(r.Kilometers, 'f', -1, 64)
}

func decodeResult(raw string) (ports.TravelResult, error) {
	parts := strings.SplitN(raw, "|", 2)
	if len(parts) != 2 {
		return ports.TravelResult{}, fmt.Errorf("malformed cache value %q", raw)
	}

	minutes, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return ports.TravelResult{}, fmt.Errorf("malformed minutes in %q: %w", raw, err)
	}
	km, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return ports.TravelResult{}, fmt.Errorf("malformed kilometers in %q: %w", raw, err)
	}

	return ports.TravelResult{Minutes: minutes, Kilometers: km}, nil
}
