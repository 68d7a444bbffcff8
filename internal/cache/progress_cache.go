package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"emoquiz-service/internal/config"
	"emoquiz-service/internal/models"

	"github.com/redis/go-redis/v9"
)

// ProgressCache keeps recently computed gamification states in Redis so
// the profile page does not re-read the whole completion history on every
// refresh. Entries are invalidated whenever a new completion lands.
type ProgressCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProgressCache(cfg config.RedisConfig) (*ProgressCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &ProgressCache{client: client, ttl: cfg.TTL}, nil
}

func progressKey(userID string) string {
	return "emoquiz:progress:" + userID
}

func (c *ProgressCache) Get(ctx context.Context, userID string) (*models.GamificationState, bool) {
	raw, err := c.client.Get(ctx, progressKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis get failed for %s: %v", userID, err)
		}
		return nil, false
	}
	var state models.GamificationState
	if err := json.Unmarshal(raw, &state); err != nil {
		log.Printf("Corrupt cached progress for %s: %v", userID, err)
		return nil, false
	}
	return &state, true
}

func (c *ProgressCache) Set(ctx context.Context, userID string, state *models.GamificationState) {
	raw, err := json.Marshal(state)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, progressKey(userID), raw, c.ttl).Err(); err != nil {
		log.Printf("Redis set failed for %s: %v", userID, err)
	}
}

func (c *ProgressCache) Invalidate(ctx context.Context, userID string) {
	if err := c.client.Del(ctx, progressKey(userID)).Err(); err != nil {
		log.Printf("Redis del failed for %s: %v", userID, err)
	}
}

func (c *ProgressCache) Close() {
	if err := c.client.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}
}
