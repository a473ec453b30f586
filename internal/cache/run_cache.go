// Package cache holds the Redis read-through cache for in-progress run
// state. Postgres stays authoritative; a cache miss or error always falls
// back to the store.
package cache

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pulse-assessments/backend/internal/models"
)

// runTTL bounds how long an idle run snapshot survives; abandoned sessions
// age out on their own.
const runTTL = 30 * time.Minute

type RunCache interface {
	GetResponses(ctx context.Context, runID string) ([]models.Response, error)
	SetResponses(ctx context.Context, runID string, responses []models.Response) error
	Invalidate(ctx context.Context, runID string) error
}

type runCache struct {
	client *redis.Client
}

func NewRunCache(client *redis.Client) RunCache {
	return &runCache{client: client}
}

// NewClient builds a Redis client from the environment.
func NewClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}

func runKey(runID string) string {
	return "run:" + runID + ":responses"
}

// GetResponses returns the cached response list, or nil on a miss.
func (c *runCache) GetResponses(ctx context.Context, runID string) ([]models.Response, error) {
	data, err := c.client.Get(ctx, runKey(runID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var responses []models.Response
	if err := json.Unmarshal([]byte(data), &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

func (c *runCache) SetResponses(ctx context.Context, runID string, responses []models.Response) error {
	data, err := json.Marshal(responses)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, runKey(runID), data, runTTL).Err()
}

func (c *runCache) Invalidate(ctx context.Context, runID string) error {
	return c.client.Del(ctx, runKey(runID)).Err()
}
