package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"pddtools/internal/model"
)

// StatsCache holds computed trainer stats for a short while. Stats
// only change when a session completes, so staleness is bounded and
// the invalidating writer deletes the key.
type StatsCache interface {
	Set(ctx context.Context, userID string, stats []*model.TrainerStats) error
	Get(ctx context.Context, userID string) ([]*model.TrainerStats, error)
	Delete(ctx context.Context, userID string) error
}

type statsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
	}
}

func statsKey(userID string) string {
	return "trainer:stats:" + userID
}

func (c *statsCache) Set(ctx context.Context, userID string, stats []*model.TrainerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey(userID), data, 5*time.Minute).Err()
}

func (c *statsCache) Get(ctx context.Context, userID string) ([]*model.TrainerStats, error) {
	data, err := c.client.Get(ctx, statsKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var stats []*model.TrainerStats
	err = json.Unmarshal([]byte(data), &stats)
	return stats, err
}

func (c *statsCache) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, statsKey(userID)).Err()
}
