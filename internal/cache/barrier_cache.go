package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"pddtools/internal/model"
)

// BarrierCache keeps the user's in-progress barrier bot state.
type BarrierCache interface {
	Set(ctx context.Context, userID string, state *model.BarrierState) error
	Get(ctx context.Context, userID string) (*model.BarrierState, error)
	Delete(ctx context.Context, userID string) error
}

type barrierCache struct {
	client *redis.Client
}

func NewBarrierCache(client *redis.Client) BarrierCache {
	return &barrierCache{
		client: client,
	}
}

func barrierKey(userID string) string {
	return "barrier:state:" + userID
}

func (c *barrierCache) Set(ctx context.Context, userID string, state *model.BarrierState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, barrierKey(userID), data, 24*time.Hour).Err()
}

func (c *barrierCache) Get(ctx context.Context, userID string) (*model.BarrierState, error) {
	data, err := c.client.Get(ctx, barrierKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var state model.BarrierState
	err = json.Unmarshal([]byte(data), &state)
	return &state, err
}

func (c *barrierCache) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, barrierKey(userID)).Err()
}
