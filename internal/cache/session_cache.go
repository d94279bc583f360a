package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"pddtools/internal/model"
)

// SessionCache keeps the user's in-progress trainer session so the
// dialogue survives reconnects without a DB round trip.
type SessionCache interface {
	Set(ctx context.Context, session *model.Session) error
	Get(ctx context.Context, userID, trainerID string) (*model.Session, error)
	Delete(ctx context.Context, userID, trainerID string) error
}

type sessionCache struct {
	client *redis.Client
}

func NewSessionCache(client *redis.Client) SessionCache {
	return &sessionCache{
		client: client,
	}
}

func sessionKey(userID, trainerID string) string {
	return "trainer:current:" + userID + ":" + trainerID
}

func (c *sessionCache) Set(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, sessionKey(session.UserID, session.TrainerID), data, 24*time.Hour).Err()
}

func (c *sessionCache) Get(ctx context.Context, userID, trainerID string) (*model.Session, error) {
	data, err := c.client.Get(ctx, sessionKey(userID, trainerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var session model.Session
	err = json.Unmarshal([]byte(data), &session)
	return &session, err
}

func (c *sessionCache) Delete(ctx context.Context, userID, trainerID string) error {
	return c.client.Del(ctx, sessionKey(userID, trainerID)).Err()
}
