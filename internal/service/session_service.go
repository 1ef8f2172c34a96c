package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"vidyai_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

// SessionStore keeps the per-user server-side session state that must
// survive across requests: currently just the pointer to the learning
// activity opened by the last content view.
type SessionStore interface {
	SetCurrentActivity(ctx context.Context, userID, activityID uint) error
	CurrentActivity(ctx context.Context, userID uint) (uint, error)
	ClearCurrentActivity(ctx context.Context, userID uint) error
	ClearSession(ctx context.Context, userID uint) error
}

const sessionTTL = 24 * time.Hour

// RedisSessionStore backs SessionStore with redis, one hash-free key per
// user and field.
type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func activityKey(userID uint) string {
	return fmt.Sprintf("session:%d:current_activity", userID)
}

func (s *RedisSessionStore) SetCurrentActivity(ctx context.Context, userID, activityID uint) error {
	return s.rdb.Set(ctx, activityKey(userID), activityID, sessionTTL).Err()
}

func (s *RedisSessionStore) CurrentActivity(ctx context.Context, userID uint) (uint, error) {
	val, err := s.rdb.Get(ctx, activityKey(userID)).Result()
	if err == redis.Nil {
		return 0, util.ErrNoActiveActivity
	}
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, util.ErrNoActiveActivity
	}
	return uint(id), nil
}

func (s *RedisSessionStore) ClearCurrentActivity(ctx context.Context, userID uint) error {
	return s.rdb.Del(ctx, activityKey(userID)).Err()
}

// ClearSession removes all session state for the user. Today that is only
// the activity pointer; logout calls this.
func (s *RedisSessionStore) ClearSession(ctx context.Context, userID uint) error {
	return s.rdb.Del(ctx, activityKey(userID)).Err()
}
