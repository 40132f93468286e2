package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "survey:kv:"

type RedisKVStore struct {
	Redis *redis.Client
}

func NewRedisKVStore(rdb *redis.Client) *RedisKVStore {
	return &RedisKVStore{Redis: rdb}
}

func (r *RedisKVStore) Get(ctx context.Context, key string) (string, error) {
	value, err := r.Redis.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

// Put stores the value without expiry; the snapshot is the durable local mirror.
func (r *RedisKVStore) Put(ctx context.Context, key, value string) error {
	if err := r.Redis.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis put %q: %w", key, err)
	}
	return nil
}

func (r *RedisKVStore) Ping(ctx context.Context) error {
	return r.Redis.Ping(ctx).Err()
}

func (r *RedisKVStore) Close() error {
	return r.Redis.Close()
}
