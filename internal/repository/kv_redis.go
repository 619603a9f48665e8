package repository

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "english_quest:"

type RedisKVStore struct {
	Client redis.Cmdable
}

func NewRedisKVStore(client redis.Cmdable) *RedisKVStore {
	return &RedisKVStore{Client: client}
}

func (s *RedisKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.Client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisKVStore) Set(ctx context.Context, key, value string) error {
	return s.Client.Set(ctx, redisKeyPrefix+key, value, 0).Err()
}
