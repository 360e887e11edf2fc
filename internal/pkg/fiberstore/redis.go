package fiberstore

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Redis adapts a redis client to fiber.Storage. It backs the rate limiter on
// the public inquiry endpoints so limits hold across instances.
type Redis struct {
	Client    *redis.Client
	KeyPrefix string
}

var _ fiber.Storage = (*Redis)(nil)

func NewRedis(client *redis.Client, keyPrefix string) *Redis {
	return &Redis{
		Client:    client,
		KeyPrefix: keyPrefix + ":",
	}
}

// Close implements fiber.Storage
func (r *Redis) Close() error {
	return r.Client.Close()
}

// Delete implements fiber.Storage
func (r *Redis) Delete(key string) error {
	return r.Client.Del(context.Background(), r.KeyPrefix+key).Err()
}

// Get implements fiber.Storage
func (r *Redis) Get(key string) ([]byte, error) {
	b, err := r.Client.Get(context.Background(), r.KeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return b, err
}

// Reset implements fiber.Storage
func (r *Redis) Reset() error {
	keys, err := r.Client.Keys(context.Background(), r.KeyPrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.Client.Del(context.Background(), keys...).Err()
}

// Set implements fiber.Storage
func (r *Redis) Set(key string, val []byte, exp time.Duration) error {
	return r.Client.Set(context.Background(), r.KeyPrefix+key, val, exp).Err()
}
