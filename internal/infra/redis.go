package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"milimani.co.ke/backend/internal/app/appconfig"
	"milimani.co.ke/backend/internal/pkg/fiberstore"
)

func Redis(conf *appconfig.Config) (*redis.Client, error) {
	u, err := redis.ParseURL(conf.RedisURL)
	if err != nil {
		log.Error().Err(err).Msg("infra: redis: failed to parse redis url")
		return nil, err
	}

	client := redis.NewClient(u)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	ping := client.Ping(ctx)
	if ping.Err() != nil {
		log.Error().Err(ping.Err()).Msg("infra: redis: failed to ping database")
		return nil, ping.Err()
	}

	return client, nil
}

// RateLimiterStorage adapts the redis client into the fiber.Storage the
// public-endpoint rate limiter persists its counters in.
func RateLimiterStorage(client *redis.Client) *fiberstore.Redis {
	return fiberstore.NewRedis(client, "milimani")
}
