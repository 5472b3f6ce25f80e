package app

import (
	"context"

	"github.com/VipinRD/auctioneer/internal/config"
	"github.com/VipinRD/auctioneer/internal/logger"
	"github.com/VipinRD/auctioneer/internal/mongo"
	"github.com/VipinRD/auctioneer/internal/redis"
	"github.com/VipinRD/auctioneer/internal/user"
)

type Infra struct {
	Mongo *mongo.Client
	Redis *redis.Client
	Users *user.MongoStore
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	mongoClient, err := mongo.New(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, err
	}

	users := user.NewMongoStore(mongoClient.Database())
	if err := users.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	logger.Info("mongo ready", map[string]any{
		"database": cfg.MongoDB,
	})

	redisClient, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	return &Infra{
		Mongo: mongoClient,
		Redis: redisClient,
		Users: users,
	}, nil
}
