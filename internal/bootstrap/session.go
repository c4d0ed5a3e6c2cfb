package bootstrap

import (
	"context"

	"quiz-service/config"
	"quiz-service/infra/session"
	"quiz-service/internal/initializer"

	"github.com/redis/go-redis/v9"
)

type SessionManager interface {
	GetRedisClient() *redis.Client
	GetSession(ctx context.Context, token string) (*session.SessionData, error)
}

func InitSessionRedis(config config.Config) SessionManager {
	return initializer.InitSessionRedis(config)
}
