package bootstrap

import (
	"context"

	"quiz-service/domain"
	gameHub "quiz-service/internal/api/ws/hub"
	"quiz-service/internal/initializer"
)

type Hub interface {
	Run(ctx context.Context)
	RegisterClient(client *domain.Client)
	UnregisterClient(client *domain.Client)
}

func InitWebsocket(ctx context.Context, repository Repository, kafka Messaging) *gameHub.Hub {
	return initializer.InitWebsocket(ctx, repository, kafka)
}
