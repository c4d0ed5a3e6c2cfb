package initializer

import (
	"context"

	gameHub "quiz-service/internal/api/ws/hub"
)

func InitWebsocket(ctx context.Context, storage gameHub.Storage, events gameHub.EventPublisher) *gameHub.Hub {
	hub := gameHub.NewHub(storage, gameHub.NewRealClock(), events)
	go hub.Run(ctx)
	return hub
}
