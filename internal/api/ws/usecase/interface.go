package wsUsecase

import (
	"context"

	"quiz-service/domain"
	"quiz-service/infra/session"
)

type Hub interface {
	Run(ctx context.Context)
	RegisterClient(client *domain.Client)
	UnregisterClient(client *domain.Client)
}

type SessionStore interface {
	GetSession(ctx context.Context, token string) (*session.SessionData, error)
}
