package usecase

import (
	"context"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type PostgresRepository interface {
	CreateGame(ctx context.Context, game *domain.Game) error
	GetGameByRoomCode(ctx context.Context, roomCode string) (*domain.Game, error)
	CreateQuestion(ctx context.Context, question *domain.Question) error
	GetQuestionsByGameID(ctx context.Context, gameID uuid.UUID) ([]domain.Question, error)
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayersByGameID(ctx context.Context, gameID uuid.UUID) ([]domain.Player, error)
	UpdatePlayerAsHost(ctx context.Context, id uuid.UUID) error
}
