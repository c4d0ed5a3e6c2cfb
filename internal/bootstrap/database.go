package bootstrap

import (
	"context"

	"quiz-service/config"
	"quiz-service/domain"
	"quiz-service/internal/initializer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repository, oyun verisinin tam saklama sözleşmesidir. infra/postgres
// ve infra/memory aynı yüzeyi sağlar; sürücü yapılandırmadan seçilir.
type Repository interface {
	Close() error

	CreateGame(ctx context.Context, game *domain.Game) error
	GetGameByRoomCode(ctx context.Context, roomCode string) (*domain.Game, error)
	GetGameByID(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	UpdateGameStatus(ctx context.Context, id uuid.UUID, status domain.GameStatus) error
	UpdateCurrentQuestion(ctx context.Context, id uuid.UUID, index int) error

	CreateQuestion(ctx context.Context, question *domain.Question) error
	GetQuestionsByGameID(ctx context.Context, gameID uuid.UUID) ([]domain.Question, error)
	GetQuestionByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)

	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayersByGameID(ctx context.Context, gameID uuid.UUID) ([]domain.Player, error)
	GetPlayerByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	UpdatePlayerScore(ctx context.Context, id uuid.UUID, score int) error
	UpdatePlayerAsHost(ctx context.Context, id uuid.UUID) error

	CreatePlayerAnswer(ctx context.Context, answer *domain.PlayerAnswer) error
	GetPlayerAnswersByQuestionID(ctx context.Context, questionID uuid.UUID) ([]domain.PlayerAnswer, error)
}

func InitDatabase(config config.Config) Repository {
	if config.Storage.Driver == "memory" {
		zap.L().Info("Using in-memory game storage")
		return initializer.InitMemoryStore()
	}
	return initializer.InitPostgres(config)
}
