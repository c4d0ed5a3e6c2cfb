package hub

import (
	"context"

	"quiz-service/domain"

	"github.com/google/uuid"
)

// Storage, koordinatörün tek kalıcı bağımlılığıdır. infra/postgres ve
// infra/memory aynı sözleşmeyi sağlar.
type Storage interface {
	GetGameByRoomCode(ctx context.Context, roomCode string) (*domain.Game, error)
	GetGameByID(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	UpdateGameStatus(ctx context.Context, id uuid.UUID, status domain.GameStatus) error
	UpdateCurrentQuestion(ctx context.Context, id uuid.UUID, index int) error

	GetQuestionsByGameID(ctx context.Context, gameID uuid.UUID) ([]domain.Question, error)
	GetQuestionByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)

	GetPlayersByGameID(ctx context.Context, gameID uuid.UUID) ([]domain.Player, error)
	GetPlayerByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	UpdatePlayerScore(ctx context.Context, id uuid.UUID, score int) error

	CreatePlayerAnswer(ctx context.Context, answer *domain.PlayerAnswer) error
	GetPlayerAnswersByQuestionID(ctx context.Context, questionID uuid.UUID) ([]domain.PlayerAnswer, error)
}

// EventPublisher, oyun yaşam döngüsü olaylarını dışarı duyurur.
// Yayınlama başarısız olsa bile oyun akışı etkilenmez.
type EventPublisher interface {
	PublishGameEvent(ctx context.Context, eventType string, game *domain.Game)
}

type nopEventPublisher struct{}

func (nopEventPublisher) PublishGameEvent(ctx context.Context, eventType string, game *domain.Game) {
}

// NopEventPublisher, kafka yapılandırılmadığında kullanılır.
func NopEventPublisher() EventPublisher { return nopEventPublisher{} }
