package usecase

import (
	"context"

	"quiz-service/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type JoinGameUseCase interface {
	Execute(ctx context.Context, roomCode, name, avatar string) (*domain.Game, *domain.Player, int, error)
}

type joinGameUseCase struct {
	postgresRepository PostgresRepository
}

func NewJoinGameUseCase(repository PostgresRepository) JoinGameUseCase {
	return &joinGameUseCase{postgresRepository: repository}
}

// Execute, oda koduyla oyuna yeni bir oyuncu kaydeder. Tamamlanmış
// oyunlara katılım kapalıdır, aktif oyuna geç katılım serbesttir.
func (u *joinGameUseCase) Execute(ctx context.Context, roomCode, name, avatar string) (*domain.Game, *domain.Player, int, error) {
	game, err := u.postgresRepository.GetGameByRoomCode(ctx, roomCode)
	if err != nil {
		return nil, nil, fiber.StatusNotFound, err
	}
	if game.Status == domain.GameStatusCompleted {
		return nil, nil, fiber.StatusConflict, domain.ErrGameCompleted
	}

	player := &domain.Player{
		ID:     uuid.New(),
		GameID: game.ID,
		Name:   name,
		Avatar: avatar,
	}
	if err := u.postgresRepository.CreatePlayer(ctx, player); err != nil {
		return nil, nil, fiber.StatusInternalServerError, err
	}
	return game, player, fiber.StatusOK, nil
}
