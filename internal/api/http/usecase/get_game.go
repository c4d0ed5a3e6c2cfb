package usecase

import (
	"context"

	"quiz-service/domain"

	"github.com/gofiber/fiber/v2"
)

type GetGameUseCase interface {
	Execute(ctx context.Context, roomCode string) (*domain.Game, []domain.Player, int, int, error)
}

type getGameUseCase struct {
	postgresRepository PostgresRepository
}

func NewGetGameUseCase(repository PostgresRepository) GetGameUseCase {
	return &getGameUseCase{postgresRepository: repository}
}

// Execute, lobi ekranı için oyunun özetini döner. Soruların içeriği
// sızmasın diye yalnızca sayısı verilir.
func (u *getGameUseCase) Execute(ctx context.Context, roomCode string) (*domain.Game, []domain.Player, int, int, error) {
	game, err := u.postgresRepository.GetGameByRoomCode(ctx, roomCode)
	if err != nil {
		return nil, nil, 0, fiber.StatusNotFound, err
	}
	players, err := u.postgresRepository.GetPlayersByGameID(ctx, game.ID)
	if err != nil {
		return nil, nil, 0, fiber.StatusInternalServerError, err
	}
	questions, err := u.postgresRepository.GetQuestionsByGameID(ctx, game.ID)
	if err != nil {
		return nil, nil, 0, fiber.StatusInternalServerError, err
	}
	return game, players, len(questions), fiber.StatusOK, nil
}
