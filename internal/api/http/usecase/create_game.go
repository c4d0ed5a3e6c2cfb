package usecase

import (
	"context"

	"quiz-service/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateGameUseCase interface {
	Execute(ctx context.Context, title, description string, timePerQuestion, pointsPerQuestion int, hostName, hostAvatar string) (*domain.Game, *domain.Player, int, error)
}

type createGameUseCase struct {
	postgresRepository PostgresRepository
}

func NewCreateGameUseCase(repository PostgresRepository) CreateGameUseCase {
	return &createGameUseCase{postgresRepository: repository}
}

// Execute, oyunu ve host oyuncusunu birlikte oluşturur. Her oyunda tam
// olarak bir host vardır ve oyunla birlikte özel olarak yaratılır.
func (u *createGameUseCase) Execute(ctx context.Context, title, description string, timePerQuestion, pointsPerQuestion int, hostName, hostAvatar string) (*domain.Game, *domain.Player, int, error) {
	roomCode, err := generateRoomCode(ctx, u.postgresRepository)
	if err != nil {
		return nil, nil, fiber.StatusInternalServerError, err
	}

	hostID := uuid.New()
	game := &domain.Game{
		ID:                uuid.New(),
		HostID:            hostID,
		Title:             title,
		Description:       description,
		RoomCode:          roomCode,
		TimePerQuestion:   timePerQuestion,
		PointsPerQuestion: pointsPerQuestion,
		Status:            domain.GameStatusLobby,
	}
	if err := u.postgresRepository.CreateGame(ctx, game); err != nil {
		return nil, nil, fiber.StatusInternalServerError, err
	}

	host := &domain.Player{
		ID:     hostID,
		GameID: game.ID,
		Name:   hostName,
		Avatar: hostAvatar,
	}
	if err := u.postgresRepository.CreatePlayer(ctx, host); err != nil {
		return nil, nil, fiber.StatusInternalServerError, err
	}
	if err := u.postgresRepository.UpdatePlayerAsHost(ctx, host.ID); err != nil {
		return nil, nil, fiber.StatusInternalServerError, err
	}
	host.IsHost = true

	return game, host, fiber.StatusOK, nil
}
