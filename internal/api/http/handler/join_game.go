package handler

import (
	"context"

	"quiz-service/domain"
	"quiz-service/internal/api/http/usecase"
)

type JoinGameRequest struct {
	RoomCode string `params:"room_code" validate:"required,len=6"`
	Name     string `json:"name" validate:"required,min=1,max=64"`
	Avatar   string `json:"avatar" validate:"max=256"`
}

type JoinGameResponse struct {
	Game   *domain.Game   `json:"game"`
	Player *domain.Player `json:"player"`
}

type JoinGameHandler struct {
	usecase usecase.JoinGameUseCase
}

func NewJoinGameHandler(usecase usecase.JoinGameUseCase) *JoinGameHandler {
	return &JoinGameHandler{
		usecase: usecase,
	}
}

func (h *JoinGameHandler) Handle(ctx context.Context, req *JoinGameRequest) (*JoinGameResponse, int, error) {
	game, player, status, err := h.usecase.Execute(ctx, req.RoomCode, req.Name, req.Avatar)
	if err != nil {
		return nil, status, err
	}
	return &JoinGameResponse{Game: game, Player: player}, status, nil
}
