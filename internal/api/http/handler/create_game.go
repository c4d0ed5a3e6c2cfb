package handler

import (
	"context"

	"quiz-service/domain"
	"quiz-service/internal/api/http/usecase"
)

type CreateGameRequest struct {
	Title             string `json:"title" validate:"required,min=1,max=200"`
	Description       string `json:"description" validate:"max=1000"`
	TimePerQuestion   int    `json:"time_per_question" validate:"required,min=5,max=300"`
	PointsPerQuestion int    `json:"points_per_question" validate:"required,min=1,max=10000"`
	HostName          string `json:"host_name" validate:"required,min=1,max=64"`
	HostAvatar        string `json:"host_avatar" validate:"max=256"`
}

type CreateGameResponse struct {
	Game *domain.Game   `json:"game"`
	Host *domain.Player `json:"host"`
}

type CreateGameHandler struct {
	usecase usecase.CreateGameUseCase
}

func NewCreateGameHandler(usecase usecase.CreateGameUseCase) *CreateGameHandler {
	return &CreateGameHandler{
		usecase: usecase,
	}
}

func (h *CreateGameHandler) Handle(ctx context.Context, req *CreateGameRequest) (*CreateGameResponse, int, error) {
	game, host, status, err := h.usecase.Execute(ctx, req.Title, req.Description, req.TimePerQuestion, req.PointsPerQuestion, req.HostName, req.HostAvatar)
	if err != nil {
		return nil, status, err
	}
	return &CreateGameResponse{Game: game, Host: host}, status, nil
}
