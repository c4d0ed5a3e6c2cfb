package handler

import (
	"context"

	"quiz-service/domain"
	"quiz-service/internal/api/http/usecase"
)

type GetGameRequest struct {
	RoomCode string `params:"room_code" validate:"required,len=6"`
}

type GetGameResponse struct {
	Game          *domain.Game    `json:"game"`
	Players       []domain.Player `json:"players"`
	QuestionCount int             `json:"question_count"`
}

type GetGameHandler struct {
	usecase usecase.GetGameUseCase
}

func NewGetGameHandler(usecase usecase.GetGameUseCase) *GetGameHandler {
	return &GetGameHandler{
		usecase: usecase,
	}
}

func (h *GetGameHandler) Handle(ctx context.Context, req *GetGameRequest) (*GetGameResponse, int, error) {
	game, players, questionCount, status, err := h.usecase.Execute(ctx, req.RoomCode)
	if err != nil {
		return nil, status, err
	}
	return &GetGameResponse{Game: game, Players: players, QuestionCount: questionCount}, status, nil
}
