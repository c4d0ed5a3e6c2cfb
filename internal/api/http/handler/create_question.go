package handler

import (
	"context"

	"quiz-service/domain"
	"quiz-service/internal/api/http/usecase"
)

type CreateQuestionRequest struct {
	RoomCode             string   `params:"room_code" validate:"required,len=6"`
	QuestionText         string   `json:"question_text" validate:"required,min=1,max=500"`
	QuestionType         string   `json:"question_type" validate:"required,oneof=multiple_choice multi_select true_false"`
	Answers              []string `json:"answers" validate:"required,min=2,max=8,dive,required,max=200"`
	CorrectAnswerIndex   int      `json:"correct_answer_index" validate:"min=0"`
	CorrectAnswerIndices []int    `json:"correct_answer_indices" validate:"dive,min=0"`
}

type CreateQuestionResponse struct {
	Question *domain.Question `json:"question"`
}

type CreateQuestionHandler struct {
	usecase usecase.CreateQuestionUseCase
}

func NewCreateQuestionHandler(usecase usecase.CreateQuestionUseCase) *CreateQuestionHandler {
	return &CreateQuestionHandler{
		usecase: usecase,
	}
}

func (h *CreateQuestionHandler) Handle(ctx context.Context, req *CreateQuestionRequest) (*CreateQuestionResponse, int, error) {
	question, status, err := h.usecase.Execute(ctx, req.RoomCode, req.QuestionText, req.QuestionType, req.Answers, req.CorrectAnswerIndex, req.CorrectAnswerIndices)
	if err != nil {
		return nil, status, err
	}
	return &CreateQuestionResponse{Question: question}, status, nil
}
