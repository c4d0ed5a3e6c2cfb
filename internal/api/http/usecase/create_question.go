package usecase

import (
	"context"
	"fmt"

	"quiz-service/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateQuestionUseCase interface {
	Execute(ctx context.Context, roomCode, questionText, questionType string, answers []string, correctAnswerIndex int, correctAnswerIndices []int) (*domain.Question, int, error)
}

type createQuestionUseCase struct {
	postgresRepository PostgresRepository
}

func NewCreateQuestionUseCase(repository PostgresRepository) CreateQuestionUseCase {
	return &createQuestionUseCase{postgresRepository: repository}
}

// Execute, lobideki bir oyuna soru ekler. Sorunun sırası mevcut soru
// sayısından türetilir.
func (u *createQuestionUseCase) Execute(ctx context.Context, roomCode, questionText, questionType string, answers []string, correctAnswerIndex int, correctAnswerIndices []int) (*domain.Question, int, error) {
	game, err := u.postgresRepository.GetGameByRoomCode(ctx, roomCode)
	if err != nil {
		return nil, fiber.StatusNotFound, err
	}
	if game.Status != domain.GameStatusLobby {
		return nil, fiber.StatusConflict, domain.ErrGameNotInLobby
	}

	if err := validateAnswers(questionType, answers, correctAnswerIndex, correctAnswerIndices); err != nil {
		return nil, fiber.StatusBadRequest, err
	}

	existing, err := u.postgresRepository.GetQuestionsByGameID(ctx, game.ID)
	if err != nil {
		return nil, fiber.StatusInternalServerError, err
	}

	question := &domain.Question{
		ID:                   uuid.New(),
		GameID:               game.ID,
		QuestionText:         questionText,
		QuestionType:         domain.QuestionType(questionType),
		Answers:              answers,
		CorrectAnswerIndex:   correctAnswerIndex,
		CorrectAnswerIndices: correctAnswerIndices,
		QuestionOrder:        len(existing),
	}
	if err := u.postgresRepository.CreateQuestion(ctx, question); err != nil {
		return nil, fiber.StatusInternalServerError, err
	}
	return question, fiber.StatusOK, nil
}

func validateAnswers(questionType string, answers []string, correctAnswerIndex int, correctAnswerIndices []int) error {
	switch domain.QuestionType(questionType) {
	case domain.QuestionTypeTrueFalse:
		if len(answers) != 2 {
			return fmt.Errorf("%w: true/false question must have exactly 2 answers", domain.ErrInvalidInput)
		}
	case domain.QuestionTypeMultipleChoice, domain.QuestionTypeMultiSelect:
		if len(answers) < 2 {
			return fmt.Errorf("%w: question must have at least 2 answers", domain.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown question type %q", domain.ErrInvalidInput, questionType)
	}

	if domain.QuestionType(questionType) == domain.QuestionTypeMultiSelect {
		if len(correctAnswerIndices) == 0 {
			return fmt.Errorf("%w: multi-select question needs at least one correct answer", domain.ErrInvalidInput)
		}
		seen := make(map[int]struct{}, len(correctAnswerIndices))
		for _, idx := range correctAnswerIndices {
			if idx < 0 || idx >= len(answers) {
				return fmt.Errorf("%w: correct answer index %d out of range", domain.ErrInvalidInput, idx)
			}
			if _, ok := seen[idx]; ok {
				return fmt.Errorf("%w: duplicate correct answer index %d", domain.ErrInvalidInput, idx)
			}
			seen[idx] = struct{}{}
		}
		return nil
	}

	if correctAnswerIndex < 0 || correctAnswerIndex >= len(answers) {
		return fmt.Errorf("%w: correct answer index %d out of range", domain.ErrInvalidInput, correctAnswerIndex)
	}
	return nil
}
