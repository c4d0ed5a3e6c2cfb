package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quiz-service/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const questionColumns = `id, game_id, question_text, question_type, answers,
		correct_answer_index, correct_answer_indices, question_order`

func (r *Repository) CreateQuestion(ctx context.Context, question *domain.Question) error {
	query := `
		INSERT INTO questions (id, game_id, question_text, question_type, answers, correct_answer_index, correct_answer_indices, question_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		question.ID, question.GameID, question.QuestionText, question.QuestionType,
		pq.Array(question.Answers), question.CorrectAnswerIndex,
		pq.Array(question.CorrectAnswerIndices), question.QuestionOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

func (r *Repository) GetQuestionsByGameID(ctx context.Context, gameID uuid.UUID) ([]domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE game_id = $1 ORDER BY question_order ASC`
	rows, err := r.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *question)
	}
	return questions, rows.Err()
}

func (r *Repository) GetQuestionByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query question: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrQuestionNotFound
	}
	return scanQuestion(rows)
}

func scanQuestion(rows *sql.Rows) (*domain.Question, error) {
	var question domain.Question
	var answers pq.StringArray
	var correctIndices pq.Int64Array
	err := rows.Scan(
		&question.ID, &question.GameID, &question.QuestionText, &question.QuestionType,
		&answers, &question.CorrectAnswerIndex, &correctIndices, &question.QuestionOrder,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to scan question: %w", err)
	}
	question.Answers = []string(answers)
	for _, idx := range correctIndices {
		question.CorrectAnswerIndices = append(question.CorrectAnswerIndices, int(idx))
	}
	return &question, nil
}
