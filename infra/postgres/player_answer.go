package postgres

import (
	"context"
	"fmt"
	"strings"

	"quiz-service/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func (r *Repository) CreatePlayerAnswer(ctx context.Context, answer *domain.PlayerAnswer) error {
	// (player_id, question_id) üzerindeki unique kısıt, oyuncu başına tek
	// cevap değişmezinin kalıcı katmandaki karşılığıdır.
	query := `
		INSERT INTO player_answers (id, player_id, question_id, selected_answer_index, selected_answer_indices, answered_at, time_to_answer, points_earned)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		answer.ID, answer.PlayerID, answer.QuestionID, answer.SelectedAnswerIndex,
		pq.Array(answer.SelectedAnswerIndices), answer.AnsweredAt,
		answer.TimeToAnswer, answer.PointsEarned,
	)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return domain.ErrDuplicateAnswer
		}
		return fmt.Errorf("failed to create player answer: %w", err)
	}
	return nil
}

func (r *Repository) GetPlayerAnswersByQuestionID(ctx context.Context, questionID uuid.UUID) ([]domain.PlayerAnswer, error) {
	query := `
		SELECT id, player_id, question_id, selected_answer_index, selected_answer_indices, answered_at, time_to_answer, points_earned
		FROM player_answers
		WHERE question_id = $1
		ORDER BY answered_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query player answers: %w", err)
	}
	defer rows.Close()

	var answers []domain.PlayerAnswer
	for rows.Next() {
		var answer domain.PlayerAnswer
		var indices pq.Int64Array
		if err := rows.Scan(
			&answer.ID, &answer.PlayerID, &answer.QuestionID, &answer.SelectedAnswerIndex,
			&indices, &answer.AnsweredAt, &answer.TimeToAnswer, &answer.PointsEarned,
		); err != nil {
			return nil, fmt.Errorf("failed to scan player answer: %w", err)
		}
		for _, idx := range indices {
			answer.SelectedAnswerIndices = append(answer.SelectedAnswerIndices, int(idx))
		}
		answers = append(answers, answer)
	}
	return answers, rows.Err()
}
