package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"quiz-service/domain"

	"github.com/google/uuid"
)

const gameColumns = `id, host_id, title, COALESCE(description, ''), room_code,
		time_per_question, points_per_question, status, current_question_index, created_at`

func (r *Repository) CreateGame(ctx context.Context, game *domain.Game) error {
	query := `
		INSERT INTO games (id, host_id, title, description, room_code, time_per_question, points_per_question, status, current_question_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		game.ID, game.HostID, game.Title, game.Description, game.RoomCode,
		game.TimePerQuestion, game.PointsPerQuestion, game.Status, game.CurrentQuestionIndex,
	).Scan(&game.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return domain.ErrRoomCodeTaken
		}
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

func (r *Repository) GetGameByRoomCode(ctx context.Context, roomCode string) (*domain.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE room_code = $1`
	return r.scanGame(r.db.QueryRowContext(ctx, query, roomCode))
}

func (r *Repository) GetGameByID(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`
	return r.scanGame(r.db.QueryRowContext(ctx, query, id))
}

func (r *Repository) UpdateGameStatus(ctx context.Context, id uuid.UUID, status domain.GameStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE games SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update game status: %w", err)
	}
	return requireRow(result, domain.ErrGameNotFound)
}

func (r *Repository) UpdateCurrentQuestion(ctx context.Context, id uuid.UUID, index int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE games SET current_question_index = $1 WHERE id = $2`, index, id)
	if err != nil {
		return fmt.Errorf("failed to update current question: %w", err)
	}
	return requireRow(result, domain.ErrGameNotFound)
}

func (r *Repository) scanGame(row *sql.Row) (*domain.Game, error) {
	var game domain.Game
	err := row.Scan(
		&game.ID, &game.HostID, &game.Title, &game.Description, &game.RoomCode,
		&game.TimePerQuestion, &game.PointsPerQuestion, &game.Status,
		&game.CurrentQuestionIndex, &game.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to scan game: %w", err)
	}
	return &game, nil
}

func requireRow(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
