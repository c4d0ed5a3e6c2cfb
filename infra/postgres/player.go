package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quiz-service/domain"

	"github.com/google/uuid"
)

const playerColumns = `id, game_id, name, COALESCE(avatar, ''), score, joined_at, is_host`

func (r *Repository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	query := `
		INSERT INTO players (id, game_id, name, avatar, score, is_host)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING joined_at
	`
	err := r.db.QueryRowContext(ctx, query,
		player.ID, player.GameID, player.Name, player.Avatar, player.Score, player.IsHost,
	).Scan(&player.JoinedAt)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

func (r *Repository) GetPlayersByGameID(ctx context.Context, gameID uuid.UUID) ([]domain.Player, error) {
	// Katılım sırası skor tablosundaki kararlı sıralamanın temelidir.
	query := `SELECT ` + playerColumns + ` FROM players WHERE game_id = $1 ORDER BY joined_at ASC`
	rows, err := r.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		var player domain.Player
		if err := rows.Scan(
			&player.ID, &player.GameID, &player.Name, &player.Avatar,
			&player.Score, &player.JoinedAt, &player.IsHost,
		); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, player)
	}
	return players, rows.Err()
}

func (r *Repository) GetPlayerByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`
	var player domain.Player
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&player.ID, &player.GameID, &player.Name, &player.Avatar,
		&player.Score, &player.JoinedAt, &player.IsHost,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to scan player: %w", err)
	}
	return &player, nil
}

func (r *Repository) UpdatePlayerScore(ctx context.Context, id uuid.UUID, score int) error {
	result, err := r.db.ExecContext(ctx, `UPDATE players SET score = $1 WHERE id = $2`, score, id)
	if err != nil {
		return fmt.Errorf("failed to update player score: %w", err)
	}
	return requireRow(result, domain.ErrPlayerNotFound)
}

func (r *Repository) UpdatePlayerAsHost(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `UPDATE players SET is_host = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to update player as host: %w", err)
	}
	return requireRow(result, domain.ErrPlayerNotFound)
}
