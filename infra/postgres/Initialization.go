package postgres

import (
	"database/sql"
	"fmt"
	"log"
)

const (
	createGamesTable = `
		CREATE TABLE IF NOT EXISTS games (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			host_id UUID NOT NULL,
			title VARCHAR(200) NOT NULL,
			description TEXT,
			room_code VARCHAR(6) NOT NULL UNIQUE,
			time_per_question INT NOT NULL DEFAULT 30,
			points_per_question INT NOT NULL DEFAULT 1000,
			status VARCHAR(20) NOT NULL DEFAULT 'lobby', -- 'lobby', 'active', 'completed'
			current_question_index INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);`

	createQuestionsTable = `
		CREATE TABLE IF NOT EXISTS questions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			game_id UUID REFERENCES games(id) ON DELETE CASCADE NOT NULL,
			question_text TEXT NOT NULL,
			question_type VARCHAR(20) NOT NULL DEFAULT 'multiple_choice',
			answers TEXT[] NOT NULL,
			correct_answer_index INT NOT NULL DEFAULT 0,
			correct_answer_indices INT[],
			question_order INT NOT NULL
		);`

	createPlayersTable = `
		CREATE TABLE IF NOT EXISTS players (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			game_id UUID REFERENCES games(id) ON DELETE CASCADE NOT NULL,
			name VARCHAR(50) NOT NULL,
			avatar VARCHAR(100),
			score INT NOT NULL DEFAULT 0,
			joined_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			is_host BOOLEAN NOT NULL DEFAULT FALSE
		);`

	createPlayerAnswersTable = `
		CREATE TABLE IF NOT EXISTS player_answers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			player_id UUID REFERENCES players(id) ON DELETE CASCADE NOT NULL,
			question_id UUID REFERENCES questions(id) ON DELETE CASCADE NOT NULL,
			selected_answer_index INT NOT NULL,
			selected_answer_indices INT[],
			answered_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			time_to_answer BIGINT NOT NULL DEFAULT 0, -- ms cinsinden
			points_earned INT NOT NULL DEFAULT 0,
			UNIQUE(player_id, question_id)
		);`

	// Performans için indeksler
	createIndexes = `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_games_room_code ON games(room_code);
		CREATE INDEX IF NOT EXISTS idx_games_status ON games(status);
		CREATE INDEX IF NOT EXISTS idx_questions_game_id ON questions(game_id);
		CREATE INDEX IF NOT EXISTS idx_questions_order ON questions(game_id, question_order);
		CREATE INDEX IF NOT EXISTS idx_players_game_id ON players(game_id);
		CREATE INDEX IF NOT EXISTS idx_player_answers_question_id ON player_answers(question_id);
		CREATE INDEX IF NOT EXISTS idx_player_answers_player_id ON player_answers(player_id);`
)

// initDB, tüm veritabanı tablolarını oluşturur.
func initDB(db *sql.DB) error {
	tables := []struct {
		name  string
		query string
	}{
		{"games", createGamesTable},
		{"questions", createQuestionsTable},
		{"players", createPlayersTable},
		{"player_answers", createPlayerAnswersTable},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("failed to create '%s' table: %w", table.name, err)
		}
	}

	if _, err := db.Exec(createIndexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database initialized successfully with all tables and indexes")
	return nil
}
