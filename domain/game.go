package domain

import (
	"time"

	"github.com/google/uuid"
)

type GameStatus string

const (
	GameStatusLobby     GameStatus = "lobby"
	GameStatusActive    GameStatus = "active"
	GameStatusCompleted GameStatus = "completed"
)

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeMultiSelect    QuestionType = "multi_select"
	QuestionTypeTrueFalse      QuestionType = "true_false"
)

type Game struct {
	ID                   uuid.UUID  `json:"id"`
	HostID               uuid.UUID  `json:"host_id"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	RoomCode             string     `json:"room_code"`
	TimePerQuestion      int        `json:"time_per_question"`  // saniye cinsinden
	PointsPerQuestion    int        `json:"points_per_question"`
	Status               GameStatus `json:"status"`
	CurrentQuestionIndex int        `json:"current_question_index"`
	CreatedAt            time.Time  `json:"created_at"`
}

// Question, oluşturulduktan sonra değişmez; koordinatör sadece okur.
type Question struct {
	ID                   uuid.UUID    `json:"id"`
	GameID               uuid.UUID    `json:"game_id"`
	QuestionText         string       `json:"question_text"`
	QuestionType         QuestionType `json:"question_type"`
	Answers              []string     `json:"answers"`
	CorrectAnswerIndex   int          `json:"correct_answer_index"`
	CorrectAnswerIndices []int        `json:"correct_answer_indices,omitempty"` // sadece multi_select için
	QuestionOrder        int          `json:"question_order"`
}

type Player struct {
	ID       uuid.UUID `json:"id"`
	GameID   uuid.UUID `json:"game_id"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar,omitempty"`
	Score    int       `json:"score"`
	JoinedAt time.Time `json:"joined_at"`
	IsHost   bool      `json:"is_host"`
}

// PlayerAnswer, (player_id, question_id) başına en fazla bir kayıttır.
type PlayerAnswer struct {
	ID                    uuid.UUID `json:"id"`
	PlayerID              uuid.UUID `json:"player_id"`
	QuestionID            uuid.UUID `json:"question_id"`
	SelectedAnswerIndex   int       `json:"selected_answer_index"`
	SelectedAnswerIndices []int     `json:"selected_answer_indices,omitempty"`
	AnsweredAt            time.Time `json:"answered_at"`
	TimeToAnswer          int64     `json:"time_to_answer"` // ms, soru başlangıcından itibaren
	PointsEarned          int       `json:"points_earned"`
}

// IsSingleAnswer, sorunun tek doğru indeksle puanlanıp puanlanmadığını söyler.
func (q *Question) IsSingleAnswer() bool {
	return q.QuestionType != QuestionTypeMultiSelect
}
