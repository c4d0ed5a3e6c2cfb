// Package memory, Storage sözleşmesinin bellek içi gerçeklemesidir.
// Testlerde ve tek süreçli kurulumlarda postgres'in yerine geçer.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"quiz-service/domain"

	"github.com/google/uuid"
)

type answerKey struct {
	playerID   uuid.UUID
	questionID uuid.UUID
}

type Store struct {
	mu sync.RWMutex

	games       map[uuid.UUID]*domain.Game
	gamesByCode map[string]uuid.UUID
	questions   map[uuid.UUID]*domain.Question
	players     map[uuid.UUID]*domain.Player
	answers     map[uuid.UUID]*domain.PlayerAnswer
	answerKeys  map[answerKey]struct{}
}

func NewStore() *Store {
	return &Store{
		games:       make(map[uuid.UUID]*domain.Game),
		gamesByCode: make(map[string]uuid.UUID),
		questions:   make(map[uuid.UUID]*domain.Question),
		players:     make(map[uuid.UUID]*domain.Player),
		answers:     make(map[uuid.UUID]*domain.PlayerAnswer),
		answerKeys:  make(map[answerKey]struct{}),
	}
}

func (s *Store) Close() error { return nil }

func (s *Store) CreateGame(ctx context.Context, game *domain.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.gamesByCode[game.RoomCode]; exists {
		return domain.ErrRoomCodeTaken
	}
	if game.CreatedAt.IsZero() {
		game.CreatedAt = time.Now()
	}
	cp := *game
	s.games[game.ID] = &cp
	s.gamesByCode[game.RoomCode] = game.ID
	return nil
}

func (s *Store) GetGameByRoomCode(ctx context.Context, roomCode string) (*domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.gamesByCode[roomCode]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	cp := *s.games[id]
	return &cp, nil
}

func (s *Store) GetGameByID(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[id]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	cp := *game
	return &cp, nil
}

func (s *Store) UpdateGameStatus(ctx context.Context, id uuid.UUID, status domain.GameStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.games[id]
	if !ok {
		return domain.ErrGameNotFound
	}
	game.Status = status
	return nil
}

func (s *Store) UpdateCurrentQuestion(ctx context.Context, id uuid.UUID, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.games[id]
	if !ok {
		return domain.ErrGameNotFound
	}
	game.CurrentQuestionIndex = index
	return nil
}

func (s *Store) CreateQuestion(ctx context.Context, question *domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[question.GameID]; !exists {
		return domain.ErrGameNotFound
	}
	cp := *question
	s.questions[question.ID] = &cp
	return nil
}

func (s *Store) GetQuestionsByGameID(ctx context.Context, gameID uuid.UUID) ([]domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Question
	for _, q := range s.questions {
		if q.GameID == gameID {
			result = append(result, *q)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].QuestionOrder < result[j].QuestionOrder
	})
	return result, nil
}

func (s *Store) GetQuestionByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	question, ok := s.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	cp := *question
	return &cp, nil
}

func (s *Store) CreatePlayer(ctx context.Context, player *domain.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[player.GameID]; !exists {
		return domain.ErrGameNotFound
	}
	if player.JoinedAt.IsZero() {
		player.JoinedAt = time.Now()
	}
	cp := *player
	s.players[player.ID] = &cp
	return nil
}

func (s *Store) GetPlayersByGameID(ctx context.Context, gameID uuid.UUID) ([]domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Player
	for _, p := range s.players {
		if p.GameID == gameID {
			result = append(result, *p)
		}
	}
	// Katılım sırası deterministik sıralamanın temelidir.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].JoinedAt.Before(result[j].JoinedAt)
	})
	return result, nil
}

func (s *Store) GetPlayerByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	player, ok := s.players[id]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	cp := *player
	return &cp, nil
}

func (s *Store) UpdatePlayerScore(ctx context.Context, id uuid.UUID, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.players[id]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	player.Score = score
	return nil
}

func (s *Store) UpdatePlayerAsHost(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.players[id]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	player.IsHost = true
	return nil
}

func (s *Store) CreatePlayerAnswer(ctx context.Context, answer *domain.PlayerAnswer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := answerKey{playerID: answer.PlayerID, questionID: answer.QuestionID}
	if _, exists := s.answerKeys[key]; exists {
		return domain.ErrDuplicateAnswer
	}
	cp := *answer
	s.answers[answer.ID] = &cp
	s.answerKeys[key] = struct{}{}
	return nil
}

func (s *Store) GetPlayerAnswersByQuestionID(ctx context.Context, questionID uuid.UUID) ([]domain.PlayerAnswer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.PlayerAnswer
	for _, a := range s.answers {
		if a.QuestionID == questionID {
			result = append(result, *a)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].AnsweredAt.Before(result[j].AnsweredAt)
	})
	return result, nil
}
