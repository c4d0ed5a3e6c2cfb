package memory

import (
	"context"
	"testing"
	"time"

	"quiz-service/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, s *Store) *domain.Game {
	t.Helper()
	game := &domain.Game{
		ID:                uuid.New(),
		HostID:            uuid.New(),
		RoomCode:          "ROOM42",
		TimePerQuestion:   30,
		PointsPerQuestion: 1000,
		Status:            domain.GameStatusLobby,
	}
	require.NoError(t, s.CreateGame(context.Background(), game))
	return game
}

func TestCreateGameRoomCodeCollision(t *testing.T) {
	s := NewStore()
	newGame(t, s)

	dup := &domain.Game{ID: uuid.New(), RoomCode: "ROOM42"}
	assert.ErrorIs(t, s.CreateGame(context.Background(), dup), domain.ErrRoomCodeTaken)
}

func TestDuplicateAnswerRejected(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	game := newGame(t, s)

	player := &domain.Player{ID: uuid.New(), GameID: game.ID, Name: "alice"}
	require.NoError(t, s.CreatePlayer(ctx, player))

	questionID := uuid.New()
	first := &domain.PlayerAnswer{
		ID:         uuid.New(),
		PlayerID:   player.ID,
		QuestionID: questionID,
	}
	require.NoError(t, s.CreatePlayerAnswer(ctx, first))

	second := &domain.PlayerAnswer{
		ID:         uuid.New(),
		PlayerID:   player.ID,
		QuestionID: questionID,
	}
	assert.ErrorIs(t, s.CreatePlayerAnswer(ctx, second), domain.ErrDuplicateAnswer)

	answers, err := s.GetPlayerAnswersByQuestionID(ctx, questionID)
	require.NoError(t, err)
	assert.Len(t, answers, 1)
}

func TestPlayersOrderedByJoinTime(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	game := newGame(t, s)

	base := time.Now()
	for i, name := range []string{"first", "second", "third"} {
		p := &domain.Player{
			ID:       uuid.New(),
			GameID:   game.ID,
			Name:     name,
			JoinedAt: base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, s.CreatePlayer(ctx, p))
	}

	players, err := s.GetPlayersByGameID(ctx, game.ID)
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, "first", players[0].Name)
	assert.Equal(t, "third", players[2].Name)
}

func TestUpdatePlayerScoreIsolatedCopy(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	game := newGame(t, s)

	player := &domain.Player{ID: uuid.New(), GameID: game.ID, Name: "alice"}
	require.NoError(t, s.CreatePlayer(ctx, player))
	require.NoError(t, s.UpdatePlayerScore(ctx, player.ID, 750))

	got, err := s.GetPlayerByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 750, got.Score)

	// Dışarı verilen kopya store'u etkilememeli.
	got.Score = 9999
	again, err := s.GetPlayerByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 750, again.Score)
}

func TestQuestionsSortedByOrder(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	game := newGame(t, s)

	for _, order := range []int{2, 0, 1} {
		q := &domain.Question{
			ID:            uuid.New(),
			GameID:        game.ID,
			QuestionType:  domain.QuestionTypeMultipleChoice,
			Answers:       []string{"a", "b"},
			QuestionOrder: order,
		}
		require.NoError(t, s.CreateQuestion(ctx, q))
	}

	questions, err := s.GetQuestionsByGameID(ctx, game.ID)
	require.NoError(t, err)
	require.Len(t, questions, 3)
	assert.Equal(t, 0, questions[0].QuestionOrder)
	assert.Equal(t, 2, questions[2].QuestionOrder)
}
