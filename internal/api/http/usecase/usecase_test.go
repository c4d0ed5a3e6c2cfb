package usecase

import (
	"context"
	"testing"

	"quiz-service/domain"
	"quiz-service/infra/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGame(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	game, host, status, err := NewCreateGameUseCase(store).Execute(ctx, "capitals", "flag quiz", 30, 1000, "ayse", "")
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)

	assert.Len(t, game.RoomCode, 6)
	for _, r := range game.RoomCode {
		assert.Contains(t, roomCodeAlphabet, string(r))
	}
	assert.Equal(t, domain.GameStatusLobby, game.Status)
	assert.Equal(t, host.ID, game.HostID)
	assert.True(t, host.IsHost)

	// Oyun oda koduyla bulunabilir, host oyuncu listesindedir.
	found, err := store.GetGameByRoomCode(ctx, game.RoomCode)
	require.NoError(t, err)
	assert.Equal(t, game.ID, found.ID)

	players, err := store.GetPlayersByGameID(ctx, game.ID)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.True(t, players[0].IsHost)
}

func TestCreateQuestion(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	game, _, _, err := NewCreateGameUseCase(store).Execute(ctx, "capitals", "", 30, 1000, "ayse", "")
	require.NoError(t, err)

	uc := NewCreateQuestionUseCase(store)

	t.Run("order follows insertion", func(t *testing.T) {
		first, status, err := uc.Execute(ctx, game.RoomCode, "q1", "multiple_choice", []string{"a", "b", "c"}, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, 0, first.QuestionOrder)

		second, _, err := uc.Execute(ctx, game.RoomCode, "q2", "true_false", []string{"true", "false"}, 0, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, second.QuestionOrder)
	})

	t.Run("unknown room code", func(t *testing.T) {
		_, status, err := uc.Execute(ctx, "ZZZZZZ", "q", "multiple_choice", []string{"a", "b"}, 0, nil)
		assert.ErrorIs(t, err, domain.ErrGameNotFound)
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, status, err := uc.Execute(ctx, game.RoomCode, "q", "multiple_choice", []string{"a", "b"}, 5, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("true false needs exactly two answers", func(t *testing.T) {
		_, _, err := uc.Execute(ctx, game.RoomCode, "q", "true_false", []string{"a", "b", "c"}, 0, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("multi select needs correct indices", func(t *testing.T) {
		_, _, err := uc.Execute(ctx, game.RoomCode, "q", "multi_select", []string{"a", "b", "c"}, 0, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, _, err = uc.Execute(ctx, game.RoomCode, "q", "multi_select", []string{"a", "b", "c"}, 0, []int{1, 1})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		q, _, err := uc.Execute(ctx, game.RoomCode, "q", "multi_select", []string{"a", "b", "c"}, 0, []int{0, 2})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2}, q.CorrectAnswerIndices)
	})

	t.Run("rejected once the game left the lobby", func(t *testing.T) {
		require.NoError(t, store.UpdateGameStatus(ctx, game.ID, domain.GameStatusActive))
		_, status, err := uc.Execute(ctx, game.RoomCode, "late", "multiple_choice", []string{"a", "b"}, 0, nil)
		assert.ErrorIs(t, err, domain.ErrGameNotInLobby)
		assert.Equal(t, fiber.StatusConflict, status)
	})
}

func TestJoinGame(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	game, _, _, err := NewCreateGameUseCase(store).Execute(ctx, "capitals", "", 30, 1000, "ayse", "")
	require.NoError(t, err)

	uc := NewJoinGameUseCase(store)

	joinedGame, player, status, err := uc.Execute(ctx, game.RoomCode, "mehmet", "")
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, game.ID, joinedGame.ID)
	assert.Equal(t, game.ID, player.GameID)
	assert.False(t, player.IsHost)

	t.Run("completed games are closed", func(t *testing.T) {
		require.NoError(t, store.UpdateGameStatus(ctx, game.ID, domain.GameStatusCompleted))
		_, _, status, err := uc.Execute(ctx, game.RoomCode, "late", "")
		assert.ErrorIs(t, err, domain.ErrGameCompleted)
		assert.Equal(t, fiber.StatusConflict, status)
	})
}

func TestGetGame(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	game, _, _, err := NewCreateGameUseCase(store).Execute(ctx, "capitals", "", 30, 1000, "ayse", "")
	require.NoError(t, err)

	_, _, err = NewCreateQuestionUseCase(store).Execute(ctx, game.RoomCode, "q1", "multiple_choice", []string{"a", "b"}, 0, nil)
	require.NoError(t, err)

	found, players, questionCount, status, err := NewGetGameUseCase(store).Execute(ctx, game.RoomCode)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, game.ID, found.ID)
	assert.Len(t, players, 1)
	assert.Equal(t, 1, questionCount)

	_, _, _, status, err = NewGetGameUseCase(store).Execute(ctx, "ZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrGameNotFound)
	assert.Equal(t, fiber.StatusNotFound, status)
}
