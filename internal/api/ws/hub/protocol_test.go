package hub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelope(t *testing.T) {
	t.Run("valid envelope", func(t *testing.T) {
		env, err := DecodeEnvelope([]byte(`{"type":"ping"}`))
		require.NoError(t, err)
		assert.Equal(t, MsgPing, env.Type)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := DecodeEnvelope([]byte(`{"type":`))
		assert.Error(t, err)
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := DecodeEnvelope([]byte(`{"content":{}}`))
		assert.Error(t, err)
	})
}

func TestDecodeContent(t *testing.T) {
	t.Run("valid join content", func(t *testing.T) {
		env, err := DecodeEnvelope([]byte(`{"type":"join_game","content":{"room_code":"ABC123","player_id":"c6b6efdb-2b02-4d98-b3c1-8c1e89a0a81f"}}`))
		require.NoError(t, err)

		content, err := decodeContent[JoinGameContent](env)
		require.NoError(t, err)
		assert.Equal(t, "ABC123", content.RoomCode)
	})

	t.Run("room code with wrong length", func(t *testing.T) {
		env, err := DecodeEnvelope([]byte(`{"type":"join_game","content":{"room_code":"ABC","player_id":"c6b6efdb-2b02-4d98-b3c1-8c1e89a0a81f"}}`))
		require.NoError(t, err)

		_, err = decodeContent[JoinGameContent](env)
		assert.Error(t, err)
	})

	t.Run("player id must be a uuid", func(t *testing.T) {
		env, err := DecodeEnvelope([]byte(`{"type":"join_game","content":{"room_code":"ABC123","player_id":"not-a-uuid"}}`))
		require.NoError(t, err)

		_, err = decodeContent[JoinGameContent](env)
		assert.Error(t, err)
	})

	t.Run("submit answer requires an index", func(t *testing.T) {
		env, err := DecodeEnvelope([]byte(`{"type":"submit_answer","content":{"question_id":"c6b6efdb-2b02-4d98-b3c1-8c1e89a0a81f"}}`))
		require.NoError(t, err)

		_, err = decodeContent[SubmitAnswerContent](env)
		assert.Error(t, err)
	})

	t.Run("answer index zero is valid", func(t *testing.T) {
		env, err := DecodeEnvelope([]byte(`{"type":"submit_answer","content":{"question_id":"c6b6efdb-2b02-4d98-b3c1-8c1e89a0a81f","answer_index":0}}`))
		require.NoError(t, err)

		content, err := decodeContent[SubmitAnswerContent](env)
		require.NoError(t, err)
		assert.Equal(t, 0, *content.AnswerIndex)
	})
}
