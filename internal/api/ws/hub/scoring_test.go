package hub

import (
	"testing"

	"quiz-service/domain"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Run("wrong answer earns nothing", func(t *testing.T) {
		assert.Equal(t, 0, Score(false, 0, 30000, 1000))
	})

	t.Run("instant correct answer earns full points", func(t *testing.T) {
		assert.Equal(t, 1000, Score(true, 0, 30000, 1000))
	})

	t.Run("answer at the deadline earns half", func(t *testing.T) {
		assert.Equal(t, 500, Score(true, 30000, 30000, 1000))
	})

	t.Run("midway answer earns three quarters", func(t *testing.T) {
		assert.Equal(t, 750, Score(true, 15000, 30000, 1000))
	})

	t.Run("halves round up", func(t *testing.T) {
		// 5 * (0.5 + 0.5*0.5) = 3.75 -> 4
		assert.Equal(t, 4, Score(true, 15000, 30000, 5))
	})

	t.Run("elapsed beyond budget clamps to the floor", func(t *testing.T) {
		assert.Equal(t, 500, Score(true, 45000, 30000, 1000))
	})

	t.Run("negative elapsed clamps to full points", func(t *testing.T) {
		assert.Equal(t, 1000, Score(true, -100, 30000, 1000))
	})

	t.Run("zero budget returns base points", func(t *testing.T) {
		assert.Equal(t, 1000, Score(true, 0, 0, 1000))
	})
}

func TestIsCorrectAnswer(t *testing.T) {
	single := &domain.Question{
		QuestionType:       domain.QuestionTypeMultipleChoice,
		CorrectAnswerIndex: 2,
	}
	assert.True(t, isCorrectAnswer(single, 2, nil))
	assert.False(t, isCorrectAnswer(single, 1, nil))

	trueFalse := &domain.Question{
		QuestionType:       domain.QuestionTypeTrueFalse,
		CorrectAnswerIndex: 0,
	}
	assert.True(t, isCorrectAnswer(trueFalse, 0, nil))
	assert.False(t, isCorrectAnswer(trueFalse, 1, nil))

	multi := &domain.Question{
		QuestionType:         domain.QuestionTypeMultiSelect,
		CorrectAnswerIndices: []int{1, 3},
	}
	assert.True(t, isCorrectAnswer(multi, 0, []int{1, 3}))
	assert.True(t, isCorrectAnswer(multi, 0, []int{3, 1}), "order must not matter")
	assert.False(t, isCorrectAnswer(multi, 0, []int{1}), "partial selection is wrong")
	assert.False(t, isCorrectAnswer(multi, 0, []int{1, 3, 2}), "superset is wrong")
	assert.False(t, isCorrectAnswer(multi, 0, []int{1, 1}), "duplicates do not complete the set")

	// Tek indeksli gönderim, tek doğrulu multi-select ile eşleşebilir.
	multiSingle := &domain.Question{
		QuestionType:         domain.QuestionTypeMultiSelect,
		CorrectAnswerIndices: []int{2},
	}
	assert.True(t, isCorrectAnswer(multiSingle, 2, nil))
	assert.False(t, isCorrectAnswer(multiSingle, 1, nil))
}
