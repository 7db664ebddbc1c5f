package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/quizforge/internal/quizgen"
)

func quizWithKey(correct ...int) *quizgen.Quiz {
	q := &quizgen.Quiz{Difficulty: quizgen.Medium}
	for _, c := range correct {
		q.Questions = append(q.Questions, quizgen.Question{
			Prompt:  "q",
			Options: []string{"a", "b", "c", "d"},
			Correct: c,
		})
	}
	return q
}

func TestScoreEmptyAnswerSet(t *testing.T) {
	quiz := quizWithKey(0, 1, 2, 3)
	res := Score(quiz, AnswerSet{})

	assert.Equal(t, 0, res.CorrectCount)
	assert.Equal(t, 4, res.TotalCount)
	assert.Equal(t, []bool{false, false, false, false}, res.PerQuestion)
}

func TestScoreAllCorrect(t *testing.T) {
	quiz := quizWithKey(0, 1, 2, 3)
	res := Score(quiz, AnswerSet{0: 0, 1: 1, 2: 2, 3: 3})

	assert.Equal(t, 4, res.CorrectCount)
	assert.Equal(t, 4, res.TotalCount)
	assert.Equal(t, []bool{true, true, true, true}, res.PerQuestion)
}

func TestScoreMixed(t *testing.T) {
	// Key [1,2]; first answered correctly, second wrong.
	quiz := quizWithKey(1, 2)
	res := Score(quiz, AnswerSet{0: 1, 1: 0})

	assert.Equal(t, 1, res.CorrectCount)
	assert.Equal(t, 2, res.TotalCount)
	assert.Equal(t, []bool{true, false}, res.PerQuestion)
}

func TestScoreUnansweredCountsIncorrect(t *testing.T) {
	quiz := quizWithKey(2, 0, 3)
	res := Score(quiz, AnswerSet{0: 2})

	assert.Equal(t, 1, res.CorrectCount)
	assert.Equal(t, 3, res.TotalCount)
	assert.Equal(t, []bool{true, false, false}, res.PerQuestion)
}

func TestScoreDeterministic(t *testing.T) {
	quiz := quizWithKey(1, 2, 0)
	answers := AnswerSet{0: 1, 2: 3}

	first := Score(quiz, answers)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Score(quiz, answers))
	}
}
