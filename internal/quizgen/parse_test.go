package quizgen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload(n int) string {
	out := `{"questions":[`
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"prompt":"question %d","options":["a%d","b%d","c%d","d%d"],"answer":%d}`, i, i, i, i, i, i%4)
	}
	return out + `]}`
}

func TestParseQuizValid(t *testing.T) {
	quiz, err := parseQuiz(validPayload(5), Medium, 5)
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 5)
	assert.Equal(t, Medium, quiz.Difficulty)
	assert.Equal(t, "question 0", quiz.Questions[0].Prompt)
	assert.Equal(t, 0, quiz.Questions[0].Correct)
	assert.Equal(t, 3, quiz.Questions[3].Correct)
	for _, q := range quiz.Questions {
		assert.Len(t, q.Options, OptionsPerQuestion)
	}
}

func TestParseQuizCodeFence(t *testing.T) {
	fenced := "```json\n" + validPayload(2) + "\n```"
	quiz, err := parseQuiz(fenced, Easy, 2)
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, 2)
}

func TestParseQuizMalformed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "the quiz is: question one..."},
		{"truncated json", `{"questions":[{"prompt":"q"`},
		{"empty object", `{}`},
		{"fewer questions than requested", validPayload(2)},
		{"more questions than requested", validPayload(4)},
		{"missing options", `{"questions":[{"prompt":"q","answer":0},{"prompt":"q2","options":["a","b","c","d"],"answer":1},{"prompt":"q3","options":["a","b","c","d"],"answer":2}]}`},
		{"three options", `{"questions":[{"prompt":"q","options":["a","b","c"],"answer":0},{"prompt":"q2","options":["a","b","c","d"],"answer":1},{"prompt":"q3","options":["a","b","c","d"],"answer":2}]}`},
		{"five options", `{"questions":[{"prompt":"q","options":["a","b","c","d","e"],"answer":0},{"prompt":"q2","options":["a","b","c","d"],"answer":1},{"prompt":"q3","options":["a","b","c","d"],"answer":2}]}`},
		{"answer out of range", `{"questions":[{"prompt":"q","options":["a","b","c","d"],"answer":4},{"prompt":"q2","options":["a","b","c","d"],"answer":1},{"prompt":"q3","options":["a","b","c","d"],"answer":2}]}`},
		{"negative answer", `{"questions":[{"prompt":"q","options":["a","b","c","d"],"answer":-1},{"prompt":"q2","options":["a","b","c","d"],"answer":1},{"prompt":"q3","options":["a","b","c","d"],"answer":2}]}`},
		{"missing answer", `{"questions":[{"prompt":"q","options":["a","b","c","d"]},{"prompt":"q2","options":["a","b","c","d"],"answer":1},{"prompt":"q3","options":["a","b","c","d"],"answer":2}]}`},
		{"duplicate options", `{"questions":[{"prompt":"q","options":["a","b","a","d"],"answer":0},{"prompt":"q2","options":["a","b","c","d"],"answer":1},{"prompt":"q3","options":["a","b","c","d"],"answer":2}]}`},
		{"empty prompt", `{"questions":[{"prompt":"  ","options":["a","b","c","d"],"answer":0},{"prompt":"q2","options":["a","b","c","d"],"answer":1},{"prompt":"q3","options":["a","b","c","d"],"answer":2}]}`},
		{"empty option", `{"questions":[{"prompt":"q","options":["a","","c","d"],"answer":0},{"prompt":"q2","options":["a","b","c","d"],"answer":1},{"prompt":"q3","options":["a","b","c","d"],"answer":2}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quiz, err := parseQuiz(tc.raw, Medium, 3)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedResponse), "expected ErrMalformedResponse, got %v", err)
			assert.Nil(t, quiz)
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`  {"a":1}  `))
}
