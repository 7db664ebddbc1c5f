package quiz

import (
	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/scoring"
)

// QuestionView is a Question with the answer key stripped. The key stays
// server-side until scoring; a browser client must not be able to read
// it out of the payload.
type QuestionView struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

type QuizView struct {
	Difficulty quizgen.Difficulty `json:"difficulty"`
	Questions  []QuestionView     `json:"questions"`
	Answers    map[int]int        `json:"answers,omitempty"`
	Scored     bool               `json:"scored"`
}

// ScoreView reveals the answer key alongside the tally once the quiz is
// submitted.
type ScoreView struct {
	scoring.Result
	AnswerKey []int `json:"answer_key"`
}

func viewQuiz(q *quizgen.Quiz, answers scoring.AnswerSet, scored bool) QuizView {
	v := QuizView{
		Difficulty: q.Difficulty,
		Questions:  make([]QuestionView, 0, len(q.Questions)),
		Scored:     scored,
	}
	for _, qq := range q.Questions {
		v.Questions = append(v.Questions, QuestionView{Prompt: qq.Prompt, Options: qq.Options})
	}
	if len(answers) > 0 {
		v.Answers = answers
	}
	return v
}

func viewScore(q *quizgen.Quiz, res scoring.Result) ScoreView {
	key := make([]int, 0, len(q.Questions))
	for _, qq := range q.Questions {
		key = append(key, qq.Correct)
	}
	return ScoreView{Result: res, AnswerKey: key}
}
