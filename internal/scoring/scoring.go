// Package scoring compares submitted answers against a quiz's answer key.
package scoring

import "github.com/quizforge/quizforge/internal/quizgen"

// AnswerSet maps question index to the chosen option index. One entry
// per answered question; unanswered questions simply have no entry.
type AnswerSet map[int]int

// Result is derived once per submission and never mutated. PerQuestion
// follows the quiz's question order.
type Result struct {
	CorrectCount int    `json:"correct_count"`
	TotalCount   int    `json:"total_count"`
	PerQuestion  []bool `json:"per_question"`
}

// Score tallies answers against quiz. Unanswered questions count as
// incorrect, never as excluded. Pure and deterministic.
func Score(quiz *quizgen.Quiz, answers AnswerSet) Result {
	res := Result{
		TotalCount:  len(quiz.Questions),
		PerQuestion: make([]bool, len(quiz.Questions)),
	}
	for i, q := range quiz.Questions {
		picked, answered := answers[i]
		if answered && picked == q.Correct {
			res.PerQuestion[i] = true
			res.CorrectCount++
		}
	}
	return res
}
