// Package session holds the per-browser pipeline state: request, quiz,
// answers, and score, in that order. One active quiz per session.
package session

import (
	"time"

	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/scoring"
)

type Session struct {
	ID        string            `json:"id"`
	Request   *quizgen.Request  `json:"request,omitempty"`
	Quiz      *quizgen.Quiz     `json:"quiz,omitempty"`
	Answers   scoring.AnswerSet `json:"answers,omitempty"`
	Result    *scoring.Result   `json:"result,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func New(id string) *Session {
	now := time.Now().UTC()
	return &Session{ID: id, CreatedAt: now, UpdatedAt: now}
}

// BeginQuiz installs a freshly generated quiz and discards the previous
// one along with its answers and result.
func (s *Session) BeginQuiz(req quizgen.Request, quiz *quizgen.Quiz) {
	s.Request = &req
	s.Quiz = quiz
	s.Answers = scoring.AnswerSet{}
	s.Result = nil
	s.UpdatedAt = time.Now().UTC()
}

// Scored reports whether the current quiz has already been submitted.
func (s *Session) Scored() bool { return s.Result != nil }

// RecordAnswer stores one selection. Re-answering a question before
// scoring overwrites the earlier choice.
func (s *Session) RecordAnswer(question, option int) {
	if s.Answers == nil {
		s.Answers = scoring.AnswerSet{}
	}
	s.Answers[question] = option
	s.UpdatedAt = time.Now().UTC()
}

// Finish computes and pins the score for the current quiz.
func (s *Session) Finish() scoring.Result {
	res := scoring.Score(s.Quiz, s.Answers)
	s.Result = &res
	s.UpdatedAt = time.Now().UTC()
	return res
}
