package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"
)

type wireQuiz struct {
	Questions []wireQuestion `json:"questions"`
}

type wireQuestion struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  *int     `json:"answer"`
}

// parseQuiz validates the raw model output against the requested shape.
// Every violation is ErrMalformedResponse: a quiz is accepted whole or
// not at all, since a repaired answer key would corrupt scoring.
func parseQuiz(raw string, difficulty Difficulty, count int) (*Quiz, error) {
	cleaned := stripCodeFence(raw)

	var w wireQuiz
	if err := json.Unmarshal([]byte(cleaned), &w); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrMalformedResponse, err)
	}
	if len(w.Questions) != count {
		return nil, fmt.Errorf("%w: expected %d questions, got %d", ErrMalformedResponse, count, len(w.Questions))
	}

	quiz := &Quiz{Difficulty: difficulty, Questions: make([]Question, 0, count)}
	for i, q := range w.Questions {
		if strings.TrimSpace(q.Prompt) == "" {
			return nil, fmt.Errorf("%w: question %d has empty prompt", ErrMalformedResponse, i)
		}
		if len(q.Options) != OptionsPerQuestion {
			return nil, fmt.Errorf("%w: question %d has %d options", ErrMalformedResponse, i, len(q.Options))
		}
		seen := make(map[string]struct{}, OptionsPerQuestion)
		for j, opt := range q.Options {
			key := strings.ToLower(strings.TrimSpace(opt))
			if key == "" {
				return nil, fmt.Errorf("%w: question %d option %d is empty", ErrMalformedResponse, i, j)
			}
			if _, dup := seen[key]; dup {
				return nil, fmt.Errorf("%w: question %d has duplicate option %q", ErrMalformedResponse, i, opt)
			}
			seen[key] = struct{}{}
		}
		if q.Answer == nil {
			return nil, fmt.Errorf("%w: question %d is missing answer index", ErrMalformedResponse, i)
		}
		if *q.Answer < 0 || *q.Answer >= OptionsPerQuestion {
			return nil, fmt.Errorf("%w: question %d answer index %d out of range", ErrMalformedResponse, i, *q.Answer)
		}
		quiz.Questions = append(quiz.Questions, Question{
			Prompt:  q.Prompt,
			Options: q.Options,
			Correct: *q.Answer,
		})
	}
	return quiz, nil
}

// stripCodeFence tolerates a ```json wrapper around the payload; models
// add one despite instructions. Anything else is left untouched.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
