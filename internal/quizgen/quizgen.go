package quizgen

import (
	"errors"
	"fmt"
	"strings"
)

// Failure taxonomy for Generate. All three are terminal for the current
// request; retry is the caller's policy.
var (
	ErrInvalidInput        = errors.New("quizgen: invalid input")
	ErrUpstreamUnavailable = errors.New("quizgen: upstream unavailable")
	ErrMalformedResponse   = errors.New("quizgen: malformed response")
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case Easy:
		return Easy, nil
	case Medium:
		return Medium, nil
	case Hard:
		return Hard, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, s)
	}
}

// Request is one user submission. Immutable once built.
type Request struct {
	SourceText string     `json:"source_text"`
	Difficulty Difficulty `json:"difficulty"`
}

// Question holds exactly OptionsPerQuestion options in display order.
// Correct is the zero-based index into Options.
type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

type Quiz struct {
	Questions  []Question `json:"questions"`
	Difficulty Difficulty `json:"difficulty"`
}

const OptionsPerQuestion = 4
