package quizgen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quizforge/quizforge/internal/providers"
	"github.com/quizforge/quizforge/internal/telemetry"
)

// Generator turns a Request into a validated Quiz via one provider call.
// It holds no state across calls.
type Generator struct {
	client providers.Client
	count  int
}

func NewGenerator(client providers.Client, questionCount int) *Generator {
	if questionCount <= 0 {
		questionCount = 5
	}
	return &Generator{client: client, count: questionCount}
}

func (g *Generator) QuestionCount() int { return g.count }

// Generate validates the request, asks the provider for a quiz, and
// parses the response strictly. Fails with ErrInvalidInput before any
// network call, ErrUpstreamUnavailable on provider failure, or
// ErrMalformedResponse when the reply does not match the schema.
func (g *Generator) Generate(ctx context.Context, req Request) (*Quiz, error) {
	if strings.TrimSpace(req.SourceText) == "" {
		return nil, fmt.Errorf("%w: empty source text", ErrInvalidInput)
	}
	if _, err := ParseDifficulty(string(req.Difficulty)); err != nil {
		return nil, err
	}

	log := telemetry.L().With().
		Str("provider", string(g.client.Name())).
		Str("difficulty", string(req.Difficulty)).
		Logger()

	prompt := BuildPrompt(req, g.count)
	log.Debug().Int("prompt_len", len(prompt)).Msg("prompt_built")

	t0 := time.Now()
	raw, err := g.client.Complete(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("provider_complete_error")
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	log.Info().Int("latency_ms", int(time.Since(t0)/time.Millisecond)).Int("raw_len", len(raw)).Msg("provider_done")

	quiz, err := parseQuiz(raw, req.Difficulty, g.count)
	if err != nil {
		log.Error().Err(err).Msg("quiz_parse_error")
		return nil, err
	}
	return quiz, nil
}
