package quiz

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/middleware"
	"github.com/quizforge/quizforge/internal/providers"
	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/session"
	"github.com/quizforge/quizforge/internal/telemetry"
	"github.com/quizforge/quizforge/internal/ws"
)

type Handler struct {
	cfg   *config.Config
	gen   *quizgen.Generator
	store session.Store
}

// BuildProvider picks the configured client. GEN_PROVIDER wins; with no
// explicit choice the first provider with a key set is used.
func BuildProvider(cfg *config.Config) providers.Client {
	opts := func(key, model string) providers.Options {
		return providers.Options{
			Key: key, Model: model,
			RPS: cfg.ProviderRPS, Burst: cfg.ProviderBurst,
			DryRun: cfg.ProviderDryRun,
		}
	}
	switch cfg.GenProvider {
	case "openai":
		return providers.NewOpenAI(opts(cfg.OpenAIKey, cfg.OpenAIModel))
	case "anthropic":
		return providers.NewAnthropic(opts(cfg.AnthropicKey, cfg.AnthropicModel))
	case "gemini":
		return providers.NewGemini(opts(cfg.GeminiKey, cfg.GeminiModel))
	}
	if cfg.GeminiKey != "" {
		return providers.NewGemini(opts(cfg.GeminiKey, cfg.GeminiModel))
	}
	if cfg.OpenAIKey != "" {
		return providers.NewOpenAI(opts(cfg.OpenAIKey, cfg.OpenAIModel))
	}
	return providers.NewAnthropic(opts(cfg.AnthropicKey, cfg.AnthropicModel))
}

func NewHandler(cfg *config.Config, client providers.Client, store session.Store) *Handler {
	return &Handler{
		cfg:   cfg,
		gen:   quizgen.NewGenerator(client, cfg.QuestionCount),
		store: store,
	}
}

type createQuizBody struct {
	SourceText string `json:"source_text"`
	Difficulty string `json:"difficulty"`
}

func (h *Handler) CreateQuiz(c *fiber.Ctx) error {
	sid := mustSessionID(c)
	rid, _ := c.Locals(middleware.ReqIDKey).(string)
	log := telemetry.L().With().Str("req_id", rid).Str("session_id", sid).Logger()

	var body createQuizBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	diff, err := quizgen.ParseDifficulty(body.Difficulty)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "difficulty must be easy, medium or hard"})
	}
	req := quizgen.Request{SourceText: body.SourceText, Difficulty: diff}

	ctx, cancel := context.WithTimeout(c.Context(), h.cfg.ProviderTimeout)
	defer cancel()

	generated, err := h.gen.Generate(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("quiz_generate_failed")
		ws.BroadcastError(sid, "could not generate quiz, please try again")
		return h.generationError(c, err)
	}

	sess, err := h.store.Get(c.Context(), sid)
	if errors.Is(err, session.ErrNotFound) {
		sess = session.New(sid)
	} else if err != nil {
		log.Error().Err(err).Msg("session_load_failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session store error"})
	}

	sess.BeginQuiz(req, generated)
	if err := h.store.Save(c.Context(), sess); err != nil {
		log.Error().Err(err).Msg("session_save_failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session store error"})
	}

	log.Info().Int("questions", len(generated.Questions)).Str("difficulty", string(diff)).Msg("quiz_generated")
	ws.BroadcastQuizGenerated(sid, len(generated.Questions))
	return c.Status(fiber.StatusCreated).JSON(viewQuiz(generated, nil, false))
}

func (h *Handler) GetCurrentQuiz(c *fiber.Ctx) error {
	sess, ok := h.currentSession(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no active quiz"})
	}
	return c.JSON(viewQuiz(sess.Quiz, sess.Answers, sess.Scored()))
}

type answerBody struct {
	Option int `json:"option"`
}

func (h *Handler) RecordAnswer(c *fiber.Ctx) error {
	sid := mustSessionID(c)

	sess, ok := h.currentSession(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no active quiz"})
	}
	if sess.Scored() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "quiz already scored"})
	}

	idx, err := strconv.Atoi(c.Params("index"))
	if err != nil || idx < 0 || idx >= len(sess.Quiz.Questions) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "question index out of range"})
	}

	var body answerBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if body.Option < 0 || body.Option >= quizgen.OptionsPerQuestion {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "option index out of range"})
	}

	sess.RecordAnswer(idx, body.Option)
	if err := h.store.Save(c.Context(), sess); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session store error"})
	}

	ws.BroadcastAnswered(sid, idx, body.Option)
	return c.JSON(fiber.Map{"question": idx, "option": body.Option, "answered": len(sess.Answers)})
}

// ScoreQuiz is idempotent: once a quiz is scored, repeat calls return
// the pinned result instead of recomputing against mutated answers.
func (h *Handler) ScoreQuiz(c *fiber.Ctx) error {
	sid := mustSessionID(c)
	rid, _ := c.Locals(middleware.ReqIDKey).(string)
	log := telemetry.L().With().Str("req_id", rid).Str("session_id", sid).Logger()

	sess, ok := h.currentSession(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no active quiz"})
	}

	if sess.Scored() {
		return c.JSON(viewScore(sess.Quiz, *sess.Result))
	}

	res := sess.Finish()
	if err := h.store.Save(c.Context(), sess); err != nil {
		log.Error().Err(err).Msg("session_save_failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "session store error"})
	}

	log.Info().Int("correct", res.CorrectCount).Int("total", res.TotalCount).Msg("quiz_scored")
	ws.BroadcastScored(sid, res)
	return c.JSON(viewScore(sess.Quiz, res))
}

func (h *Handler) generationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, quizgen.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "source text must not be empty"})
	case errors.Is(err, quizgen.ErrMalformedResponse), errors.Is(err, quizgen.ErrUpstreamUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not generate quiz, please try again"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

func (h *Handler) currentSession(c *fiber.Ctx) (*session.Session, bool) {
	sid := mustSessionID(c)
	sess, err := h.store.Get(c.Context(), sid)
	if err != nil || sess.Quiz == nil {
		return nil, false
	}
	return sess, true
}

func mustSessionID(c *fiber.Ctx) string {
	sid, ok := c.Locals(middleware.SessionIDKey).(string)
	if !ok {
		return ""
	}
	return sid
}
