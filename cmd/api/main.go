package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/quizforge/quizforge/internal/cache"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/health"
	"github.com/quizforge/quizforge/internal/middleware"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/session"
	"github.com/quizforge/quizforge/internal/telemetry"
	"github.com/quizforge/quizforge/internal/ws"
)

func main() {
	cfg := config.Load()
	rdb := cache.MustConnect(cfg.RedisAddr, cfg.RedisDB)

	tlog := telemetry.Init(telemetry.FromEnv(config.GetEnv))

	client := quiz.BuildProvider(cfg)
	tlog.Info().
		Str("port", cfg.AppPort).
		Str("provider", string(client.Name())).
		Int("question_count", cfg.QuestionCount).
		Msg("booting quizforge")

	store := session.NewRedisStore(rdb, cfg.SessionTTL)
	qh := quiz.NewHandler(cfg, client, store)

	app := fiber.New()

	app.Use(middleware.RequestID())
	app.Use(middleware.Recover())
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.RequestLog())
	app.Use(middleware.RateLimiter())
	app.Use(middleware.SecureHeaders())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/readyz", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		if err := health.Ready(ctx, rdb, client.Name()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendString("ok")
	})

	api := app.Group("/api/v1", middleware.SessionCookie(cfg))
	api.Post("/quizzes", qh.CreateQuiz)
	api.Get("/quizzes/current", qh.GetCurrentQuiz)
	api.Put("/quizzes/current/answers/:index", qh.RecordAnswer)
	api.Post("/quizzes/current/score", qh.ScoreQuiz)

	app.Get("/ws", websocket.New(ws.HandleWS))

	log.Fatal(app.Listen(":" + cfg.AppPort))
}
