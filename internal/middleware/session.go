package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/config"
)

const SessionIDKey = "sessionID"

// SessionCookie issues a session ID cookie on first contact and exposes
// the ID to handlers via locals. The session record itself lives in the
// store, keyed by this ID.
func SessionCookie(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(cfg.SessionCookieName)
		if sid == "" {
			sid = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     cfg.SessionCookieName,
				Value:    sid,
				HTTPOnly: true,
				SameSite: "Lax",
				MaxAge:   int(cfg.SessionTTL.Seconds()),
			})
		}
		c.Locals(SessionIDKey, sid)
		return c.Next()
	}
}
