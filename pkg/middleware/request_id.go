package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/AgentPulse/TriggerDeck/pkg/common"
)

type requestIdMiddleware struct {
	logger *logrus.Logger
}

// NewRequestIdMiddleware tags every request with an id so a rejection in
// the logs can be matched to the form submission that triggered it.
func NewRequestIdMiddleware(logger *logrus.Logger) Middleware {
	return &requestIdMiddleware{
		logger: logger,
	}
}

func (m *requestIdMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(common.RequestIdContextKey, id)
		c.Set("X-Request-ID", id)
		return c.Next()
	}
}
