package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/AgentPulse/TriggerDeck/pkg/handlers/http/request"
	"github.com/AgentPulse/TriggerDeck/pkg/sanitize"
)

type renderConfigHandler struct {
	logger *logrus.Logger
}

func NewRenderConfigHandler(logger *logrus.Logger) Handler {
	return &renderConfigHandler{
		logger: logger,
	}
}

// Handle @Summary Render a config value for display
// @Description Produces a display string that is safe to insert as plain text
// @Tags Validation
// @Accept json
// @Produce json
// @Param body body request.RenderConfigRequest true "Arbitrary config value"
// @Success 200 {object} map[string]interface{} "Safe display string"
// @Router /api/v1/validation/render [post]
func (h *renderConfigHandler) Handle(c *fiber.Ctx) error {
	var req request.RenderConfigRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	display := sanitize.RenderConfigValue(sanitize.ConfigValueOf(req.Value))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"display": display,
	})
}
