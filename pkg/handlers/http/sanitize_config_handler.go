package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/AgentPulse/TriggerDeck/pkg/handlers/http/request"
	"github.com/AgentPulse/TriggerDeck/pkg/infra/prometheus"
	"github.com/AgentPulse/TriggerDeck/pkg/sanitize"
)

type sanitizeConfigHandler struct {
	logger *logrus.Logger
	json   *sanitize.JSONSanitizer
}

func NewSanitizeConfigHandler(logger *logrus.Logger, json *sanitize.JSONSanitizer) Handler {
	return &sanitizeConfigHandler{
		logger: logger,
		json:   json,
	}
}

// Handle @Summary Validate and normalize raw config JSON
// @Description Submit-time validation of user edited action or condition config text
// @Tags Validation
// @Accept json
// @Produce json
// @Param body body request.SanitizeConfigRequest true "Raw config JSON text"
// @Success 200 {object} map[string]interface{} "Normalized config"
// @Failure 422 {object} map[string]interface{} "Config rejected"
// @Router /api/v1/validation/config [post]
func (h *sanitizeConfigHandler) Handle(c *fiber.Ctx) error {
	var req request.SanitizeConfigRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	// Editor keystroke feedback wants a yes/no on syntax only; the full
	// pollution scan runs on submit.
	if req.SyntaxOnly {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"valid": sanitize.IsValidJSON(req.Config),
		})
	}

	prometheus.ValidationTotal.WithLabelValues("config_json").Inc()

	normalized, ok := h.json.Sanitize(req.Config)
	if !ok {
		reason := sanitize.ReasonPolicyRejected
		if !sanitize.IsValidJSON(req.Config) {
			reason = sanitize.ReasonSyntaxInvalid
		}
		prometheus.ValidationRejectedTotal.WithLabelValues("config_json", reason).Inc()
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"valid": false,
			"error": "config must be valid json without reserved keys",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"valid":      true,
		"normalized": normalized,
	})
}
