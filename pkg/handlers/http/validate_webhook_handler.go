package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/AgentPulse/TriggerDeck/pkg/handlers/http/request"
	"github.com/AgentPulse/TriggerDeck/pkg/infra/prometheus"
	"github.com/AgentPulse/TriggerDeck/pkg/sanitize"
)

type validateWebhookHandler struct {
	logger  *logrus.Logger
	webhook *sanitize.WebhookValidator
}

func NewValidateWebhookHandler(logger *logrus.Logger, webhook *sanitize.WebhookValidator) Handler {
	return &validateWebhookHandler{
		logger:  logger,
		webhook: webhook,
	}
}

// Handle @Summary Validate a webhook endpoint URL
// @Description Screens a user supplied webhook URL against the SSRF policy before it may be stored
// @Tags Validation
// @Accept json
// @Produce json
// @Param body body request.ValidateWebhookRequest true "Webhook URL"
// @Success 200 {object} map[string]interface{} "URL accepted"
// @Failure 422 {object} map[string]interface{} "URL rejected"
// @Router /api/v1/validation/webhook-url [post]
func (h *validateWebhookHandler) Handle(c *fiber.Ctx) error {
	var req request.ValidateWebhookRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	prometheus.ValidationTotal.WithLabelValues("webhook_url").Inc()

	url, ok := h.webhook.Sanitize(req.URL)
	if !ok {
		prometheus.ValidationRejectedTotal.WithLabelValues("webhook_url", sanitize.ReasonPolicyRejected).Inc()
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"valid": false,
			"error": "endpoint is not an acceptable webhook target",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"valid": true,
		"url":   url,
	})
}
