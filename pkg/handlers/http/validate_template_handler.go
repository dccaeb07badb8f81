package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/AgentPulse/TriggerDeck/pkg/handlers/http/request"
	"github.com/AgentPulse/TriggerDeck/pkg/infra/prometheus"
	"github.com/AgentPulse/TriggerDeck/pkg/sanitize"
)

type validateTemplateHandler struct {
	logger *logrus.Logger
}

func NewValidateTemplateHandler(logger *logrus.Logger) Handler {
	return &validateTemplateHandler{
		logger: logger,
	}
}

// Handle @Summary Validate a message template
// @Description Checks every {{variable}} reference in a template against the allow-list
// @Tags Validation
// @Accept json
// @Produce json
// @Param body body request.ValidateTemplateRequest true "Message template"
// @Success 200 {object} sanitize.TemplateValidation "Validation outcome"
// @Router /api/v1/validation/template [post]
func (h *validateTemplateHandler) Handle(c *fiber.Ctx) error {
	var req request.ValidateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	prometheus.ValidationTotal.WithLabelValues("template").Inc()

	res := sanitize.ValidateTemplateVariables(req.Template)
	if !res.IsValid {
		prometheus.ValidationRejectedTotal.WithLabelValues("template", sanitize.ReasonPolicyRejected).Inc()
		h.logger.WithField("invalid_vars", len(res.InvalidVars)).Warn("rejected message template")
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
