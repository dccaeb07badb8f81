package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/AgentPulse/TriggerDeck/pkg/app/action"
	"github.com/AgentPulse/TriggerDeck/pkg/handlers/http/request"
	"github.com/AgentPulse/TriggerDeck/pkg/infra/prometheus"
	"github.com/AgentPulse/TriggerDeck/pkg/sanitize"
)

type validateActionHandler struct {
	logger    *logrus.Logger
	validator *action.Validator
}

func NewValidateActionHandler(logger *logrus.Logger, validator *action.Validator) Handler {
	return &validateActionHandler{
		logger:    logger,
		validator: validator,
	}
}

// Handle @Summary Validate a complete trigger action config
// @Description Screens every untrusted field of a rest action before the trigger form may persist it
// @Tags Validation
// @Accept json
// @Produce json
// @Param body body request.ValidateActionRequest true "Action config"
// @Success 200 {object} action.Result "All fields accepted"
// @Failure 422 {object} action.Result "One or more fields rejected"
// @Router /api/v1/validation/action [post]
func (h *validateActionHandler) Handle(c *fiber.Ctx) error {
	var req request.ValidateActionRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	prometheus.ValidationTotal.WithLabelValues("action").Inc()

	res, err := h.validator.Validate(c.Context(), req.ActionType, req.Settings)
	if err != nil {
		// Shape errors carry user input; redact before echoing.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": sanitize.SanitizeError(err)})
	}

	if !res.Valid {
		prometheus.ValidationRejectedTotal.WithLabelValues("action", sanitize.ReasonPolicyRejected).Inc()
		return c.Status(fiber.StatusUnprocessableEntity).JSON(res)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
