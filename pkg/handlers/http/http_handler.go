package http

import (
	"github.com/gofiber/fiber/v2"
)

const ErrInvalidJsonPayload = "invalid json payload"

type Handler interface {
	Handle(c *fiber.Ctx) error
}

// HandlerTransport groups the handlers the router mounts.
type HandlerTransport struct {
	ValidateWebhookHandler  Handler
	ValidateTemplateHandler Handler
	SanitizeConfigHandler   Handler
	RenderConfigHandler     Handler
	ValidateActionHandler   Handler
	GetVersionHandler       Handler
}
