package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/AgentPulse/TriggerDeck/pkg/config"
	handlers "github.com/AgentPulse/TriggerDeck/pkg/handlers/http"
	"github.com/AgentPulse/TriggerDeck/pkg/middleware"
)

type (
	ConsoleServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	ConsoleServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewConsoleServer(di ConsoleServerDI) *ConsoleServer {
	return &ConsoleServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *ConsoleServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()
	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting console validation server")
	return s.Router.Listen(addr)
}

func (s *ConsoleServer) setupRoutes() {
	s.Router.Use(s.middlewareTransport.RequestIdMiddleware.Middleware())

	s.Router.Get("/version", s.handlerTransport.GetVersionHandler.Handle)

	v1 := s.Router.Group("/api/v1")
	{
		validation := v1.Group("/validation")
		{
			validation.Post("/webhook-url", s.handlerTransport.ValidateWebhookHandler.Handle)
			validation.Post("/template", s.handlerTransport.ValidateTemplateHandler.Handle)
			validation.Post("/config", s.handlerTransport.SanitizeConfigHandler.Handle)
			validation.Post("/render", s.handlerTransport.RenderConfigHandler.Handle)
			validation.Post("/action", s.handlerTransport.ValidateActionHandler.Handle)
		}
	}
}

func (s *ConsoleServer) Shutdown() error {
	return s.Router.Shutdown()
}

var _ Server = (*ConsoleServer)(nil)
