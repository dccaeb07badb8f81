package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/AgentPulse/TriggerDeck/pkg/app/action"
	"github.com/AgentPulse/TriggerDeck/pkg/config"
	handlers "github.com/AgentPulse/TriggerDeck/pkg/handlers/http"
	infraLogger "github.com/AgentPulse/TriggerDeck/pkg/infra/logger"
	"github.com/AgentPulse/TriggerDeck/pkg/middleware"
	"github.com/AgentPulse/TriggerDeck/pkg/sanitize"
	"github.com/AgentPulse/TriggerDeck/pkg/server"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.WithError(err).Warn("failed to load config file, using defaults")
	}
	cfg := config.GetConfig()

	webhookValidator := sanitize.NewWebhookValidator(logger, cfg.Validation.ProductionMode)
	jsonSanitizer := sanitize.NewJSONSanitizer(logger)
	actionValidator := action.NewValidator(logger, webhookValidator, jsonSanitizer)

	handlerTransport := handlers.HandlerTransport{
		ValidateWebhookHandler:  handlers.NewValidateWebhookHandler(logger, webhookValidator),
		ValidateTemplateHandler: handlers.NewValidateTemplateHandler(logger),
		SanitizeConfigHandler:   handlers.NewSanitizeConfigHandler(logger, jsonSanitizer),
		RenderConfigHandler:     handlers.NewRenderConfigHandler(logger),
		ValidateActionHandler:   handlers.NewValidateActionHandler(logger, actionValidator),
		GetVersionHandler:       handlers.NewGetVersionHandler(logger),
	}

	middlewareTransport := middleware.Transport{
		RequestIdMiddleware: middleware.NewRequestIdMiddleware(logger),
	}

	consoleServer := server.NewConsoleServer(server.ConsoleServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := consoleServer.Run(); err != nil {
			logger.WithError(err).Fatal("console server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down console server")
	if err := consoleServer.Shutdown(); err != nil {
		logger.WithError(err).Error("error during shutdown")
	}
}
