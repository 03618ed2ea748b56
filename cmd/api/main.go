package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"multilingual-chat/config"
	_ "multilingual-chat/docs" // Swagger docs
	chatHTTP "multilingual-chat/internal/chat/delivery/http"
	"multilingual-chat/internal/chat/repository/inmemory"
	"multilingual-chat/internal/chat/usecase"
	"multilingual-chat/internal/httpserver"
	"multilingual-chat/internal/middleware"
	"multilingual-chat/internal/orchestrator"
	"multilingual-chat/pkg/log"
	"multilingual-chat/pkg/speech"
	"multilingual-chat/pkg/translate"
)

// @title       Multilingual Chat API
// @description Multilingual chat service with session-scoped prompt orchestration and graceful model fallback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Multilingual Chat...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Response backend: model-backed when configured and reachable,
	// deterministic template responder otherwise.
	responder := orchestrator.NewResponder(ctx, cfg.Model.URL, cfg.Model.GenerationConfig, logger)
	registry := orchestrator.NewRegistry(responder)

	// History audit log
	historyRepo := inmemory.New()

	// Language detection (optional Google Translate)
	var detector translate.Detector = translate.NewStaticDetector(orchestrator.DefaultTargetLanguage)
	if cfg.Translate.CredentialsPath != "" {
		googleDetector, gdErr := translate.NewGoogleDetectorFromCredentialsFile(ctx, cfg.Translate.CredentialsPath)
		if gdErr != nil {
			logger.Warnf(ctx, "Google Translate not available (optional): %v", gdErr)
			logger.Warn(ctx, "→ Run `go run scripts/gtranslate-auth/main.go` to generate token.json")
		} else {
			logger.Info(ctx, "✅ Google Translate detection initialized")
			detector = googleDetector
		}
	}

	// Speech synthesis placeholder
	synthesizer := speech.NewStubSynthesizer()

	// Chat UseCase + delivery
	chatUC := usecase.New(logger, registry, historyRepo, synthesizer, detector)
	chatHandler := chatHTTP.New(logger, chatUC)

	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
	})

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		IndexFile:   cfg.Chat.IndexFile,
		Middleware:  mw,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
