package main

import (
	"context"
	"log"

	"github.com/BerylCAtieno/growth-toolkit-agent/internal/a2a"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/config"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/logging"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/profiler"
	"github.com/BerylCAtieno/growth-toolkit-agent/internal/valueprop"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	// The Gemini suggester is optional; without a key the built-in
	// industry examples fill empty customer profiles.
	var suggester profiler.Suggester = profiler.ExampleSuggester{}
	if cfg.ProfilerEnabled() {
		geminiClient, err := profiler.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			logger.Fatal("failed to create Gemini client", zap.Error(err))
		}
		defer geminiClient.Close()
		suggester = geminiClient
		logger.Info("Gemini profile suggestions enabled", zap.String("model", cfg.GeminiModel))
	} else {
		logger.Info("GEMINI_API_KEY not set, using built-in industry examples")
	}

	a2aHandler := a2a.NewA2AHandler(suggester, valueprop.NewGenerator(nil), logger)
	router := a2a.NewRouter(a2aHandler, logger)

	logger.Info("Growth Toolkit Agent starting",
		zap.String("port", cfg.Port),
		zap.String("agent_card", "http://localhost:"+cfg.Port+"/.well-known/agent.json"),
		zap.String("a2a_endpoint", "http://localhost:"+cfg.Port+"/a2a/toolkit"))

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}
