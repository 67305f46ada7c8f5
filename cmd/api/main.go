package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"travel-planner/config"
	_ "travel-planner/docs" // Swagger docs
	"travel-planner/internal/httpserver"
	"travel-planner/internal/middleware"
	plannerHTTP "travel-planner/internal/planner/delivery/http"
	"travel-planner/internal/planner/repository/memory"
	plannerUC "travel-planner/internal/planner/usecase"
	"travel-planner/pkg/gcalendar"
	"travel-planner/pkg/log"
	"travel-planner/pkg/openrouter"
	"travel-planner/pkg/serper"
)

// @title       Travel Planner API
// @description AI-powered travel itinerary generator with web search, streaming LLM generation, and calendar export.
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

	logger.Info(ctx, "Starting Travel Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. OpenRouter LLM client (required)
	llm, err := openrouter.New(openrouter.Config{
		APIKey:  cfg.OpenRouter.APIKey,
		BaseURL: cfg.OpenRouter.BaseURL,
		Model:   cfg.OpenRouter.Model,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenRouter client: ", err)
		return
	}
	logger.Infof(ctx, "OpenRouter model: %s", llm.Model())

	// 4. Serper search client (optional; generation degrades without it)
	var search serper.ISerper
	if cfg.Serper.APIKey != "" {
		search, err = serper.New(serper.Config{
			APIKey:      cfg.Serper.APIKey,
			Endpoint:    cfg.Serper.Endpoint,
			Retries:     cfg.Serper.Retries,
			ResultCount: cfg.Serper.ResultCount,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Serper client: ", err)
			return
		}
	} else {
		logger.Warn(ctx, "SERPER_API_KEY missing, plans will be generated without search context")
	}

	// 5. Google Calendar client (optional)
	var calendar plannerUC.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gcal, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = gcal
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Plan repository
	repo, err := memory.New(logger, memory.DefaultCapacity)
	if err != nil {
		logger.Error(ctx, "Failed to initialize plan store: ", err)
		return
	}

	// 7. UseCase and HTTP delivery
	uc := plannerUC.New(logger, search, llm, repo, calendar, plannerUC.Config{
		ChunkSize:  cfg.Planner.ChunkSize,
		MaxDays:    cfg.Planner.MaxDays,
		CalendarID: cfg.GoogleCalendar.CalendarID,
	})
	handler := plannerHTTP.New(logger, uc)
	mw := middleware.New(logger, cfg.Planner.RateLimitPerMin)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		PlannerHandler: handler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
