package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/SscSPs/ipt_portal_app/internal/core/services"
	"github.com/SscSPs/ipt_portal_app/internal/handlers"
	"github.com/SscSPs/ipt_portal_app/internal/middleware"
	"github.com/SscSPs/ipt_portal_app/internal/platform/config"
	"github.com/SscSPs/ipt_portal_app/internal/repositories/jsonstore"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the document store; seeds itself on first run or corruption.
	store, err := jsonstore.Open(cfg.StoreFilePath, logger)
	if err != nil {
		logger.Error("Failed to open document store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Document store ready", slog.String("path", cfg.StoreFilePath))

	repos := jsonstore.NewRepositoryProvider(store)
	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Cookie session for transient state (pending email verification)
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("ipt_session", sessionStore))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
