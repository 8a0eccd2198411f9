package main

import (
	"context"
	"log"
	"time"

	"telebuddy/backend/database"
	"telebuddy/backend/internal/handlers"
	"telebuddy/shared/config"
	"telebuddy/shared/env"
	"telebuddy/shared/logger"
	"telebuddy/shared/notifications"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func startHeartbeat(appLogger *logger.Logger) {
	go func() {
		ticker := time.NewTicker(8 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			appLogger.Info("Heartbeat: TeleBuddy backend running...")
		}
	}()
}

func main() {
	if err := env.LoadEnv(); err != nil {
		log.Fatalf("FATAL: Failed to load environment variables: %v", err)
	}
	log.Println("INFO: Environment variables loaded via shared/env.")

	enableTelegramLogging := env.TelegramBotToken != "" && env.TelegramGroupID != 0
	appLogger, err := logger.NewLogger(logger.Config{
		Level:          env.LogLevel,
		Environment:    env.Environment,
		EnableTelegram: enableTelegramLogging,
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize logger: %v", err)
	}
	appLogger.Info("Application logger initialized successfully.")

	if enableTelegramLogging {
		if err := notifications.InitTelegramBot(); err != nil {
			appLogger.Warn("Failed to initialize Telegram notifications, proceeding without them", "error", err)
		} else {
			appLogger.Info("Telegram notifications initialized.")
		}
	}

	cfg, errCfg := config.LoadConfig("config.yaml")
	if errCfg != nil {
		appLogger.Warn("Failed to load config.yaml, continuing with environment values", "error", errCfg)
	} else {
		config.SetGlobalConfig(cfg)
		appLogger.Info("Application configuration loaded.")
	}

	databaseURL := env.DatabaseURL
	databaseName := env.DatabaseName
	if cfg != nil {
		if databaseURL == "" {
			databaseURL = cfg.Database.URI
		}
		if databaseName == "" {
			databaseName = cfg.Database.Name
		}
	}

	// The store is optional: without it the API keeps serving, reads come
	// back empty and writes fail with 503.
	var db *database.Store
	if databaseURL != "" && databaseName != "" {
		appLogger.Info("Connecting to database...")
		db, err = database.Connect(context.Background(), databaseURL, databaseName, appLogger)
		if err != nil {
			appLogger.Warn("Database connection failed, running in degraded mode", "error", err)
			db = nil
		}
	} else {
		appLogger.Warn("DATABASE_URL or DATABASE_NAME not configured, running in degraded mode")
	}

	appLogger.Info("Setting up web server...")
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))
	appLogger.Info("CORS middleware configured.")

	handlers.RegisterRoutes(router, appLogger)
	handlers.RegisterAPIRoutes(router, appLogger, db)
	appLogger.Info("Web server and API routes registered.")

	startHeartbeat(appLogger)

	serverAddr := ":" + env.Port
	appLogger.Info("Starting web server", "address", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		appLogger.Fatal("Could not start web server.", "error", err)
	}
}
