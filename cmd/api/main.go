package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "botforge-backend/docs"
	"botforge-backend/internal/common/config"
	"botforge-backend/internal/common/logger"
	"botforge-backend/internal/common/middleware"
	assistantHTTP "botforge-backend/internal/features/assistant/delivery/http"
	assistantService "botforge-backend/internal/features/assistant/service"
	profileHTTP "botforge-backend/internal/features/profile/delivery/http"
	"botforge-backend/internal/features/profile/repository"
	memoryRepo "botforge-backend/internal/features/profile/repository/memory"
	profileRepo "botforge-backend/internal/features/profile/repository/redis"
	profileService "botforge-backend/internal/features/profile/service"
	sessionHTTP "botforge-backend/internal/features/session/delivery/http"
	sessionService "botforge-backend/internal/features/session/service"
	"botforge-backend/internal/platform/gemini"
	redisplatform "botforge-backend/internal/platform/redis"
)

// @title           BotForge API
// @version         1.0
// @description     API server for the BotForge dashboard: chat, image generation, voice synthesis, background editing and the local gamification layer.

// @host      localhost:8080
// @BasePath  /api/v1

// @tag.name profile
// @tag.description User profile, botcoins, levels and activity history

// @tag.name session
// @tag.description Screen state machine - intro, auth, replay and dashboard

// @tag.name assistant
// @tag.description AI operations - chat, images, voice and background editing

func main() {
	// Инициализируем конфигурацию
	cfg := config.Load()

	// Инициализируем логгер
	logger.Init("botforge-backend", cfg.Debug)

	logger.Info().
		Str("version", "1.0.0").
		Bool("debug", cfg.Debug).
		Msg("Starting BotForge Backend")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Инициализируем Redis. Без него работаем на in-memory хранилище:
	// прогресс не переживёт рестарт, но API остаётся доступным.
	var repo repository.ProfileRepository
	redisAddr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	redisClient, err := redisplatform.Open(ctx, redisAddr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Warn().Err(err).Str("addr", redisAddr).Msg("Redis unavailable, falling back to in-memory storage")
		repo = memoryRepo.NewProfileRepository()
	} else {
		defer redisClient.Close()
		repo = profileRepo.NewProfileRepository(redisClient)
		logger.Info().Str("addr", redisAddr).Msg("Redis connection established")
	}

	// Инициализируем клиент Gemini
	aiClient, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:     cfg.Gemini.APIKey,
		ChatModel:  cfg.Gemini.ChatModel,
		ImageModel: cfg.Gemini.ImageModel,
		TTSModel:   cfg.Gemini.TTSModel,
		Voice:      cfg.Gemini.Voice,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize Gemini client")
	}

	// Инициализируем сервисы
	profileSvc := profileService.NewProfileService(repo)
	profileSvc.Load(ctx)

	sessionSvc := sessionService.NewSessionService(
		sessionService.NewAllowAllAuthenticator(),
		time.Duration(cfg.Session.IntroDuration)*time.Millisecond,
		time.Duration(cfg.Session.ReplayDuration)*time.Millisecond,
	)

	assistantSvc := assistantService.NewAssistantService(aiClient, profileSvc)

	logger.Info().Msg("Services initialized")

	// Настраиваем Gin
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Добавляем middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Errors())
	router.Use(middleware.Logger())

	// Настраиваем CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept"}
	router.Use(cors.New(corsConfig))

	// Настраиваем роуты
	v1 := router.Group("/api/v1")
	profileHTTP.NewProfileHandler(profileSvc).RegisterRoutes(v1)
	sessionHTTP.NewSessionHandler(sessionSvc).RegisterRoutes(v1)
	assistantHTTP.NewAssistantHandler(assistantSvc).RegisterRoutes(v1)

	setupProbes(router, redisClient)

	// Swagger документация
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Info().Msg("Routes configured")

	// Создаем HTTP сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
		// WriteTimeout не ставим: чат отдаётся долгоживущим SSE-стримом
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Ждем сигнала для graceful shutdown
	<-ctx.Done()
	stop()

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

func setupProbes(router *gin.Engine, redisClient *redisplatform.Client) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "botforge-backend",
		})
	})

	// Liveness probe
	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Readiness probe
	router.GET("/ready", func(c *gin.Context) {
		// При in-memory фолбэке Redis-проверки нет
		if redisClient != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := redisClient.Ping(ctx).Err(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unready",
					"error":   "redis unavailable",
					"details": err.Error(),
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   "botforge-backend",
		})
	})
}
