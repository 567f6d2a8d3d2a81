package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"jobhub/database"
	"jobhub/internal/cache"
	"jobhub/internal/config"
	"jobhub/internal/handler"
	"jobhub/internal/middleware"
	"jobhub/internal/repository"
	"jobhub/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// Prefer Redis for the list-projection caches; without a reachable Redis
	// the in-process store keeps the API functional for development.
	var store cache.Store
	if redisStore, err := cache.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger); err != nil {
		logger.Warn("Redis unavailable, using in-process cache", "error", err)
		memStore, err := cache.NewMemoryStore(512)
		if err != nil {
			log.Fatalf("could not create cache store: %v", err)
		}
		store = memStore
	} else {
		store = redisStore
		defer redisStore.Close()
	}
	coherence := cache.NewCoherence(store, logger)

	// Repositories
	companyRepo := repository.NewCompanyRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	lookupRepo := repository.NewLookupRepository(db)
	userRepo := repository.NewUserRepository(db)
	donateRepo := repository.NewDonateRepository(db)

	// Services
	statsService := service.NewStatisticsService(companyRepo, reviewRepo, interviewRepo)
	companyService := service.NewCompanyService(db, companyRepo, reviewRepo, interviewRepo,
		lookupRepo, userRepo, donateRepo, statsService, store, coherence, logger)
	reviewService := service.NewReviewService(db, companyRepo, reviewRepo, interviewRepo,
		userRepo, statsService, coherence, logger)
	authService := service.NewAuthService(userRepo, store, coherence,
		cfg.JWTSecret, cfg.AccessTokenTTL, cfg.ResetTokenTTL, logger)

	// HTTP server
	if cfg.GoEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	api := r.Group("/api")
	authGroup := api.Group("/auth")
	protectedAuth := api.Group("/auth")
	protectedAuth.Use(middleware.AuthMiddleware(authService))

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authService))

	moderation := api.Group("/moderation")
	moderation.Use(middleware.AuthMiddleware(authService), middleware.RequireModerator())

	handler.NewAuthHandler(authService).RegisterRoutes(authGroup, protectedAuth)
	handler.NewCompanyHandler(companyService).RegisterRoutes(api, protected, moderation)
	handler.NewReviewHandler(reviewService).RegisterRoutes(protected, moderation)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Server running", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
