package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Ahmad-Raza810/blog-application/internal/auth"
	"github.com/Ahmad-Raza810/blog-application/internal/cache"
	"github.com/Ahmad-Raza810/blog-application/internal/config"
	"github.com/Ahmad-Raza810/blog-application/internal/database"
	"github.com/Ahmad-Raza810/blog-application/internal/handlers"
	"github.com/Ahmad-Raza810/blog-application/internal/repositories"
	"github.com/Ahmad-Raza810/blog-application/internal/services"
	"github.com/Ahmad-Raza810/blog-application/pkg/utils"
)

// Global logger setup runs before main.
func init() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logrus.Warnf("Invalid LOG_LEVEL environment variable '%s', defaulting to Info", logLevelStr)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, assuming environment variables are set.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.ConnectDB(cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewPostgresUserRepository(db)
	tokenRepo := repositories.NewPostgresRefreshTokenRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	categoryRepo := repositories.NewPostgresCategoryRepository(db)
	tagRepo := repositories.NewPostgresTagRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)

	// Cache and token manager
	postCache := cache.NewRedisPostCache(rdb, cfg.CacheTTL)
	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)

	// Services
	refreshTokenService := services.NewRefreshTokenService(tokenRepo, cfg.RefreshTokenTTL)
	authService := services.NewAuthService(userRepo, refreshTokenService, tokenManager)
	postService := services.NewPostService(postRepo, categoryRepo, tagRepo, commentRepo, postCache)
	categoryService := services.NewCategoryService(categoryRepo, postCache)
	tagService := services.NewTagService(tagRepo, postCache)
	commentService := services.NewCommentService(commentRepo, postRepo)

	// Set Gin to ReleaseMode in production
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(utils.RateLimitMiddleware())

	handlers.SetupRoutes(router, handlers.Handlers{
		Health:     handlers.NewHealthHandler(),
		Auth:       handlers.NewAuthHandler(authService),
		Posts:      handlers.NewPostHandler(postService),
		Categories: handlers.NewCategoryHandler(categoryService),
		Tags:       handlers.NewTagHandler(tagService),
		Comments:   handlers.NewCommentHandler(commentService),
	}, tokenManager)

	logrus.Infof("Server starting on port %s", cfg.AppPort)
	if err := router.Run(fmt.Sprintf(":%s", cfg.AppPort)); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}
