package router

import (
	"context"
	"log"
	"time"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/handlers"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/middleware"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/repositories"
	"github.com/Anasnaveed69/MingleMe-sub000/internal/services"
	"github.com/Anasnaveed69/MingleMe-sub000/pkg/config"
	"github.com/Anasnaveed69/MingleMe-sub000/pkg/logger"
	"github.com/Anasnaveed69/MingleMe-sub000/pkg/mailer"
	"github.com/Anasnaveed69/MingleMe-sub000/pkg/objectstore"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.Logger())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, pgdb *gorm.DB, mgClient *mongo.Client, mail mailer.Mailer, store objectstore.Store, appLogger *logger.Logger) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Like{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mgClient.Database(cfg.MongoDatabase))
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)

	indexCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := postRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("Failed to create MongoDB indexes: %v", err)
	}

	// --- Initialize Services ---
	otpService := services.NewOTPService(userRepo, mail, appLogger, time.Duration(cfg.OTPTTLMinutes)*time.Minute)
	authService := services.NewAuthService(userRepo, otpService, appLogger)
	contentService := services.NewContentService(postRepo, userRepo, appLogger)
	notificationService := services.NewNotificationService(notificationRepo, appLogger)
	reactionService := services.NewReactionService(postRepo, userRepo, likeRepo, followRepo, notificationService, appLogger)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo, followRepo, authService)
	userHandler.RegisterUserRoutes(api)
	log.Println("User profile routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(contentService, reactionService)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(reactionService)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(reactionService, contentService, likeRepo)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	// Follow routes
	followHandler := handlers.NewFollowHandler(reactionService, followRepo)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	// Upload routes
	uploadHandler := handlers.NewUploadHandler(store)
	uploadHandler.RegisterUploadRoutes(api)
	log.Println("Upload routes configured.")

	log.Println("All routes configured.")
}
