package main

import (
	"context"
	"log"
	"time"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/router"
	"github.com/Anasnaveed69/MingleMe-sub000/pkg/config"
	"github.com/Anasnaveed69/MingleMe-sub000/pkg/logger"
	"github.com/Anasnaveed69/MingleMe-sub000/pkg/mailer"
	"github.com/Anasnaveed69/MingleMe-sub000/pkg/objectstore"
	"github.com/Anasnaveed69/MingleMe-sub000/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()
	appLogger := logger.NewLogger()

	// Initialize database connections
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Outbound mail; without an API key delivery is silently skipped
	var mail mailer.Mailer = mailer.Noop{}
	if cfg.MailAPIKey != "" {
		mail = mailer.New(mailer.Config{
			APIKey:      cfg.MailAPIKey,
			BaseURL:     cfg.MailBaseURL,
			FromAddress: cfg.MailFromAddress,
		})
	} else {
		appLogger.Warn("MAIL_API_KEY not set, outbound email disabled")
	}

	// Object store; without a bucket uploads report unavailable
	var store objectstore.Store = objectstore.Disabled{}
	if cfg.GCSBucket != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		gcs, err := objectstore.NewGCSStore(ctx, cfg.GCSBucket)
		cancel()
		if err != nil {
			log.Fatalf("Failed to initialize object store: %v", err)
		}
		store = gcs
	} else {
		appLogger.Warn("GCS_BUCKET not set, media uploads disabled")
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, cfg, db.Postgres, db.Mongo, mail, store, appLogger)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
