package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/techconnect/site-backend/api"
	"github.com/techconnect/site-backend/catalog"
	cfg "github.com/techconnect/site-backend/config"
	"github.com/techconnect/site-backend/database"
	"github.com/techconnect/site-backend/services"
	"github.com/techconnect/site-backend/storage"

	zlog "github.com/rs/zerolog/log"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := cfg.New()

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.GetString(c, "DB_HOST", "localhost"),
		cfg.GetString(c, "DB_USER", "postgres"),
		cfg.GetString(c, "DB_PASSWORD", ""),
		cfg.GetString(c, "DB_NAME", "techconnect"),
		cfg.GetString(c, "DB_PORT", "5432"),
		cfg.GetString(c, "DB_SSLMODE", "require"),
	)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	blobStore, err := storage.NewS3Store(context.Background(), c)
	if err != nil {
		fmt.Printf("Error initializing object store: %v\n", err)
		os.Exit(1)
	}

	sender, err := services.NewResendSender(c)
	if err != nil {
		fmt.Printf("Error initializing email sender: %v\n", err)
		os.Exit(1)
	}

	notifier := catalog.NewLogNotifier(zlog.With().Str("component", "notifications").Logger())
	catalogService := catalog.NewService(currentDB.ProjectRepo(), blobStore, notifier)

	// Warm the catalog; a failed first fetch is not fatal, the snapshot just
	// starts empty and the next request retries.
	if err := catalogService.Refresh(context.Background()); err != nil {
		zlog.Warn().Err(err).Msg("initial catalog refresh failed")
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, catalogService, sender)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
