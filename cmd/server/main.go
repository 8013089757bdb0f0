package main

import (
	"context"
	"log"

	_ "knockout-tournament-backend/docs" // This is needed for swag
	"knockout-tournament-backend/internal/api/routes"
	"knockout-tournament-backend/internal/archive"
	"knockout-tournament-backend/internal/config"
	"knockout-tournament-backend/internal/logger"
	"knockout-tournament-backend/internal/metrics"
	"knockout-tournament-backend/internal/notify"
	"knockout-tournament-backend/internal/repository"
	"knockout-tournament-backend/internal/service"
	"knockout-tournament-backend/internal/tournament"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

//	@title			Knockout Tournament Backend API
//	@version		1.0
//	@description	Backend API for a seven team single elimination tournament: roster, bracket, scores, results, export and import.

//	@host		localhost:7008
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	ctx := context.Background()

	// Initialize state store
	repo, closeStore, err := repository.OpenStateRepository(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize state store:", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logrus.WithError(err).Warn("Failed to close state store")
		}
	}()
	logrus.WithField("driver", cfg.StoreDriver).Info("State store ready")

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	opts := service.Options{
		StateKey: cfg.StateKey,
		Metrics:  metrics.New(),
	}

	if cfg.DefaultRosterFile != "" {
		roster, err := tournament.LoadRosterFile(cfg.DefaultRosterFile)
		if err != nil {
			logrus.Fatal("Failed to load default roster:", err)
		}
		opts.DefaultRoster = tournament.RosterFactory(roster)
	}

	if cfg.TelegramEnabled() {
		telegram, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			logrus.WithError(err).Warn("Telegram announcements disabled")
		} else {
			opts.Notifier = telegram
		}
	}

	if cfg.ArchiveEnabled() {
		archiver, err := archive.NewS3Archiver(ctx, cfg.AWSRegion, cfg.ArchiveS3Bucket, cfg.ArchiveS3Prefix)
		if err != nil {
			logrus.Fatal("Failed to initialize snapshot archive:", err)
		}
		opts.Archiver = archiver
	}

	// Initialize service and restore the persisted tournament
	tournamentService := service.NewTournamentService(repo, validator.New(), opts)
	tournamentService.Load(ctx)

	if cfg.ArchiveSchedule != "" {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(cfg.ArchiveSchedule, func() {
			location, err := tournamentService.ArchiveSnapshot(context.Background())
			if err != nil {
				logrus.WithError(err).Error("Scheduled snapshot failed")
				return
			}
			logrus.WithField("location", location).Info("Scheduled snapshot archived")
		}); err != nil {
			logrus.Fatal("Failed to schedule snapshots:", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Initialize router
	router := routes.SetupRoutes(routes.Dependencies{
		Tournament: tournamentService,
		Teams:      tournamentService,
		Metrics:    opts.Metrics,
	}, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
