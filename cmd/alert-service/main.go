package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock-alert-engine/internal/alerter/config"
	"stock-alert-engine/internal/alerter/repository"
	"stock-alert-engine/internal/alerter/service"
	"stock-alert-engine/internal/scraper"
	"stock-alert-engine/pkg/discord"
	"stock-alert-engine/pkg/logger"
	"stock-alert-engine/pkg/postgres"
	redisPkg "stock-alert-engine/pkg/redis"
	"stock-alert-engine/pkg/telegram"

	"github.com/spf13/cobra"
)

var configPath string

// ruleDelay is the politeness pause between successive company lookups
// within one cycle.
const ruleDelay = 3 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the alert evaluation service",
	Run: func(cmd *cobra.Command, args []string) {
		run(false)
	},
}

var runOnceCmd = &cobra.Command{
	Use:   "run-once",
	Short: "Runs a single alert cycle immediately, ignoring market hours",
	Run: func(cmd *cobra.Command, args []string) {
		run(true)
	},
}

func run(once bool) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Alert Service", logger.Field("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis
	redisCfg := redisPkg.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redisPkg.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	userAlertsRepo := repository.NewUserAlertsRepository(db.DB)
	priceHistoryRepo := repository.NewPriceHistoryRepository(db.DB)
	alertLogsRepo := repository.NewAlertLogsRepository(db.DB)

	// Initialize the extraction pipeline
	stockScraper, err := scraper.NewScraper(&cfg.Scraper, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize scraper", logger.ErrorField(err))
	}

	// Initialize notification channels
	discordNotifier := discord.NewClient(cfg.Discord.WebhookURL, appLogger)

	var telegramNotifier telegram.Notifier
	if cfg.Telegram.Enabled {
		telegramNotifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	orchestrator := service.NewOrchestrator(appLogger, stockScraper, priceHistoryRepo, alertLogsRepo, ruleDelay)

	runner, err := service.NewRunner(cfg, appLogger, userAlertsRepo, orchestrator, discordNotifier, telegramNotifier, redisClient)
	if err != nil {
		appLogger.Fatal("Failed to initialize alert runner", logger.ErrorField(err))
	}

	if once {
		if err := runner.RunCycle(ctx, true); err != nil {
			appLogger.Fatal("Alert cycle failed", logger.ErrorField(err))
		}
		return
	}

	if err := runner.Start(ctx); err != nil {
		appLogger.Fatal("Failed to start alert runner", logger.ErrorField(err))
	}

	appLogger.Info("Alert service started. Waiting for scheduled cycles...")

	<-ctx.Done()

	appLogger.Info("Shutting down alert service...")
	runner.Stop()
	appLogger.Info("Alert service stopped.")
}

func main() {
	rootCmd := &cobra.Command{Use: "alert-service"}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-alert.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd, runOnceCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing alert-service CLI: %s\n", err)
		os.Exit(1)
	}
}
