package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	itelegram "homework_status_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		// Missing credentials: the process refuses to start. The logger is
		// not configured yet, so this goes through the default instance.
		logger.Log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get()

	log.Debug("Бот запущен!")
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Chat ID: %d, Poll interval: %s",
		cfg.LogLevel, cfg.Environment, cfg.TelegramChatID, cfg.PollInterval)

	// Initialize Telegram Bot. No update poller is configured: the bot only
	// sends messages and never receives updates.
	bot, err := telebot.NewBot(telebot.Settings{Token: cfg.TelegramToken})
	if err != nil {
		log.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}
	telegramClient := itelegram.NewTelebotAdapter(bot)
	log.Info("Telegram client initialized.")

	// Initialize Practicum API client
	apiClient := practicum.NewHTTPClient(cfg.PracticumEndpoint, cfg.PracticumToken, cfg.HTTPTimeout)
	log.Info("Homework API client initialized.")

	// Initialize Poller; the cursor starts at "now", so only statuses changed
	// after startup are announced.
	poller := app.NewPoller(apiClient, telegramClient, cfg.TelegramChatID, log, time.Now().Unix())
	log.Info("Poller initialized.")

	pollScheduler := scheduler.NewPollScheduler(poller, cfg.PollInterval, log)
	if err := pollScheduler.Start(); err != nil {
		log.Fatalf("FATAL: Could not start poll scheduler: %v", err)
	}

	log.Info("Application setup complete. Polling for homework status changes...")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	pollScheduler.Stop()
	log.Info("Application shut down gracefully.")
}
