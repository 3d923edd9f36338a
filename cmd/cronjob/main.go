package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"fieldwork-backend/internal/config"
	"fieldwork-backend/internal/jobs"
	"fieldwork-backend/internal/logger"
	"fieldwork-backend/internal/push"
	"fieldwork-backend/internal/scheduler"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'daily-report-reminders')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Fieldwork Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Push Sender
	var sender push.Sender
	if cfg.Push.Enabled {
		sender, err = push.NewFCMSender(context.Background(), cfg.Push.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize push sender", "error", err)
			log.Fatalf("Failed to initialize push sender: %v", err)
		}
	} else {
		logger.Warn("Push notifications disabled; reminders will be logged only")
		sender = push.NewLogSender()
	}

	jobRunner := jobs.NewJobRunner(db, sender, cfg)

	if *runOnce != "" {
		switch *runOnce {
		case "daily-report-reminders":
			jobRunner.SendDailyReportReminders()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Block until interrupted
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down cronjob runner...")
}
