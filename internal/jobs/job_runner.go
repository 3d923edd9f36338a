package jobs

import (
	"database/sql"

	"fieldwork-backend/internal/config"
	"fieldwork-backend/internal/logger"
	"fieldwork-backend/internal/push"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	db     *sql.DB
	push   push.Sender
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, sender push.Sender, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:     db,
		push:   sender,
		config: cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
