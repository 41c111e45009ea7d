package jobs

import (
	"time"

	"vehicle-rental-backend/internal/config"
	"vehicle-rental-backend/internal/logger"
	"vehicle-rental-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	manager *service.RentalManager
	config  *config.Config
	now     func() time.Time
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(manager *service.RentalManager, cfg *config.Config) *JobRunner {
	return &JobRunner{
		manager: manager,
		config:  cfg,
		now:     time.Now,
	}
}

// Config returns the runner's configuration
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
