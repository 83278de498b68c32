package workflows

import (
	"time"

	"go.temporal.io/sdk/workflow"

	"github.com/feral-file/power-ledger/internal/domain"
)

// WorkerCore defines the funding round workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockWorkerCore
type WorkerCore interface {
	// CloseFundingRound stamps donor scores, computes the final matching distribution
	// and deactivates the round
	CloseFundingRound(ctx workflow.Context, fundingRoundID int64) ([]domain.ProjectMatching, error)
}

type WorkerCoreConfig struct {
	// ActivityTimeout bounds a single activity attempt
	ActivityTimeout time.Duration
	// MaxAttempts bounds retries of retryable activity failures
	MaxAttempts int32
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	config   WorkerCoreConfig
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	if config.ActivityTimeout <= 0 {
		config.ActivityTimeout = 10 * time.Minute
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 5
	}
	return &workerCore{
		executor: executor,
		config:   config,
	}
}
