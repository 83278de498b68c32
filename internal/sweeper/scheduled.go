package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/feral-file/power-ledger/internal/adapter"
	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/logger"
	"github.com/feral-file/power-ledger/internal/metrics"
)

// ScheduledJob binds a job to a cron spec with seconds, e.g. "0 */5 * * * *"
type ScheduledJob struct {
	Spec string
	Job  Job
}

// scheduledSweeper runs jobs on their own cron cadence. A job never overlaps with itself.
type scheduledSweeper struct {
	jobs      []ScheduledJob
	clock     adapter.Clock
	metrics   *metrics.Metrics
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewScheduledSweeper creates a sweeper running the given jobs
func NewScheduledSweeper(jobs []ScheduledJob, clock adapter.Clock, m *metrics.Metrics) Sweeper {
	if m == nil {
		m = metrics.NopMetrics()
	}
	return &scheduledSweeper{
		jobs:      jobs,
		clock:     clock,
		metrics:   m,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *scheduledSweeper) Name() string {
	return "scheduled-jobs"
}

// Start schedules every job and blocks until the context is canceled or Stop is called
func (s *scheduledSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	cronLogger := cronLogger{log: logger.Named("cron").Sugar()}
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger)),
	)

	for _, scheduled := range s.jobs {
		job := scheduled.Job
		// Each job gets its own skip chain so a slow job only delays itself
		wrapped := cron.NewChain(cron.SkipIfStillRunning(cronLogger)).Then(cron.FuncJob(func() {
			s.runJob(ctx, job)
		}))
		if _, err := c.AddJob(scheduled.Spec, wrapped); err != nil {
			return fmt.Errorf("invalid schedule %q for job %s: %w", scheduled.Spec, job.Name(), err)
		}
		logger.InfoCtx(ctx, "Scheduled job",
			zap.String("job", job.Name()),
			zap.String("spec", scheduled.Spec))
	}

	c.Start()

	select {
	case <-ctx.Done():
		logger.InfoCtx(ctx, "Scheduled jobs stopping due to context cancellation", zap.Error(ctx.Err()))
	case <-s.stopChan:
		logger.InfoCtx(ctx, "Scheduled jobs stop requested")
	}

	// Wait for running jobs to finish
	<-c.Stop().Done()

	return nil
}

// Stop gracefully stops the sweeper with timeout support
func (s *scheduledSweeper) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping scheduled jobs")

	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Scheduled jobs stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Scheduled jobs stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runJob runs one cycle of a job and records its outcome
func (s *scheduledSweeper) runJob(ctx context.Context, job Job) {
	if ctx.Err() != nil {
		return
	}

	RunOnce(ctx, job, s.clock, s.metrics)
}

// RunOnce runs one cycle of a job, logging the outcome. Errors are not propagated.
func RunOnce(ctx context.Context, job Job, clock adapter.Clock, m *metrics.Metrics) {
	ctx = logger.WithFields(ctx, zap.String("job", job.Name()), zap.String("runID", uuid.NewString()))
	start := clock.Now()

	logger.DebugCtx(ctx, "Job cycle started")

	err := job.Run(ctx)
	elapsed := clock.Since(start)
	m.JobDurationSeconds.With("job", job.Name()).Observe(elapsed.Seconds())

	took := zap.Duration("elapsed", elapsed)
	switch {
	case err == nil:
		logger.InfoCtx(ctx, "Job cycle finished", took)
	case errors.Is(err, context.Canceled):
		logger.InfoCtx(ctx, "Job cycle canceled", took)
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		// Expected while the upstream lags or is down, the next tick retries
		m.JobFailures.With("job", job.Name()).Add(1)
		logger.WarnCtx(ctx, "Job cycle deferred, upstream unavailable", took, zap.Error(err))
	default:
		m.JobFailures.With("job", job.Name()).Add(1)
		logger.ErrorCtx(ctx, fmt.Errorf("job %s failed: %w", job.Name(), err), took)
	}
}

// cronLogger adapts the zap logger to cron.Logger
type cronLogger struct {
	log *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
