package ranking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/power-ledger/internal/adapter"
	"github.com/feral-file/power-ledger/internal/logger"
	"github.com/feral-file/power-ledger/internal/metrics"
	"github.com/feral-file/power-ledger/internal/round"
	"github.com/feral-file/power-ledger/internal/store"
)

const (
	// RefreshJobName is the name of the ranking refresh job
	RefreshJobName = "ranking-refresh"
	// RolloverJobName is the name of the round rollover job
	RolloverJobName = "round-rollover"
)

// RefreshJob recomputes the current round's ranking and enqueues its rank changes
type RefreshJob struct {
	provider   round.Provider
	aggregator Aggregator
	detector   Detector
	metrics    *metrics.Metrics
}

// NewRefreshJob creates a new ranking refresh job
func NewRefreshJob(provider round.Provider, aggregator Aggregator, detector Detector, m *metrics.Metrics) *RefreshJob {
	if m == nil {
		m = metrics.NopMetrics()
	}
	return &RefreshJob{
		provider:   provider,
		aggregator: aggregator,
		detector:   detector,
		metrics:    m,
	}
}

// Name returns the job name
func (j *RefreshJob) Name() string {
	return RefreshJobName
}

// Run refreshes the current round
func (j *RefreshJob) Run(ctx context.Context) error {
	current, err := j.provider.CurrentRound(ctx)
	if err != nil {
		return err
	}
	j.metrics.CurrentRound.Set(float64(current))

	if _, err := j.aggregator.Refresh(ctx, current); err != nil {
		return err
	}

	enqueued, err := j.detector.EnqueueRankChanges(ctx, current)
	if err != nil {
		return err
	}
	j.metrics.RankChangesEnqueued.Add(float64(enqueued))

	return nil
}

// RolloverJob advances the round counter once the window of "now" is past the current round
type RolloverJob struct {
	store      store.RoundStore
	provider   round.Provider
	policy     round.WindowPolicy
	aggregator Aggregator
	detector   Detector
	clock      adapter.Clock
	metrics    *metrics.Metrics
}

// NewRolloverJob creates a new round rollover job
func NewRolloverJob(
	s store.RoundStore,
	provider round.Provider,
	policy round.WindowPolicy,
	aggregator Aggregator,
	detector Detector,
	clock adapter.Clock,
	m *metrics.Metrics,
) *RolloverJob {
	if m == nil {
		m = metrics.NopMetrics()
	}
	return &RolloverJob{
		store:      s,
		provider:   provider,
		policy:     policy,
		aggregator: aggregator,
		detector:   detector,
		clock:      clock,
		metrics:    m,
	}
}

// Name returns the job name
func (j *RolloverJob) Name() string {
	return RolloverJobName
}

// Run finalizes the current round and advances by exactly one round. A counter several
// rounds behind catches up over successive runs.
func (j *RolloverJob) Run(ctx context.Context) error {
	windowRound, ok := j.policy.RoundForInstant(j.clock.Now())
	if !ok {
		return nil
	}

	current, err := j.provider.CurrentRound(ctx)
	if err != nil {
		return err
	}
	j.metrics.CurrentRound.Set(float64(current))

	if windowRound <= current {
		return nil
	}

	// Freeze the final ranking of the round being closed
	if _, err := j.aggregator.Refresh(ctx, current); err != nil {
		return err
	}

	next := current + 1
	advanced, err := j.store.FinalizeRound(ctx, current, next)
	if err != nil {
		return fmt.Errorf("failed to finalize round %d: %w", current, err)
	}
	if !advanced {
		logger.InfoCtx(ctx, "Round already advanced by another run", zap.Int("round", current))
		return nil
	}
	j.metrics.CurrentRound.Set(float64(next))

	logger.InfoCtx(ctx, "Round advanced",
		zap.Int("from", current),
		zap.Int("to", next),
		zap.Int("windowRound", windowRound))

	if _, err := j.aggregator.Refresh(ctx, next); err != nil {
		return err
	}

	enqueued, err := j.detector.EnqueueRankChanges(ctx, next)
	if err != nil {
		return err
	}
	j.metrics.RankChangesEnqueued.Add(float64(enqueued))

	return nil
}
