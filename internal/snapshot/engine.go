package snapshot

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/power-ledger/internal/adapter"
	"github.com/feral-file/power-ledger/internal/logger"
	"github.com/feral-file/power-ledger/internal/metrics"
	"github.com/feral-file/power-ledger/internal/providers/balance"
	"github.com/feral-file/power-ledger/internal/store"
)

const (
	// EngineJobName is the name of the snapshot job
	EngineJobName = "power-snapshot"
	// AssignerJobName is the name of the round window assigner job
	AssignerJobName = "round-window-assigner"
)

// Engine freezes the active allocations into a new snapshot on every run
type Engine struct {
	store   store.SnapshotStore
	source  balance.Source
	clock   adapter.Clock
	metrics *metrics.Metrics
}

// NewEngine creates a new snapshot engine
func NewEngine(s store.SnapshotStore, source balance.Source, clock adapter.Clock, m *metrics.Metrics) *Engine {
	if m == nil {
		m = metrics.NopMetrics()
	}
	return &Engine{
		store:   s,
		source:  source,
		clock:   clock,
		metrics: m,
	}
}

// Name returns the job name
func (e *Engine) Name() string {
	return EngineJobName
}

// Run takes one snapshot. The chain anchor is best effort: a lagging balance source
// never blocks snapshotting.
func (e *Engine) Run(ctx context.Context) error {
	now := e.clock.Now()

	var anchor *int64
	if e.source != nil {
		latest, err := e.source.LatestAnchor(ctx)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to read chain anchor, snapshotting without it", zap.Error(err))
		} else {
			anchor = &latest
		}
	}

	result, err := e.store.CreatePowerSnapshot(ctx, store.CreatePowerSnapshotInput{
		Time:        now,
		ChainAnchor: anchor,
	})
	if err != nil {
		return fmt.Errorf("failed to create power snapshot: %w", err)
	}

	e.metrics.SnapshotsTaken.Add(1)
	e.metrics.SnapshotAllocationRows.Add(float64(result.AllocationRows))

	logger.InfoCtx(ctx, "Power snapshot created",
		zap.Int64("snapshotID", result.Snapshot.ID),
		zap.Time("time", result.Snapshot.Time),
		zap.Int("allocationRows", result.AllocationRows),
		zap.Int("balanceRows", result.BalanceRows),
		zap.Bool("synced", result.Snapshot.Synced))

	return nil
}
