package snapshot

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/power-ledger/internal/logger"
	"github.com/feral-file/power-ledger/internal/metrics"
	"github.com/feral-file/power-ledger/internal/round"
	"github.com/feral-file/power-ledger/internal/store"
)

// DEFAULT_ASSIGNER_BATCH_SIZE is the number of snapshots read per page
const DEFAULT_ASSIGNER_BATCH_SIZE = 500

// Assigner maps unassigned snapshots onto rounds through the window policy
type Assigner struct {
	store     store.SnapshotStore
	policy    round.WindowPolicy
	metrics   *metrics.Metrics
	batchSize int
}

// NewAssigner creates a new round window assigner
func NewAssigner(s store.SnapshotStore, policy round.WindowPolicy, m *metrics.Metrics, batchSize int) *Assigner {
	if m == nil {
		m = metrics.NopMetrics()
	}
	if batchSize <= 0 {
		batchSize = DEFAULT_ASSIGNER_BATCH_SIZE
	}
	return &Assigner{
		store:     s,
		policy:    policy,
		metrics:   m,
		batchSize: batchSize,
	}
}

// Name returns the job name
func (a *Assigner) Name() string {
	return AssignerJobName
}

// Run assigns a round to every snapshot without one. Snapshots outside any window stay unassigned.
func (a *Assigner) Run(ctx context.Context) error {
	var afterID int64
	assigned, outside := 0, 0

	for {
		snapshots, err := a.store.GetUnassignedSnapshots(ctx, afterID, a.batchSize)
		if err != nil {
			return fmt.Errorf("failed to get unassigned snapshots: %w", err)
		}

		for _, snapshot := range snapshots {
			roundNumber, ok := a.policy.RoundForInstant(snapshot.Time)
			if !ok {
				outside++
				continue
			}

			updated, err := a.store.SetSnapshotRound(ctx, snapshot.ID, roundNumber)
			if err != nil {
				return fmt.Errorf("failed to assign snapshot %d to round %d: %w", snapshot.ID, roundNumber, err)
			}
			if updated {
				assigned++
				a.metrics.SnapshotsAssigned.Add(1)
			}
		}

		if len(snapshots) < a.batchSize {
			break
		}
		afterID = snapshots[len(snapshots)-1].ID
	}

	if assigned > 0 || outside > 0 {
		logger.InfoCtx(ctx, "Snapshots assigned to rounds",
			zap.Int("assigned", assigned),
			zap.Int("outsideWindows", outside))
	}

	return nil
}
