package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/logger"
	"github.com/feral-file/power-ledger/internal/metrics"
	"github.com/feral-file/power-ledger/internal/providers/balance"
	"github.com/feral-file/power-ledger/internal/store"
)

const (
	// JobName is the name of the balance reconciler job
	JobName = "balance-reconciler"

	DEFAULT_BATCH_SIZE  = 1000
	DEFAULT_CONCURRENCY = 8
)

// Config holds the reconciler configuration
type Config struct {
	BatchSize   int // placeholders read per page
	Concurrency int // parallel wallet lookups
}

// Reconciler fills balance placeholders from the balance source once it has caught up
// with the snapshot time, then flags snapshots synced
type Reconciler struct {
	store   store.SnapshotStore
	source  balance.Source
	metrics *metrics.Metrics
	config  Config
}

// New creates a new balance reconciler
func New(s store.SnapshotStore, source balance.Source, m *metrics.Metrics, cfg Config) *Reconciler {
	if m == nil {
		m = metrics.NopMetrics()
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DEFAULT_BATCH_SIZE
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DEFAULT_CONCURRENCY
	}
	return &Reconciler{
		store:   s,
		source:  source,
		metrics: m,
		config:  cfg,
	}
}

// Name returns the job name
func (r *Reconciler) Name() string {
	return JobName
}

// Run reconciles every placeholder whose snapshot precedes the source's latest complete instant.
// Newer placeholders are left for a later cycle. An upstream failure ends the cycle; filled rows stay filled.
func (r *Reconciler) Run(ctx context.Context) error {
	// Snapshots filled by a cycle that died before its synced check have no pending rows left to revisit them
	recovered, err := r.store.MarkFilledSnapshotsSynced(ctx)
	if err != nil {
		return fmt.Errorf("failed to sync filled snapshots: %w", err)
	}
	r.recordSynced(ctx, recovered)

	instant, err := r.source.LatestCompleteInstant(ctx)
	if err != nil {
		return fmt.Errorf("failed to read latest complete instant: %w", err)
	}

	stale, err := r.store.CountPendingBalancesFrom(ctx, instant)
	if err != nil {
		return fmt.Errorf("failed to count stale balances: %w", err)
	}
	r.metrics.BalancesSkippedStale.Set(float64(stale))

	pool := pond.NewPool(r.config.Concurrency, pond.WithContext(ctx))
	defer pool.StopAndWait()

	var afterID int64
	var filledTotal, syncedTotal int
	for {
		pending, err := r.store.GetPendingBalances(ctx, instant, afterID, r.config.BatchSize)
		if err != nil {
			return fmt.Errorf("failed to get pending balances: %w", err)
		}
		if len(pending) == 0 {
			break
		}

		filled, fillErr := r.fillBatch(ctx, pool, instant, pending)
		filledTotal += filled

		// Rows filled before a failure still count towards syncing
		synced, err := r.store.MarkSnapshotsSynced(ctx, snapshotIDs(pending))
		if err != nil {
			return fmt.Errorf("failed to mark snapshots synced: %w", err)
		}
		syncedTotal += len(synced)
		r.recordSynced(ctx, synced)

		if fillErr != nil {
			return fillErr
		}
		if len(pending) < r.config.BatchSize {
			break
		}
		afterID = pending[len(pending)-1].ID
	}

	logger.InfoCtx(ctx, "Balance reconciliation finished",
		zap.Time("latestCompleteInstant", instant),
		zap.Int("filled", filledTotal),
		zap.Int("snapshotsSynced", syncedTotal+len(recovered)),
		zap.Int64("skippedStale", stale))

	return nil
}

// fillBatch looks up each wallet once per snapshot time and fills its placeholders in parallel
func (r *Reconciler) fillBatch(ctx context.Context, pool pond.Pool, instant time.Time, pending []store.PendingBalance) (int, error) {
	type lookup struct {
		wallet string
		at     time.Time
	}
	groups := make(map[lookup][]store.PendingBalance)
	order := make([]lookup, 0, len(pending))
	for _, p := range pending {
		// Guard against rows the query should never return
		if !p.SnapshotTime.Before(instant) {
			continue
		}
		key := lookup{wallet: p.WalletAddress, at: p.SnapshotTime}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], p)
	}

	var filled atomic.Int32
	var mu sync.Mutex
	var firstErr error

	group := pool.NewGroup()
	for _, key := range order {
		rows := groups[key]
		group.SubmitErr(func() error {
			mu.Lock()
			failed := firstErr != nil
			mu.Unlock()
			if failed {
				// The rest of the batch waits for the next cycle
				return nil
			}

			amount, found, err := r.source.BalanceAsOf(ctx, key.wallet, key.at)
			if errors.Is(err, domain.ErrInvalidInput) {
				// Not an address the source can ever know, so it holds no balance
				logger.WarnCtx(ctx, "Filling unqueryable wallet with zero",
					zap.String("wallet", key.wallet), zap.Error(err))
				amount, found, err = decimal.Zero, true, nil
			}
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("failed to get balance of %s: %w", key.wallet, err)
				}
				mu.Unlock()
				return err
			}
			if !found {
				amount = decimal.Zero
			}

			for _, row := range rows {
				ok, err := r.store.FillBalance(ctx, row.ID, amount)
				if err != nil {
					return fmt.Errorf("failed to fill balance %d: %w", row.ID, err)
				}
				if ok {
					filled.Add(1)
				}
			}
			return nil
		})
	}

	err := group.Wait()
	n := int(filled.Load())
	r.metrics.BalancesFilled.Add(float64(n))

	if firstErr != nil {
		return n, firstErr
	}
	return n, err
}

func (r *Reconciler) recordSynced(ctx context.Context, synced []int64) {
	r.metrics.SnapshotsSynced.Add(float64(len(synced)))
	for _, id := range synced {
		logger.InfoCtx(ctx, "Snapshot synced", zap.Int64("snapshotID", id))
	}
}

func snapshotIDs(pending []store.PendingBalance) []int64 {
	seen := make(map[int64]struct{}, len(pending))
	ids := make([]int64, 0, len(pending))
	for _, p := range pending {
		if _, ok := seen[p.PowerSnapshotID]; ok {
			continue
		}
		seen[p.PowerSnapshotID] = struct{}{}
		ids = append(ids, p.PowerSnapshotID)
	}
	return ids
}
