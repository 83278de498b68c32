package reconciler_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/mocks"
	"github.com/feral-file/power-ledger/internal/reconciler"
	"github.com/feral-file/power-ledger/internal/store"
)

const (
	ALICE = "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0"
	BOB   = "0x8ba1f109551bD432803012645Ac136ddd64DBA72"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func setupReconciler(t *testing.T, batchSize int) (*reconciler.Reconciler, *mocks.MockSnapshotStore, *mocks.MockBalanceSource) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockSnapshotStore(ctrl)
	source := mocks.NewMockBalanceSource(ctrl)
	return reconciler.New(st, source, nil, reconciler.Config{BatchSize: batchSize, Concurrency: 2}), st, source
}

func pendingAt(at time.Time) []store.PendingBalance {
	return []store.PendingBalance{
		{ID: 1, PowerSnapshotID: 10, UserID: 1, WalletAddress: ALICE, SnapshotTime: at},
		{ID: 2, PowerSnapshotID: 10, UserID: 2, WalletAddress: BOB, SnapshotTime: at},
	}
}

func TestReconciler_SourceBehindSnapshotFillsNothing(t *testing.T) {
	r, st, source := setupReconciler(t, 100)
	instant := t0.Add(-time.Second)

	st.EXPECT().MarkFilledSnapshotsSynced(gomock.Any()).Return(nil, nil)
	source.EXPECT().LatestCompleteInstant(gomock.Any()).Return(instant, nil)
	st.EXPECT().CountPendingBalancesFrom(gomock.Any(), instant).Return(int64(2), nil)
	// The snapshot at t0 is not before the instant, so the query returns nothing
	st.EXPECT().GetPendingBalances(gomock.Any(), instant, int64(0), 100).Return(nil, nil)

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, reconciler.JobName, r.Name())
}

func TestReconciler_FillsAndSyncs(t *testing.T) {
	r, st, source := setupReconciler(t, 100)
	instant := t0.Add(time.Second)

	st.EXPECT().MarkFilledSnapshotsSynced(gomock.Any()).Return(nil, nil)
	source.EXPECT().LatestCompleteInstant(gomock.Any()).Return(instant, nil)
	st.EXPECT().CountPendingBalancesFrom(gomock.Any(), instant).Return(int64(0), nil)
	st.EXPECT().GetPendingBalances(gomock.Any(), instant, int64(0), 100).Return(pendingAt(t0), nil)

	source.EXPECT().BalanceAsOf(gomock.Any(), ALICE, t0).Return(decimal.NewFromInt(1500), true, nil)
	// Unknown wallets are filled with zero so the snapshot can sync
	source.EXPECT().BalanceAsOf(gomock.Any(), BOB, t0).Return(decimal.Zero, false, nil)

	st.EXPECT().FillBalance(gomock.Any(), int64(1), decimal.NewFromInt(1500)).Return(true, nil)
	st.EXPECT().FillBalance(gomock.Any(), int64(2), decimal.Zero).Return(true, nil)
	st.EXPECT().MarkSnapshotsSynced(gomock.Any(), []int64{10}).Return([]int64{10}, nil)

	require.NoError(t, r.Run(context.Background()))
}

func TestReconciler_ConcurrentFillIsNotCountedTwice(t *testing.T) {
	r, st, source := setupReconciler(t, 100)
	instant := t0.Add(time.Minute)

	st.EXPECT().MarkFilledSnapshotsSynced(gomock.Any()).Return(nil, nil)
	source.EXPECT().LatestCompleteInstant(gomock.Any()).Return(instant, nil)
	st.EXPECT().CountPendingBalancesFrom(gomock.Any(), instant).Return(int64(0), nil)
	st.EXPECT().GetPendingBalances(gomock.Any(), instant, int64(0), 100).Return(pendingAt(t0)[:1], nil)
	source.EXPECT().BalanceAsOf(gomock.Any(), ALICE, t0).Return(decimal.NewFromInt(3), true, nil)
	// Another run filled the row first
	st.EXPECT().FillBalance(gomock.Any(), int64(1), decimal.NewFromInt(3)).Return(false, nil)
	st.EXPECT().MarkSnapshotsSynced(gomock.Any(), []int64{10}).Return(nil, nil)

	require.NoError(t, r.Run(context.Background()))
}

func TestReconciler_Paginates(t *testing.T) {
	r, st, source := setupReconciler(t, 2)
	instant := t0.Add(time.Hour)
	t1 := t0.Add(30 * time.Minute)

	st.EXPECT().MarkFilledSnapshotsSynced(gomock.Any()).Return(nil, nil)
	source.EXPECT().LatestCompleteInstant(gomock.Any()).Return(instant, nil)
	st.EXPECT().CountPendingBalancesFrom(gomock.Any(), instant).Return(int64(0), nil)
	gomock.InOrder(
		st.EXPECT().GetPendingBalances(gomock.Any(), instant, int64(0), 2).Return(pendingAt(t0), nil),
		st.EXPECT().GetPendingBalances(gomock.Any(), instant, int64(2), 2).Return([]store.PendingBalance{
			{ID: 3, PowerSnapshotID: 11, UserID: 1, WalletAddress: ALICE, SnapshotTime: t1},
		}, nil),
	)

	source.EXPECT().BalanceAsOf(gomock.Any(), ALICE, t0).Return(decimal.NewFromInt(1), true, nil)
	source.EXPECT().BalanceAsOf(gomock.Any(), BOB, t0).Return(decimal.NewFromInt(2), true, nil)
	source.EXPECT().BalanceAsOf(gomock.Any(), ALICE, t1).Return(decimal.NewFromInt(4), true, nil)
	st.EXPECT().FillBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(3)
	st.EXPECT().MarkSnapshotsSynced(gomock.Any(), []int64{10}).Return([]int64{10}, nil)
	st.EXPECT().MarkSnapshotsSynced(gomock.Any(), []int64{11}).Return([]int64{11}, nil)

	require.NoError(t, r.Run(context.Background()))
}

func TestReconciler_UpstreamFailureDefersBatch(t *testing.T) {
	r, st, source := setupReconciler(t, 100)
	instant := t0.Add(time.Second)

	st.EXPECT().MarkFilledSnapshotsSynced(gomock.Any()).Return(nil, nil)
	source.EXPECT().LatestCompleteInstant(gomock.Any()).Return(instant, nil)
	st.EXPECT().CountPendingBalancesFrom(gomock.Any(), instant).Return(int64(0), nil)
	st.EXPECT().GetPendingBalances(gomock.Any(), instant, int64(0), 100).Return(pendingAt(t0), nil)

	source.EXPECT().BalanceAsOf(gomock.Any(), gomock.Any(), t0).
		Return(decimal.Zero, false, domain.ErrUpstreamUnavailable).
		MinTimes(1).MaxTimes(2)
	st.EXPECT().FillBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()
	st.EXPECT().MarkSnapshotsSynced(gomock.Any(), []int64{10}).Return(nil, nil)

	err := r.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestReconciler_LatestInstantUnavailable(t *testing.T) {
	r, st, source := setupReconciler(t, 100)

	st.EXPECT().MarkFilledSnapshotsSynced(gomock.Any()).Return(nil, nil)
	source.EXPECT().LatestCompleteInstant(gomock.Any()).Return(time.Time{}, domain.ErrUpstreamUnavailable)

	err := r.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestReconciler_StoreFailure(t *testing.T) {
	r, st, source := setupReconciler(t, 100)
	instant := t0.Add(time.Second)

	st.EXPECT().MarkFilledSnapshotsSynced(gomock.Any()).Return(nil, nil)
	source.EXPECT().LatestCompleteInstant(gomock.Any()).Return(instant, nil)
	st.EXPECT().CountPendingBalancesFrom(gomock.Any(), instant).Return(int64(0), nil)
	st.EXPECT().GetPendingBalances(gomock.Any(), instant, int64(0), 100).Return(nil, errors.New("connection refused"))

	require.Error(t, r.Run(context.Background()))
}

func TestReconciler_UnqueryableWalletIsFilledWithZero(t *testing.T) {
	r, st, source := setupReconciler(t, 100)
	instant := t0.Add(time.Second)
	const notHex = "So1anaWa11etNotHex"

	st.EXPECT().MarkFilledSnapshotsSynced(gomock.Any()).Return(nil, nil)
	source.EXPECT().LatestCompleteInstant(gomock.Any()).Return(instant, nil)
	st.EXPECT().CountPendingBalancesFrom(gomock.Any(), instant).Return(int64(0), nil)
	st.EXPECT().GetPendingBalances(gomock.Any(), instant, int64(0), 100).Return([]store.PendingBalance{
		{ID: 1, PowerSnapshotID: 10, UserID: 1, WalletAddress: notHex, SnapshotTime: t0},
		{ID: 2, PowerSnapshotID: 10, UserID: 2, WalletAddress: ALICE, SnapshotTime: t0},
	}, nil)

	source.EXPECT().BalanceAsOf(gomock.Any(), notHex, t0).
		Return(decimal.Zero, false, fmt.Errorf("%w: not a wallet address", domain.ErrInvalidInput))
	source.EXPECT().BalanceAsOf(gomock.Any(), ALICE, t0).Return(decimal.NewFromInt(7), true, nil)

	st.EXPECT().FillBalance(gomock.Any(), int64(1), decimal.Zero).Return(true, nil)
	st.EXPECT().FillBalance(gomock.Any(), int64(2), decimal.NewFromInt(7)).Return(true, nil)
	st.EXPECT().MarkSnapshotsSynced(gomock.Any(), []int64{10}).Return([]int64{10}, nil)

	require.NoError(t, r.Run(context.Background()))
}

func TestReconciler_SyncsSnapshotFilledByInterruptedCycle(t *testing.T) {
	r, st, source := setupReconciler(t, 100)
	instant := t0.Add(time.Second)

	// First cycle fills every row but loses its synced check
	st.EXPECT().MarkFilledSnapshotsSynced(gomock.Any()).Return(nil, nil)
	source.EXPECT().LatestCompleteInstant(gomock.Any()).Return(instant, nil).Times(2)
	st.EXPECT().CountPendingBalancesFrom(gomock.Any(), instant).Return(int64(0), nil).Times(2)
	gomock.InOrder(
		st.EXPECT().GetPendingBalances(gomock.Any(), instant, int64(0), 100).Return(pendingAt(t0), nil),
		st.EXPECT().GetPendingBalances(gomock.Any(), instant, int64(0), 100).Return(nil, nil),
	)
	source.EXPECT().BalanceAsOf(gomock.Any(), ALICE, t0).Return(decimal.NewFromInt(1), true, nil)
	source.EXPECT().BalanceAsOf(gomock.Any(), BOB, t0).Return(decimal.NewFromInt(2), true, nil)
	st.EXPECT().FillBalance(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	st.EXPECT().MarkSnapshotsSynced(gomock.Any(), []int64{10}).Return(nil, errors.New("connection reset"))

	require.Error(t, r.Run(context.Background()))

	// The next cycle has nothing pending for snapshot 10 and still syncs it
	st.EXPECT().MarkFilledSnapshotsSynced(gomock.Any()).Return([]int64{10}, nil)

	require.NoError(t, r.Run(context.Background()))
}

func TestReconciler_RecoverySweepFailure(t *testing.T) {
	r, st, _ := setupReconciler(t, 100)

	st.EXPECT().MarkFilledSnapshotsSynced(gomock.Any()).Return(nil, errors.New("connection refused"))

	require.Error(t, r.Run(context.Background()))
}
