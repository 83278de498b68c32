package ranking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/power-ledger/internal/adapter"
	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/mocks"
	"github.com/feral-file/power-ledger/internal/outbox"
	"github.com/feral-file/power-ledger/internal/ranking"
	"github.com/feral-file/power-ledger/internal/store"
	"github.com/feral-file/power-ledger/internal/store/schema"
)

var now = time.Date(2024, 4, 1, 0, 5, 0, 0, time.UTC)

type serviceMocks struct {
	store    *mocks.MockStore
	provider *mocks.MockRoundProvider
}

func setupService(t *testing.T) (*ranking.Service, *serviceMocks) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		store:    mocks.NewMockStore(ctrl),
		provider: mocks.NewMockRoundProvider(ctrl),
	}
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	builder := outbox.NewBuilder(adapter.NewJSON(), clock)
	return ranking.NewService(m.store, m.provider, builder), m
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestService_Refresh(t *testing.T) {
	svc, m := setupService(t)

	m.store.EXPECT().GetLatestSyncedSnapshot(gomock.Any(), 16).Return(&schema.PowerSnapshot{ID: 42}, nil)
	m.store.EXPECT().GetSnapshotProjectPowers(gomock.Any(), int64(42)).Return([]store.ProjectPower{
		{ProjectID: 1, TotalPower: dec("80")},
		{ProjectID: 2, TotalPower: dec("1220")},
	}, nil)
	m.store.EXPECT().ReplaceProjectPowerRankings(gomock.Any(), 16, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, rankings []schema.ProjectPowerRanking) error {
			require.Len(t, rankings, 2)
			assert.Equal(t, int64(2), rankings[0].ProjectID)
			assert.Equal(t, 1, rankings[0].Rank)
			assert.Equal(t, int64(42), rankings[0].PowerSnapshotID)
			return nil
		})

	rankings, err := svc.Refresh(context.Background(), 16)
	require.NoError(t, err)
	require.Len(t, rankings, 2)
	assert.Equal(t, domain.ProjectRanking{ProjectID: 2, Round: 16, TotalPower: dec("1220"), Rank: 1}, rankings[0])
	assert.Equal(t, domain.ProjectRanking{ProjectID: 1, Round: 16, TotalPower: dec("80"), Rank: 2}, rankings[1])
}

func TestService_RefreshWithoutSyncedSnapshotEmptiesRound(t *testing.T) {
	svc, m := setupService(t)

	m.store.EXPECT().GetLatestSyncedSnapshot(gomock.Any(), 3).Return(nil, nil)
	m.store.EXPECT().ReplaceProjectPowerRankings(gomock.Any(), 3, gomock.Len(0)).Return(nil)

	rankings, err := svc.Refresh(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, rankings)
}

func TestService_RefreshStoreFailure(t *testing.T) {
	svc, m := setupService(t)

	m.store.EXPECT().GetLatestSyncedSnapshot(gomock.Any(), 3).Return(nil, errors.New("connection refused"))

	_, err := svc.Refresh(context.Background(), 3)
	require.Error(t, err)
}

func TestService_GetRanking(t *testing.T) {
	svc, m := setupService(t)
	projectID := int64(2)
	userID := int64(7)

	m.provider.EXPECT().CurrentRound(gomock.Any()).Return(16, nil)
	m.store.EXPECT().GetProjectPowerRankings(gomock.Any(), store.RankingFilter{Round: 16, ProjectID: &projectID, UserID: &userID}).
		Return([]schema.ProjectPowerRanking{{Round: 16, ProjectID: 2, TotalPower: dec("5"), Rank: 3}}, nil)

	rankings, err := svc.GetRanking(context.Background(), ranking.Query{ProjectID: &projectID, UserID: &userID})
	require.NoError(t, err)
	assert.Equal(t, []domain.ProjectRanking{{ProjectID: 2, Round: 16, TotalPower: dec("5"), Rank: 3}}, rankings)
}

func TestService_GetRankingExplicitRound(t *testing.T) {
	svc, m := setupService(t)
	roundNumber := 4

	m.store.EXPECT().GetProjectPowerRankings(gomock.Any(), store.RankingFilter{Round: 4}).Return(nil, nil)

	rankings, err := svc.GetRanking(context.Background(), ranking.Query{Round: &roundNumber})
	require.NoError(t, err)
	assert.Empty(t, rankings)
}

func TestService_GetRankingInvalidRound(t *testing.T) {
	svc, _ := setupService(t)
	roundNumber := 0

	_, err := svc.GetRanking(context.Background(), ranking.Query{Round: &roundNumber})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_GetRankChanges(t *testing.T) {
	svc, m := setupService(t)
	changes := []domain.RankChange{{ProjectID: 1, OldRank: 2, NewRank: 1}}

	m.provider.EXPECT().CurrentRound(gomock.Any()).Return(17, nil)
	m.store.EXPECT().GetRankChanges(gomock.Any(), 17, 16).Return(changes, nil)

	got, err := svc.GetRankChanges(context.Background())
	require.NoError(t, err)
	assert.Equal(t, changes, got)
}

func TestService_EnqueueRankChanges(t *testing.T) {
	svc, m := setupService(t)

	m.store.EXPECT().GetRankChanges(gomock.Any(), 17, 16).Return([]domain.RankChange{
		{ProjectID: 1, OldRank: 2, NewRank: 1},
		{ProjectID: 2, OldRank: 1, NewRank: 2},
	}, nil)
	m.store.EXPECT().EnqueueOutboxEvents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, events []schema.OutboxEvent) (int64, error) {
			require.Len(t, events, 2)
			assert.Equal(t, "power.rank_changed.1", events[0].Topic)
			assert.Equal(t, "17:1:1", events[0].DedupeKey)
			// One change was already enqueued by an earlier refresh
			return 1, nil
		})

	enqueued, err := svc.EnqueueRankChanges(context.Background(), 17)
	require.NoError(t, err)
	assert.Equal(t, int64(1), enqueued)
}

func TestService_EnqueueRankChangesNothingChanged(t *testing.T) {
	svc, m := setupService(t)

	m.store.EXPECT().GetRankChanges(gomock.Any(), 2, 1).Return(nil, nil)

	enqueued, err := svc.EnqueueRankChanges(context.Background(), 2)
	require.NoError(t, err)
	assert.Zero(t, enqueued)
}
