package ranking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/logger"
	"github.com/feral-file/power-ledger/internal/outbox"
	"github.com/feral-file/power-ledger/internal/round"
	"github.com/feral-file/power-ledger/internal/store"
	"github.com/feral-file/power-ledger/internal/store/schema"
)

// Query narrows a ranking read. A nil round means the current round.
type Query struct {
	Round     *int
	ProjectID *int64
	UserID    *int64
}

// Aggregator derives per-project power rankings from reconciled snapshots
//
//go:generate mockgen -source=ranking.go -destination=../mocks/ranking.go -package=mocks -mock_names=Aggregator=MockRankingAggregator,Detector=MockRankChangeDetector
type Aggregator interface {
	// Refresh recomputes and overwrites the ranking of a round from the latest synced snapshot at or before it
	Refresh(ctx context.Context, round int) ([]domain.ProjectRanking, error)
	// GetRanking reads stored rankings
	GetRanking(ctx context.Context, query Query) ([]domain.ProjectRanking, error)
}

// Detector finds projects whose rank moved since the previous round
type Detector interface {
	// GetRankChanges diffs the current round's ranking with the frozen ranks of the previous round
	GetRankChanges(ctx context.Context) ([]domain.RankChange, error)
	// EnqueueRankChanges writes a notification for every rank change of a round to the outbox
	EnqueueRankChanges(ctx context.Context, round int) (int64, error)
}

// RankingStore is the persistence the ranking service needs
type RankingStore interface {
	store.SnapshotStore
	store.RankingStore
	store.OutboxStore
}

// Service implements Aggregator and Detector
type Service struct {
	store    RankingStore
	provider round.Provider
	builder  *outbox.Builder
}

// NewService creates a new ranking service
func NewService(s RankingStore, provider round.Provider, builder *outbox.Builder) *Service {
	return &Service{
		store:    s,
		provider: provider,
		builder:  builder,
	}
}

// Refresh recomputes the ranking of a round. Without a synced snapshot the round's ranking is emptied.
func (s *Service) Refresh(ctx context.Context, round int) ([]domain.ProjectRanking, error) {
	snapshot, err := s.store.GetLatestSyncedSnapshot(ctx, round)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest synced snapshot: %w", err)
	}

	var rankings []schema.ProjectPowerRanking
	if snapshot != nil {
		powers, err := s.store.GetSnapshotProjectPowers(ctx, snapshot.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get project powers of snapshot %d: %w", snapshot.ID, err)
		}
		rankings = ComputeRankings(round, snapshot.ID, powers)
	}

	if err := s.store.ReplaceProjectPowerRankings(ctx, round, rankings); err != nil {
		return nil, fmt.Errorf("failed to replace rankings of round %d: %w", round, err)
	}

	fields := []zap.Field{zap.Int("round", round), zap.Int("projects", len(rankings))}
	if snapshot != nil {
		fields = append(fields, zap.Int64("snapshotID", snapshot.ID))
	}
	logger.InfoCtx(ctx, "Ranking refreshed", fields...)

	return toDomain(rankings), nil
}

// GetRanking reads stored rankings, ordered by rank then project id
func (s *Service) GetRanking(ctx context.Context, query Query) ([]domain.ProjectRanking, error) {
	var roundNumber int
	if query.Round != nil {
		roundNumber = *query.Round
	} else {
		current, err := s.provider.CurrentRound(ctx)
		if err != nil {
			return nil, err
		}
		roundNumber = current
	}
	if roundNumber <= 0 {
		return nil, fmt.Errorf("%w: round must be positive", domain.ErrInvalidInput)
	}

	rankings, err := s.store.GetProjectPowerRankings(ctx, store.RankingFilter{
		Round:     roundNumber,
		ProjectID: query.ProjectID,
		UserID:    query.UserID,
	})
	if err != nil {
		return nil, err
	}

	return toDomain(rankings), nil
}

// GetRankChanges diffs the current round's ranking with the frozen ranks of the previous round
func (s *Service) GetRankChanges(ctx context.Context) ([]domain.RankChange, error) {
	current, err := s.provider.CurrentRound(ctx)
	if err != nil {
		return nil, err
	}

	return s.store.GetRankChanges(ctx, current, current-1)
}

// EnqueueRankChanges writes the rank changes of a round to the outbox. Already enqueued changes are skipped.
func (s *Service) EnqueueRankChanges(ctx context.Context, round int) (int64, error) {
	changes, err := s.store.GetRankChanges(ctx, round, round-1)
	if err != nil {
		return 0, err
	}
	if len(changes) == 0 {
		return 0, nil
	}

	events, err := s.builder.RankChangeEvents(round, changes)
	if err != nil {
		return 0, err
	}

	enqueued, err := s.store.EnqueueOutboxEvents(ctx, events)
	if err != nil {
		return 0, fmt.Errorf("failed to enqueue rank changes: %w", err)
	}

	logger.InfoCtx(ctx, "Rank changes enqueued",
		zap.Int("round", round),
		zap.Int("changes", len(changes)),
		zap.Int64("enqueued", enqueued))

	return enqueued, nil
}

func toDomain(rankings []schema.ProjectPowerRanking) []domain.ProjectRanking {
	result := make([]domain.ProjectRanking, 0, len(rankings))
	for _, r := range rankings {
		result = append(result, domain.ProjectRanking{
			ProjectID:  r.ProjectID,
			Round:      r.Round,
			TotalPower: r.TotalPower,
			Rank:       r.Rank,
		})
	}
	return result
}
