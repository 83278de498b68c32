package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/store/schema"
)

// ReplaceProjectPowerRankings overwrites every ranking row of a round
func (s *pgStore) ReplaceProjectPowerRankings(ctx context.Context, round int, rankings []schema.ProjectPowerRanking) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("round = ?", round).Delete(&schema.ProjectPowerRanking{}).Error; err != nil {
			return fmt.Errorf("failed to clear rankings: %w", err)
		}

		if len(rankings) == 0 {
			return nil
		}

		for i := range rankings {
			rankings[i].ID = 0
			rankings[i].Round = round
		}

		batchSize := calculateSafeBatchSize(len(rankings), 6)
		if err := tx.CreateInBatches(&rankings, batchSize).Error; err != nil {
			return fmt.Errorf("failed to create rankings: %w", err)
		}

		return nil
	})

	return classifyError(err)
}

// GetProjectPowerRankings returns rankings ordered by rank then project id
func (s *pgStore) GetProjectPowerRankings(ctx context.Context, filter RankingFilter) ([]schema.ProjectPowerRanking, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.ProjectPowerRanking{}).
		Where("round = ?", filter.Round)

	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}

	if filter.UserID != nil {
		allocated := s.db.WithContext(ctx).
			Table("power_allocation_snapshots AS pas").
			Select("1").
			Where("pas.power_snapshot_id = project_power_rankings.power_snapshot_id").
			Where("pas.project_id = project_power_rankings.project_id").
			Where("pas.user_id = ?", *filter.UserID)
		query = query.Where("EXISTS (?)", allocated)
	}

	var rankings []schema.ProjectPowerRanking
	if err := query.Order("rank ASC, project_id ASC").Find(&rankings).Error; err != nil {
		return nil, fmt.Errorf("failed to get project power rankings: %w", err)
	}

	return rankings, nil
}

// GetRankChanges joins the ranking of currentRound to the frozen ranks of previousRound
func (s *pgStore) GetRankChanges(ctx context.Context, currentRound, previousRound int) ([]domain.RankChange, error) {
	var changes []domain.RankChange
	err := s.db.WithContext(ctx).
		Table("project_power_rankings AS r").
		Select("r.project_id, p.rank AS old_rank, r.rank AS new_rank").
		Joins("JOIN previous_round_ranks p ON p.project_id = r.project_id AND p.round = ?", previousRound).
		Where("r.round = ? AND r.rank <> p.rank", currentRound).
		Order("r.project_id ASC").
		Scan(&changes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get rank changes: %w", err)
	}

	return changes, nil
}
