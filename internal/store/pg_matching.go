package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/store/schema"
)

// GetFundingRound returns a funding round or nil when it does not exist
func (s *pgStore) GetFundingRound(ctx context.Context, id int64) (*schema.FundingRound, error) {
	var round schema.FundingRound
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&round).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get funding round: %w", err)
	}

	return &round, nil
}

// GetActiveScoreOverrides returns every active global score override
func (s *pgStore) GetActiveScoreOverrides(ctx context.Context) ([]schema.GlobalScoreOverride, error) {
	var overrides []schema.GlobalScoreOverride
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("scheme ASC").
		Find(&overrides).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get score overrides: %w", err)
	}

	return overrides, nil
}

// GetMatchingDonations returns verified donations of a round to verified and eligible projects
func (s *pgStore) GetMatchingDonations(ctx context.Context, fundingRoundID int64) ([]DonationRecord, error) {
	var donations []DonationRecord
	err := s.db.WithContext(ctx).
		Table("donations AS d").
		Select(`d.project_id, d.user_id, d.value_usd, d.scores_captured_at,
			COALESCE(u.scores, '{}'::jsonb) AS live_scores,
			COALESCE(d.donor_scores_at_round_end, '{}'::jsonb) AS stamped_scores`).
		Joins("JOIN projects p ON p.id = d.project_id").
		Joins("JOIN users u ON u.id = d.user_id").
		Where("d.funding_round_id = ? AND d.status = ?", fundingRoundID, domain.DonationStatusVerified).
		Where("p.verified = ? AND p.eligible = ?", true, true).
		Order("d.project_id ASC, d.user_id ASC, d.id ASC").
		Scan(&donations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get matching donations: %w", err)
	}

	return donations, nil
}

// GetUnstampedDonors returns donors of a round with donations whose scores were not captured
func (s *pgStore) GetUnstampedDonors(ctx context.Context, fundingRoundID int64) ([]Donor, error) {
	var donors []Donor
	err := s.db.WithContext(ctx).
		Table("donations AS d").
		Distinct("d.user_id", "u.wallet_address").
		Joins("JOIN users u ON u.id = d.user_id").
		Where("d.funding_round_id = ? AND d.scores_captured_at IS NULL", fundingRoundID).
		Order("d.user_id ASC").
		Scan(&donors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get unstamped donors: %w", err)
	}

	return donors, nil
}

// StampDonorScores captures a donor's scores on their not yet stamped donations of a round
func (s *pgStore) StampDonorScores(ctx context.Context, fundingRoundID, userID int64, scores schema.Scores, at time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Donation{}).
		Where("funding_round_id = ? AND user_id = ? AND scores_captured_at IS NULL", fundingRoundID, userID).
		Updates(map[string]interface{}{
			"donor_scores_at_round_end": datatypes.NewJSONType(scores),
			"scores_captured_at":        at.UTC(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to stamp donor scores: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// ReplaceMatchingAggregates overwrites every aggregate of a round
func (s *pgStore) ReplaceMatchingAggregates(ctx context.Context, fundingRoundID int64, aggregates []schema.ProjectMatchingAggregate) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("funding_round_id = ?", fundingRoundID).
			Delete(&schema.ProjectMatchingAggregate{}).Error; err != nil {
			return fmt.Errorf("failed to clear matching aggregates: %w", err)
		}

		if len(aggregates) == 0 {
			return nil
		}

		now := time.Now().UTC()
		for i := range aggregates {
			aggregates[i].ID = 0
			aggregates[i].FundingRoundID = fundingRoundID
			aggregates[i].UpdatedAt = now
		}

		batchSize := calculateSafeBatchSize(len(aggregates), 6)
		if err := tx.CreateInBatches(&aggregates, batchSize).Error; err != nil {
			return fmt.Errorf("failed to create matching aggregates: %w", err)
		}

		return nil
	})

	return classifyError(err)
}

// DeactivateFundingRound clears the round's active flag
func (s *pgStore) DeactivateFundingRound(ctx context.Context, fundingRoundID int64) error {
	result := s.db.WithContext(ctx).
		Model(&schema.FundingRound{}).
		Where("id = ?", fundingRoundID).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate funding round: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: funding round %d", domain.ErrNotFound, fundingRoundID)
	}

	return nil
}
