package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/feral-file/power-ledger/internal/store/schema"
)

// CreatePowerSnapshot freezes every active allocation to a verified project
func (s *pgStore) CreatePowerSnapshot(ctx context.Context, input CreatePowerSnapshotInput) (*CreatePowerSnapshotResult, error) {
	result := &CreatePowerSnapshotResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var allocations []schema.PowerAllocationSnapshot
		if err := tx.Table("power_allocations AS pa").
			Select("pa.user_id, pa.project_id, pa.percentage").
			Joins("JOIN projects p ON p.id = pa.project_id").
			Where("pa.percentage > 0 AND p.verified = ?", true).
			Order("pa.user_id ASC, pa.project_id ASC").
			Scan(&allocations).Error; err != nil {
			return fmt.Errorf("failed to load active allocations: %w", err)
		}

		anchor := input.ChainAnchor
		if anchor != nil {
			var latest sql.NullInt64
			if err := tx.Model(&schema.PowerSnapshot{}).
				Select("MAX(chain_anchor)").
				Row().Scan(&latest); err != nil {
				return fmt.Errorf("failed to get latest chain anchor: %w", err)
			}
			// Anchors only move forward
			if latest.Valid && *anchor <= latest.Int64 {
				anchor = nil
			}
		}

		snapshot := schema.PowerSnapshot{
			Time:        input.Time.UTC().Truncate(time.Microsecond),
			ChainAnchor: anchor,
			Synced:      len(allocations) == 0,
		}
		if err := tx.Create(&snapshot).Error; err != nil {
			return fmt.Errorf("failed to create power snapshot: %w", err)
		}
		result.Snapshot = snapshot

		if len(allocations) == 0 {
			return nil
		}

		userIDs := make([]int64, 0, len(allocations))
		for i := range allocations {
			allocations[i].PowerSnapshotID = snapshot.ID
			userIDs = append(userIDs, allocations[i].UserID)
		}

		batchSize := calculateSafeBatchSize(len(allocations), 4)
		if err := tx.CreateInBatches(&allocations, batchSize).Error; err != nil {
			return fmt.Errorf("failed to create allocation snapshots: %w", err)
		}
		result.AllocationRows = len(allocations)

		userIDs = uniqueInt64s(userIDs)
		balances := make([]schema.PowerBalanceSnapshot, 0, len(userIDs))
		for _, userID := range userIDs {
			balances = append(balances, schema.PowerBalanceSnapshot{
				PowerSnapshotID: snapshot.ID,
				UserID:          userID,
			})
		}

		batchSize = calculateSafeBatchSize(len(balances), 4)
		if err := tx.CreateInBatches(&balances, batchSize).Error; err != nil {
			return fmt.Errorf("failed to create balance snapshots: %w", err)
		}
		result.BalanceRows = len(balances)

		return nil
	})
	if err != nil {
		return nil, classifyError(err)
	}

	return result, nil
}

// GetUnassignedSnapshots returns snapshots without a round number with an id greater than afterID, by id
func (s *pgStore) GetUnassignedSnapshots(ctx context.Context, afterID int64, limit int) ([]schema.PowerSnapshot, error) {
	var snapshots []schema.PowerSnapshot
	err := s.db.WithContext(ctx).
		Where("round_number IS NULL AND id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get unassigned snapshots: %w", err)
	}

	return snapshots, nil
}

// SetSnapshotRound assigns a round number to a snapshot that has none
func (s *pgStore) SetSnapshotRound(ctx context.Context, snapshotID int64, round int) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.PowerSnapshot{}).
		Where("id = ? AND round_number IS NULL", snapshotID).
		Update("round_number", round)
	if result.Error != nil {
		return false, fmt.Errorf("failed to set snapshot round: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// GetPendingBalances returns null balance placeholders of snapshots taken strictly before `before`
func (s *pgStore) GetPendingBalances(ctx context.Context, before time.Time, afterID int64, limit int) ([]PendingBalance, error) {
	var pending []PendingBalance
	err := s.db.WithContext(ctx).
		Table("power_balance_snapshots AS pbs").
		Select("pbs.id, pbs.power_snapshot_id, pbs.user_id, u.wallet_address, ps.time AS snapshot_time").
		Joins("JOIN power_snapshots ps ON ps.id = pbs.power_snapshot_id").
		Joins("JOIN users u ON u.id = pbs.user_id").
		Where("pbs.balance IS NULL AND ps.time < ? AND pbs.id > ?", before, afterID).
		Order("pbs.id ASC").
		Limit(limit).
		Scan(&pending).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pending balances: %w", err)
	}

	return pending, nil
}

// CountPendingBalancesFrom counts null balance placeholders of snapshots taken at or after `from`
func (s *pgStore) CountPendingBalancesFrom(ctx context.Context, from time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Table("power_balance_snapshots AS pbs").
		Joins("JOIN power_snapshots ps ON ps.id = pbs.power_snapshot_id").
		Where("pbs.balance IS NULL AND ps.time >= ?", from).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count pending balances: %w", err)
	}

	return count, nil
}

// FillBalance sets a null balance. It returns false when the row was already filled.
func (s *pgStore) FillBalance(ctx context.Context, balanceID int64, balance decimal.Decimal) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.PowerBalanceSnapshot{}).
		Where("id = ? AND balance IS NULL", balanceID).
		Updates(map[string]interface{}{
			"balance":   balance,
			"filled_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to fill balance: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// MarkSnapshotsSynced flags the given snapshots synced when none of their balances are null
func (s *pgStore) MarkSnapshotsSynced(ctx context.Context, snapshotIDs []int64) ([]int64, error) {
	if len(snapshotIDs) == 0 {
		return nil, nil
	}
	return s.markSynced(ctx, "ps.id IN ? AND", uniqueInt64s(snapshotIDs))
}

// MarkFilledSnapshotsSynced flags every unsynced snapshot that has no null balance left
func (s *pgStore) MarkFilledSnapshotsSynced(ctx context.Context) ([]int64, error) {
	return s.markSynced(ctx, "")
}

func (s *pgStore) markSynced(ctx context.Context, scope string, args ...interface{}) ([]int64, error) {
	var synced []int64
	err := s.db.WithContext(ctx).Raw(`
		UPDATE power_snapshots ps
		SET synced = TRUE
		WHERE `+scope+` ps.synced = FALSE
		  AND NOT EXISTS (
		    SELECT 1 FROM power_balance_snapshots pbs
		    WHERE pbs.power_snapshot_id = ps.id AND pbs.balance IS NULL
		  )
		RETURNING ps.id`, args...).
		Scan(&synced).Error
	if err != nil {
		return nil, fmt.Errorf("failed to mark snapshots synced: %w", err)
	}

	return synced, nil
}

// GetLatestSyncedSnapshot returns the latest synced snapshot assigned to a round at or before `round`
func (s *pgStore) GetLatestSyncedSnapshot(ctx context.Context, round int) (*schema.PowerSnapshot, error) {
	var snapshot schema.PowerSnapshot
	err := s.db.WithContext(ctx).
		Where("synced = ? AND round_number IS NOT NULL AND round_number <= ?", true, round).
		Order("time DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest synced snapshot: %w", err)
	}

	return &snapshot, nil
}

// GetSnapshotProjectPowers sums percentage/100 x balance per project for a snapshot
func (s *pgStore) GetSnapshotProjectPowers(ctx context.Context, snapshotID int64) ([]ProjectPower, error) {
	var powers []ProjectPower
	err := s.db.WithContext(ctx).
		Table("power_allocation_snapshots AS pas").
		Select("pas.project_id, SUM(pas.percentage / 100 * pbs.balance) AS total_power").
		Joins("JOIN power_balance_snapshots pbs ON pbs.power_snapshot_id = pas.power_snapshot_id AND pbs.user_id = pas.user_id").
		Where("pas.power_snapshot_id = ? AND pbs.balance IS NOT NULL", snapshotID).
		Group("pas.project_id").
		Order("pas.project_id ASC").
		Scan(&powers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot project powers: %w", err)
	}

	return powers, nil
}
