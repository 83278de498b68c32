package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// PoolSettings bounds the database/sql pool. Zero values take defaults.
type PoolSettings struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

const (
	defaultMaxOpenConns    = 20
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 5 * time.Minute
	defaultConnMaxIdleTime = 10 * time.Minute
)

// withDefaults fills zero values and keeps idle connections within the open limit.
// database/sql reads MaxOpenConns=0 as unlimited, which the allocation path must never get.
func (p PoolSettings) withDefaults() PoolSettings {
	if p.MaxOpenConns <= 0 {
		p.MaxOpenConns = defaultMaxOpenConns
	}
	if p.MaxIdleConns <= 0 {
		p.MaxIdleConns = defaultMaxIdleConns
	}
	if p.ConnMaxLifetime <= 0 {
		p.ConnMaxLifetime = defaultConnMaxLifetime
	}
	if p.ConnMaxIdleTime <= 0 {
		p.ConnMaxIdleTime = defaultConnMaxIdleTime
	}
	p.MaxIdleConns = min(p.MaxIdleConns, p.MaxOpenConns)
	return p
}

// ConfigureConnectionPool applies settings to the pool under db
func ConfigureConnectionPool(db *gorm.DB, settings PoolSettings) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	p := settings.withDefaults()
	sqlDB.SetMaxOpenConns(p.MaxOpenConns)
	sqlDB.SetMaxIdleConns(p.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(p.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(p.ConnMaxIdleTime)
	return nil
}

// UseReadReplica routes plain reads to the replica at readDSN. Writes and
// transactions stay on the primary.
func UseReadReplica(db *gorm.DB, readDSN string) error {
	return db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{postgres.Open(readDSN)},
		Policy:   dbresolver.RandomPolicy{},
	}))
}

// calculateSafeBatchSize computes the optimal batch size for bulk inserts to avoid
// PostgreSQL's "extended protocol limited to 65535 parameters" error.
//
// PostgreSQL's extended protocol has a hard limit of 65535 parameters per query.
// When doing batch inserts with GORM, each record consumes multiple parameters
// (one per field being inserted), and ON CONFLICT clauses may add additional parameters.
//
// Parameters:
//   - totalRecords: total number of records to insert
//   - fieldsPerRecord: number of fields/parameters per record
//
// Returns the safe batch size that won't exceed the parameter limit.
//
// Example with headroom of 1000:
//   - PowerBalanceSnapshot: 4 fields → (65,535 - 1,000) / 4 = 16,133 records/batch
//   - PowerAllocationSnapshot: 4 fields → (65,535 - 1,000) / 4 = 16,133 records/batch
//   - ProjectPowerRanking: 6 fields → (65,535 - 1,000) / 6 = 10,755 records/batch
//
// The function uses a total headroom to account for batch-level overhead:
//   - GORM-added timestamp fields (created_at, updated_at) across all records
//   - ON CONFLICT clause parameters (can be significant with multi-column conflicts)
//   - Query metadata and internal GORM bookkeeping
//
// Total headroom is more accurate than per-record overhead because some costs
// are fixed per batch, not scaled per record.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000 // Total parameter headroom for batch-level overhead

	// Reserve headroom from total available parameters
	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// classifyError maps PostgreSQL conflicts onto the domain error taxonomy
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03": // serialization_failure, deadlock_detected, lock_not_available
			return fmt.Errorf("%w: %s", domain.ErrConcurrentModification, pgErr.Message)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s", domain.ErrNotFound, pgErr.Message)
		}
	}

	return err
}

// UpdateUserAllocations runs planner in a transaction holding the user's advisory lock.
// The transaction is READ COMMITTED: each statement after the lock is granted sees the previous
// holder's commit. A serializable snapshot would be taken before the wait and fail with 40001.
func (s *pgStore) UpdateUserAllocations(ctx context.Context, userID int64, planner AllocationPlanner) ([]schema.PowerAllocation, error) {
	var active []schema.PowerAllocation

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serialize writers of the same user; different users never contend
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", userID).Error; err != nil {
			return fmt.Errorf("failed to lock user allocations: %w", err)
		}

		var current []schema.PowerAllocation
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			Order("project_id ASC").
			Find(&current).Error; err != nil {
			return fmt.Errorf("failed to load user allocations: %w", err)
		}

		changes, err := planner(current)
		if err != nil {
			return err
		}

		existing := make(map[int64]schema.PowerAllocation, len(current))
		for _, row := range current {
			existing[row.ProjectID] = row
		}

		now := time.Now().UTC()
		rows := make([]schema.PowerAllocation, 0, len(changes))
		for _, change := range changes {
			if row, ok := existing[change.ProjectID]; ok && row.Percentage.Equal(change.Percentage) {
				continue
			}
			rows = append(rows, schema.PowerAllocation{
				UserID:     userID,
				ProjectID:  change.ProjectID,
				Percentage: change.Percentage,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
		}

		if len(rows) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "project_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"percentage", "updated_at"}),
			}).Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to upsert allocations: %w", err)
			}
		}

		if err := tx.
			Where("user_id = ? AND percentage > 0", userID).
			Order("project_id ASC").
			Find(&active).Error; err != nil {
			return fmt.Errorf("failed to load active allocations: %w", err)
		}

		return nil
	}, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, classifyError(err)
	}

	return active, nil
}

// GetActiveAllocations returns the user's allocations with a positive percentage
func (s *pgStore) GetActiveAllocations(ctx context.Context, userID int64) ([]schema.PowerAllocation, error) {
	var rows []schema.PowerAllocation
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND percentage > 0", userID).
		Order("project_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get active allocations: %w", err)
	}

	return rows, nil
}

// GetCurrentRound returns the current round number
func (s *pgStore) GetCurrentRound(ctx context.Context) (int, error) {
	var round schema.PowerRound
	err := s.db.WithContext(ctx).Where("id = ?", 1).First(&round).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: power round", domain.ErrNotFound)
		}
		return 0, fmt.Errorf("failed to get current round: %w", err)
	}

	return round.Round, nil
}

// FinalizeRound advances the round and freezes the ranking of the finished round
func (s *pgStore) FinalizeRound(ctx context.Context, from, to int) (bool, error) {
	advanced := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.PowerRound{}).
			Where("id = ? AND round = ?", 1, from).
			Updates(map[string]interface{}{
				"round":      to,
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to advance round: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		advanced = true

		if err := tx.Where("round = ?", from).Delete(&schema.PreviousRoundRank{}).Error; err != nil {
			return fmt.Errorf("failed to clear previous round ranks: %w", err)
		}

		if err := tx.Exec(`
			INSERT INTO previous_round_ranks (round, project_id, rank)
			SELECT round, project_id, rank
			FROM project_power_rankings
			WHERE round = ?`, from).Error; err != nil {
			return fmt.Errorf("failed to copy previous round ranks: %w", err)
		}

		return nil
	})
	if err != nil {
		return false, classifyError(err)
	}

	return advanced, nil
}

// uniqueInt64s returns the distinct values in ascending order
func uniqueInt64s(values []int64) []int64 {
	seen := make(map[int64]struct{}, len(values))
	out := make([]int64, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
