package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// PowerSnapshot represents the power_snapshots table - a point-in-time freeze of active allocations
type PowerSnapshot struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Time is the creation instant of the snapshot
	Time time.Time `gorm:"column:time;not null;type:timestamptz;uniqueIndex:idx_power_snapshots_time"`
	// ChainAnchor is an optional monotonically increasing external marker
	ChainAnchor *int64 `gorm:"column:chain_anchor;uniqueIndex:idx_power_snapshots_chain_anchor"`
	// RoundNumber is assigned by the round window assigner
	RoundNumber *int `gorm:"column:round_number;index:idx_power_snapshots_round_number"`
	// Synced is true once every balance placeholder of the snapshot is filled
	Synced bool `gorm:"column:synced;not null;default:false"`
}

// TableName specifies the table name for the PowerSnapshot model
func (PowerSnapshot) TableName() string {
	return "power_snapshots"
}

// PowerAllocationSnapshot represents the power_allocation_snapshots table - immutable allocation copies
type PowerAllocationSnapshot struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PowerSnapshotID references the owning snapshot
	PowerSnapshotID int64 `gorm:"column:power_snapshot_id;not null;index:idx_power_allocation_snapshots_snapshot"`
	// UserID references the allocating user
	UserID int64 `gorm:"column:user_id;not null"`
	// ProjectID references the receiving project
	ProjectID int64 `gorm:"column:project_id;not null"`
	// Percentage is the copied allocation percentage
	Percentage decimal.Decimal `gorm:"column:percentage;not null;type:numeric(5,2)"`
}

// TableName specifies the table name for the PowerAllocationSnapshot model
func (PowerAllocationSnapshot) TableName() string {
	return "power_allocation_snapshots"
}

// PowerBalanceSnapshot represents the power_balance_snapshots table - balance placeholders filled by the reconciler
type PowerBalanceSnapshot struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PowerSnapshotID references the owning snapshot
	PowerSnapshotID int64 `gorm:"column:power_snapshot_id;not null;uniqueIndex:idx_power_balance_snapshots_user_snapshot,priority:2"`
	// UserID references the user the balance belongs to
	UserID int64 `gorm:"column:user_id;not null;uniqueIndex:idx_power_balance_snapshots_user_snapshot,priority:1"`
	// Balance is null until reconciled, then never changes
	Balance decimal.NullDecimal `gorm:"column:balance;type:numeric(78,18)"`
	// FilledAt is the timestamp when the balance was reconciled
	FilledAt *time.Time `gorm:"column:filled_at;type:timestamptz"`
}

// TableName specifies the table name for the PowerBalanceSnapshot model
func (PowerBalanceSnapshot) TableName() string {
	return "power_balance_snapshots"
}
