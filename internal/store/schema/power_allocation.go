package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// PowerAllocation represents the power_allocations table - a user's percentage of power per project.
// Rows with a zero percentage are kept as history and are not active.
type PowerAllocation struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID references the allocating user
	UserID int64 `gorm:"column:user_id;not null;uniqueIndex:idx_power_allocations_user_project,priority:1"`
	// ProjectID references the receiving project
	ProjectID int64 `gorm:"column:project_id;not null;uniqueIndex:idx_power_allocations_user_project,priority:2"`
	// Percentage is in [0, 100] with two decimal places
	Percentage decimal.Decimal `gorm:"column:percentage;not null;type:numeric(5,2)"`
	// CreatedAt is the timestamp when this allocation was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this allocation was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PowerAllocation model
func (PowerAllocation) TableName() string {
	return "power_allocations"
}

// IsActive reports whether the allocation counts toward the user's 100%
func (a PowerAllocation) IsActive() bool {
	return a.Percentage.IsPositive()
}

// PowerRound represents the power_round table - a single row holding the current round
type PowerRound struct {
	// ID is always 1
	ID int `gorm:"column:id;primaryKey"`
	// Round is the current round number
	Round int `gorm:"column:round;not null"`
	// UpdatedAt is the timestamp when the round was last advanced
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PowerRound model
func (PowerRound) TableName() string {
	return "power_round"
}
