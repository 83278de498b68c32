package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectPowerRanking represents the project_power_rankings table - derived, fully overwritten per round
type ProjectPowerRanking struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Round is the round the ranking was computed for
	Round int `gorm:"column:round;not null;uniqueIndex:idx_project_power_rankings_round_project,priority:1"`
	// ProjectID references the ranked project
	ProjectID int64 `gorm:"column:project_id;not null;uniqueIndex:idx_project_power_rankings_round_project,priority:2"`
	// TotalPower is the sum of percentage/100 x balance over the project's allocators
	TotalPower decimal.Decimal `gorm:"column:total_power;not null;type:numeric(78,18)"`
	// Rank is the dense rank by total power descending
	Rank int `gorm:"column:rank;not null"`
	// PowerSnapshotID references the synced snapshot the ranking was computed from
	PowerSnapshotID int64 `gorm:"column:power_snapshot_id;not null"`
	// UpdatedAt is the timestamp when this ranking was last computed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ProjectPowerRanking model
func (ProjectPowerRanking) TableName() string {
	return "project_power_rankings"
}

// PreviousRoundRank represents the previous_round_ranks table - frozen ranks used for diffing
type PreviousRoundRank struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Round is the round the rank was frozen for
	Round int `gorm:"column:round;not null;uniqueIndex:idx_previous_round_ranks_round_project,priority:1"`
	// ProjectID references the ranked project
	ProjectID int64 `gorm:"column:project_id;not null;uniqueIndex:idx_previous_round_ranks_round_project,priority:2"`
	// Rank is the frozen dense rank
	Rank int `gorm:"column:rank;not null"`
}

// TableName specifies the table name for the PreviousRoundRank model
func (PreviousRoundRank) TableName() string {
	return "previous_round_ranks"
}
