package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// FundingRound represents the funding_rounds table - a quadratic funding matching pool
type FundingRound struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Title is the display title of the round
	Title string `gorm:"column:title;not null;type:text"`
	// AllocatedFund is the matching pool size
	AllocatedFund decimal.Decimal `gorm:"column:allocated_fund;not null;type:numeric(20,2)"`
	// MinimumScoreThresholds maps scoring scheme to the minimum donor score
	MinimumScoreThresholds datatypes.JSONType[Scores] `gorm:"column:minimum_score_thresholds;not null;type:jsonb;default:'{}'"`
	// MaximumRewardShare is the fraction of the pool one project may receive
	MaximumRewardShare float64 `gorm:"column:maximum_reward_share;not null;default:0.2"`
	// BeginDate is the start of the round window
	BeginDate time.Time `gorm:"column:begin_date;not null;type:timestamptz"`
	// EndDate is the end of the round window
	EndDate time.Time `gorm:"column:end_date;not null;type:timestamptz"`
	// IsActive is cleared when the round closes
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// CreatedAt is the timestamp when this round was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this round was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the FundingRound model
func (FundingRound) TableName() string {
	return "funding_rounds"
}

// GlobalScoreOverride represents the global_score_overrides table.
// An active override replaces the round's threshold for its scheme.
type GlobalScoreOverride struct {
	// Scheme is the scoring scheme the override applies to
	Scheme string `gorm:"column:scheme;primaryKey;type:text"`
	// Value is the minimum score
	Value float64 `gorm:"column:value;not null"`
	// IsActive toggles the override
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// UpdatedAt is the timestamp when this override was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the GlobalScoreOverride model
func (GlobalScoreOverride) TableName() string {
	return "global_score_overrides"
}

// Donation represents the donations table - written by the donation pipeline, read here
type Donation struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProjectID references the receiving project
	ProjectID int64 `gorm:"column:project_id;not null;index:idx_donations_round_project,priority:2"`
	// UserID references the donor
	UserID int64 `gorm:"column:user_id;not null"`
	// FundingRoundID references the funding round the donation counts toward
	FundingRoundID *int64 `gorm:"column:funding_round_id;index:idx_donations_round_project,priority:1"`
	// ValueUSD is the donation value in USD
	ValueUSD float64 `gorm:"column:value_usd;not null"`
	// Status is the donation verification status
	Status string `gorm:"column:status;not null;type:varchar(32)"`
	// DonorScoresAtRoundEnd is the donor's score per scheme captured at round close
	DonorScoresAtRoundEnd datatypes.JSONType[Scores] `gorm:"column:donor_scores_at_round_end;type:jsonb"`
	// ScoresCapturedAt is set once when scores are stamped
	ScoresCapturedAt *time.Time `gorm:"column:scores_captured_at;type:timestamptz"`
	// CreatedAt is the timestamp when this donation was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Donation model
func (Donation) TableName() string {
	return "donations"
}

// ProjectMatchingAggregate represents the project_matching_aggregates table - derived matching results
type ProjectMatchingAggregate struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// FundingRoundID references the funding round
	FundingRoundID int64 `gorm:"column:funding_round_id;not null;uniqueIndex:idx_project_matching_aggregates_round_project,priority:1"`
	// ProjectID references the project
	ProjectID int64 `gorm:"column:project_id;not null;uniqueIndex:idx_project_matching_aggregates_round_project,priority:2"`
	// Weight is the squared sum of square roots of eligible donor totals
	Weight float64 `gorm:"column:weight;not null"`
	// EstimatedMatch is the uncapped proportional share
	EstimatedMatch float64 `gorm:"column:estimated_match;not null"`
	// ActualMatch is the capped final share
	ActualMatch float64 `gorm:"column:actual_match;not null"`
	// UpdatedAt is the timestamp when this aggregate was last computed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ProjectMatchingAggregate model
func (ProjectMatchingAggregate) TableName() string {
	return "project_matching_aggregates"
}
