package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// AllocationChange is a target percentage for one of a user's projects
type AllocationChange struct {
	ProjectID  int64
	Percentage decimal.Decimal
}

// AllocationPlanner receives every allocation row of a user (including zero rows),
// read under the user's lock, and returns the rows to write
type AllocationPlanner func(current []schema.PowerAllocation) ([]AllocationChange, error)

// CreatePowerSnapshotInput represents the data needed to take a power snapshot
type CreatePowerSnapshotInput struct {
	Time        time.Time
	ChainAnchor *int64
}

// CreatePowerSnapshotResult describes what a snapshot froze
type CreatePowerSnapshotResult struct {
	Snapshot       schema.PowerSnapshot
	AllocationRows int
	BalanceRows    int
}

// PendingBalance is a balance placeholder waiting for reconciliation
type PendingBalance struct {
	ID              int64     `gorm:"column:id"`
	PowerSnapshotID int64     `gorm:"column:power_snapshot_id"`
	UserID          int64     `gorm:"column:user_id"`
	WalletAddress   string    `gorm:"column:wallet_address"`
	SnapshotTime    time.Time `gorm:"column:snapshot_time"`
}

// ProjectPower is a project's summed power in one snapshot
type ProjectPower struct {
	ProjectID  int64           `gorm:"column:project_id"`
	TotalPower decimal.Decimal `gorm:"column:total_power"`
}

// RankingFilter narrows a ranking query
type RankingFilter struct {
	Round     int
	ProjectID *int64
	// UserID restricts to projects the user allocated to in the ranking's snapshot
	UserID *int64
}

// DonationRecord is a matching-eligible donation joined with its donor's scores
type DonationRecord struct {
	ProjectID        int64                             `gorm:"column:project_id"`
	UserID           int64                             `gorm:"column:user_id"`
	ValueUSD         float64                           `gorm:"column:value_usd"`
	LiveScores       datatypes.JSONType[schema.Scores] `gorm:"column:live_scores"`
	StampedScores    datatypes.JSONType[schema.Scores] `gorm:"column:stamped_scores"`
	ScoresCapturedAt *time.Time                        `gorm:"column:scores_captured_at"`
}

// Donor is a donor identity the scoring sources are queried with
type Donor struct {
	UserID        int64  `gorm:"column:user_id"`
	WalletAddress string `gorm:"column:wallet_address"`
}

// AllocationStore persists the allocation ledger
type AllocationStore interface {
	// UpdateUserAllocations runs planner while holding the user's lock, so writers of one user run one at a time
	// and writes the planned rows. It returns the user's active allocations after the write.
	UpdateUserAllocations(ctx context.Context, userID int64, planner AllocationPlanner) ([]schema.PowerAllocation, error)
	// GetActiveAllocations returns the user's allocations with a positive percentage
	GetActiveAllocations(ctx context.Context, userID int64) ([]schema.PowerAllocation, error)
}

// RoundStore persists the current round counter
type RoundStore interface {
	// GetCurrentRound returns the current round number
	GetCurrentRound(ctx context.Context) (int, error)
	// FinalizeRound advances the round from `from` to `to` and freezes the ranking of `from`
	// into previous round ranks. It returns false when the round was not `from`.
	FinalizeRound(ctx context.Context, from, to int) (bool, error)
}

// SnapshotStore persists power snapshots and their balance placeholders
type SnapshotStore interface {
	// CreatePowerSnapshot freezes every active allocation to a verified project
	CreatePowerSnapshot(ctx context.Context, input CreatePowerSnapshotInput) (*CreatePowerSnapshotResult, error)
	// GetUnassignedSnapshots returns snapshots without a round number with an id greater than afterID, by id
	GetUnassignedSnapshots(ctx context.Context, afterID int64, limit int) ([]schema.PowerSnapshot, error)
	// SetSnapshotRound assigns a round number to a snapshot that has none
	SetSnapshotRound(ctx context.Context, snapshotID int64, round int) (bool, error)
	// GetPendingBalances returns null balance placeholders of snapshots taken strictly before `before`
	GetPendingBalances(ctx context.Context, before time.Time, afterID int64, limit int) ([]PendingBalance, error)
	// CountPendingBalancesFrom counts null balance placeholders of snapshots taken at or after `from`
	CountPendingBalancesFrom(ctx context.Context, from time.Time) (int64, error)
	// FillBalance sets a null balance. It returns false when the row was already filled.
	FillBalance(ctx context.Context, balanceID int64, balance decimal.Decimal) (bool, error)
	// MarkSnapshotsSynced flags the given snapshots synced when none of their balances are null
	// and returns the ids that transitioned
	MarkSnapshotsSynced(ctx context.Context, snapshotIDs []int64) ([]int64, error)
	// MarkFilledSnapshotsSynced flags every unsynced snapshot without null balances and returns the ids
	MarkFilledSnapshotsSynced(ctx context.Context) ([]int64, error)
	// GetLatestSyncedSnapshot returns the latest synced snapshot assigned to a round at or before `round`
	GetLatestSyncedSnapshot(ctx context.Context, round int) (*schema.PowerSnapshot, error)
	// GetSnapshotProjectPowers sums percentage/100 x balance per project for a snapshot
	GetSnapshotProjectPowers(ctx context.Context, snapshotID int64) ([]ProjectPower, error)
}

// RankingStore persists derived rankings
type RankingStore interface {
	// ReplaceProjectPowerRankings overwrites every ranking row of a round
	ReplaceProjectPowerRankings(ctx context.Context, round int, rankings []schema.ProjectPowerRanking) error
	// GetProjectPowerRankings returns rankings ordered by rank then project id
	GetProjectPowerRankings(ctx context.Context, filter RankingFilter) ([]schema.ProjectPowerRanking, error)
	// GetRankChanges joins the ranking of currentRound to the frozen ranks of previousRound
	GetRankChanges(ctx context.Context, currentRound, previousRound int) ([]domain.RankChange, error)
}

// MatchingStore persists funding rounds, donations and matching aggregates
type MatchingStore interface {
	// GetFundingRound returns a funding round or nil when it does not exist
	GetFundingRound(ctx context.Context, id int64) (*schema.FundingRound, error)
	// GetActiveScoreOverrides returns every active global score override
	GetActiveScoreOverrides(ctx context.Context) ([]schema.GlobalScoreOverride, error)
	// GetMatchingDonations returns verified donations of a round to verified and eligible projects
	GetMatchingDonations(ctx context.Context, fundingRoundID int64) ([]DonationRecord, error)
	// GetUnstampedDonors returns donors of a round with donations whose scores were not captured
	GetUnstampedDonors(ctx context.Context, fundingRoundID int64) ([]Donor, error)
	// StampDonorScores captures a donor's scores on their not yet stamped donations of a round
	StampDonorScores(ctx context.Context, fundingRoundID, userID int64, scores schema.Scores, at time.Time) (int64, error)
	// ReplaceMatchingAggregates overwrites every aggregate of a round
	ReplaceMatchingAggregates(ctx context.Context, fundingRoundID int64, aggregates []schema.ProjectMatchingAggregate) error
	// DeactivateFundingRound clears the round's active flag
	DeactivateFundingRound(ctx context.Context, fundingRoundID int64) error
}

// OutboxStore persists notifications until they are published
type OutboxStore interface {
	// EnqueueOutboxEvents inserts events, ignoring those whose (topic, dedupe key) already exists
	EnqueueOutboxEvents(ctx context.Context, events []schema.OutboxEvent) (int64, error)
	// GetPendingOutboxEvents returns unpublished events, oldest first
	GetPendingOutboxEvents(ctx context.Context, limit int) ([]schema.OutboxEvent, error)
	// MarkOutboxEventPublished records a successful publish
	MarkOutboxEventPublished(ctx context.Context, id uint64, at time.Time) error
	// MarkOutboxEventFailed records a failed publish attempt
	MarkOutboxEventFailed(ctx context.Context, id uint64, reason string) error
}

// Store defines the interface for database operations
type Store interface {
	AllocationStore
	RoundStore
	SnapshotStore
	RankingStore
	MatchingStore
	OutboxStore
}
