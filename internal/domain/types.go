package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Allocation is a user's active percentage commitment to a project
type Allocation struct {
	UserID     int64           `json:"userId"`
	ProjectID  int64           `json:"projectId"`
	Percentage decimal.Decimal `json:"percentage"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ProjectRanking is the derived power ranking of a project for a round
type ProjectRanking struct {
	ProjectID  int64           `json:"projectId"`
	Round      int             `json:"round"`
	TotalPower decimal.Decimal `json:"totalPower"`
	Rank       int             `json:"rank"`
}

// RankChange identifies a project whose rank differs from the previous round
type RankChange struct {
	ProjectID int64 `json:"projectId"`
	OldRank   int   `json:"oldRank"`
	NewRank   int   `json:"newRank"`
}

// ProjectMatching is the quadratic funding outcome for a project in a funding round
type ProjectMatching struct {
	ProjectID      int64   `json:"projectId"`
	FundingRoundID int64   `json:"fundingRoundId"`
	Weight         float64 `json:"weight"`
	EstimatedMatch float64 `json:"estimatedMatch"`
	ActualMatch    float64 `json:"actualMatch"`
}

// RankChangeEvent is the notification payload published for a rank change
type RankChangeEvent struct {
	EventID   string    `json:"eventId"`
	Round     int       `json:"round"`
	ProjectID int64     `json:"projectId"`
	OldRank   int       `json:"oldRank"`
	NewRank   int       `json:"newRank"`
	CreatedAt time.Time `json:"createdAt"`
}

// Subject returns the message subject for the event
func (e RankChangeEvent) Subject() string {
	return fmt.Sprintf("power.rank_changed.%d", e.ProjectID)
}

// NormalizeWallet returns the checksummed form of an EVM wallet address
func NormalizeWallet(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: invalid wallet address %q", ErrInvalidInput, address)
	}
	return common.HexToAddress(address).Hex(), nil
}
