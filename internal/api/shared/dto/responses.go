package dto

import (
	"github.com/feral-file/power-ledger/internal/domain"
)

// AllocationListResponse lists a user's active allocations
type AllocationListResponse struct {
	Allocations []domain.Allocation `json:"allocations"`
}

// RankingListResponse lists project rankings
type RankingListResponse struct {
	Rankings []domain.ProjectRanking `json:"rankings"`
}

// RankChangeListResponse lists projects whose rank changed since the previous round
type RankChangeListResponse struct {
	Changes []domain.RankChange `json:"changes"`
}

// EstimatedMatchingResponse is a project's live, uncapped match
type EstimatedMatchingResponse struct {
	ProjectID      int64   `json:"projectId"`
	FundingRoundID int64   `json:"fundingRoundId"`
	EstimatedMatch float64 `json:"estimatedMatch"`
}

// ActualMatchingResponse is the final distribution of a funding round
type ActualMatchingResponse struct {
	FundingRoundID int64                    `json:"fundingRoundId"`
	Projects       []domain.ProjectMatching `json:"projects"`
}

// CloseFundingRoundResponse identifies the started close workflow
type CloseFundingRoundResponse struct {
	WorkflowID string `json:"workflowId"`
	RunID      string `json:"runId"`
}
