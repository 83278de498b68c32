package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.temporal.io/api/serviceerror"
	"go.uber.org/zap"

	"github.com/feral-file/power-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/power-ledger/internal/api/shared/errors"
	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/ledger"
	"github.com/feral-file/power-ledger/internal/logger"
	"github.com/feral-file/power-ledger/internal/matching"
	"github.com/feral-file/power-ledger/internal/providers/temporal"
	"github.com/feral-file/power-ledger/internal/ranking"
	"github.com/feral-file/power-ledger/internal/workflows"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// SetSingleAllocation sets one project's percentage and rescales the user's other allocations
	SetSingleAllocation(ctx context.Context, userID, projectID int64, percentage decimal.Decimal) (*dto.AllocationListResponse, error)

	// SetMultipleAllocations replaces the user's allocation set
	SetMultipleAllocations(ctx context.Context, userID int64, projectIDs []int64, percentages []decimal.Decimal) (*dto.AllocationListResponse, error)

	// GetRanking retrieves rankings, defaulting to the current round
	GetRanking(ctx context.Context, round *int, projectID, userID *int64) (*dto.RankingListResponse, error)

	// GetRankChanges retrieves projects whose rank changed since the previous round
	GetRankChanges(ctx context.Context) (*dto.RankChangeListResponse, error)

	// GetEstimatedMatching retrieves a project's live match in an active funding round
	GetEstimatedMatching(ctx context.Context, projectID, fundingRoundID int64) (*dto.EstimatedMatchingResponse, error)

	// GetActualMatching computes the final distribution of a funding round
	GetActualMatching(ctx context.Context, fundingRoundID int64) (*dto.ActualMatchingResponse, error)

	// CloseFundingRound starts the close workflow of a funding round
	CloseFundingRound(ctx context.Context, fundingRoundID int64) (*dto.CloseFundingRoundResponse, error)
}

type executor struct {
	ledger                ledger.Ledger
	aggregator            ranking.Aggregator
	detector              ranking.Detector
	matching              matching.Service
	orchestrator          temporal.TemporalOrchestrator
	orchestratorTaskQueue string
}

func NewExecutor(
	l ledger.Ledger,
	aggregator ranking.Aggregator,
	detector ranking.Detector,
	matchingService matching.Service,
	orchestrator temporal.TemporalOrchestrator,
	orchestratorTaskQueue string,
) Executor {
	return &executor{
		ledger:                l,
		aggregator:            aggregator,
		detector:              detector,
		matching:              matchingService,
		orchestrator:          orchestrator,
		orchestratorTaskQueue: orchestratorTaskQueue,
	}
}

func (e *executor) SetSingleAllocation(ctx context.Context, userID, projectID int64, percentage decimal.Decimal) (*dto.AllocationListResponse, error) {
	allocations, err := e.ledger.SetSingle(ctx, userID, projectID, percentage)
	if err != nil {
		return nil, err
	}
	return &dto.AllocationListResponse{Allocations: nonNil(allocations)}, nil
}

func (e *executor) SetMultipleAllocations(ctx context.Context, userID int64, projectIDs []int64, percentages []decimal.Decimal) (*dto.AllocationListResponse, error) {
	allocations, err := e.ledger.SetMultiple(ctx, userID, projectIDs, percentages)
	if err != nil {
		return nil, err
	}
	return &dto.AllocationListResponse{Allocations: nonNil(allocations)}, nil
}

func (e *executor) GetRanking(ctx context.Context, round *int, projectID, userID *int64) (*dto.RankingListResponse, error) {
	rankings, err := e.aggregator.GetRanking(ctx, ranking.Query{
		Round:     round,
		ProjectID: projectID,
		UserID:    userID,
	})
	if err != nil {
		return nil, err
	}
	return &dto.RankingListResponse{Rankings: nonNil(rankings)}, nil
}

func (e *executor) GetRankChanges(ctx context.Context) (*dto.RankChangeListResponse, error) {
	changes, err := e.detector.GetRankChanges(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.RankChangeListResponse{Changes: nonNil(changes)}, nil
}

func (e *executor) GetEstimatedMatching(ctx context.Context, projectID, fundingRoundID int64) (*dto.EstimatedMatchingResponse, error) {
	estimate, err := e.matching.GetEstimatedMatching(ctx, projectID, fundingRoundID)
	if err != nil {
		return nil, err
	}
	return &dto.EstimatedMatchingResponse{
		ProjectID:      projectID,
		FundingRoundID: fundingRoundID,
		EstimatedMatch: estimate,
	}, nil
}

func (e *executor) GetActualMatching(ctx context.Context, fundingRoundID int64) (*dto.ActualMatchingResponse, error) {
	projects, err := e.matching.GetActualMatching(ctx, fundingRoundID)
	if err != nil {
		return nil, err
	}
	return &dto.ActualMatchingResponse{
		FundingRoundID: fundingRoundID,
		Projects:       nonNil(projects),
	}, nil
}

func (e *executor) CloseFundingRound(ctx context.Context, fundingRoundID int64) (*dto.CloseFundingRoundResponse, error) {
	if fundingRoundID <= 0 {
		return nil, fmt.Errorf("%w: funding round id must be positive", domain.ErrInvalidInput)
	}

	options := temporal.CloseFundingRoundOptions(e.orchestratorTaskQueue, workflows.CloseFundingRoundWorkflowID(fundingRoundID))
	wfRun, err := e.orchestrator.ExecuteWorkflow(ctx, options, temporal.CloseFundingRoundWorkflow, fundingRoundID)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			return nil, apierrors.NewConflictError("Funding round close already in progress", options.ID)
		}
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to trigger funding round close: %v", err))
	}

	logger.InfoCtx(ctx, "Funding round close started",
		zap.Int64("fundingRoundID", fundingRoundID),
		zap.String("workflowID", wfRun.GetID()),
		zap.String("runID", wfRun.GetRunID()))

	return &dto.CloseFundingRoundResponse{
		WorkflowID: wfRun.GetID(),
		RunID:      wfRun.GetRunID(),
	}, nil
}

// nonNil keeps empty lists serialized as [] rather than null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
