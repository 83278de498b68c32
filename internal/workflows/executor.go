package workflows

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/feral-file/power-ledger/internal/adapter"
	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/logger"
	"github.com/feral-file/power-ledger/internal/matching"
	"github.com/feral-file/power-ledger/internal/store"
)

// Executor defines the activities of the funding round workflows
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// StampDonorScores captures the scores of every donor of the round whose donations were not stamped yet
	StampDonorScores(ctx context.Context, fundingRoundID int64) (int64, error)

	// ComputeActualMatching computes the capped distribution and overwrites the round's aggregates
	ComputeActualMatching(ctx context.Context, fundingRoundID int64) ([]domain.ProjectMatching, error)

	// DeactivateFundingRound clears the round's active flag
	DeactivateFundingRound(ctx context.Context, fundingRoundID int64) error
}

// executor is the concrete implementation of Executor
type executor struct {
	matching         matching.Service
	store            store.MatchingStore
	temporalActivity adapter.Activity
}

// NewExecutor creates a new executor instance
func NewExecutor(matchingService matching.Service, s store.MatchingStore, temporalActivity adapter.Activity) Executor {
	return &executor{
		matching:         matchingService,
		store:            s,
		temporalActivity: temporalActivity,
	}
}

// StampDonorScores captures donor scores. Donations stamped by an earlier attempt keep their scores.
func (e *executor) StampDonorScores(ctx context.Context, fundingRoundID int64) (int64, error) {
	logger.InfoCtx(ctx, "Stamping donor scores",
		zap.Int64("fundingRoundID", fundingRoundID),
		zap.String("workflowID", e.temporalActivity.WorkflowID(ctx)),
		zap.Int32("attempt", e.temporalActivity.Attempt(ctx)))

	stamped, err := e.matching.StampDonorScores(ctx, fundingRoundID)
	if err != nil {
		return stamped, activityError(fmt.Errorf("failed to stamp donor scores: %w", err))
	}
	return stamped, nil
}

// ComputeActualMatching computes and persists the final matching distribution
func (e *executor) ComputeActualMatching(ctx context.Context, fundingRoundID int64) ([]domain.ProjectMatching, error) {
	result, err := e.matching.GetActualMatching(ctx, fundingRoundID)
	if err != nil {
		return nil, activityError(fmt.Errorf("failed to compute actual matching: %w", err))
	}
	return result, nil
}

// DeactivateFundingRound clears the round's active flag
func (e *executor) DeactivateFundingRound(ctx context.Context, fundingRoundID int64) error {
	if err := e.store.DeactivateFundingRound(ctx, fundingRoundID); err != nil {
		return activityError(fmt.Errorf("failed to deactivate funding round: %w", err))
	}

	logger.InfoCtx(ctx, "Funding round deactivated", zap.Int64("fundingRoundID", fundingRoundID))
	return nil
}

// activityError marks errors that a retry cannot fix as non-retryable
func activityError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return temporal.NewNonRetryableApplicationError(err.Error(), "NotFound", err)
	case errors.Is(err, domain.ErrInvalidInput):
		return temporal.NewNonRetryableApplicationError(err.Error(), "InvalidInput", err)
	default:
		return err
	}
}
