package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/logger"
)

// CloseFundingRoundWorkflowID returns the workflow id of a round's close. One close runs per round.
func CloseFundingRoundWorkflowID(fundingRoundID int64) string {
	return fmt.Sprintf("close-funding-round-%d", fundingRoundID)
}

// CloseFundingRound stamps donor scores once, computes and persists the final matching
// distribution, then deactivates the round
func (w *workerCore) CloseFundingRound(ctx workflow.Context, fundingRoundID int64) ([]domain.ProjectMatching, error) {
	logger.InfoWf(ctx, "Closing funding round", zap.Int64("fundingRoundID", fundingRoundID))

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: w.config.ActivityTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    5 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Minute,
			MaximumAttempts:    w.config.MaxAttempts,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	// Step 1: Capture donor scores, earlier stamps are kept
	var stamped int64
	if err := workflow.ExecuteActivity(ctx, w.executor.StampDonorScores, fundingRoundID).Get(ctx, &stamped); err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to stamp donor scores"),
			zap.Error(err),
			zap.Int64("fundingRoundID", fundingRoundID),
		)
		return nil, err
	}

	// Step 2: Compute the final distribution over the stamped scores
	var matches []domain.ProjectMatching
	if err := workflow.ExecuteActivity(ctx, w.executor.ComputeActualMatching, fundingRoundID).Get(ctx, &matches); err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to compute actual matching"),
			zap.Error(err),
			zap.Int64("fundingRoundID", fundingRoundID),
		)
		return nil, err
	}

	// Step 3: Close the round for live estimates
	if err := workflow.ExecuteActivity(ctx, w.executor.DeactivateFundingRound, fundingRoundID).Get(ctx, nil); err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to deactivate funding round"),
			zap.Error(err),
			zap.Int64("fundingRoundID", fundingRoundID),
		)
		return nil, err
	}

	logger.InfoWf(ctx, "Funding round closed",
		zap.Int64("fundingRoundID", fundingRoundID),
		zap.Int64("donationsStamped", stamped),
		zap.Int("projects", len(matches)),
	)

	return matches, nil
}
