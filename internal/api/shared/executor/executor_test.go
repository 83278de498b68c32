package executor_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	temporalmocks "go.temporal.io/sdk/mocks"

	apierrors "github.com/feral-file/power-ledger/internal/api/shared/errors"
	"github.com/feral-file/power-ledger/internal/api/shared/executor"
	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/mocks"
	"github.com/feral-file/power-ledger/internal/providers/temporal"
	"github.com/feral-file/power-ledger/internal/ranking"
)

const TASK_QUEUE = "power-ledger-worker"

type testMocks struct {
	ledger       *mocks.MockLedger
	aggregator   *mocks.MockRankingAggregator
	detector     *mocks.MockRankChangeDetector
	matching     *mocks.MockMatchingService
	orchestrator *mocks.MockTemporalOrchestrator
}

func setupExecutor(t *testing.T) (executor.Executor, *testMocks) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		ledger:       mocks.NewMockLedger(ctrl),
		aggregator:   mocks.NewMockRankingAggregator(ctrl),
		detector:     mocks.NewMockRankChangeDetector(ctrl),
		matching:     mocks.NewMockMatchingService(ctrl),
		orchestrator: mocks.NewMockTemporalOrchestrator(ctrl),
	}
	exec := executor.NewExecutor(m.ledger, m.aggregator, m.detector, m.matching, m.orchestrator, TASK_QUEUE)
	return exec, m
}

func TestExecutor_SetSingleAllocation(t *testing.T) {
	exec, m := setupExecutor(t)
	ctx := context.Background()

	m.ledger.EXPECT().SetSingle(ctx, int64(1), int64(2), decimal.NewFromInt(100)).Return([]domain.Allocation{
		{UserID: 1, ProjectID: 2, Percentage: decimal.NewFromInt(100)},
	}, nil)

	response, err := exec.SetSingleAllocation(ctx, 1, 2, decimal.NewFromInt(100))
	require.NoError(t, err)
	require.Len(t, response.Allocations, 1)
	assert.Equal(t, int64(2), response.Allocations[0].ProjectID)
}

func TestExecutor_SetMultipleAllocations_PassesDomainError(t *testing.T) {
	exec, m := setupExecutor(t)
	ctx := context.Background()

	m.ledger.EXPECT().SetMultiple(ctx, int64(1), []int64{2, 3}, gomock.Any()).Return(nil, domain.ErrInvalidRange)

	_, err := exec.SetMultipleAllocations(ctx, 1, []int64{2, 3}, []decimal.Decimal{decimal.NewFromInt(90), decimal.NewFromInt(20)})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestExecutor_SetMultipleAllocations_EmptyResult(t *testing.T) {
	exec, m := setupExecutor(t)
	ctx := context.Background()

	m.ledger.EXPECT().SetMultiple(ctx, int64(1), gomock.Any(), gomock.Any()).Return(nil, nil)

	response, err := exec.SetMultipleAllocations(ctx, 1, []int64{2}, []decimal.Decimal{decimal.NewFromInt(100)})
	require.NoError(t, err)
	assert.NotNil(t, response.Allocations)
	assert.Empty(t, response.Allocations)
}

func TestExecutor_GetRanking(t *testing.T) {
	exec, m := setupExecutor(t)
	ctx := context.Background()
	round := 4
	projectID := int64(9)

	m.aggregator.EXPECT().GetRanking(ctx, ranking.Query{Round: &round, ProjectID: &projectID}).Return([]domain.ProjectRanking{
		{ProjectID: 9, Round: 4, TotalPower: decimal.NewFromInt(50), Rank: 2},
	}, nil)

	response, err := exec.GetRanking(ctx, &round, &projectID, nil)
	require.NoError(t, err)
	require.Len(t, response.Rankings, 1)
	assert.Equal(t, 2, response.Rankings[0].Rank)
}

func TestExecutor_GetRankChanges(t *testing.T) {
	exec, m := setupExecutor(t)
	ctx := context.Background()

	m.detector.EXPECT().GetRankChanges(ctx).Return(nil, nil)

	response, err := exec.GetRankChanges(ctx)
	require.NoError(t, err)
	assert.NotNil(t, response.Changes)
}

func TestExecutor_GetEstimatedMatching(t *testing.T) {
	exec, m := setupExecutor(t)
	ctx := context.Background()

	m.matching.EXPECT().GetEstimatedMatching(ctx, int64(2), int64(3)).Return(80.0, nil)

	response, err := exec.GetEstimatedMatching(ctx, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), response.ProjectID)
	assert.Equal(t, int64(3), response.FundingRoundID)
	assert.Equal(t, 80.0, response.EstimatedMatch)
}

func TestExecutor_GetActualMatching(t *testing.T) {
	exec, m := setupExecutor(t)
	ctx := context.Background()

	m.matching.EXPECT().GetActualMatching(ctx, int64(3)).Return([]domain.ProjectMatching{
		{ProjectID: 1, FundingRoundID: 3, Weight: 0.5},
	}, nil)

	response, err := exec.GetActualMatching(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), response.FundingRoundID)
	assert.Len(t, response.Projects, 1)
}

func TestExecutor_CloseFundingRound(t *testing.T) {
	exec, m := setupExecutor(t)
	ctx := context.Background()

	run := &temporalmocks.WorkflowRun{}
	run.On("GetID").Return("close-funding-round-3")
	run.On("GetRunID").Return("run-1")

	m.orchestrator.EXPECT().
		ExecuteWorkflow(ctx, gomock.Any(), temporal.CloseFundingRoundWorkflow, int64(3)).
		DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, "close-funding-round-3", options.ID)
			assert.Equal(t, TASK_QUEUE, options.TaskQueue)
			assert.Equal(t, enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY, options.WorkflowIDReusePolicy)
			assert.True(t, options.WorkflowExecutionErrorWhenAlreadyStarted)
			return run, nil
		})

	response, err := exec.CloseFundingRound(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "close-funding-round-3", response.WorkflowID)
	assert.Equal(t, "run-1", response.RunID)
}

func TestExecutor_CloseFundingRound_AlreadyRunning(t *testing.T) {
	exec, m := setupExecutor(t)
	ctx := context.Background()

	m.orchestrator.EXPECT().
		ExecuteWorkflow(ctx, gomock.Any(), temporal.CloseFundingRoundWorkflow, int64(3)).
		Return(nil, serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "", ""))

	_, err := exec.CloseFundingRound(ctx, 3)
	status, apiErr := apierrors.FromDomain(err)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, apierrors.ErrCodeConflict, apiErr.Code)
}

func TestExecutor_CloseFundingRound_OrchestratorDown(t *testing.T) {
	exec, m := setupExecutor(t)
	ctx := context.Background()

	m.orchestrator.EXPECT().
		ExecuteWorkflow(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := exec.CloseFundingRound(ctx, 3)
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeServiceError, apiErr.Code)
}

func TestExecutor_CloseFundingRound_InvalidID(t *testing.T) {
	exec, _ := setupExecutor(t)

	_, err := exec.CloseFundingRound(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
