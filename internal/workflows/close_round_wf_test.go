package workflows_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/logger"
	"github.com/feral-file/power-ledger/internal/mocks"
	"github.com/feral-file/power-ledger/internal/workflows"
)

// CloseFundingRoundWorkflowTestSuite is the test suite for the funding round close workflow
type CloseFundingRoundWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env        *testsuite.TestWorkflowEnvironment
	ctrl       *gomock.Controller
	executor   *mocks.MockExecutor
	workerCore workflows.WorkerCore
}

// SetupTest is called before each test
func (s *CloseFundingRoundWorkflowTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockExecutor(s.ctrl)
	s.workerCore = workflows.NewWorkerCore(s.executor, workflows.WorkerCoreConfig{MaxAttempts: 3})
}

// TearDownTest is called after each test
func (s *CloseFundingRoundWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

func TestCloseFundingRoundWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(CloseFundingRoundWorkflowTestSuite))
}

func (s *CloseFundingRoundWorkflowTestSuite) TestCloseFundingRound_Success() {
	matches := []domain.ProjectMatching{
		{ProjectID: 1, FundingRoundID: 3, Weight: 4, EstimatedMatch: 20, ActualMatch: 50},
		{ProjectID: 2, FundingRoundID: 3, Weight: 16, EstimatedMatch: 80, ActualMatch: 50},
	}

	s.env.OnActivity(s.executor.StampDonorScores, mock.Anything, int64(3)).Return(int64(4), nil).Once()
	s.env.OnActivity(s.executor.ComputeActualMatching, mock.Anything, int64(3)).Return(matches, nil).Once()
	s.env.OnActivity(s.executor.DeactivateFundingRound, mock.Anything, int64(3)).Return(nil).Once()

	s.env.ExecuteWorkflow(s.workerCore.CloseFundingRound, int64(3))

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var result []domain.ProjectMatching
	s.NoError(s.env.GetWorkflowResult(&result))
	s.Equal(matches, result)
}

func (s *CloseFundingRoundWorkflowTestSuite) TestCloseFundingRound_RetriesScoringOutage() {
	s.env.OnActivity(s.executor.StampDonorScores, mock.Anything, int64(3)).
		Return(int64(0), domain.ErrUpstreamUnavailable).Once()
	s.env.OnActivity(s.executor.StampDonorScores, mock.Anything, int64(3)).
		Return(int64(4), nil).Once()
	s.env.OnActivity(s.executor.ComputeActualMatching, mock.Anything, int64(3)).Return([]domain.ProjectMatching{}, nil).Once()
	s.env.OnActivity(s.executor.DeactivateFundingRound, mock.Anything, int64(3)).Return(nil).Once()

	s.env.ExecuteWorkflow(s.workerCore.CloseFundingRound, int64(3))

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *CloseFundingRoundWorkflowTestSuite) TestCloseFundingRound_RoundNotFound() {
	s.env.OnActivity(s.executor.StampDonorScores, mock.Anything, int64(9)).
		Return(int64(0), temporal.NewNonRetryableApplicationError("funding round 9 not found", "NotFound", domain.ErrNotFound)).Once()

	s.env.ExecuteWorkflow(s.workerCore.CloseFundingRound, int64(9))

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)

	var appErr *temporal.ApplicationError
	s.True(errors.As(err, &appErr))
	s.Equal("NotFound", appErr.Type())
}

func (s *CloseFundingRoundWorkflowTestSuite) TestCloseFundingRound_MatchingFailureKeepsRoundActive() {
	s.env.OnActivity(s.executor.StampDonorScores, mock.Anything, int64(3)).Return(int64(0), nil).Once()
	s.env.OnActivity(s.executor.ComputeActualMatching, mock.Anything, int64(3)).
		Return(nil, temporal.NewNonRetryableApplicationError("funding round 3 is invalid", "InvalidInput", domain.ErrInvalidInput)).Once()

	s.env.ExecuteWorkflow(s.workerCore.CloseFundingRound, int64(3))

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *CloseFundingRoundWorkflowTestSuite) TestCloseFundingRoundWorkflowID() {
	s.Equal("close-funding-round-3", workflows.CloseFundingRoundWorkflowID(3))
}
