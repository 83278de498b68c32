package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/power-ledger/internal/api/rest"
	"github.com/feral-file/power-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/power-ledger/internal/api/shared/errors"
	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/logger"
	"github.com/feral-file/power-ledger/internal/mocks"
)

func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockAPIExecutor) {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(exec))
	return router, exec
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupRouter(t)

	w := serve(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSetSingleAllocation(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		SetSingleAllocation(gomock.Any(), int64(7), int64(2), decimalEq(20)).
		Return(&dto.AllocationListResponse{Allocations: []domain.Allocation{
			{UserID: 7, ProjectID: 1, Percentage: decimal.NewFromInt(80)},
			{UserID: 7, ProjectID: 2, Percentage: decimal.NewFromInt(20)},
		}}, nil)

	w := serve(router, http.MethodPut, "/api/v1/users/7/allocations/2", `{"percentage": 20}`)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.AllocationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Allocations, 2)
	assert.True(t, response.Allocations[0].Percentage.Equal(decimal.NewFromInt(80)))
}

func TestSetSingleAllocation_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   apierrors.ErrorCode
	}{
		{"first allocation", domain.ErrFirstAllocationMustBeFull, http.StatusBadRequest, apierrors.ErrCodeFirstAllocationMustBeFull},
		{"out of range", domain.ErrInvalidRange, http.StatusBadRequest, apierrors.ErrCodeInvalidRange},
		{"too many projects", domain.ErrMaxProjectLimitExceeded, http.StatusBadRequest, apierrors.ErrCodeMaxProjectLimitExceeded},
		{"conflict", domain.ErrConcurrentModification, http.StatusConflict, apierrors.ErrCodeConflict},
		{"generic", domain.ErrGenericFailure, http.StatusInternalServerError, apierrors.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, exec := setupRouter(t)
			exec.EXPECT().SetSingleAllocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := serve(router, http.MethodPut, "/api/v1/users/7/allocations/2", `{"percentage": "20"}`)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
		})
	}
}

func TestSetSingleAllocation_BadRequest(t *testing.T) {
	router, _ := setupRouter(t)

	w := serve(router, http.MethodPut, "/api/v1/users/abc/allocations/2", `{"percentage": 20}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(router, http.MethodPut, "/api/v1/users/7/allocations/2", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeError(t, w).Code)

	w = serve(router, http.MethodPut, "/api/v1/users/7/allocations/2", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetMultipleAllocations(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		SetMultipleAllocations(gomock.Any(), int64(7), []int64{1, 2}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, _ []int64, percentages []decimal.Decimal) (*dto.AllocationListResponse, error) {
			require.Len(t, percentages, 2)
			assert.True(t, percentages[0].Equal(decimal.RequireFromString("33.5")))
			return &dto.AllocationListResponse{Allocations: []domain.Allocation{}}, nil
		})

	w := serve(router, http.MethodPut, "/api/v1/users/7/allocations", `{"projectIds":[1,2],"percentages":["33.5","66.5"]}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"allocations":[]}`, w.Body.String())
}

func TestSetMultipleAllocations_LengthMismatch(t *testing.T) {
	router, _ := setupRouter(t)

	w := serve(router, http.MethodPut, "/api/v1/users/7/allocations", `{"projectIds":[1,2],"percentages":[100]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeError(t, w).Code)
}

func TestGetRanking(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		GetRanking(gomock.Any(), gomock.Any(), gomock.Any(), (*int64)(nil)).
		DoAndReturn(func(_ context.Context, round *int, projectID, _ *int64) (*dto.RankingListResponse, error) {
			require.NotNil(t, round)
			require.NotNil(t, projectID)
			assert.Equal(t, 3, *round)
			assert.Equal(t, int64(5), *projectID)
			return &dto.RankingListResponse{Rankings: []domain.ProjectRanking{
				{ProjectID: 5, Round: 3, TotalPower: decimal.NewFromInt(1200), Rank: 1},
			}}, nil
		})

	w := serve(router, http.MethodGet, "/api/v1/rankings?round=3&project_id=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rank":1`)
}

func TestGetRanking_InvalidRound(t *testing.T) {
	router, _ := setupRouter(t)

	w := serve(router, http.MethodGet, "/api/v1/rankings?round=0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(router, http.MethodGet, "/api/v1/rankings?round=first", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRankChanges(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().GetRankChanges(gomock.Any()).Return(&dto.RankChangeListResponse{Changes: []domain.RankChange{
		{ProjectID: 5, OldRank: 2, NewRank: 1},
	}}, nil)

	w := serve(router, http.MethodGet, "/api/v1/rankings/changes", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"changes":[{"projectId":5,"oldRank":2,"newRank":1}]}`, w.Body.String())
}

func TestGetEstimatedMatching(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().GetEstimatedMatching(gomock.Any(), int64(2), int64(3)).Return(&dto.EstimatedMatchingResponse{
		ProjectID: 2, FundingRoundID: 3, EstimatedMatch: 80,
	}, nil)

	w := serve(router, http.MethodGet, "/api/v1/funding-rounds/3/projects/2/estimated-matching", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"projectId":2,"fundingRoundId":3,"estimatedMatch":80}`, w.Body.String())
}

func TestGetEstimatedMatching_NotFound(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().GetEstimatedMatching(gomock.Any(), int64(2), int64(99)).Return(nil, domain.ErrNotFound)

	w := serve(router, http.MethodGet, "/api/v1/funding-rounds/99/projects/2/estimated-matching", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetActualMatching_UpstreamUnavailable(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().GetActualMatching(gomock.Any(), int64(3)).Return(nil, domain.ErrUpstreamUnavailable)

	w := serve(router, http.MethodGet, "/api/v1/funding-rounds/3/actual-matching", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCloseFundingRound(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().CloseFundingRound(gomock.Any(), int64(3)).Return(&dto.CloseFundingRoundResponse{
		WorkflowID: "close-funding-round-3", RunID: "run-1",
	}, nil)

	w := serve(router, http.MethodPost, "/api/v1/funding-rounds/3/close", "")
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"workflowId":"close-funding-round-3","runId":"run-1"}`, w.Body.String())
}

func TestCloseFundingRound_AlreadyRunning(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().CloseFundingRound(gomock.Any(), int64(3)).
		Return(nil, apierrors.NewConflictError("Funding round close already in progress"))

	w := serve(router, http.MethodPost, "/api/v1/funding-rounds/3/close", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCloseFundingRound_Unexpected(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().CloseFundingRound(gomock.Any(), int64(3)).Return(nil, errors.New("boom"))

	w := serve(router, http.MethodPost, "/api/v1/funding-rounds/3/close", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

type decimalMatcher struct{ want decimal.Decimal }

func decimalEq(v int64) gomock.Matcher { return decimalMatcher{want: decimal.NewFromInt(v)} }

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string { return "equals " + m.want.String() }
