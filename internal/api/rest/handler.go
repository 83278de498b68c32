package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/power-ledger/internal/api/shared/dto"
	"github.com/feral-file/power-ledger/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// SetSingleAllocation sets one project's percentage of a user's power
	// PUT /api/v1/users/:user_id/allocations/:project_id
	SetSingleAllocation(c *gin.Context)

	// SetMultipleAllocations replaces a user's allocation set
	// PUT /api/v1/users/:user_id/allocations
	SetMultipleAllocations(c *gin.Context)

	// GetRanking retrieves project rankings
	// GET /api/v1/rankings?round=<round>&project_id=<id>&user_id=<id>
	GetRanking(c *gin.Context)

	// GetRankChanges retrieves projects whose rank changed since the previous round
	// GET /api/v1/rankings/changes
	GetRankChanges(c *gin.Context)

	// GetEstimatedMatching retrieves a project's live match
	// GET /api/v1/funding-rounds/:id/projects/:project_id/estimated-matching
	GetEstimatedMatching(c *gin.Context)

	// GetActualMatching computes the final distribution of a funding round
	// GET /api/v1/funding-rounds/:id/actual-matching
	GetActualMatching(c *gin.Context)

	// CloseFundingRound starts the close workflow of a funding round
	// POST /api/v1/funding-rounds/:id/close
	CloseFundingRound(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// SetSingleAllocation sets one project's percentage of a user's power
func (h *handler) SetSingleAllocation(c *gin.Context) {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	projectID, err := parseIDParam(c, "project_id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req dto.SetSingleAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.SetSingleAllocation(c.Request.Context(), userID, projectID, *req.Percentage)
	if err != nil {
		respondError(c, err, "Failed to set allocation",
			zap.Int64("userID", userID),
			zap.Int64("projectID", projectID))
		return
	}

	c.JSON(http.StatusOK, response)
}

// SetMultipleAllocations replaces a user's allocation set
func (h *handler) SetMultipleAllocations(c *gin.Context) {
	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req dto.SetMultipleAllocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.SetMultipleAllocations(c.Request.Context(), userID, req.ProjectIDs, req.Percentages)
	if err != nil {
		respondError(c, err, "Failed to set allocations",
			zap.Int64("userID", userID),
			zap.Int64s("projectIDs", req.ProjectIDs))
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetRanking retrieves project rankings
func (h *handler) GetRanking(c *gin.Context) {
	queryParams, err := ParseGetRankingQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetRanking(c.Request.Context(), queryParams.Round, queryParams.ProjectID, queryParams.UserID)
	if err != nil {
		respondError(c, err, "Failed to get ranking")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetRankChanges retrieves projects whose rank changed since the previous round
func (h *handler) GetRankChanges(c *gin.Context) {
	response, err := h.executor.GetRankChanges(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get rank changes")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetEstimatedMatching retrieves a project's live match
func (h *handler) GetEstimatedMatching(c *gin.Context) {
	fundingRoundID, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	projectID, err := parseIDParam(c, "project_id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.GetEstimatedMatching(c.Request.Context(), projectID, fundingRoundID)
	if err != nil {
		respondError(c, err, "Failed to get estimated matching",
			zap.Int64("fundingRoundID", fundingRoundID),
			zap.Int64("projectID", projectID))
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetActualMatching computes the final distribution of a funding round
func (h *handler) GetActualMatching(c *gin.Context) {
	fundingRoundID, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.GetActualMatching(c.Request.Context(), fundingRoundID)
	if err != nil {
		respondError(c, err, "Failed to get actual matching", zap.Int64("fundingRoundID", fundingRoundID))
		return
	}

	c.JSON(http.StatusOK, response)
}

// CloseFundingRound starts the close workflow of a funding round
func (h *handler) CloseFundingRound(c *gin.Context) {
	fundingRoundID, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.CloseFundingRound(c.Request.Context(), fundingRoundID)
	if err != nil {
		respondError(c, err, "Failed to close funding round", zap.Int64("fundingRoundID", fundingRoundID))
		return
	}

	c.JSON(http.StatusAccepted, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "power-ledger-api",
	})
}
