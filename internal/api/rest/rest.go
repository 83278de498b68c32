package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Allocation ledger
		v1.PUT("/users/:user_id/allocations/:project_id", handler.SetSingleAllocation)
		v1.PUT("/users/:user_id/allocations", handler.SetMultipleAllocations)

		// Rankings
		v1.GET("/rankings", handler.GetRanking)
		v1.GET("/rankings/changes", handler.GetRankChanges)

		// Quadratic funding
		v1.GET("/funding-rounds/:id/projects/:project_id/estimated-matching", handler.GetEstimatedMatching)
		v1.GET("/funding-rounds/:id/actual-matching", handler.GetActualMatching)
		v1.POST("/funding-rounds/:id/close", handler.CloseFundingRound)
	}
}
