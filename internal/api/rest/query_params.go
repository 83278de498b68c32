package rest

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetRankingQueryParams holds query parameters for GET /rankings
type GetRankingQueryParams struct {
	Round     *int   `form:"round"`
	ProjectID *int64 `form:"project_id"`
	UserID    *int64 `form:"user_id"`
}

// ParseGetRankingQuery parses query parameters for GET /rankings
func ParseGetRankingQuery(c *gin.Context) (*GetRankingQueryParams, error) {
	var params GetRankingQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// Validate validates the query parameters
func (p *GetRankingQueryParams) Validate() error {
	if p.Round != nil && *p.Round <= 0 {
		return fmt.Errorf("round must be positive")
	}
	if p.ProjectID != nil && *p.ProjectID <= 0 {
		return fmt.Errorf("project_id must be positive")
	}
	if p.UserID != nil && *p.UserID <= 0 {
		return fmt.Errorf("user_id must be positive")
	}
	return nil
}

// parseIDParam parses a positive int64 path parameter
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return id, nil
}
