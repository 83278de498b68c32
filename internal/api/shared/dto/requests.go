package dto

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SetSingleAllocationRequest is the body of PUT /users/:user_id/allocations/:project_id
type SetSingleAllocationRequest struct {
	Percentage *decimal.Decimal `json:"percentage"`
}

// Validate validates the request body
func (r *SetSingleAllocationRequest) Validate() error {
	if r.Percentage == nil {
		return fmt.Errorf("percentage is required")
	}
	return nil
}

// SetMultipleAllocationsRequest is the body of PUT /users/:user_id/allocations
type SetMultipleAllocationsRequest struct {
	ProjectIDs  []int64           `json:"projectIds"`
	Percentages []decimal.Decimal `json:"percentages"`
}

// Validate validates the request shape. Sum and range checks belong to the ledger.
func (r *SetMultipleAllocationsRequest) Validate() error {
	if len(r.ProjectIDs) == 0 {
		return fmt.Errorf("projectIds is required")
	}
	if len(r.ProjectIDs) != len(r.Percentages) {
		return fmt.Errorf("projectIds and percentages must have the same length")
	}
	return nil
}
