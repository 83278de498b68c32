package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/store"
	"github.com/feral-file/power-ledger/internal/store/schema"
)

var (
	hundred = decimal.NewFromInt(domain.FULL_ALLOCATION)
)

// step returns the smallest representable percentage at the given precision
func step(precision int32) decimal.Decimal {
	return decimal.New(1, -precision)
}

// validatePercentage checks the [0, 100] range
func validatePercentage(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidRange, pct.String())
	}
	return nil
}

// activeRows returns the rows with a positive percentage
func activeRows(rows []schema.PowerAllocation) []schema.PowerAllocation {
	active := make([]schema.PowerAllocation, 0, len(rows))
	for _, row := range rows {
		if row.IsActive() {
			active = append(active, row)
		}
	}
	return active
}

// planSingle sets one project's percentage and rescales the user's other active rows so the
// total stays at 100. Rescaled values are rounded up to the precision step so truncation never
// leaves the total below 100. The first allocation and the project limit are checked against the
// exact input; rounding to the precision applies only to the stored value.
func planSingle(current []schema.PowerAllocation, projectID int64, pct decimal.Decimal, cfg Config) ([]store.AllocationChange, error) {
	if err := validatePercentage(pct); err != nil {
		return nil, err
	}

	active := activeRows(current)
	others := make([]schema.PowerAllocation, 0, len(active))
	isNew := true
	for _, row := range active {
		if row.ProjectID == projectID {
			isNew = false
			continue
		}
		others = append(others, row)
	}

	if len(others) == 0 {
		if !pct.Equal(hundred) {
			return nil, fmt.Errorf("%w: got %s", domain.ErrFirstAllocationMustBeFull, pct.String())
		}
		return []store.AllocationChange{{ProjectID: projectID, Percentage: hundred}}, nil
	}

	if isNew && len(others) >= cfg.MaxProjects && !pct.Equal(hundred) {
		return nil, fmt.Errorf("%w: limit is %d", domain.ErrMaxProjectLimitExceeded, cfg.MaxProjects)
	}

	pct = pct.Round(cfg.Precision)
	sumOthers := decimal.Zero
	for _, row := range others {
		sumOthers = sumOthers.Add(row.Percentage)
	}

	remaining := hundred.Sub(pct)
	changes := make([]store.AllocationChange, 0, len(others)+1)
	for _, row := range others {
		scaled := row.Percentage.Mul(remaining).Div(sumOthers).RoundCeil(cfg.Precision)
		if scaled.GreaterThan(hundred) {
			scaled = hundred
		}
		changes = append(changes, store.AllocationChange{ProjectID: row.ProjectID, Percentage: scaled})
	}
	changes = append(changes, store.AllocationChange{ProjectID: projectID, Percentage: pct})

	return changes, nil
}

// validateMultiple checks the shape and sum of a SetMultiple request
func validateMultiple(projectIDs []int64, pcts []decimal.Decimal, cfg Config) error {
	n := len(projectIDs)
	if n == 0 || n != len(pcts) {
		return fmt.Errorf("%w: project ids and percentages must be non-empty and of equal length", domain.ErrInvalidInput)
	}
	if n > cfg.MaxProjects {
		return fmt.Errorf("%w: at most %d projects", domain.ErrInvalidInput, cfg.MaxProjects)
	}

	seen := make(map[int64]struct{}, n)
	sum := decimal.Zero
	for i, projectID := range projectIDs {
		if _, ok := seen[projectID]; ok {
			return fmt.Errorf("%w: duplicate project %d", domain.ErrInvalidInput, projectID)
		}
		seen[projectID] = struct{}{}

		if err := validatePercentage(pcts[i]); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		sum = sum.Add(pcts[i])
	}

	// Each row may drift by one precision step
	lower := hundred.Sub(step(cfg.Precision).Mul(decimal.NewFromInt(int64(n))))
	if sum.LessThan(lower) || sum.GreaterThan(hundred) {
		return fmt.Errorf("%w: percentages sum to %s", domain.ErrInvalidInput, sum.String())
	}

	return nil
}

// planMultiple replaces the user's allocation set. Previously active projects that are not
// given are set to zero and kept as history.
func planMultiple(current []schema.PowerAllocation, projectIDs []int64, pcts []decimal.Decimal, cfg Config) ([]store.AllocationChange, error) {
	if err := validateMultiple(projectIDs, pcts, cfg); err != nil {
		return nil, err
	}

	given := make(map[int64]struct{}, len(projectIDs))
	changes := make([]store.AllocationChange, 0, len(projectIDs)+len(current))
	for i, projectID := range projectIDs {
		given[projectID] = struct{}{}
		changes = append(changes, store.AllocationChange{ProjectID: projectID, Percentage: pcts[i]})
	}

	for _, row := range activeRows(current) {
		if _, ok := given[row.ProjectID]; ok {
			continue
		}
		changes = append(changes, store.AllocationChange{ProjectID: row.ProjectID, Percentage: decimal.Zero})
	}

	return changes, nil
}
