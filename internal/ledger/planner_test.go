package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/store"
	"github.com/feral-file/power-ledger/internal/store/schema"
)

func pct(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rows(pairs ...interface{}) []schema.PowerAllocation {
	result := make([]schema.PowerAllocation, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		result = append(result, schema.PowerAllocation{
			UserID:     1,
			ProjectID:  int64(pairs[i].(int)),
			Percentage: pct(pairs[i+1].(string)),
		})
	}
	return result
}

// apply writes planned changes over the current rows the way the store upserts them
func apply(current []schema.PowerAllocation, changes []store.AllocationChange) []schema.PowerAllocation {
	byProject := make(map[int64]int, len(current))
	result := append([]schema.PowerAllocation(nil), current...)
	for i, row := range result {
		byProject[row.ProjectID] = i
	}
	for _, change := range changes {
		if i, ok := byProject[change.ProjectID]; ok {
			result[i].Percentage = change.Percentage
			continue
		}
		byProject[change.ProjectID] = len(result)
		result = append(result, schema.PowerAllocation{UserID: 1, ProjectID: change.ProjectID, Percentage: change.Percentage})
	}
	return result
}

func activeMap(allocations []schema.PowerAllocation) map[int64]string {
	result := make(map[int64]string)
	for _, row := range activeRows(allocations) {
		result[row.ProjectID] = row.Percentage.StringFixed(2)
	}
	return result
}

func activeSum(allocations []schema.PowerAllocation) decimal.Decimal {
	sum := decimal.Zero
	for _, row := range activeRows(allocations) {
		sum = sum.Add(row.Percentage)
	}
	return sum
}

func TestPlanSingle(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		current   []schema.PowerAllocation
		projectID int64
		pct       string
		cfg       Config
		want      map[int64]string
		wantErr   error
	}{
		{
			name:      "first allocation of 100",
			projectID: 1,
			pct:       "100",
			want:      map[int64]string{1: "100.00"},
		},
		{
			name:      "first allocation below 100",
			projectID: 1,
			pct:       "40",
			wantErr:   domain.ErrFirstAllocationMustBeFull,
		},
		{
			name:      "first allocation that only rounds to 100",
			projectID: 1,
			pct:       "99.996",
			wantErr:   domain.ErrFirstAllocationMustBeFull,
		},
		{
			name:      "rescale rounds the target to the precision",
			current:   rows(1, "100"),
			projectID: 2,
			pct:       "20.004",
			want:      map[int64]string{1: "80.00", 2: "20.00"},
		},
		{
			name:      "only zero rows counts as first allocation",
			current:   rows(1, "0", 2, "0"),
			projectID: 3,
			pct:       "50",
			wantErr:   domain.ErrFirstAllocationMustBeFull,
		},
		{
			name:      "re-setting the only project below 100",
			current:   rows(1, "100"),
			projectID: 1,
			pct:       "60",
			wantErr:   domain.ErrFirstAllocationMustBeFull,
		},
		{
			name:      "new project rescales the existing one",
			current:   rows(1, "100"),
			projectID: 2,
			pct:       "20",
			want:      map[int64]string{1: "80.00", 2: "20.00"},
		},
		{
			name:      "existing project rescales the others",
			current:   rows(1, "50", 2, "50"),
			projectID: 1,
			pct:       "20",
			want:      map[int64]string{1: "20.00", 2: "80.00"},
		},
		{
			name:      "proportional rescale keeps ratios",
			current:   rows(1, "75", 2, "25"),
			projectID: 3,
			pct:       "60",
			want:      map[int64]string{1: "30.00", 2: "10.00", 3: "60.00"},
		},
		{
			name:      "full allocation deactivates the others",
			current:   rows(1, "60", 2, "40"),
			projectID: 3,
			pct:       "100",
			want:      map[int64]string{3: "100.00"},
		},
		{
			name:      "zero deactivates the target",
			current:   rows(1, "60", 2, "40"),
			projectID: 2,
			pct:       "0",
			want:      map[int64]string{1: "100.00"},
		},
		{
			name:      "rescaled values round up",
			current:   rows(1, "50", 2, "50"),
			projectID: 3,
			pct:       "33.33",
			want:      map[int64]string{1: "33.34", 2: "33.34", 3: "33.33"},
		},
		{
			name:      "percentage above 100",
			current:   rows(1, "100"),
			projectID: 2,
			pct:       "100.01",
			wantErr:   domain.ErrInvalidRange,
		},
		{
			name:      "negative percentage",
			current:   rows(1, "100"),
			projectID: 2,
			pct:       "-1",
			wantErr:   domain.ErrInvalidRange,
		},
		{
			name:      "new project over the limit",
			current:   rows(1, "50", 2, "50"),
			projectID: 3,
			pct:       "10",
			cfg:       Config{MaxProjects: 2, Precision: 2},
			wantErr:   domain.ErrMaxProjectLimitExceeded,
		},
		{
			name:      "new project over the limit at 100",
			current:   rows(1, "50", 2, "50"),
			projectID: 3,
			pct:       "100",
			cfg:       Config{MaxProjects: 2, Precision: 2},
			want:      map[int64]string{3: "100.00"},
		},
		{
			name:      "existing project at the limit",
			current:   rows(1, "50", 2, "50"),
			projectID: 1,
			pct:       "10",
			cfg:       Config{MaxProjects: 2, Precision: 2},
			want:      map[int64]string{1: "10.00", 2: "90.00"},
		},
		{
			name:      "zero rows do not count towards the limit",
			current:   rows(1, "100", 2, "0", 3, "0"),
			projectID: 4,
			pct:       "50",
			cfg:       Config{MaxProjects: 2, Precision: 2},
			want:      map[int64]string{1: "50.00", 4: "50.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			if tt.cfg.MaxProjects != 0 {
				c = tt.cfg
			}

			changes, err := planSingle(tt.current, tt.projectID, pct(tt.pct), c)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			after := apply(tt.current, changes)
			assert.Equal(t, tt.want, activeMap(after))
			assert.True(t, activeSum(after).GreaterThanOrEqual(hundred), "active sum %s below 100", activeSum(after))
		})
	}
}

func TestPlanSingle_SumStaysWithinTolerance(t *testing.T) {
	cfg := DefaultConfig()
	current := rows(1, "100")

	// Spread the allocation over many projects with awkward percentages
	for projectID, value := range []string{"33.33", "17.17", "9.99", "41.5", "3.01", "12.12", "50", "7.77"} {
		changes, err := planSingle(current, int64(projectID+2), pct(value), cfg)
		require.NoError(t, err)
		current = apply(current, changes)

		sum := activeSum(current)
		assert.True(t, sum.GreaterThanOrEqual(hundred), "sum %s below 100", sum)
		tolerance := step(cfg.Precision).Mul(decimal.NewFromInt(int64(len(activeRows(current)))))
		assert.True(t, sum.LessThanOrEqual(hundred.Add(tolerance)), "sum %s above tolerance", sum)
	}
}

func TestValidateMultiple(t *testing.T) {
	cfg := Config{MaxProjects: 3, Precision: 2}

	tests := []struct {
		name        string
		projectIDs  []int64
		percentages []string
		wantErr     error
	}{
		{name: "valid", projectIDs: []int64{1, 2}, percentages: []string{"60", "40"}},
		{name: "within rounding tolerance", projectIDs: []int64{1, 2, 3}, percentages: []string{"33.33", "33.33", "33.33"}},
		{name: "lower tolerance bound", projectIDs: []int64{1, 2}, percentages: []string{"49.99", "49.99"}},
		{name: "empty", wantErr: domain.ErrInvalidInput},
		{name: "length mismatch", projectIDs: []int64{1, 2}, percentages: []string{"100"}, wantErr: domain.ErrInvalidInput},
		{name: "too many projects", projectIDs: []int64{1, 2, 3, 4}, percentages: []string{"25", "25", "25", "25"}, wantErr: domain.ErrInvalidInput},
		{name: "duplicate project", projectIDs: []int64{1, 1}, percentages: []string{"50", "50"}, wantErr: domain.ErrInvalidInput},
		{name: "out of range", projectIDs: []int64{1, 2}, percentages: []string{"120", "-20"}, wantErr: domain.ErrInvalidRange},
		{name: "sum below tolerance", projectIDs: []int64{1, 2}, percentages: []string{"49.99", "49.98"}, wantErr: domain.ErrInvalidInput},
		{name: "sum above 100", projectIDs: []int64{1, 2}, percentages: []string{"50.01", "50"}, wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percentages := make([]decimal.Decimal, 0, len(tt.percentages))
			for _, p := range tt.percentages {
				percentages = append(percentages, pct(p))
			}

			err := validateMultiple(tt.projectIDs, percentages, cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPlanMultiple(t *testing.T) {
	cfg := DefaultConfig()
	current := rows(1, "60", 2, "40", 3, "0")

	changes, err := planMultiple(current, []int64{2, 4}, []decimal.Decimal{pct("30"), pct("70")}, cfg)
	require.NoError(t, err)

	after := apply(current, changes)
	assert.Equal(t, map[int64]string{2: "30.00", 4: "70.00"}, activeMap(after))

	// Previously active project is kept as a zero row
	for _, row := range after {
		if row.ProjectID == 1 {
			assert.True(t, row.Percentage.IsZero())
		}
	}
	assert.Len(t, after, 4)

	// Zero history rows are not rewritten
	for _, change := range changes {
		assert.NotEqual(t, int64(3), change.ProjectID)
	}
}

func TestPlanMultiple_Idempotent(t *testing.T) {
	cfg := DefaultConfig()
	projectIDs := []int64{5, 6, 7}
	percentages := []decimal.Decimal{pct("20"), pct("30"), pct("50")}

	first := apply(rows(1, "100"), mustPlanMultiple(t, rows(1, "100"), projectIDs, percentages, cfg))
	second := apply(first, mustPlanMultiple(t, first, projectIDs, percentages, cfg))

	assert.Equal(t, activeMap(first), activeMap(second))
	assert.Equal(t, map[int64]string{5: "20.00", 6: "30.00", 7: "50.00"}, activeMap(second))
}

func mustPlanMultiple(t *testing.T, current []schema.PowerAllocation, projectIDs []int64, pcts []decimal.Decimal, cfg Config) []store.AllocationChange {
	t.Helper()
	changes, err := planMultiple(current, projectIDs, pcts, cfg)
	require.NoError(t, err)
	return changes
}
