package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/power-ledger/internal/store/schema"
)

const epsilon = 1e-9

func sum(matches map[int64]float64) float64 {
	total := 0.0
	for _, m := range matches {
		total += m
	}
	return total
}

func TestEffectiveThresholds(t *testing.T) {
	thresholds := EffectiveThresholds(
		schema.Scores{"passport": 20, "gitcoin": 15},
		[]schema.GlobalScoreOverride{
			{Scheme: "passport", Value: 5, IsActive: true},
			{Scheme: "gitcoin", Value: 1, IsActive: false},
			{Scheme: "model", Value: 0.5, IsActive: true},
		},
	)

	assert.Equal(t, map[string]float64{"passport": 5, "gitcoin": 15, "model": 0.5}, thresholds)
}

func TestIsEligible(t *testing.T) {
	thresholds := map[string]float64{"passport": 20, "gitcoin": 15}

	assert.True(t, IsEligible(schema.Scores{"passport": 20}, thresholds))
	assert.True(t, IsEligible(schema.Scores{"passport": 1, "gitcoin": 30}, thresholds))
	assert.False(t, IsEligible(schema.Scores{"passport": 19.99, "gitcoin": 14}, thresholds))
	assert.False(t, IsEligible(nil, thresholds))
	assert.True(t, IsEligible(nil, nil))
}

func TestProjectWeights(t *testing.T) {
	thresholds := map[string]float64{"passport": 10}
	good := schema.Scores{"passport": 12}
	bad := schema.Scores{"passport": 3}

	weights := ProjectWeights([]Donation{
		// Two donations by the same donor are summed before the square root
		{ProjectID: 1, UserID: 1, ValueUSD: 1, Scores: good},
		{ProjectID: 1, UserID: 1, ValueUSD: 3, Scores: good},
		{ProjectID: 1, UserID: 2, ValueUSD: 9, Scores: good},
		{ProjectID: 1, UserID: 3, ValueUSD: 100, Scores: bad},
		{ProjectID: 2, UserID: 1, ValueUSD: 16, Scores: good},
		{ProjectID: 3, UserID: 3, ValueUSD: 25, Scores: bad},
		{ProjectID: 4, UserID: 1, ValueUSD: 0, Scores: good},
	}, thresholds)

	assert.Len(t, weights, 2)
	// (sqrt(4) + sqrt(9))^2
	assert.InDelta(t, 25, weights[1], epsilon)
	assert.InDelta(t, 16, weights[2], epsilon)
}

func TestEstimatedMatches(t *testing.T) {
	matches := EstimatedMatches(map[int64]float64{1: 4, 2: 16}, 100)

	assert.InDelta(t, 20, matches[1], epsilon)
	assert.InDelta(t, 80, matches[2], epsilon)
}

func TestEstimatedMatches_ZeroWeight(t *testing.T) {
	matches := EstimatedMatches(map[int64]float64{1: 0}, 100)
	assert.Equal(t, map[int64]float64{1: 0}, matches)
}

func TestCappedMatches(t *testing.T) {
	tests := []struct {
		name     string
		weights  map[int64]float64
		fund     float64
		maxShare float64
		expected map[int64]float64
	}{
		{
			name:     "nothing over the cap",
			weights:  map[int64]float64{1: 1, 2: 1, 3: 1, 4: 1, 5: 1},
			fund:     100,
			maxShare: 0.2,
			expected: map[int64]float64{1: 20, 2: 20, 3: 20, 4: 20, 5: 20},
		},
		{
			name:     "capped surplus goes to the others",
			weights:  map[int64]float64{1: 4, 2: 16},
			fund:     100,
			maxShare: 0.5,
			expected: map[int64]float64{1: 50, 2: 50},
		},
		{
			name:     "one project over the cap",
			weights:  map[int64]float64{1: 60, 2: 20, 3: 20},
			fund:     1000,
			maxShare: 0.4,
			expected: map[int64]float64{1: 400, 2: 300, 3: 300},
		},
		{
			// Project 2 starts at 25% and ends at 37.5%, above the 30% cap
			name:     "second pass is not capped again",
			weights:  map[int64]float64{1: 50, 2: 25, 3: 15, 4: 10},
			fund:     100,
			maxShare: 0.3,
			expected: map[int64]float64{1: 30, 2: 35, 3: 21, 4: 14},
		},
		{
			name:     "default share when unset",
			weights:  map[int64]float64{1: 90, 2: 10},
			fund:     100,
			maxShare: 0,
			expected: map[int64]float64{1: 20, 2: 80},
		},
		{
			name:     "no weight",
			weights:  map[int64]float64{1: 0, 2: 0},
			fund:     100,
			maxShare: 0.2,
			expected: map[int64]float64{1: 0, 2: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := CappedMatches(tt.weights, tt.fund, tt.maxShare)
			assert.Len(t, matches, len(tt.expected))
			for projectID, expected := range tt.expected {
				assert.InDelta(t, expected, matches[projectID], 1e-6, "project %d", projectID)
			}
			assert.LessOrEqual(t, sum(matches), tt.fund+1e-6)
		})
	}
}

func TestCappedMatches_NeverExceedsFund(t *testing.T) {
	shares := []float64{0.05, 0.1, 0.2, 0.33, 0.5, 1}
	for _, share := range shares {
		weights := map[int64]float64{}
		for i := int64(1); i <= 40; i++ {
			weights[i] = float64(i*i) * 1.7
		}

		matches := CappedMatches(weights, 12345.67, share)
		assert.LessOrEqual(t, sum(matches), 12345.67+1e-6, "share %v", share)
		for projectID, m := range matches {
			assert.GreaterOrEqual(t, m, 0.0, "project %d", projectID)
		}
	}
}
