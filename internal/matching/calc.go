package matching

import (
	"math"
	"sort"

	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/store/schema"
)

// Donation is one matching-eligible donation with the donor scores it is judged by
type Donation struct {
	ProjectID int64
	UserID    int64
	ValueUSD  float64
	Scores    schema.Scores
}

// EffectiveThresholds returns the round's per-scheme minimum scores with every active
// global override replacing the round's value for its scheme
func EffectiveThresholds(round schema.Scores, overrides []schema.GlobalScoreOverride) map[string]float64 {
	thresholds := make(map[string]float64, len(round)+len(overrides))
	for scheme, value := range round {
		thresholds[scheme] = value
	}
	for _, override := range overrides {
		if !override.IsActive {
			continue
		}
		thresholds[override.Scheme] = override.Value
	}
	return thresholds
}

// IsEligible reports whether a donor meets at least one threshold. Without thresholds every donor is eligible.
func IsEligible(scores schema.Scores, thresholds map[string]float64) bool {
	if len(thresholds) == 0 {
		return true
	}
	for scheme, minimum := range thresholds {
		if score, ok := scores[scheme]; ok && score >= minimum {
			return true
		}
	}
	return false
}

// ProjectWeights computes (sum over eligible donors of sqrt(donor total))^2 per project
func ProjectWeights(donations []Donation, thresholds map[string]float64) map[int64]float64 {
	type donorKey struct {
		projectID int64
		userID    int64
	}
	totals := make(map[donorKey]float64)
	for _, d := range donations {
		if d.ValueUSD <= 0 || !IsEligible(d.Scores, thresholds) {
			continue
		}
		totals[donorKey{projectID: d.ProjectID, userID: d.UserID}] += d.ValueUSD
	}

	sqrtSums := make(map[int64]float64)
	for key, total := range totals {
		sqrtSums[key.projectID] += math.Sqrt(total)
	}

	weights := make(map[int64]float64, len(sqrtSums))
	for projectID, sum := range sqrtSums {
		weights[projectID] = sum * sum
	}
	return weights
}

// EstimatedMatches splits the fund proportionally to weight, without any cap
func EstimatedMatches(weights map[int64]float64, fund float64) map[int64]float64 {
	total := 0.0
	for _, w := range weights {
		total += w
	}

	matches := make(map[int64]float64, len(weights))
	for projectID, w := range weights {
		if total > 0 {
			matches[projectID] = w / total * fund
		} else {
			matches[projectID] = 0
		}
	}
	return matches
}

// CappedMatches splits the fund with a per-project cap of maxShare x fund in one pass:
// projects whose proportional share reaches the cap get exactly the cap, and the rest of the
// fund is split among the others by weight. A project pushed over the cap by that second
// split is not capped again.
func CappedMatches(weights map[int64]float64, fund, maxShare float64) map[int64]float64 {
	if maxShare <= 0 || maxShare > 1 {
		maxShare = domain.DEFAULT_MAXIMUM_REWARD_SHARE
	}
	fundingCap := maxShare * fund

	projectIDs := sortedProjectIDs(weights)
	total := 0.0
	for _, projectID := range projectIDs {
		total += weights[projectID]
	}

	matches := make(map[int64]float64, len(weights))
	if total <= 0 {
		for _, projectID := range projectIDs {
			matches[projectID] = 0
		}
		return matches
	}

	remainingWeight := total
	remainingFund := fund
	capped := make(map[int64]bool)
	for _, projectID := range projectIDs {
		w := weights[projectID]
		if w/total*fund >= fundingCap {
			matches[projectID] = fundingCap
			capped[projectID] = true
			remainingWeight -= w
			remainingFund -= fundingCap
		}
	}

	for _, projectID := range projectIDs {
		if capped[projectID] {
			continue
		}
		if remainingWeight > 0 && remainingFund > 0 {
			matches[projectID] = weights[projectID] / remainingWeight * remainingFund
		} else {
			matches[projectID] = 0
		}
	}

	return matches
}

func sortedProjectIDs(weights map[int64]float64) []int64 {
	ids := make([]int64, 0, len(weights))
	for projectID := range weights {
		ids = append(ids, projectID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
