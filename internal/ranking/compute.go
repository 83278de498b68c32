package ranking

import (
	"sort"

	"github.com/feral-file/power-ledger/internal/store"
	"github.com/feral-file/power-ledger/internal/store/schema"
)

// ComputeRankings dense-ranks projects by total power, descending. Equal totals share a rank
// and are listed by project id.
func ComputeRankings(round int, snapshotID int64, powers []store.ProjectPower) []schema.ProjectPowerRanking {
	sorted := make([]store.ProjectPower, len(powers))
	copy(sorted, powers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := sorted[i].TotalPower.Cmp(sorted[j].TotalPower); c != 0 {
			return c > 0
		}
		return sorted[i].ProjectID < sorted[j].ProjectID
	})

	rankings := make([]schema.ProjectPowerRanking, 0, len(sorted))
	rank := 0
	for i, power := range sorted {
		if i == 0 || !power.TotalPower.Equal(sorted[i-1].TotalPower) {
			rank++
		}
		rankings = append(rankings, schema.ProjectPowerRanking{
			Round:           round,
			ProjectID:       power.ProjectID,
			TotalPower:      power.TotalPower,
			Rank:            rank,
			PowerSnapshotID: snapshotID,
		})
	}

	return rankings
}
