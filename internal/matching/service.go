package matching

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/power-ledger/internal/adapter"
	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/logger"
	"github.com/feral-file/power-ledger/internal/providers/scoring"
	"github.com/feral-file/power-ledger/internal/store"
	"github.com/feral-file/power-ledger/internal/store/schema"
)

// Service computes quadratic funding matches of funding rounds
//
//go:generate mockgen -source=service.go -destination=../mocks/matching.go -package=mocks -mock_names=Service=MockMatchingService
type Service interface {
	// GetEstimatedMatching returns a project's live, uncapped match in an active funding round
	GetEstimatedMatching(ctx context.Context, projectID, fundingRoundID int64) (float64, error)
	// GetActualMatching computes the capped distribution over score-stamped donations and
	// overwrites the round's aggregates
	GetActualMatching(ctx context.Context, fundingRoundID int64) ([]domain.ProjectMatching, error)
	// StampDonorScores captures the current scores of every donor of the round whose donations
	// were not stamped yet and returns the number of stamped donations
	StampDonorScores(ctx context.Context, fundingRoundID int64) (int64, error)
}

type service struct {
	store  store.MatchingStore
	scorer scoring.Scorer
	clock  adapter.Clock
}

// NewService creates a new matching service
func NewService(s store.MatchingStore, scorer scoring.Scorer, clock adapter.Clock) Service {
	return &service{
		store:  s,
		scorer: scorer,
		clock:  clock,
	}
}

func (s *service) fundingRound(ctx context.Context, fundingRoundID int64) (*schema.FundingRound, error) {
	round, err := s.store.GetFundingRound(ctx, fundingRoundID)
	if err != nil {
		return nil, err
	}
	if round == nil {
		return nil, fmt.Errorf("%w: funding round %d", domain.ErrNotFound, fundingRoundID)
	}
	return round, nil
}

// weights loads the round's donations and computes project weights. Live scores judge
// donations until their scores are stamped.
func (s *service) weights(ctx context.Context, round *schema.FundingRound, stamped bool) (map[int64]float64, error) {
	overrides, err := s.store.GetActiveScoreOverrides(ctx)
	if err != nil {
		return nil, err
	}
	thresholds := EffectiveThresholds(round.MinimumScoreThresholds.Data(), overrides)

	records, err := s.store.GetMatchingDonations(ctx, round.ID)
	if err != nil {
		return nil, err
	}

	donations := make([]Donation, 0, len(records))
	for _, r := range records {
		scores := r.LiveScores.Data()
		if stamped && r.ScoresCapturedAt != nil {
			scores = r.StampedScores.Data()
		}
		donations = append(donations, Donation{
			ProjectID: r.ProjectID,
			UserID:    r.UserID,
			ValueUSD:  r.ValueUSD,
			Scores:    scores,
		})
	}

	return ProjectWeights(donations, thresholds), nil
}

// GetEstimatedMatching returns a project's live, uncapped match in an active funding round
func (s *service) GetEstimatedMatching(ctx context.Context, projectID, fundingRoundID int64) (float64, error) {
	round, err := s.fundingRound(ctx, fundingRoundID)
	if err != nil {
		return 0, err
	}
	if !round.IsActive {
		return 0, fmt.Errorf("%w: funding round %d is closed", domain.ErrInvalidInput, fundingRoundID)
	}

	weights, err := s.weights(ctx, round, false)
	if err != nil {
		return 0, err
	}

	return EstimatedMatches(weights, round.AllocatedFund.InexactFloat64())[projectID], nil
}

// GetActualMatching computes the capped distribution and overwrites the round's aggregates
func (s *service) GetActualMatching(ctx context.Context, fundingRoundID int64) ([]domain.ProjectMatching, error) {
	round, err := s.fundingRound(ctx, fundingRoundID)
	if err != nil {
		return nil, err
	}

	weights, err := s.weights(ctx, round, true)
	if err != nil {
		return nil, err
	}

	fund := round.AllocatedFund.InexactFloat64()
	estimated := EstimatedMatches(weights, fund)
	actual := CappedMatches(weights, fund, round.MaximumRewardShare)

	now := s.clock.Now()
	projectIDs := sortedProjectIDs(weights)
	aggregates := make([]schema.ProjectMatchingAggregate, 0, len(projectIDs))
	result := make([]domain.ProjectMatching, 0, len(projectIDs))
	for _, projectID := range projectIDs {
		aggregates = append(aggregates, schema.ProjectMatchingAggregate{
			FundingRoundID: fundingRoundID,
			ProjectID:      projectID,
			Weight:         weights[projectID],
			EstimatedMatch: estimated[projectID],
			ActualMatch:    actual[projectID],
			UpdatedAt:      now,
		})
		result = append(result, domain.ProjectMatching{
			ProjectID:      projectID,
			FundingRoundID: fundingRoundID,
			Weight:         weights[projectID],
			EstimatedMatch: estimated[projectID],
			ActualMatch:    actual[projectID],
		})
	}

	if err := s.store.ReplaceMatchingAggregates(ctx, fundingRoundID, aggregates); err != nil {
		return nil, fmt.Errorf("failed to replace matching aggregates: %w", err)
	}

	logger.InfoCtx(ctx, "Matching computed",
		zap.Int64("fundingRoundID", fundingRoundID),
		zap.Int("projects", len(result)),
		zap.Float64("fund", fund))

	return result, nil
}

// StampDonorScores captures the current score of every unstamped donor of the round.
// Donations stamped earlier keep their scores.
func (s *service) StampDonorScores(ctx context.Context, fundingRoundID int64) (int64, error) {
	if _, err := s.fundingRound(ctx, fundingRoundID); err != nil {
		return 0, err
	}

	donors, err := s.store.GetUnstampedDonors(ctx, fundingRoundID)
	if err != nil {
		return 0, err
	}

	now := s.clock.Now()
	var stamped int64
	for _, donor := range donors {
		scores, err := s.scorer.ScoresFor(ctx, donor.WalletAddress)
		if err != nil {
			return stamped, fmt.Errorf("failed to score donor %d: %w", donor.UserID, err)
		}

		n, err := s.store.StampDonorScores(ctx, fundingRoundID, donor.UserID, schema.Scores(scores), now)
		if err != nil {
			return stamped, err
		}
		stamped += n
	}

	logger.InfoCtx(ctx, "Donor scores stamped",
		zap.Int64("fundingRoundID", fundingRoundID),
		zap.Int("donors", len(donors)),
		zap.Int64("donations", stamped))

	return stamped, nil
}
