package scoring

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/power-ledger/internal/adapter"
	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/logger"
)

// Scorer reads a donor's scores, one value per scoring scheme
//
//go:generate mockgen -source=scoring.go -destination=../../mocks/scorer.go -package=mocks -mock_names=Scorer=MockScorer
type Scorer interface {
	// ScoresFor returns the wallet's current score in every configured scheme
	ScoresFor(ctx context.Context, wallet string) (map[string]float64, error)
}

// ScoreResponse is a scoring source's answer for a wallet
type ScoreResponse struct {
	Address string          `json:"address"`
	Score   decimal.Decimal `json:"score"`
}

// HTTPScorer queries one HTTP scoring source per scheme
type HTTPScorer struct {
	httpClient adapter.HTTPClient
	sources    map[string]string
	schemes    []string
}

// NewHTTPScorer creates a scorer over the given scheme to base URL map
func NewHTTPScorer(httpClient adapter.HTTPClient, sources map[string]string) Scorer {
	schemes := make([]string, 0, len(sources))
	for scheme := range sources {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)

	return &HTTPScorer{
		httpClient: httpClient,
		sources:    sources,
		schemes:    schemes,
	}
}

// ScoresFor returns the wallet's score in every scheme. A source that does not know the
// wallet scores it 0.
func (s *HTTPScorer) ScoresFor(ctx context.Context, wallet string) (map[string]float64, error) {
	normalized, err := domain.NormalizeWallet(wallet)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(s.schemes))
	for _, scheme := range s.schemes {
		endpoint := strings.TrimRight(s.sources[scheme], "/") + "/" + url.PathEscape(normalized)

		var response ScoreResponse
		if err := s.httpClient.Get(ctx, endpoint, &response); err != nil {
			if adapter.IsStatus(err, http.StatusNotFound) {
				logger.DebugCtx(ctx, "Wallet unknown to scoring source",
					zap.String("scheme", scheme),
					zap.String("wallet", normalized))
				scores[scheme] = 0
				continue
			}
			return nil, fmt.Errorf("%w: scoring source %s: %v", domain.ErrUpstreamUnavailable, scheme, err)
		}

		scores[scheme] = response.Score.InexactFloat64()
	}

	return scores, nil
}
