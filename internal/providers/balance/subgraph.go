package balance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/power-ledger/internal/adapter"
	"github.com/feral-file/power-ledger/internal/domain"
)

const (
	// TOKEN_DECIMALS is the number of decimals of the raw balances served by the subgraph
	TOKEN_DECIMALS = 18
)

// Source is the external balance source. Its data lags behind real time.
//
//go:generate mockgen -source=subgraph.go -destination=../../mocks/balance_source.go -package=mocks -mock_names=Source=MockBalanceSource
type Source interface {
	// LatestCompleteInstant returns the instant through which the source's data is complete
	LatestCompleteInstant(ctx context.Context) (time.Time, error)

	// LatestAnchor returns the latest block number the source has processed
	LatestAnchor(ctx context.Context) (int64, error)

	// BalanceAsOf returns the wallet's balance at the given instant. The boolean is false
	// when the source knows no balance for the wallet.
	BalanceAsOf(ctx context.Context, wallet string, at time.Time) (decimal.Decimal, bool, error)
}

// GraphQLRequest represents a GraphQL request
type GraphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// MetaResponse is the subgraph indexing status response
type MetaResponse struct {
	Data struct {
		Meta *struct {
			Block struct {
				Number    int64 `json:"number"`
				Timestamp int64 `json:"timestamp"`
			} `json:"block"`
		} `json:"_meta"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// BalanceResponse is the subgraph balance history response
type BalanceResponse struct {
	Data struct {
		BalanceChanges []struct {
			NewBalance string `json:"newBalance"`
		} `json:"balanceChanges"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

const metaQuery = `query Meta {
	_meta {
		block {
			number
			timestamp
		}
	}
}`

const balanceQuery = `query BalanceAsOf($account: String!, $timestamp: BigInt!) {
	balanceChanges(
		first: 1
		orderBy: time
		orderDirection: desc
		where: { account: $account, time_lte: $timestamp }
	) {
		newBalance
	}
}`

// SubgraphClient reads balances from a GraphQL subgraph
type SubgraphClient struct {
	httpClient adapter.HTTPClient
	url        string
	json       adapter.JSON
}

// NewSubgraphClient creates a new subgraph balance source
func NewSubgraphClient(httpClient adapter.HTTPClient, url string, json adapter.JSON) Source {
	return &SubgraphClient{
		httpClient: httpClient,
		url:        url,
		json:       json,
	}
}

// LatestCompleteInstant returns the timestamp of the latest block the subgraph has indexed
func (c *SubgraphClient) LatestCompleteInstant(ctx context.Context) (time.Time, error) {
	meta, err := c.meta(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(meta.Data.Meta.Block.Timestamp, 0).UTC(), nil
}

// LatestAnchor returns the number of the latest block the subgraph has indexed
func (c *SubgraphClient) LatestAnchor(ctx context.Context) (int64, error) {
	meta, err := c.meta(ctx)
	if err != nil {
		return 0, err
	}
	return meta.Data.Meta.Block.Number, nil
}

func (c *SubgraphClient) meta(ctx context.Context) (*MetaResponse, error) {
	var response MetaResponse
	if err := c.query(ctx, GraphQLRequest{Query: metaQuery}, &response); err != nil {
		return nil, err
	}
	if len(response.Errors) > 0 {
		return nil, fmt.Errorf("%w: subgraph error: %s", domain.ErrUpstreamUnavailable, response.Errors[0].Message)
	}
	if response.Data.Meta == nil {
		return nil, fmt.Errorf("%w: subgraph returned no indexing status", domain.ErrUpstreamUnavailable)
	}
	return &response, nil
}

// BalanceAsOf returns the wallet's latest balance change at or before `at`
func (c *SubgraphClient) BalanceAsOf(ctx context.Context, wallet string, at time.Time) (decimal.Decimal, bool, error) {
	normalized, err := domain.NormalizeWallet(wallet)
	if err != nil {
		return decimal.Zero, false, err
	}

	request := GraphQLRequest{
		Query: balanceQuery,
		Variables: map[string]interface{}{
			// Subgraph ids are lower case
			"account":   strings.ToLower(normalized),
			"timestamp": fmt.Sprintf("%d", at.Unix()),
		},
	}

	var response BalanceResponse
	if err := c.query(ctx, request, &response); err != nil {
		return decimal.Zero, false, err
	}
	if len(response.Errors) > 0 {
		return decimal.Zero, false, fmt.Errorf("%w: subgraph error: %s", domain.ErrUpstreamUnavailable, response.Errors[0].Message)
	}

	if len(response.Data.BalanceChanges) == 0 {
		return decimal.Zero, false, nil
	}

	raw, err := decimal.NewFromString(response.Data.BalanceChanges[0].NewBalance)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("invalid balance %q for %s: %w", response.Data.BalanceChanges[0].NewBalance, normalized, err)
	}

	return raw.Shift(-TOKEN_DECIMALS), true, nil
}

func (c *SubgraphClient) query(ctx context.Context, request GraphQLRequest, response interface{}) error {
	body, err := c.json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	respBody, err := c.httpClient.PostJSON(ctx, c.url, body)
	if err != nil {
		return fmt.Errorf("%w: failed to call subgraph: %v", domain.ErrUpstreamUnavailable, err)
	}

	if err := c.json.Unmarshal(respBody, response); err != nil {
		return fmt.Errorf("%w: failed to unmarshal subgraph response: %v", domain.ErrUpstreamUnavailable, err)
	}

	return nil
}
