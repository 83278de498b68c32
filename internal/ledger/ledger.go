package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/logger"
	"github.com/feral-file/power-ledger/internal/store"
	"github.com/feral-file/power-ledger/internal/store/schema"
)

//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger

// Config holds the allocation rules
type Config struct {
	MaxProjects int
	Precision   int32
	MaxRetries  int
}

// DefaultConfig returns the default allocation rules
func DefaultConfig() Config {
	return Config{
		MaxProjects: domain.DEFAULT_MAX_PROJECTS,
		Precision:   domain.DEFAULT_PERCENTAGE_PRECISION,
		MaxRetries:  3,
	}
}

// Ledger mutates users' power allocations while keeping each user's active rows at 100%
type Ledger interface {
	// SetSingle sets one project's percentage and rescales the user's other active allocations
	SetSingle(ctx context.Context, userID, projectID int64, percentage decimal.Decimal) ([]domain.Allocation, error)
	// SetMultiple replaces the user's allocation set
	SetMultiple(ctx context.Context, userID int64, projectIDs []int64, percentages []decimal.Decimal) ([]domain.Allocation, error)
	// GetActive returns the user's active allocations
	GetActive(ctx context.Context, userID int64) ([]domain.Allocation, error)
}

type ledger struct {
	store store.AllocationStore
	cfg   Config
}

// New creates a new allocation ledger
func New(s store.AllocationStore, cfg Config) Ledger {
	if cfg.MaxProjects <= 0 {
		cfg.MaxProjects = domain.DEFAULT_MAX_PROJECTS
	}
	if cfg.Precision < 0 {
		cfg.Precision = domain.DEFAULT_PERCENTAGE_PRECISION
	}
	return &ledger{store: s, cfg: cfg}
}

// SetSingle sets one project's percentage and rescales the user's other active allocations
func (l *ledger) SetSingle(ctx context.Context, userID, projectID int64, percentage decimal.Decimal) ([]domain.Allocation, error) {
	if err := validatePercentage(percentage); err != nil {
		return nil, err
	}

	rows, err := l.update(ctx, userID, func(current []schema.PowerAllocation) ([]store.AllocationChange, error) {
		return planSingle(current, projectID, percentage, l.cfg)
	})
	if err != nil {
		return nil, l.surface(ctx, err,
			zap.String("operation", "set_single"),
			zap.Int64("user_id", userID),
			zap.Int64("project_id", projectID),
			zap.String("percentage", percentage.String()))
	}

	return toDomain(rows), nil
}

// SetMultiple replaces the user's allocation set
func (l *ledger) SetMultiple(ctx context.Context, userID int64, projectIDs []int64, percentages []decimal.Decimal) ([]domain.Allocation, error) {
	rounded := make([]decimal.Decimal, len(percentages))
	for i, pct := range percentages {
		rounded[i] = pct.Round(l.cfg.Precision)
	}
	if err := validateMultiple(projectIDs, rounded, l.cfg); err != nil {
		return nil, err
	}

	rows, err := l.update(ctx, userID, func(current []schema.PowerAllocation) ([]store.AllocationChange, error) {
		return planMultiple(current, projectIDs, rounded, l.cfg)
	})
	if err != nil {
		return nil, l.surface(ctx, err,
			zap.String("operation", "set_multiple"),
			zap.Int64("user_id", userID),
			zap.Int64s("project_ids", projectIDs))
	}

	return toDomain(rows), nil
}

// GetActive returns the user's active allocations
func (l *ledger) GetActive(ctx context.Context, userID int64) ([]domain.Allocation, error) {
	rows, err := l.store.GetActiveAllocations(ctx, userID)
	if err != nil {
		return nil, l.surface(ctx, err, zap.String("operation", "get_active"), zap.Int64("user_id", userID))
	}
	return toDomain(rows), nil
}

// update runs the planner in the store, retrying lock and serialization conflicts
func (l *ledger) update(ctx context.Context, userID int64, planner store.AllocationPlanner) ([]schema.PowerAllocation, error) {
	var rows []schema.PowerAllocation
	var conflict error

	operation := func() error {
		var err error
		rows, err = l.store.UpdateUserAllocations(ctx, userID, planner)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrConcurrentModification) {
			conflict = err
			logger.WarnCtx(ctx, "Allocation update conflicted, retrying", zap.Int64("user_id", userID), zap.Error(err))
			return err
		}
		return backoff.Permanent(err)
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 50 * time.Millisecond
	exp.MaxInterval = time.Second
	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(max(l.cfg.MaxRetries, 0))), ctx) //nolint:gosec,G115

	if err := backoff.Retry(operation, policy); err != nil {
		// A deadline hit while backing off still reports the conflict
		if conflict != nil && ctx.Err() != nil {
			return nil, conflict
		}
		return nil, err
	}

	return rows, nil
}

// surface passes taxonomy errors through and collapses everything else into ErrGenericFailure
func (l *ledger) surface(ctx context.Context, err error, fields ...zap.Field) error {
	if domain.IsTaxonomyError(err) {
		return err
	}

	logger.ErrorCtx(ctx, err, fields...)
	return domain.ErrGenericFailure
}

func toDomain(rows []schema.PowerAllocation) []domain.Allocation {
	allocations := make([]domain.Allocation, 0, len(rows))
	for _, row := range rows {
		allocations = append(allocations, domain.Allocation{
			UserID:     row.UserID,
			ProjectID:  row.ProjectID,
			Percentage: row.Percentage,
			CreatedAt:  row.CreatedAt,
			UpdatedAt:  row.UpdatedAt,
		})
	}
	return allocations
}
