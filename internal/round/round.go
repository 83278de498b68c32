package round

import (
	"context"
	"fmt"
	"time"

	"github.com/feral-file/power-ledger/internal/store"
)

// Provider reads the current round
//
//go:generate mockgen -source=round.go -destination=../mocks/round.go -package=mocks -mock_names=Provider=MockRoundProvider,WindowPolicy=MockWindowPolicy
type Provider interface {
	// CurrentRound returns the current round number
	CurrentRound(ctx context.Context) (int, error)
}

// WindowPolicy maps instants onto round numbers
type WindowPolicy interface {
	// RoundForInstant returns the round containing t, or false when t precedes the first round
	RoundForInstant(t time.Time) (int, bool)
}

type storeProvider struct {
	store store.RoundStore
}

// NewProvider creates a provider backed by the persisted round counter
func NewProvider(s store.RoundStore) Provider {
	return &storeProvider{store: s}
}

func (p *storeProvider) CurrentRound(ctx context.Context) (int, error) {
	round, err := p.store.GetCurrentRound(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read current round: %w", err)
	}
	return round, nil
}

// calendarWindowPolicy splits time into windows of whole calendar months starting at epoch
type calendarWindowPolicy struct {
	epoch        time.Time
	windowMonths int
}

// NewCalendarWindowPolicy creates a policy where round 1 starts at epoch and every round
// spans windowMonths calendar months
func NewCalendarWindowPolicy(epoch time.Time, windowMonths int) WindowPolicy {
	if windowMonths <= 0 {
		windowMonths = 1
	}
	return &calendarWindowPolicy{epoch: epoch.UTC(), windowMonths: windowMonths}
}

func (p *calendarWindowPolicy) RoundForInstant(t time.Time) (int, bool) {
	t = t.UTC()
	if t.Before(p.epoch) {
		return 0, false
	}

	months := (t.Year()-p.epoch.Year())*12 + int(t.Month()) - int(p.epoch.Month())
	// Step back when t has not reached the epoch's day and time within its month
	for months > 0 && p.epoch.AddDate(0, months, 0).After(t) {
		months--
	}

	return months/p.windowMonths + 1, true
}
