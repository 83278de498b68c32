package outbox

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/power-ledger/internal/adapter"
	"github.com/feral-file/power-ledger/internal/logger"
	"github.com/feral-file/power-ledger/internal/metrics"
	"github.com/feral-file/power-ledger/internal/store"
)

const (
	// RelayJobName is the name of the outbox relay job
	RelayJobName = "outbox-relay"

	DEFAULT_RELAY_BATCH_SIZE = 100
)

// Publisher delivers a committed event to the message broker. The broker drops a
// message whose msgID it has already seen.
//
//go:generate mockgen -source=relay.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	Publish(ctx context.Context, subject string, msgID string, data []byte) error
}

// Relay publishes committed outbox events, oldest first
type Relay struct {
	store     store.OutboxStore
	publisher Publisher
	clock     adapter.Clock
	metrics   *metrics.Metrics
	batchSize int
}

// NewRelay creates a new outbox relay
func NewRelay(s store.OutboxStore, publisher Publisher, clock adapter.Clock, m *metrics.Metrics, batchSize int) *Relay {
	if m == nil {
		m = metrics.NopMetrics()
	}
	if batchSize <= 0 {
		batchSize = DEFAULT_RELAY_BATCH_SIZE
	}
	return &Relay{
		store:     s,
		publisher: publisher,
		clock:     clock,
		metrics:   m,
		batchSize: batchSize,
	}
}

// Name returns the job name
func (r *Relay) Name() string {
	return RelayJobName
}

// Run publishes one batch of pending events. It stops at the first failed publish to keep ordering.
func (r *Relay) Run(ctx context.Context) error {
	events, err := r.store.GetPendingOutboxEvents(ctx, r.batchSize)
	if err != nil {
		return fmt.Errorf("failed to get pending outbox events: %w", err)
	}

	published := 0
	for _, event := range events {
		if err := r.publisher.Publish(ctx, event.Topic, event.EventID, event.Payload); err != nil {
			if markErr := r.store.MarkOutboxEventFailed(ctx, event.ID, err.Error()); markErr != nil {
				logger.ErrorCtx(ctx, markErr, zap.Uint64("outboxID", event.ID))
			}
			return fmt.Errorf("failed to publish outbox event %s: %w", event.EventID, err)
		}

		// A crash before this point republishes with the same msg id, which the broker drops
		if err := r.store.MarkOutboxEventPublished(ctx, event.ID, r.clock.Now()); err != nil {
			return fmt.Errorf("failed to mark outbox event %s published: %w", event.EventID, err)
		}
		published++
		r.metrics.OutboxPublished.Add(1)
	}

	if published > 0 {
		logger.InfoCtx(ctx, "Outbox events published", zap.Int("count", published))
	}

	return nil
}
