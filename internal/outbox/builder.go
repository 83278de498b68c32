package outbox

import (
	"fmt"

	"github.com/oklog/ulid/v2"
	"gorm.io/datatypes"

	"github.com/feral-file/power-ledger/internal/adapter"
	"github.com/feral-file/power-ledger/internal/domain"
	"github.com/feral-file/power-ledger/internal/store/schema"
)

// Builder turns domain notifications into outbox rows
type Builder struct {
	json  adapter.JSON
	clock adapter.Clock
}

// NewBuilder creates a new outbox event builder
func NewBuilder(json adapter.JSON, clock adapter.Clock) *Builder {
	return &Builder{
		json:  json,
		clock: clock,
	}
}

// RankChangeDedupeKey identifies a rank change notification. Re-detecting the same change is a no-op.
func RankChangeDedupeKey(round int, change domain.RankChange) string {
	return fmt.Sprintf("%d:%d:%d", round, change.ProjectID, change.NewRank)
}

// RankChangeEvents builds one outbox row per rank change of a round
func (b *Builder) RankChangeEvents(round int, changes []domain.RankChange) ([]schema.OutboxEvent, error) {
	now := b.clock.Now()
	events := make([]schema.OutboxEvent, 0, len(changes))

	for _, change := range changes {
		eventID := ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
		event := domain.RankChangeEvent{
			EventID:   eventID,
			Round:     round,
			ProjectID: change.ProjectID,
			OldRank:   change.OldRank,
			NewRank:   change.NewRank,
			CreatedAt: now,
		}

		payload, err := b.json.Canonical(event)
		if err != nil {
			return nil, fmt.Errorf("failed to encode rank change event: %w", err)
		}

		events = append(events, schema.OutboxEvent{
			EventID:   eventID,
			Topic:     event.Subject(),
			DedupeKey: RankChangeDedupeKey(round, change),
			Payload:   datatypes.JSON(payload),
		})
	}

	return events, nil
}
