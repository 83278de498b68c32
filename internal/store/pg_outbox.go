package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/power-ledger/internal/store/schema"
)

// EnqueueOutboxEvents inserts events, ignoring those whose (topic, dedupe key) already exists
func (s *pgStore) EnqueueOutboxEvents(ctx context.Context, events []schema.OutboxEvent) (int64, error) {
	if len(events) == 0 {
		return 0, nil
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "topic"}, {Name: "dedupe_key"}},
			DoNothing: true,
		}).
		CreateInBatches(&events, calculateSafeBatchSize(len(events), 5))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to enqueue outbox events: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// GetPendingOutboxEvents returns unpublished events, oldest first
func (s *pgStore) GetPendingOutboxEvents(ctx context.Context, limit int) ([]schema.OutboxEvent, error) {
	var events []schema.OutboxEvent
	err := s.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("id ASC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pending outbox events: %w", err)
	}

	return events, nil
}

// MarkOutboxEventPublished records a successful publish
func (s *pgStore) MarkOutboxEventPublished(ctx context.Context, id uint64, at time.Time) error {
	err := s.db.WithContext(ctx).
		Model(&schema.OutboxEvent{}).
		Where("id = ? AND published_at IS NULL", id).
		Update("published_at", at.UTC()).Error
	if err != nil {
		return fmt.Errorf("failed to mark outbox event published: %w", err)
	}

	return nil
}

// MarkOutboxEventFailed records a failed publish attempt
func (s *pgStore) MarkOutboxEventFailed(ctx context.Context, id uint64, reason string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.OutboxEvent{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": reason,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark outbox event failed: %w", err)
	}

	return nil
}
