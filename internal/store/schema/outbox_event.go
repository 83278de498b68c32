package schema

import (
	"time"

	"gorm.io/datatypes"
)

// OutboxEvent represents the outbox_events table - notifications committed with the change that caused them
type OutboxEvent struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventID is a ULID used as the message id on publish
	EventID string `gorm:"column:event_id;not null;type:varchar(26);uniqueIndex:idx_outbox_events_event_id"`
	// Topic is the message subject
	Topic string `gorm:"column:topic;not null;type:varchar(255);uniqueIndex:idx_outbox_events_topic_dedupe,priority:1"`
	// DedupeKey makes re-enqueueing the same notification a no-op
	DedupeKey string `gorm:"column:dedupe_key;not null;type:varchar(128);uniqueIndex:idx_outbox_events_topic_dedupe,priority:2"`
	// Payload is the canonical JSON payload
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// PublishedAt is set once the relay published the event
	PublishedAt *time.Time `gorm:"column:published_at;type:timestamptz"`
	// Attempts is the number of failed publish attempts
	Attempts int `gorm:"column:attempts;not null;default:0"`
	// LastError holds the last publish error
	LastError string `gorm:"column:last_error;type:text"`
	// CreatedAt is the timestamp when this event was enqueued
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the OutboxEvent model
func (OutboxEvent) TableName() string {
	return "outbox_events"
}
