package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/power-ledger/internal/adapter"
	"github.com/feral-file/power-ledger/internal/logger"
)

// Config holds the NATS JetStream connection settings
type Config struct {
	URL            string
	StreamName     string // expected stream of published subjects, empty skips the check
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

// Publisher sends outbox events to JetStream with the event id as the message id,
// so the stream's duplicate window absorbs a relay that republishes after a crash
type Publisher struct {
	conn       adapter.JetStreamConn
	streamName string
}

// NewPublisher connects to NATS and, when a stream is configured, checks that it exists
func NewPublisher(ctx context.Context, cfg Config, dialer adapter.JetStreamDialer) (*Publisher, error) {
	conn, err := dialer.Dial(cfg.URL,
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("Disconnected from NATS", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	if cfg.StreamName != "" {
		ok, err := conn.HasStream(ctx, cfg.StreamName)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to look up stream %s: %w", cfg.StreamName, err)
		}
		if !ok {
			conn.Close()
			return nil, fmt.Errorf("stream %s does not exist", cfg.StreamName)
		}
	}

	return &Publisher{conn: conn, streamName: cfg.StreamName}, nil
}

// Publish publishes data on subject
func (p *Publisher) Publish(ctx context.Context, subject string, msgID string, data []byte) error {
	opts := []jetstream.PublishOpt{jetstream.WithMsgID(msgID)}
	if p.streamName != "" {
		opts = append(opts, jetstream.WithExpectStream(p.streamName))
	}

	ack, err := p.conn.Publish(ctx, subject, data, opts...)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	if ack.Duplicate {
		logger.DebugCtx(ctx, "Event already in stream",
			zap.String("subject", subject),
			zap.String("msgID", msgID),
			zap.Uint64("sequence", ack.Sequence))
	}

	return nil
}

// Close closes the NATS connection
func (p *Publisher) Close() {
	p.conn.Close()
}
