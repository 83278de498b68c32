package adapter

import (
	"context"
	"errors"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// JetStreamConn is a NATS connection with its JetStream context
//
//go:generate mockgen -source=nats.go -destination=../mocks/nats.go -package=mocks -mock_names=JetStreamConn=MockJetStreamConn,JetStreamDialer=MockJetStreamDialer
type JetStreamConn interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
	// HasStream reports whether the named stream exists on the server
	HasStream(ctx context.Context, name string) (bool, error)
	Close()
}

// JetStreamDialer opens JetStream connections
type JetStreamDialer interface {
	Dial(url string, options ...nats.Option) (JetStreamConn, error)
}

type jetStreamDialer struct{}

// NewJetStreamDialer returns a dialer backed by nats.go
func NewJetStreamDialer() JetStreamDialer {
	return jetStreamDialer{}
}

func (jetStreamDialer) Dial(url string, options ...nats.Option) (JetStreamConn, error) {
	nc, err := nats.Connect(url, options...)
	if err != nil {
		return nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, err
	}

	return &jetStreamConn{nc: nc, js: js}, nil
}

type jetStreamConn struct {
	nc *nats.Conn
	js jetstream.JetStream
}

func (c *jetStreamConn) Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	return c.js.Publish(ctx, subject, data, opts...)
}

func (c *jetStreamConn) HasStream(ctx context.Context, name string) (bool, error) {
	_, err := c.js.Stream(ctx, name)
	if errors.Is(err, jetstream.ErrStreamNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *jetStreamConn) Close() {
	c.nc.Close()
}
