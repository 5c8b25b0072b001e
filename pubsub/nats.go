// Package pubsub publishes chat events over NATS.
package pubsub

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
)

type NATS struct {
	conn *nats.Conn
}

func New(conn *nats.Conn) *NATS {
	return &NATS{conn: conn}
}

// Connect dials the server with reconnects enabled. Connection state
// changes are reported on errs when it is not nil.
func Connect(url string, errs chan<- error) (*nats.Conn, error) {
	report := func(err error) {
		if errs == nil || err == nil {
			return
		}
		select {
		case errs <- err:
		default:
		}
	}

	conn, err := nats.Connect(url,
		nats.Name("taemindang"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				report(fmt.Errorf("nats disconnected: %w", err))
			}
		}),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			report(fmt.Errorf("nats async error: %w", err))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	return conn, nil
}

// Publish sends data and waits for the server to acknowledge the buffered
// writes or for ctx to end.
func (n *NATS) Publish(ctx context.Context, subject string, data []byte) error {
	if err := n.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("nats publish %s: %w", subject, err)
	}

	if err := n.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("nats flush: %w", err)
	}

	return nil
}

// Close drains the connection so pending messages are delivered.
func (n *NATS) Close() error {
	if err := n.conn.Drain(); err != nil {
		return fmt.Errorf("nats drain: %w", err)
	}
	return nil
}

const subscriptionBuffer = 64

// Subscribe delivers the payloads published under subject until ctx ends.
// A consumer that falls behind the buffer loses messages.
func (n *NATS) Subscribe(ctx context.Context, subject string) (<-chan []byte, error) {
	msgs := make(chan *nats.Msg, subscriptionBuffer)
	sub, err := n.conn.ChanSubscribe(subject, msgs)
	if err != nil {
		return nil, fmt.Errorf("nats subscribe %s: %w", subject, err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		defer func() {
			_ = sub.Unsubscribe()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				select {
				case out <- msg.Data:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
