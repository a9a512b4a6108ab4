package hermes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

type Client interface {
	Publish(subject string, data interface{}) error
	Subscribe(subject string, handler func(subject string, data []byte)) error
	Close()
}

type NATSClient struct {
	conn   *nats.Conn
	js     jetstream.JetStream
	subs   []*nats.Subscription
	logger *slog.Logger
}

func NewNATSClient(ctx context.Context, url string, logger *slog.Logger) (*NATSClient, error) {
	nc, err := nats.Connect(url,
		nats.Name("cers"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	c := &NATSClient{conn: nc, js: js, logger: logger}
	if err := c.ensureStream(ctx); err != nil {
		logger.Warn("failed to ensure stream", "stream", StreamName, "error", err)
	}
	return c, nil
}

func (c *NATSClient) ensureStream(ctx context.Context) error {
	maxAge, _ := time.ParseDuration(StreamMaxAge)
	_, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     StreamName,
		Subjects: []string{SubjectAll},
		MaxAge:   maxAge,
	})
	return err
}

// Publish sends data as JSON. Events that carry an ID are published with a
// Nats-Msg-Id header so the CERS_EVENTS stream drops redeliveries.
func (c *NATSClient) Publish(subject string, data interface{}) error {
	msg, err := buildMsg(subject, data)
	if err != nil {
		return err
	}
	if err := c.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	c.logger.Debug("event published", "subject", subject, "bytes", len(msg.Data))
	return nil
}

func (c *NATSClient) Subscribe(subject string, handler func(string, []byte)) error {
	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Subject, msg.Data)
	})
	if err != nil {
		return err
	}
	c.subs = append(c.subs, sub)
	return nil
}

func (c *NATSClient) Close() {
	for _, sub := range c.subs {
		_ = sub.Unsubscribe()
	}
	c.conn.Close()
}

// identified is implemented by events with a stable ID.
type identified interface {
	MessageID() string
}

func buildMsg(subject string, data interface{}) (*nats.Msg, error) {
	if subject == "" {
		return nil, errors.New("empty subject")
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", subject, err)
	}
	msg := nats.NewMsg(subject)
	msg.Data = payload
	msg.Header.Set(HeaderContentType, "application/json")
	if ev, ok := data.(identified); ok && ev.MessageID() != "" {
		msg.Header.Set(nats.MsgIdHdr, ev.MessageID())
	}
	return msg, nil
}

// NopClient drops every event. Used when no NATS URL is configured.
type NopClient struct{}

func (NopClient) Publish(string, interface{}) error           { return nil }
func (NopClient) Subscribe(string, func(string, []byte)) error { return nil }
func (NopClient) Close()                                       {}
