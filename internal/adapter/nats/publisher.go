package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"
)

// Subjects of the marketplace domain events.
const (
	SubjectMessageAppended  = "conversation.message.appended"
	SubjectOfferResolved    = "offer.resolved"
	SubjectConversationPaid = "conversation.paid"
	SubjectPaymentConfirmed = "payment.confirmed"
	SubjectAdPosted         = "ad.posted"
)

type MessagePublisher interface {
	Publish(ctx context.Context, subject string, message interface{}) error
	PublishRaw(ctx context.Context, subject string, data []byte) error
}

type natsPublisher struct {
	conn   *nats.Conn
	prefix string
}

// NewNATSPublisher publishes on conn. A non-empty prefix is prepended to every
// subject as its own token, so "staging" turns "offer.resolved" into
// "staging.offer.resolved".
func NewNATSPublisher(conn *nats.Conn, prefix string) (MessagePublisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("NATS connection cannot be nil")
	}
	prefix = strings.Trim(prefix, ". ")
	if strings.ContainsAny(prefix, "*> \t") {
		return nil, fmt.Errorf("invalid NATS subject prefix %q", prefix)
	}
	return &natsPublisher{conn: conn, prefix: prefix}, nil
}

func (p *natsPublisher) subject(s string) string {
	return qualify(p.prefix, s)
}

func qualify(prefix, subject string) string {
	if prefix == "" {
		return subject
	}
	return prefix + "." + subject
}

func (p *natsPublisher) Publish(ctx context.Context, subject string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message to JSON for subject %s: %w", subject, err)
	}
	return p.PublishRaw(ctx, subject, data)
}

func (p *natsPublisher) PublishRaw(ctx context.Context, subject string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.conn.Publish(p.subject(subject), data); err != nil {
		return fmt.Errorf("failed to publish message to NATS subject %s: %w", p.subject(subject), err)
	}
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher is used when NATS is disabled; every publish succeeds and goes nowhere.
func NewNoopPublisher() MessagePublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, string, interface{}) error { return nil }

func (noopPublisher) PublishRaw(context.Context, string, []byte) error { return nil }
