package pubsub

import (
	"context"

	"github.com/charmbracelet/log"
)

type nop struct{}

// NewNop returns a client that drops every message. It is used when no
// Google Cloud project is configured.
func NewNop() PubSubClient {
	return nop{}
}

func (nop) SendMessage(ctx context.Context, event EventType, data any) error {
	log.Debug("Pub/Sub disabled, dropping event", "event", event)
	return nil
}

func (nop) Close() error {
	return nil
}
