package pubsub

import "context"

// PubSubClient publishes ladder events.
type PubSubClient interface {
	SendMessage(ctx context.Context, event EventType, data any) error
	Close() error
}
