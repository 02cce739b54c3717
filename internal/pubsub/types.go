package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/mauv0809/elo-ladder/internal/rating"
)

type client struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// EventType represents the type of event/message sent via pubsub.
// It travels as the "event" attribute of the message.
type EventType string

const (
	EventPlayerAdded   EventType = "player.added"
	EventMatchRecorded EventType = "match.recorded"
)

// PlayerAdded is published when a new player joins the ladder.
type PlayerAdded struct {
	ID      string    `msgpack:"id"`
	Name    string    `msgpack:"name"`
	Rating  float64   `msgpack:"rating"`
	AddedAt time.Time `msgpack:"added_at"`
}

// MatchRecorded is published after a match has been applied to ratings.
type MatchRecorded struct {
	ID         string         `msgpack:"id"`
	Outcome    rating.Outcome `msgpack:"outcome"`
	RecordedAt time.Time      `msgpack:"recorded_at"`
}
