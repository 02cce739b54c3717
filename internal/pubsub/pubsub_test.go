package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/mauv0809/elo-ladder/internal/rating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestMatchRecorded_RoundTripsThroughMessagePack(t *testing.T) {
	mock := NewMock()
	event := MatchRecorded{
		ID: "abc",
		Outcome: rating.Outcome{
			Player1: "A", Player2: "B", Result: rating.Loss, KFactor: 32,
			Player1Before: 1200, Player2Before: 1200, Player1After: 1184, Player2After: 1216,
		},
		RecordedAt: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, mock.SendMessage(context.Background(), EventMatchRecorded, event))
	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, EventMatchRecorded, calls[0].Event)

	var decoded MatchRecorded
	require.NoError(t, msgpack.Unmarshal(calls[0].Encoded, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, event.Outcome, decoded.Outcome)
	assert.True(t, event.RecordedAt.Equal(decoded.RecordedAt))
}

func TestNop(t *testing.T) {
	client := NewNop()
	require.NoError(t, client.SendMessage(context.Background(), EventPlayerAdded, PlayerAdded{Name: "A"}))
	require.NoError(t, client.Close())
}
