package ladder

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/elo-ladder/internal/matchmaking"
	"github.com/mauv0809/elo-ladder/internal/metrics"
	"github.com/mauv0809/elo-ladder/internal/notifier"
	"github.com/mauv0809/elo-ladder/internal/pubsub"
	"github.com/mauv0809/elo-ladder/internal/rating"
	"github.com/mauv0809/elo-ladder/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc    *Service
	store  *storage.Mock
	notif  *notifier.Mock
	metr   *metrics.Mock
	pubsub *pubsub.MockPubSubClient
}

func setup(t *testing.T, players ...rating.PlayerRecord) fixture {
	t.Helper()
	f := fixture{
		store:  storage.NewMock(players...),
		notif:  notifier.NewMock(),
		metr:   metrics.NewMock(),
		pubsub: pubsub.NewMock(),
	}
	f.svc = New(f.store, f.notif, f.metr, f.pubsub, DefaultOptions())
	return f
}

func TestService_AddPlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("new player starts at the initial rating and is announced", func(t *testing.T) {
		f := setup(t)

		require.NoError(t, f.svc.AddPlayer(ctx, "Alice"))

		p, ok := f.svc.Player("Alice")
		require.True(t, ok)
		assert.Equal(t, rating.DefaultRating, p.Rating)
		assert.Equal(t, 1, f.metr.PlayersAdded())
		assert.Equal(t, 1, f.metr.Players())

		calls := f.pubsub.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, pubsub.EventPlayerAdded, calls[0].Event)
		event := calls[0].Data.(pubsub.PlayerAdded)
		assert.Equal(t, "Alice", event.Name)
		assert.NotEmpty(t, event.ID)
	})

	t.Run("duplicate is rejected", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.svc.AddPlayer(ctx, "Alice"))

		err := f.svc.AddPlayer(ctx, "Alice")
		assert.ErrorIs(t, err, rating.ErrDuplicatePlayer)
		assert.Equal(t, 1, f.metr.Rejected("duplicate_player"))
		assert.Len(t, f.pubsub.Calls(), 1)
	})

	t.Run("custom initial rating", func(t *testing.T) {
		f := setup(t)
		f.svc.opts.InitialRating = 1500

		require.NoError(t, f.svc.AddPlayer(ctx, "Alice"))
		p, _ := f.svc.Player("Alice")
		assert.Equal(t, 1500.0, p.Rating)
	})

	t.Run("publish failure does not undo the add", func(t *testing.T) {
		f := setup(t)
		f.pubsub.SendMessageFunc = func(pubsub.EventType, any) error { return errors.New("broker down") }

		require.NoError(t, f.svc.AddPlayer(ctx, "Alice"))
		_, ok := f.svc.Player("Alice")
		assert.True(t, ok)
	})
}

func TestService_RecordMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("win updates both players and notifies", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.svc.AddPlayer(ctx, "Alice"))
		require.NoError(t, f.svc.AddPlayer(ctx, "Bob"))
		f.pubsub.Reset()

		outcome, err := f.svc.RecordMatch(ctx, "Alice", "Bob", rating.Win)
		require.NoError(t, err)

		assert.InDelta(t, 1216.0, outcome.Player1After, 1e-9)
		assert.InDelta(t, 1184.0, outcome.Player2After, 1e-9)
		assert.Equal(t, 1, f.metr.MatchesRecorded("win"))
		assert.Equal(t, []float64{16, 16}, f.metr.RatingChanges())

		require.Len(t, f.notif.MatchResults(), 1)
		assert.Equal(t, outcome, f.notif.MatchResults()[0])
		assert.Equal(t, []bool{false}, f.notif.DryRunFlags)

		calls := f.pubsub.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, pubsub.EventMatchRecorded, calls[0].Event)
		assert.Equal(t, outcome, calls[0].Data.(pubsub.MatchRecorded).Outcome)
	})

	t.Run("dry run is forwarded to the notifier", func(t *testing.T) {
		f := setup(t)
		f.svc.opts.DryRun = true
		require.NoError(t, f.svc.AddPlayer(ctx, "Alice"))
		require.NoError(t, f.svc.AddPlayer(ctx, "Bob"))

		_, err := f.svc.RecordMatch(ctx, "Alice", "Bob", rating.Draw)
		require.NoError(t, err)
		assert.Equal(t, []bool{true}, f.notif.DryRunFlags)
	})

	t.Run("notification failure keeps the rating change", func(t *testing.T) {
		f := setup(t)
		f.notif.MatchResultErr = errors.New("slack down")
		require.NoError(t, f.svc.AddPlayer(ctx, "Alice"))
		require.NoError(t, f.svc.AddPlayer(ctx, "Bob"))

		_, err := f.svc.RecordMatch(ctx, "Alice", "Bob", rating.Loss)
		require.NoError(t, err)
		p, _ := f.svc.Player("Bob")
		assert.Equal(t, 1, p.Wins)
	})

	rejections := []struct {
		name   string
		p1, p2 string
		result rating.Result
		err    error
		reason string
	}{
		{"unknown first player", "Zed", "Bob", rating.Win, rating.ErrPlayerNotFound, "player_not_found"},
		{"unknown second player", "Alice", "Zed", rating.Win, rating.ErrPlayerNotFound, "player_not_found"},
		{"self match", "Alice", "Alice", rating.Win, rating.ErrSelfMatch, "self_match"},
		{"invalid result", "Alice", "Bob", rating.Result(2), rating.ErrInvalidResult, "invalid_result"},
	}
	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			require.NoError(t, f.svc.AddPlayer(ctx, "Alice"))
			require.NoError(t, f.svc.AddPlayer(ctx, "Bob"))

			_, err := f.svc.RecordMatch(ctx, tt.p1, tt.p2, tt.result)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, 1, f.metr.Rejected(tt.reason))
			assert.Empty(t, f.notif.MatchResults())

			for _, name := range []string{"Alice", "Bob"} {
				p, _ := f.svc.Player(name)
				assert.Equal(t, rating.DefaultRating, p.Rating)
				assert.Zero(t, p.GamesPlayed)
			}
		})
	}
}

func TestService_LoadAndSave(t *testing.T) {
	ctx := context.Background()
	stored := []rating.PlayerRecord{
		{Name: "Alice", Rating: 1216, GamesPlayed: 1, Wins: 1},
		{Name: "Bob", Rating: 1184, GamesPlayed: 1, Losses: 1},
	}

	t.Run("round trip", func(t *testing.T) {
		f := setup(t, stored...)

		n, err := f.svc.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"Alice", "Bob"}, f.svc.PlayerNames())
		assert.Equal(t, 2, f.metr.Players())

		_, err = f.svc.RecordMatch(ctx, "Alice", "Bob", rating.Draw)
		require.NoError(t, err)
		require.NoError(t, f.svc.Save(ctx))

		saved := f.store.Players()
		require.Len(t, saved, 2)
		assert.Equal(t, 2, saved[0].GamesPlayed)
		assert.Equal(t, 1, saved[0].Draws)
		assert.Equal(t, 1, f.metr.StorageCalls("load"))
		assert.Equal(t, 1, f.metr.StorageCalls("save"))
	})

	t.Run("load error leaves registry untouched", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.svc.AddPlayer(ctx, "Carol"))
		f.store.LoadErr = errors.New("disk gone")

		_, err := f.svc.Load(ctx)
		require.Error(t, err)
		assert.Equal(t, []string{"Carol"}, f.svc.PlayerNames())
	})

	t.Run("invalid records are rejected as a whole", func(t *testing.T) {
		f := setup(t, stored[0], stored[0])
		require.NoError(t, f.svc.AddPlayer(ctx, "Carol"))

		_, err := f.svc.Load(ctx)
		assert.ErrorIs(t, err, rating.ErrDuplicatePlayer)
		assert.Equal(t, []string{"Carol"}, f.svc.PlayerNames())
	})

	t.Run("save error is wrapped", func(t *testing.T) {
		f := setup(t)
		boom := errors.New("read-only")
		f.store.SaveErr = boom
		assert.ErrorIs(t, f.svc.Save(ctx), boom)
	})
}

func TestService_FindOpponent(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	_, err := f.svc.FindOpponent("Alice", matchmaking.NewMockRandom())
	assert.ErrorIs(t, err, rating.ErrPlayerNotFound)

	require.NoError(t, f.svc.AddPlayer(ctx, "Alice"))
	_, err = f.svc.FindOpponent("Alice", matchmaking.NewMockRandom())
	assert.ErrorIs(t, err, matchmaking.ErrNoOpponent)

	require.NoError(t, f.svc.AddPlayer(ctx, "Bob"))
	require.NoError(t, f.svc.AddPlayer(ctx, "Carol"))
	rnd := matchmaking.NewMockRandom()
	rnd.QueueIntn(1)
	opp, err := f.svc.FindOpponent("Alice", rnd)
	require.NoError(t, err)
	assert.Equal(t, "Carol", opp)
}

func TestService_Leaderboard(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	for _, n := range []string{"Alice", "Bob", "Carol"} {
		require.NoError(t, f.svc.AddPlayer(ctx, n))
	}
	_, err := f.svc.RecordMatch(ctx, "Carol", "Alice", rating.Win)
	require.NoError(t, err)

	entries := f.svc.Leaderboard()
	require.Len(t, entries, 3)
	assert.Equal(t, "Carol", entries[0].Name)
	assert.Equal(t, "Bob", entries[1].Name)
	assert.Equal(t, "Alice", entries[2].Name)

	require.NoError(t, f.svc.AnnounceLeaderboard())
	require.Len(t, f.notif.SendLeaderboardCalls, 1)
	assert.Equal(t, entries, f.notif.SendLeaderboardCalls[0])
}
