package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mauv0809/elo-ladder/internal/rating"
	"github.com/mauv0809/elo-ladder/internal/storage"
)

// Store keeps the players as a Redis list of msgpack-encoded records.
type Store struct {
	client *redis.Client
	cfg    Config
}

// Ensure Store implements the interface
var _ storage.Store = (*Store)(nil)

// New connects to Redis and verifies the connection.
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Store {
	if cfg.Key == "" {
		cfg.Key = DefaultConfig().Key
	}
	return &Store{
		client: client,
		cfg:    cfg,
	}
}

// Save replaces the list atomically inside a MULTI/EXEC block.
func (s *Store) Save(ctx context.Context, players []rating.PlayerRecord) error {
	values := make([]any, 0, len(players))
	for _, p := range players {
		data, err := msgpack.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to encode player %s: %w", p.Name, err)
		}
		values = append(values, data)
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.cfg.Key)
		if len(values) > 0 {
			pipe.RPush(ctx, s.cfg.Key, values...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save players: %w", err)
	}

	log.Info("Saved players to redis", "key", s.cfg.Key, "players", len(players))
	return nil
}

func (s *Store) Load(ctx context.Context) ([]rating.PlayerRecord, error) {
	raw, err := s.client.LRange(ctx, s.cfg.Key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}

	players := make([]rating.PlayerRecord, 0, len(raw))
	for i, item := range raw {
		var p rating.PlayerRecord
		if err := msgpack.Unmarshal([]byte(item), &p); err != nil {
			return nil, fmt.Errorf("failed to decode player at index %d: %w", i, err)
		}
		players = append(players, p)
	}

	log.Debug("Loaded players from redis", "key", s.cfg.Key, "players", len(players))
	return players, nil
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}
