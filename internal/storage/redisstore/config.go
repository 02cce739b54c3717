package redisstore

// Config holds Redis connection settings.
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string
	// Key is the list that holds one encoded record per player.
	Key string

	PoolSize     int
	MinIdleConns int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		Key:          "elo:players",
		PoolSize:     10,
		MinIdleConns: 2,
	}
}
