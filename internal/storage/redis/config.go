package redis

// Config holds Redis connection settings.
//
// Hunt data carries no TTLs: player progress and completions must survive for
// the whole event and its aftermath (the leaderboard stays readable).
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
	}
}
