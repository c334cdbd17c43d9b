package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Slot names the saved ledger; each slot is an independent save
	Slot string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// SaveTTL expires an untouched save; zero keeps it forever
	SaveTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		Slot:         "default",
		PoolSize:     2,
		MinIdleConns: 1,
		SaveTTL:      0,
	}
}
