// internal/workers/application/store-score-record/config.go
package storescorerecord

import "time"

// No per-worker config needed beyond the execution timeout.
type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
