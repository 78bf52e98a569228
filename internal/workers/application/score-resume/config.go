// internal/workers/application/score-resume/config.go
package scoreresume

import "time"

type Config struct {
	// TTL for cached parsed job requirements.
	CacheTTL time.Duration
	// Deployment-level weight overrides, merged under per-request weights.
	Weights map[string]float64
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		CacheTTL: time.Hour,
		Timeout:  30 * time.Second,
	}
}
