// internal/workers/job/parse-job-requirements/config.go
package parsejobrequirements

import "time"

type Config struct {
	// How long parsed requirements stay in the cache before scoring
	// workers re-parse the description.
	CacheTTL time.Duration
	Timeout  time.Duration
}

func LoadConfig() *Config {
	return &Config{
		CacheTTL: time.Hour,
		Timeout:  10 * time.Second,
	}
}
