// internal/workers/application/rank-applications/config.go
package rankapplications

import "time"

type Config struct {
	// Upper bound on how many ranked entries are returned.
	MaxItems int
	Timeout  time.Duration
}

func LoadConfig() *Config {
	return &Config{
		MaxItems: 50,
		Timeout:  30 * time.Second,
	}
}
