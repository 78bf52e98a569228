// internal/workers/application/index-score-result/config.go
package indexscoreresult

import "time"

type Config struct {
	// Elasticsearch index receiving score documents.
	Index   string
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Index:   "application-scores",
		Timeout: 10 * time.Second,
	}
}
