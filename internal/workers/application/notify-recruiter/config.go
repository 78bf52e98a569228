// internal/workers/application/notify-recruiter/config.go
package notifyrecruiter

import "time"

type Config struct {
	FromEmail    string
	EmailEnabled bool
	SMSEnabled   bool
	// Minimum ranking at which an SMS goes out in addition to email.
	SMSRankingThreshold string
	AWSRegion           string
	Timeout             time.Duration
}

func LoadConfig() *Config {
	return &Config{
		FromEmail:           "no-reply@resume-workers.local",
		EmailEnabled:        true,
		SMSEnabled:          false,
		SMSRankingThreshold: "STRONG",
		AWSRegion:           "us-east-1",
		Timeout:             15 * time.Second,
	}
}
