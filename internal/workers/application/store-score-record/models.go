// internal/workers/application/store-score-record/models.go
package storescorerecord

import "resume-workers/internal/scoring"

type Input struct {
	ApplicationID string            `json:"applicationId"`
	JobID         string            `json:"jobId"`
	OverallScore  float64           `json:"overallScore"`
	Ranking       string            `json:"ranking"`
	Scores        scoring.SubScores `json:"scores"`
	Confidence    int               `json:"confidence"`
}

type Output struct {
	ScoreRecordID string `json:"scoreRecordId"`
	StoredAt      string `json:"storedAt"` // ISO 8601
}
