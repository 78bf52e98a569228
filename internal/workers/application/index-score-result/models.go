// internal/workers/application/index-score-result/models.go
package indexscoreresult

import "resume-workers/internal/scoring"

type Input struct {
	ApplicationID string            `json:"applicationId"`
	JobID         string            `json:"jobId"`
	OverallScore  float64           `json:"overallScore"`
	Ranking       string            `json:"ranking"`
	Scores        scoring.SubScores `json:"scores"`
	Confidence    int               `json:"confidence"`
}

// scoreDocument is the shape written to the search index.
type scoreDocument struct {
	ApplicationID string            `json:"applicationId"`
	JobID         string            `json:"jobId"`
	OverallScore  float64           `json:"overallScore"`
	Ranking       string            `json:"ranking"`
	Scores        scoring.SubScores `json:"scores"`
	Confidence    int               `json:"confidence"`
	IndexedAt     string            `json:"indexedAt"`
}

type Output struct {
	IndexName  string `json:"indexName"`
	DocumentID string `json:"documentId"`
	IndexedAt  string `json:"indexedAt"` // ISO 8601
}
