// internal/workers/application/score-resume/models.go
package scoreresume

import "resume-workers/internal/scoring"

type Input struct {
	ApplicationID  string             `json:"applicationId"`
	JobID          string             `json:"jobId"`
	ResumeText     string             `json:"resumeText"`
	JobDescription string             `json:"jobDescription"`
	Weights        map[string]float64 `json:"weights,omitempty"`
}

type Output struct {
	ApplicationID  string                 `json:"applicationId"`
	JobID          string                 `json:"jobId"`
	OverallScore   float64                `json:"overallScore"`
	Ranking        string                 `json:"ranking"`
	Scores         scoring.SubScores      `json:"scores"`
	Breakdown      scoring.Breakdown      `json:"breakdown"`
	Confidence     int                    `json:"confidence"`
	Metadata       scoring.Metadata       `json:"metadata"`
	Recommendation scoring.Recommendation `json:"recommendation"`
}
