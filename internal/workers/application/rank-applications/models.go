// internal/workers/application/rank-applications/models.go
package rankapplications

import "resume-workers/internal/scoring"

type Application struct {
	ApplicationID string `json:"applicationId"`
	ResumeText    string `json:"resumeText"`
}

type Input struct {
	JobID          string             `json:"jobId"`
	JobDescription string             `json:"jobDescription"`
	Weights        map[string]float64 `json:"weights,omitempty"`
	Applications   []Application      `json:"applications"`
}

type RankedApplication struct {
	ApplicationID  string                 `json:"applicationId"`
	Position       int                    `json:"position"`
	OverallScore   float64                `json:"overallScore"`
	Ranking        string                 `json:"ranking"`
	Confidence     int                    `json:"confidence"`
	Recommendation scoring.Recommendation `json:"recommendation"`
}

type Output struct {
	JobID              string              `json:"jobId"`
	RankedApplications []RankedApplication `json:"rankedApplications"`
	TotalScored        int                 `json:"totalScored"`
	Truncated          bool                `json:"truncated"`
}
