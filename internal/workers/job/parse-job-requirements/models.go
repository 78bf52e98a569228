// internal/workers/job/parse-job-requirements/models.go
package parsejobrequirements

type Input struct {
	JobID          string `json:"jobId"`
	JobDescription string `json:"jobDescription"`
}

type Output struct {
	JobID              string   `json:"jobId"`
	Skills             []string `json:"skills"`
	RequiredExperience int      `json:"requiredExperience"`
	RequiredEducation  string   `json:"requiredEducation"`
	TokenCount         int      `json:"tokenCount"`
	Cached             bool     `json:"cached"`
}
