// internal/scoring/types.go
package scoring

import "time"

// Ranking labels ordered by descending overall score.
const (
	RankingExcellent    = "EXCELLENT"
	RankingStrong       = "STRONG"
	RankingGood         = "GOOD"
	RankingFair         = "FAIR"
	RankingPoor         = "POOR"
	RankingBelowAverage = "BELOW_AVERAGE"
	RankingUnranked     = "UNRANKED"
)

// Weight keys accepted as per-request overrides.
const (
	WeightTechnical    = "technical"
	WeightExperience   = "experience"
	WeightEducation    = "education"
	WeightCompleteness = "completeness"
	WeightRelevance    = "relevance"
)

// DefaultWeights returns the standard weighting of the five sub-scores.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		WeightTechnical:    0.35,
		WeightExperience:   0.25,
		WeightEducation:    0.20,
		WeightCompleteness: 0.15,
		WeightRelevance:    0.05,
	}
}

// ParsedJobRequirements holds everything extracted from a job description.
type ParsedJobRequirements struct {
	Tokens             []string       `json:"tokens"`
	Skills             []string       `json:"skills"`
	RequiredExperience int            `json:"requiredExperience"`
	RequiredEducation  EducationLevel `json:"requiredEducation"`
}

// ResumeProfile is the structured summary extracted from raw resume text.
type ResumeProfile struct {
	Skills          []string       `json:"skills"`
	ExperienceYears int            `json:"experienceYears"`
	Education       EducationLevel `json:"education"`
	WordCount       int            `json:"wordCount"`
	HasEmail        bool           `json:"hasEmail"`
	HasPhone        bool           `json:"hasPhone"`
}

// SubScores are the five dimension scores, each on a 0-100 scale.
type SubScores struct {
	Technical    float64 `json:"technical"`
	Experience   float64 `json:"experience"`
	Education    float64 `json:"education"`
	Completeness float64 `json:"completeness"`
	Relevance    float64 `json:"relevance"`
}

// Breakdown explains how the score came about.
type Breakdown struct {
	MatchedSkills  []string `json:"matchedSkills"`
	MissingSkills  []string `json:"missingSkills"`
	ExperienceDiff int      `json:"experienceDiff"`
	EducationMatch string   `json:"educationMatch"` // "meets" or "below"
	HasFullContact bool     `json:"hasFullContact"`
	KeywordMatches int      `json:"keywordMatches"`
	Message        string   `json:"message,omitempty"`
}

// Metadata carries the raw extraction facts alongside the score.
type Metadata struct {
	ResumeWordCount     int       `json:"resumeWordCount"`
	CandidateExperience int       `json:"candidateExperience"`
	CandidateEducation  string    `json:"candidateEducation"`
	RequiredExperience  int       `json:"requiredExperience"`
	RequiredEducation   string    `json:"requiredEducation"`
	ScoredAt            time.Time `json:"scoredAt"`
}

// ScoreResult is the full outcome of scoring one resume against one job.
type ScoreResult struct {
	OverallScore float64   `json:"overallScore"`
	Scores       SubScores `json:"scores"`
	Breakdown    Breakdown `json:"breakdown"`
	Ranking      string    `json:"ranking"`
	Confidence   int       `json:"confidence"`
	Metadata     Metadata  `json:"metadata"`
}

// Recommendation is the recruiter-facing interpretation of a ranking.
type Recommendation struct {
	Color   string `json:"color"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// BatchResume is one entry in a batch scoring request.
type BatchResume struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// BatchResult pairs a batch entry with its score.
type BatchResult struct {
	ID    string       `json:"id"`
	Score *ScoreResult `json:"score"`
}
