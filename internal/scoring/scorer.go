// internal/scoring/scorer.go
package scoring

import (
	"math"
	"strings"
	"time"
)

var relevanceKeywords = []string{"professional", "experienced", "skilled", "development", "project"}

// ScoreResume scores one resume against one job description. Weight
// overrides merge over DefaultWeights per key; pass nil to use the
// defaults. Malformed content never returns an error: a blank resume yields
// an UNRANKED zero result and everything else degrades to low sub-scores.
func ScoreResume(resumeText, jobDescription string, overrides map[string]float64) *ScoreResult {
	return ScoreResumeWithRequirements(resumeText, ParseJobDescription(jobDescription), overrides)
}

// ScoreResumeWithRequirements scores a resume against already-parsed job
// requirements, e.g. requirements served from a cache instead of reparsed
// per application.
func ScoreResumeWithRequirements(resumeText string, jobReqs ParsedJobRequirements, overrides map[string]float64) *ScoreResult {
	if strings.TrimSpace(resumeText) == "" {
		// The job side is already parsed, so keep its requirements in the
		// metadata even though the candidate could not be analyzed.
		return &ScoreResult{
			Ranking:   RankingUnranked,
			Breakdown: Breakdown{Message: "invalid resume text"},
			Metadata: Metadata{
				CandidateEducation: EducationUnknown.String(),
				RequiredExperience: jobReqs.RequiredExperience,
				RequiredEducation:  jobReqs.RequiredEducation.String(),
				ScoredAt:           time.Now().UTC(),
			},
		}
	}

	weights := DefaultWeights()
	for k, v := range overrides {
		weights[k] = v
	}

	profile := ExtractProfile(resumeText)
	resumeTokens := Tokenize(resumeText)

	scores := SubScores{
		Technical:    technicalScore(profile.Skills, jobReqs.Skills, resumeTokens, jobReqs.Tokens),
		Experience:   experienceScore(profile.ExperienceYears, jobReqs.RequiredExperience),
		Education:    educationScore(profile.Education, jobReqs.RequiredEducation),
		Completeness: completenessScore(profile),
		Relevance:    relevanceScore(resumeText),
	}

	overall := scores.Technical*weights[WeightTechnical] +
		scores.Experience*weights[WeightExperience] +
		scores.Education*weights[WeightEducation] +
		scores.Completeness*weights[WeightCompleteness] +
		scores.Relevance*weights[WeightRelevance]

	return &ScoreResult{
		OverallScore: round2(overall),
		Scores: SubScores{
			Technical:    round2(scores.Technical),
			Experience:   round2(scores.Experience),
			Education:    round2(scores.Education),
			Completeness: round2(scores.Completeness),
			Relevance:    round2(scores.Relevance),
		},
		Breakdown:  buildBreakdown(profile, jobReqs, resumeTokens),
		Ranking:    rankingFor(overall),
		Confidence: confidenceFor(profile, jobReqs),
		Metadata: Metadata{
			ResumeWordCount:     profile.WordCount,
			CandidateExperience: profile.ExperienceYears,
			CandidateEducation:  profile.Education.String(),
			RequiredExperience:  jobReqs.RequiredExperience,
			RequiredEducation:   jobReqs.RequiredEducation.String(),
			ScoredAt:            time.Now().UTC(),
		},
	}
}

// technicalScore blends fuzzy skill matching (60%) with TF-IDF keyword
// overlap (40%).
func technicalScore(resumeSkills, requiredSkills, resumeTokens, jobTokens []string) float64 {
	skillScore := MatchSkills(resumeSkills, requiredSkills)
	keywordScore := KeywordRelevance(resumeTokens, jobTokens)
	return skillScore*0.6 + keywordScore*0.4
}

// experienceScore rewards meeting the requirement; overqualification gains
// only a little past 110% of the asked-for years.
func experienceScore(candidate, required int) float64 {
	if required == 0 {
		return 100
	}
	if candidate == 0 {
		return 0
	}

	ratio := float64(candidate) / float64(required)
	switch {
	case ratio >= 1.1:
		return math.Min(100, 90+(ratio-1.1)*10)
	case ratio >= 0.5:
		return 50 + ratio*50
	default:
		return ratio * 50
	}
}

func educationScore(candidate, required EducationLevel) float64 {
	if candidate == required {
		return 100
	}
	if candidate > required {
		return 95
	}
	switch required - candidate {
	case 1:
		return 70
	case 2:
		return 40
	default:
		return 0
	}
}

func completenessScore(profile ResumeProfile) float64 {
	score := 0.0
	if profile.HasEmail {
		score += 50
	}
	if profile.HasPhone {
		score += 30
	}
	if profile.WordCount > 200 {
		score += 20
	}
	return math.Min(100, score)
}

func relevanceScore(resumeText string) float64 {
	lower := strings.ToLower(resumeText)
	matches := 0
	for _, kw := range relevanceKeywords {
		if strings.Contains(lower, kw) {
			matches++
		}
	}
	return math.Min(100, float64(matches)/float64(len(relevanceKeywords))*100)
}

func rankingFor(overall float64) string {
	switch {
	case overall >= 85:
		return RankingExcellent
	case overall >= 75:
		return RankingStrong
	case overall >= 60:
		return RankingGood
	case overall >= 45:
		return RankingFair
	case overall >= 30:
		return RankingPoor
	default:
		return RankingBelowAverage
	}
}

// confidenceFor estimates how trustworthy the score is from the quality of
// the inputs, starting at a 40 baseline for any scoreable resume.
func confidenceFor(profile ResumeProfile, jobReqs ParsedJobRequirements) int {
	confidence := 40
	if profile.HasEmail {
		confidence += 15
	}
	if len(jobReqs.Skills) > 0 {
		confidence += 15
	}
	if profile.Education != EducationUnknown {
		confidence += 15
	}
	if profile.ExperienceYears > 0 {
		confidence += 10
	}
	if profile.WordCount > 300 {
		confidence += 5
	}
	if profile.WordCount > 100 {
		confidence += 5
	}
	if confidence > 100 {
		confidence = 100
	}
	return confidence
}

func buildBreakdown(profile ResumeProfile, jobReqs ParsedJobRequirements, resumeTokens []string) Breakdown {
	required := make(map[string]bool, len(jobReqs.Skills))
	for _, s := range jobReqs.Skills {
		required[s] = true
	}
	have := make(map[string]bool, len(profile.Skills))
	for _, s := range profile.Skills {
		have[s] = true
	}

	matched := make([]string, 0, len(profile.Skills))
	for _, s := range profile.Skills {
		if required[s] {
			matched = append(matched, s)
		}
	}
	missing := make([]string, 0, len(jobReqs.Skills))
	for _, s := range jobReqs.Skills {
		if !have[s] {
			missing = append(missing, s)
		}
	}

	jobTokenSet := make(map[string]bool, len(jobReqs.Tokens))
	for _, t := range jobReqs.Tokens {
		jobTokenSet[t] = true
	}
	keywordMatches := 0
	for _, t := range resumeTokens {
		if jobTokenSet[t] {
			keywordMatches++
		}
	}

	educationMatch := "below"
	if profile.Education >= jobReqs.RequiredEducation {
		educationMatch = "meets"
	}

	return Breakdown{
		MatchedSkills:  matched,
		MissingSkills:  missing,
		ExperienceDiff: profile.ExperienceYears - jobReqs.RequiredExperience,
		EducationMatch: educationMatch,
		HasFullContact: profile.HasEmail && profile.HasPhone,
		KeywordMatches: keywordMatches,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
