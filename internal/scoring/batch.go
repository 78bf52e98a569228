// internal/scoring/batch.go
package scoring

import "sort"

// ScoreBatch scores every resume against the same job description and
// returns the results ordered best-first. The sort is stable so equal
// scores keep their input order.
func ScoreBatch(resumes []BatchResume, jobDescription string, overrides map[string]float64) []BatchResult {
	results := make([]BatchResult, 0, len(resumes))
	for _, r := range resumes {
		results = append(results, BatchResult{
			ID:    r.ID,
			Score: ScoreResume(r.Text, jobDescription, overrides),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score.OverallScore > results[j].Score.OverallScore
	})
	return results
}

var recommendations = map[string]Recommendation{
	RankingExcellent: {
		Color:   "#2E7D32",
		Message: "Strong match - Highly recommended for interview",
		Action:  "INTERVIEW",
	},
	RankingStrong: {
		Color:   "#0288D1",
		Message: "Good match - Suitable for interview",
		Action:  "INTERVIEW",
	},
	RankingGood: {
		Color:   "#F57C00",
		Message: "Acceptable match - Consider for interview",
		Action:  "CONSIDER",
	},
	RankingFair: {
		Color:   "#FBC02D",
		Message: "Limited match - May need screening",
		Action:  "SCREEN",
	},
	RankingPoor: {
		Color:   "#E64A19",
		Message: "Weak match - Consider rejecting",
		Action:  "REJECT",
	},
	RankingBelowAverage: {
		Color:   "#C41E3A",
		Message: "Does not meet minimum requirements",
		Action:  "REJECT",
	},
	RankingUnranked: {
		Color:   "#999",
		Message: "Unable to rank - Check resume quality",
		Action:  "REVIEW",
	},
}

// RecommendationFor maps a ranking label to its recruiter-facing
// recommendation. Unknown labels get the UNRANKED recommendation.
func RecommendationFor(ranking string) Recommendation {
	if rec, ok := recommendations[ranking]; ok {
		return rec
	}
	return recommendations[RankingUnranked]
}
