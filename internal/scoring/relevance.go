// internal/scoring/relevance.go
package scoring

import "math"

// KeywordRelevance computes a TF-IDF style overlap score between resume and
// job tokens, normalized to 0-100. Term frequency comes from the resume;
// inverse document frequency from how often the term repeats in the job
// text, so boilerplate words the job post repeats count for less.
func KeywordRelevance(resumeTokens, jobTokens []string) float64 {
	if len(resumeTokens) == 0 || len(jobTokens) == 0 {
		return 0
	}

	termFreq := make(map[string]int, len(resumeTokens))
	for _, tok := range resumeTokens {
		termFreq[tok]++
	}

	jobFreq := make(map[string]int, len(jobTokens))
	for _, tok := range jobTokens {
		jobFreq[tok]++
	}

	var score float64
	for tok, count := range termFreq {
		freq, ok := jobFreq[tok]
		if !ok {
			continue
		}
		tf := float64(count) / float64(len(resumeTokens))
		idf := math.Log(float64(len(jobTokens)) / float64(freq))
		score += tf * idf
	}

	norm := len(resumeTokens)
	if len(jobTokens) < norm {
		norm = len(jobTokens)
	}
	return math.Min(score/float64(norm)*100, 100)
}
