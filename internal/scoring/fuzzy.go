// internal/scoring/fuzzy.go
package scoring

import "strings"

const similarityThreshold = 70

// MatchSkills measures how many required skills appear in the resume skill
// set, tolerating near-miss spellings. A required skill counts as matched
// when some resume skill is more than 70% similar by Levenshtein distance,
// or when either name contains the other. Returns matched/required * 100.
func MatchSkills(resumeSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 100
	}
	if len(resumeSkills) == 0 {
		return 0
	}

	matched := 0
	for _, required := range requiredSkills {
		if skillMatched(resumeSkills, required) {
			matched++
		}
	}
	return float64(matched) / float64(len(requiredSkills)) * 100
}

func skillMatched(resumeSkills []string, required string) bool {
	reqLower := strings.ToLower(required)
	for _, resume := range resumeSkills {
		resLower := strings.ToLower(resume)
		if stringSimilarity(resLower, reqLower) > similarityThreshold {
			return true
		}
		if strings.Contains(resLower, reqLower) || strings.Contains(reqLower, resLower) {
			return true
		}
	}
	return false
}

// stringSimilarity returns a 0-100 similarity percentage based on the edit
// distance relative to the longer string.
func stringSimilarity(a, b string) float64 {
	longer, shorter := a, b
	if len(b) > len(a) {
		longer, shorter = b, a
	}
	if len(longer) == 0 {
		return 100
	}
	dist := editDistance(longer, shorter)
	return float64(len(longer)-dist) / float64(len(longer)) * 100
}

// editDistance is the classic Levenshtein distance with a single rolling
// cost row.
func editDistance(s1, s2 string) int {
	costs := make([]int, len(s2)+1)
	for j := range costs {
		costs[j] = j
	}
	for i := 1; i <= len(s1); i++ {
		lastValue := i
		for j := 1; j <= len(s2); j++ {
			newValue := costs[j-1]
			if s1[i-1] != s2[j-1] {
				newValue = min3(newValue, lastValue, costs[j]) + 1
			}
			costs[j-1] = lastValue
			lastValue = newValue
		}
		costs[len(s2)] = lastValue
	}
	return costs[len(s2)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
