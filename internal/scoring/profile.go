// internal/scoring/profile.go
package scoring

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
	phonePattern = regexp.MustCompile(`[+]?[(]?[0-9]{3}[).]?[ ]?[0-9]{3}[-]?[0-9]{4,6}`)
)

// HasEmail reports whether the text contains something that looks like an
// email address.
func HasEmail(text string) bool {
	return emailPattern.MatchString(text)
}

// HasPhone reports whether the text contains something that looks like a
// phone number.
func HasPhone(text string) bool {
	return phonePattern.MatchString(text)
}

// ExtractProfile runs every extractor over the resume text and returns the
// structured summary used by the scorer.
func ExtractProfile(text string) ResumeProfile {
	level, _ := ExtractEducation(text)
	return ResumeProfile{
		Skills:          ExtractSkills(text),
		ExperienceYears: ExtractExperienceYears(text),
		Education:       level,
		WordCount:       len(strings.Fields(text)),
		HasEmail:        HasEmail(text),
		HasPhone:        HasPhone(text),
	}
}
