// internal/scoring/jobdesc.go
package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

var requiredExpPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s+)?(?:experience|exp)`)

// ParseJobDescription extracts the requirements a job post states: its
// token stream, the dictionary skills it mentions, the minimum years of
// experience and the minimum education level. A blank description yields
// empty requirements with a bachelors education default, the conventional
// baseline for postings that say nothing.
func ParseJobDescription(jobDescription string) ParsedJobRequirements {
	if strings.TrimSpace(jobDescription) == "" {
		return ParsedJobRequirements{
			Tokens:            nil,
			Skills:            nil,
			RequiredEducation: EducationBachelors,
		}
	}

	lower := strings.ToLower(jobDescription)

	requiredExperience := 0
	if m := requiredExpPattern.FindStringSubmatch(jobDescription); m != nil {
		requiredExperience, _ = strconv.Atoi(m[1])
	}

	requiredEducation := EducationHighSchool
	switch {
	case strings.Contains(lower, "phd") || strings.Contains(lower, "doctorate"):
		requiredEducation = EducationPhD
	case strings.Contains(lower, "master") || strings.Contains(lower, "mba"):
		requiredEducation = EducationMasters
	case strings.Contains(lower, "bachelor") || strings.Contains(lower, "degree"):
		requiredEducation = EducationBachelors
	}

	return ParsedJobRequirements{
		Tokens:             Tokenize(jobDescription),
		Skills:             ExtractSkills(jobDescription),
		RequiredExperience: requiredExperience,
		RequiredEducation:  requiredEducation,
	}
}
