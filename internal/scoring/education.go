// internal/scoring/education.go
package scoring

import (
	"encoding/json"
	"strings"
)

// EducationLevel is an ordered academic attainment level. Higher values
// outrank lower ones.
type EducationLevel int

const (
	EducationUnknown EducationLevel = iota
	EducationHighSchool
	EducationDiploma
	EducationBachelors
	EducationMasters
	EducationPhD
)

func (l EducationLevel) String() string {
	switch l {
	case EducationHighSchool:
		return "highschool"
	case EducationDiploma:
		return "diploma"
	case EducationBachelors:
		return "bachelors"
	case EducationMasters:
		return "masters"
	case EducationPhD:
		return "phd"
	default:
		return "unknown"
	}
}

// ParseEducationLevel maps a level name back to its ordinal. Unrecognized
// names map to EducationUnknown.
func ParseEducationLevel(s string) EducationLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "highschool":
		return EducationHighSchool
	case "diploma":
		return EducationDiploma
	case "bachelors":
		return EducationBachelors
	case "masters":
		return EducationMasters
	case "phd":
		return EducationPhD
	default:
		return EducationUnknown
	}
}

func (l EducationLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *EducationLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = ParseEducationLevel(s)
	return nil
}

// Keyword groups checked highest level first. Matching is plain substring
// containment against the lowercased text, so short keywords like "ba" or
// "hs" can hit inside longer words; the highest level found wins either way.
var educationKeywords = []struct {
	level    EducationLevel
	keywords []string
}{
	{EducationPhD, []string{"phd", "ph.d", "doctorate", "doctoral", "doctor of philosophy"}},
	{EducationMasters, []string{"masters", "master's", "msc", "m.sc", "mba", "m.a", "mag"}},
	{EducationBachelors, []string{"bachelors", "bachelor's", "bsc", "b.sc", "ba", "b.a", "beng", "b.eng"}},
	{EducationDiploma, []string{"diploma", "associate", "ndip", "higher national"}},
	{EducationHighSchool, []string{"high school", "secondary", "hs", "a-level", "gcse"}},
}

// ExtractEducation returns the highest education level detected in the text
// plus the names of every level whose keywords matched.
func ExtractEducation(text string) (EducationLevel, []string) {
	if text == "" {
		return EducationUnknown, nil
	}

	lower := strings.ToLower(text)
	highest := EducationUnknown
	var found []string

	for _, group := range educationKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				found = append(found, group.level.String())
				if group.level > highest {
					highest = group.level
				}
				break
			}
		}
	}

	return highest, found
}
