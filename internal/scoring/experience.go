// internal/scoring/experience.go
package scoring

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

var (
	explicitYears = regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)`)
	dateRange     = regexp.MustCompile(`(?i)(\d{4})\s*-\s*(?:(\d{4})|present|today|current)`)
)

// ExtractExperienceYears estimates total years of experience from free text.
// Explicit "N years" phrases are scanned first and the largest value kept.
// Date ranges like "2019-2024" or "2020-present" are then scanned; when any
// range yields a plausible span (0 < span < 60) the average of the spans
// replaces the explicit figure, since ranges reflect actual employment
// history rather than a self-reported total.
func ExtractExperienceYears(text string) int {
	if text == "" {
		return 0
	}

	maxExplicit := 0
	for _, m := range explicitYears.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > maxExplicit {
			maxExplicit = n
		}
	}

	currentYear := time.Now().Year()
	var spans []int
	for _, m := range dateRange.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		if m[2] != "" {
			end, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}
		if span := end - start; span > 0 && span < 60 {
			spans = append(spans, span)
		}
	}

	if len(spans) > 0 {
		sum := 0
		for _, s := range spans {
			sum += s
		}
		return int(math.Round(float64(sum) / float64(len(spans))))
	}
	return maxExplicit
}
