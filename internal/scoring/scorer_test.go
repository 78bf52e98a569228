// internal/scoring/scorer_test.go
package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seniorFullStackJob = `Senior Full Stack Developer

We are looking for a senior engineer to own product development end to end.

Requirements:
- 5+ years of experience
- Expert in React, TypeScript and JavaScript
- Strong Node.js and Express background
- PostgreSQL and MongoDB in production
- AWS deployment experience
- Bachelor's degree in Computer Science or a related field
`

const strongCandidateResume = `JANE MORGAN
Senior Full Stack Developer
jane.morgan@example.com | (555) 123-4567 | Portland, OR

SUMMARY
Experienced and professional full stack developer with 6 years of
experience building and shipping products across the whole stack. Skilled
at taking a project from first sketch to production, with a strong focus
on clean code, fast feedback loops and mentoring the people around me.

SKILLS
JavaScript, TypeScript, React, Node.js, Express, PostgreSQL, MongoDB,
Redis, AWS, Docker, Kubernetes, GraphQL, Git, Agile

EXPERIENCE
Senior Full Stack Developer | Acme Cloud | 2019-2024
- Led development of a customer portal in React and TypeScript that grew
  to serve two million monthly users without a single major incident
- Designed REST and GraphQL APIs on Node.js and Express, backed by
  PostgreSQL for transactional data and MongoDB for the content catalog
- Introduced Redis caching in front of the busiest read paths, which cut
  median response time from eighty milliseconds down to nine
- Deployed every service to AWS with Docker builds and Kubernetes
  manifests, taking release time from an afternoon to twenty minutes
- Ran sprint planning and retrospectives for an Agile team of seven and
  mentored four junior engineers through their first production launches
- Owned the on-call rotation tooling and wrote the team runbook used for
  every incident across three product teams
- Drove adoption of trunk based development and a Git review culture that
  doubled merge frequency while keeping the revert rate flat

PROJECTS
- Built an open source feedback widget in React used by several hundred
  sites, handling localization and accessibility from the first release
- Wrote a PostgreSQL migration runner adopted by two sister teams

EDUCATION
Bachelor of Science in Computer Science, State University
`

const careerChangerResume = `Frontend hobbyist. 1 year building React and Vue
interfaces in my free time. Comfortable with CSS animations and HTML
layouts. Built a few jQuery widgets for friends.`

const dataPlatformJob = `Backend Data Platform Engineer

Requirements:
- 6+ years of experience
- Python and Django services at scale
- PostgreSQL tuning and Kafka pipelines
- Master's degree in a quantitative field
`

func TestScoreResumeStrongMatch(t *testing.T) {
	result := ScoreResume(strongCandidateResume, seniorFullStackJob, nil)
	require.NotNil(t, result)

	assert.Equal(t, RankingExcellent, result.Ranking)
	assert.GreaterOrEqual(t, result.OverallScore, 85.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)

	// date range 2019-2024 against a 5 year requirement
	assert.Equal(t, float64(100), result.Scores.Experience)
	assert.Equal(t, float64(100), result.Scores.Education)
	assert.Equal(t, float64(100), result.Scores.Completeness)
	assert.Equal(t, float64(100), result.Scores.Relevance)

	assert.Empty(t, result.Breakdown.MissingSkills)
	assert.Equal(t, "meets", result.Breakdown.EducationMatch)
	assert.True(t, result.Breakdown.HasFullContact)
	assert.Equal(t, 100, result.Confidence)

	assert.Equal(t, 5, result.Metadata.CandidateExperience)
	assert.Equal(t, 5, result.Metadata.RequiredExperience)
	assert.Equal(t, "bachelors", result.Metadata.CandidateEducation)
	assert.Equal(t, "bachelors", result.Metadata.RequiredEducation)
	assert.False(t, result.Metadata.ScoredAt.IsZero())
}

func TestScoreResumeOverqualifiedStillRanksHigh(t *testing.T) {
	job := `Junior Web Developer

We will teach you everything else.

Requirements:
- 1+ year of experience
- React basics and solid JavaScript
- HTML and CSS fundamentals
`
	resume := `SAMIR HADDAD
Staff Engineer
samir.haddad@example.com | (555) 987-6543 | Austin, TX

SUMMARY
Professional, experienced and skilled engineer with 12 years of shipping
web products. Happiest when a project moves from whiteboard to customers.

SKILLS
JavaScript, TypeScript, React, HTML, CSS, Node.js, PostgreSQL, AWS,
Docker, Kubernetes, Git

EXPERIENCE
Staff Engineer | Meridian Software | 2012-2024
- Led frontend architecture for a React application with forty
  contributing engineers across five teams and three time zones
- Rebuilt the design system in plain HTML and CSS primitives, cutting
  bundle size by a third while keeping every page accessible
- Ran the JavaScript guild and the internal development training that
  every new hire attends in their first month on the job
- Scaled the Node.js delivery pipeline to four hundred deploys a week
- Interviewed and mentored dozens of engineers over eight hiring cycles
- Carried the pager for the checkout path and kept it above four nines
- Wrote the AWS cost playbook that trimmed a third off the monthly bill
- Migrated source hosting and review flows to Git without losing a day

PROJECTS
- Maintains a popular open source React table component
- Wrote a PostgreSQL query planner visualizer used in conference talks

EDUCATION
M.Sc. Software Engineering, Technical University
`

	result := ScoreResume(resume, job, nil)
	require.NotNil(t, result)

	assert.Equal(t, RankingExcellent, result.Ranking)
	assert.GreaterOrEqual(t, result.OverallScore, 85.0)

	// twelve years against one required: capped, not penalized
	assert.Equal(t, float64(100), result.Scores.Experience)
	// masters against no stated requirement: above, scores 95
	assert.Equal(t, float64(95), result.Scores.Education)
	assert.Equal(t, "meets", result.Breakdown.EducationMatch)
}

func TestScoreResumeWrongDomain(t *testing.T) {
	result := ScoreResume(careerChangerResume, dataPlatformJob, nil)
	require.NotNil(t, result)

	assert.Less(t, result.Scores.Technical, 5.0)
	assert.Equal(t, float64(0), result.Scores.Education)
	assert.Equal(t, float64(0), result.Scores.Completeness)
	assert.Less(t, result.OverallScore, 30.0)
	assert.Equal(t, RankingBelowAverage, result.Ranking)

	assert.Equal(t, "below", result.Breakdown.EducationMatch)
	assert.False(t, result.Breakdown.HasFullContact)
	assert.Contains(t, result.Breakdown.MissingSkills, "python")
	assert.Contains(t, result.Breakdown.MissingSkills, "postgresql")
}

func TestScoreResumeMissingContactCapsCompleteness(t *testing.T) {
	resume := `Developer with 5 years of experience.
Skills: JavaScript, React, Node.js, PostgreSQL, AWS.
Bachelor of Science in Computer Science.`

	result := ScoreResume(resume, seniorFullStackJob, nil)
	require.NotNil(t, result)

	assert.Equal(t, float64(0), result.Scores.Completeness)
	assert.False(t, result.Breakdown.HasFullContact)

	// same resume with contact details scores strictly higher
	withContact := "dev@example.com (555) 222-3344\n" + resume
	better := ScoreResume(withContact, seniorFullStackJob, nil)
	assert.Greater(t, better.Scores.Completeness, result.Scores.Completeness)
	assert.Greater(t, better.Confidence, result.Confidence)
}

func TestScoreResumeEmptyJobDescription(t *testing.T) {
	result := ScoreResume(strongCandidateResume, "", nil)
	require.NotNil(t, result)

	// no required skills: full fuzzy score, zero keyword overlap
	assert.Equal(t, float64(60), result.Scores.Technical)
	// no required experience
	assert.Equal(t, float64(100), result.Scores.Experience)
	// bachelors default matches the candidate exactly
	assert.Equal(t, float64(100), result.Scores.Education)
	assert.Equal(t, float64(86), result.OverallScore)
	assert.Equal(t, RankingExcellent, result.Ranking)
	assert.Empty(t, result.Breakdown.MissingSkills)
}

func TestScoreResumeInvalidInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		result := ScoreResume(input, seniorFullStackJob, nil)
		require.NotNil(t, result)
		assert.Equal(t, RankingUnranked, result.Ranking)
		assert.Zero(t, result.OverallScore)
		assert.Zero(t, result.Confidence)
		assert.Equal(t, SubScores{}, result.Scores)
		assert.Equal(t, "invalid resume text", result.Breakdown.Message)

		// The job requirements are known even when the resume is not.
		assert.Equal(t, 5, result.Metadata.RequiredExperience)
		assert.Equal(t, "bachelors", result.Metadata.RequiredEducation)
		assert.Equal(t, "unknown", result.Metadata.CandidateEducation)
	}
}

func TestScoreResumeWeightOverrides(t *testing.T) {
	overrides := map[string]float64{
		WeightTechnical:    0,
		WeightExperience:   0,
		WeightEducation:    0,
		WeightCompleteness: 0,
		WeightRelevance:    1,
	}
	result := ScoreResume(strongCandidateResume, seniorFullStackJob, overrides)
	assert.Equal(t, result.Scores.Relevance, result.OverallScore)

	partial := ScoreResume(strongCandidateResume, seniorFullStackJob, map[string]float64{
		WeightRelevance: 0,
	})
	full := ScoreResume(strongCandidateResume, seniorFullStackJob, nil)
	assert.Less(t, partial.OverallScore, full.OverallScore)
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range DefaultWeights() {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}
