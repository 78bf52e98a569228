// internal/workers/application/rank-applications/handler_test.go
package rankapplications

import (
	"context"
	"testing"
	"time"

	"resume-workers/internal/common/logger"
	"resume-workers/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rankingJobDescription = `Frontend Developer

Requirements:
- 3+ years of experience
- React and JavaScript
- Bachelor's degree
`

const strongResume = `MARIA CHEN
maria.chen@example.com | (555) 111-2233

Professional and experienced frontend developer, skilled in React,
JavaScript, TypeScript and CSS. 5 years of development work, shipping a
design system project used across the company.

EXPERIENCE
Frontend Developer | Nimbus Labs | 2019-2024

EDUCATION
Bachelor of Arts in Design
`

const weakResume = `Student interested in web pages. Some HTML exposure.`

func newTestHandler(t *testing.T, maxItems int) *Handler {
	return NewHandler(&Config{
		MaxItems: maxItems,
		Timeout:  10 * time.Second,
	}, logger.NewTestLogger(t))
}

func TestHandler_Execute_RanksBestFirst(t *testing.T) {
	handler := newTestHandler(t, 50)

	output, err := handler.Execute(context.Background(), &Input{
		JobID:          "job-100",
		JobDescription: rankingJobDescription,
		Applications: []Application{
			{ApplicationID: "app-weak", ResumeText: weakResume},
			{ApplicationID: "app-strong", ResumeText: strongResume},
		},
	})

	require.NoError(t, err)
	require.Len(t, output.RankedApplications, 2)
	assert.Equal(t, 2, output.TotalScored)
	assert.False(t, output.Truncated)

	assert.Equal(t, "app-strong", output.RankedApplications[0].ApplicationID)
	assert.Equal(t, 1, output.RankedApplications[0].Position)
	assert.Equal(t, "app-weak", output.RankedApplications[1].ApplicationID)
	assert.Equal(t, 2, output.RankedApplications[1].Position)

	assert.GreaterOrEqual(t,
		output.RankedApplications[0].OverallScore,
		output.RankedApplications[1].OverallScore,
	)
	assert.NotEmpty(t, output.RankedApplications[0].Recommendation.Action)
}

func TestHandler_Execute_DeduplicatesApplications(t *testing.T) {
	handler := newTestHandler(t, 50)

	output, err := handler.Execute(context.Background(), &Input{
		JobID:          "job-101",
		JobDescription: rankingJobDescription,
		Applications: []Application{
			{ApplicationID: "app-1", ResumeText: strongResume},
			{ApplicationID: "app-1", ResumeText: weakResume},
			{ApplicationID: "app-2", ResumeText: weakResume},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, output.TotalScored)
	require.Len(t, output.RankedApplications, 2)

	// The first occurrence wins, so app-1 carries the strong resume's score.
	assert.Equal(t, "app-1", output.RankedApplications[0].ApplicationID)
}

func TestHandler_Execute_TruncatesToMaxItems(t *testing.T) {
	handler := newTestHandler(t, 1)

	output, err := handler.Execute(context.Background(), &Input{
		JobID:          "job-102",
		JobDescription: rankingJobDescription,
		Applications: []Application{
			{ApplicationID: "app-a", ResumeText: strongResume},
			{ApplicationID: "app-b", ResumeText: weakResume},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, output.TotalScored)
	require.Len(t, output.RankedApplications, 1)
	assert.True(t, output.Truncated)
	assert.Equal(t, "app-a", output.RankedApplications[0].ApplicationID)
}

func TestHandler_Execute_EmptyInput(t *testing.T) {
	handler := newTestHandler(t, 50)

	output, err := handler.Execute(context.Background(), &Input{
		JobID:          "job-103",
		JobDescription: rankingJobDescription,
	})

	require.NoError(t, err)
	assert.Empty(t, output.RankedApplications)
	assert.Zero(t, output.TotalScored)
}

func TestHandler_Execute_BlankResumeRanksLast(t *testing.T) {
	handler := newTestHandler(t, 50)

	output, err := handler.Execute(context.Background(), &Input{
		JobID:          "job-104",
		JobDescription: rankingJobDescription,
		Applications: []Application{
			{ApplicationID: "app-blank", ResumeText: "   "},
			{ApplicationID: "app-ok", ResumeText: strongResume},
		},
	})

	require.NoError(t, err)
	require.Len(t, output.RankedApplications, 2)
	last := output.RankedApplications[1]
	assert.Equal(t, "app-blank", last.ApplicationID)
	assert.Equal(t, scoring.RankingUnranked, last.Ranking)
	assert.Equal(t, "REVIEW", last.Recommendation.Action)
}
