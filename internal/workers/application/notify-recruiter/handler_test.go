// internal/workers/application/notify-recruiter/handler_test.go
package notifyrecruiter

import (
	"context"
	"errors"
	"testing"
	"time"

	commonerrors "resume-workers/internal/common/errors"
	"resume-workers/internal/common/logger"
	"resume-workers/internal/scoring"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSES struct {
	calls []*ses.SendEmailInput
	err   error
}

func (m *mockSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	m.calls = append(m.calls, params)
	if m.err != nil {
		return nil, m.err
	}
	return &ses.SendEmailOutput{}, nil
}

type mockSNS struct {
	calls []*sns.PublishInput
	err   error
}

func (m *mockSNS) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	m.calls = append(m.calls, params)
	if m.err != nil {
		return nil, m.err
	}
	return &sns.PublishOutput{}, nil
}

func createTestHandler(t *testing.T, config *Config, sesMock SESService, snsMock SNSService) *Handler {
	t.Helper()
	return &Handler{
		config:    config,
		logger:    logger.NewTestLogger(t),
		sesClient: sesMock,
		snsClient: snsMock,
	}
}

func createTestConfig() *Config {
	return &Config{
		FromEmail:           "no-reply@example.com",
		EmailEnabled:        true,
		SMSEnabled:          true,
		SMSRankingThreshold: scoring.RankingStrong,
		Timeout:             15 * time.Second,
	}
}

func createTestInput() *Input {
	return &Input{
		RecruiterEmail: "recruiter@example.com",
		RecruiterPhone: "+15551234567",
		ApplicationID:  "app-001",
		JobID:          "job-001",
		Ranking:        scoring.RankingExcellent,
		OverallScore:   86.29,
	}
}

func TestHandler_Execute_SendsEmailAndSMS(t *testing.T) {
	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	handler := createTestHandler(t, createTestConfig(), sesMock, snsMock)

	output, err := handler.Execute(context.Background(), createTestInput())

	require.NoError(t, err)
	assert.True(t, output.EmailSent)
	assert.True(t, output.SMSSent)
	assert.NotEmpty(t, output.NotificationID)

	_, err = time.Parse(time.RFC3339, output.SentAt)
	assert.NoError(t, err)

	require.Len(t, sesMock.calls, 1)
	assert.Equal(t, "recruiter@example.com", sesMock.calls[0].Destination.ToAddresses[0])
	assert.Contains(t, *sesMock.calls[0].Message.Subject.Data, "EXCELLENT")
	assert.Contains(t, *sesMock.calls[0].Message.Body.Text.Data, "INTERVIEW")

	require.Len(t, snsMock.calls, 1)
	assert.Equal(t, "+15551234567", *snsMock.calls[0].PhoneNumber)
}

func TestHandler_Execute_SMSSkippedBelowThreshold(t *testing.T) {
	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	handler := createTestHandler(t, createTestConfig(), sesMock, snsMock)

	input := createTestInput()
	input.Ranking = scoring.RankingFair

	output, err := handler.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, output.EmailSent)
	assert.False(t, output.SMSSent)
	assert.Len(t, snsMock.calls, 0)
}

func TestHandler_Execute_NoEmailAddress(t *testing.T) {
	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	handler := createTestHandler(t, createTestConfig(), sesMock, snsMock)

	input := createTestInput()
	input.RecruiterEmail = ""

	output, err := handler.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.False(t, output.EmailSent)
	assert.True(t, output.SMSSent)
	assert.Len(t, sesMock.calls, 0)
}

func TestHandler_Execute_EmailDisabled(t *testing.T) {
	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	config := createTestConfig()
	config.EmailEnabled = false
	config.SMSEnabled = false
	handler := createTestHandler(t, config, sesMock, snsMock)

	output, err := handler.Execute(context.Background(), createTestInput())

	require.NoError(t, err)
	assert.False(t, output.EmailSent)
	assert.False(t, output.SMSSent)
	assert.Len(t, sesMock.calls, 0)
	assert.Len(t, snsMock.calls, 0)
}

func TestHandler_Execute_EmailSendFailure(t *testing.T) {
	sesMock := &mockSES{err: errors.New("throttled")}
	snsMock := &mockSNS{}
	handler := createTestHandler(t, createTestConfig(), sesMock, snsMock)

	output, err := handler.Execute(context.Background(), createTestInput())

	assert.Error(t, err)
	var stdErr *commonerrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, commonerrors.ErrCodeNotificationSendFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
	assert.Contains(t, stdErr.Details, "email")
	assert.Nil(t, output)
	// The failed email short-circuits before any SMS attempt.
	assert.Len(t, snsMock.calls, 0)
}

func TestHandler_Execute_SMSSendFailure(t *testing.T) {
	sesMock := &mockSES{}
	snsMock := &mockSNS{err: errors.New("invalid number")}
	handler := createTestHandler(t, createTestConfig(), sesMock, snsMock)

	output, err := handler.Execute(context.Background(), createTestInput())

	assert.Error(t, err)
	var stdErr *commonerrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, commonerrors.ErrCodeNotificationSendFailed, stdErr.Code)
	assert.Contains(t, stdErr.Details, "sms")
	assert.Nil(t, output)
}

func TestHandler_Execute_UnrankedNeverTriggersSMS(t *testing.T) {
	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	handler := createTestHandler(t, createTestConfig(), sesMock, snsMock)

	input := createTestInput()
	input.Ranking = scoring.RankingUnranked
	input.OverallScore = 0

	output, err := handler.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, output.EmailSent)
	assert.False(t, output.SMSSent)
	require.Len(t, sesMock.calls, 1)
	assert.Contains(t, *sesMock.calls[0].Message.Body.Text.Data, "REVIEW")
}
