// internal/workers/application/notify-recruiter/handler.go
package notifyrecruiter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"resume-workers/internal/common/errors"
	"resume-workers/internal/common/logger"
	"resume-workers/internal/common/metrics"
	"resume-workers/internal/scoring"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "notify-recruiter"
)

// Interfaces over the AWS clients for mocking.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// rankingOrder decides whether a candidate is notable enough for SMS.
var rankingOrder = map[string]int{
	scoring.RankingExcellent:    6,
	scoring.RankingStrong:       5,
	scoring.RankingGood:         4,
	scoring.RankingFair:         3,
	scoring.RankingPoor:         2,
	scoring.RankingBelowAverage: 1,
	scoring.RankingUnranked:     0,
}

type Handler struct {
	config    *Config
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
}

func NewHandler(config *Config, log logger.Logger) (*Handler, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(config.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &Handler{
		config:    config,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
		sesClient: ses.NewFromConfig(awsCfg),
		snsClient: sns.NewFromConfig(awsCfg),
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	started := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, errors.NewSchemaValidationFailedError(fmt.Sprintf("parse input: %v", err)))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, err)
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(started).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	sentAt := time.Now().UTC().Format(time.RFC3339)
	notificationID := uuid.New().String()

	subject := fmt.Sprintf("Candidate scored %s for job %s", input.Ranking, input.JobID)
	body := fmt.Sprintf(
		"Application %s for job %s was scored %.2f (%s). Recommended action: %s.",
		input.ApplicationID, input.JobID, input.OverallScore, input.Ranking,
		scoring.RecommendationFor(input.Ranking).Action,
	)

	emailSent := false
	smsSent := false

	if h.config.EmailEnabled && input.RecruiterEmail != "" {
		if err := h.sendEmail(ctx, input.RecruiterEmail, subject, body); err != nil {
			return nil, errors.NewNotificationSendFailedError("email", err)
		}
		emailSent = true
		metrics.NotificationsSent.WithLabelValues("email").Inc()
	}

	if h.config.SMSEnabled && input.RecruiterPhone != "" && h.meetsSMSThreshold(input.Ranking) {
		if err := h.sendSMS(ctx, input.RecruiterPhone, body); err != nil {
			return nil, errors.NewNotificationSendFailedError("sms", err)
		}
		smsSent = true
		metrics.NotificationsSent.WithLabelValues("sms").Inc()
	}

	h.logger.Info("recruiter notified", map[string]interface{}{
		"notificationId": notificationID,
		"applicationId":  input.ApplicationID,
		"jobId":          input.JobID,
		"ranking":        input.Ranking,
		"emailSent":      emailSent,
		"smsSent":        smsSent,
	})

	return &Output{
		NotificationID: notificationID,
		EmailSent:      emailSent,
		SMSSent:        smsSent,
		SentAt:         sentAt,
	}, nil
}

func (h *Handler) meetsSMSThreshold(ranking string) bool {
	threshold, ok := rankingOrder[h.config.SMSRankingThreshold]
	if !ok {
		return false
	}
	return rankingOrder[ranking] >= threshold
}

func (h *Handler) sendEmail(ctx context.Context, to, subject, body string) error {
	_, err := h.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
				Html: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(h.config.FromEmail),
	})
	return err
}

func (h *Handler) sendSMS(ctx context.Context, to, message string) error {
	_, err := h.snsClient.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(message),
	})
	return err
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	} else {
		h.logger.Info("job completed successfully", map[string]interface{}{
			"jobKey": job.Key,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, err error) {
	bpmnErr := errors.ConvertToBPMNError(h.toStandardError(err))
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, bpmnErr.Code).Inc()

	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    bpmnErr.Code,
		"errorMessage": bpmnErr.Message,
		"retryable":    bpmnErr.Retryable,
		"retries":      bpmnErr.Retries,
	})

	failCmd := client.NewFailJobCommand().
		JobKey(job.Key).
		Retries(int32(bpmnErr.Retries)).
		ErrorMessage(fmt.Sprintf("[%s] %s", bpmnErr.Code, bpmnErr.Message))

	var sendErr error
	if varCmd, varErr := failCmd.VariablesFromMap(bpmnErr.ToErrorVariables()); varErr != nil {
		h.logger.Error("failed to set error variables, sending without them", map[string]interface{}{
			"error": varErr,
		})
		_, sendErr = failCmd.Send(context.Background())
	} else {
		_, sendErr = varCmd.Send(context.Background())
	}
	if sendErr != nil {
		h.logger.Error("failed to fail job", map[string]interface{}{
			"error": sendErr,
		})
	}
}

func (h *Handler) toStandardError(err error) *errors.StandardError {
	if stdErr, ok := err.(*errors.StandardError); ok {
		return stdErr
	}
	return errors.NewNotificationSendFailedError("unknown", err)
}
