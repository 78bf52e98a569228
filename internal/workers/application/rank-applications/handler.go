// internal/workers/application/rank-applications/handler.go
package rankapplications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"resume-workers/internal/common/errors"
	"resume-workers/internal/common/logger"
	"resume-workers/internal/common/metrics"
	"resume-workers/internal/scoring"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "rank-applications"
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
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

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	// Duplicate application IDs keep their first occurrence only.
	seen := make(map[string]bool, len(input.Applications))
	resumes := make([]scoring.BatchResume, 0, len(input.Applications))
	for _, app := range input.Applications {
		if app.ApplicationID != "" && seen[app.ApplicationID] {
			h.logger.Warn("skipping duplicate application", map[string]interface{}{
				"applicationId": app.ApplicationID,
				"jobId":         input.JobID,
			})
			continue
		}
		seen[app.ApplicationID] = true
		resumes = append(resumes, scoring.BatchResume{
			ID:   app.ApplicationID,
			Text: app.ResumeText,
		})
	}

	results := scoring.ScoreBatch(resumes, input.JobDescription, input.Weights)

	truncated := false
	if h.config.MaxItems > 0 && len(results) > h.config.MaxItems {
		results = results[:h.config.MaxItems]
		truncated = true
	}

	ranked := make([]RankedApplication, len(results))
	for i, res := range results {
		ranked[i] = RankedApplication{
			ApplicationID:  res.ID,
			Position:       i + 1,
			OverallScore:   res.Score.OverallScore,
			Ranking:        res.Score.Ranking,
			Confidence:     res.Score.Confidence,
			Recommendation: scoring.RecommendationFor(res.Score.Ranking),
		}
	}

	h.logger.Info("applications ranked", map[string]interface{}{
		"jobId":       input.JobID,
		"received":    len(input.Applications),
		"totalScored": len(resumes),
		"returned":    len(ranked),
		"truncated":   truncated,
	})

	return &Output{
		JobID:              input.JobID,
		RankedApplications: ranked,
		TotalScored:        len(resumes),
		Truncated:          truncated,
	}, nil
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
	return errors.NewRankingFailedError(err.Error())
}
