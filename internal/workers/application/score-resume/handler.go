// internal/workers/application/score-resume/handler.go
package scoreresume

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"resume-workers/internal/common/errors"
	"resume-workers/internal/common/logger"
	"resume-workers/internal/common/metrics"
	"resume-workers/internal/scoring"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "score-resume"

	jobRequirementsKeyPrefix = "job:requirements:"
)

type Handler struct {
	config *Config
	redis  *redis.Client
	logger logger.Logger
}

func NewHandler(config *Config, redis *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		redis:  redis,
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

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	jobReqs := h.jobRequirements(ctx, input.JobID, input.JobDescription)

	weights := map[string]float64{}
	for k, v := range h.config.Weights {
		weights[k] = v
	}
	for k, v := range input.Weights {
		weights[k] = v
	}

	result := scoring.ScoreResumeWithRequirements(input.ResumeText, jobReqs, weights)
	metrics.ResumesScored.WithLabelValues(result.Ranking).Inc()

	h.logger.Info("resume scored", map[string]interface{}{
		"applicationId": input.ApplicationID,
		"jobId":         input.JobID,
		"overallScore":  result.OverallScore,
		"ranking":       result.Ranking,
		"confidence":    result.Confidence,
	})

	return &Output{
		ApplicationID:  input.ApplicationID,
		JobID:          input.JobID,
		OverallScore:   result.OverallScore,
		Ranking:        result.Ranking,
		Scores:         result.Scores,
		Breakdown:      result.Breakdown,
		Confidence:     result.Confidence,
		Metadata:       result.Metadata,
		Recommendation: scoring.RecommendationFor(result.Ranking),
	}, nil
}

// jobRequirements serves parsed requirements from Redis when a job ID is
// present, falling back to a fresh parse. Cache trouble is never fatal: the
// parse is cheap and scoring must not depend on Redis being up.
func (h *Handler) jobRequirements(ctx context.Context, jobID, jobDescription string) scoring.ParsedJobRequirements {
	if h.redis == nil || strings.TrimSpace(jobID) == "" {
		return scoring.ParseJobDescription(jobDescription)
	}

	cacheKey := jobRequirementsKeyPrefix + jobID
	if raw, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
		var cached scoring.ParsedJobRequirements
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			metrics.JobRequirementsCacheHits.Inc()
			return cached
		}
		h.logger.Warn("discarding unreadable cached requirements", map[string]interface{}{
			"jobId": jobID,
		})
	}

	metrics.JobRequirementsCacheMisses.Inc()
	parsed := scoring.ParseJobDescription(jobDescription)

	if encoded, err := json.Marshal(parsed); err == nil {
		if err := h.redis.Set(ctx, cacheKey, encoded, h.config.CacheTTL).Err(); err != nil {
			h.logger.Warn("failed to cache job requirements", map[string]interface{}{
				"jobId": jobID,
				"error": err,
			})
		}
	}

	return parsed
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
	return errors.NewScoringFailedError(err)
}
