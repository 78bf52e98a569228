// internal/workers/application/validate-scoring-request/handler.go
package validatescoringrequest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"resume-workers/internal/common/errors"
	"resume-workers/internal/common/logger"
	"resume-workers/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/xeipuuv/gojsonschema"
)

const (
	TaskType = "validate-scoring-request"
)

// scoringRequestSchema is the contract a scoring request must meet
// before any downstream worker touches it.
const scoringRequestSchema = `{
	"type": "object",
	"required": ["applicationId", "jobId", "resumeText"],
	"properties": {
		"applicationId": {"type": "string", "minLength": 1},
		"jobId":         {"type": "string", "minLength": 1},
		"resumeText":    {"type": "string"},
		"jobDescription": {"type": "string"},
		"weights": {
			"type": "object",
			"additionalProperties": {
				"type": "number",
				"minimum": 0,
				"maximum": 1
			}
		}
	}
}`

type Handler struct {
	config *Config
	schema *gojsonschema.Schema
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) (*Handler, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(scoringRequestSchema))
	if err != nil {
		return nil, fmt.Errorf("compile scoring request schema: %w", err)
	}

	return &Handler{
		config: config,
		schema: schema,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	started := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, job.Variables)
	if err != nil {
		h.failJob(client, job, err)
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(started).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) Execute(ctx context.Context, variables string) (*Output, error) {
	return h.execute(ctx, variables)
}

// execute validates the request and reports the verdict as a job
// variable. An invalid request completes the job with isValid=false so
// the process model decides what happens next; only an unreadable
// payload fails the job.
func (h *Handler) execute(_ context.Context, variables string) (*Output, error) {
	result, err := h.schema.Validate(gojsonschema.NewStringLoader(variables))
	if err != nil {
		return nil, errors.NewSchemaValidationFailedError(fmt.Sprintf("validate request payload: %v", err))
	}

	validationErrors := make([]string, 0)
	for _, desc := range result.Errors() {
		validationErrors = append(validationErrors, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}

	if result.Valid() {
		var request struct {
			ResumeText string `json:"resumeText"`
		}
		if err := json.Unmarshal([]byte(variables), &request); err != nil {
			return nil, errors.NewSchemaValidationFailedError(fmt.Sprintf("decode request payload: %v", err))
		}
		if strings.TrimSpace(request.ResumeText) == "" {
			validationErrors = append(validationErrors, "resumeText: must not be blank")
		}
	}

	output := &Output{
		IsValid:          len(validationErrors) == 0,
		ValidationErrors: validationErrors,
	}

	if !output.IsValid {
		h.logger.Warn("scoring request rejected", map[string]interface{}{
			"errors": validationErrors,
		})
	}

	return output, nil
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
	return errors.NewSchemaValidationFailedError(err.Error())
}
