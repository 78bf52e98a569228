// internal/workers/application/store-score-record/handler.go
package storescorerecord

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"resume-workers/internal/common/errors"
	"resume-workers/internal/common/logger"
	"resume-workers/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "store-score-record"
)

type Handler struct {
	config *Config
	db     *sql.DB
	logger logger.Logger
}

func NewHandler(config *Config, db *sql.DB, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		db:     db,
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
	// One score record per application/job pair.
	var exists bool
	err := h.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM application_scores
			WHERE application_id = $1 AND job_id = $2
		)`, input.ApplicationID, input.JobID).Scan(&exists)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("duplicate check", err)
	}
	if exists {
		return nil, errors.NewDuplicateScoreRecordError(input.ApplicationID)
	}

	recordID := uuid.New().String()
	storedAt := time.Now().UTC().Format(time.RFC3339)

	scoresJSON, err := json.Marshal(input.Scores)
	if err != nil {
		return nil, errors.NewDatabaseInsertFailedError(fmt.Errorf("marshal sub-scores: %v", err))
	}

	_, err = h.db.ExecContext(ctx, `
		INSERT INTO application_scores (
			id, application_id, job_id, overall_score,
			ranking, sub_scores, confidence, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		recordID,
		input.ApplicationID,
		input.JobID,
		input.OverallScore,
		input.Ranking,
		scoresJSON,
		input.Confidence,
		storedAt,
	)
	if err != nil {
		return nil, errors.NewDatabaseInsertFailedError(err)
	}

	h.logger.Info("score record stored", map[string]interface{}{
		"scoreRecordId": recordID,
		"applicationId": input.ApplicationID,
		"jobId":         input.JobID,
		"overallScore":  input.OverallScore,
		"ranking":       input.Ranking,
	})

	return &Output{
		ScoreRecordID: recordID,
		StoredAt:      storedAt,
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
	return errors.NewDatabaseInsertFailedError(err)
}
