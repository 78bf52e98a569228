// internal/workers/application/index-score-result/handler.go
package indexscoreresult

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"resume-workers/internal/common/errors"
	"resume-workers/internal/common/logger"
	"resume-workers/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"
)

const (
	TaskType = "index-score-result"
)

type Handler struct {
	config *Config
	es     *elasticsearch.Client
	logger logger.Logger
}

func NewHandler(config *Config, es *elasticsearch.Client, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		es:     es,
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
	indexedAt := time.Now().UTC().Format(time.RFC3339)

	doc := scoreDocument{
		ApplicationID: input.ApplicationID,
		JobID:         input.JobID,
		OverallScore:  input.OverallScore,
		Ranking:       input.Ranking,
		Scores:        input.Scores,
		Confidence:    input.Confidence,
		IndexedAt:     indexedAt,
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.NewIndexingFailedError(h.config.Index, fmt.Errorf("marshal document: %v", err))
	}

	// Deterministic ID so re-indexing the same pair overwrites in place.
	docID := input.ApplicationID + ":" + input.JobID

	res, err := h.es.Index(
		h.config.Index,
		bytes.NewReader(body),
		h.es.Index.WithDocumentID(docID),
		h.es.Index.WithContext(ctx),
	)
	if err != nil {
		return nil, errors.NewElasticsearchConnectionFailedError(err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, errors.NewIndexNotFoundError(h.config.Index)
	}
	if res.IsError() {
		return nil, errors.NewIndexingFailedError(h.config.Index, fmt.Errorf("returned %s", res.Status()))
	}

	h.logger.Info("score document indexed", map[string]interface{}{
		"index":         h.config.Index,
		"documentId":    docID,
		"applicationId": input.ApplicationID,
		"jobId":         input.JobID,
	})

	return &Output{
		IndexName:  h.config.Index,
		DocumentID: docID,
		IndexedAt:  indexedAt,
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
	return errors.NewIndexingFailedError(h.config.Index, err)
}
