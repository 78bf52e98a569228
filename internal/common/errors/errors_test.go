// internal/common/errors/errors_test.go
package errors

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsSetRetryability(t *testing.T) {
	tests := []struct {
		name      string
		err       *StandardError
		code      ErrorCode
		retryable bool
	}{
		{"schema validation", NewSchemaValidationFailedError("missing jobId"), ErrCodeSchemaValidationFailed, false},
		{"invalid resume text", NewInvalidResumeTextError("blank"), ErrCodeInvalidResumeText, false},
		{"job parse", NewJobParseFailedError("no description"), ErrCodeJobParseFailed, false},
		{"scoring", NewScoringFailedError(errors.New("boom")), ErrCodeScoringFailed, false},
		{"ranking", NewRankingFailedError("batch too large"), ErrCodeRankingFailed, false},
		{"db connection", NewDatabaseConnectionFailedError(errors.New("refused")), ErrCodeDatabaseConnectionFailed, true},
		{"query execution", NewQueryExecutionFailedError("insert", errors.New("syntax")), ErrCodeQueryExecutionFailed, true},
		{"query timeout", NewQueryTimeoutError("select"), ErrCodeQueryTimeout, true},
		{"db insert", NewDatabaseInsertFailedError(errors.New("constraint")), ErrCodeDatabaseInsertFailed, true},
		{"duplicate record", NewDuplicateScoreRecordError("app-001"), ErrCodeDuplicateScoreRecord, false},
		{"cache", NewCacheUnavailableError(errors.New("down")), ErrCodeCacheUnavailable, true},
		{"es connection", NewElasticsearchConnectionFailedError(errors.New("refused")), ErrCodeElasticsearchConnectionFailed, true},
		{"indexing", NewIndexingFailedError("application-scores", errors.New("503")), ErrCodeIndexingFailed, true},
		{"index not found", NewIndexNotFoundError("application-scores"), ErrCodeIndexNotFound, false},
		{"search timeout", NewSearchTimeoutError("index"), ErrCodeSearchTimeout, true},
		{"notification", NewNotificationSendFailedError("email", errors.New("throttled")), ErrCodeNotificationSendFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.retryable, tt.err.Retryable)
			assert.NotEmpty(t, tt.err.Message)
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

func TestGetRetryCount(t *testing.T) {
	assert.Equal(t, 3, GetRetryCount(ErrCodeDatabaseConnectionFailed))
	assert.Equal(t, 3, GetRetryCount(ErrCodeDatabaseInsertFailed))
	assert.Equal(t, 3, GetRetryCount(ErrCodeCacheUnavailable))
	assert.Equal(t, 3, GetRetryCount(ErrCodeIndexingFailed))
	assert.Equal(t, 3, GetRetryCount(ErrCodeNotificationSendFailed))
	assert.Equal(t, 2, GetRetryCount(ErrCodeQueryTimeout))
	assert.Equal(t, 2, GetRetryCount(ErrCodeSearchTimeout))
	assert.Equal(t, 0, GetRetryCount(ErrCodeScoringFailed))
	assert.Equal(t, 0, GetRetryCount(ErrCodeDuplicateScoreRecord))
	assert.Equal(t, 0, GetRetryCount(ErrCodeSchemaValidationFailed))
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeDatabaseInsertFailed))
	assert.True(t, IsRetryableErrorCode(ErrCodeSearchTimeout))
	assert.False(t, IsRetryableErrorCode(ErrCodeInvalidResumeText))
	assert.False(t, IsRetryableErrorCode(ErrCodeDuplicateScoreRecord))
}

func TestConvertToBPMNError(t *testing.T) {
	stdErr := NewIndexingFailedError("application-scores", errors.New("shard failure"))

	bpmnErr := ConvertToBPMNError(stdErr)

	assert.Equal(t, "INDEXING_FAILED", bpmnErr.Code)
	assert.Equal(t, 3, bpmnErr.Retries)
	assert.True(t, bpmnErr.Retryable)
	assert.Equal(t, string(ErrCodeIndexingFailed), bpmnErr.ErrorVariables["originalErrorCode"])

	ts, ok := bpmnErr.ErrorVariables["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestConvertToBPMNError_NonRetryableHasZeroRetries(t *testing.T) {
	bpmnErr := ConvertToBPMNError(NewDuplicateScoreRecordError("app-001"))

	assert.Equal(t, "DUPLICATE_SCORE_RECORD", bpmnErr.Code)
	assert.Equal(t, 0, bpmnErr.Retries)
	assert.False(t, bpmnErr.Retryable)
}

func TestBPMNErrorToErrorVariables(t *testing.T) {
	bpmnErr := &BPMNError{
		Code:      "SCORING_FAILED",
		Message:   "Resume scoring failed",
		Details:   "weights sum to zero",
		Retryable: false,
		ErrorVariables: map[string]interface{}{
			"applicationId": "app-001",
		},
	}

	vars := bpmnErr.ToErrorVariables()

	assert.Equal(t, "SCORING_FAILED", vars["errorCode"])
	assert.Equal(t, "Resume scoring failed", vars["errorMessage"])
	assert.Equal(t, "weights sum to zero", vars["errorDetails"])
	assert.Equal(t, false, vars["retryable"])
	assert.Equal(t, "app-001", vars["applicationId"])
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "SCORING", GetErrorCategory(ErrCodeScoringFailed))
	assert.Equal(t, "SCORING", GetErrorCategory(ErrCodeInvalidResumeText))
	assert.Equal(t, "SCORING", GetErrorCategory(ErrCodeJobParseFailed))
	assert.Equal(t, "DATABASE", GetErrorCategory(ErrCodeDatabaseInsertFailed))
	assert.Equal(t, "DATABASE", GetErrorCategory(ErrCodeDuplicateScoreRecord))
	assert.Equal(t, "CACHE", GetErrorCategory(ErrCodeCacheUnavailable))
	assert.Equal(t, "SEARCH", GetErrorCategory(ErrCodeIndexingFailed))
	assert.Equal(t, "NOTIFICATION", GetErrorCategory(ErrCodeNotificationSendFailed))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeSchemaValidationFailed))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrorCode("SOMETHING_ELSE")))
}
