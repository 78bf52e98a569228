// internal/workers/application/index-score-result/handler_test.go
package indexscoreresult

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	commonerrors "resume-workers/internal/common/errors"
	"resume-workers/internal/common/logger"
	"resume-workers/internal/scoring"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTransport lets tests intercept Elasticsearch requests without a
// running cluster. The X-Elastic-Product header satisfies the client's
// product check.
type mockTransport struct {
	statusCode   int
	responseBody string
	err          error

	lastRequest *http.Request
	lastBody    string
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	m.lastRequest = req
	if req.Body != nil {
		body, _ := io.ReadAll(req.Body)
		m.lastBody = string(body)
	}
	if m.err != nil {
		return nil, m.err
	}
	return &http.Response{
		StatusCode: m.statusCode,
		Header: http.Header{
			"X-Elastic-Product": []string{"Elasticsearch"},
			"Content-Type":      []string{"application/json"},
		},
		Body: io.NopCloser(strings.NewReader(m.responseBody)),
	}, nil
}

func newTestClient(t *testing.T, transport *mockTransport) *elasticsearch.Client {
	t.Helper()
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{"http://localhost:9200"},
		Transport: transport,
	})
	require.NoError(t, err)
	return client
}

func createTestConfig() *Config {
	return &Config{
		Index:   "application-scores",
		Timeout: 10 * time.Second,
	}
}

func createTestInput() *Input {
	return &Input{
		ApplicationID: "app-001",
		JobID:         "job-001",
		OverallScore:  86.29,
		Ranking:       scoring.RankingExcellent,
		Scores: scoring.SubScores{
			Technical:    82.5,
			Experience:   100,
			Education:    100,
			Completeness: 100,
			Relevance:    100,
		},
		Confidence: 100,
	}
}

func TestHandler_Execute_Success(t *testing.T) {
	transport := &mockTransport{
		statusCode:   http.StatusCreated,
		responseBody: `{"_index":"application-scores","_id":"app-001:job-001","result":"created"}`,
	}
	handler := NewHandler(createTestConfig(), newTestClient(t, transport), logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), createTestInput())

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, "application-scores", output.IndexName)
	assert.Equal(t, "app-001:job-001", output.DocumentID)

	_, err = time.Parse(time.RFC3339, output.IndexedAt)
	assert.NoError(t, err)

	require.NotNil(t, transport.lastRequest)
	assert.Contains(t, transport.lastRequest.URL.Path, "/application-scores/_doc/app-001:job-001")
	assert.Contains(t, transport.lastBody, `"ranking":"EXCELLENT"`)
	assert.Contains(t, transport.lastBody, `"applicationId":"app-001"`)
	assert.Contains(t, transport.lastBody, `"indexedAt"`)
}

func TestHandler_Execute_ErrorResponse(t *testing.T) {
	transport := &mockTransport{
		statusCode:   http.StatusInternalServerError,
		responseBody: `{"error":{"type":"cluster_block_exception"}}`,
	}
	handler := NewHandler(createTestConfig(), newTestClient(t, transport), logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), createTestInput())

	assert.Error(t, err)
	var stdErr *commonerrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, commonerrors.ErrCodeIndexingFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
	assert.Nil(t, output)
}

func TestHandler_Execute_IndexMissing(t *testing.T) {
	transport := &mockTransport{
		statusCode:   http.StatusNotFound,
		responseBody: `{"error":{"type":"index_not_found_exception"}}`,
	}
	handler := NewHandler(createTestConfig(), newTestClient(t, transport), logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), createTestInput())

	assert.Error(t, err)
	var stdErr *commonerrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, commonerrors.ErrCodeIndexNotFound, stdErr.Code)
	assert.False(t, stdErr.Retryable)
	assert.Nil(t, output)
}

func TestHandler_Execute_TransportError(t *testing.T) {
	transport := &mockTransport{
		err: errors.New("connection refused"),
	}
	handler := NewHandler(createTestConfig(), newTestClient(t, transport), logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), createTestInput())

	assert.Error(t, err)
	var stdErr *commonerrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, commonerrors.ErrCodeElasticsearchConnectionFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
	assert.Contains(t, stdErr.Details, "connection refused")
	assert.Nil(t, output)
}

func TestHandler_Execute_DocumentIDIsDeterministic(t *testing.T) {
	transport := &mockTransport{
		statusCode:   http.StatusOK,
		responseBody: `{"result":"updated"}`,
	}
	handler := NewHandler(createTestConfig(), newTestClient(t, transport), logger.NewTestLogger(t))

	input := createTestInput()
	first, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	second, err := handler.Execute(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first.DocumentID, second.DocumentID)
}
