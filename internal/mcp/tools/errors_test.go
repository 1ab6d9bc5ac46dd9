package tools

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonsec/s1-mcp/internal/dv"
	"github.com/halcyonsec/s1-mcp/pkg/client"
)

func codeOf(t *testing.T, err error) string {
	t.Helper()
	var coded *CodedError
	require.ErrorAs(t, err, &coded)
	return coded.Code
}

func TestWrapS1Error_nilPassesThrough(t *testing.T) {
	assert.NoError(t, WrapS1Error(nil))
}

func TestWrapS1Error_classification(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound,
		codeOf(t, WrapS1Error(&client.APIError{StatusCode: 404, Body: "gone"})))
	assert.Equal(t, ErrCodeS1APIError,
		codeOf(t, WrapS1Error(&client.APIError{StatusCode: 500, Body: "boom"})))
	assert.Equal(t, ErrCodeTimeout,
		codeOf(t, WrapS1Error(&client.TimeoutError{})))
	assert.Equal(t, ErrCodeQueryError,
		codeOf(t, WrapS1Error(&client.GraphQLError{Messages: []string{"bad"}})))
	assert.Equal(t, ErrCodeQueryRejected,
		codeOf(t, WrapS1Error(&dv.SubmissionError{Err: errors.New("syntax")})))
	assert.Equal(t, ErrCodeQueryFailed,
		codeOf(t, WrapS1Error(&dv.JobFailedError{QueryID: "q"})))
	assert.Equal(t, ErrCodeQueryCanceled,
		codeOf(t, WrapS1Error(&dv.JobCanceledError{QueryID: "q"})))
	assert.Equal(t, ErrCodeS1APIError,
		codeOf(t, WrapS1Error(errors.New("something else"))))
}

func TestWrapS1Error_classifiesWrappedErrors(t *testing.T) {
	wrapped := &dv.JobFailedError{QueryID: "q-1", Detail: "shard died"}
	err := WrapS1Error(errors.Join(errors.New("outer"), wrapped))
	assert.Equal(t, ErrCodeQueryFailed, codeOf(t, err))
}

func TestCodedError_unwrapKeepsCause(t *testing.T) {
	cause := &client.APIError{StatusCode: 503, Body: "maintenance"}
	err := WrapS1Error(cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), ErrCodeS1APIError)
}

func TestErrNotFoundAndInvalidInput(t *testing.T) {
	err := ErrNotFound("threat", "t-1")
	assert.Equal(t, ErrCodeNotFound, codeOf(t, err))
	assert.Contains(t, err.Error(), "t-1")

	err = ErrInvalidInput("threat_id is required")
	assert.Equal(t, ErrCodeInvalidInput, codeOf(t, err))
}
