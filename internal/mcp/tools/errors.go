package tools

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/halcyonsec/s1-mcp/internal/dv"
	"github.com/halcyonsec/s1-mcp/pkg/client"
)

// Error codes for MCP tool responses.
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeS1APIError    = "S1_API_ERROR"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeTimeout       = "TIMEOUT"
	ErrCodeQueryError    = "QUERY_ERROR"
	ErrCodeQueryRejected = "QUERY_REJECTED"
	ErrCodeQueryFailed   = "QUERY_FAILED"
	ErrCodeQueryCanceled = "QUERY_CANCELED"
)

// CodedError is an error with an associated error code. The MCP SDK turns
// errors returned from a handler into a structured isError response, so a
// failing tool never takes the host down.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapS1Error maps a client or engine failure to a coded error. This is the
// single point where the internal failure domain crosses the tool boundary.
func WrapS1Error(err error) error {
	if err == nil {
		return nil
	}

	coded := classify(err)

	slog.Warn("sentinelone API error",
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	)

	return coded
}

func classify(err error) *CodedError {
	var (
		apiErr      *client.APIError
		timeoutErr  *client.TimeoutError
		graphqlErr  *client.GraphQLError
		rejected    *dv.SubmissionError
		jobFailed   *dv.JobFailedError
		jobCanceled *dv.JobCanceledError
	)

	switch {
	case errors.As(err, &apiErr):
		code := ErrCodeS1APIError
		if apiErr.StatusCode == 404 {
			code = ErrCodeNotFound
		}
		return &CodedError{Code: code, Message: err.Error(), Cause: err}
	case errors.As(err, &timeoutErr):
		return &CodedError{Code: ErrCodeTimeout, Message: err.Error(), Cause: err}
	case errors.As(err, &graphqlErr):
		return &CodedError{Code: ErrCodeQueryError, Message: err.Error(), Cause: err}
	case errors.As(err, &rejected):
		return &CodedError{Code: ErrCodeQueryRejected, Message: err.Error(), Cause: err}
	case errors.As(err, &jobFailed):
		return &CodedError{Code: ErrCodeQueryFailed, Message: err.Error(), Cause: err}
	case errors.As(err, &jobCanceled):
		return &CodedError{Code: ErrCodeQueryCanceled, Message: err.Error(), Cause: err}
	default:
		return &CodedError{Code: ErrCodeS1APIError, Message: err.Error(), Cause: err}
	}
}

// ErrNotFound creates a not found error.
func ErrNotFound(resource, id string) error {
	return &CodedError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}

func limitExceededMessage(limit, max int) string {
	return fmt.Sprintf("limit %d exceeds maximum of %d", limit, max)
}
