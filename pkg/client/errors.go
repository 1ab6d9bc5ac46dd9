package client

import (
	"fmt"
	"strings"
	"time"
)

// RedactedMarker replaces the API token wherever it would appear in error
// text returned to callers.
const RedactedMarker = "[REDACTED]"

// APIError is a non-2xx response from the management console. Body carries
// the raw response text for diagnostics; it is not parsed.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("sentinelone API error %s: %s", e.Status, e.Body)
	}
	return "sentinelone API error " + e.Status
}

// TimeoutError reports that an outbound call exceeded the fixed deadline.
// It is distinguishable from other transport failures so callers can decide
// to retry.
type TimeoutError struct {
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %dms", e.Elapsed.Milliseconds())
}

// Timeout satisfies the net.Error convention.
func (e *TimeoutError) Timeout() bool { return true }

// GraphQLError is a logical failure reported in the errors list of a
// GraphQL response that arrived with a transport-level success status.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return "graphql errors: " + strings.Join(e.Messages, ", ")
}
