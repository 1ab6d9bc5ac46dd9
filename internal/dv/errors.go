package dv

import "fmt"

// SubmissionError reports that the console rejected the query at
// submission time (malformed syntax, invalid time range).
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return "submitting deep visibility query: " + e.Err.Error()
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// JobFailedError reports a query that reached the FAILED state. Detail is
// the remote-supplied error when present.
type JobFailedError struct {
	QueryID string
	Detail  string
}

func (e *JobFailedError) Error() string {
	detail := e.Detail
	if detail == "" {
		detail = "unknown error"
	}
	return fmt.Sprintf("deep visibility query %s failed: %s", e.QueryID, detail)
}

// JobCanceledError reports a query that reached the CANCELED state. No
// further polling or retrieval is possible without resubmission.
type JobCanceledError struct {
	QueryID string
}

func (e *JobCanceledError) Error() string {
	return fmt.Sprintf("deep visibility query %s was canceled", e.QueryID)
}
