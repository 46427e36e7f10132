package errors

import (
	"fmt"
)

/*
StageError tags a failure with the pipeline stage it occurred in and the
query being processed, so a single log line carries enough context for
post-mortem debugging.
*/
type StageError struct {
	Stage   string `json:"stage"`
	Query   string `json:"query"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

/*
Error implements the error interface for StageError.
*/
func (e *StageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Message, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Stage, e.Message)
}

func (e *StageError) Unwrap() error { return e.Err }

/*
NewStageError wraps err with the stage name and the query that triggered it.
*/
func NewStageError(stage, query, message string, err error) *StageError {
	return &StageError{Stage: stage, Query: query, Message: message, Err: err}
}
