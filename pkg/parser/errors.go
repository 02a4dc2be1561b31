package parser

import "fmt"

// StatementError reports which input of a batch failed.
type StatementError struct {
	Index int
	Err   error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("statement %d: %v", e.Index+1, e.Err)
}

// Unwrap returns the underlying error so errors.Is matches its kind.
func (e *StatementError) Unwrap() error {
	return e.Err
}
