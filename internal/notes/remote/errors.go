package remote

import "fmt"

// RejectedError is returned when the note service answers with a non-2xx status.
// Message holds the body's "error" field, or "" when the body had none.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("note service rejected request: status %d", e.StatusCode)
	}
	return fmt.Sprintf("note service rejected request: status %d: %s", e.StatusCode, e.Message)
}

// TransportError is returned when a request could not be completed or its
// response body could not be decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
