package remote

import "fmt"

// NetworkError means the request never completed: no response was received
// from the catalog backend.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RemoteError means the backend answered but reported failure. Message is the
// backend-provided text and is surfaced to the user verbatim.
type RemoteError struct {
	Op      string
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("catalog %s: backend returned status %d", e.Op, e.Status)
}
