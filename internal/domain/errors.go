package domain

import "fmt"

// TransportError is returned by a fetch client when the board could not be
// read: network failure, non-2xx status or a payload that does not decode.
type TransportError struct {
	Message string
	Status  int // HTTP status, 0 when no response was received
	Payload []byte
	Err     error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d): %v", e.Message, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
