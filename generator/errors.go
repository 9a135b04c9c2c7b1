package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration means the client cannot run at all (no API key).
	ErrConfiguration = errors.New("generator: configuration error")
	// ErrEmptyResponse means the provider answered without any text.
	ErrEmptyResponse = errors.New("generator: empty response")
	// ErrParse means the payload is not a valid ContentResult.
	ErrParse = errors.New("generator: invalid payload")
)

// ParseError carries the raw payload that failed to decode or validate.
type ParseError struct {
	Payload string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("generator: invalid payload: %v", e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
