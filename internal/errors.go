package internal

import (
	"errors"
	"fmt"
)

const (
	msgMissingFields  = "Missing required fields"
	msgInvalidAmount  = "Invalid amount"
	msgInvalidBody    = "Invalid request body"
	msgInternalServer = "Internal Server Error"
)

// ErrInternal marks failures of the signing pipeline that must not be detailed to the client.
var ErrInternal = errors.New("internal error")

// ValidationError is returned when the client payload is incomplete or malformed.
// Message is safe to show to the client.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports unusable gateway credentials.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s %s", e.Field, e.Reason)
}
