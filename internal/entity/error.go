package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound         = errors.New("delivery request not found")
	ErrInvalidReference = errors.New("empty request reference")
	ErrConfigPathNotSet = errors.New("CONFIG_PATH not set and -config flag not provided")
)

// ValidationError reports a missing or malformed required field. The field
// name is surfaced to the client verbatim.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// UnknownStatusError reports a status outside the closed set. The message
// enumerates the valid members.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	valid := make([]string, len(statuses))
	for i, s := range statuses {
		valid[i] = string(s)
	}
	return fmt.Sprintf("unknown status %q, valid statuses: %s", e.Status, strings.Join(valid, ", "))
}
