package graph

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/topi314/event-graph/server/store"
)

type ErrorCode string

const (
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeConflict         ErrorCode = "CONFLICT"
	ErrorCodeInternal         ErrorCode = "INTERNAL"
)

// Error is returned by resolvers. Its code ends up in the extensions of the
// GraphQL error.
type Error struct {
	Code    ErrorCode
	Message string
	// Fields maps an input field to the rule it failed, only set for ErrorCodeValidationFailed.
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Extensions() map[string]any {
	extensions := map[string]any{
		"code": string(e.Code),
	}
	if len(e.Fields) > 0 {
		extensions["fields"] = e.Fields
	}
	return extensions
}

func newStoreError(entity string, err error) *Error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return &Error{
			Code:    ErrorCodeNotFound,
			Message: entity + " not found",
			Err:     err,
		}
	case errors.Is(err, store.ErrConflict):
		return &Error{
			Code:    ErrorCodeConflict,
			Message: entity + " already exists",
			Err:     err,
		}
	default:
		return &Error{
			Code:    ErrorCodeInternal,
			Message: "internal server error",
			Err:     err,
		}
	}
}

func newValidationError(fields map[string]string, err error) *Error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)

	return &Error{
		Code:    ErrorCodeValidationFailed,
		Message: fmt.Sprintf("invalid value for %s", strings.Join(names, ", ")),
		Fields:  fields,
		Err:     err,
	}
}
