package log

import (
	"context"

	"github.com/YuminosukeSato/coordfit/pkg/errors"
)

// ErrorCode maps err to one of the Error* attribute values, or "" when no
// code applies. Logger.Error attaches it under ErrorCodeKey.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ErrorCanceled
	case errors.Is(err, errors.ErrEmptyStore):
		return ErrorEmptyStore
	case errors.Is(err, errors.ErrDimensionMismatch):
		return ErrorDimensionMismatch
	case errors.As(err, new(*errors.NotFittedError)):
		return ErrorNotFitted
	case errors.As(err, new(*errors.ConvergenceWarning)):
		return ErrorConvergence
	case errors.As(err, new(*errors.ValidationError)), errors.As(err, new(*errors.ValueError)):
		return ErrorInvalidInput
	}
	return ""
}
