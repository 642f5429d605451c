package result

import (
	"errors"
	"fmt"
	"time"
)

// Kind classifies why an operation failed.
type Kind int

const (
	// KindNone means no failure.
	KindNone Kind = iota
	// KindGeneral is an otherwise unclassified failure.
	KindGeneral
	// KindValidation indicates rejected input (HTTP 400/422 or local checks).
	KindValidation
	// KindNotFound indicates a missing resource (HTTP 404).
	KindNotFound
	// KindUnauthorized indicates missing or rejected credentials (HTTP 401/403).
	KindUnauthorized
	// KindConflict indicates a state conflict (HTTP 409).
	KindConflict
	// KindException indicates an unexpected local fault such as a decode error.
	KindException
	// KindNetwork indicates a transport failure (refused, DNS, reset).
	KindNetwork
	// KindTimeout indicates the operation timed out or was canceled.
	KindTimeout
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindGeneral:
		return "general"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindConflict:
		return "conflict"
	case KindException:
		return "exception"
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Failure describes a failed operation.
type Failure struct {
	// Kind classifies the failure.
	Kind Kind
	// Message describes what went wrong.
	Message string
	// StatusCode is the HTTP status that produced the failure (0 when none).
	StatusCode int
	// Retryable indicates whether another attempt could succeed.
	Retryable bool
	// RetryAfter is the server-requested wait before retrying (0 when absent).
	RetryAfter time.Duration
	// Cause is the underlying error (nil when none).
	Cause error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.StatusCode > 0 {
		return fmt.Sprintf("%s (HTTP %d): %s", f.Kind, f.StatusCode, f.Message)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Unwrap returns the underlying cause.
func (f *Failure) Unwrap() error { return f.Cause }

// WithStatus sets the originating HTTP status and returns the receiver.
func (f *Failure) WithStatus(code int) *Failure {
	f.StatusCode = code
	return f
}

// WithCause sets the underlying cause and returns the receiver.
func (f *Failure) WithCause(cause error) *Failure {
	f.Cause = cause
	return f
}

// WithRetryAfter records a server-requested retry delay and returns the receiver.
func (f *Failure) WithRetryAfter(d time.Duration) *Failure {
	f.RetryAfter = d
	return f
}

// NewFailure creates a failure with the given kind and message.
func NewFailure(kind Kind, message string) *Failure {
	return &Failure{Kind: kind, Message: message}
}

// General creates an unclassified failure.
func General(message string) *Failure {
	return NewFailure(KindGeneral, message)
}

// Generalf creates an unclassified failure with a formatted message.
func Generalf(format string, args ...any) *Failure {
	return General(fmt.Sprintf(format, args...))
}

// Validation creates a failure for rejected input.
func Validation(message string) *Failure {
	return NewFailure(KindValidation, message)
}

// NotFound creates a failure for a missing resource.
func NotFound(message string) *Failure {
	return NewFailure(KindNotFound, message)
}

// Unauthorized creates a failure for missing or rejected credentials.
func Unauthorized(message string) *Failure {
	return NewFailure(KindUnauthorized, message)
}

// Conflict creates a failure for a state conflict.
func Conflict(message string) *Failure {
	return NewFailure(KindConflict, message)
}

// Exception creates a failure for an unexpected local fault.
func Exception(message string, cause error) *Failure {
	return &Failure{Kind: KindException, Message: message, Cause: cause}
}

// Network creates a retryable transport failure.
func Network(message string, cause error) *Failure {
	return &Failure{Kind: KindNetwork, Message: message, Retryable: true, Cause: cause}
}

// Timeout creates a retryable timeout failure.
func Timeout(message string, cause error) *Failure {
	return &Failure{Kind: KindTimeout, Message: message, Retryable: true, Cause: cause}
}

// FromError converts an error into a failure. An error that already wraps a
// *Failure is returned as-is so classification survives error plumbing.
func FromError(err error) *Failure {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return &Failure{Kind: KindGeneral, Message: err.Error(), Cause: err}
}

// IsKind checks if an error is a *Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == kind
}

// IsValidation checks if an error is a validation failure.
func IsValidation(err error) bool { return IsKind(err, KindValidation) }

// IsNotFound checks if an error is a not-found failure.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// IsUnauthorized checks if an error is an unauthorized failure.
func IsUnauthorized(err error) bool { return IsKind(err, KindUnauthorized) }

// IsConflict checks if an error is a conflict failure.
func IsConflict(err error) bool { return IsKind(err, KindConflict) }

// IsNetwork checks if an error is a network failure.
func IsNetwork(err error) bool { return IsKind(err, KindNetwork) }

// IsTimeout checks if an error is a timeout failure.
func IsTimeout(err error) bool { return IsKind(err, KindTimeout) }

// IsRetryable checks if an error is a retryable failure.
func IsRetryable(err error) bool {
	var f *Failure
	return errors.As(err, &f) && f.Retryable
}
