package result

import "fmt"

// Unit is the empty payload for operations that succeed without a value.
type Unit struct{}

// Result holds either a value of type T or a *Failure, never both.
// The zero value is ok with T's zero value.
type Result[T any] struct {
	value   T
	failure *Failure
}

// Ok returns a successful result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail returns a failed result carrying f. A nil f is replaced with a
// general failure so a failed result always explains itself.
func Fail[T any](f *Failure) Result[T] {
	if f == nil {
		f = General("unspecified failure")
	}
	return Result[T]{failure: f}
}

// Failf returns a failed result of the given kind with a formatted message.
func Failf[T any](kind Kind, format string, args ...any) Result[T] {
	return Fail[T](NewFailure(kind, fmt.Sprintf(format, args...)))
}

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool { return r.failure == nil }

// IsErr reports whether the result holds a failure.
func (r Result[T]) IsErr() bool { return r.failure != nil }

// Value returns the held value, or T's zero value for a failed result.
func (r Result[T]) Value() T { return r.value }

// Err returns the held failure, or nil for an ok result.
func (r Result[T]) Err() *Failure { return r.failure }

// ValueOr returns the held value, or fallback for a failed result.
func (r Result[T]) ValueOr(fallback T) T {
	if r.failure != nil {
		return fallback
	}
	return r.value
}

// Unpack returns the value and the failure as a plain error, for callers
// that live in error-return code.
func (r Result[T]) Unpack() (T, error) {
	if r.failure != nil {
		return r.value, r.failure
	}
	return r.value, nil
}

// Tap invokes fn with the value when ok and returns the result unchanged.
func (r Result[T]) Tap(fn func(T)) Result[T] {
	if r.failure == nil {
		fn(r.value)
	}
	return r
}

// TapErr invokes fn with the failure when failed and returns the result unchanged.
func (r Result[T]) TapErr(fn func(*Failure)) Result[T] {
	if r.failure != nil {
		fn(r.failure)
	}
	return r
}

// Ensure converts an ok result into the given failure when pred rejects the
// value. Failed results pass through unchanged.
func (r Result[T]) Ensure(pred func(T) bool, f *Failure) Result[T] {
	if r.failure != nil {
		return r
	}
	if !pred(r.value) {
		return Fail[T](f)
	}
	return r
}

// Recover converts a failed result into an ok result using fn.
func (r Result[T]) Recover(fn func(*Failure) T) Result[T] {
	if r.failure == nil {
		return r
	}
	return Ok(fn(r.failure))
}

// OrElse replaces a failed result with the result produced by fn.
func (r Result[T]) OrElse(fn func(*Failure) Result[T]) Result[T] {
	if r.failure == nil {
		return r
	}
	return fn(r.failure)
}

// Map transforms the value of an ok result. A failure short-circuits and
// crosses the type boundary untouched.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.failure != nil {
		return Fail[U](r.failure)
	}
	return Ok(fn(r.value))
}

// Bind chains a result-producing transformation. A failure short-circuits
// and crosses the type boundary untouched.
func Bind[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.failure != nil {
		return Fail[U](r.failure)
	}
	return fn(r.value)
}

// Match reduces a result to a single value, invoking exactly one branch.
func Match[T, U any](r Result[T], onOk func(T) U, onErr func(*Failure) U) U {
	if r.failure != nil {
		return onErr(r.failure)
	}
	return onOk(r.value)
}
